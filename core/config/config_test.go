package config

import (
	"os"
	"path/filepath"
	"testing"

	"metabuild-hub/core/assets"
	"metabuild-hub/core/reconcile"
	"metabuild-hub/core/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, server.BackendLedger, cfg.Server.Backend)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, assets.EnvironmentHosted, cfg.Assets.Environment)
	assert.Equal(t, assets.DefaultFallback, cfg.Assets.Fallback)
	assert.Equal(t, reconcile.DefaultPageSize, cfg.Reconcile.PageSize)
	assert.Equal(t, 1, cfg.Reconcile.Workers)
	assert.Equal(t, 3, cfg.Gateway.MaxRetries)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SERVER_BACKEND", "gateway")
	t.Setenv("GATEWAY_BASE_URL", "https://gw.example.com")
	t.Setenv("RECONCILE_WORKERS", "4")
	t.Setenv("ASSETS_ENVIRONMENT", "local")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, server.BackendGateway, cfg.Server.Backend)
	assert.Equal(t, "https://gw.example.com", cfg.Gateway.BaseURL)
	assert.Equal(t, 4, cfg.Reconcile.Workers)
	assert.Equal(t, assets.EnvironmentLocal, cfg.Assets.Environment)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=9090\nLOG_LEVEL=debug\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("LOG_LEVEL")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}
