package cmd

import (
	"fmt"

	"metabuild-hub/core/config"
	"metabuild-hub/core/gateway"
	"metabuild-hub/core/reconcile"
	"metabuild-hub/core/server"
	"metabuild-hub/feature/ledger"
	"metabuild-hub/feature/minting"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// backend is the collection source selected by SERVER_BACKEND.
type backend struct {
	reconcile.Backend
	// store is set only for the ledger backend.
	store *ledger.Store
}

// openBackend builds the configured collection backend. The ledger backend
// needs db and migrates its tables.
func openBackend(cfg *config.Config, db *gorm.DB, l *zap.Logger) (*backend, error) {
	if !cfg.Server.IsValidBackend() {
		return nil, fmt.Errorf("invalid backend %q (expected %s or %s)", cfg.Server.Backend, server.BackendLedger, server.BackendGateway)
	}

	if cfg.Server.Backend == server.BackendGateway {
		l.Info("Using collection gateway", zap.String("url", cfg.Gateway.BaseURL))
		return &backend{Backend: gateway.NewClient(cfg.Gateway, l)}, nil
	}

	if db == nil {
		return nil, fmt.Errorf("ledger backend requires a database connection")
	}
	store := ledger.NewStore(db, l)
	if err := store.Migrate(); err != nil {
		return nil, err
	}
	l.Info("Using ledger database", zap.String("driver", cfg.Database.Driver))
	return &backend{Backend: store, store: store}, nil
}

// minter returns the minting backend, or nil when minting is unavailable.
func (b *backend) minter() minting.Minter {
	if b.store == nil {
		return nil
	}
	return b.store
}
