package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// Backend selects where collections are read from (ledger, gateway).
	Backend string `mapstructure:"backend" default:"ledger"`
}

const (
	BackendLedger  = "ledger"
	BackendGateway = "gateway"
)

// IsValidBackend checks if the configured collection backend is valid.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendLedger, BackendGateway:
		return true
	default:
		return false
	}
}
