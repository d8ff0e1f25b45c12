// Package config provides configuration management for the hub.
//
// It loads settings from a .env file and environment variables through Viper.
// Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP server settings (port, API key, collection backend)
//   - Log: Logging level and format
//   - Storage: S3/MinIO credentials and bucket settings
//   - Database: Ledger database driver and connection details
//   - Gateway: Remote collection gateway URL, token and retry policy
//   - Assets: Image URL environment and fallback
//   - Reconcile: Listing page size and fetch workers
//
// Nested keys map to environment variables with underscores, so
// gateway.base_url is read from GATEWAY_BASE_URL.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
