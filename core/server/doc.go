// Package server holds the HTTP server configuration and constants.
//
// The start command owns the actual Fiber application; this package only defines
// the settings it reads (port, API key) and the supported collection backends.
//
// # Backends
//
//   - ledger: collections are stored in the local gorm database (feature/ledger).
//   - gateway: collections are read from the remote canister gateway (core/gateway).
package server
