// Package integrity provides system health checks.
//
// # Checks Provided
//
//   - Structure: Checks that the media and thumbnail folders exist in the storage bucket.
//   - Ledger: Validates that the ledger database schema matches the ledger models (columns, types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/ledger : Runs ledger schema check.
package integrity
