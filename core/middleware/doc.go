// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key) protecting every route registered after it.
//   - rayid: a per-request id stored in the fiber locals and echoed in X-Ray-ID,
//     picked up by logger.WithRayID.
package middleware
