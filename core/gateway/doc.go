// Package gateway is an HTTP client for a gateway that proxies the
// collection canister API. Client implements reconcile.Backend.
//
// Endpoints:
//
//	GET {base}/users/{principal}/collections         JSON array of 5-tuples
//	GET {base}/collections/{key}/nfts?limit=&offset=  {"ok":{"data":[...]}} or {"err":"..."}
//
// Bodies are decoded with json.Decoder.UseNumber so nanosecond timestamps
// keep their precision. HTTP 429 is retried with exponential backoff
// (DoWithRetry); 401 and 403 map to reconcile.ErrUnauthenticated.
package gateway
