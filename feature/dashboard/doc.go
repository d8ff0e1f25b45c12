// Package dashboard exposes a user's reconciled collectibles over HTTP.
//
// GET /dashboard/:principal/items answers 200 with {"items", "failures"}.
// Collections that could not be listed appear in failures; when the user's
// collections could not be fetched at all, items is empty and error is set.
package dashboard
