// Package reconcile turns the loosely shaped records of the collection backend
// into the list of collectibles shown on a user's dashboard.
//
// # Pipeline
//
//  1. Backend.GetUserCollections returns positional collection records.
//  2. ExtractCollections scans them (including records nested inside other
//     records' positions) and keeps one CollectionDescriptor per canister key,
//     in discovery order.
//  3. Backend.GetCollectionItems lists each collection's NFTs.
//  4. NormalizeNFT merges NFT metadata, collection metadata and fixed defaults
//     into a DisplayItem.
//
// # Failure Model
//
// Nothing in this package returns an error to the dashboard. Shape problems
// are skipped locally, metadata that fails to parse becomes an empty object,
// a failing collection is recorded in Result.Failures and the pass continues,
// and a failing collections fetch yields an empty Result with Err set.
//
// # Concurrency
//
// Listings are fetched sequentially unless Config.Workers is above one, in
// which case a bounded errgroup fans out and the results are reassembled in
// discovery order. The Reconciler itself has no cache and no locking.
//
// # Usage
//
//	r := reconcile.New(backend, assets.NewResolver(cfg.Assets), cfg.Reconcile, log)
//	res := r.Reconcile(ctx, principal)
//	for _, item := range res.Items {
//	    fmt.Println(item.Title, item.ImageURL)
//	}
package reconcile
