// Package ledger is a database-backed stand-in for the collection canister.
//
// Store keeps users, collections and NFTs in gorm tables and answers the
// reconcile.Backend queries with the canister's positional record shapes:
// collections as (timestamp, (creator, canister), name, symbol, metadata)
// tuples and NFTs as (token, envelope) pairs whose authored metadata sits at
// nonfungible.metadata[0].json. It also implements the minting capability
// used by the fair creation flow.
//
// Canister ids are random uuid-derived ids in the canister format, and token
// identifiers are "<canister>:<index>".
package ledger
