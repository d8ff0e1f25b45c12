// Package minting implements virtual fair creation.
//
// POST /fairs takes a multipart form (fairName, organizerName, sector,
// subSector, media) and the caller principal in X-Caller-Principal. The flow:
//
//  1. Validate the form: a name is required and the media must be an image or
//     video of at most 10 MB.
//  2. Upload the media to object storage under media/<imageId>, where the id is
//     the fair name with whitespace replaced by underscores plus a millisecond
//     timestamp.
//  3. Register the caller (an existing registration is not an error).
//  4. Create the "Feria: <name>" collection with symbol FAIR.
//  5. Mint one NFT carrying the fair metadata to the caller.
//
// The image id is stored as imageUrl in both collection and NFT metadata, which
// is what the dashboard resolves into a URL.
package minting
