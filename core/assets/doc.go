// Package assets resolves image references into browser URLs.
//
// Collections and NFTs store only an image id. Where that id is served from
// depends on the environment: the local replica, the hosted raw gateway of the
// asset canister, or the object storage bucket fair media is uploaded to.
// Missing references resolve to a fixed placeholder image.
package assets
