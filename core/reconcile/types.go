package reconcile

import (
	"context"
	"errors"
)

const (
	// tupleArity is the number of positional fields in a collection record.
	tupleArity = 5

	// DefaultPageSize bounds the number of NFTs requested per collection.
	DefaultPageSize = 50

	// FairPrefix is prepended to collection names created for virtual fairs.
	FairPrefix = "Feria: "

	// UntitledLabel is the title of an item with no usable name.
	UntitledLabel = "NFT sin título"

	// DefaultSector is shown when neither the NFT nor its collection names a sector.
	DefaultSector = "General"

	// DefaultSubSector is shown when no sub-sector is known.
	DefaultSubSector = "N/A"

	// DefaultOrganizer is shown when no organizer is known.
	DefaultOrganizer = "Organizador desconocido"
)

// RawCollectionRecord is a positional collection record as returned by the
// backend: timestamp, canister reference, name, symbol, metadata.
// Any position may itself hold a complete nested record.
type RawCollectionRecord []any

// CollectionDescriptor is a collection discovered in a RawCollectionRecord.
// CanisterKey is its identity; a key is described at most once per pass.
type CollectionDescriptor struct {
	CanisterKey string            `json:"canister_key"`
	Ref         CanisterReference `json:"-"`
	DisplayName string            `json:"display_name"`
	Symbol      string            `json:"symbol"`
	Timestamp   int64             `json:"timestamp"`
	Metadata    map[string]any    `json:"metadata"`
}

// RawNFTRecord is one entry of a collection listing.
type RawNFTRecord struct {
	// TokenIdentifier is the token id in whatever shape the backend sent it.
	TokenIdentifier any
	// Envelope carries the nonfungible metadata container.
	Envelope any
}

// NFTRecordFromTuple builds a RawNFTRecord from a decoded listing entry.
// It accepts the (token, envelope) pair and the
// (tokenIndex, owner, envelope, price) listing shape.
func NFTRecordFromTuple(v any) (RawNFTRecord, bool) {
	tuple, ok := v.([]any)
	if !ok || len(tuple) == 0 {
		return RawNFTRecord{}, false
	}
	switch {
	case len(tuple) >= 4:
		return RawNFTRecord{TokenIdentifier: tuple[0], Envelope: tuple[2]}, true
	case len(tuple) >= 2:
		return RawNFTRecord{TokenIdentifier: tuple[0], Envelope: tuple[1]}, true
	default:
		return RawNFTRecord{TokenIdentifier: tuple[0]}, true
	}
}

// DisplayItem is a collectible ready to be rendered on the dashboard.
type DisplayItem struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	Organizer    string `json:"organizer"`
	CollectionID string `json:"collection_id"`
	Sector       string `json:"sector"`
	SubSector    string `json:"sub_sector"`
}

// Failure records a collection whose listing could not be fetched.
type Failure struct {
	CollectionKey string `json:"collection_key"`
	Reason        string `json:"reason"`
}

// Result is the outcome of one reconciliation pass.
// Err is set only when the initial collections fetch failed, in which case
// Items is empty. Per-collection problems are reported in Failures.
type Result struct {
	Items    []DisplayItem `json:"items"`
	Failures []Failure     `json:"failures"`
	Err      error         `json:"-"`
}

// Backend is the account/collection service the reconciler reads from.
type Backend interface {
	// GetUserCollections returns the raw collection records owned by principal.
	GetUserCollections(ctx context.Context, principal string) ([]RawCollectionRecord, error)
	// GetCollectionItems lists up to limit NFTs of a collection starting at offset.
	// A backend-side rejection is reported as *RejectedError.
	GetCollectionItems(ctx context.Context, ref CanisterReference, limit, offset int) ([]RawNFTRecord, error)
}

// ImageResolver maps an image reference to a URL.
type ImageResolver interface {
	ImageURL(ref string) string
}

// RejectedError is returned when the backend answered a query with an
// err variant instead of data.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return "collection query rejected: " + e.Reason
}

// ErrUnauthenticated is returned by backends when the caller identity is
// missing or not accepted.
var ErrUnauthenticated = errors.New("caller is not authenticated")
