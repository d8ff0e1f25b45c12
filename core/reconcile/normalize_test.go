package reconcile

import (
	"testing"

	"metabuild-hub/core/assets"

	"github.com/stretchr/testify/assert"
)

type prefixResolver struct{}

func (prefixResolver) ImageURL(ref string) string { return "https://img.test/" + ref }

func envelope(jsonMeta string) map[string]any {
	return map[string]any{
		"nonfungible": map[string]any{
			"name":     "Envelope Name",
			"metadata": []any{map[string]any{"json": jsonMeta}},
		},
	}
}

func TestNormalizeNFT_EmptyEnvelope(t *testing.T) {
	owner := CollectionDescriptor{CanisterKey: "a-cai", DisplayName: "Feria: Expo A", Metadata: map[string]any{}}

	item := NormalizeNFT(RawNFTRecord{TokenIdentifier: "tok1", Envelope: map[string]any{}}, owner, prefixResolver{})

	assert.Equal(t, DisplayItem{
		ID:           "tok1",
		Title:        "Expo A",
		Description:  DefaultSector,
		ImageURL:     assets.DefaultFallback,
		Organizer:    DefaultOrganizer,
		CollectionID: "a-cai",
		Sector:       DefaultSector,
		SubSector:    DefaultSubSector,
	}, item)
}

func TestNormalizeNFT_NFTValuesWin(t *testing.T) {
	owner := CollectionDescriptor{
		CanisterKey: "a-cai",
		DisplayName: "Feria: Expo A",
		Metadata: map[string]any{
			"sector":    "Retail",
			"subSector": "Fashion",
			"createdBy": "Coll Org",
			"imageUrl":  "coll-img",
		},
	}
	raw := RawNFTRecord{
		TokenIdentifier: principal("tok-principal"),
		Envelope:        envelope(`{"name":"Stand 7","organizer":"NFT Org","sector":"Fintech","subSector":"Payments","imageUrl":"nft-img"}`),
	}

	item := NormalizeNFT(raw, owner, prefixResolver{})

	assert.Equal(t, "tok-principal", item.ID)
	assert.Equal(t, "Stand 7", item.Title)
	assert.Equal(t, "NFT Org", item.Organizer)
	assert.Equal(t, "Fintech", item.Sector)
	assert.Equal(t, "Fintech", item.Description)
	assert.Equal(t, "Payments", item.SubSector)
	assert.Equal(t, "https://img.test/nft-img", item.ImageURL)
}

func TestNormalizeNFT_CollectionFallbacks(t *testing.T) {
	owner := CollectionDescriptor{
		CanisterKey: "a-cai",
		DisplayName: "Expo Without Prefix",
		Metadata: map[string]any{
			"sector":    "Retail",
			"subSector": "Fashion",
			"createdBy": "Coll Org",
			"imageUrl":  "coll-img",
		},
	}
	raw := RawNFTRecord{TokenIdentifier: "t", Envelope: map[string]any{"nonfungible": map[string]any{}}}

	item := NormalizeNFT(raw, owner, prefixResolver{})

	assert.Equal(t, "Expo Without Prefix", item.Title)
	assert.Equal(t, "Coll Org", item.Organizer)
	assert.Equal(t, "Retail", item.Sector)
	assert.Equal(t, "Fashion", item.SubSector)
	assert.Equal(t, "https://img.test/coll-img", item.ImageURL)
}

func TestNormalizeNFT_AuthoredFairFields(t *testing.T) {
	raw := RawNFTRecord{
		TokenIdentifier: "t",
		Envelope:        envelope(`{"fairName":"Expo Fair","organizerName":"Org Name","imageUrl":"Expo_Fair_1"}`),
	}

	item := NormalizeNFT(raw, CollectionDescriptor{DisplayName: "Feria: Other"}, prefixResolver{})

	assert.Equal(t, "Expo Fair", item.Title)
	assert.Equal(t, "Org Name", item.Organizer)
	assert.Equal(t, "https://img.test/Expo_Fair_1", item.ImageURL)
}

func TestNormalizeNFT_Malformed(t *testing.T) {
	owner := CollectionDescriptor{CanisterKey: "k", DisplayName: "Feria: Expo A"}

	envelopes := map[string]any{
		"Nil":               nil,
		"NotAnObject":       "garbage",
		"NoNonfungible":     map[string]any{"fungible": 1},
		"InvalidJSON":       map[string]any{"nonfungible": map[string]any{"metadata": []any{map[string]any{"json": "{not json"}}}},
		"EmptyOptional":     map[string]any{"nonfungible": map[string]any{"metadata": []any{}}},
		"WrongContainer":    map[string]any{"nonfungible": map[string]any{"metadata": []any{42}}},
		"NonfungibleString": map[string]any{"nonfungible": "x"},
	}

	for name, env := range envelopes {
		t.Run(name, func(t *testing.T) {
			var item DisplayItem
			assert.NotPanics(t, func() {
				item = NormalizeNFT(RawNFTRecord{TokenIdentifier: "tok", Envelope: env}, owner, prefixResolver{})
			})
			assert.Equal(t, "tok", item.ID)
			assert.Equal(t, "Expo A", item.Title)
			assert.Equal(t, DefaultSector, item.Sector)
			assert.Equal(t, assets.DefaultFallback, item.ImageURL)
		})
	}
}

func TestNormalizeNFT_TitleFallbacks(t *testing.T) {
	raw := RawNFTRecord{TokenIdentifier: "t", Envelope: map[string]any{}}

	assert.Equal(t, UntitledLabel, NormalizeNFT(raw, CollectionDescriptor{}, nil).Title)
	assert.Equal(t, "Feria: ", NormalizeNFT(raw, CollectionDescriptor{DisplayName: "Feria: "}, nil).Title)

	withName := RawNFTRecord{TokenIdentifier: "t", Envelope: map[string]any{"nonfungible": map[string]any{"name": "Envelope"}}}
	assert.Equal(t, "Envelope", NormalizeNFT(withName, CollectionDescriptor{DisplayName: "Feria: X"}, nil).Title)
}

func TestNormalizeNFT_NilResolverUsesFallback(t *testing.T) {
	raw := RawNFTRecord{TokenIdentifier: "t", Envelope: envelope(`{"imageUrl":"img"}`)}
	assert.Equal(t, assets.DefaultFallback, NormalizeNFT(raw, CollectionDescriptor{}, nil).ImageURL)
}

func TestTokenText(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"Text", principal("abc"), "abc"},
		{"Identity", map[string]any{IdentityField: "xyz"}, "xyz"},
		{"String", "tok1", "tok1"},
		{"Number", 7, "7"},
		{"Object", map[string]any{"index": 3}, `{"index":3}`},
		{"Nil", nil, ""},
		{"Unencodable", func() {}, ""},
		{"Panicking", panicky{}, "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TokenText(tt.in)
			if tt.name == "Unencodable" {
				assert.NotEmpty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNFTRecordFromTuple(t *testing.T) {
	env := map[string]any{"nonfungible": map[string]any{}}

	pair, ok := NFTRecordFromTuple([]any{"tok", env})
	assert.True(t, ok)
	assert.Equal(t, RawNFTRecord{TokenIdentifier: "tok", Envelope: env}, pair)

	listing, ok := NFTRecordFromTuple([]any{3, "owner", env, 100})
	assert.True(t, ok)
	assert.Equal(t, RawNFTRecord{TokenIdentifier: 3, Envelope: env}, listing)

	_, ok = NFTRecordFromTuple("nope")
	assert.False(t, ok)
	_, ok = NFTRecordFromTuple([]any{})
	assert.False(t, ok)
}
