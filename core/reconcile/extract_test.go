package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// principal is a test identity with a text form.
type principal string

func (p principal) Text() string { return string(p) }

// panicky has a text form that blows up.
type panicky struct{}

func (panicky) Text() string { panic("no text form") }

func record(ts any, canister any, name, sym string, meta any) RawCollectionRecord {
	return RawCollectionRecord{ts, canister, name, sym, meta}
}

func keys(ds []CollectionDescriptor) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.CanisterKey)
	}
	return out
}

func TestExtractCollections_WellFormed(t *testing.T) {
	records := []RawCollectionRecord{
		record(1, principal("aaaaa-aa"), "Feria: Expo A", "FAIR", `{"sector":"Fintech"}`),
		record(2, principal("bbbbb-bb"), "Feria: Expo B", "FAIR", ""),
		record(3, principal("ccccc-cc"), "Feria: Expo C", "FAIR", nil),
	}

	got := ExtractCollections(records)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"aaaaa-aa", "bbbbb-bb", "ccccc-cc"}, keys(got))

	assert.Equal(t, "Feria: Expo A", got[0].DisplayName)
	assert.Equal(t, "FAIR", got[0].Symbol)
	assert.Equal(t, int64(1), got[0].Timestamp)
	assert.Equal(t, "Fintech", got[0].Metadata["sector"])
	assert.Empty(t, got[1].Metadata)
	assert.NotNil(t, got[2].Metadata)
}

func TestExtractCollections_NestedInCanisterPosition(t *testing.T) {
	nested := []any{int64(9), principal("nested-cai"), "Feria: Nested", "FAIR", `{"imageUrl":"img"}`}
	records := []RawCollectionRecord{
		{int64(1), nested, "outer-name", "OUT", "{}"},
	}

	got := ExtractCollections(records)
	require.Len(t, got, 1)
	assert.Equal(t, "nested-cai", got[0].CanisterKey)
	assert.Equal(t, "Feria: Nested", got[0].DisplayName)
	assert.Equal(t, "img", got[0].Metadata["imageUrl"])
}

func TestExtractCollections_NestedScanOrder(t *testing.T) {
	first := []any{1, "key-ts", "From timestamp", "A", ""}
	second := []any{2, "key-meta", "From metadata", "B", ""}
	dupOfFirst := []any{3, "key-ts", "Duplicate", "C", ""}

	records := []RawCollectionRecord{
		{first, "x", dupOfFirst, "y", second},
	}

	got := ExtractCollections(records)
	assert.Equal(t, []string{"key-ts", "key-meta"}, keys(got))
	// First occurrence wins.
	assert.Equal(t, "From timestamp", got[0].DisplayName)
}

func TestExtractCollections_DuplicateSuppression(t *testing.T) {
	records := []RawCollectionRecord{
		record(1, "dup-cai", "First", "F", `{"sector":"one"}`),
		record(2, "other-cai", "Other", "O", ""),
		record(3, "dup-cai", "Second", "S", `{"sector":"two"}`),
		{[]any{4, "dup-cai", "Nested", "N", ""}, nil, nil, nil, nil},
	}

	got := ExtractCollections(records)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"dup-cai", "other-cai"}, keys(got))
	assert.Equal(t, "First", got[0].DisplayName)
	assert.Equal(t, "one", got[0].Metadata["sector"])
}

func TestExtractCollections_Idempotent(t *testing.T) {
	records := []RawCollectionRecord{
		record(1, "a-cai", "A", "A", `{"x":"1"}`),
		{[]any{2, "b-cai", "B", "B", ""}, "junk", nil, nil, nil},
	}

	assert.Equal(t, ExtractCollections(records), ExtractCollections(records))
}

func TestExtractCollections_Discards(t *testing.T) {
	records := []RawCollectionRecord{
		record(1, nil, "nil canister", "X", ""),
		record(2, "", "empty canister", "X", ""),
		record(3, "undefined", "undefined canister", "X", ""),
		record(4, panicky{}, "panicking canister", "X", ""),
		{1, 2, 3},
		nil,
		record(5, "kept-cai", "Kept", "K", ""),
	}

	got := ExtractCollections(records)
	assert.Equal(t, []string{"kept-cai"}, keys(got))
}

func TestExtractCollections_Empty(t *testing.T) {
	assert.Empty(t, ExtractCollections(nil))
	assert.NotNil(t, ExtractCollections(nil))
}

func TestExtractCollections_ReferenceShapes(t *testing.T) {
	records := []RawCollectionRecord{
		// Serialized principal object.
		record(1, map[string]any{IdentityField: "json-cai"}, "Json", "J", ""),
		// Creator/canister pair returned by collection creation.
		record(2, []any{principal("creator"), principal("pair-cai")}, "Pair", "P", ""),
		// Optional wrapping a principal.
		record(3, []any{principal("opt-cai")}, "Opt", "O", ""),
	}

	got := ExtractCollections(records)
	assert.Equal(t, []string{"json-cai", "pair-cai", "opt-cai"}, keys(got))
}

func TestParseMetadata(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want map[string]any
	}{
		{"String", `{"sector":"Retail"}`, map[string]any{"sector": "Retail"}},
		{"Optional", []any{`{"sector":"Retail"}`}, map[string]any{"sector": "Retail"}},
		{"Decoded", map[string]any{"sector": "Retail"}, map[string]any{"sector": "Retail"}},
		{"Invalid", `{"sector":`, map[string]any{}},
		{"NotObject", `["a"]`, map[string]any{}},
		{"Undefined", "undefined", map[string]any{}},
		{"EmptyOptional", []any{}, map[string]any{}},
		{"Number", 12, map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMetadata(tt.in))
		})
	}
}

func TestNewCanisterReference(t *testing.T) {
	assert.Equal(t, "p-cai", NewCanisterReference(principal("p-cai")).Key())
	assert.Equal(t, "j-cai", NewCanisterReference(map[string]any{IdentityField: "j-cai"}).Key())
	assert.Equal(t, "s-cai", NewCanisterReference("s-cai").Key())
	assert.Equal(t, "42", NewCanisterReference(42).Key())

	ref := IdentityReference("already")
	assert.Equal(t, ref, NewCanisterReference(ref))
}
