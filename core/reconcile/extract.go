package reconcile

import (
	"encoding/json"
	"strings"

	"metabuild-hub/core/utils"
)

// ExtractCollections returns one descriptor per distinct canister key found
// in records, in order of first discovery.
//
// Some deployments nest a whole record inside one of the five positions of
// another. This is a compatibility shim for that data-shape bug: when any
// position holds a nested record, the outer record is treated as malformed
// and only the nested records are used, scanned in positional order.
// Otherwise the record itself is the candidate.
//
// Malformed positions are skipped; the function never panics and returns an
// empty slice in the worst case.
func ExtractCollections(records []RawCollectionRecord) []CollectionDescriptor {
	out := make([]CollectionDescriptor, 0, len(records))
	seen := make(map[string]struct{})

	add := func(fields []any) {
		d, ok := describe(fields)
		if !ok {
			return
		}
		if _, dup := seen[d.CanisterKey]; dup {
			return
		}
		seen[d.CanisterKey] = struct{}{}
		out = append(out, d)
	}

	for _, rec := range records {
		nested := nestedRecords(rec)
		if len(nested) > 0 {
			for _, fields := range nested {
				add(fields)
			}
			continue
		}
		if len(rec) >= tupleArity {
			add(rec[:tupleArity])
		}
	}
	return out
}

// nestedRecords returns the nested records held in rec's positions.
func nestedRecords(rec RawCollectionRecord) [][]any {
	var nested [][]any
	for i := 0; i < len(rec) && i < tupleArity; i++ {
		if fields, ok := asRecord(rec[i]); ok {
			nested = append(nested, fields)
		}
	}
	return nested
}

// asRecord reports whether v is shaped like a collection record and returns
// its first five fields.
func asRecord(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		if len(t) >= tupleArity {
			return t[:tupleArity], true
		}
	case RawCollectionRecord:
		if len(t) >= tupleArity {
			return t[:tupleArity], true
		}
	}
	return nil, false
}

// describe builds a descriptor from the five fields of a record.
// ok is false when the record has no usable canister key.
func describe(fields []any) (d CollectionDescriptor, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			d, ok = CollectionDescriptor{}, false
		}
	}()

	ref := NewCanisterReference(fields[1])
	key := strings.TrimSpace(referenceKey(ref))
	if utils.IsUnsetText(key) {
		return CollectionDescriptor{}, false
	}

	return CollectionDescriptor{
		CanisterKey: key,
		Ref:         ref,
		DisplayName: displayName(fields[2]),
		Symbol:      symbol(fields[3]),
		Timestamp:   utils.ToInt64(fields[0]),
		Metadata:    ParseMetadata(fields[4]),
	}, true
}

// displayName accepts a plain string or a record-shaped value whose third
// element is the name.
func displayName(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		if len(t) >= 3 {
			if s, ok := t[2].(string); ok {
				return s
			}
		}
	}
	return ""
}

func symbol(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// ParseMetadata decodes a metadata blob into a JSON object.
// The blob may be a JSON string, a one-element optional holding one, or an
// already decoded object. Anything else, including invalid JSON, yields an
// empty, non-nil map.
func ParseMetadata(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		return t
	case string:
		return parseObject(t)
	case []byte:
		return parseObject(string(t))
	case []any:
		if len(t) > 0 {
			return ParseMetadata(t[0])
		}
	}
	return map[string]any{}
}

func parseObject(s string) map[string]any {
	if utils.IsUnsetText(s) {
		return map[string]any{}
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err != nil || obj == nil {
		return map[string]any{}
	}
	return obj
}
