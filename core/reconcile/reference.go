package reconcile

import "metabuild-hub/core/utils"

// IdentityField is the key a serialized principal carries in decoded JSON.
const IdentityField = "__principal__"

// CanisterReference identifies a collection canister. Key returns its stable
// textual identity, which is also what backends use to address it.
type CanisterReference interface {
	Key() string
}

// Texter is implemented by identity types that have a canonical text form,
// such as principals.
type Texter interface {
	Text() string
}

// TextReference is a reference backed by a value with a text form.
type TextReference struct {
	Value Texter
}

func (r TextReference) Key() string { return r.Value.Text() }

// IdentityReference is a principal decoded from its JSON object form.
type IdentityReference string

func (r IdentityReference) Key() string { return string(r) }

// OpaqueReference is any other value; its key is the value's string form.
type OpaqueReference struct {
	Value any
}

func (r OpaqueReference) Key() string { return utils.ToString(r.Value) }

// NewCanisterReference classifies a raw canister value.
//
// A creator/canister pair, as returned when a collection is created, resolves
// to its second element, and a one-element optional resolves to its content.
func NewCanisterReference(v any) CanisterReference {
	switch t := v.(type) {
	case CanisterReference:
		return t
	case Texter:
		return TextReference{Value: t}
	case map[string]any:
		if id, ok := t[IdentityField].(string); ok {
			return IdentityReference(id)
		}
	case []any:
		switch {
		case len(t) == 1:
			return NewCanisterReference(t[0])
		case len(t) >= 2 && len(t) < tupleArity:
			return NewCanisterReference(t[1])
		}
	}
	return OpaqueReference{Value: v}
}

// referenceKey returns ref's key, or "" if computing it panics.
func referenceKey(ref CanisterReference) (key string) {
	defer func() {
		if r := recover(); r != nil {
			key = ""
		}
	}()
	if ref == nil {
		return ""
	}
	return ref.Key()
}
