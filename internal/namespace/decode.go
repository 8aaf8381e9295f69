package namespace

import (
	"fmt"
	"strings"
)

const (
	// Delimiter separates the components of a namespaced key.
	Delimiter = "__"

	// EncodedSpace stands for a literal space inside a section name
	// (e.g. "storage0x20backend" is the section "storage backend").
	EncodedSpace = "0x20"
)

// Key grammars accepted by [Decode].
const (
	ArityField   = 2 // PREFIX__FIELD
	AritySection = 3 // PREFIX__SECTION__FIELD
)

// Key is a decoded namespaced key. Section is empty for the two-part grammar.
type Key struct {
	Prefix  string
	Section string
	Field   string
}

// Decode splits key on [Delimiter] and checks it against the expected arity.
// The encoded space token is replaced only inside the section component.
func Decode(key string, arity int) (Key, error) {
	parts := strings.Split(key, Delimiter)
	if len(parts) != arity {
		return Key{}, fmt.Errorf("%w: %q must have %d components, got %d", ErrMalformedKey, key, arity, len(parts))
	}

	for _, part := range parts[:len(parts)-1] {
		if part == "" {
			return Key{}, fmt.Errorf("%w: %q has an empty component", ErrMalformedKey, key)
		}
	}

	switch arity {
	case ArityField:
		return Key{Prefix: parts[0], Field: parts[1]}, nil
	case AritySection:
		section := strings.ReplaceAll(parts[1], EncodedSpace, " ")
		return Key{Prefix: parts[0], Section: section, Field: parts[2]}, nil
	default:
		return Key{}, fmt.Errorf("%w: unsupported arity %d for %q", ErrMalformedKey, arity, key)
	}
}
