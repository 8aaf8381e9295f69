// Package attrmap builds the single-sign-on attribute maps of the web
// settings module: reverse lookups from an identity provider's claim name
// to the canonical user attribute.
package attrmap

import (
	"strings"

	"github.com/MKhiriev/seatable-init/internal/literal"
	"github.com/MKhiriev/seatable-init/internal/namespace"
)

// Namespace roots probed for each protocol.
const (
	OAuthRoot = namespace.PrefixDtableWeb + "OAUTH_ATTRIBUTE_MAP" + namespace.Delimiter
	SAMLRoot  = namespace.PrefixDtableWeb + "SAML_ATTRIBUTE_MAP" + namespace.Delimiter
)

// CanonicalAttributes is the closed set of user attributes, in probe order.
var CanonicalAttributes = []string{"uid", "name", "contact_email", "user_role", "employee_id"}

// Map is an ordered external-name → canonical-name mapping.
type Map struct {
	dict *literal.Dict
}

// Build probes root+attribute for every canonical attribute and records
// value → attribute for each non-empty value found.
func Build(e namespace.Environment, root string) Map {
	dict := literal.NewDict()
	for _, attribute := range CanonicalAttributes {
		if external := e.Get(root+attribute, ""); external != "" {
			dict.Set(literal.Str(external), literal.Str(attribute))
		}
	}

	return Map{dict: dict}
}

// IsUnder reports whether key belongs to one of the attribute map roots.
func IsUnder(key string) bool {
	return strings.HasPrefix(key, strings.TrimSuffix(OAuthRoot, namespace.Delimiter)) ||
		strings.HasPrefix(key, strings.TrimSuffix(SAMLRoot, namespace.Delimiter))
}

// Len returns the number of entries.
func (m Map) Len() int {
	return m.dict.Len()
}

// Literal returns the map as a Python dict literal.
func (m Map) Literal() literal.Value {
	if m.dict == nil {
		return literal.NewDict()
	}

	return m.dict
}
