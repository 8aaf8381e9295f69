package emitter

import (
	"github.com/MKhiriev/seatable-init/internal/attrmap"
	"github.com/MKhiriev/seatable-init/internal/namespace"
)

// FieldKind is the closed set of treatments a DTABLE_WEB__ variable can
// receive in the settings module.
type FieldKind int

const (
	// FieldDefault is emitted as "FIELD = <inferred literal>".
	FieldDefault FieldKind = iota
	// FieldExtensionList is a comma separated list emitted as a tuple.
	FieldExtensionList
	// FieldScopeList is a comma separated list emitted as a list.
	FieldScopeList
	// FieldExcluded is consumed by the CACHES block.
	FieldExcluded
	// FieldAttributeMap is consumed by the attribute map blocks.
	FieldAttributeMap
	// FieldUnsupported aborts generation.
	FieldUnsupported
)

func (k FieldKind) String() string {
	switch k {
	case FieldExtensionList:
		return "extension-list"
	case FieldScopeList:
		return "scope-list"
	case FieldExcluded:
		return "excluded"
	case FieldAttributeMap:
		return "attribute-map"
	case FieldUnsupported:
		return "unsupported"
	default:
		return "default"
	}
}

const (
	keyCacheBackend = namespace.PrefixDtableWeb + "CACHE_BACKEND"
	keyCacheHost    = namespace.PrefixDtableWeb + "CACHE_HOST"
	keyCachePort    = namespace.PrefixDtableWeb + "CACHE_PORT"
)

var (
	extensionListKeys = map[string]struct{}{
		namespace.PrefixDtableWeb + "OFFICE_WEB_APP_FILE_EXTENSION":      {},
		namespace.PrefixDtableWeb + "OFFICE_WEB_APP_EDIT_FILE_EXTENSION": {},
		namespace.PrefixDtableWeb + "ONLYOFFICE_FILE_EXTENSION":          {},
		namespace.PrefixDtableWeb + "ONLYOFFICE_EDIT_FILE_EXTENSION":     {},
	}

	scopeListKey = namespace.PrefixDtableWeb + "OAUTH_SCOPE"

	excludedKeys = map[string]struct{}{
		keyCacheBackend: {},
		keyCacheHost:    {},
		keyCachePort:    {},
	}

	// Django settings whose values are lists or dicts of their own.
	unsupportedKeys = map[string]struct{}{
		namespace.PrefixDtableWeb + "API_THROTTLE_RATES":                 {},
		namespace.PrefixDtableWeb + "CUSTOM_COLORS":                      {},
		namespace.PrefixDtableWeb + "LANGUAGES":                          {},
		namespace.PrefixDtableWeb + "REST_FRAMEWORK_THROTTING_WHITELIST": {},
	}
)

// Classify returns the treatment of a fully qualified DTABLE_WEB__ key.
// The checks run in a fixed precedence order and the first match wins.
func Classify(key string) FieldKind {
	if _, ok := extensionListKeys[key]; ok {
		return FieldExtensionList
	}

	if key == scopeListKey {
		return FieldScopeList
	}

	if _, ok := excludedKeys[key]; ok {
		return FieldExcluded
	}

	if attrmap.IsUnder(key) {
		return FieldAttributeMap
	}

	if _, ok := unsupportedKeys[key]; ok {
		return FieldUnsupported
	}

	return FieldDefault
}
