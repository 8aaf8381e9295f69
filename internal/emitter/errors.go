package emitter

import "errors"

// Sentinel errors returned by the emitters. The wrapping error names the
// offending key or document.
var (
	// ErrUnsupportedVariable is returned when a variable is recognised but
	// cannot be expressed by the target (e.g. list- or dict-valued Django
	// settings, or an unknown cache backend selector).
	ErrUnsupportedVariable = errors.New("variable is not supported")

	// ErrExternalDocumentParse is returned when an external document that is
	// embedded into a target cannot be parsed.
	ErrExternalDocumentParse = errors.New("failed to parse external document")
)
