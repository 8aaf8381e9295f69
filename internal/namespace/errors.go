package namespace

import "errors"

// Sentinel errors returned while resolving and decoding namespaced
// variables. Callers should use [errors.Is] to match against these values;
// the wrapping error always names the offending key.
var (
	// ErrMissingRequiredVariable is returned by [Require] when one of the
	// globally required variables is not present in the environment.
	ErrMissingRequiredVariable = errors.New("required variable is missing")

	// ErrMalformedKey is returned by [Decode] when a key does not match the
	// expected PREFIX__FIELD or PREFIX__SECTION__FIELD grammar.
	ErrMalformedKey = errors.New("variable does not match key grammar")
)
