// Package infer classifies raw environment strings into the scalar types
// emitted by the typed targets (JSON and the Python settings module).
package infer

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Kind is the inferred type of a raw value.
type Kind int

const (
	String Kind = iota
	Bool
	Integer
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Integer:
		return "integer"
	default:
		return "string"
	}
}

// Value is a raw string together with its inferred kind. For [Integer] the
// raw digits are kept as-is so that values wider than int64 survive.
type Value struct {
	Kind Kind
	Raw  string
}

// Infer applies, in order: case-insensitive "true"/"false" is a boolean; a
// non-empty string of ASCII digits is a non-negative integer; anything else
// (signs and decimal points included) is a string.
func Infer(raw string) Value {
	if strings.EqualFold(raw, "true") || strings.EqualFold(raw, "false") {
		return Value{Kind: Bool, Raw: raw}
	}

	if isDigits(raw) {
		return Value{Kind: Integer, Raw: raw}
	}

	return Value{Kind: String, Raw: raw}
}

// Bool returns the boolean value. Only meaningful for [Bool].
func (v Value) Bool() bool {
	return strings.EqualFold(v.Raw, "true")
}

// Digits returns the integer without leading zeros ("007" is "7").
// Only meaningful for [Integer].
func (v Value) Digits() string {
	d := strings.TrimLeft(v.Raw, "0")
	if d == "" {
		return "0"
	}

	return d
}

// MarshalJSON encodes booleans and integers unquoted and everything else as
// a JSON string.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case Bool:
		return json.Marshal(v.Bool())
	case Integer:
		return []byte(v.Digits()), nil
	default:
		return marshalString(v.Raw)
	}
}

// marshalString quotes s without the HTML escaping of json.Marshal.
func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
