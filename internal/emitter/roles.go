package emitter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/MKhiriev/seatable-init/internal/literal"
)

// ParseDocument converts a JSON document into a Python literal. Object keys
// keep their document order; a repeated key keeps its first position and
// its last value. Trailing data after the document is an error.
func ParseDocument(name string, data []byte) (literal.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	value, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrExternalDocumentParse, name, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: unexpected data after the top-level value", ErrExternalDocumentParse, name)
	}

	return value, nil
}

func decodeValue(dec *json.Decoder) (literal.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return literal.Str(t), nil
	case json.Number:
		return numberLiteral(t)
	case bool:
		return literal.Bool(t), nil
	case nil:
		return literal.None{}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", t)
	}
}

func decodeObject(dec *json.Decoder) (literal.Value, error) {
	dict := literal.NewDict()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", tok)
		}

		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}

		dict.Set(literal.Str(key), value)
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return dict, nil
}

func decodeArray(dec *json.Decoder) (literal.Value, error) {
	list := literal.List{}
	for dec.More() {
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		list = append(list, value)
	}

	// closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return list, nil
}

// numberLiteral maps integral JSON numbers to Int and the rest to Float.
func numberLiteral(n json.Number) (literal.Value, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		i, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, fmt.Errorf("invalid integer %q", s)
		}
		return literal.Int(i.String()), nil
	}

	// Out of range numbers saturate to infinity or zero like float() does.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("invalid number %q: %w", s, err)
	}

	return literal.Float(f), nil
}
