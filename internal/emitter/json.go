package emitter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/seatable-init/internal/infer"
	"github.com/MKhiriev/seatable-init/internal/namespace"
)

// JSON renders PREFIX__FIELD variables as a flat JSON object with inferred
// value types, keys sorted, indented by four spaces and terminated by a
// newline.
func JSON(vars map[string]string) ([]byte, error) {
	doc := make(map[string]infer.Value, len(vars))
	for _, key := range namespace.SortedKeys(vars) {
		decoded, err := namespace.Decode(key, namespace.ArityField)
		if err != nil {
			return nil, err
		}

		doc[decoded.Field] = infer.Infer(vars[key])
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("error encoding json document: %w", err)
	}

	return buf.Bytes(), nil
}
