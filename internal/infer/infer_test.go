package infer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		raw      string
		wantKind Kind
	}{
		{raw: "true", wantKind: Bool},
		{raw: "FALSE", wantKind: Bool},
		{raw: "True", wantKind: Bool},
		{raw: "123", wantKind: Integer},
		{raw: "0", wantKind: Integer},
		{raw: "12.3", wantKind: String},
		{raw: "-1", wantKind: String},
		{raw: "+1", wantKind: String},
		{raw: "abc", wantKind: String},
		{raw: "", wantKind: String},
		{raw: "yes", wantKind: String},
		{raw: "١٢٣", wantKind: String},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := Infer(tt.raw)
			assert.Equal(t, tt.wantKind, got.Kind, "kind of %q", tt.raw)
			assert.Equal(t, tt.raw, got.Raw)
		})
	}
}

func TestValue_Bool(t *testing.T) {
	assert.True(t, Infer("TRUE").Bool())
	assert.False(t, Infer("false").Bool())
}

func TestValue_Digits(t *testing.T) {
	assert.Equal(t, "123", Infer("123").Digits())
	assert.Equal(t, "7", Infer("007").Digits())
	assert.Equal(t, "0", Infer("000").Digits())
}

func TestValue_MarshalJSON(t *testing.T) {
	doc := map[string]Value{
		"bool":   Infer("true"),
		"int":    Infer("3306"),
		"big":    Infer("123456789012345678901234567890"),
		"float":  Infer("12.3"),
		"string": Infer(`say "hi"`),
	}

	out, err := json.Marshal(doc)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"bool": true,
		"int": 3306,
		"big": 123456789012345678901234567890,
		"float": "12.3",
		"string": "say \"hi\""
	}`, string(out))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "bool", Bool.String())
	assert.Equal(t, "integer", Integer.String())
	assert.Equal(t, "string", String.String())
}
