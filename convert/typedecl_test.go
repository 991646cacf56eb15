package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/schemaconv/canonical"
)

func TestGenerateTypeDeclStruct(t *testing.T) {
	got := generateTypeDecl(userSchema(), "user", DefaultOptions())

	assert.Contains(t, got, "// User is the Go shape of conforming values.")
	assert.Contains(t, got, "type User struct {")
	assert.Contains(t, got, "Id int64 `json:\"id\"`")
	assert.Contains(t, got, "Email *string `json:\"email,omitempty\"`")
}

func TestGenerateTypeDeclAliases(t *testing.T) {
	tests := []struct {
		name   string
		schema *canonical.Schema
		want   string
	}{
		{"string", &canonical.Schema{Type: canonical.TypeString}, "type Name = string"},
		{"integer", &canonical.Schema{Type: canonical.TypeInteger}, "type Name = int64"},
		{"number", &canonical.Schema{Type: canonical.TypeNumber}, "type Name = float64"},
		{"boolean", &canonical.Schema{Type: canonical.TypeBoolean}, "type Name = bool"},
		{"universal", &canonical.Schema{}, "type Name = any"},
		{
			"string array",
			&canonical.Schema{Type: canonical.TypeArray, Items: canonical.SingleItems(&canonical.Schema{Type: canonical.TypeString})},
			"type Name = []string",
		},
		{
			"tuple flattens to any slice",
			&canonical.Schema{Type: canonical.TypeArray, Items: canonical.TupleItems(&canonical.Schema{Type: canonical.TypeString}, &canonical.Schema{Type: canonical.TypeNumber})},
			"type Name = []any",
		},
		{
			"open object",
			&canonical.Schema{Type: canonical.TypeObject},
			"type Name = map[string]any",
		},
		{
			"typed map",
			&canonical.Schema{
				Type:                 canonical.TypeObject,
				AdditionalProperties: canonical.AdditionalSchema(&canonical.Schema{Type: canonical.TypeInteger}),
			},
			"type Name = map[string]int64",
		},
		{
			"string enum",
			&canonical.Schema{Type: canonical.TypeString, Enum: []any{"a", "b"}},
			"type Name = string",
		},
		{
			"multi alternation widens",
			&canonical.Schema{OneOf: []*canonical.Schema{{Type: canonical.TypeString}, {Type: canonical.TypeNumber}}},
			"type Name = any",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generateTypeDecl(tt.schema, "Name", DefaultOptions())
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestGenerateTypeDeclMergesAllOf(t *testing.T) {
	s := &canonical.Schema{
		AllOf: []*canonical.Schema{
			{Type: canonical.TypeObject, Properties: map[string]*canonical.Schema{"a": {Type: canonical.TypeString}}, Required: []string{"a"}},
			{Properties: map[string]*canonical.Schema{"b": {Type: canonical.TypeInteger}}},
		},
	}

	got := generateTypeDecl(s, "Pair", DefaultOptions())
	assert.Contains(t, got, "type Pair struct {")
	assert.Contains(t, got, "A string `json:\"a\"`")
	assert.Contains(t, got, "B *int64 `json:\"b,omitempty\"`")
}

func TestGenerateTypeDeclRequireAll(t *testing.T) {
	opts := DefaultOptions()
	opts.RequireAllByDefault = true

	got := generateTypeDecl(userSchema(), "User", opts)
	assert.Contains(t, got, "Email string `json:\"email\"`")
	assert.NotContains(t, got, "omitempty")
}

func TestEmitTypeDeclAppendsToCode(t *testing.T) {
	opts := DefaultOptions()
	opts.EmitTypeDecl = true

	res, err := GenerateCodeResult(userSchema(), "User", TargetOzzo, opts)
	require.NoError(t, err)
	assert.Contains(t, res.Code, "var UserRules = []validation.Rule{")
	assert.Contains(t, res.Code, "type User struct {")
}
