package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestSchemaPredicates(t *testing.T) {
	tests := []struct {
		name      string
		schema    *Schema
		ref       bool
		composite bool
		universal bool
	}{
		{name: "nil schema", schema: nil, universal: true},
		{name: "empty schema", schema: &Schema{}, universal: true},
		{name: "metadata only stays universal", schema: &Schema{Title: "t", Description: "d"}, universal: true},
		{name: "ref", schema: &Schema{Ref: "#/components/schemas/User"}, ref: true},
		{name: "typed", schema: &Schema{Type: TypeString}},
		{name: "allOf", schema: &Schema{AllOf: []*Schema{{Type: TypeString}}}, composite: true},
		{name: "oneOf", schema: &Schema{OneOf: []*Schema{{Type: TypeString}}}, composite: true},
		{name: "anyOf", schema: &Schema{AnyOf: []*Schema{{Type: TypeString}}}, composite: true},
		{name: "enum", schema: &Schema{Enum: []any{"a"}}},
		{name: "const", schema: &Schema{Const: "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ref, tt.schema.IsRef())
			assert.Equal(t, tt.composite, tt.schema.IsComposite())
			assert.Equal(t, tt.universal, tt.schema.IsUniversal())
		})
	}
}

func TestPropertyNamesSorted(t *testing.T) {
	s := &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"zeta":  {Type: TypeString},
			"alpha": {Type: TypeString},
			"mu":    {Type: TypeString},
		},
	}
	assert.Equal(t, []string{"alpha", "mu", "zeta"}, s.PropertyNames())
	assert.Nil(t, (*Schema)(nil).PropertyNames())
}

func TestRequiredSet(t *testing.T) {
	s := &Schema{Required: []string{"a", "b"}}
	set := s.RequiredSet()
	assert.Len(t, set, 2)
	_, ok := set["a"]
	assert.True(t, ok)
	_, ok = set["c"]
	assert.False(t, ok)
	assert.Nil(t, (&Schema{}).RequiredSet())
}

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name    string
		schema  *Schema
		wantErr string
	}{
		{name: "nil is valid", schema: nil},
		{name: "empty is valid", schema: &Schema{}},
		{
			name: "required names must be properties",
			schema: &Schema{
				Type:       TypeObject,
				Properties: map[string]*Schema{"a": {Type: TypeString}},
				Required:   []string{"a", "ghost"},
			},
			wantErr: `required name "ghost"`,
		},
		{
			name:    "at most one driver",
			schema:  &Schema{Type: TypeString, AllOf: []*Schema{{Type: TypeString}}},
			wantErr: "more than one",
		},
		{
			name:    "unknown primitive type",
			schema:  &Schema{Type: "tuple"},
			wantErr: `unknown primitive type "tuple"`,
		},
		{
			name: "nested failure carries path",
			schema: &Schema{
				Type:       TypeObject,
				Properties: map[string]*Schema{"bad": {Type: "wat"}},
			},
			wantErr: "properties.bad",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestItemsSpecYAML(t *testing.T) {
	t.Run("single schema form", func(t *testing.T) {
		var s Schema
		require.NoError(t, yaml.Unmarshal([]byte("type: array\nitems:\n  type: string\n"), &s))
		require.NotNil(t, s.Items)
		assert.False(t, s.Items.IsTuple())
		require.NotNil(t, s.Items.Schema)
		assert.Equal(t, TypeString, s.Items.Schema.Type)
	})

	t.Run("tuple form", func(t *testing.T) {
		var s Schema
		require.NoError(t, yaml.Unmarshal([]byte("type: array\nitems:\n- type: string\n- type: number\n"), &s))
		require.NotNil(t, s.Items)
		assert.True(t, s.Items.IsTuple())
		require.Len(t, s.Items.Tuple, 2)
		assert.Equal(t, TypeString, s.Items.Tuple[0].Type)
		assert.Equal(t, TypeNumber, s.Items.Tuple[1].Type)
	})

	t.Run("scalar form rejected", func(t *testing.T) {
		var s Schema
		assert.Error(t, yaml.Unmarshal([]byte("items: 42\n"), &s))
	})

	t.Run("round trip", func(t *testing.T) {
		in := &Schema{Type: TypeArray, Items: TupleItems(&Schema{Type: TypeString}, &Schema{Type: TypeInteger})}
		data, err := yaml.Marshal(in)
		require.NoError(t, err)
		var out Schema
		require.NoError(t, yaml.Unmarshal(data, &out))
		assert.True(t, out.Items.IsTuple())
		assert.Len(t, out.Items.Tuple, 2)
	})
}

func TestSchemaOrBoolYAML(t *testing.T) {
	t.Run("boolean form", func(t *testing.T) {
		var s Schema
		require.NoError(t, yaml.Unmarshal([]byte("type: object\nadditionalProperties: false\n"), &s))
		require.NotNil(t, s.AdditionalProperties)
		require.NotNil(t, s.AdditionalProperties.Bool)
		assert.False(t, *s.AdditionalProperties.Bool)
		assert.Nil(t, s.AdditionalProperties.Schema)
	})

	t.Run("schema form", func(t *testing.T) {
		var s Schema
		require.NoError(t, yaml.Unmarshal([]byte("type: object\nadditionalProperties:\n  type: string\n"), &s))
		require.NotNil(t, s.AdditionalProperties)
		assert.Nil(t, s.AdditionalProperties.Bool)
		require.NotNil(t, s.AdditionalProperties.Schema)
		assert.Equal(t, TypeString, s.AdditionalProperties.Schema.Type)
	})

	t.Run("sequence form rejected", func(t *testing.T) {
		var s Schema
		assert.Error(t, yaml.Unmarshal([]byte("additionalProperties:\n- nope\n"), &s))
	})
}
