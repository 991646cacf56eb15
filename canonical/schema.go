package canonical

import (
	"fmt"
	"sort"

	"go.yaml.in/yaml/v4"
)

// Primitive type names accepted in Schema.Type.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
	TypeNull    = "null"
)

// Schema represents one node of a canonical schema tree.
// Supports the OpenAPI 3.x / JSON Schema subset shared by all conversion targets.
type Schema struct {
	// JSON Schema Core
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	ReadOnly    bool   `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly   bool   `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"`
	Nullable    bool   `yaml:"nullable,omitempty" json:"nullable,omitempty"`

	// Type validation
	Type   string `yaml:"type,omitempty" json:"type,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	Enum   []any  `yaml:"enum,omitempty" json:"enum,omitempty"`
	Const  any    `yaml:"const,omitempty" json:"const,omitempty"`

	// Numeric validation
	MultipleOf       *float64 `yaml:"multipleOf,omitempty" json:"multipleOf,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	ExclusiveMaximum *float64 `yaml:"exclusiveMaximum,omitempty" json:"exclusiveMaximum,omitempty"`
	Minimum          *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	ExclusiveMinimum *float64 `yaml:"exclusiveMinimum,omitempty" json:"exclusiveMinimum,omitempty"`

	// String validation
	MaxLength *int   `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinLength *int   `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	Pattern   string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Array validation
	Items       *ItemsSpec `yaml:"items,omitempty" json:"items,omitempty"`
	MaxItems    *int       `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	MinItems    *int       `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	UniqueItems bool       `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`

	// Object validation
	Properties           map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required             []string           `yaml:"required,omitempty" json:"required,omitempty"`
	AdditionalProperties *SchemaOrBool      `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`
	MaxProperties        *int               `yaml:"maxProperties,omitempty" json:"maxProperties,omitempty"`
	MinProperties        *int               `yaml:"minProperties,omitempty" json:"minProperties,omitempty"`

	// Schema composition
	AllOf []*Schema `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	OneOf []*Schema `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
}

// ItemsSpec holds the items keyword, which is either a single schema or a
// fixed list of schemas (tuple form).
type ItemsSpec struct {
	// Schema is the single-schema form (homogeneous arrays)
	Schema *Schema
	// Tuple is the fixed-list form; the array is expected to have exactly
	// len(Tuple) elements
	Tuple []*Schema
}

// SingleItems wraps a schema in the single-schema items form.
func SingleItems(s *Schema) *ItemsSpec {
	return &ItemsSpec{Schema: s}
}

// TupleItems wraps a fixed list of schemas in the tuple items form.
func TupleItems(members ...*Schema) *ItemsSpec {
	return &ItemsSpec{Tuple: members}
}

// IsTuple reports whether the fixed-list form is in use.
func (it *ItemsSpec) IsTuple() bool {
	return it != nil && len(it.Tuple) > 0
}

// UnmarshalYAML decodes either a mapping (single schema) or a sequence (tuple).
func (it *ItemsSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		s := &Schema{}
		if err := node.Decode(s); err != nil {
			return err
		}
		it.Schema = s
		return nil
	case yaml.SequenceNode:
		var members []*Schema
		if err := node.Decode(&members); err != nil {
			return err
		}
		it.Tuple = members
		return nil
	default:
		return fmt.Errorf("items: expected mapping or sequence, got %v", node.Kind)
	}
}

// MarshalYAML encodes the active form.
func (it *ItemsSpec) MarshalYAML() (any, error) {
	if it.IsTuple() {
		return it.Tuple, nil
	}
	return it.Schema, nil
}

// SchemaOrBool holds a field that is either a boolean switch or a schema,
// such as additionalProperties.
type SchemaOrBool struct {
	// Bool is set when the boolean form is in use
	Bool *bool
	// Schema is set when the schema form is in use
	Schema *Schema
}

// AdditionalAllowed returns the boolean form helper.
func AdditionalAllowed(allowed bool) *SchemaOrBool {
	return &SchemaOrBool{Bool: &allowed}
}

// AdditionalSchema returns the schema form helper.
func AdditionalSchema(s *Schema) *SchemaOrBool {
	return &SchemaOrBool{Schema: s}
}

// UnmarshalYAML decodes either a boolean scalar or a mapping.
func (sb *SchemaOrBool) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		sb.Bool = &b
		return nil
	case yaml.MappingNode:
		s := &Schema{}
		if err := node.Decode(s); err != nil {
			return err
		}
		sb.Schema = s
		return nil
	default:
		return fmt.Errorf("additionalProperties: expected boolean or mapping, got %v", node.Kind)
	}
}

// MarshalYAML encodes the active form.
func (sb *SchemaOrBool) MarshalYAML() (any, error) {
	if sb.Bool != nil {
		return *sb.Bool, nil
	}
	return sb.Schema, nil
}

// IsRef reports whether the node is driven by a $ref.
func (s *Schema) IsRef() bool {
	return s != nil && s.Ref != ""
}

// IsComposite reports whether the node is driven by allOf, oneOf, or anyOf.
func (s *Schema) IsComposite() bool {
	if s == nil {
		return false
	}
	return len(s.AllOf) > 0 || len(s.OneOf) > 0 || len(s.AnyOf) > 0
}

// IsUniversal reports whether the node accepts any value: no type, no
// composition, no ref, no enum/const. Metadata does not affect universality.
func (s *Schema) IsUniversal() bool {
	if s == nil {
		return true
	}
	return s.Type == "" && !s.IsComposite() && !s.IsRef() &&
		len(s.Enum) == 0 && s.Const == nil
}

// RequiredSet returns the required property names as a set.
func (s *Schema) RequiredSet() map[string]struct{} {
	if s == nil || len(s.Required) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(s.Required))
	for _, name := range s.Required {
		set[name] = struct{}{}
	}
	return set
}

// PropertyNames returns the property names in sorted order. Property maps are
// order-irrelevant in the canonical model; sorting keeps conversion output
// deterministic.
func (s *Schema) PropertyNames() []string {
	if s == nil || len(s.Properties) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the model invariants that canonical producers must uphold.
// It is a structural check only; it does not resolve refs.
func (s *Schema) Validate() error {
	if s == nil {
		return nil
	}
	for _, name := range s.Required {
		if _, ok := s.Properties[name]; !ok {
			return fmt.Errorf("required name %q is not a key of properties", name)
		}
	}
	drivers := 0
	if s.Type != "" {
		drivers++
	}
	if s.IsComposite() {
		drivers++
	}
	if s.IsRef() {
		drivers++
	}
	if drivers > 1 {
		return fmt.Errorf("schema is driven by more than one of type, composition, $ref")
	}
	switch s.Type {
	case "", TypeString, TypeNumber, TypeInteger, TypeBoolean, TypeArray, TypeObject, TypeNull:
	default:
		return fmt.Errorf("unknown primitive type %q", s.Type)
	}
	for _, name := range s.PropertyNames() {
		if err := s.Properties[name].Validate(); err != nil {
			return fmt.Errorf("properties.%s: %w", name, err)
		}
	}
	return nil
}
