package canonical

// This file implements deep copying for canonical schemas. Conversion never
// mutates caller-owned input; merge and normalization work on copies.

// DeepCopy returns a deep copy of the schema. A nil receiver returns nil.
func (s *Schema) DeepCopy() *Schema {
	if s == nil {
		return nil
	}

	cp := *s

	cp.Default = deepCopyJSONValue(s.Default)
	cp.Const = deepCopyJSONValue(s.Const)

	if s.Enum != nil {
		cp.Enum = make([]any, len(s.Enum))
		for i, v := range s.Enum {
			cp.Enum[i] = deepCopyJSONValue(v)
		}
	}

	cp.MultipleOf = copyFloatPtr(s.MultipleOf)
	cp.Maximum = copyFloatPtr(s.Maximum)
	cp.ExclusiveMaximum = copyFloatPtr(s.ExclusiveMaximum)
	cp.Minimum = copyFloatPtr(s.Minimum)
	cp.ExclusiveMinimum = copyFloatPtr(s.ExclusiveMinimum)
	cp.MaxLength = copyIntPtr(s.MaxLength)
	cp.MinLength = copyIntPtr(s.MinLength)
	cp.MaxItems = copyIntPtr(s.MaxItems)
	cp.MinItems = copyIntPtr(s.MinItems)
	cp.MaxProperties = copyIntPtr(s.MaxProperties)
	cp.MinProperties = copyIntPtr(s.MinProperties)

	cp.Items = s.Items.deepCopy()
	cp.AdditionalProperties = s.AdditionalProperties.deepCopy()

	if s.Properties != nil {
		cp.Properties = make(map[string]*Schema, len(s.Properties))
		for name, prop := range s.Properties {
			cp.Properties[name] = prop.DeepCopy()
		}
	}
	if s.Required != nil {
		cp.Required = make([]string, len(s.Required))
		copy(cp.Required, s.Required)
	}

	cp.AllOf = deepCopySchemaSlice(s.AllOf)
	cp.AnyOf = deepCopySchemaSlice(s.AnyOf)
	cp.OneOf = deepCopySchemaSlice(s.OneOf)

	return &cp
}

func (it *ItemsSpec) deepCopy() *ItemsSpec {
	if it == nil {
		return nil
	}
	return &ItemsSpec{
		Schema: it.Schema.DeepCopy(),
		Tuple:  deepCopySchemaSlice(it.Tuple),
	}
}

func (sb *SchemaOrBool) deepCopy() *SchemaOrBool {
	if sb == nil {
		return nil
	}
	cp := &SchemaOrBool{Schema: sb.Schema.DeepCopy()}
	if sb.Bool != nil {
		b := *sb.Bool
		cp.Bool = &b
	}
	return cp
}

func deepCopySchemaSlice(members []*Schema) []*Schema {
	if members == nil {
		return nil
	}
	cp := make([]*Schema, len(members))
	for i, m := range members {
		cp[i] = m.DeepCopy()
	}
	return cp
}

// deepCopyJSONValue recursively deep copies any JSON-compatible value.
// This handles Default, Const, and enum members, which can hold arbitrary
// JSON values.
func deepCopyJSONValue(v any) any {
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case map[string]any:
		cp := make(map[string]any, len(t))
		for k, val := range t {
			cp[k] = deepCopyJSONValue(val)
		}
		return cp
	case []any:
		cp := make([]any, len(t))
		for i, val := range t {
			cp[i] = deepCopyJSONValue(val)
		}
		return cp
	default:
		// Scalars (string, bool, numeric types) are value-copied.
		return t
	}
}

func copyFloatPtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
