package canonical

import "github.com/erraggy/schemaconv/diag"

// This file implements allOf normalization. oneOf/anyOf are never merged:
// they represent true alternation and each target decides its own
// representation.

// MergeAllOf merges allOf members left to right into a single schema.
// Members that are $ref are resolved (via TryResolveRef) before merging.
// Scalar and metadata fields use last-write-wins, property maps are unioned
// with later keys overwriting same-named earlier ones, and required sets are
// unioned. The inputs are never mutated.
//
// A conflicting pair of members can produce an unsatisfiable result (for
// example a maximum below a minimum); no validation step flags this.
func MergeAllOf(members []*Schema, root *Document, d *diag.Collector) *Schema {
	merged := &Schema{}
	for _, member := range members {
		if member == nil {
			continue
		}
		if member.IsRef() {
			member = TryResolveRef(member.Ref, root, d)
		}
		if len(member.AllOf) > 0 {
			// Flatten nested allOf so the result is never allOf-driven.
			inner := member.DeepCopy()
			nested := inner.AllOf
			inner.AllOf = nil
			member = MergeAllOf(append([]*Schema{inner}, nested...), root, d)
		}
		merged = MergeSchemas(merged, member)
	}
	return merged
}

// MergeSchemas deep-merges override into base and returns a new schema.
// Neither input is mutated. Fields set on override win; properties are
// unioned with override keys replacing base keys; required names are
// unioned preserving base order first.
func MergeSchemas(base, override *Schema) *Schema {
	if base == nil {
		return override.DeepCopy()
	}
	if override == nil {
		return base.DeepCopy()
	}

	merged := base.DeepCopy()
	over := override.DeepCopy()

	// Scalar and metadata fields: last write wins.
	if over.Ref != "" {
		merged.Ref = over.Ref
	}
	if over.Title != "" {
		merged.Title = over.Title
	}
	if over.Description != "" {
		merged.Description = over.Description
	}
	if over.Default != nil {
		merged.Default = over.Default
	}
	if over.Deprecated {
		merged.Deprecated = true
	}
	if over.ReadOnly {
		merged.ReadOnly = true
	}
	if over.WriteOnly {
		merged.WriteOnly = true
	}
	if over.Nullable {
		merged.Nullable = true
	}
	if over.Type != "" {
		merged.Type = over.Type
	}
	if over.Format != "" {
		merged.Format = over.Format
	}
	if over.Enum != nil {
		merged.Enum = over.Enum
	}
	if over.Const != nil {
		merged.Const = over.Const
	}
	if over.Pattern != "" {
		merged.Pattern = over.Pattern
	}
	if over.MultipleOf != nil {
		merged.MultipleOf = over.MultipleOf
	}
	if over.Maximum != nil {
		merged.Maximum = over.Maximum
	}
	if over.ExclusiveMaximum != nil {
		merged.ExclusiveMaximum = over.ExclusiveMaximum
	}
	if over.Minimum != nil {
		merged.Minimum = over.Minimum
	}
	if over.ExclusiveMinimum != nil {
		merged.ExclusiveMinimum = over.ExclusiveMinimum
	}
	if over.MaxLength != nil {
		merged.MaxLength = over.MaxLength
	}
	if over.MinLength != nil {
		merged.MinLength = over.MinLength
	}
	if over.MaxItems != nil {
		merged.MaxItems = over.MaxItems
	}
	if over.MinItems != nil {
		merged.MinItems = over.MinItems
	}
	if over.UniqueItems {
		merged.UniqueItems = true
	}
	if over.MaxProperties != nil {
		merged.MaxProperties = over.MaxProperties
	}
	if over.MinProperties != nil {
		merged.MinProperties = over.MinProperties
	}
	if over.Items != nil {
		merged.Items = over.Items
	}
	if over.AdditionalProperties != nil {
		merged.AdditionalProperties = over.AdditionalProperties
	}

	// Property maps are unioned; later keys overwrite earlier ones.
	if len(over.Properties) > 0 {
		if merged.Properties == nil {
			merged.Properties = make(map[string]*Schema, len(over.Properties))
		}
		for name, prop := range over.Properties {
			merged.Properties[name] = prop
		}
	}

	// Required sets are unioned.
	if len(over.Required) > 0 {
		seen := merged.RequiredSet()
		for _, name := range over.Required {
			if _, ok := seen[name]; ok {
				continue
			}
			merged.Required = append(merged.Required, name)
		}
	}

	// Composition lists: last write wins, matching scalar behavior. Nested
	// allOf members are normalized by the caller before merging.
	if len(over.AllOf) > 0 {
		merged.AllOf = over.AllOf
	}
	if len(over.AnyOf) > 0 {
		merged.AnyOf = over.AnyOf
	}
	if len(over.OneOf) > 0 {
		merged.OneOf = over.OneOf
	}

	return merged
}
