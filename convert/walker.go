package convert

import (
	"fmt"
	"regexp"

	"github.com/erraggy/schemaconv/canonical"
	"github.com/erraggy/schemaconv/diag"
)

// walker drives one Builder over a canonical schema. It owns every
// representability decision: refs, allOf merging, alternation, enum
// strategy, and capability filtering of facets. Builders only execute.
type walker[T any] struct {
	b      Builder[T]
	target Target
	caps   capability
	opts   *Options
	d      *diag.Collector
}

func newWalker[T any](b Builder[T], target Target, opts *Options, d *diag.Collector) *walker[T] {
	return &walker[T]{b: b, target: target, caps: capabilities[target], opts: opts, d: d}
}

func (w *walker[T]) convert(s *canonical.Schema, path string) T {
	if s == nil {
		return w.b.Any()
	}
	if s.IsRef() {
		return w.convert(canonical.TryResolveRef(s.Ref, w.opts.Root, w.d), path)
	}
	if len(s.AllOf) > 0 {
		return w.convert(w.mergeAllOfNode(s), path)
	}
	if len(s.OneOf) > 0 {
		return w.alternation(s, s.OneOf, "oneOf", path)
	}
	if len(s.AnyOf) > 0 {
		return w.alternation(s, s.AnyOf, "anyOf", path)
	}

	node := w.convertValue(s, path)
	if s.Nullable {
		node = w.b.Nullable(node)
	}
	return node
}

// mergeAllOfNode folds the allOf members into one schema and overlays the
// enclosing node's own fields on top, so siblings of allOf win over members.
func (w *walker[T]) mergeAllOfNode(s *canonical.Schema) *canonical.Schema {
	merged := canonical.MergeAllOf(s.AllOf, w.opts.Root, w.d)
	outer := s.DeepCopy()
	outer.AllOf = nil
	return canonical.MergeSchemas(merged, outer)
}

// alternation handles oneOf and anyOf. A single member converts as if it
// stood alone. Targets without a native union construct get the permissive
// schema plus a complex-composition diagnostic.
func (w *walker[T]) alternation(s *canonical.Schema, members []*canonical.Schema, kw, path string) T {
	if len(members) == 1 {
		return w.convert(members[0], joinPath(path, kw+"[0]"))
	}
	if !w.caps.nativeUnion {
		w.d.Addf(diag.KindComplexComposition, path,
			"%s with %d members is not representable on target %s; using permissive schema",
			kw, len(members), w.target)
		return w.b.Any()
	}
	converted := make([]T, 0, len(members))
	for i, m := range members {
		converted = append(converted, w.convert(m, joinPath(path, fmt.Sprintf("%s[%d]", kw, i))))
	}
	node := w.b.Union(converted, kw == "oneOf")
	if s.Nullable {
		node = w.b.Nullable(node)
	}
	return node
}

// convertValue handles const, enum, and the primitive type switch. The
// caller applies nullable wrapping.
func (w *walker[T]) convertValue(s *canonical.Schema, path string) T {
	if s.Const != nil {
		return w.literal(s, s.Const, path)
	}
	if len(s.Enum) > 0 {
		return w.enum(s, path)
	}

	switch s.Type {
	case canonical.TypeString:
		return w.b.String(w.stringFacets(s, path))
	case canonical.TypeNumber:
		return w.b.Number(w.numberFacets(s, path), false)
	case canonical.TypeInteger:
		return w.b.Number(w.numberFacets(s, path), true)
	case canonical.TypeBoolean:
		return w.b.Boolean()
	case canonical.TypeNull:
		if !w.caps.nullType {
			w.d.Addf(diag.KindUnsupportedType, path,
				"null type is not representable on target %s; using permissive schema", w.target)
			return w.b.Any()
		}
		return w.b.Null()
	case canonical.TypeArray:
		return w.array(s, path)
	case canonical.TypeObject:
		return w.object(s, path)
	case "":
		// No declared type: infer object or array shapes, flag orphaned
		// constraints, otherwise the node is genuinely universal.
		switch {
		case len(s.Properties) > 0 || s.AdditionalProperties != nil || len(s.Required) > 0 ||
			s.MinProperties != nil || s.MaxProperties != nil:
			return w.object(s, path)
		case s.Items != nil:
			return w.array(s, path)
		case schemaHasOrphanConstraints(s):
			w.d.Addf(diag.KindUnsupportedType, path,
				"constraints present without a type; using permissive schema")
			return w.b.Any()
		default:
			return w.b.Any()
		}
	default:
		w.d.Addf(diag.KindUnsupportedType, path,
			"unknown type %q; using permissive schema", s.Type)
		return w.b.Any()
	}
}

func (w *walker[T]) literal(s *canonical.Schema, value any, path string) T {
	if w.caps.enumValueOK != nil && !w.caps.enumValueOK(value) {
		w.d.Addf(diag.KindUnsupportedConstraint, path,
			"constant of type %T is not representable on target %s; constraint dropped", value, w.target)
		stripped := s.DeepCopy()
		stripped.Const = nil
		stripped.Enum = nil
		return w.convertValue(stripped, path)
	}
	return w.b.Literal(value)
}

// enum applies the enum strategy: a single value is a literal, multiple
// values use the target's native enumeration when the values fit it, an
// alternation of literals otherwise, and when neither fits the enumeration
// is dropped with a diagnostic.
func (w *walker[T]) enum(s *canonical.Schema, path string) T {
	values := s.Enum
	if len(values) == 1 {
		return w.literal(s, values[0], path)
	}

	fits := true
	if w.caps.enumValueOK != nil {
		for _, v := range values {
			if !w.caps.enumValueOK(v) {
				fits = false
				break
			}
		}
	}
	if w.caps.nativeEnum && fits {
		return w.b.Enum(values)
	}
	if w.caps.nativeUnion {
		members := make([]T, 0, len(values))
		for _, v := range values {
			members = append(members, w.b.Literal(v))
		}
		return w.b.Union(members, false)
	}
	w.d.Addf(diag.KindUnsupportedConstraint, path,
		"enum values are not representable on target %s; enumeration dropped", w.target)
	stripped := s.DeepCopy()
	stripped.Enum = nil
	return w.convertValue(stripped, path)
}

func (w *walker[T]) stringFacets(s *canonical.Schema, path string) StringFacets {
	f := StringFacets{MinLength: s.MinLength, MaxLength: w.zeroMax(s.MaxLength, "maxLength", path)}
	if s.Pattern != "" {
		switch {
		case !w.caps.pattern:
			w.d.Addf(diag.KindUnsupportedConstraint, path,
				"pattern is not enforceable on target %s; constraint dropped", w.target)
		default:
			// RE2 rejects some ECMA constructs (lookaround, backreferences);
			// an uncompilable pattern must degrade here, not panic later.
			if _, err := regexp.Compile(s.Pattern); err != nil {
				w.d.Addf(diag.KindUnsupportedConstraint, path,
					"pattern %q does not compile: %v; constraint dropped", s.Pattern, err)
			} else {
				f.Pattern = s.Pattern
			}
		}
	}
	if s.Format != "" {
		switch {
		case !canonicalFormats[s.Format]:
			w.d.Addf(diag.KindUnsupportedFormat, path,
				"format %q is not recognized; treated as a plain string", s.Format)
		case !w.caps.formats[s.Format]:
			w.d.Addf(diag.KindUnsupportedFormat, path,
				"format %q is not enforceable on target %s; treated as a plain string", s.Format, w.target)
		default:
			f.Format = s.Format
		}
	}
	return f
}

func (w *walker[T]) numberFacets(s *canonical.Schema, path string) NumberFacets {
	f := NumberFacets{
		Minimum:          s.Minimum,
		Maximum:          s.Maximum,
		ExclusiveMinimum: s.ExclusiveMinimum,
		ExclusiveMaximum: s.ExclusiveMaximum,
	}
	if s.MultipleOf != nil {
		if w.caps.multipleOf {
			f.MultipleOf = s.MultipleOf
		} else {
			w.d.Addf(diag.KindUnsupportedConstraint, path,
				"multipleOf is not enforceable on target %s; constraint dropped", w.target)
		}
	}
	return f
}

func (w *walker[T]) array(s *canonical.Schema, path string) T {
	f := ArrayFacets{MinItems: s.MinItems, MaxItems: w.zeroMax(s.MaxItems, "maxItems", path)}
	if s.UniqueItems {
		if w.caps.uniqueItems {
			f.UniqueItems = true
		} else {
			w.d.Addf(diag.KindUnsupportedConstraint, path,
				"uniqueItems is not enforceable on target %s; constraint dropped", w.target)
		}
	}

	if s.Items == nil {
		return w.b.Array(w.b.Any(), f)
	}

	if s.Items.IsTuple() {
		arity := len(s.Items.Tuple)
		f.MinItems = &arity
		f.MaxItems = &arity
		if !w.caps.tupleElements {
			w.d.Addf(diag.KindFallbackUsed, path,
				"per-index tuple schemas are not enforceable on target %s; only the arity %d is checked",
				w.target, arity)
			return w.b.Tuple(nil, f)
		}
		members := make([]T, 0, arity)
		for i, m := range s.Items.Tuple {
			members = append(members, w.convert(m, joinPath(path, fmt.Sprintf("items[%d]", i))))
		}
		return w.b.Tuple(members, f)
	}

	elem := s.Items.Schema
	if !w.caps.elementSchemas && w.isStructured(elem) {
		w.d.Addf(diag.KindFallbackUsed, path,
			"array element schemas of this shape are not enforceable on target %s; elements are unchecked",
			w.target)
		return w.b.Array(w.b.Any(), f)
	}
	return w.b.Array(w.convert(elem, joinPath(path, "items")), f)
}

func (w *walker[T]) object(s *canonical.Schema, path string) T {
	shape := ObjectShape[T]{MinProperties: s.MinProperties, MaxProperties: w.zeroMax(s.MaxProperties, "maxProperties", path)}
	if (s.MinProperties != nil || s.MaxProperties != nil) && !w.caps.propCountBounds {
		w.d.Addf(diag.KindUnsupportedConstraint, path,
			"property-count bounds are not enforceable on target %s; constraint dropped", w.target)
		shape.MinProperties = nil
		shape.MaxProperties = nil
	}

	required := s.RequiredSet()
	for _, name := range s.PropertyNames() {
		prop := s.Properties[name]
		fieldPath := joinPath(path, "properties."+name)
		_, req := required[name]
		req = req || w.opts.RequireAllByDefault

		if !req && !w.caps.optionalObjectProp && w.isStructured(prop) {
			w.d.Addf(diag.KindFallbackUsed, fieldPath,
				"optional object-valued property is not representable on target %s; value is unchecked",
				w.target)
			shape.Fields = append(shape.Fields, Field[T]{Name: name, Schema: w.b.Any()})
			continue
		}

		node := w.convert(prop, fieldPath)
		nullWidened := prop != nil && prop.Nullable
		switch w.opts.NullableEncoding {
		case NullableAsNull:
			if !req {
				node = w.b.Nullable(node)
				req = true
				nullWidened = true
			}
		case NullableAsBoth:
			if !req {
				node = w.b.Nullable(node)
			}
		}
		if req && nullWidened && !w.caps.requiredNullable {
			w.d.Addf(diag.KindFallbackUsed, fieldPath,
				"required property widened to accept null loses its presence check on target %s; the key may be omitted",
				w.target)
		}
		shape.Fields = append(shape.Fields, Field[T]{Name: name, Schema: node, Required: req})
	}

	switch {
	case s.AdditionalProperties == nil:
		if w.opts.AdditionalPropsDefault {
			shape.Additional = AdditionalAllow
		} else {
			shape.Additional = w.forbidAdditional(path)
		}
	case s.AdditionalProperties.Schema != nil:
		if w.caps.schemaAdditional {
			shape.Additional = AdditionalSchema
			shape.AdditionalSchema = w.convert(s.AdditionalProperties.Schema, joinPath(path, "additionalProperties"))
		} else {
			w.d.Addf(diag.KindFallbackUsed, path,
				"schema-valued additionalProperties is not enforceable on target %s; unknown keys are permitted unchecked",
				w.target)
			shape.Additional = AdditionalAllow
		}
	case s.AdditionalProperties.Bool != nil && *s.AdditionalProperties.Bool:
		shape.Additional = AdditionalAllow
	default:
		shape.Additional = w.forbidAdditional(path)
	}

	return w.b.Object(shape)
}

func (w *walker[T]) forbidAdditional(path string) AdditionalMode {
	if w.caps.forbidAdditional {
		return AdditionalForbid
	}
	w.d.Addf(diag.KindFallbackUsed, path,
		"unknown keys cannot be rejected on target %s; they are permitted unchecked", w.target)
	return AdditionalAllow
}

// isStructured reports whether a schema resolves to an object or an
// alternation, the shapes some targets cannot validate in nested positions.
// Resolution failures answer false; the main conversion path reports them.
func (w *walker[T]) isStructured(s *canonical.Schema) bool {
	if s == nil {
		return false
	}
	if s.IsRef() {
		resolved, err := canonical.ResolveRef(s.Ref, w.opts.Root)
		if err != nil {
			return false
		}
		return w.isStructured(resolved)
	}
	if s.Type == canonical.TypeObject || len(s.Properties) > 0 || s.AdditionalProperties != nil {
		return true
	}
	if len(s.OneOf) > 1 || len(s.AnyOf) > 1 {
		return true
	}
	for _, m := range s.AllOf {
		if w.isStructured(m) {
			return true
		}
	}
	return false
}

// zeroMax filters an explicit upper bound of zero on targets whose length
// rules read zero as unbounded and therefore cannot express it.
func (w *walker[T]) zeroMax(max *int, kw, path string) *int {
	if max == nil || *max != 0 || w.caps.zeroMaxBound {
		return max
	}
	w.d.Addf(diag.KindUnsupportedConstraint, path,
		"%s of 0 is not enforceable on target %s; constraint dropped", kw, w.target)
	return nil
}

// schemaHasOrphanConstraints reports whether a typeless schema carries
// constraints that only make sense with a type.
func schemaHasOrphanConstraints(s *canonical.Schema) bool {
	return s.Format != "" || s.Pattern != "" ||
		s.MinLength != nil || s.MaxLength != nil ||
		s.Minimum != nil || s.Maximum != nil ||
		s.ExclusiveMinimum != nil || s.ExclusiveMaximum != nil ||
		s.MultipleOf != nil ||
		s.MinItems != nil || s.MaxItems != nil || s.UniqueItems
}

// Walk drives b over s for the given target, producing the root node.
// Runtime adapter packages use it to share the traversal and capability
// decisions with the code generators; application code rarely needs it
// directly.
func Walk[T any](s *canonical.Schema, b Builder[T], target Target, opts *Options, d *diag.Collector) T {
	return newWalker(b, target, opts.normalized(), d).convert(s, "")
}

func joinPath(path, segment string) string {
	if path == "" {
		return segment
	}
	return path + "." + segment
}
