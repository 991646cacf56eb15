package convert

// StringFacets carries the string constraints the traversal decided the
// target can enforce. Unsupported facets arrive zeroed and already
// diagnosed; builders apply exactly what they receive.
type StringFacets struct {
	MinLength *int
	MaxLength *int

	// Pattern is the regular-expression source, empty when absent or
	// unsupported on the target.
	Pattern string

	// Format is one of the canonical format names, empty when absent or
	// unsupported on the target.
	Format string
}

// NumberFacets carries the numeric constraints for a number or integer node.
type NumberFacets struct {
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum *float64
	ExclusiveMaximum *float64
	MultipleOf       *float64
}

// ArrayFacets carries the array-level constraints. For tuples MinItems and
// MaxItems both equal the arity.
type ArrayFacets struct {
	MinItems    *int
	MaxItems    *int
	UniqueItems bool
}

// AdditionalMode says how an object treats keys outside its property set.
type AdditionalMode int

const (
	// AdditionalAllow permits unknown keys without validating them.
	AdditionalAllow AdditionalMode = iota

	// AdditionalForbid rejects unknown keys.
	AdditionalForbid

	// AdditionalSchema validates unknown keys against ObjectShape.AdditionalSchema.
	AdditionalSchema
)

// Field is one object property, already converted.
type Field[T any] struct {
	Name     string
	Schema   T
	Required bool
}

// ObjectShape is a fully converted object: fields in sorted name order plus
// the unknown-key policy and property-count bounds.
type ObjectShape[T any] struct {
	Fields     []Field[T]
	Additional AdditionalMode

	// AdditionalSchema is meaningful only when Additional is AdditionalSchema.
	AdditionalSchema T

	MinProperties *int
	MaxProperties *int
}

// Builder constructs target representations bottom-up while the shared
// traversal walks the canonical schema top-down. T is the target's node
// type: a document fragment, a rule list, or a tag expression. Code
// generators and runtime adapters for the same target implement the same
// interface against the same pre-filtered inputs, which is what keeps the
// two paths behaviorally equivalent.
//
// Methods are only invoked for shapes the target's capability entry admits:
// a builder without native unions never sees Union, a builder without the
// null type never sees Null.
type Builder[T any] interface {
	// Any returns the universal node accepting every value.
	Any() T

	// String returns a string node carrying the given facets.
	String(f StringFacets) T

	// Number returns a numeric node; integer distinguishes integer from
	// number on targets that can tell them apart.
	Number(f NumberFacets, integer bool) T

	// Boolean returns a boolean node.
	Boolean() T

	// Null returns the node accepting exactly null.
	Null() T

	// Literal returns a node accepting exactly the given value.
	Literal(value any) T

	// Enum returns a node accepting exactly the given values.
	Enum(values []any) T

	// Union returns the alternation of the given members. exclusive marks
	// oneOf-style alternation; targets that cannot tell the two apart may
	// ignore it.
	Union(members []T, exclusive bool) T

	// Array returns an array node with the given element node and facets.
	Array(elem T, f ArrayFacets) T

	// Tuple returns a fixed-length array node with per-index members.
	// f.MinItems and f.MaxItems equal len(members).
	Tuple(members []T, f ArrayFacets) T

	// Object returns an object node for the given shape.
	Object(shape ObjectShape[T]) T

	// Nullable widens a node to also accept null.
	Nullable(inner T) T
}
