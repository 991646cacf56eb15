package convert

import "strings"

// capability describes what one target family can express natively. The
// shared traversal consults this table for every representability decision,
// on both the runtime and code paths, so the two paths can never disagree.
type capability struct {
	// nativeUnion: the target has a first-class alternation construct.
	nativeUnion bool

	// nativeEnum: the target has a first-class enumeration construct.
	// enumValueOK further restricts which member values it accepts; nil
	// means any value.
	nativeEnum  bool
	enumValueOK func(v any) bool

	// pattern: regular-expression constraints on strings.
	pattern bool

	// formats names the string formats the target enforces.
	formats map[string]bool

	// multipleOf: numeric divisibility constraints.
	multipleOf bool

	// uniqueItems: array element uniqueness.
	uniqueItems bool

	// elementSchemas: per-element validation of arrays whose element schema
	// is an object or alternation. Targets without it enforce only the
	// array-level facets.
	elementSchemas bool

	// tupleElements: per-index element schemas for fixed-length arrays.
	// Targets without it enforce only the arity.
	tupleElements bool

	// forbidAdditional: rejecting unknown object keys.
	forbidAdditional bool

	// schemaAdditional: validating unknown object keys against a schema.
	schemaAdditional bool

	// propCountBounds: minProperties / maxProperties.
	propCountBounds bool

	// optionalObjectProp: an object-valued property that may be absent.
	// Targets without it validate nested objects only when required.
	optionalObjectProp bool

	// requiredNullable: a property that must be present but accepts null.
	// Targets without it drop the presence check when widening to null.
	requiredNullable bool

	// zeroMaxBound: an explicit upper bound of zero (maxLength, maxItems,
	// maxProperties). Targets whose length rules read zero as unbounded
	// cannot express it.
	zeroMaxBound bool

	// nullType: the explicit null type.
	nullType bool
}

// canonicalFormats is the closed set of string formats the conversion
// recognizes. Formats outside it produce an unsupported-format diagnostic
// on every target.
var canonicalFormats = map[string]bool{
	"date-time": true,
	"email":     true,
	"hostname":  true,
	"ipv4":      true,
	"ipv6":      true,
	"uri":       true,
	"uuid":      true,
}

var capabilities = map[Target]capability{
	TargetJSONSchema: {
		nativeUnion:        true,
		nativeEnum:         true,
		pattern:            true,
		formats:            canonicalFormats,
		multipleOf:         true,
		uniqueItems:        true,
		elementSchemas:     true,
		tupleElements:      true,
		forbidAdditional:   true,
		schemaAdditional:   true,
		propCountBounds:    true,
		optionalObjectProp: true,
		requiredNullable:   true,
		zeroMaxBound:       true,
		nullType:           true,
	},
	TargetOzzo: {
		nativeEnum:         true,
		enumValueOK:        isPrimitiveValue,
		pattern:            true,
		formats:            canonicalFormats,
		uniqueItems:        false,
		elementSchemas:     true,
		forbidAdditional:   true,
		propCountBounds:    true,
		optionalObjectProp: true,
		requiredNullable:   true,
		nullType:           true,
	},
	TargetPlayground: {
		nativeEnum:   true,
		enumValueOK:  playgroundEnumValueOK,
		formats:      canonicalFormats,
		uniqueItems:  true,
		zeroMaxBound: true,
	},
}

// isPrimitiveValue reports whether v is a scalar JSON value.
func isPrimitiveValue(v any) bool {
	switch v.(type) {
	case string, bool, int, int32, int64, uint64, float32, float64:
		return true
	}
	return false
}

// playgroundEnumValueOK restricts enum members to the kinds the oneof and
// eq tags compare: strings and integers. Bools and floats make the library
// panic inside its parameter comparison. Strings are further restricted to
// renderings that survive tag parsing: commas and pipes are structural in
// tag strings and single quotes delimit oneof parameters.
func playgroundEnumValueOK(v any) bool {
	switch s := v.(type) {
	case string:
		return !strings.ContainsAny(s, ",|'")
	case int, int32, int64, uint64:
		return true
	}
	return false
}
