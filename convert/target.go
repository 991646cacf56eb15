package convert

import (
	"github.com/erraggy/schemaconv/converrors"
)

// Target identifies one of the supported validation-library families.
type Target string

const (
	// TargetJSONSchema compiles the schema into a
	// github.com/santhosh-tekuri/jsonschema/v6 document validator.
	TargetJSONSchema Target = "jsonschema"

	// TargetOzzo builds github.com/go-ozzo/ozzo-validation/v4 rule lists.
	TargetOzzo Target = "ozzo"

	// TargetPlayground builds github.com/go-playground/validator/v10 tag
	// rules, validated via Var for scalar roots and ValidateMap for objects.
	TargetPlayground Target = "playground"
)

// allTargets is the closed, ordered target set.
var allTargets = []Target{TargetJSONSchema, TargetOzzo, TargetPlayground}

// Targets returns all supported targets in stable order.
func Targets() []Target {
	out := make([]Target, len(allTargets))
	copy(out, allTargets)
	return out
}

// IsValidTarget reports whether s names a supported target.
func IsValidTarget(s string) bool {
	_, ok := capabilities[Target(s)]
	return ok
}

// ParseTarget converts a string into a Target, failing with a
// *converrors.UnsupportedTargetError for anything outside the closed set.
func ParseTarget(s string) (Target, error) {
	if !IsValidTarget(s) {
		return "", &converrors.UnsupportedTargetError{Target: s}
	}
	return Target(s), nil
}

// String implements fmt.Stringer.
func (t Target) String() string { return string(t) }
