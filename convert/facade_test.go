package convert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/schemaconv/canonical"
	"github.com/erraggy/schemaconv/converrors"
	"github.com/erraggy/schemaconv/diag"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// userSchema is the shared object fixture: one required integer, one
// optional email string.
func userSchema() *canonical.Schema {
	return &canonical.Schema{
		Type: canonical.TypeObject,
		Properties: map[string]*canonical.Schema{
			"id":    {Type: canonical.TypeInteger, Minimum: floatPtr(1)},
			"email": {Type: canonical.TypeString, Format: "email"},
		},
		Required: []string{"id"},
	}
}

func countKind(ds []diag.Diagnostic, kind diag.Kind) int {
	n := 0
	for _, d := range ds {
		if d.Kind == kind {
			n++
		}
	}
	return n
}

func TestGenerateCodeUnsupportedTarget(t *testing.T) {
	_, err := GenerateCode(userSchema(), "User", Target("zod"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, converrors.ErrUnsupportedTarget))
}

func TestGenerateAllTargetsCode(t *testing.T) {
	results, err := GenerateAllTargetsCode(userSchema(), "User", nil)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, target := range Targets() {
		res, ok := results[target]
		require.True(t, ok, "missing result for %s", target)
		assert.NotEmpty(t, res.Code)
		assert.Empty(t, res.Diagnostics, "unexpected diagnostics for %s: %v", target, res.Warnings())
	}
}

func TestMultipleOfDiagnosedPerTarget(t *testing.T) {
	s := &canonical.Schema{
		Type:       canonical.TypeNumber,
		Minimum:    floatPtr(0),
		MultipleOf: floatPtr(2),
	}

	results, err := GenerateAllTargetsCode(s, "Even", nil)
	require.NoError(t, err)

	// The jsonschema target enforces multipleOf natively; the other two
	// drop it with exactly one diagnostic while keeping the remaining
	// constraints.
	assert.Zero(t, countKind(results[TargetJSONSchema].Diagnostics, diag.KindUnsupportedConstraint))
	assert.Contains(t, results[TargetJSONSchema].Code, `"multipleOf": 2`)

	assert.Equal(t, 1, countKind(results[TargetOzzo].Diagnostics, diag.KindUnsupportedConstraint))
	assert.Contains(t, results[TargetOzzo].Code, "validation.Min(0.0)")
	assert.NotContains(t, results[TargetOzzo].Code, "multipleOf")

	assert.Equal(t, 1, countKind(results[TargetPlayground].Diagnostics, diag.KindUnsupportedConstraint))
	assert.Contains(t, results[TargetPlayground].Code, "min=0")
}

func TestUnresolvedRefFallsBackPermissively(t *testing.T) {
	s := &canonical.Schema{Ref: "#/components/schemas/Ghost"}
	opts := DefaultOptions()
	opts.Root = canonical.NewDocument(nil)

	for _, target := range Targets() {
		res, err := GenerateCodeResult(s, "Ghost", target, opts)
		require.NoError(t, err, "target %s", target)
		assert.Equal(t, 1, len(res.Diagnostics), "target %s", target)
		assert.Equal(t, 1, countKind(res.Diagnostics, diag.KindUnresolvedRef), "target %s", target)
	}
}

func TestAlternationPerTarget(t *testing.T) {
	s := &canonical.Schema{OneOf: []*canonical.Schema{
		{Type: canonical.TypeString},
		{Type: canonical.TypeNumber},
	}}

	results, err := GenerateAllTargetsCode(s, "Value", nil)
	require.NoError(t, err)

	assert.Contains(t, results[TargetJSONSchema].Code, `"oneOf"`)
	assert.Empty(t, results[TargetJSONSchema].Diagnostics)

	for _, target := range []Target{TargetOzzo, TargetPlayground} {
		res := results[target]
		assert.Equal(t, 1, countKind(res.Diagnostics, diag.KindComplexComposition), "target %s", target)
	}
}

func TestAnyOfUsesAnyOfKeyword(t *testing.T) {
	s := &canonical.Schema{AnyOf: []*canonical.Schema{
		{Type: canonical.TypeString},
		{Type: canonical.TypeBoolean},
	}}

	res, err := GenerateCodeResult(s, "Loose", TargetJSONSchema, nil)
	require.NoError(t, err)
	assert.Contains(t, res.Code, `"anyOf"`)
	assert.NotContains(t, res.Code, `"oneOf"`)
}

func TestDegenerateCompositionElision(t *testing.T) {
	member := &canonical.Schema{Type: canonical.TypeString, MinLength: intPtr(2)}
	wrappers := map[string]*canonical.Schema{
		"oneOf": {OneOf: []*canonical.Schema{member}},
		"anyOf": {AnyOf: []*canonical.Schema{member}},
		"allOf": {AllOf: []*canonical.Schema{member}},
	}

	for _, target := range Targets() {
		direct, err := GenerateCodeResult(member, "S", target, nil)
		require.NoError(t, err)

		for kw, wrapped := range wrappers {
			res, err := GenerateCodeResult(wrapped, "S", target, nil)
			require.NoError(t, err, "%s on %s", kw, target)
			assert.Equal(t, direct.Code, res.Code, "%s on %s", kw, target)
			assert.Empty(t, res.Diagnostics, "%s on %s", kw, target)
		}
	}
}

func TestGenerateCodeIsIdempotent(t *testing.T) {
	s := userSchema()
	for _, target := range Targets() {
		first, err := GenerateCode(s, "User", target, nil)
		require.NoError(t, err)
		second, err := GenerateCode(s, "User", target, nil)
		require.NoError(t, err)
		assert.Equal(t, first, second, "target %s", target)
	}
}

func TestGenerateCodeDoesNotMutateInput(t *testing.T) {
	s := &canonical.Schema{
		AllOf: []*canonical.Schema{
			{Type: canonical.TypeObject, Properties: map[string]*canonical.Schema{"a": {Type: canonical.TypeString}}},
			{Properties: map[string]*canonical.Schema{"b": {Type: canonical.TypeInteger}}, Required: []string{"b"}},
		},
	}
	before := s.DeepCopy()

	_, err := GenerateAllTargetsCode(s, "Merged", nil)
	require.NoError(t, err)
	assert.Equal(t, before, s)
}

func TestStrictModeReturnsResultAndError(t *testing.T) {
	s := &canonical.Schema{Type: canonical.TypeNumber, MultipleOf: floatPtr(3)}
	opts := DefaultOptions()
	opts.Strict = true

	res, err := GenerateCodeResult(s, "N", TargetOzzo, opts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, converrors.ErrStrictMode))
	require.NotNil(t, res)
	assert.NotEmpty(t, res.Code)

	var smErr *converrors.StrictModeError
	require.True(t, errors.As(err, &smErr))
	assert.Len(t, smErr.Warnings, 1)
}

func TestRequireAllByDefault(t *testing.T) {
	opts := DefaultOptions()
	opts.RequireAllByDefault = true

	res, err := GenerateCodeResult(userSchema(), "User", TargetJSONSchema, opts)
	require.NoError(t, err)
	assert.Contains(t, res.Code, `"email"`)
	assert.Contains(t, res.Code, `"required"`)
	// Both properties end up required.
	assert.Contains(t, res.Code, "\"email\",\n")
}

func TestNullableEncodings(t *testing.T) {
	s := userSchema()

	t.Run("optional leaves email out of required", func(t *testing.T) {
		res, err := GenerateCodeResult(s, "User", TargetJSONSchema, nil)
		require.NoError(t, err)
		assert.NotContains(t, res.Code, `"anyOf"`)
	})

	t.Run("null keeps email required but widens to null", func(t *testing.T) {
		opts := DefaultOptions()
		opts.NullableEncoding = NullableAsNull
		res, err := GenerateCodeResult(s, "User", TargetJSONSchema, opts)
		require.NoError(t, err)
		assert.Contains(t, res.Code, `"anyOf"`)
		assert.Contains(t, res.Code, `"null"`)
	})

	t.Run("both widens without requiring", func(t *testing.T) {
		opts := DefaultOptions()
		opts.NullableEncoding = NullableAsBoth
		res, err := GenerateCodeResult(s, "User", TargetJSONSchema, opts)
		require.NoError(t, err)
		assert.Contains(t, res.Code, `"null"`)
	})
}

func TestNullableSchemaWidens(t *testing.T) {
	s := &canonical.Schema{Type: canonical.TypeString, Nullable: true}

	res, err := GenerateCodeResult(s, "MaybeName", TargetJSONSchema, nil)
	require.NoError(t, err)
	assert.Contains(t, res.Code, `"anyOf"`)
	assert.Contains(t, res.Code, `"null"`)
}

func TestConvertToRuntimeWithoutAdapter(t *testing.T) {
	// The convert package itself links no adapters; every runtime request
	// must fail fast with the unavailability error.
	for _, target := range Targets() {
		require.False(t, RuntimeAvailable(target))
		_, err := ConvertToRuntime(userSchema(), "User", target, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, converrors.ErrRuntimeUnavailable), "target %s", target)
	}
}

func TestConvertToRuntimeUnsupportedTarget(t *testing.T) {
	_, err := ConvertToRuntime(userSchema(), "User", Target("zod"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, converrors.ErrUnsupportedTarget))
}
