// Package convert translates canonical schemas into runtime validator
// objects and equivalent Go source code for three validation-library
// families.
//
// Import path: github.com/erraggy/schemaconv/convert
//
// # Targets
//
// The closed target set is [TargetJSONSchema] (compiled JSON Schema via
// santhosh-tekuri/jsonschema/v6), [TargetOzzo] (composable rules via
// go-ozzo/ozzo-validation/v4), and [TargetPlayground] (tag rules via
// go-playground/validator/v10). Passing any other value to the facade
// functions fails with a [converrors.UnsupportedTargetError].
//
// # Code Generation
//
// [GenerateCode] produces a Go source fragment containing an optional
// import block, one named declaration for the validator, and (when
// requested) a Go type declaration mirroring the schema shape. The
// fragment compiles once placed in a file; [BuildFile] assembles and
// formats such a file. Code generation never requires the target library
// to be linked in.
//
// # Runtime Conversion
//
// [ConvertToRuntime] constructs the validator object directly. The target's
// adapter package must be linked into the binary; a blank import is the
// conventional way:
//
//	import _ "github.com/erraggy/schemaconv/convert/ozzotarget"
//
// A missing adapter fails the call with a [converrors.RuntimeUnavailableError]
// before any conversion work happens.
//
// # Diagnostics
//
// Both paths share one diagnostic taxonomy (see
// [github.com/erraggy/schemaconv/diag]). For any schema, target, and
// options, the generated code constructs a validator behaviorally
// equivalent to the object the runtime path constructs: the shared
// traversal makes every representability decision once, from a single
// per-target capability table, and the paired builders only execute it.
package convert
