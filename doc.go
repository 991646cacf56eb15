// Package schemaconv converts canonical OpenAPI/JSON-Schema-shaped schema
// trees into runtime validator objects and equivalent Go source code for
// three validation-library families.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - canonical: the shared recursive schema model, local $ref resolution,
//     and allOf normalization
//   - diag: the per-call diagnostic collector shared by all converters
//   - convert: target selection, runtime conversion, and code generation
//
// Supported target families (see [github.com/erraggy/schemaconv/convert]):
//
//   - jsonschema: compiled JSON Schema via github.com/santhosh-tekuri/jsonschema/v6
//   - ozzo: composable rules via github.com/go-ozzo/ozzo-validation/v4
//   - playground: tag rules via github.com/go-playground/validator/v10
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/schemaconv
//
// # Quick Start
//
// Generate validator code for one target:
//
//	import (
//		"github.com/erraggy/schemaconv/canonical"
//		"github.com/erraggy/schemaconv/convert"
//	)
//
//	schema := &canonical.Schema{
//		Type:       "object",
//		Properties: map[string]*canonical.Schema{"id": {Type: "integer"}},
//		Required:   []string{"id"},
//	}
//	code, err := convert.GenerateCode(schema, "User", convert.TargetOzzo, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(code)
//
// Construct the runtime validator for the same schema (the adapter package
// must be linked in; a blank import is enough):
//
//	import _ "github.com/erraggy/schemaconv/convert/ozzotarget"
//
//	result, err := convert.ConvertToRuntime(schema, "User", convert.TargetOzzo, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = result.Validator.Validate(map[string]any{"id": 1.0})
//
// Conversion never mutates its input, holds no state across calls, and
// reports lossy translations through ordered diagnostics rather than errors.
package schemaconv
