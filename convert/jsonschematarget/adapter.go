// Package jsonschematarget is the runtime adapter for the jsonschema
// target. Blank-import it to enable convert.ConvertToRuntime for
// convert.TargetJSONSchema:
//
//	import _ "github.com/erraggy/schemaconv/convert/jsonschematarget"
package jsonschematarget

import (
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/erraggy/schemaconv/canonical"
	"github.com/erraggy/schemaconv/convert"
	"github.com/erraggy/schemaconv/diag"
)

func init() {
	convert.RegisterRuntime(convert.TargetJSONSchema, convertRuntime)
}

// convertRuntime compiles the same JSON document text the code generator
// embeds, so the runtime validator and the generated code cannot drift.
func convertRuntime(s *canonical.Schema, name string, opts *convert.Options, d *diag.Collector) (any, convert.Validator, error) {
	text := convert.JSONSchemaDocument(s, opts, d)
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(text))
	if err != nil {
		return nil, nil, err
	}

	c := jsonschema.NewCompiler()
	c.AssertFormat()
	resource := convert.ResourceName(name)
	if err := c.AddResource(resource, doc); err != nil {
		return nil, nil, err
	}
	schema, err := c.Compile(resource)
	if err != nil {
		return nil, nil, err
	}
	return schema, &schemaValidator{schema: schema}, nil
}

type schemaValidator struct {
	schema *jsonschema.Schema
}

// Validate checks v against the compiled schema. v must be decoded data in
// the shape encoding/json produces (map[string]any, []any, float64, string,
// bool, nil).
func (sv *schemaValidator) Validate(v any) error {
	return sv.schema.Validate(v)
}
