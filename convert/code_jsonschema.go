package convert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/schemaconv/canonical"
	"github.com/erraggy/schemaconv/diag"
	"github.com/erraggy/schemaconv/internal/naming"
)

// The jsonschema target renders the schema as JSON Schema (draft 2020-12)
// text. Generated code and the runtime adapter both compile the exact same
// document through jsonschema.UnmarshalJSON, so the two paths cannot drift.

// jsonDocBuilder emits JSON Schema document fragments. The node type is the
// JSON text of the fragment at base indent zero.
type jsonDocBuilder struct {
	unit string
}

// JSONSchemaDocument renders the JSON Schema document for s, collecting
// diagnostics into d. It backs both the jsonschema code generator and the
// jsonschematarget runtime adapter.
func JSONSchemaDocument(s *canonical.Schema, opts *Options, d *diag.Collector) string {
	opts = opts.normalized()
	return Walk[string](s, &jsonDocBuilder{unit: opts.Indent}, TargetJSONSchema, opts, d)
}

func (g *jsonDocBuilder) Any() string { return "{}" }

func (g *jsonDocBuilder) String(f StringFacets) string {
	pairs := []jsonPair{{"type", `"string"`}}
	if f.MinLength != nil {
		pairs = append(pairs, jsonPair{"minLength", strconv.Itoa(*f.MinLength)})
	}
	if f.MaxLength != nil {
		pairs = append(pairs, jsonPair{"maxLength", strconv.Itoa(*f.MaxLength)})
	}
	if f.Pattern != "" {
		pairs = append(pairs, jsonPair{"pattern", quoteString(f.Pattern)})
	}
	if f.Format != "" {
		pairs = append(pairs, jsonPair{"format", quoteString(f.Format)})
	}
	return jsonObject(pairs, g.unit)
}

func (g *jsonDocBuilder) Number(f NumberFacets, integer bool) string {
	typ := `"number"`
	if integer {
		typ = `"integer"`
	}
	pairs := []jsonPair{{"type", typ}}
	if f.Minimum != nil {
		pairs = append(pairs, jsonPair{"minimum", formatFloat(*f.Minimum)})
	}
	if f.ExclusiveMinimum != nil {
		pairs = append(pairs, jsonPair{"exclusiveMinimum", formatFloat(*f.ExclusiveMinimum)})
	}
	if f.Maximum != nil {
		pairs = append(pairs, jsonPair{"maximum", formatFloat(*f.Maximum)})
	}
	if f.ExclusiveMaximum != nil {
		pairs = append(pairs, jsonPair{"exclusiveMaximum", formatFloat(*f.ExclusiveMaximum)})
	}
	if f.MultipleOf != nil {
		pairs = append(pairs, jsonPair{"multipleOf", formatFloat(*f.MultipleOf)})
	}
	return jsonObject(pairs, g.unit)
}

func (g *jsonDocBuilder) Boolean() string { return `{` + "\n" + g.unit + `"type": "boolean"` + "\n}" }

func (g *jsonDocBuilder) Null() string { return `{` + "\n" + g.unit + `"type": "null"` + "\n}" }

func (g *jsonDocBuilder) Literal(value any) string {
	return jsonObject([]jsonPair{{"const", jsonValue(value, g.unit)}}, g.unit)
}

func (g *jsonDocBuilder) Enum(values []any) string {
	elems := make([]string, 0, len(values))
	for _, v := range values {
		elems = append(elems, jsonValue(v, g.unit))
	}
	return jsonObject([]jsonPair{{"enum", jsonArray(elems, g.unit)}}, g.unit)
}

func (g *jsonDocBuilder) Union(members []string, exclusive bool) string {
	kw := "anyOf"
	if exclusive {
		kw = "oneOf"
	}
	return jsonObject([]jsonPair{{kw, jsonArray(members, g.unit)}}, g.unit)
}

func (g *jsonDocBuilder) Array(elem string, f ArrayFacets) string {
	pairs := []jsonPair{{"type", `"array"`}, {"items", elem}}
	pairs = append(pairs, g.arrayBounds(f)...)
	return jsonObject(pairs, g.unit)
}

func (g *jsonDocBuilder) Tuple(members []string, f ArrayFacets) string {
	pairs := []jsonPair{
		{"type", `"array"`},
		{"prefixItems", jsonArray(members, g.unit)},
		{"items", "false"},
	}
	pairs = append(pairs, g.arrayBounds(f)...)
	return jsonObject(pairs, g.unit)
}

func (g *jsonDocBuilder) arrayBounds(f ArrayFacets) []jsonPair {
	var pairs []jsonPair
	if f.MinItems != nil {
		pairs = append(pairs, jsonPair{"minItems", strconv.Itoa(*f.MinItems)})
	}
	if f.MaxItems != nil {
		pairs = append(pairs, jsonPair{"maxItems", strconv.Itoa(*f.MaxItems)})
	}
	if f.UniqueItems {
		pairs = append(pairs, jsonPair{"uniqueItems", "true"})
	}
	return pairs
}

func (g *jsonDocBuilder) Object(shape ObjectShape[string]) string {
	pairs := []jsonPair{{"type", `"object"`}}

	if len(shape.Fields) > 0 {
		props := make([]jsonPair, 0, len(shape.Fields))
		var required []string
		for _, f := range shape.Fields {
			props = append(props, jsonPair{f.Name, f.Schema})
			if f.Required {
				required = append(required, quoteString(f.Name))
			}
		}
		pairs = append(pairs, jsonPair{"properties", jsonObject(props, g.unit)})
		if len(required) > 0 {
			pairs = append(pairs, jsonPair{"required", jsonArray(required, g.unit)})
		}
	}

	switch shape.Additional {
	case AdditionalForbid:
		pairs = append(pairs, jsonPair{"additionalProperties", "false"})
	case AdditionalSchema:
		pairs = append(pairs, jsonPair{"additionalProperties", shape.AdditionalSchema})
	}
	if shape.MinProperties != nil {
		pairs = append(pairs, jsonPair{"minProperties", strconv.Itoa(*shape.MinProperties)})
	}
	if shape.MaxProperties != nil {
		pairs = append(pairs, jsonPair{"maxProperties", strconv.Itoa(*shape.MaxProperties)})
	}
	return jsonObject(pairs, g.unit)
}

func (g *jsonDocBuilder) Nullable(inner string) string {
	return jsonObject([]jsonPair{
		{"anyOf", jsonArray([]string{inner, g.Null()}, g.unit)},
	}, g.unit)
}

// ResourceName returns the resource URL the compiled schema for name is
// registered under; the runtime adapter and generated code use the same one.
func ResourceName(name string) string {
	return strings.ToLower(naming.SanitizeUnexported(name)) + ".json"
}

// generateJSONSchemaCode emits the validator declaration for the jsonschema
// target: the document text compiled once at package init.
func generateJSONSchemaCode(s *canonical.Schema, name string, opts *Options, d *diag.Collector) (string, []string) {
	docText := JSONSchemaDocument(s, opts, d)
	ident := naming.SanitizeExported(name) + "Schema"
	resource := ResourceName(name)

	var b strings.Builder
	fmt.Fprintf(&b, "// %s is the compiled JSON Schema for %s values.\n", ident, naming.SanitizeExported(name))
	fmt.Fprintf(&b, "var %s = func() *jsonschema.Schema {\n", ident)
	fmt.Fprintf(&b, "%sdoc, err := jsonschema.UnmarshalJSON(strings.NewReader(%s))\n", opts.Indent, goStringLiteral(docText))
	fmt.Fprintf(&b, "%sif err != nil {\n%spanic(err)\n%s}\n", opts.Indent, opts.Indent+opts.Indent, opts.Indent)
	fmt.Fprintf(&b, "%sc := jsonschema.NewCompiler()\n", opts.Indent)
	fmt.Fprintf(&b, "%sc.AssertFormat()\n", opts.Indent)
	fmt.Fprintf(&b, "%sif err := c.AddResource(%s, doc); err != nil {\n%spanic(err)\n%s}\n",
		opts.Indent, quoteString(resource), opts.Indent+opts.Indent, opts.Indent)
	fmt.Fprintf(&b, "%sreturn c.MustCompile(%s)\n", opts.Indent, quoteString(resource))
	b.WriteString("}()\n")

	imports := []string{
		`"strings"`,
		`"github.com/santhosh-tekuri/jsonschema/v6"`,
	}
	return b.String(), imports
}
