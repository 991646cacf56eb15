package convert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/schemaconv/canonical"
	"github.com/erraggy/schemaconv/diag"
	"github.com/erraggy/schemaconv/internal/naming"
)

// The playground target renders go-playground/validator/v10 rules: a tag
// string for scalar and array roots, a map[string]interface{} of per-key
// rules for object roots (applied with ValidateMap, which recurses into
// nested maps). Generated code carries no imports; the validator library
// is only needed where the rules are applied.

// pgNode is either a tag string or an object rule set.
type pgNode struct {
	tag   string
	obj   []pgField
	isObj bool
}

type pgField struct {
	name string
	node pgNode
}

type playgroundCodeBuilder struct {
	unit string
}

func (g *playgroundCodeBuilder) Any() pgNode { return pgNode{} }

func (g *playgroundCodeBuilder) String(f StringFacets) pgNode {
	var parts []string
	if f.MinLength != nil {
		parts = append(parts, "min="+strconv.Itoa(*f.MinLength))
	}
	if f.MaxLength != nil {
		parts = append(parts, "max="+strconv.Itoa(*f.MaxLength))
	}
	switch f.Format {
	case "email":
		parts = append(parts, "email")
	case "uri":
		parts = append(parts, "uri")
	case "uuid":
		parts = append(parts, "uuid")
	case "ipv4":
		parts = append(parts, "ipv4")
	case "ipv6":
		parts = append(parts, "ipv6")
	case "hostname":
		parts = append(parts, "hostname")
	case "date-time":
		parts = append(parts, "datetime=2006-01-02T15:04:05Z07:00")
	}
	return pgNode{tag: strings.Join(parts, ",")}
}

func (g *playgroundCodeBuilder) Number(f NumberFacets, integer bool) pgNode {
	var parts []string
	if f.Minimum != nil {
		parts = append(parts, "min="+formatFloat(*f.Minimum))
	}
	if f.ExclusiveMinimum != nil {
		parts = append(parts, "gt="+formatFloat(*f.ExclusiveMinimum))
	}
	if f.Maximum != nil {
		parts = append(parts, "max="+formatFloat(*f.Maximum))
	}
	if f.ExclusiveMaximum != nil {
		parts = append(parts, "lt="+formatFloat(*f.ExclusiveMaximum))
	}
	return pgNode{tag: strings.Join(parts, ",")}
}

func (g *playgroundCodeBuilder) Boolean() pgNode { return pgNode{} }

// Null is unreachable: the traversal never offers the null type to this
// target.
func (g *playgroundCodeBuilder) Null() pgNode { return pgNode{} }

func (g *playgroundCodeBuilder) Literal(value any) pgNode {
	return pgNode{tag: "eq=" + scalarParam(value)}
}

func (g *playgroundCodeBuilder) Enum(values []any) pgNode {
	params := make([]string, 0, len(values))
	for _, v := range values {
		p := scalarParam(v)
		if strings.Contains(p, " ") {
			p = "'" + p + "'"
		}
		params = append(params, p)
	}
	return pgNode{tag: "oneof=" + strings.Join(params, " ")}
}

// Union is unreachable: the traversal never offers alternations to this
// target.
func (g *playgroundCodeBuilder) Union(members []pgNode, exclusive bool) pgNode { return pgNode{} }

func (g *playgroundCodeBuilder) Array(elem pgNode, f ArrayFacets) pgNode {
	parts := arrayTagParts(f)
	if elem.tag != "" {
		parts = append(parts, "dive", elem.tag)
	}
	return pgNode{tag: strings.Join(parts, ",")}
}

func (g *playgroundCodeBuilder) Tuple(members []pgNode, f ArrayFacets) pgNode {
	return pgNode{tag: strings.Join(arrayTagParts(f), ",")}
}

func arrayTagParts(f ArrayFacets) []string {
	var parts []string
	if f.MinItems != nil {
		parts = append(parts, "min="+strconv.Itoa(*f.MinItems))
	}
	if f.MaxItems != nil {
		parts = append(parts, "max="+strconv.Itoa(*f.MaxItems))
	}
	if f.UniqueItems {
		parts = append(parts, "unique")
	}
	return parts
}

func (g *playgroundCodeBuilder) Object(shape ObjectShape[pgNode]) pgNode {
	fields := make([]pgField, 0, len(shape.Fields))
	for _, f := range shape.Fields {
		fields = append(fields, pgField{name: f.Name, node: pgFieldNode(f)})
	}
	return pgNode{isObj: true, obj: fields}
}

// pgFieldNode renders a field's presence marker into its tag. Nested object
// rules carry no marker: ValidateMap requires the key regardless. A tag
// already widened to accept null keeps its omitempty marker even when the
// field is required; the target cannot tell a missing key from a null value.
func pgFieldNode(f Field[pgNode]) pgNode {
	n := f.Schema
	if n.isObj {
		return n
	}
	if strings.HasPrefix(n.tag, "omitempty") {
		return n
	}
	marker := "omitempty"
	if f.Required {
		marker = "required"
	}
	if n.tag == "" {
		return pgNode{tag: marker}
	}
	return pgNode{tag: marker + "," + n.tag}
}

func (g *playgroundCodeBuilder) Nullable(inner pgNode) pgNode {
	if inner.isObj {
		return inner
	}
	if inner.tag == "" {
		return pgNode{tag: "omitempty"}
	}
	if strings.HasPrefix(inner.tag, "omitempty") {
		return inner
	}
	return pgNode{tag: "omitempty," + inner.tag}
}

// PlaygroundRules builds the playground rule set for s: a tag string for
// scalar and array roots, or a map[string]interface{} (possibly nested) of
// per-key tags for object roots. It backs both the playground code
// generator and the playgroundtarget runtime adapter, which apply the same
// rules through Var and ValidateMap respectively.
func PlaygroundRules(s *canonical.Schema, opts *Options, d *diag.Collector) (rules any, isObject bool) {
	opts = opts.normalized()
	root := Walk[pgNode](s, &playgroundCodeBuilder{unit: opts.Indent}, TargetPlayground, opts, d)
	return root.runtime(), root.isObj
}

// runtime converts a node tree into the value ValidateMap and Var consume.
func (n pgNode) runtime() any {
	if !n.isObj {
		return n.tag
	}
	m := make(map[string]interface{}, len(n.obj))
	for _, f := range n.obj {
		m[f.name] = f.node.runtime()
	}
	return m
}

// renderPgNode renders a node as a Go expression: a string literal for tag
// nodes, a map literal for object nodes.
func renderPgNode(n pgNode, unit string) string {
	if !n.isObj {
		return quoteString(n.tag)
	}
	if len(n.obj) == 0 {
		return "map[string]interface{}{}"
	}
	var b strings.Builder
	b.WriteString("map[string]interface{}{\n")
	for _, f := range n.obj {
		entry := quoteString(f.name) + ": " + renderPgNode(f.node, unit) + ","
		b.WriteString(indentLines(entry, unit) + "\n")
	}
	b.WriteString("}")
	return b.String()
}

// generatePlaygroundCode emits the validator declaration for the playground
// target.
func generatePlaygroundCode(s *canonical.Schema, name string, opts *Options, d *diag.Collector) (string, []string) {
	g := &playgroundCodeBuilder{unit: opts.Indent}
	root := Walk[pgNode](s, g, TargetPlayground, opts, d)
	ident := naming.SanitizeExported(name) + "Rules"

	var b strings.Builder
	if root.isObj {
		fmt.Fprintf(&b, "// %s defines per-key validation tags for %s values.\n", ident, naming.SanitizeExported(name))
		b.WriteString("// Apply them with a validator instance's ValidateMap.\n")
		fmt.Fprintf(&b, "var %s = %s\n", ident, renderPgNode(root, opts.Indent))
	} else {
		fmt.Fprintf(&b, "// %s is the validation tag for %s values.\n", ident, naming.SanitizeExported(name))
		b.WriteString("// Apply it with a validator instance's Var.\n")
		fmt.Fprintf(&b, "const %s = %s\n", ident, quoteString(root.tag))
	}
	return b.String(), nil
}
