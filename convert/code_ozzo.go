package convert

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/erraggy/schemaconv/canonical"
	"github.com/erraggy/schemaconv/diag"
	"github.com/erraggy/schemaconv/internal/naming"
)

// The ozzo target renders rule lists for go-ozzo/ozzo-validation/v4. The
// node type is a slice of Go expressions of type validation.Rule; an empty
// slice is the universal node. Presence is handled at the enclosing Map
// key, and ozzo rules skip nil values, so Nullable is the identity.

type ozzoCodeBuilder struct {
	unit        string
	needsIs     bool
	needsRegexp bool
	needsTime   bool
}

func (g *ozzoCodeBuilder) Any() []string { return nil }

func (g *ozzoCodeBuilder) String(f StringFacets) []string {
	var rules []string
	if r, ok := lengthRuleExpr("validation.RuneLength", f.MinLength, f.MaxLength); ok {
		rules = append(rules, r)
	}
	if f.Pattern != "" {
		g.needsRegexp = true
		rules = append(rules, fmt.Sprintf("validation.Match(regexp.MustCompile(%s))", regexLiteral(f.Pattern)))
	}
	switch f.Format {
	case "email":
		g.needsIs = true
		rules = append(rules, "is.Email")
	case "uri":
		g.needsIs = true
		rules = append(rules, "is.URL")
	case "uuid":
		g.needsIs = true
		rules = append(rules, "is.UUID")
	case "ipv4":
		g.needsIs = true
		rules = append(rules, "is.IPv4")
	case "ipv6":
		g.needsIs = true
		rules = append(rules, "is.IPv6")
	case "hostname":
		g.needsIs = true
		rules = append(rules, "is.DNSName")
	case "date-time":
		g.needsTime = true
		rules = append(rules, "validation.Date(time.RFC3339)")
	}
	return rules
}

func (g *ozzoCodeBuilder) Number(f NumberFacets, integer bool) []string {
	var rules []string
	if f.Minimum != nil {
		rules = append(rules, fmt.Sprintf("validation.Min(%s)", thresholdLiteral(*f.Minimum, integer)))
	}
	if f.ExclusiveMinimum != nil {
		rules = append(rules, fmt.Sprintf("validation.Min(%s).Exclusive()", thresholdLiteral(*f.ExclusiveMinimum, integer)))
	}
	if f.Maximum != nil {
		rules = append(rules, fmt.Sprintf("validation.Max(%s)", thresholdLiteral(*f.Maximum, integer)))
	}
	if f.ExclusiveMaximum != nil {
		rules = append(rules, fmt.Sprintf("validation.Max(%s).Exclusive()", thresholdLiteral(*f.ExclusiveMaximum, integer)))
	}
	return rules
}

// thresholdLiteral renders a numeric bound. Integer schemas get integer
// literals: ozzo threshold rules convert the instance value to the
// threshold's kind, so a float64 threshold rejects every int instance.
func thresholdLiteral(v float64, integer bool) string {
	if integer && v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return formatFloatLiteral(v)
}

func (g *ozzoCodeBuilder) Boolean() []string { return nil }

func (g *ozzoCodeBuilder) Null() []string { return []string{"validation.Nil"} }

func (g *ozzoCodeBuilder) Literal(value any) []string {
	return []string{fmt.Sprintf("validation.In(%s)", scalarLiteral(value))}
}

func (g *ozzoCodeBuilder) Enum(values []any) []string {
	args := make([]string, 0, len(values))
	for _, v := range values {
		args = append(args, scalarLiteral(v))
	}
	return []string{"validation.In(" + strings.Join(args, ", ") + ")"}
}

// Union is unreachable: the traversal never offers alternations to this
// target.
func (g *ozzoCodeBuilder) Union(members [][]string, exclusive bool) []string { return nil }

func (g *ozzoCodeBuilder) Array(elem []string, f ArrayFacets) []string {
	var rules []string
	if r, ok := lengthRuleExpr("validation.Length", f.MinItems, f.MaxItems); ok {
		rules = append(rules, r)
	}
	if len(elem) > 0 {
		rules = append(rules, callExpr("validation.Each", elem, g.unit))
	}
	return rules
}

func (g *ozzoCodeBuilder) Tuple(members [][]string, f ArrayFacets) []string {
	if r, ok := lengthRuleExpr("validation.Length", f.MinItems, f.MaxItems); ok {
		return []string{r}
	}
	return nil
}

func (g *ozzoCodeBuilder) Object(shape ObjectShape[[]string]) []string {
	keys := make([]string, 0, len(shape.Fields))
	for _, f := range shape.Fields {
		args := append([]string{quoteString(f.Name)}, f.Schema...)
		key := callExpr("validation.Key", args, g.unit)
		if !f.Required {
			key += ".Optional()"
		}
		keys = append(keys, key)
	}
	mapExpr := callExpr("validation.Map", keys, g.unit)
	if shape.Additional == AdditionalAllow {
		mapExpr += ".AllowExtraKeys()"
	}

	var rules []string
	if r, ok := lengthRuleExpr("validation.Length", shape.MinProperties, shape.MaxProperties); ok {
		rules = append(rules, r)
	}
	return append(rules, mapExpr)
}

func (g *ozzoCodeBuilder) Nullable(inner []string) []string { return inner }

func (g *ozzoCodeBuilder) imports() []string {
	specs := []string{`validation "github.com/go-ozzo/ozzo-validation/v4"`}
	if g.needsIs {
		specs = append(specs, `"github.com/go-ozzo/ozzo-validation/v4/is"`)
	}
	if g.needsRegexp {
		specs = append(specs, `"regexp"`)
	}
	if g.needsTime {
		specs = append(specs, `"time"`)
	}
	return specs
}

// lengthRuleExpr renders a bounds rule, treating nil and zero as unbounded
// the way ozzo length rules do. A rule with no effect is omitted.
func lengthRuleExpr(fn string, min, max *int) (string, bool) {
	lo, hi := 0, 0
	if min != nil {
		lo = *min
	}
	if max != nil {
		hi = *max
	}
	if lo == 0 && hi == 0 {
		return "", false
	}
	return fmt.Sprintf("%s(%d, %d)", fn, lo, hi), true
}

// callExpr renders fn(args...), inlining short single-line argument lists
// and breaking one-per-line otherwise.
func callExpr(fn string, args []string, unit string) string {
	total := len(fn) + 2
	multiline := false
	for _, a := range args {
		total += len(a) + 2
		if strings.Contains(a, "\n") {
			multiline = true
		}
	}
	if !multiline && total <= 80 {
		return fn + "(" + strings.Join(args, ", ") + ")"
	}
	var b strings.Builder
	b.WriteString(fn + "(\n")
	for _, a := range args {
		b.WriteString(indentLines(a, unit) + ",\n")
	}
	b.WriteString(")")
	return b.String()
}

// generateOzzoCode emits the validator declaration for the ozzo target.
func generateOzzoCode(s *canonical.Schema, name string, opts *Options, d *diag.Collector) (string, []string) {
	g := &ozzoCodeBuilder{unit: opts.Indent}
	rules := Walk[[]string](s, g, TargetOzzo, opts, d)
	ident := naming.SanitizeExported(name) + "Rules"

	var b strings.Builder
	fmt.Fprintf(&b, "// %s contains the validation rules for %s values.\n", ident, naming.SanitizeExported(name))
	b.WriteString("// Apply them with validation.Validate.\n")
	if len(rules) == 0 {
		fmt.Fprintf(&b, "var %s = []validation.Rule{}\n", ident)
	} else {
		fmt.Fprintf(&b, "var %s = []validation.Rule{\n", ident)
		for _, r := range rules {
			b.WriteString(indentLines(r, opts.Indent) + ",\n")
		}
		b.WriteString("}\n")
	}
	return b.String(), g.imports()
}
