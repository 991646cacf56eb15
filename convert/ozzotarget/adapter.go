// Package ozzotarget is the runtime adapter for the ozzo target.
// Blank-import it to enable convert.ConvertToRuntime for convert.TargetOzzo:
//
//	import _ "github.com/erraggy/schemaconv/convert/ozzotarget"
//
// The adapter builds []validation.Rule values mirroring what the ozzo code
// generator emits. Presence is enforced at Map keys, not with
// validation.Required, so zero values remain distinguishable from absent
// keys. Rules skip nil values by design of the library, which makes the
// nullable wrapper the identity.
package ozzotarget

import (
	"math"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/erraggy/schemaconv/canonical"
	"github.com/erraggy/schemaconv/convert"
	"github.com/erraggy/schemaconv/diag"
)

func init() {
	convert.RegisterRuntime(convert.TargetOzzo, convertRuntime)
}

func convertRuntime(s *canonical.Schema, name string, opts *convert.Options, d *diag.Collector) (any, convert.Validator, error) {
	rules := convert.Walk[[]validation.Rule](s, &builder{}, convert.TargetOzzo, opts, d)
	return rules, &ruleValidator{rules: rules}, nil
}

type ruleValidator struct {
	rules []validation.Rule
}

func (rv *ruleValidator) Validate(v any) error {
	return validation.Validate(v, rv.rules...)
}

// builder constructs rule lists. An empty list is the universal node.
type builder struct{}

func (b *builder) Any() []validation.Rule { return nil }

func (b *builder) String(f convert.StringFacets) []validation.Rule {
	var rules []validation.Rule
	if r, ok := lengthRule(validation.RuneLength, f.MinLength, f.MaxLength); ok {
		rules = append(rules, r)
	}
	if f.Pattern != "" {
		// The traversal only passes patterns that compile.
		rules = append(rules, validation.Match(regexp.MustCompile(f.Pattern)))
	}
	switch f.Format {
	case "email":
		rules = append(rules, is.Email)
	case "uri":
		rules = append(rules, is.URL)
	case "uuid":
		rules = append(rules, is.UUID)
	case "ipv4":
		rules = append(rules, is.IPv4)
	case "ipv6":
		rules = append(rules, is.IPv6)
	case "hostname":
		rules = append(rules, is.DNSName)
	case "date-time":
		rules = append(rules, validation.Date(time.RFC3339))
	}
	return rules
}

func (b *builder) Number(f convert.NumberFacets, integer bool) []validation.Rule {
	var rules []validation.Rule
	if f.Minimum != nil {
		rules = append(rules, validation.Min(threshold(*f.Minimum, integer)))
	}
	if f.ExclusiveMinimum != nil {
		rules = append(rules, validation.Min(threshold(*f.ExclusiveMinimum, integer)).Exclusive())
	}
	if f.Maximum != nil {
		rules = append(rules, validation.Max(threshold(*f.Maximum, integer)))
	}
	if f.ExclusiveMaximum != nil {
		rules = append(rules, validation.Max(threshold(*f.ExclusiveMaximum, integer)).Exclusive())
	}
	return rules
}

// threshold picks the bound's Go kind. Integer schemas get int thresholds:
// ozzo threshold rules convert the instance value to the threshold's kind,
// so a float64 threshold rejects every int instance.
func threshold(v float64, integer bool) any {
	if integer && v == math.Trunc(v) {
		return int(v)
	}
	return v
}

func (b *builder) Boolean() []validation.Rule { return nil }

func (b *builder) Null() []validation.Rule { return []validation.Rule{validation.Nil} }

func (b *builder) Literal(value any) []validation.Rule {
	return []validation.Rule{validation.In(value)}
}

func (b *builder) Enum(values []any) []validation.Rule {
	return []validation.Rule{validation.In(values...)}
}

// Union is unreachable: the traversal never offers alternations to this
// target.
func (b *builder) Union(members [][]validation.Rule, exclusive bool) []validation.Rule {
	return nil
}

func (b *builder) Array(elem []validation.Rule, f convert.ArrayFacets) []validation.Rule {
	var rules []validation.Rule
	if r, ok := lengthRule(validation.Length, f.MinItems, f.MaxItems); ok {
		rules = append(rules, r)
	}
	if len(elem) > 0 {
		rules = append(rules, validation.Each(elem...))
	}
	return rules
}

func (b *builder) Tuple(members [][]validation.Rule, f convert.ArrayFacets) []validation.Rule {
	if r, ok := lengthRule(validation.Length, f.MinItems, f.MaxItems); ok {
		return []validation.Rule{r}
	}
	return nil
}

func (b *builder) Object(shape convert.ObjectShape[[]validation.Rule]) []validation.Rule {
	keys := make([]*validation.KeyRules, 0, len(shape.Fields))
	for _, f := range shape.Fields {
		key := validation.Key(f.Name, f.Schema...)
		if !f.Required {
			key = key.Optional()
		}
		keys = append(keys, key)
	}
	mapRule := validation.Map(keys...)
	if shape.Additional == convert.AdditionalAllow {
		mapRule = mapRule.AllowExtraKeys()
	}

	var rules []validation.Rule
	if r, ok := lengthRule(validation.Length, shape.MinProperties, shape.MaxProperties); ok {
		rules = append(rules, r)
	}
	return append(rules, mapRule)
}

func (b *builder) Nullable(inner []validation.Rule) []validation.Rule { return inner }

// lengthRule builds a bounds rule, treating nil and zero as unbounded the
// way ozzo length rules do. A rule with no effect is omitted, matching the
// code generator.
func lengthRule(fn func(int, int) validation.LengthRule, min, max *int) (validation.Rule, bool) {
	lo, hi := 0, 0
	if min != nil {
		lo = *min
	}
	if max != nil {
		hi = *max
	}
	if lo == 0 && hi == 0 {
		return nil, false
	}
	return fn(lo, hi), true
}
