// Package playgroundtarget is the runtime adapter for the playground
// target. Blank-import it to enable convert.ConvertToRuntime for
// convert.TargetPlayground:
//
//	import _ "github.com/erraggy/schemaconv/convert/playgroundtarget"
//
// The adapter applies the same rule set the playground code generator
// emits: tag strings through Var for scalar and array roots, a rules map
// through ValidateMap for object roots.
package playgroundtarget

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/erraggy/schemaconv/canonical"
	"github.com/erraggy/schemaconv/convert"
	"github.com/erraggy/schemaconv/diag"
)

func init() {
	convert.RegisterRuntime(convert.TargetPlayground, convertRuntime)
}

func convertRuntime(s *canonical.Schema, name string, opts *convert.Options, d *diag.Collector) (any, convert.Validator, error) {
	rules, isObject := convert.PlaygroundRules(s, opts, d)
	tv := &tagValidator{
		validate: validator.New(),
		rules:    rules,
		isObject: isObject,
	}
	return rules, tv, nil
}

type tagValidator struct {
	validate *validator.Validate
	rules    any
	isObject bool
}

func (tv *tagValidator) Validate(v any) error {
	if !tv.isObject {
		tag := tv.rules.(string)
		if tag == "" {
			return nil
		}
		return tv.validate.Var(v, tag)
	}

	data, ok := v.(map[string]interface{})
	if !ok {
		return fmt.Errorf("value must be an object, got %T", v)
	}
	errs := tv.validate.ValidateMap(data, tv.rules.(map[string]interface{}))
	if len(errs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", k, errs[k]))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(parts, "; "))
}
