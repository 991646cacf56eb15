package convert

import (
	"fmt"
	"strings"

	"github.com/erraggy/schemaconv/canonical"
	"github.com/erraggy/schemaconv/diag"
	"github.com/erraggy/schemaconv/internal/naming"
)

// generateTypeDecl emits a Go type declaration mirroring the schema's
// static shape. Object schemas become structs, everything else a type
// alias. The declaration is target-independent; validator declarations
// reference decoded values, not this type, so it exists for callers that
// want a typed handle on conforming data.
func generateTypeDecl(s *canonical.Schema, name string, opts *Options) string {
	e := &typeEmitter{unit: opts.Indent, opts: opts}
	ident := naming.SanitizeExported(name)

	var b strings.Builder
	fmt.Fprintf(&b, "// %s is the Go shape of conforming values.\n", ident)
	typ := e.goType(s, true)
	if strings.HasPrefix(typ, "struct {") {
		fmt.Fprintf(&b, "type %s %s\n", ident, typ)
	} else {
		fmt.Fprintf(&b, "type %s = %s\n", ident, typ)
	}
	return b.String()
}

// typeEmitter resolves refs and allOf silently: the validator generation
// pass already reported anything wrong with them.
type typeEmitter struct {
	unit string
	opts *Options
}

func (e *typeEmitter) goType(s *canonical.Schema, root bool) string {
	if s == nil {
		return "any"
	}
	if s.IsRef() {
		return e.goType(canonical.TryResolveRef(s.Ref, e.opts.Root, diag.NewCollector()), false)
	}
	if len(s.AllOf) > 0 {
		merged := canonical.MergeAllOf(s.AllOf, e.opts.Root, diag.NewCollector())
		outer := s.DeepCopy()
		outer.AllOf = nil
		return e.goType(canonical.MergeSchemas(merged, outer), root)
	}
	if len(s.OneOf) == 1 {
		return e.goType(s.OneOf[0], false)
	}
	if len(s.AnyOf) == 1 {
		return e.goType(s.AnyOf[0], false)
	}
	if len(s.OneOf) > 0 || len(s.AnyOf) > 0 {
		return "any"
	}
	if s.Const != nil {
		return scalarGoType(s.Const)
	}
	if len(s.Enum) > 0 {
		return scalarGoType(s.Enum[0])
	}

	switch s.Type {
	case canonical.TypeString:
		return "string"
	case canonical.TypeInteger:
		return "int64"
	case canonical.TypeNumber:
		return "float64"
	case canonical.TypeBoolean:
		return "bool"
	case canonical.TypeNull:
		return "any"
	case canonical.TypeArray:
		if s.Items == nil || s.Items.IsTuple() {
			return "[]any"
		}
		return "[]" + e.goType(s.Items.Schema, false)
	case canonical.TypeObject:
		return e.structType(s)
	case "":
		if len(s.Properties) > 0 {
			return e.structType(s)
		}
		if s.Items != nil && !s.Items.IsTuple() {
			return "[]" + e.goType(s.Items.Schema, false)
		}
		return "any"
	default:
		return "any"
	}
}

func (e *typeEmitter) structType(s *canonical.Schema) string {
	if len(s.Properties) == 0 {
		if s.AdditionalProperties != nil && s.AdditionalProperties.Schema != nil {
			return "map[string]" + e.goType(s.AdditionalProperties.Schema, false)
		}
		return "map[string]any"
	}

	required := s.RequiredSet()
	var b strings.Builder
	b.WriteString("struct {\n")
	for _, name := range s.PropertyNames() {
		prop := s.Properties[name]
		_, req := required[name]
		req = req || e.opts.RequireAllByDefault

		fieldType := e.goType(prop, false)
		tag := name
		if !req {
			tag += ",omitempty"
			if !strings.HasPrefix(fieldType, "[]") && !strings.HasPrefix(fieldType, "map[") && fieldType != "any" {
				fieldType = "*" + fieldType
			}
		}
		line := fmt.Sprintf("%s %s `json:%q`", naming.SanitizeExported(name), fieldType, tag)
		b.WriteString(indentLines(line, e.unit) + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func scalarGoType(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int32, int64, uint64:
		return "int64"
	case float32, float64:
		return "float64"
	default:
		return "any"
	}
}
