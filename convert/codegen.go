package convert

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// This file holds the emission helpers shared by the per-target code
// generators: literal quoting, float rendering, and indentation plumbing.
// Generated fragments are built at base indent zero and re-indented as
// they are embedded, so output is identical for identical inputs.

// quoteString renders s as an interpreted Go string literal. The escape set
// is backslash, double quote, newline, carriage return, and tab; all other
// runes pass through verbatim. The same escapes are valid in JSON strings,
// so document emission reuses it.
func quoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// regexLiteral renders a regular-expression source for generated Go code.
// Raw string literals keep the pattern byte-for-byte; a pattern containing
// a backtick falls back to an interpreted literal, where only backslashes
// (and the literal-delimiting quotes) gain escapes.
func regexLiteral(pattern string) string {
	if !strings.Contains(pattern, "`") {
		return "`" + pattern + "`"
	}
	return quoteString(pattern)
}

// goStringLiteral embeds arbitrary text, preferring a raw literal.
func goStringLiteral(s string) string {
	if !strings.Contains(s, "`") {
		return "`" + s + "`"
	}
	return quoteString(s)
}

// formatFloat renders a float compactly: 3 stays "3", 0.5 stays "0.5".
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// formatFloatLiteral renders a float as a Go float64 literal, forcing a
// decimal point so integral values keep their float type.
func formatFloatLiteral(f float64) string {
	s := formatFloat(f)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// indentLines prefixes every non-empty line of s with prefix.
func indentLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		if ln != "" {
			lines[i] = prefix + ln
		}
	}
	return strings.Join(lines, "\n")
}

// scalarLiteral renders a scalar enum or const value as a Go expression.
func scalarLiteral(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return quoteString(x)
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return formatFloat(float64(x))
	case float64:
		return formatFloat(x)
	default:
		return fmt.Sprintf("%#v", v)
	}
}

// scalarParam renders a scalar value for embedding inside a tag string.
func scalarParam(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return formatFloat(float64(x))
	case float64:
		return formatFloat(x)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// jsonValue renders a value as JSON text. Maps emit keys in sorted order.
func jsonValue(v any, unit string) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return quoteString(x)
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return formatFloat(float64(x))
	case float64:
		return formatFloat(x)
	case []any:
		if len(x) == 0 {
			return "[]"
		}
		parts := make([]string, 0, len(x))
		for _, e := range x {
			parts = append(parts, jsonValue(e, unit))
		}
		return jsonArray(parts, unit)
	case map[string]any:
		if len(x) == 0 {
			return "{}"
		}
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]jsonPair, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, jsonPair{k, jsonValue(x[k], unit)})
		}
		return jsonObject(pairs, unit)
	default:
		return quoteString(fmt.Sprintf("%v", v))
	}
}

type jsonPair struct {
	key   string
	value string
}

// jsonObject assembles a multi-line JSON object from rendered pairs,
// preserving the given order.
func jsonObject(pairs []jsonPair, unit string) string {
	if len(pairs) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for i, p := range pairs {
		b.WriteString(indentLines(quoteString(p.key)+": "+p.value, unit))
		if i < len(pairs)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteByte('}')
	return b.String()
}

// jsonArray assembles a multi-line JSON array from rendered elements.
func jsonArray(elems []string, unit string) string {
	if len(elems) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteString("[\n")
	for i, e := range elems {
		b.WriteString(indentLines(e, unit))
		if i < len(elems)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteByte(']')
	return b.String()
}

// importBlock renders an import declaration from ready-to-emit specs
// (optionally aliased, quoted paths included), sorted by path.
func importBlock(specs []string) string {
	if len(specs) == 0 {
		return ""
	}
	sorted := make([]string, len(specs))
	copy(sorted, specs)
	sort.Slice(sorted, func(i, j int) bool {
		return importPath(sorted[i]) < importPath(sorted[j])
	})
	if len(sorted) == 1 {
		return "import " + sorted[0] + "\n"
	}
	var b strings.Builder
	b.WriteString("import (\n")
	for _, spec := range sorted {
		b.WriteString("\t" + spec + "\n")
	}
	b.WriteString(")\n")
	return b.String()
}

func importPath(spec string) string {
	if i := strings.IndexByte(spec, '"'); i >= 0 {
		return spec[i:]
	}
	return spec
}
