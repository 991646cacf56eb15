// This file implements conversion of schema names to valid Go identifiers,
// including reserved word escaping and exported/unexported casing.

package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// goReservedWords contains Go reserved keywords that cannot be used as identifiers.
// Note: We only include actual keywords, not predeclared identifiers like "error",
// because those can be shadowed and are commonly used as type names (e.g., "Error").
var goReservedWords = map[string]bool{
	// Keywords (these are truly reserved and cannot be used)
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// escapeReservedWord checks if a name is a Go reserved keyword and escapes it
// by appending an underscore if necessary. The check is case-insensitive because
// PascalCase names like "Range" or "Type" should still be escaped.
func escapeReservedWord(name string) string {
	if goReservedWords[strings.ToLower(name)] {
		return name + "_"
	}
	return name
}

var titleCaser = cases.Title(language.English, cases.NoLower)

// SanitizeExported converts a schema name to a valid exported Go identifier.
// Non-alphanumeric runes split words, each word is title-cased, a leading
// digit is guarded with "T", and reserved words are escaped.
func SanitizeExported(s string) string {
	if s == "" {
		return "Schema"
	}

	var result strings.Builder
	for _, word := range splitWords(s) {
		result.WriteString(titleCaser.String(word))
	}

	name := result.String()
	if name == "" {
		return "Schema"
	}
	if !unicode.IsLetter(rune(name[0])) {
		name = "T" + name
	}
	return escapeReservedWord(name)
}

// SanitizeUnexported converts a schema name to a valid unexported Go identifier.
func SanitizeUnexported(s string) string {
	name := SanitizeExported(s)
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return escapeReservedWord(string(runes))
}

// splitWords splits on any rune that cannot appear in a Go identifier.
func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
