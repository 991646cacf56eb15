package convert

import (
	"fmt"
	"strings"

	"golang.org/x/tools/imports"
)

// BuildFile assembles generated code results into a single formatted Go
// source file: a generated-code header, the package clause, one merged
// import block, and the declaration blocks in the given order. Generate
// the results with Options.EmitTypeDecl enabled for at most one of them,
// since the type declaration is target-independent.
//
// The assembled source runs through goimports, which normalizes formatting
// and drops any import an individual fragment did not end up needing.
func BuildFile(pkg string, results ...*CodeResult) (string, error) {
	specs := dedupeImports(results)

	var b strings.Builder
	b.WriteString("// Code generated by schemaconv. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	if block := importBlock(specs); block != "" {
		b.WriteString(block + "\n")
	}
	for i, res := range results {
		if res == nil || res.Code == "" {
			continue
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(res.Code)
	}

	src := b.String()
	formatted, err := imports.Process(pkg+".go", []byte(src), nil)
	if err != nil {
		return "", fmt.Errorf("formatting generated file: %w", err)
	}
	return string(formatted), nil
}

func dedupeImports(results []*CodeResult) []string {
	seen := make(map[string]bool)
	var specs []string
	for _, res := range results {
		if res == nil {
			continue
		}
		for _, spec := range res.Imports {
			if !seen[spec] {
				seen[spec] = true
				specs = append(specs, spec)
			}
		}
	}
	return specs
}
