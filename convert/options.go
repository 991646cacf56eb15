package convert

import "github.com/erraggy/schemaconv/canonical"

// NullableEncoding selects how a non-required object property is encoded
// on the target.
type NullableEncoding int

const (
	// NullableAsOptional leaves the property out of the required set; a
	// present value must still match the property schema. This is the
	// default.
	NullableAsOptional NullableEncoding = iota

	// NullableAsNull keeps the property required but widens its schema to
	// also accept null.
	NullableAsNull

	// NullableAsBoth leaves the property optional and widens its schema to
	// accept null.
	NullableAsBoth
)

// Options control conversion and code generation. The zero value is not
// useful; start from DefaultOptions.
type Options struct {
	// NullableEncoding selects the optional-property encoding strategy.
	NullableEncoding NullableEncoding

	// AdditionalPropsDefault applies when an object schema is silent about
	// additionalProperties: true permits unknown keys, false rejects them.
	AdditionalPropsDefault bool

	// RequireAllByDefault treats every object property as required,
	// ignoring the schema's required list.
	RequireAllByDefault bool

	// EmitImports prefixes generated code with the import block the
	// fragment needs. Disable when assembling multiple fragments into one
	// file via BuildFile.
	EmitImports bool

	// EmitTypeDecl appends a Go type declaration mirroring the schema
	// shape after the validator declaration.
	EmitTypeDecl bool

	// Indent is the indentation unit for generated code.
	Indent string

	// Strict turns any diagnostic into a ConversionError. The result is
	// still returned alongside the error.
	Strict bool

	// Root is the document local $ref fragments resolve against. When nil,
	// every $ref produces an unresolved-ref diagnostic and the permissive
	// schema.
	Root *canonical.Document
}

// DefaultOptions returns the option set most conversions want: permissive
// unknown keys, optional-encoding for non-required properties, tab
// indentation, imports emitted.
func DefaultOptions() *Options {
	return &Options{
		NullableEncoding:       NullableAsOptional,
		AdditionalPropsDefault: true,
		EmitImports:            true,
		Indent:                 "\t",
	}
}

// normalized returns a defensive copy with defaults filled in, so facade
// functions never mutate caller options and nil means DefaultOptions.
func (o *Options) normalized() *Options {
	if o == nil {
		return DefaultOptions()
	}
	out := *o
	if out.Indent == "" {
		out.Indent = "\t"
	}
	return &out
}
