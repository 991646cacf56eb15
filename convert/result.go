package convert

import (
	"github.com/erraggy/schemaconv/diag"
)

// Result is the outcome of a runtime conversion. A Result carrying
// diagnostics is still valid and usable; diagnostics record the constructs
// that were loosened or dropped for the target.
type Result struct {
	// Target the conversion ran against
	Target Target

	// Schema is the target's native schema object: a *jsonschema.Schema,
	// a []validation.Rule, or a playground rule set
	Schema any

	// Validator validates decoded values against Schema
	Validator Validator

	// Code is the generated source for the same target. The paired code
	// generator runs the same traversal, so Code enforces exactly what
	// Validator enforces
	Code *CodeResult

	// Diagnostics lists, in traversal order, everything that could not be
	// translated exactly
	Diagnostics []diag.Diagnostic
}

// Warnings returns the diagnostics formatted for logging.
func (r *Result) Warnings() []string {
	return formatDiagnostics(r.Diagnostics)
}

// CodeResult is the outcome of code generation for one target.
type CodeResult struct {
	// Target the code was generated for
	Target Target

	// Code is the generated declaration block without any import block;
	// Fragment and BuildFile add the imports
	Code string

	// Imports are the ready-to-emit import specs the code needs
	Imports []string

	// Diagnostics lists everything that could not be translated exactly
	Diagnostics []diag.Diagnostic
}

// Fragment renders the generated source fragment, prefixed with its import
// block when withImports is set.
func (r *CodeResult) Fragment(withImports bool) string {
	if !withImports || len(r.Imports) == 0 {
		return r.Code
	}
	return importBlock(r.Imports) + "\n" + r.Code
}

// Warnings returns the diagnostics formatted for logging.
func (r *CodeResult) Warnings() []string {
	return formatDiagnostics(r.Diagnostics)
}

func formatDiagnostics(ds []diag.Diagnostic) []string {
	if len(ds) == 0 {
		return nil
	}
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.String()
	}
	return out
}
