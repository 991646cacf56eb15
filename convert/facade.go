package convert

import (
	"github.com/erraggy/schemaconv/canonical"
	"github.com/erraggy/schemaconv/converrors"
	"github.com/erraggy/schemaconv/diag"
)

// ConvertToRuntime converts s into a live validator for the target. The
// target's adapter package must be linked into the binary; a missing
// adapter fails with a *converrors.RuntimeUnavailableError before any
// conversion work happens. name seeds the schema's resource identity and
// may be empty.
//
// Conversion itself never fails: untranslatable constructs are loosened
// and recorded as diagnostics on the Result. The Result also carries the
// generated source for the target, built from the same traversal as the
// validator. With Options.Strict set, a Result with diagnostics is
// returned together with a *converrors.StrictModeError.
func ConvertToRuntime(s *canonical.Schema, name string, target Target, opts *Options) (*Result, error) {
	if !IsValidTarget(string(target)) {
		return nil, &converrors.UnsupportedTargetError{Target: string(target)}
	}
	fn, ok := lookupRuntime(target)
	if !ok {
		return nil, &converrors.RuntimeUnavailableError{Target: string(target)}
	}

	opts = opts.normalized()
	d := diag.NewCollector()
	schema, validator, err := fn(s, name, opts, d)
	if err != nil {
		return nil, err
	}

	// The paired generator repeats the same traversal decisions; its own
	// collector keeps the runtime diagnostics from doubling up.
	genOpts := *opts
	genOpts.Strict = false
	code, err := GenerateCodeResult(s, name, target, &genOpts)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Target:      target,
		Schema:      schema,
		Validator:   validator,
		Code:        code,
		Diagnostics: d.List(),
	}
	if opts.Strict && d.Len() > 0 {
		return res, &converrors.StrictModeError{Warnings: d.Strings()}
	}
	return res, nil
}

// GenerateCodeResult generates the Go source declarations for one target.
// The returned CodeResult separates the declaration block from its import
// specs so BuildFile can assemble several results into one file.
func GenerateCodeResult(s *canonical.Schema, name string, target Target, opts *Options) (*CodeResult, error) {
	opts = opts.normalized()
	d := diag.NewCollector()

	var body string
	var specs []string
	switch target {
	case TargetJSONSchema:
		body, specs = generateJSONSchemaCode(s, name, opts, d)
	case TargetOzzo:
		body, specs = generateOzzoCode(s, name, opts, d)
	case TargetPlayground:
		body, specs = generatePlaygroundCode(s, name, opts, d)
	default:
		return nil, &converrors.UnsupportedTargetError{Target: string(target)}
	}

	if opts.EmitTypeDecl {
		body += "\n" + generateTypeDecl(s, name, opts)
	}

	res := &CodeResult{
		Target:      target,
		Code:        body,
		Imports:     specs,
		Diagnostics: d.List(),
	}
	if opts.Strict && d.Len() > 0 {
		return res, &converrors.StrictModeError{Warnings: d.Strings()}
	}
	return res, nil
}

// GenerateCode generates the Go source fragment for one target, including
// the import block when Options.EmitImports is set. The fragment compiles
// once placed in a file with a package clause.
func GenerateCode(s *canonical.Schema, name string, target Target, opts *Options) (string, error) {
	opts = opts.normalized()
	res, err := GenerateCodeResult(s, name, target, opts)
	if res == nil {
		return "", err
	}
	return res.Fragment(opts.EmitImports), err
}

// GenerateAllTargetsCode generates code for every supported target. Each
// target runs with a fresh diagnostic collector, so one target's fallbacks
// never leak into another's result. With Options.Strict set, the first
// target producing diagnostics fails the call; results generated so far
// are still returned.
func GenerateAllTargetsCode(s *canonical.Schema, name string, opts *Options) (map[Target]*CodeResult, error) {
	out := make(map[Target]*CodeResult, len(allTargets))
	for _, t := range allTargets {
		res, err := GenerateCodeResult(s, name, t, opts)
		if res != nil {
			out[t] = res
		}
		if err != nil {
			return out, err
		}
	}
	return out, nil
}
