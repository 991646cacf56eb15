package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/schemaconv"
	"github.com/erraggy/schemaconv/canonical"
	"github.com/erraggy/schemaconv/convert"

	// Runtime adapters for the check command.
	_ "github.com/erraggy/schemaconv/convert/jsonschematarget"
	_ "github.com/erraggy/schemaconv/convert/ozzotarget"
	_ "github.com/erraggy/schemaconv/convert/playgroundtarget"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("schemaconv v%s\n", schemaconv.Version())
	case "help", "-h", "--help":
		printUsage()
	case "generate":
		if err := handleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := handleCheck(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "targets":
		for _, t := range convert.Targets() {
			fmt.Println(t)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`schemaconv v%s - schema to validator conversion

Usage: schemaconv <command> [flags] [arguments]

Commands:
  generate    Generate validator source code from a schema document
  check       Validate a JSON value against a schema at runtime
  targets     List the supported conversion targets
  version     Show version information
  help        Show this help message

Run 'schemaconv <command> -h' for command-specific flags.
`, schemaconv.Version())
}

// generateFlags contains flags for the generate command
type generateFlags struct {
	schema     string
	target     string
	pkg        string
	out        string
	typeDecl   bool
	requireAll bool
	nullable   string
	allowExtra bool
	strict     bool
}

func setupGenerateFlags() (*flag.FlagSet, *generateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &generateFlags{}

	fs.StringVar(&flags.schema, "schema", "", "named schema to convert (default: all schemas in the document)")
	fs.StringVar(&flags.target, "target", "all", "conversion target: jsonschema, ozzo, playground, or all")
	fs.StringVar(&flags.pkg, "package", "", "emit a complete formatted Go file with this package name")
	fs.StringVar(&flags.out, "out", "", "output file (default: stdout)")
	fs.BoolVar(&flags.typeDecl, "type", false, "also emit a Go type declaration for the schema shape")
	fs.BoolVar(&flags.requireAll, "require-all", false, "treat every object property as required")
	fs.StringVar(&flags.nullable, "nullable", "optional", "non-required property encoding: optional, null, or both")
	fs.BoolVar(&flags.allowExtra, "allow-extra", true, "permit unknown object keys when the schema is silent")
	fs.BoolVar(&flags.strict, "strict", false, "fail when any conversion diagnostic occurs")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: schemaconv generate [flags] <document>\n\n")
		_, _ = fmt.Fprintf(output, "Generate validator source code from a schema document.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  schemaconv generate -schema User -target ozzo api.yaml\n")
		_, _ = fmt.Fprintf(output, "  schemaconv generate -package rules -out rules.go api.yaml\n")
	}

	return fs, flags
}

func handleGenerate(args []string) error {
	fs, flags := setupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one document path")
	}

	doc, err := canonical.LoadDocument(fs.Arg(0))
	if err != nil {
		return err
	}
	opts, err := buildOptions(flags, doc)
	if err != nil {
		return err
	}

	names, err := selectSchemas(doc, flags.schema)
	if err != nil {
		return err
	}
	targets, err := selectTargets(flags.target)
	if err != nil {
		return err
	}

	var results []*convert.CodeResult
	for _, name := range names {
		s, _ := doc.Schema(name)
		// Emit the shared type declaration at most once per schema.
		perSchema := *opts
		for i, t := range targets {
			perSchema.EmitTypeDecl = flags.typeDecl && i == 0
			res, err := convert.GenerateCodeResult(s, name, t, &perSchema)
			if res != nil {
				results = append(results, res)
				for _, w := range res.Warnings() {
					fmt.Fprintf(os.Stderr, "warning: %s (%s): %s\n", name, t, w)
				}
			}
			if err != nil {
				return fmt.Errorf("generating %s for target %s: %w", name, t, err)
			}
		}
	}

	var out string
	if flags.pkg != "" {
		out, err = convert.BuildFile(flags.pkg, results...)
		if err != nil {
			return err
		}
	} else {
		fragments := make([]string, 0, len(results))
		for _, res := range results {
			fragments = append(fragments, res.Fragment(opts.EmitImports))
		}
		out = strings.Join(fragments, "\n")
	}

	if flags.out == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(flags.out, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", flags.out, err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", flags.out)
	return nil
}

// checkFlags contains flags for the check command
type checkFlags struct {
	schema string
	target string
}

func setupCheckFlags() (*flag.FlagSet, *checkFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := &checkFlags{}

	fs.StringVar(&flags.schema, "schema", "", "named schema to validate against (required)")
	fs.StringVar(&flags.target, "target", string(convert.TargetJSONSchema), "conversion target to validate with")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: schemaconv check -schema <name> [flags] <document> <value.json>\n\n")
		_, _ = fmt.Fprintf(output, "Validate a JSON value against a schema using a runtime validator.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  schemaconv check -schema User api.yaml user.json\n")
		_, _ = fmt.Fprintf(output, "  schemaconv check -schema User -target ozzo api.yaml user.json\n")
	}

	return fs, flags
}

func handleCheck(args []string) error {
	fs, flags := setupCheckFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("check command requires a document path and a value path")
	}
	if flags.schema == "" {
		fs.Usage()
		return fmt.Errorf("check command requires -schema")
	}

	doc, err := canonical.LoadDocument(fs.Arg(0))
	if err != nil {
		return err
	}
	s, ok := doc.Schema(flags.schema)
	if !ok {
		return fmt.Errorf("schema %q not found in %s", flags.schema, fs.Arg(0))
	}
	target, err := convert.ParseTarget(flags.target)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("reading value file: %w", err)
	}
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("parsing value file: %w", err)
	}

	opts := convert.DefaultOptions()
	opts.Root = doc
	result, err := convert.ConvertToRuntime(s, flags.schema, target, opts)
	if err != nil {
		return err
	}
	for _, w := range result.Warnings() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if err := result.Validator.Validate(value); err != nil {
		fmt.Printf("INVALID: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("VALID")
	return nil
}

func buildOptions(flags *generateFlags, doc *canonical.Document) (*convert.Options, error) {
	opts := convert.DefaultOptions()
	opts.Root = doc
	opts.RequireAllByDefault = flags.requireAll
	opts.AdditionalPropsDefault = flags.allowExtra
	opts.Strict = flags.strict
	// Import blocks belong to fragments only; BuildFile assembles its own.
	opts.EmitImports = flags.pkg == ""

	switch flags.nullable {
	case "optional":
		opts.NullableEncoding = convert.NullableAsOptional
	case "null":
		opts.NullableEncoding = convert.NullableAsNull
	case "both":
		opts.NullableEncoding = convert.NullableAsBoth
	default:
		return nil, fmt.Errorf("unknown nullable encoding %q (want optional, null, or both)", flags.nullable)
	}
	return opts, nil
}

func selectSchemas(doc *canonical.Document, name string) ([]string, error) {
	if name != "" {
		if _, ok := doc.Schema(name); !ok {
			return nil, fmt.Errorf("schema %q not found in document", name)
		}
		return []string{name}, nil
	}
	names := doc.SchemaNames()
	if len(names) == 0 {
		return nil, fmt.Errorf("document contains no named schemas")
	}
	return names, nil
}

func selectTargets(s string) ([]convert.Target, error) {
	if s == "all" {
		return convert.Targets(), nil
	}
	t, err := convert.ParseTarget(s)
	if err != nil {
		return nil, err
	}
	return []convert.Target{t}, nil
}
