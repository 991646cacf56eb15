// Package diag provides the per-call diagnostic collector shared by all
// schema converters and code generators.
//
// Diagnostics are non-fatal notes that a feature could not be fully
// translated for a given target. They are accumulated in order, never
// thrown, and a result carrying diagnostics is still valid and usable.
package diag

import "fmt"

// Kind classifies a conversion diagnostic.
type Kind string

const (
	// KindUnsupportedFormat indicates a string format with no native validator on the target.
	KindUnsupportedFormat Kind = "unsupported-format"
	// KindUnsupportedConstraint indicates a constraint the target cannot enforce.
	KindUnsupportedConstraint Kind = "unsupported-constraint"
	// KindUnsupportedType indicates a node with no driving shape; the universal type was used.
	KindUnsupportedType Kind = "unsupported-type"
	// KindUnresolvedRef indicates a $ref that could not be resolved.
	KindUnresolvedRef Kind = "unresolved-ref"
	// KindComplexComposition indicates a oneOf/anyOf the target cannot represent natively.
	KindComplexComposition Kind = "complex-composition"
	// KindFallbackUsed indicates a permissive fallback replaced an untranslatable construct.
	KindFallbackUsed Kind = "fallback-used"
)

// Diagnostic represents a single non-fatal conversion note.
type Diagnostic struct {
	// Kind classifies the diagnostic
	Kind Kind
	// Message is a human-readable description
	Message string
	// Path is the schema path the diagnostic applies to (e.g. "properties.email")
	Path string
}

// String returns a formatted representation of the diagnostic.
func (d Diagnostic) String() string {
	if d.Path != "" {
		return fmt.Sprintf("[%s] %s: %s", d.Kind, d.Path, d.Message)
	}
	return fmt.Sprintf("[%s] %s", d.Kind, d.Message)
}

// Collector accumulates diagnostics for one top-level conversion call.
// A Collector is created fresh per call and discarded on return; it is not
// safe for concurrent use and must never be shared across calls.
type Collector struct {
	diagnostics []Diagnostic
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends a diagnostic to the collector. A nil collector discards it.
func (c *Collector) Add(kind Kind, path, message string) {
	if c == nil {
		return
	}
	c.diagnostics = append(c.diagnostics, Diagnostic{Kind: kind, Message: message, Path: path})
}

// Addf appends a diagnostic with a formatted message.
func (c *Collector) Addf(kind Kind, path, format string, args ...any) {
	c.Add(kind, path, fmt.Sprintf(format, args...))
}

// List returns the accumulated diagnostics in insertion order.
// The returned slice is a copy; mutating it does not affect the collector.
func (c *Collector) List() []Diagnostic {
	if c == nil || len(c.diagnostics) == 0 {
		return nil
	}
	out := make([]Diagnostic, len(c.diagnostics))
	copy(out, c.diagnostics)
	return out
}

// Strings returns the accumulated diagnostics formatted as strings.
func (c *Collector) Strings() []string {
	if c == nil || len(c.diagnostics) == 0 {
		return nil
	}
	out := make([]string, len(c.diagnostics))
	for i, d := range c.diagnostics {
		out[i] = d.String()
	}
	return out
}

// Len returns the number of accumulated diagnostics.
func (c *Collector) Len() int {
	if c == nil {
		return 0
	}
	return len(c.diagnostics)
}

// CountKind returns the number of diagnostics with the given kind.
func (c *Collector) CountKind(kind Kind) int {
	if c == nil {
		return 0
	}
	n := 0
	for _, d := range c.diagnostics {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
