package canonical

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/schemaconv/converrors"
)

// Document is a root document that local $ref fragments resolve against.
// The typed Components map covers the common "#/components/schemas/Name"
// case; the raw tree (populated when the document was parsed from bytes)
// covers arbitrary fragments.
type Document struct {
	// Components holds the named schemas of the document
	Components *Components `yaml:"components,omitempty" json:"components,omitempty"`

	// Definitions is an optional external definition map consulted as a
	// fallback for "#/components/schemas/<name>" and "#/definitions/<name>"
	// fragments. It lets callers resolve refs without a full document.
	Definitions map[string]*Schema `yaml:"-" json:"-"`

	// raw is the full document tree for fragment walking; nil for
	// programmatically constructed documents
	raw map[string]any
}

// Components groups the reusable objects of a document. Only schemas
// participate in conversion.
type Components struct {
	Schemas map[string]*Schema `yaml:"schemas,omitempty" json:"schemas,omitempty"`
}

// NewDocument builds a document from named schemas.
func NewDocument(schemas map[string]*Schema) *Document {
	return &Document{Components: &Components{Schemas: schemas}}
}

// ParseDocument parses a YAML or JSON document into a Document, retaining
// the raw tree for arbitrary fragment resolution.
func ParseDocument(data []byte) (*Document, error) {
	doc := &Document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, &converrors.ParseError{Message: "failed to parse document", Cause: err}
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &converrors.ParseError{Message: "failed to parse document tree", Cause: err}
	}
	doc.raw = raw
	return doc, nil
}

// LoadDocument reads and parses a document file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &converrors.ParseError{Path: path, Message: "failed to read document", Cause: err}
	}
	doc, err := ParseDocument(data)
	if err != nil {
		if perr, ok := err.(*converrors.ParseError); ok {
			perr.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// SchemaNames returns the names under components.schemas in sorted order.
func (d *Document) SchemaNames() []string {
	if d == nil || d.Components == nil || len(d.Components.Schemas) == 0 {
		return nil
	}
	s := &Schema{Properties: d.Components.Schemas}
	return s.PropertyNames()
}

// Schema returns the named schema from components.schemas or Definitions.
func (d *Document) Schema(name string) (*Schema, bool) {
	if d == nil {
		return nil, false
	}
	if d.Components != nil {
		if s, ok := d.Components.Schemas[name]; ok {
			return s, true
		}
	}
	if s, ok := d.Definitions[name]; ok {
		return s, true
	}
	return nil, false
}

// schemaFromRaw decodes a raw document node into a canonical schema by
// round-tripping through YAML. Fragment walking lands on raw nodes; this is
// the single place that converts them to the typed model.
func schemaFromRaw(v any) (*Schema, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("resolved node is not an object (got %T)", v)
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode resolved node: %w", err)
	}
	s := &Schema{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to decode resolved node: %w", err)
	}
	return s, nil
}
