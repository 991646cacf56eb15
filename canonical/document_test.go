package canonical

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/schemaconv/converrors"
)

const documentYAML = `
components:
  schemas:
    User:
      type: object
      properties:
        id:
          type: integer
    Address:
      type: object
`

func TestParseDocumentYAML(t *testing.T) {
	doc, err := ParseDocument([]byte(documentYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"Address", "User"}, doc.SchemaNames())
	s, ok := doc.Schema("User")
	require.True(t, ok)
	assert.Equal(t, TypeObject, s.Type)
}

func TestParseDocumentJSON(t *testing.T) {
	// JSON is a YAML subset; the same parser covers both.
	data := []byte(`{"components":{"schemas":{"Pet":{"type":"object"}}}}`)
	doc, err := ParseDocument(data)
	require.NoError(t, err)

	s, ok := doc.Schema("Pet")
	require.True(t, ok)
	assert.Equal(t, TypeObject, s.Type)
}

func TestParseDocumentInvalid(t *testing.T) {
	_, err := ParseDocument([]byte("components:\n\t- bad tab indent"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, converrors.ErrParse))
}

func TestDocumentDefinitionsFallback(t *testing.T) {
	doc := &Document{Definitions: map[string]*Schema{"Legacy": {Type: TypeString}}}

	s, ok := doc.Schema("Legacy")
	require.True(t, ok)
	assert.Equal(t, TypeString, s.Type)

	_, ok = doc.Schema("Missing")
	assert.False(t, ok)
}

func TestLoadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.yaml")
	require.NoError(t, os.WriteFile(path, []byte(documentYAML), 0o644))

	doc, err := LoadDocument(path)
	require.NoError(t, err)
	assert.Len(t, doc.SchemaNames(), 2)
}

func TestLoadDocumentMissingFile(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, converrors.ErrParse))

	var perr *converrors.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, perr.Path, "nope.yaml")
}
