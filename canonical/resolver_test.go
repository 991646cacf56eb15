package canonical

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/schemaconv/converrors"
	"github.com/erraggy/schemaconv/diag"
)

const resolverDoc = `
components:
  schemas:
    User:
      type: object
      properties:
        id:
          type: integer
    a/b:
      type: string
paths:
  /users:
    get:
      schema:
        type: array
`

func TestResolveRefTypedPath(t *testing.T) {
	root := NewDocument(map[string]*Schema{
		"User": {Type: TypeObject},
	})

	s, err := ResolveRef("#/components/schemas/User", root)
	require.NoError(t, err)
	assert.Equal(t, TypeObject, s.Type)
}

func TestResolveRefRawPath(t *testing.T) {
	root, err := ParseDocument([]byte(resolverDoc))
	require.NoError(t, err)

	s, err := ResolveRef("#/paths/~1users/get/schema", root)
	require.NoError(t, err)
	assert.Equal(t, TypeArray, s.Type)
}

func TestResolveRefPointerUnescape(t *testing.T) {
	root, err := ParseDocument([]byte(resolverDoc))
	require.NoError(t, err)

	s, err := ResolveRef("#/components/schemas/a~1b", root)
	require.NoError(t, err)
	assert.Equal(t, TypeString, s.Type)
}

func TestResolveRefFailures(t *testing.T) {
	root, parseErr := ParseDocument([]byte(resolverDoc))
	require.NoError(t, parseErr)

	tests := []struct {
		name        string
		ref         string
		root        *Document
		wantSegment string
		nonLocal    bool
	}{
		{name: "non-local URL", ref: "https://example.com/s.json#/a", root: root, nonLocal: true},
		{name: "non-local relative", ref: "other.yaml#/components", root: root, nonLocal: true},
		{name: "missing first segment", ref: "#/nope/deeper", root: root, wantSegment: "nope"},
		{name: "short-circuits on first missing", ref: "#/components/ghost/also/missing", root: root, wantSegment: "ghost"},
		{name: "nil root", ref: "#/components/schemas/User", root: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveRef(tt.ref, tt.root)
			require.Error(t, err)
			assert.True(t, errors.Is(err, converrors.ErrResolution))

			var resErr *converrors.ResolutionError
			require.True(t, errors.As(err, &resErr))
			assert.Equal(t, tt.nonLocal, resErr.IsNonLocal)
			if tt.wantSegment != "" {
				assert.Equal(t, tt.wantSegment, resErr.Segment)
			}
		})
	}
}

func TestTryResolveRefNeverFails(t *testing.T) {
	d := diag.NewCollector()
	s := TryResolveRef("#/components/schemas/Missing", NewDocument(nil), d)

	require.NotNil(t, s)
	assert.True(t, s.IsUniversal())
	require.Equal(t, 1, d.Len())
	assert.Equal(t, 1, d.CountKind(diag.KindUnresolvedRef))
}

func TestTryResolveRefSuccessAddsNothing(t *testing.T) {
	root := NewDocument(map[string]*Schema{"User": {Type: TypeObject}})
	d := diag.NewCollector()

	s := TryResolveRef("#/components/schemas/User", root, d)
	assert.Equal(t, TypeObject, s.Type)
	assert.Zero(t, d.Len())
}
