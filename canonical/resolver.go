package canonical

import (
	"strings"

	"github.com/erraggy/schemaconv/converrors"
	"github.com/erraggy/schemaconv/diag"
)

// ResolveRef resolves a local "#/..." fragment against a root document.
// It fails with a *converrors.ResolutionError when the ref is not a local
// fragment or any path segment is absent. Converters use TryResolveRef
// instead; this variant exists for callers that treat a bad ref as fatal.
func ResolveRef(ref string, root *Document) (*Schema, error) {
	if !strings.HasPrefix(ref, "#/") {
		return nil, &converrors.ResolutionError{Ref: ref, IsNonLocal: true}
	}
	if root == nil {
		return nil, &converrors.ResolutionError{Ref: ref, Message: "no root document"}
	}

	segments := strings.Split(strings.TrimPrefix(ref, "#/"), "/")

	// Fast path: the typed components/definitions maps.
	if s, ok := resolveTyped(segments, root); ok {
		return s, nil
	}

	if root.raw == nil {
		return nil, &converrors.ResolutionError{Ref: ref, Segment: segments[0], Message: "not found in document"}
	}

	// Walk the raw tree segment by segment, short-circuiting on the first
	// missing segment.
	current := any(root.raw)
	for _, seg := range segments {
		seg = unescapeJSONPointer(seg)
		m, ok := current.(map[string]any)
		if !ok {
			return nil, &converrors.ResolutionError{Ref: ref, Segment: seg, Message: "cannot traverse non-object node"}
		}
		next, ok := m[seg]
		if !ok {
			return nil, &converrors.ResolutionError{Ref: ref, Segment: seg}
		}
		current = next
	}

	s, err := schemaFromRaw(current)
	if err != nil {
		return nil, &converrors.ResolutionError{Ref: ref, Message: err.Error()}
	}
	return s, nil
}

// TryResolveRef resolves a local fragment and never fails: on any failure
// (missing root document, non-local ref, missing segment) it records an
// unresolved-ref diagnostic and returns the universal schema.
func TryResolveRef(ref string, root *Document, d *diag.Collector) *Schema {
	s, err := ResolveRef(ref, root)
	if err != nil {
		d.Addf(diag.KindUnresolvedRef, "", "could not resolve %q: %v; using permissive schema", ref, err)
		return &Schema{}
	}
	return s
}

// resolveTyped serves "#/components/schemas/<name>" and "#/definitions/<name>"
// from the typed maps, covering programmatically built documents with no raw
// tree.
func resolveTyped(segments []string, root *Document) (*Schema, bool) {
	var name string
	switch {
	case len(segments) == 3 && segments[0] == "components" && segments[1] == "schemas":
		name = unescapeJSONPointer(segments[2])
	case len(segments) == 2 && segments[0] == "definitions":
		name = unescapeJSONPointer(segments[1])
	default:
		return nil, false
	}
	return root.Schema(name)
}

// unescapeJSONPointer unescapes JSON Pointer tokens.
// Per RFC 6901, ~1 represents / and ~0 represents ~.
func unescapeJSONPointer(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	token = strings.ReplaceAll(token, "~0", "~")
	return token
}
