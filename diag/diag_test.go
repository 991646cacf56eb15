package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorAccumulatesInOrder(t *testing.T) {
	c := NewCollector()
	c.Add(KindUnsupportedFormat, "properties.email", "format bycycle is not recognized")
	c.Addf(KindUnresolvedRef, "", "could not resolve %q", "#/nope")

	require.Equal(t, 2, c.Len())
	list := c.List()
	assert.Equal(t, KindUnsupportedFormat, list[0].Kind)
	assert.Equal(t, KindUnresolvedRef, list[1].Kind)
	assert.Equal(t, `could not resolve "#/nope"`, list[1].Message)
}

func TestCollectorListIsCopy(t *testing.T) {
	c := NewCollector()
	c.Add(KindFallbackUsed, "", "x")

	list := c.List()
	list[0].Message = "mutated"
	assert.Equal(t, "x", c.List()[0].Message)
}

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{
			name: "with path",
			d:    Diagnostic{Kind: KindUnsupportedConstraint, Path: "properties.n", Message: "multipleOf dropped"},
			want: "[unsupported-constraint] properties.n: multipleOf dropped",
		},
		{
			name: "without path",
			d:    Diagnostic{Kind: KindComplexComposition, Message: "oneOf not representable"},
			want: "[complex-composition] oneOf not representable",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}

func TestCountKind(t *testing.T) {
	c := NewCollector()
	c.Add(KindUnsupportedConstraint, "a", "one")
	c.Add(KindUnsupportedConstraint, "b", "two")
	c.Add(KindUnsupportedType, "c", "three")

	assert.Equal(t, 2, c.CountKind(KindUnsupportedConstraint))
	assert.Equal(t, 1, c.CountKind(KindUnsupportedType))
	assert.Equal(t, 0, c.CountKind(KindUnresolvedRef))
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector
	c.Add(KindFallbackUsed, "", "ignored")
	c.Addf(KindFallbackUsed, "", "also %s", "ignored")

	assert.Zero(t, c.Len())
	assert.Nil(t, c.List())
	assert.Nil(t, c.Strings())
	assert.Zero(t, c.CountKind(KindFallbackUsed))
}
