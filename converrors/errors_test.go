package converrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelMatching(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{name: "parse", err: &ParseError{Message: "bad yaml"}, sentinel: ErrParse},
		{name: "resolution", err: &ResolutionError{Ref: "#/x"}, sentinel: ErrResolution},
		{name: "unsupported target", err: &UnsupportedTargetError{Target: "zod"}, sentinel: ErrUnsupportedTarget},
		{name: "runtime unavailable", err: &RuntimeUnavailableError{Target: "ozzo"}, sentinel: ErrRuntimeUnavailable},
		{name: "strict mode", err: &StrictModeError{Warnings: []string{"w"}}, sentinel: ErrStrictMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.sentinel))
			// Wrapping preserves matching.
			wrapped := fmt.Errorf("outer: %w", tt.err)
			assert.True(t, errors.Is(wrapped, tt.sentinel))
		})
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	cause := errors.New("yaml: line 3")
	err := &ParseError{Path: "api.yaml", Message: "failed to parse document", Cause: cause}

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "api.yaml")
	assert.Contains(t, err.Error(), "yaml: line 3")
}

func TestResolutionErrorMessage(t *testing.T) {
	err := &ResolutionError{Ref: "#/components/ghost/x", Segment: "ghost"}
	assert.Contains(t, err.Error(), "#/components/ghost/x")
	assert.Contains(t, err.Error(), "missing segment: ghost")

	nonLocal := &ResolutionError{Ref: "other.yaml#/x", IsNonLocal: true}
	assert.Contains(t, nonLocal.Error(), "non-local reference")
}

func TestErrorsAsTypedAccess(t *testing.T) {
	var err error = &UnsupportedTargetError{Target: "zod"}

	var utErr *UnsupportedTargetError
	require.True(t, errors.As(err, &utErr))
	assert.Equal(t, "zod", utErr.Target)
}

func TestStrictModeErrorMessage(t *testing.T) {
	err := &StrictModeError{Warnings: []string{"a", "b"}}
	assert.Contains(t, err.Error(), "2 diagnostic(s)")
}
