// Package converrors provides structured error types for schemaconv.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: YAML/JSON document parsing failures
//   - ResolutionError: $ref resolution failures (non-local ref, missing segment)
//   - UnsupportedTargetError: unknown target identifier passed to the facade
//   - RuntimeUnavailableError: runtime conversion requested for a target whose
//     adapter is not linked into the binary
//
// # Usage with errors.As
//
//	schema, err := canonical.ResolveRef(ref, root)
//	if err != nil {
//	    var resErr *converrors.ResolutionError
//	    if errors.As(err, &resErr) {
//	        fmt.Println("failed segment:", resErr.Segment)
//	    }
//	}
package converrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a document parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrResolution indicates a $ref resolution failure.
	ErrResolution = errors.New("resolution error")

	// ErrUnsupportedTarget indicates an unknown conversion target.
	ErrUnsupportedTarget = errors.New("unsupported target")

	// ErrRuntimeUnavailable indicates the target's runtime adapter is not linked in.
	ErrRuntimeUnavailable = errors.New("target runtime unavailable")

	// ErrStrictMode indicates diagnostics occurred while strict mode was on.
	ErrStrictMode = errors.New("strict mode violation")
)

// ParseError represents a failure to parse a canonical schema document.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ResolutionError represents a failure to resolve a local $ref fragment.
type ResolutionError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// Segment is the first fragment segment that could not be found
	// (empty when the failure is not tied to a specific segment)
	Segment string
	// IsNonLocal is true when the ref is not a "#/..." local fragment
	IsNonLocal bool
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *ResolutionError) Error() string {
	msg := "resolution error"
	if e.IsNonLocal {
		msg = "non-local reference"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Segment != "" {
		msg += fmt.Sprintf(" (missing segment: %s)", e.Segment)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResolutionError) Is(target error) bool {
	return target == ErrResolution
}

// UnsupportedTargetError represents an unknown target identifier.
// This is a programmer error, not a conversion diagnostic.
type UnsupportedTargetError struct {
	// Target is the rejected identifier
	Target string
}

// Error returns a human-readable error message.
func (e *UnsupportedTargetError) Error() string {
	return fmt.Sprintf("unsupported target: %q", e.Target)
}

// Is reports whether target matches this error type.
func (e *UnsupportedTargetError) Is(target error) bool {
	return target == ErrUnsupportedTarget
}

// RuntimeUnavailableError indicates that runtime conversion was requested for
// a target whose adapter package is not linked into the current binary.
// The code generation path never produces this error.
type RuntimeUnavailableError struct {
	// Target is the target whose runtime builder is missing
	Target string
}

// Error returns a human-readable error message.
func (e *RuntimeUnavailableError) Error() string {
	return fmt.Sprintf("target runtime unavailable: %s (blank-import the matching adapter package under convert/)", e.Target)
}

// Is reports whether target matches this error type.
func (e *RuntimeUnavailableError) Is(target error) bool {
	return target == ErrRuntimeUnavailable
}

// StrictModeError indicates a conversion produced diagnostics while strict
// mode was enabled. The conversion result is still returned alongside it.
type StrictModeError struct {
	// Warnings are the formatted diagnostics that triggered the error
	Warnings []string
}

// Error returns a human-readable error message.
func (e *StrictModeError) Error() string {
	return fmt.Sprintf("strict mode: conversion produced %d diagnostic(s)", len(e.Warnings))
}

// Is reports whether target matches this error type.
func (e *StrictModeError) Is(target error) bool {
	return target == ErrStrictMode
}
