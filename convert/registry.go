package convert

import (
	"sync"

	"github.com/erraggy/schemaconv/canonical"
	"github.com/erraggy/schemaconv/diag"
)

// Validator is the behavioral surface every runtime validator satisfies:
// Validate returns nil when v conforms and a descriptive error otherwise.
// Values are decoded data (map[string]any, []any, scalars), not structs.
type Validator interface {
	Validate(v any) error
}

// RuntimeConverter builds a target's native schema object and its
// Validator. Adapter packages register exactly one per target.
type RuntimeConverter func(s *canonical.Schema, name string, opts *Options, d *diag.Collector) (schema any, validator Validator, err error)

var (
	runtimeMu         sync.RWMutex
	runtimeConverters = map[Target]RuntimeConverter{}
)

// RegisterRuntime installs the runtime converter for a target. Adapter
// packages call it from init; a nil converter or a duplicate registration
// panics, following database/sql driver conventions.
func RegisterRuntime(t Target, fn RuntimeConverter) {
	if fn == nil {
		panic("convert: RegisterRuntime with nil converter for target " + string(t))
	}
	runtimeMu.Lock()
	defer runtimeMu.Unlock()
	if _, dup := runtimeConverters[t]; dup {
		panic("convert: RegisterRuntime called twice for target " + string(t))
	}
	runtimeConverters[t] = fn
}

// RuntimeAvailable reports whether the target's runtime adapter is linked
// into the binary.
func RuntimeAvailable(t Target) bool {
	runtimeMu.RLock()
	defer runtimeMu.RUnlock()
	_, ok := runtimeConverters[t]
	return ok
}

func lookupRuntime(t Target) (RuntimeConverter, bool) {
	runtimeMu.RLock()
	defer runtimeMu.RUnlock()
	fn, ok := runtimeConverters[t]
	return fn, ok
}
