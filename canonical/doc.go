// Package canonical defines the canonical schema model shared by every
// converter and code generator in schemaconv, together with local $ref
// resolution and allOf normalization.
//
// Import path: github.com/erraggy/schemaconv/canonical
//
// A [Schema] is the OpenAPI/JSON-Schema-shaped tree that is the common
// interchange format for all conversions. Schemas are caller-owned,
// read-only inputs: no function in this module ever mutates one.
//
// # Invariants
//
// Canonical schemas are assumed to satisfy:
//
//   - every name in Required is a key of Properties
//   - Nullable is orthogonal to Type
//   - a node is driven by at most one of primitive type, composition
//     (allOf/oneOf/anyOf), or $ref; metadata may always be present
//   - the tree is acyclic (cyclic input is an unguarded non-goal)
//
// # Reference Resolution
//
// [ResolveRef] resolves a local "#/..." fragment against a [Document] and
// fails with a [converrors.ResolutionError] on non-local refs or missing
// path segments. [TryResolveRef] never fails: it records an unresolved-ref
// diagnostic and returns the universal schema instead. Converters use only
// the latter.
package canonical
