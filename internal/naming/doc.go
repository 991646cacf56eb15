// Package naming provides shared Go identifier sanitization for schemaconv
// packages.
//
// This internal package contains the SanitizeExported and SanitizeUnexported
// helpers the code generators use to turn schema names into valid Go
// identifiers.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
