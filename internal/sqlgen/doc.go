// Package sqlgen generates parameterized SQL statements from a runtime
// schema descriptor.
//
// Every function is a pure transform from (descriptor, operation intent) to
// a Statement: template text with positional ? placeholders plus the
// ordered argument list. All statement shaping lives here so the
// column-order invariant is enforced in exactly one place: columns always
// appear in descriptor declaration order, and for updates the primary-key
// value is always the last bound argument.
//
// Values are always parameterized, never interpolated into statement text.
// Identifiers (table and column names) come from the descriptor, which the
// caller constructed; they are trusted and rendered verbatim.
package sqlgen
