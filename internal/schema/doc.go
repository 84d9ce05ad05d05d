// Package schema defines the runtime table description used by the record
// store: an ordered set of typed columns with one column designated as the
// primary key.
//
// A Descriptor is built once by the caller and is immutable afterwards,
// except for append-only growth through AddColumn. Column order is
// significant: it is preserved from construction and determines the column
// order used for every generated statement, so positional parameter binding
// stays stable for the lifetime of the descriptor.
//
// Records are plain map[string]any values. Validate checks the columns a
// record actually supplies against their declared type family (Integer and
// Real accept any numeric kind, Text accepts string, Blob accepts []byte).
// Nil and absent values always pass; NOT NULL is not enforced at this layer.
package schema
