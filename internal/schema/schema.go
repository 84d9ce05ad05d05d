package schema

import (
	"fmt"
	"strings"
)

// Type is the declared type family of a column.
type Type int

const (
	// Integer accepts any integral numeric value.
	Integer Type = iota
	// Real accepts any numeric value, stored as a float.
	Real
	// Text accepts string values.
	Text
	// Blob accepts raw byte sequences.
	Blob
)

// String returns the canonical SQL spelling of the type.
func (t Type) String() string {
	switch t {
	case Integer:
		return "INTEGER"
	case Real:
		return "REAL"
	case Text:
		return "TEXT"
	case Blob:
		return "BLOB"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType maps a declared SQL type name to its type family.
// Matching follows SQLite's affinity rules loosely: any spelling containing
// INT is Integer, CHAR/CLOB/TEXT are Text, BLOB (or empty) is Blob, and
// REAL/FLOA/DOUB are Real.
func ParseType(s string) (Type, error) {
	u := strings.ToUpper(strings.TrimSpace(s))
	switch {
	case strings.Contains(u, "INT"):
		return Integer, nil
	case strings.Contains(u, "CHAR"), strings.Contains(u, "CLOB"), strings.Contains(u, "TEXT"):
		return Text, nil
	case u == "" || strings.Contains(u, "BLOB"):
		return Blob, nil
	case strings.Contains(u, "REAL"), strings.Contains(u, "FLOA"), strings.Contains(u, "DOUB"):
		return Real, nil
	default:
		return 0, fmt.Errorf("unknown column type %q", s)
	}
}

// Column is a single named, typed column.
type Column struct {
	Name string
	Type Type
}

// Record is one logical row: a mapping from column name to a scalar value
// (integral, float, string, []byte, or nil). A record may supply any subset
// of a descriptor's columns.
type Record map[string]any

// Descriptor describes a managed table: its name, its ordered columns, and
// which column is the primary key.
//
// The column slice preserves construction order. AddColumn appends; nothing
// ever reorders or removes columns.
type Descriptor struct {
	table      string
	primaryKey string
	columns    []Column
}

// SchemaError reports a malformed table description.
type SchemaError struct {
	Table   string
	Message string
}

func (e *SchemaError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("SCHEMA_INVALID: %s (table=%s)", e.Message, e.Table)
	}
	return fmt.Sprintf("SCHEMA_INVALID: %s", e.Message)
}

// New builds a Descriptor. It fails if the table name is empty, no columns
// are given, a column name repeats, or the primary key is not among the
// declared columns.
func New(table, primaryKey string, columns []Column) (*Descriptor, error) {
	if table == "" {
		return nil, &SchemaError{Message: "table name is empty"}
	}
	if len(columns) == 0 {
		return nil, &SchemaError{Table: table, Message: "no columns declared"}
	}
	seen := make(map[string]bool, len(columns))
	for _, c := range columns {
		if c.Name == "" {
			return nil, &SchemaError{Table: table, Message: "column with empty name"}
		}
		if seen[c.Name] {
			return nil, &SchemaError{Table: table, Message: fmt.Sprintf("duplicate column %q", c.Name)}
		}
		seen[c.Name] = true
	}
	if !seen[primaryKey] {
		return nil, &SchemaError{
			Table:   table,
			Message: fmt.Sprintf("columns must include the primary key column %q", primaryKey),
		}
	}
	d := &Descriptor{
		table:      table,
		primaryKey: primaryKey,
		columns:    make([]Column, len(columns)),
	}
	copy(d.columns, columns)
	return d, nil
}

// Table returns the managed table name.
func (d *Descriptor) Table() string { return d.table }

// PrimaryKey returns the primary key column name.
func (d *Descriptor) PrimaryKey() string { return d.primaryKey }

// Columns returns the declared columns in declaration order.
// The returned slice is a copy; mutating it does not affect the descriptor.
func (d *Descriptor) Columns() []Column {
	out := make([]Column, len(d.columns))
	copy(out, d.columns)
	return out
}

// Names returns the column names in declaration order.
func (d *Descriptor) Names() []string {
	out := make([]string, len(d.columns))
	for i, c := range d.columns {
		out[i] = c.Name
	}
	return out
}

// TypeOf returns the declared type of a column and whether it exists.
func (d *Descriptor) TypeOf(name string) (Type, bool) {
	for _, c := range d.columns {
		if c.Name == name {
			return c.Type, true
		}
	}
	return 0, false
}

// Has reports whether a column is declared.
func (d *Descriptor) Has(name string) bool {
	_, ok := d.TypeOf(name)
	return ok
}

// AddColumn appends a new column. The schema only ever grows: the new
// column lands at the end of the declaration order. It fails if the name
// is empty or already declared.
func (d *Descriptor) AddColumn(name string, typ Type) error {
	if name == "" {
		return &SchemaError{Table: d.table, Message: "column with empty name"}
	}
	if d.Has(name) {
		return &SchemaError{Table: d.table, Message: fmt.Sprintf("duplicate column %q", name)}
	}
	d.columns = append(d.columns, Column{Name: name, Type: typ})
	return nil
}
