package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/dynstore/internal/schema"
)

// TableDef is the on-disk table definition:
//
//	table: items
//	primary_key: id
//	columns:
//	  - name: id
//	    type: TEXT
//	  - name: value
//	    type: REAL
//
// Columns are a YAML sequence so declaration order survives parsing; a
// mapping would lose it.
type TableDef struct {
	Table      string      `yaml:"table"`
	PrimaryKey string      `yaml:"primary_key"`
	Columns    []ColumnDef `yaml:"columns"`
}

// ColumnDef is one declared column.
type ColumnDef struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// LoadTableDef parses a table definition file.
func LoadTableDef(path string) (*TableDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read table definition: %w", err)
	}
	var def TableDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse table definition: %w", err)
	}
	return &def, nil
}

// Descriptor converts the definition to a schema descriptor, resolving
// declared type names to type families.
func (d *TableDef) Descriptor() (*schema.Descriptor, error) {
	cols := make([]schema.Column, 0, len(d.Columns))
	for _, c := range d.Columns {
		typ, err := schema.ParseType(c.Type)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", c.Name, err)
		}
		cols = append(cols, schema.Column{Name: c.Name, Type: typ})
	}
	return schema.New(d.Table, d.PrimaryKey, cols)
}
