package store

import (
	"context"

	"github.com/roach88/dynstore/internal/schema"
	"github.com/roach88/dynstore/internal/sqlgen"
)

// Query executes an arbitrary parameterized read statement and returns the
// rows keyed by the statement's own result columns. This is the escape
// hatch past the descriptor; the statement text is not inspected, so
// injection safety rests on the caller binding values as parameters.
func (s *Store) Query(ctx context.Context, query string, args ...any) ([]schema.Record, error) {
	rows, err := s.handle().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.engineErr("query", err)
	}
	defer rows.Close()

	records := []schema.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, s.engineErr("query", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, s.engineErr("query", err)
	}
	return records, nil
}

// LiveColumn is one column as the engine's catalog currently declares it.
type LiveColumn struct {
	Name string
	Type string // declared type text as stored in the catalog
}

// LiveSchema reads the engine's catalog for the managed table and returns
// its columns in catalog order. No caching: this reflects the physical
// table even after an out-of-process schema change, so callers can detect
// drift from the in-memory descriptor.
func (s *Store) LiveSchema(ctx context.Context) ([]LiveColumn, error) {
	stmt := sqlgen.TableInfo(s.desc)
	rows, err := s.handle().QueryContext(ctx, stmt.SQL)
	if err != nil {
		return nil, s.engineErr("liveSchema", err)
	}
	defer rows.Close()

	var cols []LiveColumn
	for rows.Next() {
		// PRAGMA table_info yields cid, name, type, notnull, dflt_value, pk.
		var (
			cid, notnull, pk int
			name, typ        string
			dflt             any
		)
		if err := rows.Scan(&cid, &name, &typ, &notnull, &dflt, &pk); err != nil {
			return nil, s.engineErr("liveSchema", err)
		}
		cols = append(cols, LiveColumn{Name: name, Type: typ})
	}
	if err := rows.Err(); err != nil {
		return nil, s.engineErr("liveSchema", err)
	}
	return cols, nil
}

// Tables returns the names of all user tables in the database, excluding
// the engine's internal entries.
func (s *Store) Tables(ctx context.Context) ([]string, error) {
	stmt := sqlgen.ListTables()
	rows, err := s.handle().QueryContext(ctx, stmt.SQL)
	if err != nil {
		return nil, s.engineErr("tables", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, s.engineErr("tables", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, s.engineErr("tables", err)
	}
	return tables, nil
}

// TableExists reports whether a table with the given name exists.
func (s *Store) TableExists(ctx context.Context, name string) (bool, error) {
	stmt := sqlgen.TableExists(name)
	rows, err := s.handle().QueryContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return false, s.engineErr("tableExists", err)
	}
	defer rows.Close()
	found := rows.Next()
	if err := rows.Err(); err != nil {
		return false, s.engineErr("tableExists", err)
	}
	return found, nil
}
