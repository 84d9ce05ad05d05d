package store

import (
	"database/sql"
	"fmt"

	"github.com/roach88/dynstore/internal/schema"
)

// scanRecord reads the current row into a Record keyed by the result set's
// own column names. Works for both descriptor-shaped selects and ad-hoc
// queries, whose column set the statement alone determines.
func scanRecord(rows *sql.Rows) (schema.Record, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("result columns: %w", err)
	}

	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, fmt.Errorf("scan row: %w", err)
	}

	rec := make(schema.Record, len(cols))
	for i, name := range cols {
		rec[name] = values[i]
	}
	return rec, nil
}
