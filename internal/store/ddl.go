package store

import (
	"context"

	"github.com/roach88/dynstore/internal/event"
	"github.com/roach88/dynstore/internal/schema"
	"github.com/roach88/dynstore/internal/sqlgen"
)

// AddColumn appends a new column to the physical table and, on success, to
// the in-memory descriptor. This is the only supported schema evolution:
// columns are never removed or retyped. Existing rows read back NULL for
// the new column.
func (s *Store) AddColumn(ctx context.Context, name string, typ schema.Type) error {
	stmt := sqlgen.AddColumn(s.desc, name, typ)
	if _, err := s.handle().ExecContext(ctx, stmt.SQL); err != nil {
		return s.engineErr("addColumn", err)
	}
	if err := s.desc.AddColumn(name, typ); err != nil {
		// Physical table already has the column; surface the descriptor
		// defect rather than hiding the divergence.
		return &StoreError{
			Code:    ErrCodeSchemaInvalid,
			Message: "descriptor rejected added column",
			Table:   s.desc.Table(),
			Op:      "addColumn",
			Err:     err,
		}
	}
	s.events.Emit(event.Event{Kind: event.ColumnAdded, Table: s.desc.Table(), Column: name, Detail: typ.String()})
	return nil
}

// DropTable removes the physical table if it exists. The descriptor is
// untouched; a later Open recreates the table.
func (s *Store) DropTable(ctx context.Context) error {
	stmt := sqlgen.DropTable(s.desc)
	if _, err := s.handle().ExecContext(ctx, stmt.SQL); err != nil {
		return s.engineErr("dropTable", err)
	}
	s.events.Emit(event.Event{Kind: event.TableDropped, Table: s.desc.Table()})
	return nil
}

// ClearTable deletes every row. The table and its schema remain.
func (s *Store) ClearTable(ctx context.Context) error {
	stmt := sqlgen.ClearTable(s.desc)
	if _, err := s.handle().ExecContext(ctx, stmt.SQL); err != nil {
		return s.engineErr("clearTable", err)
	}
	s.events.Emit(event.Event{Kind: event.TableCleared, Table: s.desc.Table()})
	return nil
}
