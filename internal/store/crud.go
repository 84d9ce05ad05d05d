package store

import (
	"context"
	"fmt"

	"github.com/roach88/dynstore/internal/event"
	"github.com/roach88/dynstore/internal/schema"
	"github.com/roach88/dynstore/internal/sqlgen"
)

// Upsert inserts the record, or updates the existing row when one already
// carries the record's primary-key value. Exactly one of insert or update
// executes. On success a RecordUpserted event fires with the key value.
//
// The record must pass type validation and must supply the primary key;
// failures are returned and also emitted as StoreError events, and no row
// is written.
func (s *Store) Upsert(ctx context.Context, rec schema.Record) error {
	key, err := s.checkRecord("upsert", rec)
	if err != nil {
		return err
	}

	exists, err := s.keyExists(ctx, "upsert", key)
	if err != nil {
		return err
	}

	var stmt sqlgen.Statement
	if exists {
		stmt = sqlgen.Update(s.desc, rec)
	} else {
		stmt = sqlgen.Insert(s.desc, rec)
	}
	if _, err := s.handle().ExecContext(ctx, stmt.SQL, stmt.Args...); err != nil {
		return s.engineErr("upsert", err)
	}

	s.events.Emit(event.Event{Kind: event.RecordUpserted, Table: s.desc.Table(), Key: key})
	return nil
}

// Modify updates the existing row for the record's primary-key value. When
// no such row exists nothing is written and a RecordNotFound event fires
// with op "modify"; that outcome is not an error.
func (s *Store) Modify(ctx context.Context, rec schema.Record) error {
	key, err := s.checkRecord("modify", rec)
	if err != nil {
		return err
	}

	exists, err := s.keyExists(ctx, "modify", key)
	if err != nil {
		return err
	}
	if !exists {
		s.events.Emit(event.Event{Kind: event.RecordNotFound, Table: s.desc.Table(), Op: "modify", Key: key})
		return nil
	}

	stmt := sqlgen.Update(s.desc, rec)
	if _, err := s.handle().ExecContext(ctx, stmt.SQL, stmt.Args...); err != nil {
		return s.engineErr("modify", err)
	}

	s.events.Emit(event.Event{Kind: event.RecordModified, Table: s.desc.Table(), Key: key})
	return nil
}

// Delete removes the row matching the primary-key value. A matched row
// fires RecordDeleted; no match fires RecordNotFound with op "delete".
// Neither outcome is an error.
func (s *Store) Delete(ctx context.Context, key any) error {
	stmt := sqlgen.Delete(s.desc, key)
	res, err := s.handle().ExecContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return s.engineErr("delete", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return s.engineErr("delete", fmt.Errorf("rows affected: %w", err))
	}
	if affected > 0 {
		s.events.Emit(event.Event{Kind: event.RecordDeleted, Table: s.desc.Table(), Key: key})
	} else {
		s.events.Emit(event.Event{Kind: event.RecordNotFound, Table: s.desc.Table(), Op: "delete", Key: key})
	}
	return nil
}

// Get returns the full row for the primary-key value, or nil when no row
// matches.
func (s *Store) Get(ctx context.Context, key any) (schema.Record, error) {
	stmt := sqlgen.SelectByKey(s.desc, key)
	rows, err := s.handle().QueryContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, s.engineErr("get", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, s.engineErr("get", err)
		}
		return nil, nil
	}
	rec, err := scanRecord(rows)
	if err != nil {
		return nil, s.engineErr("get", err)
	}
	return rec, nil
}

// GetAll returns every row in engine iteration order. The result is an
// empty slice, not nil, when the table is empty.
func (s *Store) GetAll(ctx context.Context) ([]schema.Record, error) {
	stmt := sqlgen.SelectAll(s.desc)
	rows, err := s.handle().QueryContext(ctx, stmt.SQL)
	if err != nil {
		return nil, s.engineErr("getAll", err)
	}
	defer rows.Close()

	records := []schema.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, s.engineErr("getAll", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, s.engineErr("getAll", err)
	}
	return records, nil
}

// checkRecord runs type validation and extracts the primary-key value.
// Both failure modes are emitted as StoreError events and returned.
func (s *Store) checkRecord(op string, rec schema.Record) (any, error) {
	if err := schema.Validate(s.desc, rec); err != nil {
		s.events.Emit(event.Event{Kind: event.StoreError, Table: s.desc.Table(), Op: op, Err: err})
		return nil, err
	}
	key, ok := rec[s.desc.PrimaryKey()]
	if !ok || key == nil {
		err := &StoreError{
			Code:    ErrCodeMissingPrimaryKey,
			Message: fmt.Sprintf("record has no value for primary key column %q", s.desc.PrimaryKey()),
			Table:   s.desc.Table(),
			Op:      op,
		}
		s.events.Emit(event.Event{Kind: event.StoreError, Table: s.desc.Table(), Op: op, Err: err})
		return nil, err
	}
	return key, nil
}

// keyExists probes for a row with the given primary-key value.
func (s *Store) keyExists(ctx context.Context, op string, key any) (bool, error) {
	stmt := sqlgen.Exists(s.desc, key)
	var count int
	if err := s.handle().QueryRowContext(ctx, stmt.SQL, stmt.Args...).Scan(&count); err != nil {
		return false, s.engineErr(op, fmt.Errorf("existence probe: %w", err))
	}
	return count > 0, nil
}
