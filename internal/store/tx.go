package store

import (
	"context"

	"github.com/roach88/dynstore/internal/event"
	"github.com/roach88/dynstore/internal/schema"
)

// Begin opens a session-scoped transaction. Every statement issued until
// Commit or Rollback participates in it. Calling Begin while a transaction
// is already open is a caller error and is rejected; nested transactions
// are not supported.
func (s *Store) Begin(ctx context.Context) error {
	if s.tx != nil {
		return &StoreError{
			Code:    ErrCodeTxState,
			Message: "transaction already open",
			Table:   s.desc.Table(),
			Op:      "begin",
		}
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return s.engineErr("begin", err)
	}
	s.tx = tx
	s.events.Emit(event.Event{Kind: event.TxBegan, Table: s.desc.Table()})
	return nil
}

// Commit commits the open transaction and returns the session to
// autocommit. It fails when no transaction is open.
func (s *Store) Commit() error {
	if s.tx == nil {
		return &StoreError{Code: ErrCodeTxState, Message: "no open transaction", Table: s.desc.Table(), Op: "commit"}
	}
	err := s.tx.Commit()
	s.tx = nil
	if err != nil {
		return s.engineErr("commit", err)
	}
	s.events.Emit(event.Event{Kind: event.TxCommitted, Table: s.desc.Table()})
	return nil
}

// Rollback undoes everything since Begin and returns the session to
// autocommit. It fails when no transaction is open.
func (s *Store) Rollback() error {
	if s.tx == nil {
		return &StoreError{Code: ErrCodeTxState, Message: "no open transaction", Table: s.desc.Table(), Op: "rollback"}
	}
	err := s.tx.Rollback()
	s.tx = nil
	if err != nil {
		return s.engineErr("rollback", err)
	}
	s.events.Emit(event.Event{Kind: event.TxRolledBack, Table: s.desc.Table()})
	return nil
}

// UpsertBatch upserts the records in input order inside one transaction.
// The batch is all-or-nothing: the first failure rolls everything back and
// is returned to the caller. A nil or empty batch is a no-op.
//
// Each member goes through the ordinary Upsert path, existence probe
// included; atomicity comes entirely from the surrounding transaction.
func (s *Store) UpsertBatch(ctx context.Context, recs []schema.Record) error {
	if len(recs) == 0 {
		return nil
	}
	if err := s.Begin(ctx); err != nil {
		return err
	}
	for _, rec := range recs {
		if err := s.Upsert(ctx, rec); err != nil {
			if rbErr := s.Rollback(); rbErr != nil {
				s.events.Emit(event.Event{Kind: event.StoreError, Table: s.desc.Table(), Op: "upsertBatch", Err: rbErr})
			}
			return err
		}
	}
	return s.Commit()
}
