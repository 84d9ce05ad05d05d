package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/dynstore/internal/event"
	"github.com/roach88/dynstore/internal/schema"
	"github.com/roach88/dynstore/internal/sqlgen"
)

// Store manages one runtime-defined table in one SQLite database file.
type Store struct {
	path   string
	desc   *schema.Descriptor
	events *event.Notifier

	db *sql.DB
	tx *sql.Tx // open transaction, nil when idle
}

// Option configures a Store at Open time.
type Option func(*Store)

// WithNotifier installs a caller-owned event notifier. Without it the store
// uses a fresh notifier whose handlers log through slog.
func WithNotifier(n *event.Notifier) Option {
	return func(s *Store) { s.events = n }
}

// handle is the statement-execution surface shared by *sql.DB and *sql.Tx.
// Every store operation executes through handle() so an open transaction
// transparently captures all statements issued during its lifetime.
type handle interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Store) handle() handle {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

// NormalizePath appends the .db extension when the path lacks it, matching
// how database files are named on disk.
func NormalizePath(path string) string {
	if strings.HasSuffix(path, ".db") {
		return path
	}
	return path + ".db"
}

// Exists reports whether a database file already exists at the given path
// (with or without the .db extension).
func Exists(path string) bool {
	_, err := os.Stat(NormalizePath(path))
	return err == nil
}

// Open opens (creating if absent) the SQLite database at path and ensures
// the descriptor's table exists. The connection is pinned to a single
// handle and configured with WAL journaling and a busy timeout.
//
// Open fails without touching the engine when the descriptor is nil;
// descriptor shape itself is validated at construction by schema.New.
// Failures are returned and also emitted as StoreError events.
func Open(path string, desc *schema.Descriptor, opts ...Option) (*Store, error) {
	s := &Store{path: NormalizePath(path), desc: desc}
	for _, opt := range opts {
		opt(s)
	}
	if s.events == nil {
		s.events = event.NewNotifier()
	}

	if desc == nil {
		err := &StoreError{Code: ErrCodeSchemaInvalid, Message: "nil schema descriptor"}
		s.events.Emit(event.Event{Kind: event.StoreError, Op: "open", Err: err})
		return nil, err
	}

	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return nil, s.engineErr("open", fmt.Errorf("open database: %w", err))
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, s.engineErr("open", fmt.Errorf("connect to database: %w", err))
	}

	// SQLite allows one writer at a time; a single pinned connection also
	// keeps transaction state session-scoped.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, s.engineErr("open", err)
	}

	s.db = db
	s.events.Emit(event.Event{Kind: event.Connected, Table: desc.Table(), Detail: s.path})

	stmt := sqlgen.CreateTable(desc)
	if _, err := db.Exec(stmt.SQL); err != nil {
		db.Close()
		s.db = nil
		return nil, s.engineErr("open", fmt.Errorf("create table: %w", err))
	}
	s.events.Emit(event.Event{Kind: event.TableReady, Table: desc.Table()})

	return s, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %q: %w", pragma, err)
		}
	}
	return nil
}

// Descriptor returns the store's schema descriptor.
func (s *Store) Descriptor() *schema.Descriptor { return s.desc }

// Path returns the database file path (with the .db extension).
func (s *Store) Path() string { return s.path }

// Events returns the store's notifier, for registering handlers.
func (s *Store) Events() *event.Notifier { return s.events }

// Close releases the session. Calling Close on an already-closed store is a
// no-op.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.tx = nil
	if err != nil {
		return s.engineErr("close", err)
	}
	s.events.Emit(event.Event{Kind: event.Closed, Table: s.desc.Table()})
	return nil
}

// Destroy closes the session and removes the database file. Close errors
// are reported through the notifier but do not block removal; a failed
// removal is an IO_FAILURE.
func (s *Store) Destroy() error {
	if err := s.Close(); err != nil {
		s.events.Emit(event.Event{Kind: event.StoreError, Table: s.desc.Table(), Op: "destroy", Err: err})
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}
	if err := os.Remove(s.path); err != nil {
		return &StoreError{
			Code:    ErrCodeIO,
			Message: "delete database file",
			Table:   s.desc.Table(),
			Op:      "destroy",
			Err:     err,
		}
	}
	s.events.Emit(event.Event{Kind: event.StoreDeleted, Table: s.desc.Table(), Detail: s.path})
	return nil
}

// engineErr wraps an engine-level failure, emits the StoreError event, and
// returns the wrapped error.
func (s *Store) engineErr(op string, err error) error {
	se := &StoreError{
		Code:    ErrCodeEngine,
		Message: "storage engine failure",
		Table:   s.desc.Table(),
		Op:      op,
		Err:     err,
	}
	s.events.Emit(event.Event{Kind: event.StoreError, Table: s.desc.Table(), Op: op, Err: se})
	return se
}
