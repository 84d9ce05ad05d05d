// Package store provides a SQLite-backed record store whose table shape is
// defined at runtime by a schema.Descriptor.
//
// One Store owns one database/sql handle to one physical table. The handle
// is opened once, limited to a single connection, and closed explicitly;
// there is no internal pooling. Each write validates the supplied record
// against the descriptor, generates a parameterized statement through
// sqlgen, executes it, and emits a lifecycle event through the instance's
// event.Notifier.
//
// # Transactions
//
// Begin/Commit/Rollback manage a single session-scoped transaction; while
// one is open every statement routes through it. UpsertBatch wraps a record
// sequence in one transaction and rolls the whole batch back on the first
// failure, so batches are all-or-nothing.
//
// # Concurrency
//
// A Store has one logical owner: serialize access externally if multiple
// goroutines share an instance. The single-connection pool keeps the
// engine's one-writer constraint from surfacing as SQLITE_BUSY.
package store
