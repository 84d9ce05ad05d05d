// Package event provides the lifecycle notification side-channel for the
// record store. Every notable state transition emits an Event through a
// per-instance Notifier; callers may override the handler for any event
// kind. Handlers are observation only and never influence operation
// outcomes or control flow.
package event

import "log/slog"

// Kind identifies a lifecycle event.
type Kind string

const (
	// Connected fires when the store's session is established.
	Connected Kind = "CONNECTED"
	// TableReady fires once the managed table exists.
	TableReady Kind = "TABLE_READY"
	// RecordUpserted fires after an insert-or-replace completes.
	RecordUpserted Kind = "RECORD_UPSERTED"
	// RecordModified fires after an update-only write completes.
	RecordModified Kind = "RECORD_MODIFIED"
	// RecordDeleted fires when a delete matched a row.
	RecordDeleted Kind = "RECORD_DELETED"
	// RecordNotFound fires when modify or delete matched nothing.
	// Event.Op carries the originating operation name.
	RecordNotFound Kind = "RECORD_NOT_FOUND"
	// TxBegan, TxCommitted, TxRolledBack track transaction boundaries.
	TxBegan       Kind = "TX_BEGAN"
	TxCommitted   Kind = "TX_COMMITTED"
	TxRolledBack  Kind = "TX_ROLLED_BACK"
	TableDropped  Kind = "TABLE_DROPPED"
	TableCleared  Kind = "TABLE_CLEARED"
	ColumnAdded   Kind = "COLUMN_ADDED"
	Exported      Kind = "EXPORTED"
	Closed        Kind = "CLOSED"
	StoreDeleted  Kind = "STORE_DELETED"
	// StoreError fires for reported failures: schema defects, validation
	// rejections, engine errors. The same failure is also returned to the
	// caller; the event is the observable copy, never the only copy.
	StoreError Kind = "STORE_ERROR"
)

// Event carries the context of one lifecycle transition. Fields are filled
// as applicable to the kind; unused fields stay zero.
type Event struct {
	Kind   Kind
	Table  string
	Op     string // originating operation, set for RecordNotFound and StoreError
	Key    any    // primary-key value, for record-level events
	Column string // for ColumnAdded
	Detail string // free text: file path, statement fragment, message
	Err    error  // for StoreError
}

// Handler observes a single event.
type Handler func(Event)

// Notifier dispatches events to per-kind handlers, falling back to a
// default slog-backed handler for kinds without an override.
//
// A Notifier belongs to one store instance and is not safe for concurrent
// registration; register handlers before handing the notifier to the store.
type Notifier struct {
	handlers map[Kind]Handler
	fallback Handler
}

// NewNotifier returns a Notifier whose every kind logs through slog.
func NewNotifier() *Notifier {
	return &Notifier{
		handlers: make(map[Kind]Handler),
		fallback: logHandler,
	}
}

// On overrides the handler for one event kind. A nil handler restores the
// default.
func (n *Notifier) On(kind Kind, h Handler) {
	if h == nil {
		delete(n.handlers, kind)
		return
	}
	n.handlers[kind] = h
}

// Emit dispatches an event to its handler. A nil Notifier is inert, so
// components may emit unconditionally.
func (n *Notifier) Emit(e Event) {
	if n == nil {
		return
	}
	if h, ok := n.handlers[e.Kind]; ok {
		h(e)
		return
	}
	n.fallback(e)
}

// logHandler is the default behavior for every kind: structured logging,
// errors at error level, everything else at info.
func logHandler(e Event) {
	attrs := []any{"table", e.Table}
	if e.Op != "" {
		attrs = append(attrs, "op", e.Op)
	}
	if e.Key != nil {
		attrs = append(attrs, "key", e.Key)
	}
	if e.Column != "" {
		attrs = append(attrs, "column", e.Column)
	}
	if e.Detail != "" {
		attrs = append(attrs, "detail", e.Detail)
	}
	if e.Err != nil {
		attrs = append(attrs, "err", e.Err)
		slog.Error(string(e.Kind), attrs...)
		return
	}
	slog.Info(string(e.Kind), attrs...)
}
