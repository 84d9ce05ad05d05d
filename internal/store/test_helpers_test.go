package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/dynstore/internal/event"
	"github.com/roach88/dynstore/internal/schema"
)

// testColumns is the schema used across the package tests: a TEXT primary
// key plus one column per type family.
func testColumns() []schema.Column {
	return []schema.Column{
		{Name: "id", Type: schema.Text},
		{Name: "name", Type: schema.Text},
		{Name: "value", Type: schema.Real},
		{Name: "count", Type: schema.Integer},
		{Name: "payload", Type: schema.Blob},
	}
}

func testDescriptor(t *testing.T) *schema.Descriptor {
	t.Helper()
	d, err := schema.New("items", "id", testColumns())
	if err != nil {
		t.Fatalf("schema.New() failed: %v", err)
	}
	return d
}

// createTestStore opens a store on a throwaway database file.
func createTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, testDescriptor(t), opts...)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// recordingNotifier captures every emitted event, silencing the defaults.
type recordingNotifier struct {
	n      *event.Notifier
	events []event.Event
}

func newRecordingNotifier() *recordingNotifier {
	r := &recordingNotifier{n: event.NewNotifier()}
	kinds := []event.Kind{
		event.Connected, event.TableReady, event.RecordUpserted,
		event.RecordModified, event.RecordDeleted, event.RecordNotFound,
		event.TxBegan, event.TxCommitted, event.TxRolledBack,
		event.TableDropped, event.TableCleared, event.ColumnAdded,
		event.Exported, event.Closed, event.StoreDeleted, event.StoreError,
	}
	for _, k := range kinds {
		kind := k
		r.n.On(kind, func(e event.Event) { r.events = append(r.events, e) })
	}
	return r
}

// last returns the most recent event of the given kind, if any.
func (r *recordingNotifier) last(kind event.Kind) (event.Event, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Kind == kind {
			return r.events[i], true
		}
	}
	return event.Event{}, false
}

func (r *recordingNotifier) count(kind event.Kind) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
