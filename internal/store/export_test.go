package store

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/roach88/dynstore/internal/event"
	"github.com/roach88/dynstore/internal/schema"
)

func TestExportCSV_WritesHeaderAndRows(t *testing.T) {
	rn := newRecordingNotifier()
	s := createTestStore(t, WithNotifier(rn.n))
	ctx := context.Background()

	seed := []schema.Record{
		{"id": "E1", "name": "alpha", "count": int64(1)},
		{"id": "E2", "name": "beta"},
	}
	if err := s.UpsertBatch(ctx, seed); err != nil {
		t.Fatalf("UpsertBatch() failed: %v", err)
	}

	out := filepath.Join(t.TempDir(), "export.csv")
	if err := s.ExportCSV(ctx, out); err != nil {
		t.Fatalf("ExportCSV() failed: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()

	lines, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("export has %d lines, want header + 2 rows", len(lines))
	}

	wantHeader := []string{"id", "name", "value", "count", "payload"}
	for i, col := range wantHeader {
		if lines[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, lines[0][i], col)
		}
	}

	// NULL columns render as empty fields.
	for _, line := range lines[1:] {
		if line[0] == "E2" && line[3] != "" {
			t.Errorf("E2 count = %q, want empty for NULL", line[3])
		}
	}

	e, ok := rn.last(event.Exported)
	if !ok {
		t.Fatal("no Exported event fired")
	}
	if e.Detail != out {
		t.Errorf("event detail = %q, want %q", e.Detail, out)
	}
}

func TestExportCSV_EmptyTable(t *testing.T) {
	s := createTestStore(t)

	out := filepath.Join(t.TempDir(), "empty.csv")
	if err := s.ExportCSV(context.Background(), out); err != nil {
		t.Fatalf("ExportCSV() failed: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()

	lines, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if len(lines) != 1 {
		t.Errorf("export has %d lines, want header only", len(lines))
	}
}

func TestExportCSV_BadPathIsIOFailure(t *testing.T) {
	s := createTestStore(t)

	err := s.ExportCSV(context.Background(), "/nonexistent/dir/out.csv")
	if err == nil {
		t.Fatal("expected IO failure, got nil")
	}
	if !codeIs(err, ErrCodeIO) {
		t.Errorf("expected IO_FAILURE, got %v", err)
	}
}
