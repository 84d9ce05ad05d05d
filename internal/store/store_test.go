package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_CreatesDatabaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path, testDescriptor(t))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpen_AppendsExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare")

	s, err := Open(path, testDescriptor(t))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if s.Path() != path+".db" {
		t.Errorf("Path() = %q, want %q", s.Path(), path+".db")
	}
	if !Exists(path) {
		t.Error("Exists() = false for freshly created database")
	}
}

func TestOpen_CreatesTable(t *testing.T) {
	s := createTestStore(t)

	var name string
	err := s.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name=?", "items",
	).Scan(&name)
	if err != nil {
		t.Fatalf("table not created: %v", err)
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 3; i++ {
		s, err := Open(path, testDescriptor(t))
		if err != nil {
			t.Fatalf("Open() iteration %d failed: %v", i, err)
		}
		s.Close()
	}
}

func TestOpen_NilDescriptor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	_, err := Open(path, nil)
	if err == nil {
		t.Fatal("expected error for nil descriptor, got nil")
	}
	if !IsSchemaInvalid(err) {
		t.Errorf("expected SCHEMA_INVALID, got %v", err)
	}
}

func TestOpen_InvalidPath(t *testing.T) {
	_, err := Open("/nonexistent/dir/test.db", testDescriptor(t))
	if err == nil {
		t.Fatal("expected error for invalid path, got nil")
	}
	if !IsEngineError(err) {
		t.Errorf("expected ENGINE_ERROR, got %v", err)
	}
}

func TestClose_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path, testDescriptor(t))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if err := s.Close(); err != nil {
		t.Errorf("first Close() failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() should be a no-op, got: %v", err)
	}
}

func TestDestroy_RemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path, testDescriptor(t))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if err := s.Destroy(); err != nil {
		t.Fatalf("Destroy() failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("database file still exists after Destroy()")
	}
}

func TestDestroy_MissingFileIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path, testDescriptor(t))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := s.Destroy(); err != nil {
		t.Fatalf("first Destroy() failed: %v", err)
	}
	if err := s.Destroy(); err != nil {
		t.Errorf("Destroy() with no file should be a no-op, got: %v", err)
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"data", "data.db"},
		{"data.db", "data.db"},
		{"dir/data", "dir/data.db"},
	}
	for _, tt := range tests {
		if got := NormalizePath(tt.in); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDescriptor_Accessor(t *testing.T) {
	s := createTestStore(t)
	if s.Descriptor().Table() != "items" {
		t.Errorf("Descriptor().Table() = %q, want %q", s.Descriptor().Table(), "items")
	}
	if got := len(s.Descriptor().Columns()); got != len(testColumns()) {
		t.Errorf("Columns() length = %d, want %d", got, len(testColumns()))
	}
}
