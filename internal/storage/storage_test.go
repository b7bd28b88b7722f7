package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/zhubert/tally/internal/config"
)

// backends returns a fresh instance of every backend for contract tests.
func backends(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	sqliteStore, err := OpenSQLite(filepath.Join(dir, "kv.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]Store{
		"file":   NewFileStore(filepath.Join(dir, "kv.json")),
		"sqlite": sqliteStore,
		"memory": NewMemoryStore(),
	}
}

func TestStore_Contract(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := s.Get("missing"); err != nil || ok {
				t.Fatalf("Get(missing) = ok %v, err %v; want absent", ok, err)
			}

			values := []string{"", "plain", `with "quotes", commas`, "line\nbreak", "₹ 1,25,000"}
			for _, v := range values {
				if err := s.Set("k", v); err != nil {
					t.Fatalf("Set() error = %v", err)
				}
				got, ok, err := s.Get("k")
				if err != nil || !ok {
					t.Fatalf("Get() ok %v, err %v", ok, err)
				}
				if got != v {
					t.Errorf("Get() = %q, want %q", got, v)
				}
			}

			if err := s.Set("other", "x"); err != nil {
				t.Fatalf("Set(other) error = %v", err)
			}
			if err := s.Delete("k"); err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if _, ok, _ := s.Get("k"); ok {
				t.Error("key should be gone after Delete")
			}
			if got, ok, _ := s.Get("other"); !ok || got != "x" {
				t.Errorf("Delete removed an unrelated key: %q %v", got, ok)
			}
			if err := s.Delete("never-set"); err != nil {
				t.Errorf("Delete(never-set) error = %v", err)
			}
		})
	}
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "kv.json")

	if err := NewFileStore(path).Set("spreadsheet_active_sheet", "pending"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok, err := NewFileStore(path).Get("spreadsheet_active_sheet")
	if err != nil || !ok || got != "pending" {
		t.Errorf("Get() = %q, %v, %v; want pending", got, ok, err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file should be renamed away")
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := NewFileStore(path).Get("k"); err == nil {
		t.Error("Get() should fail on a corrupt file")
	}
}

func TestSQLiteStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")

	s1, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	if err := s1.Set("spreadsheet_sheets_data", "[]"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	s1.Close()

	s2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer s2.Close()
	got, ok, err := s2.Get("spreadsheet_sheets_data")
	if err != nil || !ok || got != "[]" {
		t.Errorf("Get() = %q, %v, %v", got, ok, err)
	}
}

func TestMemoryStore_Fail(t *testing.T) {
	boom := errors.New("quota exceeded")
	m := NewMemoryStore()
	m.Fail = boom

	if _, _, err := m.Get("k"); !errors.Is(err, boom) {
		t.Errorf("Get() error = %v, want %v", err, boom)
	}
	if err := m.Set("k", "v"); !errors.Is(err, boom) {
		t.Errorf("Set() error = %v, want %v", err, boom)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		backend string
		wantErr bool
	}{
		{config.BackendFile, false},
		{config.BackendSQLite, false},
		{config.BackendMemory, false},
		{"", false},
		{"redis", true},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			s, err := Open(tt.backend, filepath.Join(dir, "store-"+tt.backend))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Open() error = %v, wantErr %v", err, tt.wantErr)
			}
			if s != nil {
				s.Close()
			}
		})
	}
}
