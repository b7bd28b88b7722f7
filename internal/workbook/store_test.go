package workbook

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/zhubert/tally/internal/sheet"
	"github.com/zhubert/tally/internal/storage"
)

func TestStore_LoadSheets(t *testing.T) {
	stored, _ := json.Marshal([]sheet.Sheet{sheet.New(1)})

	tests := []struct {
		name       string
		seed       func(*storage.MemoryStore)
		wantStatus LoadStatus
		wantFirst  string
	}{
		{"missing", func(*storage.MemoryStore) {}, DefaultMissing, "all-orders"},
		{"empty string", func(m *storage.MemoryStore) { m.Set(SheetsKey, "") }, DefaultMissing, "all-orders"},
		{"empty list", func(m *storage.MemoryStore) { m.Set(SheetsKey, "[]") }, DefaultMissing, "all-orders"},
		{"corrupt json", func(m *storage.MemoryStore) { m.Set(SheetsKey, "[{") }, DefaultCorrupt, "all-orders"},
		{"wrong shape", func(m *storage.MemoryStore) { m.Set(SheetsKey, `{"id":"x"}`) }, DefaultCorrupt, "all-orders"},
		{"non-string cell", func(m *storage.MemoryStore) {
			m.Set(SheetsKey, `[{"id":"x","name":"X","title":"X","data":[{"job":1}]}]`)
		}, DefaultCorrupt, "all-orders"},
		{"missing id", func(m *storage.MemoryStore) { m.Set(SheetsKey, `[{"name":"X"}]`) }, DefaultCorrupt, "all-orders"},
		{"read error", func(m *storage.MemoryStore) { m.Fail = errors.New("disk gone") }, DefaultReadError, "all-orders"},
		{"stored", func(m *storage.MemoryStore) { m.Set(SheetsKey, string(stored)) }, LoadedFromStore, "sheet-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := storage.NewMemoryStore()
			tt.seed(kv)

			sheets, status := NewStore(kv).LoadSheets()
			if status != tt.wantStatus {
				t.Errorf("status = %v, want %v", status, tt.wantStatus)
			}
			if len(sheets) == 0 || sheets[0].ID != tt.wantFirst {
				t.Errorf("first sheet = %v, want %q", sheets, tt.wantFirst)
			}
		})
	}
}

func TestStore_LoadSheets_Normalizes(t *testing.T) {
	kv := storage.NewMemoryStore()
	kv.Set(SheetsKey, `[{"id":"x","name":"X","title":"X",
		"data":[{"job":"a"},{"job":"b","extra_1":"kept"}],
		"extraColumns":[{"id":"extra_1","title":"Title 6"}],
		"dynamicHeaders":[{"id":"h","name":"H","color":"#D2E0D4","columnSpans":[6]}]}]`)

	sheets, status := NewStore(kv).LoadSheets()
	if status != LoadedFromStore {
		t.Fatalf("status = %v", status)
	}
	s := sheets[0]
	if v, ok := s.Rows[0].Get("extra_1"); !ok || v != "" {
		t.Errorf("row 0 extra_1 = %q, %v; want back-filled", v, ok)
	}
	if s.Rows[1].Cell("extra_1") != "kept" {
		t.Error("existing value lost")
	}
	if idx, ok := s.ResolveColumnRef(s.HeaderGroups[0].ColumnSpans[0]); !ok || idx != 6 {
		t.Errorf("numeric span resolved to %d, %v", idx, ok)
	}
}

func TestStore_RoundTrip(t *testing.T) {
	kv := storage.NewMemoryStore()
	st := NewStore(kv)

	w := New(sheet.Defaults(), "")
	w, key := w.AddExtraColumn()
	values := []string{"", "a,b", `he said "no"`, "x\ny"}
	for i, v := range values {
		var ok bool
		w, ok = w.SetCell(10+i, key, v)
		if !ok {
			t.Fatal("SetCell rejected")
		}
	}
	w, _ = w.SetActive("reviewed")

	if err := st.Save(w); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, status := st.Load()
	if status != LoadedFromStore {
		t.Fatalf("status = %v", status)
	}
	if loaded.ActiveID() != "reviewed" {
		t.Errorf("ActiveID() = %q", loaded.ActiveID())
	}
	all, _ := loaded.Sheet("all-orders")
	for i, v := range values {
		if got := all.Rows[10+i].Cell(key); got != v {
			t.Errorf("row %d = %q, want %q", 10+i, got, v)
		}
	}
}

func TestStore_ActiveSheetID(t *testing.T) {
	kv := storage.NewMemoryStore()
	st := NewStore(kv)

	if got := st.LoadActiveSheetID(); got != sheet.DefaultActiveID {
		t.Errorf("LoadActiveSheetID() = %q, want default", got)
	}
	if err := st.SaveActiveSheetID("pending"); err != nil {
		t.Fatal(err)
	}
	if got := st.LoadActiveSheetID(); got != "pending" {
		t.Errorf("LoadActiveSheetID() = %q", got)
	}

	kv.Fail = errors.New("locked")
	if got := st.LoadActiveSheetID(); got != sheet.DefaultActiveID {
		t.Errorf("LoadActiveSheetID() on error = %q, want default", got)
	}
	if err := st.SaveActiveSheetID("x"); err == nil {
		t.Error("SaveActiveSheetID() should report a write failure")
	}
}

func TestStore_SaveFailure(t *testing.T) {
	kv := storage.NewMemoryStore()
	kv.Fail = errors.New("quota exceeded")

	if err := NewStore(kv).SaveSheets(sheet.Defaults()); err == nil {
		t.Error("SaveSheets() should return the write error")
	}
}

func TestStore_Clear(t *testing.T) {
	kv := storage.NewMemoryStore()
	st := NewStore(kv)
	if err := st.Save(New([]sheet.Sheet{sheet.New(1)}, "sheet-1")); err != nil {
		t.Fatal(err)
	}

	if err := st.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, status := st.LoadSheets(); status != DefaultMissing {
		t.Errorf("status after Clear = %v", status)
	}
}
