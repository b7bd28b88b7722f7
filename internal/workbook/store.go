package workbook

import (
	"encoding/json"

	"github.com/zhubert/tally/internal/errors"
	"github.com/zhubert/tally/internal/logger"
	"github.com/zhubert/tally/internal/sheet"
	"github.com/zhubert/tally/internal/storage"
)

// Keys of the persisted snapshot.
const (
	SheetsKey      = "spreadsheet_sheets_data"
	ActiveSheetKey = "spreadsheet_active_sheet"
)

// LoadStatus says where LoadSheets got its sheets from.
type LoadStatus int

const (
	LoadedFromStore LoadStatus = iota
	DefaultMissing
	DefaultCorrupt
	DefaultReadError
)

func (s LoadStatus) String() string {
	switch s {
	case LoadedFromStore:
		return "loaded from store"
	case DefaultMissing:
		return "no snapshot, using defaults"
	case DefaultCorrupt:
		return "snapshot corrupt, using defaults"
	case DefaultReadError:
		return "snapshot unreadable, using defaults"
	default:
		return "unknown"
	}
}

// FromStore reports whether the sheets came from the snapshot.
func (s LoadStatus) FromStore() bool {
	return s == LoadedFromStore
}

// Store persists whole-workbook snapshots in a key-value store. Reads never
// fail outward: anything unusable is logged and replaced by the built-in
// sheets.
type Store struct {
	kv storage.Store
}

// NewStore wraps kv.
func NewStore(kv storage.Store) *Store {
	return &Store{kv: kv}
}

// LoadSheets returns the stored sheets, or the built-in defaults when the
// snapshot is missing, empty, unreadable or corrupt. Loaded sheets are
// normalized so every row has a value for every extra column.
func (st *Store) LoadSheets() ([]sheet.Sheet, LoadStatus) {
	log := logger.WithComponent("store")

	raw, ok, err := st.kv.Get(SheetsKey)
	if err != nil {
		log.Error("failed to read sheets", "error", errors.StorageReadFailed(SheetsKey, err))
		return sheet.Defaults(), DefaultReadError
	}
	if !ok || raw == "" {
		return sheet.Defaults(), DefaultMissing
	}

	var sheets []sheet.Sheet
	if err := json.Unmarshal([]byte(raw), &sheets); err != nil {
		log.Error("failed to decode sheets", "error", errors.SnapshotCorrupt(SheetsKey, err))
		return sheet.Defaults(), DefaultCorrupt
	}
	if len(sheets) == 0 {
		return sheet.Defaults(), DefaultMissing
	}
	for i, s := range sheets {
		if s.ID == "" {
			log.Error("stored sheet has no id", "position", i)
			return sheet.Defaults(), DefaultCorrupt
		}
		sheets[i] = s.Normalize()
	}
	log.Debug("sheets loaded", "count", len(sheets))
	return sheets, LoadedFromStore
}

// SaveSheets overwrites the snapshot with the whole list.
func (st *Store) SaveSheets(sheets []sheet.Sheet) error {
	if sheets == nil {
		sheets = []sheet.Sheet{}
	}
	data, err := json.Marshal(sheets)
	if err != nil {
		return errors.StorageWriteFailed(SheetsKey, err)
	}
	if err := st.kv.Set(SheetsKey, string(data)); err != nil {
		err = errors.StorageWriteFailed(SheetsKey, err)
		logger.WithComponent("store").Error("failed to save sheets", "error", err)
		return err
	}
	return nil
}

// LoadActiveSheetID returns the stored active sheet id, or the default id
// when none is stored or the store cannot be read.
func (st *Store) LoadActiveSheetID() string {
	id, ok, err := st.kv.Get(ActiveSheetKey)
	if err != nil {
		logger.WithComponent("store").Error("failed to read active sheet", "error", errors.StorageReadFailed(ActiveSheetKey, err))
		return sheet.DefaultActiveID
	}
	if !ok || id == "" {
		return sheet.DefaultActiveID
	}
	return id
}

// SaveActiveSheetID stores the active sheet id.
func (st *Store) SaveActiveSheetID(id string) error {
	if err := st.kv.Set(ActiveSheetKey, id); err != nil {
		err = errors.StorageWriteFailed(ActiveSheetKey, err)
		logger.WithComponent("store").Error("failed to save active sheet", "error", err)
		return err
	}
	return nil
}

// Load reads the whole workbook.
func (st *Store) Load() (Workbook, LoadStatus) {
	sheets, status := st.LoadSheets()
	return New(sheets, st.LoadActiveSheetID()), status
}

// Save writes the sheets and the active id. Both writes are attempted; the
// first error is returned.
func (st *Store) Save(w Workbook) error {
	err := st.SaveSheets(w.Sheets())
	if aerr := st.SaveActiveSheetID(w.ActiveID()); err == nil {
		err = aerr
	}
	return err
}

// Clear removes the snapshot so the next load starts from the defaults.
func (st *Store) Clear() error {
	for _, key := range []string{SheetsKey, ActiveSheetKey} {
		if err := st.kv.Delete(key); err != nil {
			return errors.StorageWriteFailed(key, err)
		}
	}
	return nil
}
