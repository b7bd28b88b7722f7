// Package storage is the key-value string store the workbook snapshot lives
// in. Three backends share one interface: a JSON file, a SQLite database and
// an in-memory map.
package storage

import (
	"fmt"

	"github.com/zhubert/tally/internal/config"
	"github.com/zhubert/tally/internal/errors"
)

// Store reads and writes string values by key.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// Open returns the backend named by backend, rooted at path.
func Open(backend, path string) (Store, error) {
	switch backend {
	case config.BackendFile, "":
		return NewFileStore(path), nil
	case config.BackendSQLite:
		s, err := OpenSQLite(path)
		if err != nil {
			return nil, errors.StorageOpenFailed(path, err)
		}
		return s, nil
	case config.BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, errors.ConfigInvalid(fmt.Sprintf("unknown storage backend %q", backend))
	}
}

// OpenConfigured opens the store described by cfg.
func OpenConfigured(cfg *config.Config) (Store, error) {
	return Open(cfg.GetStorageBackend(), cfg.GetStoragePath())
}
