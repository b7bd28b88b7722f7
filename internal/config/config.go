package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/zhubert/tally/internal/errors"
)

// Storage backends accepted in config.json.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// DefaultShareLink is copied by the share popover unless overridden.
const DefaultShareLink = "https://sheets.example.com/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit?usp=sharing"

// Config holds the application configuration
type Config struct {
	StorageBackend       string `json:"storage_backend,omitempty"`       // "file", "sqlite" or "memory"
	StoragePath          string `json:"storage_path,omitempty"`          // Snapshot location; derived from the backend when empty
	ExportDir            string `json:"export_dir,omitempty"`            // Where exports are written; working directory when empty
	Theme                string `json:"theme,omitempty"`                 // UI theme name (e.g., "paper", "nord")
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notification after an export
	ShareLink            string `json:"share_link,omitempty"`            // Link copied by the share popover

	mu       sync.RWMutex
	filePath string
}

// Dir returns ~/.tally, where the config and the default snapshot live.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".tally"), nil
}

// DefaultPath returns ~/.tally/config.json.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from its default location, or returns defaults if
// the file does not exist yet.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields defaults bound to
// that path so a later Save creates it.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.applyDefaults()
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills unset fields. Only called from LoadFrom before the
// Config is shared.
func (c *Config) applyDefaults() {
	if c.StorageBackend == "" {
		c.StorageBackend = BackendFile
	}
	if c.ShareLink == "" {
		c.ShareLink = DefaultShareLink
	}
}

// Validate checks that the config is usable.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch c.StorageBackend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return errors.ConfigInvalid(fmt.Sprintf("unknown storage backend %q", c.StorageBackend))
	}
	if c.ExportDir != "" {
		if info, err := os.Stat(c.ExportDir); err == nil && !info.IsDir() {
			return errors.ConfigInvalid(fmt.Sprintf("export dir %s is not a directory", c.ExportDir))
		}
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// Path returns the file this config was loaded from.
func (c *Config) Path() string {
	return c.filePath
}

// GetStorageBackend returns the configured backend name.
func (c *Config) GetStorageBackend() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.StorageBackend
}

// GetStoragePath returns the snapshot location, defaulting to a file next to
// the config named after the backend.
func (c *Config) GetStoragePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.StoragePath != "" {
		return c.StoragePath
	}
	name := "workbook.json"
	if c.StorageBackend == BackendSQLite {
		name = "workbook.db"
	}
	return filepath.Join(filepath.Dir(c.filePath), name)
}

// SetStorage switches backend and path.
func (c *Config) SetStorage(backend, path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.StorageBackend = backend
	c.StoragePath = path
}

// GetExportDir returns the export directory, "." when unset.
func (c *Config) GetExportDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.ExportDir == "" {
		return "."
	}
	return c.ExportDir
}

// SetExportDir sets the export directory.
func (c *Config) SetExportDir(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ExportDir = dir
}

// GetTheme returns the configured theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled reports whether export notifications are on.
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled toggles export notifications.
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetShareLink returns the link copied by the share popover.
func (c *Config) GetShareLink() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.ShareLink == "" {
		return DefaultShareLink
	}
	return c.ShareLink
}
