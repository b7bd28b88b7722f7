package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zhubert/tally/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}

// writeTestConfig points --config at a file-backed config inside a temp dir
// and restores the flag afterwards.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	data := `{"storage_backend": "file", "storage_path": "` + filepath.Join(dir, "workbook.json") + `", "export_dir": "` + dir + `"}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	orig := configPath
	configPath = path
	t.Cleanup(func() { configPath = orig })
	return dir
}
