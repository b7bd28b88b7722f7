package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// setupTestLogger points the logger at a temp file and resets it afterwards.
func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()

	logPath := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	t.Cleanup(Reset)
	return logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		write     func(string, ...interface{})
		wantInLog bool
	}{
		{"debug hidden at info", false, Debug, false},
		{"debug shown at debug", true, Debug, true},
		{"info shown", false, Info, true},
		{"warn shown", false, Warn, true},
		{"error shown", false, Error, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logPath := setupTestLogger(t)
			SetDebug(tt.debug)

			marker := "marker-" + strings.ReplaceAll(tt.name, " ", "-")
			tt.write("%s %d", marker, 7)

			got := strings.Contains(readLog(t, logPath), marker+" 7")
			if got != tt.wantInLog {
				t.Errorf("message in log = %v, want %v", got, tt.wantInLog)
			}
		})
	}
}

func TestInit_SecondCallIsNoop(t *testing.T) {
	first := setupTestLogger(t)

	second := filepath.Join(t.TempDir(), "other.log")
	if err := Init(second); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if Path() != first {
		t.Errorf("Path() = %q, want %q", Path(), first)
	}
	if _, err := os.Stat(second); !os.IsNotExist(err) {
		t.Error("second Init should not create a file")
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	defer Reset()

	err := Init(filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	if err == nil {
		t.Error("Init() should fail for a path in a missing directory")
	}
}

func TestWithComponent(t *testing.T) {
	logPath := setupTestLogger(t)

	WithComponent("store").Warn("snapshot unreadable", "key", "spreadsheet_sheets_data")

	content := readLog(t, logPath)
	for _, want := range []string{"component=store", "snapshot unreadable", "key=spreadsheet_sheets_data"} {
		if !strings.Contains(content, want) {
			t.Errorf("log missing %q:\n%s", want, content)
		}
	}
}

func TestWithSheet(t *testing.T) {
	logPath := setupTestLogger(t)

	WithSheet("all-orders").Info("cell committed", "row", 3)

	content := readLog(t, logPath)
	if !strings.Contains(content, "sheet=all-orders") {
		t.Errorf("log missing sheet attribute:\n%s", content)
	}
}

func TestReset(t *testing.T) {
	dir := t.TempDir()
	log1 := filepath.Join(dir, "log1.log")
	log2 := filepath.Join(dir, "log2.log")

	Reset()
	if err := Init(log1); err != nil {
		t.Fatalf("Init(log1) error = %v", err)
	}
	Info("message to log1")

	Reset()
	if err := Init(log2); err != nil {
		t.Fatalf("Init(log2) error = %v", err)
	}
	Info("message to log2")
	Reset()

	c1 := readLog(t, log1)
	c2 := readLog(t, log2)
	if !strings.Contains(c1, "message to log1") || strings.Contains(c1, "message to log2") {
		t.Errorf("log1 content unexpected:\n%s", c1)
	}
	if !strings.Contains(c2, "message to log2") || strings.Contains(c2, "message to log1") {
		t.Errorf("log2 content unexpected:\n%s", c2)
	}
}

func TestConcurrentLogging(t *testing.T) {
	setupTestLogger(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				Info("concurrent %d-%d", n, j)
				WithComponent("worker").Debug("tick", "n", n)
			}
		}(i)
	}
	wg.Wait()
}

func TestClose(t *testing.T) {
	setupTestLogger(t)
	Close()
	Close()
}
