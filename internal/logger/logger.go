// Package logger writes tally's diagnostic log. The TUI owns the terminal, so
// everything goes to a file under /tmp instead of stderr.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DefaultLogPath is where the TUI and the CLI commands log unless Init is
// called with another path.
const DefaultLogPath = "/tmp/tally-debug.log"

// logGlob matches every log file tally may have written.
const logGlob = "/tmp/tally-*.log"

var (
	mu       sync.Mutex
	base     *slog.Logger
	levelVar = new(slog.LevelVar)
	level    = LevelInfo
	logFile  *os.File
	logPath  string
)

// SetLevel sets the minimum level written to the log.
func SetLevel(l LogLevel) {
	mu.Lock()
	defer mu.Unlock()
	level = l
	levelVar.Set(l.slogLevel())
}

// SetDebug toggles debug logging.
func SetDebug(enabled bool) {
	if enabled {
		SetLevel(LevelDebug)
		return
	}
	SetLevel(LevelInfo)
}

// Init opens path for appending and routes all logging there. Calling Init
// again without Reset is a no-op.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if base != nil {
		return nil
	}
	return open(path)
}

// open must be called with mu held.
func open(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logFile = f
	logPath = path
	levelVar.Set(level.slogLevel())
	base = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	base.Info("logger initialized", "path", path)
	return nil
}

// current returns the base logger, opening the default file on first use.
// Must be called with mu held.
func current() *slog.Logger {
	if base == nil {
		if err := open(DefaultLogPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			return nil
		}
	}
	return base
}

func logf(lvl slog.Level, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	l := current()
	if l == nil || !l.Enabled(context.Background(), lvl) {
		return
	}
	l.Log(context.Background(), lvl, fmt.Sprintf(format, args...))
}

// Debug writes a printf-style debug message.
func Debug(format string, args ...interface{}) { logf(slog.LevelDebug, format, args...) }

// Info writes a printf-style info message.
func Info(format string, args ...interface{}) { logf(slog.LevelInfo, format, args...) }

// Warn writes a printf-style warning.
func Warn(format string, args ...interface{}) { logf(slog.LevelWarn, format, args...) }

// Error writes a printf-style error message.
func Error(format string, args ...interface{}) { logf(slog.LevelError, format, args...) }

// WithComponent returns a structured logger tagged with the component name.
//
//	log := logger.WithComponent("store")
//	log.Warn("snapshot unreadable", "key", key, "error", err)
func WithComponent(component string) *slog.Logger {
	return with(slog.String("component", component))
}

// WithSheet returns a structured logger tagged with a sheet id.
func WithSheet(sheetID string) *slog.Logger {
	return with(slog.String("sheet", sheetID))
}

func with(attr slog.Attr) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	l := current()
	if l == nil {
		return slog.Default()
	}
	return l.With(attr)
}

// Path returns the file currently being written, or "" before first use.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Close closes the log file. Subsequent logging reopens the default path.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	base = nil
}

// Reset restores the package to its initial state. Used by tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	base = nil
	logPath = ""
	level = LevelInfo
	levelVar = new(slog.LevelVar)
}

// ClearLogs removes tally's log files from /tmp and reports how many were
// deleted.
func ClearLogs() (int, error) {
	paths, err := filepath.Glob(logGlob)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, p := range paths {
		if err := os.Remove(p); err == nil {
			count++
		} else if !os.IsNotExist(err) {
			return count, err
		}
	}
	return count, nil
}
