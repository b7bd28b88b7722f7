// Package clipboard writes text to the system clipboard.
//
// golang.design/x/clipboard is tried first. When it cannot initialize (no
// display, or a build without cgo) writes fall back to atotto/clipboard,
// which shells out to pbcopy, xclip, xsel or wl-copy.
package clipboard

import (
	"fmt"
	"sync"

	atotto "github.com/atotto/clipboard"
	"golang.design/x/clipboard"

	"github.com/zhubert/tally/internal/logger"
)

var (
	mu          sync.Mutex
	initialized bool
	native      bool

	nativeInit  = clipboard.Init
	nativeWrite = func(text string) { clipboard.Write(clipboard.FmtText, []byte(text)) }
	nativeRead  = func() string { return string(clipboard.Read(clipboard.FmtText)) }

	fallbackWrite = atotto.WriteAll
	fallbackRead  = atotto.ReadAll
)

// Init picks a clipboard backend. Safe to call multiple times.
func Init() {
	mu.Lock()
	defer mu.Unlock()
	initLocked()
}

func initLocked() {
	if initialized {
		return
	}
	log := logger.WithComponent("clipboard")
	if err := nativeInit(); err != nil {
		log.Debug("native clipboard unavailable, using command fallback", "error", err)
		native = false
	} else {
		native = true
	}
	initialized = true
}

// WriteText replaces the clipboard contents with text.
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()
	initLocked()

	if native {
		nativeWrite(text)
		logger.WithComponent("clipboard").Debug("wrote text", "bytes", len(text))
		return nil
	}
	if fallbackWrite == nil || atotto.Unsupported {
		return fmt.Errorf("no clipboard available")
	}
	if err := fallbackWrite(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// ReadText returns the clipboard's text contents.
func ReadText() (string, error) {
	mu.Lock()
	defer mu.Unlock()
	initLocked()

	if native {
		return nativeRead(), nil
	}
	if atotto.Unsupported {
		return "", fmt.Errorf("no clipboard available")
	}
	return fallbackRead()
}

// reset forgets the chosen backend. Used by tests.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	initialized = false
	native = false
}
