package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/tally/internal/clipboard"
	"github.com/zhubert/tally/internal/export"
	"github.com/zhubert/tally/internal/notification"
	"github.com/zhubert/tally/internal/sheet"
	"github.com/zhubert/tally/internal/ui"
)

// ExportDoneMsg reports the result of writing an export file.
type ExportDoneMsg struct {
	SheetName string
	Format    export.Format
	Path      string
	Err       error
}

// ClipboardWrittenMsg reports the result of a clipboard write.
type ClipboardWrittenMsg struct {
	What string // "link" or "title"
	Err  error
}

// CopiedResetMsg clears the share popover's "Copied!" state.
type CopiedResetMsg struct{}

// ScrollTarget names what a deferred scroll moves.
type ScrollTarget int

const (
	ScrollGridEnd ScrollTarget = iota
	ScrollTabsEnd
)

// ScrollMsg scrolls after the view has picked up a new column or sheet.
type ScrollMsg struct {
	Target ScrollTarget
}

func exportCmd(dir string, s sheet.Sheet, f export.Format) tea.Cmd {
	return func() tea.Msg {
		path, err := export.WriteFile(dir, s, f)
		return ExportDoneMsg{SheetName: s.Name, Format: f, Path: path, Err: err}
	}
}

func notifyCmd(sheetName, path string) tea.Cmd {
	return func() tea.Msg {
		// Send logs its own failures
		_ = notification.ExportCompleted(sheetName, path)
		return nil
	}
}

func copyCmd(what, text string) tea.Cmd {
	return func() tea.Msg {
		return ClipboardWrittenMsg{What: what, Err: clipboard.WriteText(text)}
	}
}

func copiedResetCmd() tea.Cmd {
	return tea.Tick(ui.CopiedResetDelay, func(time.Time) tea.Msg {
		return CopiedResetMsg{}
	})
}

func scrollCmd(target ScrollTarget) tea.Cmd {
	return func() tea.Msg {
		return ScrollMsg{Target: target}
	}
}
