// Package app is tally's Bubble Tea model. It owns the workbook, feeds the
// active sheet to the grid, routes keys and mouse events through the cell
// state machine and saves a full snapshot after every change.
package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/tally/internal/cell"
	"github.com/zhubert/tally/internal/config"
	"github.com/zhubert/tally/internal/logger"
	"github.com/zhubert/tally/internal/sheet"
	"github.com/zhubert/tally/internal/ui"
	"github.com/zhubert/tally/internal/workbook"
)

// Model is the main application model
type Model struct {
	config  *config.Config
	store   *workbook.Store
	version string

	book    workbook.Workbook
	machine *cell.Machine

	header  *ui.Header
	toolbar *ui.Toolbar
	grid    *ui.Grid
	tabs    *ui.Tabs
	footer  *ui.Footer
	modal   *ui.Modal

	width  int
	height int

	// Double click detection
	lastClickAt  time.Time
	lastClickPos cell.Pos

	// Shown once the program starts
	startupNotice string
}

// New creates a model over the workbook held by store.
func New(cfg *config.Config, store *workbook.Store, version string) *Model {
	if err := ui.SetTheme(ui.ThemeName(cfg.GetTheme())); err != nil {
		logger.WithComponent("app").Warn("unknown theme, keeping default", "theme", cfg.GetTheme())
	}

	book, status := store.Load()
	logger.WithComponent("app").Info("workbook loaded", "status", status.String(), "sheets", book.Len(), "active", book.ActiveID())

	m := &Model{
		config:  cfg,
		store:   store,
		version: version,
		book:    book,
		machine: &cell.Machine{},
		header:  ui.NewHeader(),
		toolbar: ui.NewToolbar(),
		grid:    ui.NewGrid(),
		tabs:    ui.NewTabs(),
		footer:  ui.NewFooter(),
		modal:   ui.NewModal(),
	}
	m.grid.SetMachine(m.machine)

	switch status {
	case workbook.DefaultCorrupt:
		m.startupNotice = "Saved sheets were unreadable; started from the defaults"
	case workbook.DefaultReadError:
		m.startupNotice = "Could not read saved sheets; started from the defaults"
	}

	m.refresh()
	return m
}

// Init returns the startup command
func (m *Model) Init() tea.Cmd {
	if m.startupNotice != "" {
		return m.ShowFlashWarning(m.startupNotice)
	}
	return nil
}

// Workbook returns the current workbook.
func (m *Model) Workbook() workbook.Workbook {
	return m.book
}

// refresh pushes the active sheet into the components that draw it.
func (m *Model) refresh() {
	s := m.book.Active()
	m.grid.SetSheet(s)
	m.header.SetSheet(s.Name, s.Title)

	names := make([]string, 0, m.book.Len())
	for _, sh := range m.book.Sheets() {
		names = append(names, sh.Name)
	}
	m.tabs.SetTabs(names, m.book.ActiveIndex())
	m.toolbar.SetHiddenCount(len(m.grid.Hidden()))

	if p, ok := m.machine.Pos(); ok {
		if p.Row >= len(s.Rows) || !s.HasKey(p.Key) {
			m.machine.Reset()
			return
		}
		m.machine.Refresh(s.Rows[p.Row].Cell(p.Key))
	}
}

// target describes the cell at row r in column c of the active sheet.
func (m *Model) target(r int, c sheet.Column) cell.Target {
	s := m.book.Active()
	t := cell.Target{Pos: cell.Pos{Row: r, Key: c.Key}}
	if r >= 0 && r < len(s.Rows) {
		t.Value = s.Rows[r].Cell(c.Key)
	}
	if c.IsChoice() {
		t.Options = c.Options
	}
	return t
}

// apply stores a commit produced by the cell machine and saves.
func (m *Model) apply(out cell.Outcome) tea.Cmd {
	if out.Commit == nil {
		return nil
	}
	c := out.Commit
	book, ok := m.book.SetCell(c.Pos.Row, c.Pos.Key, c.Value)
	if !ok {
		logger.WithSheet(m.book.ActiveID()).Warn("commit dropped", "row", c.Pos.Row, "key", c.Pos.Key)
		return nil
	}
	logger.WithSheet(m.book.ActiveID()).Debug("cell committed", "row", c.Pos.Row, "key", c.Pos.Key)
	m.book = book
	m.refresh()
	return m.save()
}

// blur ends any edit in progress, committing free text.
func (m *Model) blur() tea.Cmd {
	return m.apply(m.machine.Blur())
}

// setBook replaces the workbook after a structural change and saves it.
func (m *Model) setBook(book workbook.Workbook) tea.Cmd {
	m.book = book
	m.refresh()
	return m.save()
}

// save writes the whole workbook. Failures leave the in-memory state as is
// and surface as a warning.
func (m *Model) save() tea.Cmd {
	if err := m.store.Save(m.book); err != nil {
		return m.flashStorageFailure("Changes could not be saved", err)
	}
	return nil
}

// switchSheet activates the sheet at tab position i.
func (m *Model) switchSheet(i int) tea.Cmd {
	if i < 0 || i >= m.book.Len() || i == m.book.ActiveIndex() {
		return nil
	}
	cmd := m.blur()
	m.machine.Reset()
	m.book = m.book.SetActiveIndex(i)
	m.refresh()
	if err := m.store.SaveActiveSheetID(m.book.ActiveID()); err != nil {
		return tea.Batch(cmd, m.flashStorageFailure("Active sheet could not be saved", err))
	}
	return cmd
}
