package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/tally/internal/cell"
	"github.com/zhubert/tally/internal/keys"
	"github.com/zhubert/tally/internal/sheet"
	"github.com/zhubert/tally/internal/ui"
	"github.com/zhubert/tally/internal/ui/modals"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case tea.PasteMsg:
		if m.modal.IsVisible() {
			return m.forwardToModal(msg)
		}
		m.machine.Insert(msg.Content)
		return m, nil

	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)

	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)

	case ui.FlashTickMsg:
		return m, m.handleFlashTick()

	case modals.HelpShortcutTriggeredMsg:
		return m.handleHelpShortcutTrigger(msg.Key)

	case ExportDoneMsg:
		return m.handleExportDone(msg)

	case ClipboardWrittenMsg:
		return m.handleClipboardWritten(msg)

	case CopiedResetMsg:
		if state, ok := m.modal.State.(*modals.ShareState); ok {
			state.SetCopied(false)
		}
		return m, nil

	case ScrollMsg:
		switch msg.Target {
		case ScrollGridEnd:
			m.grid.ScrollToEnd()
		case ScrollTabsEnd:
			m.tabs.ScrollToEnd()
		}
		return m, nil
	}

	if m.modal.IsVisible() {
		return m.forwardToModal(msg)
	}
	return m, nil
}

// handleKeyPress routes a key: open modal first, then shortcuts, then the
// selected cell, then grid navigation.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.modal.IsVisible() {
		if key == keys.CtrlC {
			return shortcutQuit(m)
		}
		return m.handleModalKey(msg)
	}

	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	out := m.machine.Key(key, msg.Text)
	if out.Handled {
		return m, m.apply(out)
	}
	return m, m.handleGridKey(key)
}

// handleGridKey handles keys the cell machine left alone.
func (m *Model) handleGridKey(key string) tea.Cmd {
	page := max(m.grid.BodyHeight()-1, 1)
	switch key {
	case keys.Up:
		return m.moveSelection(-1, 0)
	case keys.Down:
		return m.moveSelection(1, 0)
	case keys.Left:
		return m.moveSelection(0, -1)
	case keys.Right:
		return m.moveSelection(0, 1)
	case keys.Tab:
		return m.stepSelection(1)
	case keys.ShiftTab:
		return m.stepSelection(-1)
	case keys.PgUp:
		return m.moveSelection(-page, 0)
	case keys.PgDown:
		return m.moveSelection(page, 0)
	case keys.Home:
		return m.moveSelection(0, -len(m.book.Active().Columns()))
	case keys.End:
		return m.moveSelection(0, len(m.book.Active().Columns()))
	case keys.CtrlLeft:
		return m.switchSheet(m.book.ActiveIndex() - 1)
	case keys.CtrlRight:
		return m.switchSheet(m.book.ActiveIndex() + 1)
	case keys.Escape:
		cmd := m.blur()
		m.machine.Reset()
		return cmd
	}
	return nil
}

// dataColumns returns the columns that hold cells, in display order.
func (m *Model) dataColumns() []sheet.Column {
	var out []sheet.Column
	for _, c := range m.book.Active().Columns() {
		if c.Editable() {
			out = append(out, c)
		}
	}
	return out
}

// stepRow moves delta visible rows from r, stopping at the first or last
// visible row.
func (m *Model) stepRow(r, delta int) int {
	if next, ok := m.grid.NextRow(r, delta); ok {
		return next
	}
	rows := m.grid.VisibleRows()
	if len(rows) == 0 {
		return r
	}
	if delta < 0 {
		return rows[0]
	}
	return rows[len(rows)-1]
}

// moveSelection moves the selection by whole rows and columns, clamped to
// the sheet. With nothing selected the first visible cell is selected.
func (m *Model) moveSelection(dRow, dCol int) tea.Cmd {
	cols := m.dataColumns()
	rows := m.grid.VisibleRows()
	if len(cols) == 0 || len(rows) == 0 {
		return nil
	}

	p, ok := m.machine.Pos()
	if !ok {
		return m.selectCell(rows[0], cols[0])
	}

	ci := columnPos(cols, p.Key)
	ci = max(0, min(ci+dCol, len(cols)-1))
	r := p.Row
	if dRow != 0 {
		r = m.stepRow(p.Row, dRow)
	}
	return m.selectCell(r, cols[ci])
}

// stepSelection moves one cell along reading order, wrapping between rows.
func (m *Model) stepSelection(delta int) tea.Cmd {
	cols := m.dataColumns()
	rows := m.grid.VisibleRows()
	if len(cols) == 0 || len(rows) == 0 {
		return nil
	}

	p, ok := m.machine.Pos()
	if !ok {
		return m.selectCell(rows[0], cols[0])
	}

	ci := columnPos(cols, p.Key) + delta
	r := p.Row
	switch {
	case ci >= len(cols):
		next, ok := m.grid.NextRow(p.Row, 1)
		if !ok {
			return m.blur()
		}
		r, ci = next, 0
	case ci < 0:
		prev, ok := m.grid.NextRow(p.Row, -1)
		if !ok {
			return m.blur()
		}
		r, ci = prev, len(cols)-1
	}
	return m.selectCell(r, cols[ci])
}

func columnPos(cols []sheet.Column, key string) int {
	for i, c := range cols {
		if c.Key == key {
			return i
		}
	}
	return 0
}

// selectCell moves the selection to row r of column c without opening an
// editor, committing any edit in progress.
func (m *Model) selectCell(r int, c sheet.Column) tea.Cmd {
	out := m.machine.Select(m.target(r, c))
	m.grid.EnsureVisible(cell.Pos{Row: r, Key: c.Key})
	return m.apply(out)
}
