package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/tally/internal/cell"
	"github.com/zhubert/tally/internal/logger"
	"github.com/zhubert/tally/internal/ui"
)

// wheelStep is how many rows one wheel notch scrolls.
const wheelStep = 3

// handleMouseClick dispatches a left click to the band it landed in. A
// click anywhere but the grid blurs the cell being edited.
func (m *Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseLeft || m.modal.IsVisible() {
		return m, nil
	}

	region, y := ui.GetViewContext().RegionAt(msg.Y)
	logger.WithComponent("mouse").Debug("click", "x", msg.X, "y", msg.Y, "region", region.String())

	switch region {
	case ui.RegionGrid:
		return m, m.clickGrid(msg.X, y)
	case ui.RegionToolbar:
		return m.clickToolbar(msg.X)
	case ui.RegionTabs:
		return m, m.clickTabs(msg.X)
	}
	return m, m.blur()
}

// clickGrid handles a click at x, y relative to the grid.
func (m *Model) clickGrid(x, y int) tea.Cmd {
	hit := m.grid.HitTest(x, y)
	switch hit.Area {
	case ui.HitCell:
		t := m.target(hit.Row, hit.Column)
		now := time.Now()
		double := t.Pos == m.lastClickPos && now.Sub(m.lastClickAt) <= ui.DoubleClickInterval
		m.lastClickAt, m.lastClickPos = now, t.Pos
		if double {
			m.lastClickAt = time.Time{}
			return m.apply(m.machine.DoubleClick(t))
		}
		return m.apply(m.machine.Click(t))

	case ui.HitAddColumn:
		_, cmd := shortcutAddColumn(m)
		return cmd
	}
	m.lastClickPos = cell.Pos{}
	return m.blur()
}

// clickToolbar runs the tool button at x.
func (m *Model) clickToolbar(x int) (tea.Model, tea.Cmd) {
	switch m.toolbar.ToolAt(x) {
	case ui.ToolCollapse:
		return shortcutToggleToolbar(m)
	case ui.ToolHideRows:
		return shortcutHideRows(m)
	case ui.ToolImport:
		return shortcutImport(m)
	case ui.ToolExport:
		return shortcutExport(m)
	case ui.ToolShare:
		return shortcutShare(m)
	case ui.ToolNewAction:
		return shortcutNewAction(m)
	}
	return m, m.blur()
}

// clickTabs switches sheets or adds one.
func (m *Model) clickTabs(x int) tea.Cmd {
	hit, ok := m.tabs.TabAt(x)
	if !ok {
		return m.blur()
	}
	if hit.Add {
		_, cmd := shortcutNewSheet(m)
		return cmd
	}
	return m.switchSheet(hit.Index)
}

// handleMouseWheel scrolls the grid body.
func (m *Model) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	if m.modal.IsVisible() {
		return m.forwardToModal(msg)
	}
	switch msg.Button {
	case tea.MouseWheelUp:
		m.grid.ScrollRows(-wheelStep)
	case tea.MouseWheelDown:
		m.grid.ScrollRows(wheelStep)
	}
	return m, nil
}
