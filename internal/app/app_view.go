package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/tally/internal/ui"
)

// View renders the application
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the screen as a string, for tests and demos.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Update footer context for conditional bindings
	m.updateFooterContext()

	// A popover hangs below the toolbar; a dialog replaces everything
	// between the header and the footer
	if m.modal.IsVisible() {
		ctx := ui.GetViewContext()
		body := ctx.TerminalHeight - ui.HeaderHeight - ui.FooterHeight
		if m.modal.IsPopover() {
			return lipgloss.JoinVertical(
				lipgloss.Left,
				m.header.View(),
				m.toolbar.View(),
				m.modal.View(ctx.TerminalWidth, body-ui.ToolbarHeight),
				m.footer.View(),
			)
		}
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.header.View(),
			m.modal.View(ctx.TerminalWidth, body),
			m.footer.View(),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		m.toolbar.View(),
		m.grid.View(),
		m.tabs.View(),
		m.footer.View(),
	)
}

func (m *Model) updateFooterContext() {
	m.footer.SetContext(m.machine.State(), m.machine.Target().IsChoice(), m.modal.IsVisible())
}

func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.toolbar.SetWidth(ctx.TerminalWidth)
	m.grid.SetSize(ctx.TerminalWidth, ctx.GridHeight)
	m.tabs.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
}
