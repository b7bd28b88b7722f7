package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/tally/internal/ui/modals"
)

// Modal holds the open dialog or toolbar popover. State is nil when nothing
// is open. Dialogs are centered in the space between header and footer;
// popovers hang from the top of that space under the tool that opened them.
type Modal struct {
	State  modals.ModalState
	error  string
	anchor int // left edge of a popover; -1 centers the modal
}

// NewModal creates a hidden modal
func NewModal() *Modal {
	return &Modal{anchor: -1}
}

// Show opens state as a centered dialog
func (m *Modal) Show(state modals.ModalState) {
	m.ShowAt(state, -1)
}

// ShowAt opens state as a popover whose left edge sits at column x. A
// negative x centers it.
func (m *Modal) ShowAt(state modals.ModalState, x int) {
	m.State = state
	m.error = ""
	m.anchor = x
}

// Hide closes the modal and drops any error
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
	m.anchor = -1
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// IsPopover reports whether the modal is anchored to a tool.
func (m *Modal) IsPopover() bool {
	return m.State != nil && m.anchor >= 0
}

// SetError shows err under the modal content until the next Show or Hide
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update passes msg to the open state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal into a width x height area.
func (m *Modal) View(width, height int) string {
	if m.State == nil {
		return ""
	}

	content := m.State.Render()
	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	style := ModalStyle
	if pw, ok := m.State.(modals.ModalWithPreferredWidth); ok {
		style = style.Width(pw.PreferredWidth())
	}
	box := style.Render(content)

	if m.anchor < 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
	}

	// Keep the popover on screen when the tool sits near the right edge
	x := min(m.anchor, max(width-lipgloss.Width(box), 0))
	indented := lipgloss.NewStyle().PaddingLeft(x).Render(box)
	lines := strings.Split(indented, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, strings.Join(lines, "\n"))
}
