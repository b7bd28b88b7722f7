package modals

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/tally/internal/keys"
	"github.com/zhubert/tally/internal/sheet"
)

// ImportState lists the built-in templates that can be added as new sheets.
type ImportState struct {
	templates []sheet.Sheet
	cursor    int
}

func (*ImportState) modalState() {}

func (s *ImportState) Title() string { return "Import" }

func (s *ImportState) Help() string {
	return "↑/↓: choose  Enter: import  Esc: cancel"
}

func (s *ImportState) Render() string {
	items := make([]string, len(s.templates))
	for i, t := range s.templates {
		items[i] = t.Name
	}

	desc := ""
	if t, ok := s.Selected(); ok {
		desc = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			MarginTop(1).
			Render(t.Title + " · " + pluralRows(len(t.Rows)) + " · " + pluralGroups(len(t.HeaderGroups)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		ModalTitleStyle.Render(s.Title()),
		renderChoices(items, s.cursor),
		desc,
		ModalHelpStyle.Render(s.Help()),
	)
}

func (s *ImportState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up:
			s.cursor = wrapIndex(s.cursor-1, len(s.templates))
		case keys.Down:
			s.cursor = wrapIndex(s.cursor+1, len(s.templates))
		}
	}
	return s, nil
}

// Selected returns the highlighted template.
func (s *ImportState) Selected() (sheet.Sheet, bool) {
	if s.cursor < 0 || s.cursor >= len(s.templates) {
		return sheet.Sheet{}, false
	}
	return s.templates[s.cursor], true
}

// NewImportState lists templates in the given order.
func NewImportState(templates []sheet.Sheet) *ImportState {
	return &ImportState{templates: templates}
}
