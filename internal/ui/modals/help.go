package modals

import (
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// helpKeyColumn is the width reserved for the key before its description.
const helpKeyColumn = 16

// Help list rows are either a category heading or a shortcut. Headings
// never match a filter.
type (
	helpHeading  string
	helpShortcut HelpShortcut
)

func (helpHeading) FilterValue() string    { return "" }
func (h helpShortcut) FilterValue() string { return h.Key + " " + h.Desc }

// helpRows draws one line per row with no spacing.
type helpRows struct{}

func (helpRows) Height() int                        { return 1 }
func (helpRows) Spacing() int                       { return 0 }
func (helpRows) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (helpRows) Render(w io.Writer, m list.Model, index int, item list.Item) {
	switch row := item.(type) {
	case helpHeading:
		_, _ = io.WriteString(w, lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary).Render(string(row)))
	case helpShortcut:
		key := lipgloss.NewStyle().Bold(true).Width(helpKeyColumn)
		desc := lipgloss.NewStyle()
		cursor := "  "
		if index == m.Index() {
			cursor = "> "
			key = key.Foreground(ColorTextInverse).Background(ColorPrimary)
			desc = desc.Foreground(ColorTextInverse).Background(ColorPrimary)
		} else {
			key = key.Foreground(ColorPrimary)
			desc = desc.Foreground(ColorText)
		}
		_, _ = io.WriteString(w, cursor+key.Render(row.Key)+desc.Render(row.Desc))
	}
}

// HelpState lists every shortcut by category. Enter on a row runs it.
type HelpState struct {
	list list.Model
}

func (*HelpState) modalState() {}

func (*HelpState) Title() string { return "Keyboard Shortcuts" }

func (*HelpState) PreferredWidth() int { return ModalWidth }

func (s *HelpState) Help() string {
	if s.IsFiltering() {
		return "Type to filter  Enter: apply  Esc: cancel"
	}
	return "/: filter  up/down: navigate  Enter: trigger  Esc: close"
}

func (s *HelpState) Render() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		ModalTitleStyle.Render(s.Title()),
		s.list.View(),
		ModalHelpStyle.Render(s.Help()),
	)
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

// SetSize gives the list whatever the title and help lines leave over.
func (s *HelpState) SetSize(width, height int) {
	s.list.SetSize(width, max(height-4, 1))
}

// GetSelectedShortcut returns the row under the cursor, or nil when it is a
// heading or the list is empty.
func (s *HelpState) GetSelectedShortcut() *HelpShortcut {
	row, ok := s.list.SelectedItem().(helpShortcut)
	if !ok {
		return nil
	}
	sc := HelpShortcut(row)
	return &sc
}

// IsFiltering reports whether the filter prompt has the keyboard.
func (s *HelpState) IsFiltering() bool {
	return s.list.SettingFilter()
}

// NewHelpStateFromSections lays sections out as headings followed by their
// shortcuts, with the cursor on the first shortcut.
func NewHelpStateFromSections(sections []HelpSection) *HelpState {
	var rows []list.Item
	first := -1
	for _, sec := range sections {
		rows = append(rows, helpHeading(sec.Title))
		for _, sc := range sec.Shortcuts {
			if first < 0 {
				first = len(rows)
			}
			rows = append(rows, helpShortcut(sc))
		}
	}

	l := list.New(rows, helpRows{}, ModalWidth, HelpModalMaxVisible)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	if first >= 0 {
		l.Select(first)
	}
	return &HelpState{list: l}
}
