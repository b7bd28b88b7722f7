package modals

import (
	"slices"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/tally/internal/keys"
	"github.com/zhubert/tally/internal/layout"
	"github.com/zhubert/tally/internal/sheet"
)

// NewActionField identifies the focused part of the New Action modal.
type NewActionField int

const (
	FieldName NewActionField = iota
	FieldColor
	FieldColumns
	FieldSelected
	numNewActionFields
)

// NewActionState builds a header group: a name, a color and a contiguous
// run of columns.
type NewActionState struct {
	Name textinput.Model

	builder        *layout.Builder
	colorIndex     int
	focus          NewActionField
	columnCursor   int
	selectedCursor int
	notice         string
}

func (*NewActionState) modalState() {}

func (s *NewActionState) Title() string { return "New Action" }

func (s *NewActionState) PreferredWidth() int { return ModalWidth }

func (s *NewActionState) Help() string {
	switch s.focus {
	case FieldColor:
		return "←/→: color  Tab: next  Enter: create  Esc: cancel"
	case FieldColumns:
		return "↑/↓: move  Space: toggle  Tab: next  Enter: create  Esc: cancel"
	case FieldSelected:
		return "↑/↓: move  Space/Del: remove  Tab: next  Enter: create  Esc: cancel"
	}
	return "Tab: next field  Enter: create  Esc: cancel"
}

func (s *NewActionState) label(text string, field NewActionField) string {
	style := lipgloss.NewStyle().Foreground(ColorTextMuted)
	if s.focus == field {
		style = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
	}
	return style.Render(text)
}

func (s *NewActionState) renderColors() string {
	parts := make([]string, 0, len(layout.Palette))
	for i, c := range layout.Palette {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(c.Value)).Render("  ")
		name := lipgloss.NewStyle().Foreground(ColorTextMuted).Render(c.Name)
		if i == s.colorIndex {
			name = lipgloss.NewStyle().Foreground(ColorText).Bold(true).Underline(true).Render(c.Name)
		}
		parts = append(parts, swatch+" "+name)
	}
	return strings.Join(parts, "  ")
}

func (s *NewActionState) renderColumns() string {
	available := s.builder.Available()
	if len(available) == 0 {
		return lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true).
			Render("Every column already belongs to an action")
	}

	selection := s.builder.Selection()
	selectable := s.builder.Selectable()
	var b strings.Builder
	for i, c := range available {
		box := "[ ] "
		if slices.Contains(selection, c.Key) {
			box = "[x] "
		}
		style := ItemStyle
		prefix := "  "
		if s.focus == FieldColumns && i == s.columnCursor {
			style = ItemSelectedStyle
			prefix = "> "
		} else if !slices.ContainsFunc(selectable, func(sc sheet.Column) bool { return sc.Key == c.Key }) {
			style = ItemStyle.Foreground(ColorTextMuted)
		}
		b.WriteString(style.Render(prefix + box + c.Title))
		if i < len(available)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *NewActionState) renderSelected() string {
	selection := s.builder.Selection()
	if len(selection) == 0 {
		return lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true).Render("No columns selected")
	}
	titles := make([]string, len(selection))
	for i, key := range selection {
		c, _ := s.builder.Column(key)
		titles[i] = c.Title
	}
	if s.focus != FieldSelected {
		return lipgloss.NewStyle().Foreground(ColorText).Render(strings.Join(titles, ", "))
	}
	items := make([]string, len(titles))
	for i, t := range titles {
		items[i] = t + "  ✕"
	}
	return renderChoices(items, s.selectedCursor)
}

func (s *NewActionState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	nameView := s.Name.View()
	if s.focus == FieldName {
		nameView = lipgloss.NewStyle().
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorPrimary).
			PaddingLeft(1).
			Render(nameView)
	} else {
		nameView = lipgloss.NewStyle().PaddingLeft(2).Render(nameView)
	}

	sections := []string{
		title,
		s.label("Name", FieldName),
		nameView,
		"",
		s.label("Color", FieldColor),
		s.renderColors(),
		"",
		s.label("Columns (a contiguous range)", FieldColumns),
		s.renderColumns(),
		"",
		s.label("Selected", FieldSelected),
		s.renderSelected(),
	}
	if s.notice != "" {
		sections = append(sections, "", lipgloss.NewStyle().Foreground(ColorWarning).Render(s.notice))
	}
	sections = append(sections, ModalHelpStyle.Render(s.Help()))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (s *NewActionState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if s.focus == FieldName {
			var cmd tea.Cmd
			s.Name, cmd = s.Name.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	switch keyMsg.String() {
	case keys.Tab:
		return s, s.SetFocus((s.focus + 1) % numNewActionFields)
	case keys.ShiftTab:
		return s, s.SetFocus((s.focus + numNewActionFields - 1) % numNewActionFields)
	}

	switch s.focus {
	case FieldName:
		var cmd tea.Cmd
		s.Name, cmd = s.Name.Update(msg)
		return s, cmd

	case FieldColor:
		switch keyMsg.String() {
		case keys.Left:
			s.SetColor(s.colorIndex - 1)
		case keys.Right, keys.Space:
			s.SetColor(s.colorIndex + 1)
		}

	case FieldColumns:
		available := s.builder.Available()
		switch keyMsg.String() {
		case keys.Up:
			s.columnCursor = wrapIndex(s.columnCursor-1, len(available))
		case keys.Down:
			s.columnCursor = wrapIndex(s.columnCursor+1, len(available))
		case keys.Space:
			if s.columnCursor < len(available) {
				s.Toggle(available[s.columnCursor].Key)
			}
		}

	case FieldSelected:
		selection := s.builder.Selection()
		switch keyMsg.String() {
		case keys.Up:
			s.selectedCursor = wrapIndex(s.selectedCursor-1, len(selection))
		case keys.Down:
			s.selectedCursor = wrapIndex(s.selectedCursor+1, len(selection))
		case keys.Space, keys.Delete, keys.Backspace:
			if s.selectedCursor < len(selection) {
				s.Remove(selection[s.selectedCursor])
			}
		}
	}
	return s, nil
}

// Focus returns the focused field.
func (s *NewActionState) Focus() NewActionField { return s.focus }

// SetFocus moves focus to f; only the name field takes text input.
func (s *NewActionState) SetFocus(f NewActionField) tea.Cmd {
	s.focus = f
	if f == FieldName {
		return s.Name.Focus()
	}
	s.Name.Blur()
	return nil
}

// SetColor selects palette entry i, wrapping.
func (s *NewActionState) SetColor(i int) {
	s.colorIndex = wrapIndex(i, len(layout.Palette))
}

// Color returns the selected palette color.
func (s *NewActionState) Color() layout.Color {
	return layout.Palette[s.colorIndex]
}

// Toggle applies a click on column id and records feedback for a click
// that was refused.
func (s *NewActionState) Toggle(id string) layout.ToggleResult {
	res := s.builder.Toggle(id)
	switch res {
	case layout.Rejected:
		s.notice = "Only the column right after the selection can be added"
	case layout.Unknown:
		s.notice = "That column already belongs to an action"
	default:
		s.notice = ""
	}
	if n := len(s.builder.Selection()); s.selectedCursor >= n {
		s.selectedCursor = max(n-1, 0)
	}
	return res
}

// Remove drops a selected column and every selected column to its right.
func (s *NewActionState) Remove(id string) layout.ToggleResult {
	if !slices.Contains(s.builder.Selection(), id) {
		return layout.Unknown
	}
	return s.Toggle(id)
}

// Selection returns the selected column keys, left to right.
func (s *NewActionState) Selection() []string {
	return s.builder.Selection()
}

// ColumnCursor returns the index of the highlighted column in the picker.
func (s *NewActionState) ColumnCursor() int { return s.columnCursor }

// Notice returns the feedback for the last refused click, if any.
func (s *NewActionState) Notice() string { return s.notice }

// Ready reports whether the group can be created.
func (s *NewActionState) Ready() bool {
	s.sync()
	return s.builder.Ready()
}

// Build returns the new header group.
func (s *NewActionState) Build() (sheet.HeaderGroup, error) {
	s.sync()
	return s.builder.Build()
}

func (s *NewActionState) sync() {
	s.builder.Name = s.Name.Value()
	s.builder.Color = s.Color()
}

// NewNewActionState opens the modal for a sheet's columns and groups.
func NewNewActionState(columns []sheet.Column, groups []sheet.HeaderGroup) *NewActionState {
	ti := textinput.New()
	ti.Placeholder = "Action name"
	ti.CharLimit = ModalInputCharLimit
	ti.SetWidth(ModalInputWidth)
	ti.Focus()

	return &NewActionState{
		Name:    ti,
		builder: layout.NewBuilder(columns, groups),
	}
}
