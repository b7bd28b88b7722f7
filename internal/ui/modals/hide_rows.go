package modals

import (
	"fmt"
	"sort"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/tally/internal/keys"
)

// HideRowsState toggles the visibility of the first rows of the grid. The
// last entry is "Show all".
type HideRowsState struct {
	rows   int
	hidden map[int]bool
	cursor int
}

func (*HideRowsState) modalState() {}

func (s *HideRowsState) Title() string { return "Hide rows" }

func (s *HideRowsState) Help() string {
	return "↑/↓: move  Space/Enter: toggle  Esc: close"
}

func (s *HideRowsState) Render() string {
	var lines []string
	for i := 0; i < s.rows; i++ {
		box := "[ ]"
		if s.hidden[i] {
			box = "[x]"
		}
		lines = append(lines, fmt.Sprintf("%s Row %d", box, i+1))
	}
	lines = append(lines, "Show all")

	status := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		MarginTop(1).
		Render(fmt.Sprintf("%d hidden", len(s.hidden)))

	return lipgloss.JoinVertical(lipgloss.Left,
		ModalTitleStyle.Render(s.Title()),
		s.renderWindow(lines),
		status,
		ModalHelpStyle.Render(s.Help()),
	)
}

// renderWindow shows at most PreviewHeight entries around the cursor.
func (s *HideRowsState) renderWindow(lines []string) string {
	height := PreviewHeight
	start := 0
	if s.cursor >= height {
		start = s.cursor - height + 1
	}
	end := min(start+height, len(lines))
	window := renderChoices(lines[start:end], s.cursor-start)
	if start > 0 {
		window = lipgloss.NewStyle().Foreground(ColorTextMuted).Render("  ↑ more") + "\n" + window
	}
	if end < len(lines) {
		window += "\n" + lipgloss.NewStyle().Foreground(ColorTextMuted).Render("  ↓ more")
	}
	return window
}

func (s *HideRowsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up:
			s.cursor = wrapIndex(s.cursor-1, s.rows+1)
		case keys.Down:
			s.cursor = wrapIndex(s.cursor+1, s.rows+1)
		case keys.Space, keys.Enter:
			s.Activate()
		}
	}
	return s, nil
}

// Activate toggles the row under the cursor, or clears everything when the
// cursor is on "Show all".
func (s *HideRowsState) Activate() {
	if s.cursor == s.rows {
		s.ShowAll()
		return
	}
	s.Toggle(s.cursor)
}

// Toggle flips the visibility of row i (0-based). Rows outside the offered
// range are ignored.
func (s *HideRowsState) Toggle(i int) {
	if i < 0 || i >= s.rows {
		return
	}
	if s.hidden[i] {
		delete(s.hidden, i)
	} else {
		s.hidden[i] = true
	}
}

// ShowAll unhides every row.
func (s *HideRowsState) ShowAll() {
	s.hidden = make(map[int]bool)
}

// Hidden returns the hidden rows in ascending order.
func (s *HideRowsState) Hidden() []int {
	out := make([]int, 0, len(s.hidden))
	for i := range s.hidden {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// SetCursor moves the cursor, clamped to the list.
func (s *HideRowsState) SetCursor(i int) {
	s.cursor = max(0, min(i, s.rows))
}

// NewHideRowsState offers rows 1..rows, starting from the hidden set.
func NewHideRowsState(rows int, hidden []int) *HideRowsState {
	s := &HideRowsState{rows: rows, hidden: make(map[int]bool)}
	for _, i := range hidden {
		if i >= 0 && i < rows {
			s.hidden[i] = true
		}
	}
	return s
}
