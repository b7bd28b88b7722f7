// Package cell implements the per-cell interaction model of the grid: one
// cell at a time is selected, and the selected cell may be edited.
//
//	Idle ──click──▶ Selected ──enter/f2/double-click/typing──▶ Editing
//	                    ▲                                          │
//	                    └──────── enter/blur (commit), esc ────────┘
//
// Choice cells (status, priority) skip straight to Editing when selected and
// commit every change immediately. The machine never writes to a sheet
// itself; operations return an Outcome whose Commit tells the caller what to
// store.
package cell

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/zhubert/tally/internal/keys"
)

// State of the machine.
type State int

const (
	Idle State = iota
	Selected
	Editing
)

func (s State) String() string {
	switch s {
	case Selected:
		return "selected"
	case Editing:
		return "editing"
	default:
		return "idle"
	}
}

// Pos addresses a cell by row and column key.
type Pos struct {
	Row int
	Key string
}

// Target describes the cell an operation is aimed at.
type Target struct {
	Pos     Pos
	Value   string   // value currently stored
	Options []string // non-nil for choice cells
}

// IsChoice reports whether the cell is edited through a choice list.
func (t Target) IsChoice() bool {
	return t.Options != nil
}

// Commit asks the caller to store Value at Pos.
type Commit struct {
	Pos   Pos
	Value string
}

// Outcome is the result of an operation. Handled is false when the machine
// ignored the input, so the caller may act on it (arrow keys while merely
// selected, for example).
type Outcome struct {
	Handled bool
	Commit  *Commit
}

func handled() Outcome { return Outcome{Handled: true} }

// Machine is the cell interaction state. The zero value is Idle.
type Machine struct {
	state  State
	target Target

	input     []string // graphemes being edited
	cursor    int      // insertion point, in graphemes
	selectAll bool     // input is fully selected; the next keystroke replaces it
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Pos returns the selected cell. ok is false when Idle.
func (m *Machine) Pos() (Pos, bool) {
	return m.target.Pos, m.state != Idle
}

// IsAt reports whether p is the selected cell.
func (m *Machine) IsAt(p Pos) bool {
	return m.state != Idle && m.target.Pos == p
}

// Input returns the text being edited.
func (m *Machine) Input() string { return strings.Join(m.input, "") }

// Cursor returns the insertion point in graphemes.
func (m *Machine) Cursor() int { return m.cursor }

// AllSelected reports whether the edit text is fully selected.
func (m *Machine) AllSelected() bool { return m.selectAll }

// Target returns the selected cell's description.
func (m *Machine) Target() Target { return m.target }

func split(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

func (m *Machine) startEditing(text string, selectAll bool) {
	m.state = Editing
	m.input = split(text)
	m.cursor = len(m.input)
	m.selectAll = selectAll && len(m.input) > 0
}

func (m *Machine) commit(value string) *Commit {
	m.target.Value = value
	return &Commit{Pos: m.target.Pos, Value: value}
}

// Click selects t. A cell being edited elsewhere is blurred first, which
// commits free text. Clicking the cell already being edited does nothing.
func (m *Machine) Click(t Target) Outcome {
	if m.state == Editing && m.target.Pos == t.Pos {
		return handled()
	}
	out := m.Select(t)
	if t.IsChoice() {
		m.startEditing(t.Value, false)
	}
	return out
}

// Select moves the selection to t without opening an editor, blurring the
// previous cell first. Keyboard navigation uses it so arrowing across a
// choice cell doesn't open its list.
func (m *Machine) Select(t Target) Outcome {
	out := m.Blur()
	out.Handled = true

	m.target = t
	m.state = Selected
	m.input, m.cursor, m.selectAll = nil, 0, false
	return out
}

// DoubleClick selects t and opens it for editing with its value selected.
func (m *Machine) DoubleClick(t Target) Outcome {
	out := m.Click(t)
	if m.state == Selected {
		m.startEditing(m.target.Value, true)
	}
	return out
}

// Blur ends editing. Free text is committed; choice cells have committed
// already. The cell stays selected.
func (m *Machine) Blur() Outcome {
	if m.state != Editing {
		return Outcome{}
	}
	out := handled()
	if !m.target.IsChoice() {
		out.Commit = m.commit(m.Input())
	}
	m.state = Selected
	m.input, m.cursor, m.selectAll = nil, 0, false
	return out
}

// Reset drops the selection without committing anything.
func (m *Machine) Reset() {
	*m = Machine{}
}

// Refresh updates the stored value of the selected cell after an outside
// change, unless it is being edited as free text.
func (m *Machine) Refresh(value string) {
	if m.state == Idle || (m.state == Editing && !m.target.IsChoice()) {
		return
	}
	m.target.Value = value
	if m.state == Editing {
		m.input = split(value)
		m.cursor = len(m.input)
	}
}

// printable reports whether text is something typing should insert.
func printable(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// Key feeds a key press. key is the key's string form ("enter", "ctrl+c")
// and text the characters it produced, "" for non-printing keys.
func (m *Machine) Key(key, text string) Outcome {
	switch m.state {
	case Selected:
		return m.keySelected(key, text)
	case Editing:
		if m.target.IsChoice() {
			return m.keyChoice(key, text)
		}
		return m.keyText(key, text)
	}
	return Outcome{}
}

func (m *Machine) keySelected(key, text string) Outcome {
	switch key {
	case keys.Enter, keys.F2:
		m.startEditing(m.target.Value, !m.target.IsChoice())
		return handled()
	}
	if m.target.IsChoice() || !printable(text) {
		return Outcome{}
	}
	m.startEditing(text, false)
	return handled()
}

func (m *Machine) keyText(key, text string) Outcome {
	switch key {
	case keys.Enter:
		return m.Blur()
	case keys.Escape:
		m.state = Selected
		m.input, m.cursor, m.selectAll = nil, 0, false
		return handled()
	case keys.Backspace:
		if m.selectAll {
			m.input, m.cursor = nil, 0
		} else if m.cursor > 0 {
			m.input = append(m.input[:m.cursor-1:m.cursor-1], m.input[m.cursor:]...)
			m.cursor--
		}
		m.selectAll = false
		return handled()
	case keys.Delete:
		if m.selectAll {
			m.input, m.cursor = nil, 0
		} else if m.cursor < len(m.input) {
			m.input = append(m.input[:m.cursor:m.cursor], m.input[m.cursor+1:]...)
		}
		m.selectAll = false
		return handled()
	case keys.Left:
		if m.selectAll {
			m.cursor = 0
		} else if m.cursor > 0 {
			m.cursor--
		}
		m.selectAll = false
		return handled()
	case keys.Right:
		if !m.selectAll && m.cursor < len(m.input) {
			m.cursor++
		}
		m.selectAll = false
		return handled()
	case keys.Home:
		m.cursor, m.selectAll = 0, false
		return handled()
	case keys.End:
		m.cursor, m.selectAll = len(m.input), false
		return handled()
	}
	if printable(text) {
		m.Insert(text)
		return handled()
	}
	return Outcome{}
}

// Insert types text at the cursor, replacing a full selection. Used for
// key presses and pastes while editing free text.
func (m *Machine) Insert(text string) {
	if m.state != Editing || m.target.IsChoice() {
		return
	}
	if m.selectAll {
		m.input, m.cursor = nil, 0
		m.selectAll = false
	}
	add := split(text)
	rest := append([]string(nil), m.input[m.cursor:]...)
	m.input = append(append(m.input[:m.cursor:m.cursor], add...), rest...)
	m.cursor += len(add)
}

func (m *Machine) keyChoice(key, text string) Outcome {
	switch key {
	case keys.Enter, keys.Escape:
		m.state = Selected
		m.input, m.cursor = nil, 0
		return handled()
	case keys.Up:
		return m.Cycle(-1)
	case keys.Down, keys.Space:
		return m.Cycle(1)
	}
	if printable(text) {
		return m.jump(text)
	}
	return Outcome{}
}

// Choose sets a choice cell being edited to value and commits it. Values
// that are not among the cell's options are ignored.
func (m *Machine) Choose(value string) Outcome {
	if m.state != Editing || !m.target.IsChoice() {
		return Outcome{}
	}
	found := false
	for _, o := range m.target.Options {
		if o == value {
			found = true
			break
		}
	}
	if !found {
		return handled()
	}
	m.input = split(value)
	m.cursor = len(m.input)
	return Outcome{Handled: true, Commit: m.commit(value)}
}

// Cycle moves a choice cell delta options along, wrapping, and commits.
func (m *Machine) Cycle(delta int) Outcome {
	if m.state != Editing || !m.target.IsChoice() || len(m.target.Options) == 0 {
		return Outcome{}
	}
	opts := m.target.Options
	cur := 0
	for i, o := range opts {
		if o == m.Input() {
			cur = i
			break
		}
	}
	n := len(opts)
	return m.Choose(opts[((cur+delta)%n+n)%n])
}

// jump picks the next option after the current one that starts with text.
func (m *Machine) jump(text string) Outcome {
	opts := m.target.Options
	cur := -1
	for i, o := range opts {
		if o == m.Input() {
			cur = i
			break
		}
	}
	prefix := strings.ToLower(text)
	for step := 1; step <= len(opts); step++ {
		o := opts[(cur+step+len(opts))%len(opts)]
		if o != "" && strings.HasPrefix(strings.ToLower(o), prefix) {
			return m.Choose(o)
		}
	}
	return handled()
}
