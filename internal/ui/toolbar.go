package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Tool identifies a toolbar button.
type Tool int

const (
	ToolNone Tool = iota
	ToolCollapse
	ToolHideRows
	ToolImport
	ToolExport
	ToolShare
	ToolNewAction
)

func (t Tool) String() string {
	switch t {
	case ToolCollapse:
		return "collapse"
	case ToolHideRows:
		return "hide-rows"
	case ToolImport:
		return "import"
	case ToolExport:
		return "export"
	case ToolShare:
		return "share"
	case ToolNewAction:
		return "new-action"
	default:
		return "none"
	}
}

type toolSpan struct {
	tool       Tool
	start, end int // display columns, end exclusive
}

// Toolbar is the row of tool buttons above the grid. The left group can be
// collapsed behind the "Tool bar" toggle; the right group is always shown.
type Toolbar struct {
	width     int
	collapsed bool
	hidden    int
	active    Tool
	spans     []toolSpan
}

// NewToolbar creates a new toolbar
func NewToolbar() *Toolbar {
	return &Toolbar{}
}

// SetWidth sets the toolbar width
func (t *Toolbar) SetWidth(width int) {
	t.width = width
}

// ToggleCollapsed shows or hides the left tool group
func (t *Toolbar) ToggleCollapsed() {
	t.collapsed = !t.collapsed
}

// Collapsed reports whether the left tool group is hidden
func (t *Toolbar) Collapsed() bool {
	return t.collapsed
}

// SetHiddenCount sets the number shown on the hide-rows button
func (t *Toolbar) SetHiddenCount(n int) {
	t.hidden = n
}

// SetActive highlights the tool whose popover is open
func (t *Toolbar) SetActive(tool Tool) {
	t.active = tool
}

type toolItem struct {
	tool  Tool
	label string
}

func (t *Toolbar) leftItems() []toolItem {
	toggle := "Tool bar »"
	if !t.collapsed {
		toggle = "Tool bar «"
	}
	items := []toolItem{{ToolCollapse, toggle}}
	if t.collapsed {
		return items
	}
	hide := "Hide rows"
	if t.hidden > 0 {
		hide = fmt.Sprintf("Hide rows (%d)", t.hidden)
	}
	return append(items, toolItem{ToolHideRows, hide})
}

func rightItems() []toolItem {
	return []toolItem{
		{ToolImport, "Import ▾"},
		{ToolExport, "Export"},
		{ToolShare, "Share"},
		{ToolNewAction, "+ New Action"},
	}
}

func (t *Toolbar) render(item toolItem) string {
	switch {
	case item.tool == ToolNewAction:
		return ToolPrimaryStyle.Render(item.label)
	case item.tool == t.active:
		return ToolActiveStyle.Render(item.label)
	default:
		return ToolStyle.Render(item.label)
	}
}

// View renders the toolbar and records where each button landed
func (t *Toolbar) View() string {
	t.spans = t.spans[:0]

	var b strings.Builder
	x := 0
	place := func(item toolItem) {
		s := t.render(item)
		w := ansi.StringWidth(s)
		t.spans = append(t.spans, toolSpan{tool: item.tool, start: x, end: x + w})
		b.WriteString(s)
		x += w
	}
	sep := func() {
		b.WriteString(ToolSeparatorText)
		x += ansi.StringWidth(ToolSeparatorText)
	}

	for i, item := range t.leftItems() {
		if i > 0 {
			sep()
		}
		place(item)
	}

	right := rightItems()
	rightWidth := 0
	for _, item := range right {
		rightWidth += ansi.StringWidth(t.render(item))
	}
	if gap := t.width - x - rightWidth; gap > 0 {
		b.WriteString(strings.Repeat(" ", gap))
		x += gap
	} else {
		b.WriteString(" ")
		x++
	}
	for _, item := range right {
		place(item)
	}

	out := b.String()
	if t.width > 0 && x > t.width {
		out = ansi.Truncate(out, t.width, "")
	}
	return out
}

// ToolAt returns the tool drawn at column x by the last View.
func (t *Toolbar) ToolAt(x int) Tool {
	for _, s := range t.spans {
		if x >= s.start && x < s.end {
			if t.width > 0 && s.start >= t.width {
				return ToolNone
			}
			return s.tool
		}
	}
	return ToolNone
}

// ToolX returns the left column of tool as drawn by the last View.
func (t *Toolbar) ToolX(tool Tool) (int, bool) {
	for _, s := range t.spans {
		if s.tool == tool && (t.width == 0 || s.start < t.width) {
			return s.start, true
		}
	}
	return 0, false
}
