package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	tabAddLabel    = "+"
	tabScrollLeft  = "‹"
	tabScrollRight = "›"
)

// TabHit is what a click on the tab strip landed on.
type TabHit struct {
	Index int  // sheet index, valid when !Add
	Add   bool // the "+" button
}

type tabSpan struct {
	hit        TabHit
	start, end int
}

// Tabs is the sheet tab strip below the grid.
type Tabs struct {
	width  int
	names  []string
	active int
	offset int // first tab drawn
	spans  []tabSpan
}

// NewTabs creates an empty tab strip
func NewTabs() *Tabs {
	return &Tabs{}
}

// SetWidth sets the strip width
func (t *Tabs) SetWidth(width int) {
	t.width = width
}

// SetTabs sets the tab names and the active index, keeping the active tab
// in view
func (t *Tabs) SetTabs(names []string, active int) {
	t.names = names
	t.active = active
	if t.offset >= len(names) {
		t.offset = max(len(names)-1, 0)
	}
	if active < t.offset {
		t.offset = active
	}
	for active > t.offset && !t.fits(t.offset, active) {
		t.offset++
	}
}

// Offset returns the index of the first tab drawn
func (t *Tabs) Offset() int {
	return t.offset
}

// ScrollToEnd scrolls so the last tab and the "+" button are visible
func (t *Tabs) ScrollToEnd() {
	last := len(t.names) - 1
	t.offset = 0
	for t.offset < last && !t.fits(t.offset, last) {
		t.offset++
	}
}

func (t *Tabs) tabWidth(i int) int {
	style := TabStyle
	if i == t.active {
		style = TabActiveStyle
	}
	return ansi.StringWidth(style.Render(t.names[i]))
}

// fits reports whether tabs from..to, the scroll markers they need and the
// "+" button fit the width
func (t *Tabs) fits(from, to int) bool {
	if t.width <= 0 {
		return true
	}
	markerW := ansi.StringWidth(TabAddStyle.Render(tabScrollLeft))
	w := ansi.StringWidth(TabAddStyle.Render(tabAddLabel))
	if from > 0 {
		w += markerW
	}
	if to < len(t.names)-1 {
		w += markerW
	}
	for i := from; i <= to && i < len(t.names); i++ {
		w += t.tabWidth(i)
	}
	return w <= t.width
}

// lastVisible returns the last tab drawn when starting at offset
func (t *Tabs) lastVisible() int {
	last := t.offset
	for last+1 < len(t.names) && t.fits(t.offset, last+1) {
		last++
	}
	return last
}

// View renders the strip and records where each tab landed
func (t *Tabs) View() string {
	t.spans = t.spans[:0]

	var b strings.Builder
	x := 0
	write := func(s string) {
		b.WriteString(s)
		x += ansi.StringWidth(s)
	}

	if t.offset > 0 {
		write(TabAddStyle.Render(tabScrollLeft))
	}
	last := -1
	if len(t.names) > 0 {
		last = t.lastVisible()
	}
	for i := t.offset; i <= last; i++ {
		style := TabStyle
		if i == t.active {
			style = TabActiveStyle
		}
		start := x
		write(style.Render(t.names[i]))
		t.spans = append(t.spans, tabSpan{hit: TabHit{Index: i}, start: start, end: x})
	}
	if last < len(t.names)-1 {
		write(TabAddStyle.Render(tabScrollRight))
	}
	start := x
	write(TabAddStyle.Render(tabAddLabel))
	t.spans = append(t.spans, tabSpan{hit: TabHit{Add: true}, start: start, end: x})

	if t.width > x {
		b.WriteString(strings.Repeat(" ", t.width-x))
	}
	return b.String()
}

// TabAt returns the tab drawn at column x by the last View
func (t *Tabs) TabAt(x int) (TabHit, bool) {
	for _, s := range t.spans {
		if x >= s.start && x < s.end {
			return s.hit, true
		}
	}
	return TabHit{}, false
}
