package ui

import (
	"slices"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/zhubert/tally/internal/cell"
	"github.com/zhubert/tally/internal/layout"
	"github.com/zhubert/tally/internal/sheet"
)

// HitArea says which part of the grid a position falls on.
type HitArea int

const (
	HitNone HitArea = iota
	HitGroupHeader
	HitColumnTitle
	HitAddColumn
	HitRowNumber
	HitCell
)

// Hit is the result of hit-testing a grid position.
type Hit struct {
	Area    HitArea
	Row     int // data row, for HitRowNumber and HitCell
	Column  sheet.Column
	Segment layout.Segment // for HitGroupHeader
}

type colSpan struct {
	col        sheet.Column
	start, end int // display columns, end exclusive, clipped to the width
}

// Grid renders the active sheet: the grouped header row, the column titles
// and a scrollable window of data rows. The row number column stays put
// while the rest scrolls horizontally.
type Grid struct {
	width, height int

	sheet    sheet.Sheet
	columns  []sheet.Column
	segments []layout.Segment
	machine  *cell.Machine
	hidden   map[int]bool

	rowOffset int // index into VisibleRows
	colOffset int // first scrolled column index
}

// NewGrid creates an empty grid
func NewGrid() *Grid {
	return &Grid{
		hidden:    make(map[int]bool),
		colOffset: sheet.TitleBlockStart,
	}
}

// SetSize sets the grid's outer dimensions, header rows included
func (g *Grid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.clampOffsets()
}

// SetSheet sets the sheet to draw
func (g *Grid) SetSheet(s sheet.Sheet) {
	g.sheet = s
	g.columns = s.Columns()
	g.segments = layout.ForSheet(s)
	g.clampOffsets()
}

// SetMachine sets the cell state the grid highlights
func (g *Grid) SetMachine(m *cell.Machine) {
	g.machine = m
}

// SetHidden replaces the set of hidden rows
func (g *Grid) SetHidden(rows []int) {
	g.hidden = make(map[int]bool, len(rows))
	for _, r := range rows {
		g.hidden[r] = true
	}
	g.clampOffsets()
}

// Hidden returns the hidden rows in ascending order
func (g *Grid) Hidden() []int {
	out := make([]int, 0, len(g.hidden))
	for r := range g.hidden {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

// IsHidden reports whether row r is hidden
func (g *Grid) IsHidden(r int) bool {
	return g.hidden[r]
}

// BodyHeight returns how many data rows fit
func (g *Grid) BodyHeight() int {
	return max(g.height-GridHeaderHeight, 0)
}

// VisibleRows returns the indexes of the rows that are not hidden
func (g *Grid) VisibleRows() []int {
	out := make([]int, 0, len(g.sheet.Rows))
	for i := range g.sheet.Rows {
		if !g.hidden[i] {
			out = append(out, i)
		}
	}
	return out
}

// RowOffset returns the position in VisibleRows of the top body row
func (g *Grid) RowOffset() int { return g.rowOffset }

// ColOffset returns the index of the first scrolled column
func (g *Grid) ColOffset() int { return g.colOffset }

func (g *Grid) clampOffsets() {
	visible := len(g.VisibleRows())
	g.rowOffset = max(min(g.rowOffset, visible-g.BodyHeight()), 0)
	if n := len(g.columns); n > 0 {
		g.colOffset = max(min(g.colOffset, n-1), sheet.TitleBlockStart)
	}
}

// NextRow returns the visible row delta steps from r. ok is false when
// that would leave the sheet.
func (g *Grid) NextRow(r, delta int) (int, bool) {
	rows := g.VisibleRows()
	p := slices.Index(rows, r)
	if p < 0 {
		// r is hidden: start from the nearest visible row after it
		p, _ = slices.BinarySearch(rows, r)
		if delta > 0 {
			delta--
		}
	}
	p += delta
	if p < 0 || p >= len(rows) {
		return r, false
	}
	return rows[p], true
}

// ScrollRows moves the body window by delta rows
func (g *Grid) ScrollRows(delta int) {
	g.rowOffset += delta
	g.clampOffsets()
}

// EnsureVisible scrolls so the cell at p is on screen
func (g *Grid) EnsureVisible(p cell.Pos) {
	rows := g.VisibleRows()
	if i := slices.Index(rows, p.Row); i >= 0 {
		if i < g.rowOffset {
			g.rowOffset = i
		} else if h := g.BodyHeight(); h > 0 && i >= g.rowOffset+h {
			g.rowOffset = i - h + 1
		}
	}
	if idx, ok := g.sheet.ColumnIndexOf(p.Key); ok {
		g.ScrollToColumn(idx)
	}
}

// ScrollToColumn scrolls horizontally so column idx is fully visible, or
// as much of it as the width allows
func (g *Grid) ScrollToColumn(idx int) {
	if idx <= sheet.RowNumberIndex || idx >= len(g.columns) {
		return
	}
	if idx < g.colOffset {
		g.colOffset = idx
		return
	}
	for g.colOffset < idx && g.columnEnd(idx) > g.width {
		g.colOffset++
	}
}

// ScrollToEnd scrolls to the add-column slot
func (g *Grid) ScrollToEnd() {
	g.ScrollToColumn(len(g.columns) - 1)
}

// columnEnd is the right edge of column idx with the current offset
func (g *Grid) columnEnd(idx int) int {
	x := g.columns[sheet.RowNumberIndex].Width
	for i := g.colOffset; i <= idx && i < len(g.columns); i++ {
		x += g.columns[i].Width
	}
	return x
}

// spans lays out the columns that are at least partly on screen
func (g *Grid) spans() []colSpan {
	if len(g.columns) == 0 {
		return nil
	}
	var out []colSpan
	add := func(c sheet.Column, x int) int {
		end := x + c.Width
		if g.width > 0 {
			end = min(end, g.width)
		}
		out = append(out, colSpan{col: c, start: x, end: end})
		return x + c.Width
	}
	x := add(g.columns[sheet.RowNumberIndex], 0)
	for _, c := range g.columns[g.colOffset:] {
		if g.width > 0 && x >= g.width {
			break
		}
		x = add(c, x)
	}
	return out
}

// HitTest maps a position relative to the grid's top-left corner
func (g *Grid) HitTest(x, y int) Hit {
	if x < 0 || y < 0 || (g.width > 0 && x >= g.width) || y >= g.height {
		return Hit{}
	}
	var col sheet.Column
	found := false
	for _, s := range g.spans() {
		if x >= s.start && x < s.end {
			col, found = s.col, true
			break
		}
	}
	if !found {
		return Hit{}
	}

	if col.Kind == sheet.KindAddColumn && y < GridHeaderHeight {
		return Hit{Area: HitAddColumn, Column: col}
	}
	switch y {
	case 0:
		seg, _ := layout.SegmentAt(g.segments, col.Index)
		return Hit{Area: HitGroupHeader, Column: col, Segment: seg}
	case 1:
		return Hit{Area: HitColumnTitle, Column: col}
	}

	rows := g.VisibleRows()
	i := g.rowOffset + y - GridHeaderHeight
	if i >= len(rows) {
		return Hit{}
	}
	switch col.Kind {
	case sheet.KindRowNumber:
		return Hit{Area: HitRowNumber, Row: rows[i], Column: col}
	case sheet.KindAddColumn:
		return Hit{}
	}
	return Hit{Area: HitCell, Row: rows[i], Column: col}
}

// View renders the grid
func (g *Grid) View() string {
	spans := g.spans()
	lines := make([]string, 0, max(g.height, GridHeaderHeight))
	lines = append(lines, g.groupRow(spans), g.titleRow(spans))

	rows := g.VisibleRows()
	for i := 0; i < g.BodyHeight(); i++ {
		p := g.rowOffset + i
		if p >= len(rows) {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, g.bodyRow(spans, rows[p]))
	}

	for i, l := range lines {
		lines[i] = g.fitLine(l)
	}
	return strings.Join(lines, "\n")
}

func (g *Grid) fitLine(l string) string {
	if g.width <= 0 {
		return l
	}
	w := ansi.StringWidth(l)
	if w > g.width {
		return ansi.Truncate(l, g.width, "")
	}
	return l + strings.Repeat(" ", g.width-w)
}

func (g *Grid) groupRow(spans []colSpan) string {
	var b strings.Builder
	for i := 0; i < len(spans); {
		seg, _ := layout.SegmentAt(g.segments, spans[i].col.Index)
		width := 0
		j := i
		for ; j < len(spans) && spans[j].col.Index <= seg.End(); j++ {
			width += spans[j].col.Width
		}
		if j == i {
			// Segment table out of date; draw the column alone
			width, j = spans[i].col.Width, i+1
		}

		switch seg.Kind {
		case layout.SegmentTitle:
			b.WriteString(GridTitleBlockStyle.Render(pad(g.sheet.Title, width, sheet.AlignLeft)))
		case layout.SegmentGroup:
			b.WriteString(GroupStyle(seg.Color).Render(pad(seg.Label, width, sheet.AlignCenter)))
		case layout.SegmentCorner:
			b.WriteString(GridCornerStyle.Render(strings.Repeat(" ", width)))
		default:
			b.WriteString(GridFillerStyle.Render(strings.Repeat(" ", width)))
		}
		i = j
	}
	return b.String()
}

func (g *Grid) titleRow(spans []colSpan) string {
	var b strings.Builder
	for _, s := range spans {
		c := s.col
		style := GridColumnStyle
		if c.Kind == sheet.KindAddColumn {
			style = GridAddColumnStyle
		}
		a := c.Align
		if c.Kind == sheet.KindText || c.Kind == sheet.KindLink {
			a = sheet.AlignLeft
		}
		b.WriteString(style.Render(pad(c.Title, c.Width, a)))
	}
	return b.String()
}

func (g *Grid) bodyRow(spans []colSpan, r int) string {
	var b strings.Builder
	for _, s := range spans {
		c := s.col
		switch c.Kind {
		case sheet.KindRowNumber:
			b.WriteString(GridRowNumberStyle.Render(pad(strconv.Itoa(r+1), c.Width, sheet.AlignCenter)))
		case sheet.KindAddColumn:
			b.WriteString(strings.Repeat(" ", c.Width))
		default:
			b.WriteString(g.renderCell(r, c))
		}
	}
	return b.String()
}

func (g *Grid) renderCell(r int, c sheet.Column) string {
	value := g.sheet.Rows[r].Cell(c.Key)
	pos := cell.Pos{Row: r, Key: c.Key}

	if g.machine != nil && g.machine.IsAt(pos) {
		if g.machine.State() == cell.Editing {
			if c.IsChoice() {
				label := g.machine.Input()
				if label == "" {
					label = "–"
				}
				return GridEditingStyle.Render(pad(label+" ▾", c.Width, c.Align))
			}
			return editText(g.machine.Input(), g.machine.Cursor(), g.machine.AllSelected(), c.Width)
		}
		return GridCursorStyle.Render(pad(displayValue(c, value), c.Width, c.Align))
	}

	switch c.Kind {
	case sheet.KindChoice:
		if style, ok := ChoiceStyle(c.Key, value); ok {
			return padStyled(" "+value+" ", style, c.Width, c.Align)
		}
	case sheet.KindLink:
		if value != "" {
			return padStyled(value, GridLinkStyle, c.Width, c.Align)
		}
	}
	return GridCellStyle.Render(pad(displayValue(c, value), c.Width, c.Align))
}

// displayValue is the plain text a cell shows when it is not being edited
func displayValue(c sheet.Column, value string) string {
	if c.Kind == sheet.KindAmount {
		return sheet.FormatAmount(value)
	}
	return value
}

// align pads text of display width w out to width
func align(text string, w, width int, a sheet.Align) string {
	gap := max(width-w, 0)
	switch a {
	case sheet.AlignRight:
		return strings.Repeat(" ", gap) + text
	case sheet.AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", gap-left)
	default:
		return text + strings.Repeat(" ", gap)
	}
}

func cellPad() string { return strings.Repeat(" ", CellPadding) }

// pad fits text into a cell of the given width, truncating with an ellipsis
func pad(text string, width int, a sheet.Align) string {
	inner := width - 2*CellPadding
	if inner <= 0 {
		return strings.Repeat(" ", max(width, 0))
	}
	t := runewidth.Truncate(text, inner, "…")
	return cellPad() + align(t, runewidth.StringWidth(t), inner, a) + cellPad()
}

// padStyled is pad for text that is styled on its own, like a status chip,
// leaving the padding unstyled
func padStyled(text string, style lipgloss.Style, width int, a sheet.Align) string {
	inner := width - 2*CellPadding
	if inner <= 0 {
		return strings.Repeat(" ", max(width, 0))
	}
	rendered := style.Render(runewidth.Truncate(text, inner, "…"))
	return cellPad() + align(rendered, ansi.StringWidth(rendered), inner, a) + cellPad()
}

// editText renders a cell being edited with a block cursor. The text scrolls
// so the cursor stays inside the cell.
func editText(input string, cursor int, allSelected bool, width int) string {
	inner := width - 2*CellPadding
	if inner <= 0 {
		return strings.Repeat(" ", max(width, 0))
	}
	edge := GridEditingStyle.Render(cellPad())

	if allSelected {
		t := runewidth.Truncate(input, inner, "…")
		w := runewidth.StringWidth(t)
		return edge + GridEditingStyle.Reverse(true).Render(t) +
			GridEditingStyle.Render(strings.Repeat(" ", inner-w)) + edge
	}

	var gs []string
	gr := uniseg.NewGraphemes(input)
	for gr.Next() {
		gs = append(gs, gr.Str())
	}
	cursor = max(min(cursor, len(gs)), 0)

	at := " "
	if cursor < len(gs) {
		at = gs[cursor]
	}
	atW := uniseg.StringWidth(at)

	start := 0
	for start < cursor && uniseg.StringWidth(strings.Join(gs[start:cursor], ""))+atW > inner {
		start++
	}
	before := strings.Join(gs[start:cursor], "")
	used := uniseg.StringWidth(before) + atW

	var after strings.Builder
	for i := cursor + 1; i < len(gs); i++ {
		w := uniseg.StringWidth(gs[i])
		if used+w > inner {
			break
		}
		after.WriteString(gs[i])
		used += w
	}

	return edge +
		GridEditingStyle.Render(before) +
		GridEditingStyle.Reverse(true).Render(at) +
		GridEditingStyle.Render(after.String()+strings.Repeat(" ", max(inner-used, 0))) +
		edge
}
