package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/tally/internal/cell"
	"github.com/zhubert/tally/internal/sheet"
)

func testGrid(width, height int) *Grid {
	g := NewGrid()
	g.SetSheet(sheet.Defaults()[0])
	g.SetSize(width, height)
	return g
}

func gridLines(g *Grid) []string {
	return strings.Split(ansi.Strip(g.View()), "\n")
}

func TestGrid_View(t *testing.T) {
	g := testGrid(200, 12)
	lines := gridLines(g)

	if len(lines) != 12 {
		t.Fatalf("got %d lines, want 12", len(lines))
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != 200 {
			t.Errorf("line %d width = %d, want 200", i, w)
		}
	}

	for _, want := range []string{"Q3 Financial Overview", "ABC", "Answer a question", "Extract"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("group row missing %q: %q", want, lines[0])
		}
	}
	for _, want := range []string{"Job Request", "Status", "Est. Value", "+"} {
		if !strings.Contains(lines[1], want) {
			t.Errorf("title row missing %q: %q", want, lines[1])
		}
	}
	for _, want := range []string{"1", "Launch social media", "In-process", "6,200,000 ₹", "www.aishapatel.com"} {
		if !strings.Contains(lines[2], want) {
			t.Errorf("first row missing %q: %q", want, lines[2])
		}
	}
}

func TestGrid_HitTest(t *testing.T) {
	g := testGrid(200, 12)

	// Row number 4 wide, then job 30, submitted 12, status 15, submitter 15, url 20
	assignedX := 4 + 30 + 12 + 15 + 15 + 20
	addX := 4 + 30 + 12 + 15 + 15 + 20 + 16 + 10 + 12 + 16

	tests := []struct {
		name    string
		x, y    int
		area    HitArea
		row     int
		key     string
		groupID string
	}{
		{"row number", 0, 2, HitRowNumber, 0, "", ""},
		{"job cell", 4, 2, HitCell, 0, sheet.KeyJob, ""},
		{"third row", 5, 4, HitCell, 2, sheet.KeyJob, ""},
		{"column title", 4, 1, HitColumnTitle, 0, sheet.KeyJob, ""},
		{"group", assignedX, 0, HitGroupHeader, 0, sheet.KeyAssigned, "abc-header"},
		{"add column title", addX, 1, HitAddColumn, 0, "", ""},
		{"add column body", addX, 3, HitNone, 0, "", ""},
		{"past width", 200, 3, HitNone, 0, "", ""},
		{"past height", 4, 12, HitNone, 0, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := g.HitTest(tt.x, tt.y)
			if hit.Area != tt.area {
				t.Fatalf("Area = %v, want %v", hit.Area, tt.area)
			}
			if tt.area == HitNone {
				return
			}
			if hit.Column.Key != tt.key {
				t.Errorf("Column.Key = %q, want %q", hit.Column.Key, tt.key)
			}
			if (tt.area == HitCell || tt.area == HitRowNumber) && hit.Row != tt.row {
				t.Errorf("Row = %d, want %d", hit.Row, tt.row)
			}
			if hit.Segment.GroupID != tt.groupID {
				t.Errorf("Segment.GroupID = %q, want %q", hit.Segment.GroupID, tt.groupID)
			}
		})
	}
}

func TestGrid_HiddenRows(t *testing.T) {
	g := testGrid(200, 12)
	g.SetHidden([]int{1, 0})

	if got := g.Hidden(); len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("Hidden() = %v, want [0 1]", got)
	}
	if !g.IsHidden(0) || g.IsHidden(2) {
		t.Error("IsHidden mismatch")
	}

	lines := gridLines(g)
	if !strings.HasPrefix(strings.TrimSpace(lines[2]), "3") {
		t.Errorf("first body line should be row 3: %q", lines[2])
	}
	if hit := g.HitTest(4, 2); hit.Row != 2 {
		t.Errorf("HitTest row = %d, want 2", hit.Row)
	}

	if _, ok := g.NextRow(2, -1); ok {
		t.Error("NextRow above the first visible row should fail")
	}
	if r, ok := g.NextRow(0, 1); !ok || r != 2 {
		t.Errorf("NextRow(hidden 0, 1) = %d, %v, want 2", r, ok)
	}
	if r, ok := g.NextRow(2, 1); !ok || r != 3 {
		t.Errorf("NextRow(2, 1) = %d, %v, want 3", r, ok)
	}
	if _, ok := g.NextRow(99, 1); ok {
		t.Error("NextRow past the last row should fail")
	}
}

func TestGrid_EnsureVisible(t *testing.T) {
	g := testGrid(60, 12)

	g.EnsureVisible(cell.Pos{Row: 50, Key: sheet.KeyValue})
	if g.RowOffset() != 41 {
		t.Errorf("RowOffset() = %d, want 41", g.RowOffset())
	}
	if g.ColOffset() != 6 {
		t.Errorf("ColOffset() = %d, want 6", g.ColOffset())
	}
	lines := gridLines(g)
	if !strings.Contains(lines[1], "Est. Value") {
		t.Errorf("value column should be visible: %q", lines[1])
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[len(lines)-1]), "51") {
		t.Errorf("last body line should be row 51: %q", lines[len(lines)-1])
	}

	g.EnsureVisible(cell.Pos{Row: 0, Key: sheet.KeyJob})
	if g.RowOffset() != 0 || g.ColOffset() != 1 {
		t.Errorf("offsets = %d,%d, want 0,1", g.RowOffset(), g.ColOffset())
	}
}

func TestGrid_ScrollToEnd(t *testing.T) {
	g := testGrid(60, 12)
	g.ScrollToEnd()

	if g.ColOffset() != 7 {
		t.Errorf("ColOffset() = %d, want 7", g.ColOffset())
	}
	if lines := gridLines(g); !strings.Contains(lines[1], "+") {
		t.Errorf("add-column slot should be visible: %q", lines[1])
	}
}

func TestGrid_ScrollRowsClamps(t *testing.T) {
	g := testGrid(200, 12)
	g.ScrollRows(-5)
	if g.RowOffset() != 0 {
		t.Errorf("RowOffset() = %d, want 0", g.RowOffset())
	}
	g.ScrollRows(1000)
	if g.RowOffset() != 90 {
		t.Errorf("RowOffset() = %d, want 90", g.RowOffset())
	}
}

func TestGrid_EditingCell(t *testing.T) {
	g := testGrid(200, 12)
	m := &cell.Machine{}
	g.SetMachine(m)

	s := sheet.Defaults()[0]
	m.DoubleClick(cell.Target{Pos: cell.Pos{Row: 1, Key: sheet.KeySubmitter}, Value: s.Rows[1].Submitter})
	if m.State() != cell.Editing {
		t.Fatalf("State() = %v, want editing", m.State())
	}

	lines := gridLines(g)
	if !strings.Contains(lines[3], "Irfan Khan") {
		t.Errorf("edited cell should show its text: %q", lines[3])
	}
}

func TestGrid_ChoiceEditing(t *testing.T) {
	g := testGrid(200, 12)
	m := &cell.Machine{}
	g.SetMachine(m)

	m.Click(cell.Target{Pos: cell.Pos{Row: 0, Key: sheet.KeyStatus}, Value: "In-process", Options: sheet.StatusOptions})
	if lines := gridLines(g); !strings.Contains(lines[2], "In-process ▾") {
		t.Errorf("choice cell being edited should show a dropdown marker: %q", lines[2])
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		align sheet.Align
		want  string
	}{
		{"left", "abc", 7, sheet.AlignLeft, " abc   "},
		{"right", "abc", 7, sheet.AlignRight, "   abc "},
		{"center", "ab", 8, sheet.AlignCenter, "   ab   "},
		{"truncated", "abcdefgh", 6, sheet.AlignLeft, " abc… "},
		{"too narrow", "abc", 2, sheet.AlignLeft, "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pad(tt.text, tt.width, tt.align); got != tt.want {
				t.Errorf("pad(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestEditText(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		cursor      int
		all         bool
		width       int
		contains    string
		notContains string
	}{
		{"cursor at end", "hello", 5, false, 10, "hello", ""},
		{"cursor in middle", "abc", 1, false, 10, "abc", ""},
		{"scrolls to cursor", "abcdefghijkl", 12, false, 8, "hijkl", "g"},
		{"all selected", "abc", 3, true, 10, "abc", ""},
		{"wide graphemes", "日本語テキスト", 7, false, 10, "キスト", "日"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := editText(tt.input, tt.cursor, tt.all, tt.width)
			plain := ansi.Strip(got)
			if w := ansi.StringWidth(plain); w != tt.width {
				t.Errorf("width = %d, want %d (%q)", w, tt.width, plain)
			}
			if !strings.Contains(plain, tt.contains) {
				t.Errorf("%q missing %q", plain, tt.contains)
			}
			if tt.notContains != "" && strings.Contains(plain, tt.notContains) {
				t.Errorf("%q should not contain %q", plain, tt.notContains)
			}
		})
	}
}
