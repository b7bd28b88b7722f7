package modals

import (
	"slices"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/tally/internal/export"
	"github.com/zhubert/tally/internal/layout"
	"github.com/zhubert/tally/internal/sheet"
)

func press(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func shiftTab() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
}

func TestNewActionState_FocusCycle(t *testing.T) {
	s := sheet.New(1)
	state := NewNewActionState(s.Columns(), s.HeaderGroups)

	if state.Focus() != FieldName {
		t.Fatalf("initial focus = %v, want FieldName", state.Focus())
	}

	want := []NewActionField{FieldColor, FieldColumns, FieldSelected, FieldName}
	for _, w := range want {
		state.Update(press(tea.KeyTab))
		if state.Focus() != w {
			t.Errorf("focus = %v, want %v", state.Focus(), w)
		}
	}

	state.Update(shiftTab())
	if state.Focus() != FieldSelected {
		t.Errorf("shift+tab focus = %v, want FieldSelected", state.Focus())
	}
}

func TestNewActionState_ColorPicker(t *testing.T) {
	state := NewNewActionState(sheet.New(1).Columns(), nil)
	state.SetFocus(FieldColor)

	state.Update(press(tea.KeyRight))
	if got := state.Color(); got != layout.Palette[1] {
		t.Errorf("Color() = %v, want %v", got, layout.Palette[1])
	}

	state.Update(press(tea.KeyLeft))
	state.Update(press(tea.KeyLeft))
	if got := state.Color(); got != layout.Palette[len(layout.Palette)-1] {
		t.Errorf("Color() after wrap = %v, want last palette entry", got)
	}
}

func TestNewActionState_SelectContiguousColumns(t *testing.T) {
	state := NewNewActionState(sheet.New(1).Columns(), nil)
	state.SetFocus(FieldColumns)

	// url, assigned, priority, due, value
	state.Update(press(tea.KeySpace))
	state.Update(press(tea.KeyDown))
	state.Update(press(tea.KeySpace))

	if got := state.Selection(); !slices.Equal(got, []string{sheet.KeyURL, sheet.KeyAssigned}) {
		t.Fatalf("Selection() = %v", got)
	}

	if res := state.Toggle(sheet.KeyDue); res != layout.Rejected {
		t.Errorf("Toggle(due) = %v, want rejected", res)
	}
	if state.Notice() == "" {
		t.Error("expected a notice after a rejected click")
	}

	if res := state.Toggle(sheet.KeyPriority); res != layout.Extended {
		t.Errorf("Toggle(priority) = %v, want extended", res)
	}
	if state.Notice() != "" {
		t.Errorf("notice should clear after an accepted click, got %q", state.Notice())
	}
}

func TestNewActionState_RemoveFromSelected(t *testing.T) {
	state := NewNewActionState(sheet.New(1).Columns(), nil)
	state.Toggle(sheet.KeyAssigned)
	state.Toggle(sheet.KeyPriority)
	state.Toggle(sheet.KeyDue)

	state.SetFocus(FieldSelected)
	state.Update(press(tea.KeyDown))
	state.Update(press(tea.KeyDelete))

	if got := state.Selection(); !slices.Equal(got, []string{sheet.KeyAssigned}) {
		t.Errorf("Selection() after removing priority = %v, want [assigned]", got)
	}

	if res := state.Remove(sheet.KeyValue); res != layout.Unknown {
		t.Errorf("Remove(unselected) = %v, want unknown", res)
	}
}

func TestNewActionState_Build(t *testing.T) {
	state := NewNewActionState(sheet.New(1).Columns(), nil)

	if state.Ready() {
		t.Error("empty builder should not be ready")
	}
	if _, err := state.Build(); err == nil {
		t.Error("Build() with no name should fail")
	}

	state.Name.SetValue("  Review  ")
	state.SetColor(2)
	state.Toggle(sheet.KeyDue)
	state.Toggle(sheet.KeyValue)

	if !state.Ready() {
		t.Fatal("builder should be ready")
	}
	g, err := state.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if g.Name != "Review" {
		t.Errorf("Name = %q, want Review", g.Name)
	}
	if g.Color != layout.Palette[2].Value {
		t.Errorf("Color = %q, want %q", g.Color, layout.Palette[2].Value)
	}
	if !strings.HasPrefix(g.ID, "header-") {
		t.Errorf("ID = %q, want header- prefix", g.ID)
	}
	if !slices.Equal([]string(g.ColumnSpans), []string{sheet.KeyDue, sheet.KeyValue}) {
		t.Errorf("ColumnSpans = %v", g.ColumnSpans)
	}
}

func TestNewActionState_AllColumnsGrouped(t *testing.T) {
	s := sheet.Defaults()[0]
	// assigned, priority, due and value are grouped; only url is left
	state := NewNewActionState(s.Columns(), s.HeaderGroups)
	state.SetFocus(FieldColumns)
	view := state.Render()
	if !strings.Contains(view, "URL") {
		t.Errorf("expected URL in picker:\n%s", view)
	}

	s.HeaderGroups = append(s.HeaderGroups, sheet.HeaderGroup{ID: "u", Name: "U", ColumnSpans: sheet.ColumnRefs{sheet.KeyURL}})
	state = NewNewActionState(s.Columns(), s.HeaderGroups)
	if view := state.Render(); !strings.Contains(view, "Every column already belongs to an action") {
		t.Errorf("expected empty-picker message:\n%s", view)
	}
}

func TestImportState(t *testing.T) {
	templates := sheet.Templates()
	state := NewImportState(templates)

	got, ok := state.Selected()
	if !ok || got.ID != "template-1" {
		t.Fatalf("Selected() = %q, %v", got.ID, ok)
	}

	state.Update(press(tea.KeyDown))
	if got, _ := state.Selected(); got.ID != "template-2" {
		t.Errorf("after down Selected() = %q, want template-2", got.ID)
	}

	state.Update(press(tea.KeyUp))
	state.Update(press(tea.KeyUp))
	if got, _ := state.Selected(); got.ID != "template-3" {
		t.Errorf("after wrap Selected() = %q, want template-3", got.ID)
	}

	view := state.Render()
	for _, want := range []string{"Q3 Financial Data", "Pending Reviews", "Completed Projects", "100 rows"} {
		if !strings.Contains(view, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}

func TestImportState_Empty(t *testing.T) {
	state := NewImportState(nil)
	state.Update(press(tea.KeyDown))
	if _, ok := state.Selected(); ok {
		t.Error("Selected() should report nothing for an empty list")
	}
}

func TestShareState(t *testing.T) {
	state := NewShareState("Q3 Financial Overview", "https://example.com/share")

	if state.Title() != `Share "Q3 Financial Overview"` {
		t.Errorf("Title() = %q", state.Title())
	}
	view := state.Render()
	if !strings.Contains(view, "https://example.com/share") {
		t.Errorf("Render() missing link:\n%s", view)
	}
	if !strings.Contains(view, "Copy link") {
		t.Errorf("Render() missing copy button:\n%s", view)
	}

	state.SetCopied(true)
	if !state.Copied() {
		t.Error("Copied() = false after SetCopied(true)")
	}
	if view := state.Render(); !strings.Contains(view, "Copied!") {
		t.Errorf("Render() missing Copied!:\n%s", view)
	}
}

func TestHideRowsState(t *testing.T) {
	state := NewHideRowsState(20, []int{3, 25, -1})

	if got := state.Hidden(); !slices.Equal(got, []int{3}) {
		t.Fatalf("Hidden() = %v, want [3]", got)
	}

	state.Update(press(tea.KeySpace))
	if got := state.Hidden(); !slices.Equal(got, []int{0, 3}) {
		t.Errorf("Hidden() after toggle = %v, want [0 3]", got)
	}

	state.Update(press(tea.KeySpace))
	if got := state.Hidden(); !slices.Equal(got, []int{3}) {
		t.Errorf("Hidden() after second toggle = %v, want [3]", got)
	}

	// Up from the first row wraps to "Show all".
	state.Update(press(tea.KeyUp))
	state.Update(press(tea.KeyEnter))
	if got := state.Hidden(); len(got) != 0 {
		t.Errorf("Hidden() after Show all = %v, want none", got)
	}
}

func TestHideRowsState_ToggleOutOfRange(t *testing.T) {
	state := NewHideRowsState(20, nil)
	state.Toggle(20)
	state.Toggle(-1)
	if got := state.Hidden(); len(got) != 0 {
		t.Errorf("Hidden() = %v, want none", got)
	}
}

func TestHideRowsState_RenderScrolls(t *testing.T) {
	state := NewHideRowsState(20, nil)
	if view := state.Render(); !strings.Contains(view, "Row 1") || strings.Contains(view, "Row 20") {
		t.Errorf("first window should show Row 1 but not Row 20:\n%s", view)
	}

	state.SetCursor(20)
	view := state.Render()
	if !strings.Contains(view, "Show all") || !strings.Contains(view, "Row 20") {
		t.Errorf("last window should show Row 20 and Show all:\n%s", view)
	}
}

func TestExportState_Formats(t *testing.T) {
	s := sheet.Defaults()[0]
	state := NewExportState(s, t.TempDir())

	if state.Selected() != export.FormatJSON {
		t.Fatalf("Selected() = %v, want json", state.Selected())
	}
	if !strings.HasPrefix(state.PreviewContent(), "{") {
		t.Errorf("json preview should start with {, got %.20q", state.PreviewContent())
	}

	state.Update(press(tea.KeyDown))
	if state.Selected() != export.FormatCSV {
		t.Errorf("Selected() = %v, want csv", state.Selected())
	}
	if !strings.HasPrefix(state.PreviewContent(), "Row,Job Request,") {
		t.Errorf("csv preview = %.40q", state.PreviewContent())
	}

	state.Update(press(tea.KeyDown))
	if state.Selected() != export.FormatXLSX {
		t.Errorf("Selected() = %v, want xlsx", state.Selected())
	}
	preview := state.PreviewContent()
	for _, want := range []string{`Worksheet "All Orders"`, "Q3 Financial Overview (4 columns)", "ABC (1 columns, #D2E0D4)", "Rows 3-102"} {
		if !strings.Contains(preview, want) {
			t.Errorf("xlsx outline missing %q:\n%s", want, preview)
		}
	}

	state.Update(press(tea.KeyDown))
	if state.Selected() != export.FormatJSON {
		t.Errorf("Selected() after wrap = %v, want json", state.Selected())
	}
}

func TestExportState_PreviewTruncated(t *testing.T) {
	state := NewExportState(sheet.Defaults()[0], "/tmp/out")
	lines := strings.Split(state.PreviewContent(), "\n")
	if len(lines) != previewMaxLines+1 || lines[len(lines)-1] != "…" {
		t.Errorf("preview has %d lines, want %d ending in …", len(lines), previewMaxLines+1)
	}
}

func TestExportState_Render(t *testing.T) {
	state := NewExportState(sheet.Defaults()[0], "/tmp/out")
	view := state.Render()
	for _, want := range []string{"Export as JSON", "Export as CSV", "Export as Excel", "Saves to /tmp/out/All_Orders.json"} {
		if !strings.Contains(view, want) {
			t.Errorf("Render() missing %q", want)
		}
	}

	state.SetError("disk full")
	if !strings.Contains(state.Render(), "disk full") {
		t.Error("Render() should show the error")
	}
}

func TestHighlight_FallsBackForUnknownLanguage(t *testing.T) {
	out := highlight("plain words", "no-such-language")
	if !strings.Contains(out, "plain") {
		t.Errorf("highlight() lost the text: %q", out)
	}
}
