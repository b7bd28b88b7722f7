package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestHeader_View(t *testing.T) {
	h := NewHeader()
	h.SetWidth(80)
	h.SetSheet("All Orders", "Q3 Financial Overview")

	view := ansi.Strip(h.View())
	for _, want := range []string{"tally", "Workspace › Folder 2 › All Orders", "Q3 Financial Overview"} {
		if !strings.Contains(view, want) {
			t.Errorf("header missing %q: %q", want, view)
		}
	}
	if w := ansi.StringWidth(view); w != 80 {
		t.Errorf("header width = %d, want 80", w)
	}
}

func TestHeader_SetSheetReplacesLastCrumb(t *testing.T) {
	h := NewHeader()
	h.SetWidth(80)
	h.SetSheet("All Orders", "")
	h.SetSheet("Pending", "")

	view := ansi.Strip(h.View())
	if strings.Contains(view, "All Orders") {
		t.Errorf("old sheet name still shown: %q", view)
	}
	if !strings.Contains(view, "Folder 2 › Pending") {
		t.Errorf("new sheet name missing: %q", view)
	}
}

func TestHeader_NarrowDropsTitle(t *testing.T) {
	h := NewHeader()
	h.SetWidth(40)
	h.SetSheet("All Orders", "Q3 Financial Overview")

	view := ansi.Strip(h.View())
	if strings.Contains(view, "Q3 Financial") {
		t.Errorf("title should be dropped when narrow: %q", view)
	}
	if w := ansi.StringWidth(view); w > 40 {
		t.Errorf("header width = %d, want <= 40", w)
	}
}

func TestParseHexColor(t *testing.T) {
	r, g, b := parseHexColor("#4B6A4F")
	if r != 0x4B || g != 0x6A || b != 0x4F {
		t.Errorf("parseHexColor = %d,%d,%d", r, g, b)
	}
	r, g, b = parseHexColor("nope")
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("invalid input should give zeros, got %d,%d,%d", r, g, b)
	}
}
