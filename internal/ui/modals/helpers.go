package modals

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// renderChoices draws one line per item, marking the one under the cursor.
func renderChoices(items []string, cursor int) string {
	lines := make([]string, len(items))
	for i, item := range items {
		if i == cursor {
			lines[i] = ItemSelectedStyle.Render("> " + item)
			continue
		}
		lines[i] = ItemStyle.Render("  " + item)
	}
	return strings.Join(lines, "\n")
}

// clip shortens s to width display cells, ending in an ellipsis when cut.
func clip(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

// wrapIndex keeps a list cursor inside [0, n).
func wrapIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}
