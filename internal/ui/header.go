package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// appTitle leads the breadcrumb and is drawn bold.
const appTitle = " tally"

// crumbSeparator joins breadcrumb parts
const crumbSeparator = " › "

// Header represents the top breadcrumb bar
type Header struct {
	width      int
	crumbs     []string
	sheetTitle string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{crumbs: []string{"Workspace", "Folder 2"}}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetSheet sets the active sheet's name (the last crumb) and title
func (h *Header) SetSheet(name, title string) {
	h.crumbs = append(h.crumbs[:2:2], name)
	h.sheetTitle = title
}

// View renders the header
func (h *Header) View() string {
	left := appTitle + "  " + strings.Join(h.crumbs, crumbSeparator)
	var right string
	if h.sheetTitle != "" {
		right = h.sheetTitle + " "
	}

	paddingLen := h.width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if paddingLen < 1 {
		// Drop the title before the crumbs
		right = ""
		paddingLen = max(h.width-runewidth.StringWidth(left), 0)
	}
	content := left + strings.Repeat(" ", paddingLen) + right
	if h.width > 0 {
		content = runewidth.Truncate(content, h.width, "…")
	}

	mutedFrom := len([]rune(appTitle))
	mutedTo := mutedFrom + len([]rune(left)) - len([]rune(appTitle))
	if n := len(h.crumbs); n > 0 {
		// The current sheet stays bright
		mutedTo -= len([]rune(h.crumbs[n-1]))
	}
	return renderGradient(content, mutedFrom, mutedTo)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders content over a background fading from the theme's
// primary color to its background. Runes in [mutedFrom, mutedTo) use the
// muted text color.
func renderGradient(content string, mutedFrom, mutedTo int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	runes := []rune(content)
	width := len(runes)
	titleLen := len([]rune(appTitle))
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < titleLen)

		if i >= mutedFrom && i < mutedTo {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
