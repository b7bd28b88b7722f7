package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/tally/internal/sheet"
	"github.com/zhubert/tally/internal/ui/modals"
)

// Color palette, set from the active theme by regenerateStyles
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorBorder      color.Color
	ColorBg          color.Color
	ColorBgHeader    color.Color
	ColorBgSelected  color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorWarning     color.Color
	ColorError       color.Color
	ColorSuccess     color.Color
	ColorInfo        color.Color
	ColorCellCursor  color.Color
	ColorCellEditing color.Color
	ColorLink        color.Color
)

// Header and toolbar styles
var (
	HeaderCrumbStyle  lipgloss.Style
	HeaderTitleStyle  lipgloss.Style
	ToolStyle         lipgloss.Style
	ToolActiveStyle   lipgloss.Style
	ToolPrimaryStyle  lipgloss.Style
	ToolSeparatorText string
)

// Grid styles
var (
	GridCornerStyle     lipgloss.Style
	GridTitleBlockStyle lipgloss.Style
	GridFillerStyle     lipgloss.Style
	GridColumnStyle     lipgloss.Style
	GridAddColumnStyle  lipgloss.Style
	GridRowNumberStyle  lipgloss.Style
	GridCellStyle       lipgloss.Style
	GridCursorStyle     lipgloss.Style
	GridEditingStyle    lipgloss.Style
	GridLinkStyle       lipgloss.Style
)

// Tab styles
var (
	TabStyle       lipgloss.Style
	TabActiveStyle lipgloss.Style
	TabAddStyle    lipgloss.Style
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

// Status styles
var (
	StatusErrorStyle   lipgloss.Style
	StatusSuccessStyle lipgloss.Style
)

func init() {
	regenerateStyles()
}

func buildStyles() {
	HeaderCrumbStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)
	HeaderTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorText)

	ToolStyle = lipgloss.NewStyle().Foreground(ColorText).Padding(0, 1)
	ToolActiveStyle = ToolStyle.Background(ColorBgSelected).Foreground(ColorTextInverse)
	ToolPrimaryStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)
	ToolSeparatorText = lipgloss.NewStyle().Foreground(ColorBorder).Render("│")

	GridCornerStyle = lipgloss.NewStyle().Background(ColorBgHeader)
	GridTitleBlockStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorBgHeader)
	GridFillerStyle = lipgloss.NewStyle().Background(ColorBg)
	GridColumnStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextMuted).
		Background(ColorBgHeader)
	GridAddColumnStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary).
		Background(ColorBgHeader)
	GridRowNumberStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)
	GridCellStyle = lipgloss.NewStyle().Foreground(ColorText)
	GridCursorStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorCellCursor).
		Bold(true)
	GridEditingStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorCellEditing)
	GridLinkStyle = lipgloss.NewStyle().Foreground(ColorLink).Underline(true)

	TabStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Padding(0, 2)
	TabActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary).
		Background(ColorBgHeader).
		Padding(0, 2)
	TabAddStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Padding(0, 1)
	FooterKeyStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary)
	FooterDescStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary).
		MarginBottom(1)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusErrorStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StatusSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)

	modals.SetStyles(modals.Styles{
		Title:        ModalTitleStyle,
		Help:         ModalHelpStyle,
		Item:         lipgloss.NewStyle().Padding(0, 1),
		ItemSelected: lipgloss.NewStyle().Background(ColorBgSelected).Foreground(ColorText).Bold(true).Padding(0, 1),
		Error:        StatusErrorStyle,
		Success:      StatusSuccessStyle,

		Primary:     ColorPrimary,
		Secondary:   ColorSecondary,
		Text:        ColorText,
		TextMuted:   ColorTextMuted,
		TextInverse: ColorTextInverse,
		Warning:     ColorWarning,
		Border:      ColorBorder,

		InputWidth:     ModalInputWidth,
		InputCharLimit: ModalInputCharLimit,
		Width:          ModalWidth,
		WidthWide:      ModalWidthWide,
		PreviewHeight:  ExportPreviewHeight,
		HelpMaxVisible: HelpModalMaxVisible,
	})
}

// Choice chip colors, as foreground/background pairs. Priority values only
// color the text.
var (
	statusChips = map[string][2]string{
		"In-process":    {"#85640B", "#FFF3D6"},
		"Need to start": {"#475569", "#E2E8F0"},
		"Complete":      {"#0A6E3D", "#D3F2E3"},
		"Blocked":       {"#C22219", "#FFE1DE"},
	}
	priorityColors = map[string]string{
		"High":   "#EF4D44",
		"Medium": "#C29210",
		"Low":    "#1A8CFF",
	}
)

// ChoiceStyle returns the style a choice value is drawn with, and whether
// the value has one.
func ChoiceStyle(key, value string) (lipgloss.Style, bool) {
	switch key {
	case sheet.KeyStatus:
		if c, ok := statusChips[value]; ok {
			return lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(c[0])).
				Background(lipgloss.Color(c[1])), true
		}
	case sheet.KeyPriority:
		if c, ok := priorityColors[value]; ok {
			return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c)), true
		}
	}
	return lipgloss.Style{}, false
}

// GroupStyle returns the fill style for a header group segment. Group
// colors are light pastels, so the text is always dark.
func GroupStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#121212")).
		Background(lipgloss.Color(hex))
}
