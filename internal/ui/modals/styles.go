package modals

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Styles carries the parent ui package's theme into this package.
type Styles struct {
	Title, Help, Item, ItemSelected, Error, Success lipgloss.Style

	Primary, Secondary, Text, TextMuted, TextInverse, Warning, Border color.Color

	InputWidth, InputCharLimit, Width, WidthWide, PreviewHeight, HelpMaxVisible int
}

// Style variables - these are set by the parent ui package via SetStyles
var (
	ModalTitleStyle    lipgloss.Style
	ModalHelpStyle     lipgloss.Style
	ItemStyle          lipgloss.Style
	ItemSelectedStyle  lipgloss.Style
	StatusErrorStyle   lipgloss.Style
	StatusSuccessStyle lipgloss.Style

	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorWarning     color.Color
	ColorBorder      color.Color

	ModalInputWidth     = 40
	ModalInputCharLimit = 64
	ModalWidth          = 60
	ModalWidthWide      = 90
	PreviewHeight       = 12
	HelpModalMaxVisible = 16
)

// SetStyles sets the style variables from the parent ui package.
// This must be called before rendering any modals.
func SetStyles(s Styles) {
	ModalTitleStyle = s.Title
	ModalHelpStyle = s.Help
	ItemStyle = s.Item
	ItemSelectedStyle = s.ItemSelected
	StatusErrorStyle = s.Error
	StatusSuccessStyle = s.Success

	ColorPrimary = s.Primary
	ColorSecondary = s.Secondary
	ColorText = s.Text
	ColorTextMuted = s.TextMuted
	ColorTextInverse = s.TextInverse
	ColorWarning = s.Warning
	ColorBorder = s.Border

	ModalInputWidth = s.InputWidth
	ModalInputCharLimit = s.InputCharLimit
	ModalWidth = s.Width
	ModalWidthWide = s.WidthWide
	PreviewHeight = s.PreviewHeight
	HelpModalMaxVisible = s.HelpMaxVisible
}
