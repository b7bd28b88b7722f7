package modals

import (
	"image/color"

	"charm.land/bubbles/v2/help"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// ModalTheme styles huh prompts (the import picker and the clean
// confirmation) with the same palette as the TUI's modals.
func ModalTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)
		paintFocused(&t.Focused)

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base
		t.Blurred.NextIndicator = lipgloss.NewStyle()
		t.Blurred.PrevIndicator = lipgloss.NewStyle()

		t.Group.Title = fg(ColorSecondary).Bold(true)
		t.Group.Description = fg(ColorTextMuted)
		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")
		t.Help = help.New().Styles
		return t
	})
}

func fg(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// paintFocused styles the field that has focus: a primary-colored bar on
// the left, a highlighted button and a marked option.
func paintFocused(f *huh.FieldStyles) {
	f.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(ColorPrimary)
	f.Card = f.Base
	f.Title = fg(ColorText).Bold(true)
	f.Description = fg(ColorTextMuted).Italic(true)
	f.ErrorIndicator = fg(ColorWarning).SetString(" *")
	f.ErrorMessage = fg(ColorWarning)

	f.SelectSelector = fg(ColorPrimary).SetString("> ")
	f.Option = fg(ColorText)
	f.SelectedOption = fg(ColorSecondary)
	f.NextIndicator = fg(ColorPrimary).MarginLeft(1).SetString("→")
	f.PrevIndicator = fg(ColorPrimary).MarginRight(1).SetString("←")

	button := lipgloss.NewStyle().Padding(0, 2).MarginRight(1)
	f.FocusedButton = button.Foreground(ColorTextInverse).Background(ColorPrimary)
	f.BlurredButton = button.Foreground(ColorTextMuted)
}
