// Package ui provides theme management for the application.
// Themes define the color palette used throughout the UI, allowing users
// to customize the visual appearance of tally.
package ui

import (
	"sort"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/tally/internal/errors"
)

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (header, focus, selected cell border)
	Primary string
	// Secondary is the secondary accent color (key hints, active tab)
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Selected item background (defaults to Primary if empty)
	BgHeader   string // Column title row

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	Warning string
	Error   string
	Success string
	Info    string

	// Grid colors
	Border      string // Cell separators and panel borders
	CellCursor  string // Selected cell background
	CellEditing string // Cell being edited
	Link        string // URL column text
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeDarkGreen ThemeName = "dark-green"
	ThemeNord      ThemeName = "nord"
	ThemeDracula   ThemeName = "dracula"
	ThemeLight     ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDarkGreen

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDarkGreen: {
		Name:        "Dark Green",
		Primary:     "#4B6A4F",
		Secondary:   "#8FBC94",
		Bg:          "#1C2321",
		BgHeader:    "#2A332F",
		Text:        "#F2F4F3",
		TextMuted:   "#9AA5A0",
		TextInverse: "#1C2321",
		Warning:     "#F5B83D",
		Error:       "#EF4D44",
		Success:     "#3CB371",
		Info:        "#1A8CFF",
		Border:      "#3A4540",
		CellCursor:  "#34503A",
		CellEditing: "#1E3A5F",
		Link:        "#7FB3FF",
	},
	ThemeNord: {
		Name:        "Nord",
		Primary:     "#5E81AC",
		Secondary:   "#88C0D0",
		Bg:          "#2E3440",
		BgHeader:    "#3B4252",
		Text:        "#ECEFF4",
		TextMuted:   "#D8DEE9",
		TextInverse: "#2E3440",
		Warning:     "#EBCB8B",
		Error:       "#BF616A",
		Success:     "#A3BE8C",
		Info:        "#81A1C1",
		Border:      "#4C566A",
		CellCursor:  "#434C5E",
		CellEditing: "#4C566A",
		Link:        "#88C0D0",
	},
	ThemeDracula: {
		Name:        "Dracula",
		Primary:     "#BD93F9",
		Secondary:   "#8BE9FD",
		Bg:          "#282A36",
		BgHeader:    "#343746",
		Text:        "#F8F8F2",
		TextMuted:   "#6272A4",
		TextInverse: "#282A36",
		Warning:     "#FFB86C",
		Error:       "#FF5555",
		Success:     "#50FA7B",
		Info:        "#8BE9FD",
		Border:      "#44475A",
		CellCursor:  "#44475A",
		CellEditing: "#6272A4",
		Link:        "#8BE9FD",
	},
	ThemeLight: {
		Name:        "Light",
		Primary:     "#4B6A4F",
		Secondary:   "#0A6E3D",
		BgSelected:  "#D2E0D4",
		Bg:          "#FFFFFF",
		BgHeader:    "#EEEEEE",
		Text:        "#121212",
		TextMuted:   "#757575",
		TextInverse: "#FFFFFF",
		Warning:     "#C29210",
		Error:       "#C22219",
		Success:     "#0A6E3D",
		Info:        "#1A8CFF",
		Border:      "#EEEEEE",
		CellCursor:  "#E8F0E9",
		CellEditing: "#E3F2FD",
		Link:        "#1A8CFF",
	},
}

// currentThemeName tracks the active theme
var currentThemeName = DefaultTheme

// CurrentTheme returns the active theme
func CurrentTheme() Theme {
	return BuiltinThemes[currentThemeName]
}

// CurrentThemeName returns the name of the active theme
func CurrentThemeName() ThemeName {
	return currentThemeName
}

// ThemeNames returns all theme names in sorted order
func ThemeNames() []ThemeName {
	names := make([]ThemeName, 0, len(BuiltinThemes))
	for name := range BuiltinThemes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// SetTheme switches the active theme and regenerates all styles.
// An empty name selects the default theme.
func SetTheme(name ThemeName) error {
	if name == "" {
		name = DefaultTheme
	}
	if _, ok := BuiltinThemes[name]; !ok {
		return errors.E(errors.Op("ui.SetTheme"), errors.KindInvalid, "unknown theme "+string(name))
	}
	currentThemeName = name
	regenerateStyles()
	return nil
}

// regenerateStyles rebuilds every style from the active theme
func regenerateStyles() {
	t := CurrentTheme()

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBg = lipgloss.Color(t.Bg)
	ColorBgHeader = lipgloss.Color(t.BgHeader)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)
	ColorInfo = lipgloss.Color(t.Info)
	ColorCellCursor = lipgloss.Color(t.CellCursor)
	ColorCellEditing = lipgloss.Color(t.CellEditing)
	ColorLink = lipgloss.Color(t.Link)
	ColorBgSelected = lipgloss.Color(t.GetBgSelected())

	buildStyles()
}
