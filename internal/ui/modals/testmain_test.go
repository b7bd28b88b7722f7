package modals

import (
	"os"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/tally/internal/logger"
)

func TestMain(m *testing.M) {
	// Keep test runs out of /tmp/tally-debug.log
	logger.Reset()
	logger.Init(os.DevNull)

	SetStyles(Styles{
		Title:        lipgloss.NewStyle(),
		Help:         lipgloss.NewStyle(),
		Item:         lipgloss.NewStyle(),
		ItemSelected: lipgloss.NewStyle(),
		Error:        lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle(),

		Primary:     lipgloss.Color("#4B6A4F"),
		Secondary:   lipgloss.Color("#8FBC94"),
		Text:        lipgloss.Color("#F2F4F3"),
		TextMuted:   lipgloss.Color("#9AA5A0"),
		TextInverse: lipgloss.Color("#1C2321"),
		Warning:     lipgloss.Color("#F5B83D"),
		Border:      lipgloss.Color("#3A4540"),

		InputWidth:     40,
		InputCharLimit: 64,
		Width:          60,
		WidthWide:      90,
		PreviewHeight:  12,
		HelpMaxVisible: 16,
	})

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}
