package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/tally/internal/errors"
	"github.com/zhubert/tally/internal/logger"
	"github.com/zhubert/tally/internal/ui"
)

// ShowFlash puts text in the footer and starts the tick that clears it.
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, flashType)
	return ui.FlashTick()
}

func (m *Model) ShowFlashError(text string) tea.Cmd   { return m.ShowFlash(text, ui.FlashError) }
func (m *Model) ShowFlashWarning(text string) tea.Cmd { return m.ShowFlash(text, ui.FlashWarning) }
func (m *Model) ShowFlashInfo(text string) tea.Cmd    { return m.ShowFlash(text, ui.FlashInfo) }
func (m *Model) ShowFlashSuccess(text string) tea.Cmd { return m.ShowFlash(text, ui.FlashSuccess) }

// flashStorageFailure logs a failed write and warns in the footer. The
// workbook in memory stays as it is; the next successful save catches up.
func (m *Model) flashStorageFailure(text string, err error) tea.Cmd {
	logger.WithSheet(m.book.ActiveID()).Error("storage write failed",
		"kind", errors.GetKind(err).String(), "error", err)
	return m.ShowFlashWarning(text)
}

// handleFlashTick clears an expired flash or keeps the timer going.
func (m *Model) handleFlashTick() tea.Cmd {
	if m.footer.ClearIfExpired() {
		return nil
	}
	if m.footer.HasFlash() {
		return ui.FlashTick()
	}
	return nil
}
