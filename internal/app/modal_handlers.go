package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/tally/internal/keys"
	"github.com/zhubert/tally/internal/logger"
	"github.com/zhubert/tally/internal/ui"
	"github.com/zhubert/tally/internal/ui/modals"
)

// handleModalKey routes a key press to the handler of the open modal.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch s := m.modal.State.(type) {
	case *modals.HelpState:
		return m.handleHelpModal(key, msg, s)
	case *modals.NewActionState:
		return m.handleNewActionModal(key, msg, s)
	case *modals.ImportState:
		return m.handleImportModal(key, msg, s)
	case *modals.ExportState:
		return m.handleExportModal(key, msg, s)
	case *modals.ShareState:
		return m.handleShareModal(key, msg, s)
	case *modals.HideRowsState:
		return m.handleHideRowsModal(key, msg, s)
	}
	return m, nil
}

// closeModal hides the modal and releases the toolbar button.
func (m *Model) closeModal() {
	m.modal.Hide()
	m.toolbar.SetActive(ui.ToolNone)
}

// forwardToModal lets the modal's own state handle msg.
func (m *Model) forwardToModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpModal handles key events for the Help modal.
func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *modals.HelpState) (tea.Model, tea.Cmd) {
	// While filtering, forward all keys to the list (Esc cancels filter, Enter applies)
	if state.IsFiltering() {
		return m.forwardToModal(msg)
	}

	switch key {
	case keys.Escape, keys.F1, keys.CtrlSlash:
		m.closeModal()
		return m, nil
	case keys.Enter:
		// Trigger the selected shortcut
		shortcut := state.GetSelectedShortcut()
		if shortcut != nil {
			m.closeModal()
			return m, func() tea.Msg {
				return modals.HelpShortcutTriggeredMsg{Key: shortcut.Key}
			}
		}
		return m, nil
	}
	// Forward navigation keys to the modal
	return m.forwardToModal(msg)
}

// handleHelpShortcutTrigger handles shortcuts triggered from the help modal.
// It maps display keys back to bindings and delegates to the shortcut registry.
func (m *Model) handleHelpShortcutTrigger(displayKey string) (tea.Model, tea.Cmd) {
	key := normalizeHelpDisplayKey(displayKey)
	if key == "" {
		return m, nil // Display-only shortcut, no action
	}
	result, cmd, _ := m.ExecuteShortcut(key)
	return result, cmd
}

// normalizeHelpDisplayKey converts a help modal display key to the binding
// it stands for. Returns "" for display-only entries.
func normalizeHelpDisplayKey(displayKey string) string {
	if displayKey == helpShortcut.DisplayKey {
		return helpShortcut.Key
	}
	for _, s := range ShortcutRegistry {
		if s.DisplayKey == displayKey || s.Key == displayKey {
			return s.Key
		}
	}
	return ""
}

// handleNewActionModal handles key events for the New Action modal.
func (m *Model) handleNewActionModal(key string, msg tea.KeyPressMsg, state *modals.NewActionState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.closeModal()
		return m, nil
	case keys.Enter:
		g, err := state.Build()
		if err != nil {
			m.modal.SetError(err.Error())
			return m, nil
		}
		m.closeModal()
		logger.WithSheet(m.book.ActiveID()).Info("action added", "id", g.ID, "name", g.Name, "columns", len(g.ColumnSpans))
		return m, tea.Batch(m.setBook(m.book.AddHeaderGroup(g)), m.ShowFlashSuccess("Added action "+g.Name))
	}
	m.modal.SetError("")
	return m.forwardToModal(msg)
}

// handleImportModal handles key events for the Import modal.
func (m *Model) handleImportModal(key string, msg tea.KeyPressMsg, state *modals.ImportState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.closeModal()
		return m, nil
	case keys.Enter:
		tpl, ok := state.Selected()
		if !ok {
			return m, nil
		}
		m.closeModal()
		m.machine.Reset()
		cmd := m.setBook(m.book.Import(tpl, time.Now()))
		logger.WithComponent("app").Info("template imported", "template", tpl.ID, "id", m.book.ActiveID())
		return m, tea.Batch(cmd, scrollCmd(ScrollTabsEnd), m.ShowFlashSuccess("Imported "+tpl.Name))
	}
	return m.forwardToModal(msg)
}

// handleExportModal handles key events for the Export modal.
func (m *Model) handleExportModal(key string, msg tea.KeyPressMsg, state *modals.ExportState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.closeModal()
		return m, nil
	case keys.Enter:
		return m, exportCmd(m.config.GetExportDir(), state.Sheet, state.Selected())
	}
	return m.forwardToModal(msg)
}

// handleShareModal handles key events for the Share popover.
func (m *Model) handleShareModal(key string, msg tea.KeyPressMsg, state *modals.ShareState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.closeModal()
		return m, nil
	case keys.Enter, keys.Space:
		return m, copyCmd("link", state.Link)
	}
	return m.forwardToModal(msg)
}

// handleHideRowsModal handles key events for the Hide rows popover. Every
// change applies to the grid right away.
func (m *Model) handleHideRowsModal(key string, msg tea.KeyPressMsg, state *modals.HideRowsState) (tea.Model, tea.Cmd) {
	if key == keys.Escape {
		m.closeModal()
		return m, nil
	}
	result, cmd := m.forwardToModal(msg)
	m.applyHiddenRows(state.Hidden())
	return result, cmd
}

// applyHiddenRows hides rows in the grid and drops a selection that became
// hidden.
func (m *Model) applyHiddenRows(rows []int) {
	m.grid.SetHidden(rows)
	m.toolbar.SetHiddenCount(len(rows))
	if p, ok := m.machine.Pos(); ok && m.grid.IsHidden(p.Row) {
		m.machine.Reset()
	}
}

// handleExportDone reports an export result.
func (m *Model) handleExportDone(msg ExportDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.WithComponent("export").Error("export failed", "sheet", msg.SheetName, "format", string(msg.Format), "error", msg.Err)
		if state, ok := m.modal.State.(*modals.ExportState); ok {
			state.SetError(msg.Err.Error())
		}
		return m, m.ShowFlashError("Export failed")
	}

	logger.WithComponent("export").Info("exported", "sheet", msg.SheetName, "path", msg.Path)
	if _, ok := m.modal.State.(*modals.ExportState); ok {
		m.closeModal()
	}
	if m.config.GetNotificationsEnabled() {
		return m, tea.Batch(m.ShowFlashSuccess("Exported to "+msg.Path), notifyCmd(msg.SheetName, msg.Path))
	}
	return m, m.ShowFlashSuccess("Exported to " + msg.Path)
}

// handleClipboardWritten reports a clipboard write.
func (m *Model) handleClipboardWritten(msg ClipboardWrittenMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.WithComponent("clipboard").Warn("copy failed", "what", msg.What, "error", msg.Err)
		return m, m.ShowFlashWarning("Could not copy to the clipboard")
	}
	if msg.What == "link" {
		if state, ok := m.modal.State.(*modals.ShareState); ok {
			state.SetCopied(true)
			return m, copiedResetCmd()
		}
		return m, nil
	}
	return m, m.ShowFlashInfo("Copied the sheet title")
}
