// Package modals holds the dialogs and toolbar popovers that sit over the
// grid: help, export, import, share, hide rows and new action. The app
// switches on the concrete state type to route keys and read results.
package modals

import (
	tea "charm.land/bubbletea/v2"
)

// ModalState is implemented only by the state types in this package.
type ModalState interface {
	modalState()
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// ModalWithPreferredWidth lets a state ask for a wider or narrower frame
// than ModalWidth.
type ModalWithPreferredWidth interface {
	ModalState
	PreferredWidth() int
}

// HelpShortcut is one row of the help listing.
type HelpShortcut struct {
	Key  string // as displayed, e.g. "ctrl-n"
	Desc string
}

// HelpSection groups the shortcuts of one category.
type HelpSection struct {
	Title     string
	Shortcuts []HelpShortcut
}

// HelpShortcutTriggeredMsg asks the app to run the shortcut picked in help.
type HelpShortcutTriggeredMsg struct {
	Key string
}
