package modals

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// ShareState is the share popover: a read-only link and a copy button that
// says "Copied!" for a moment after a successful copy.
type ShareState struct {
	SheetTitle string
	Link       string
	copied     bool
}

func (*ShareState) modalState() {}

func (s *ShareState) Title() string { return "Share \"" + s.SheetTitle + "\"" }

func (s *ShareState) Help() string {
	return "Enter/c: copy link  Esc: close"
}

func (s *ShareState) Render() string {
	intro := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Render("Anyone with the link can view this spreadsheet")

	label := lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true).
		MarginTop(1).
		Render("Link to share")

	link := lipgloss.NewStyle().
		Foreground(ColorText).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1).
		Render(clip(s.Link, ModalWidth-10))

	button := lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Padding(0, 2).
		Render("Copy link")
	if s.copied {
		button = StatusSuccessStyle.Padding(0, 2).Render("✓ Copied!")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		ModalTitleStyle.Render(s.Title()),
		intro,
		label,
		link,
		button,
		ModalHelpStyle.Render(s.Help()),
	)
}

func (s *ShareState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, nil
}

// SetCopied switches the button between "Copy link" and "Copied!".
func (s *ShareState) SetCopied(copied bool) { s.copied = copied }

// Copied reports whether the button says "Copied!".
func (s *ShareState) Copied() bool { return s.copied }

// NewShareState opens the popover for a sheet title and link.
func NewShareState(sheetTitle, link string) *ShareState {
	return &ShareState{SheetTitle: sheetTitle, Link: link}
}
