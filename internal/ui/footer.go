package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/tally/internal/cell"
)

// DefaultFlashDuration is how long a flash message stays up
const DefaultFlashDuration = FlashDuration

// FlashType categorizes a flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// FlashMessage is a transient footer message
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message should be cleared
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) > f.Duration
}

// FlashTickMsg is sent periodically while a flash message is up
type FlashTickMsg time.Time

// FlashTick returns a command that checks flash expiry after a short delay
func FlashTick() tea.Cmd {
	return tea.Tick(FlashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom bar with key hints or a flash message
type Footer struct {
	width        int
	bindings     []KeyBinding
	state        cell.State
	choice       bool
	modalOpen    bool
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "arrows", Desc: "move"},
			{Key: "ctrl+←/→", Desc: "sheet"},
			{Key: "ctrl+g", Desc: "new action"},
			{Key: "ctrl+e", Desc: "export"},
			{Key: "ctrl+s", Desc: "share"},
			{Key: "ctrl+/", Desc: "help"},
			{Key: "ctrl+c", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(state cell.State, choice, modalOpen bool) {
	f.state = state
	f.choice = choice
	f.modalOpen = modalOpen
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows a flash message for the default duration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a flash message for d
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes the flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is up
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired clears an expired flash message and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

func (f *Footer) contextBindings() []KeyBinding {
	switch {
	case f.modalOpen:
		return []KeyBinding{
			{Key: "enter", Desc: "confirm"},
			{Key: "esc", Desc: "close"},
		}
	case f.state == cell.Editing && f.choice:
		return []KeyBinding{
			{Key: "↑/↓", Desc: "choose"},
			{Key: "a-z", Desc: "jump"},
			{Key: "enter/esc", Desc: "done"},
			{Key: "tab", Desc: "next cell"},
		}
	case f.state == cell.Editing:
		return []KeyBinding{
			{Key: "enter", Desc: "save"},
			{Key: "esc", Desc: "cancel"},
			{Key: "←/→", Desc: "cursor"},
			{Key: "tab", Desc: "save & next"},
		}
	case f.state == cell.Selected:
		return append([]KeyBinding{
			{Key: "enter/f2", Desc: "edit"},
			{Key: "type", Desc: "replace"},
		}, f.bindings...)
	}
	return f.bindings
}

func (f *Footer) flashView() string {
	var icon string
	var style lipgloss.Style
	switch f.flashMessage.Type {
	case FlashError:
		icon, style = "✕", lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	case FlashWarning:
		icon, style = "⚠", lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	case FlashSuccess:
		icon, style = "✓", lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	default:
		icon, style = "ℹ", lipgloss.NewStyle().Foreground(ColorInfo).Bold(true)
	}
	return FooterStyle.Width(f.width).Render(style.Render(icon + " " + f.flashMessage.Text))
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		return f.flashView()
	}

	var parts []string
	for _, b := range f.contextBindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	return FooterStyle.Width(f.width).MaxHeight(FooterHeight).Render(content)
}
