package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/tally/internal/keys"
	"github.com/zhubert/tally/internal/logger"
	"github.com/zhubert/tally/internal/sheet"
	"github.com/zhubert/tally/internal/ui"
	"github.com/zhubert/tally/internal/ui/modals"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key         string                              // The key binding (e.g., "ctrl+n")
	DisplayKey  string                              // Display name in help (e.g., "ctrl-n"); defaults to Key
	Description string                              // Human-readable description
	Category    string                              // Section for help modal grouping
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition   func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryNavigation = "Navigation"
	CategorySheets     = "Sheets"
	CategoryColumns    = "Columns & Actions"
	CategoryEditing    = "Editing"
	CategoryGeneral    = "General"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryNavigation,
	CategoryEditing,
	CategorySheets,
	CategoryColumns,
	CategoryGeneral,
}

// ShortcutRegistry is the central registry of all keyboard shortcuts.
// Add new shortcuts here and they will automatically appear in the help modal
// and be executable from both direct key presses and the help modal.
//
// Every binding is a control or function key: printable keys type into the
// selected cell.
var ShortcutRegistry = []Shortcut{
	// Sheets
	{
		Key:         keys.CtrlN,
		DisplayKey:  "ctrl-n",
		Description: "Add a new sheet",
		Category:    CategorySheets,
		Handler:     shortcutNewSheet,
	},
	{
		Key:         keys.CtrlO,
		DisplayKey:  "ctrl-o",
		Description: "Import a template",
		Category:    CategorySheets,
		Handler:     shortcutImport,
	},
	{
		Key:         keys.CtrlE,
		DisplayKey:  "ctrl-e",
		Description: "Export the sheet",
		Category:    CategorySheets,
		Handler:     shortcutExport,
	},
	{
		Key:         keys.CtrlS,
		DisplayKey:  "ctrl-s",
		Description: "Share the sheet",
		Category:    CategorySheets,
		Handler:     shortcutShare,
	},
	{
		Key:         keys.CtrlY,
		DisplayKey:  "ctrl-y",
		Description: "Copy the sheet title",
		Category:    CategorySheets,
		Handler:     shortcutCopyTitle,
	},

	// Columns & Actions
	{
		Key:         keys.CtrlT,
		DisplayKey:  "ctrl-t",
		Description: "Add a column",
		Category:    CategoryColumns,
		Handler:     shortcutAddColumn,
	},
	{
		Key:         keys.CtrlG,
		DisplayKey:  "ctrl-g",
		Description: "New action header",
		Category:    CategoryColumns,
		Handler:     shortcutNewAction,
		Condition:   func(m *Model) bool { return m.book.Len() > 0 },
	},
	{
		Key:         keys.CtrlR,
		DisplayKey:  "ctrl-r",
		Description: "Hide rows",
		Category:    CategoryColumns,
		Handler:     shortcutHideRows,
	},
	{
		Key:         keys.CtrlB,
		DisplayKey:  "ctrl-b",
		Description: "Collapse the tool bar",
		Category:    CategoryColumns,
		Handler:     shortcutToggleToolbar,
	},

	// General
	{
		Key:         keys.CtrlC,
		DisplayKey:  "ctrl-c",
		Description: "Quit application",
		Category:    CategoryGeneral,
		Handler:     shortcutQuit,
	},
}

// helpShortcut is the help entry for ctrl+/ (F1 works too).
// It's handled specially in ExecuteShortcut and defined separately to avoid
// an initialization cycle (shortcutHelp references ShortcutRegistry).
var helpShortcut = Shortcut{
	Key:         keys.CtrlSlash,
	DisplayKey:  "ctrl-/ or F1",
	Description: "Show this help",
	Category:    CategoryGeneral,
}

// DisplayOnlyShortcuts are shown in help but not executable from the help modal.
// These are context-sensitive or informational entries.
var DisplayOnlyShortcuts = []Shortcut{
	// Navigation (display-only)
	{DisplayKey: "↑/↓/←/→", Description: "Move the selection", Category: CategoryNavigation},
	{DisplayKey: "Tab / Shift-Tab", Description: "Next / previous cell", Category: CategoryNavigation},
	{DisplayKey: "PgUp/PgDn", Description: "Move a page of rows", Category: CategoryNavigation},
	{DisplayKey: "ctrl-←/→", Description: "Previous / next sheet", Category: CategoryNavigation},
	{DisplayKey: "Mouse wheel", Description: "Scroll rows", Category: CategoryNavigation},

	// Editing (display-only, context-sensitive)
	{DisplayKey: "Enter / F2", Description: "Edit the selected cell", Category: CategoryEditing},
	{DisplayKey: "Double click", Description: "Edit with the value selected", Category: CategoryEditing},
	{DisplayKey: "Type", Description: "Replace the cell's text", Category: CategoryEditing},
	{DisplayKey: "Esc", Description: "Cancel the edit", Category: CategoryEditing},
	{DisplayKey: "↑/↓ on a choice", Description: "Pick status or priority", Category: CategoryEditing},
}

// isShortcutApplicable checks if a shortcut is applicable given the current model state.
// This is used to filter which shortcuts appear in the help modal.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	return s.Condition == nil || s.Condition(m)
}

// getApplicableHelpSections builds help sections, in category order, from
// the shortcuts that apply right now plus the display-only entries.
func (m *Model) getApplicableHelpSections(registry, displayOnly []Shortcut) []modals.HelpSection {
	byCategory := make(map[string][]modals.HelpShortcut)
	add := func(s Shortcut) {
		key := s.DisplayKey
		if key == "" {
			key = s.Key
		}
		byCategory[s.Category] = append(byCategory[s.Category], modals.HelpShortcut{Key: key, Desc: s.Description})
	}
	for _, s := range registry {
		if m.isShortcutApplicable(s) {
			add(s)
		}
	}
	for _, s := range displayOnly {
		add(s)
	}

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts := byCategory[cat]; len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{Title: cat, Shortcuts: shortcuts})
		}
	}
	return sections
}

// ExecuteShortcut runs the shortcut bound to key. handled is false when no
// shortcut matched or its guard failed, so the key can go to the grid.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	// Handle help shortcut specially (defined outside registry to avoid init cycle)
	if key == helpShortcut.Key || key == keys.F1 {
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if s.Condition != nil && !s.Condition(m) {
			logger.WithComponent("shortcuts").Debug("guard failed", "key", key)
			return m, nil, false
		}
		logger.WithComponent("shortcuts").Debug("executing", "key", key)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

func shortcutNewSheet(m *Model) (tea.Model, tea.Cmd) {
	cmd := m.blur()
	m.machine.Reset()
	cmd = tea.Batch(cmd, m.setBook(m.book.AddSheet()))
	logger.WithComponent("app").Info("sheet added", "id", m.book.ActiveID())
	return m, tea.Batch(cmd, scrollCmd(ScrollTabsEnd))
}

func shortcutAddColumn(m *Model) (tea.Model, tea.Cmd) {
	cmd := m.blur()
	book, key := m.book.AddExtraColumn()
	if key == "" {
		return m, cmd
	}
	logger.WithSheet(m.book.ActiveID()).Info("column added", "key", key)
	return m, tea.Batch(cmd, m.setBook(book), scrollCmd(ScrollGridEnd))
}

// showPopover opens state under the toolbar button for tool, or centered
// when the button is not on screen.
func (m *Model) showPopover(tool ui.Tool, state modals.ModalState) {
	x, ok := m.toolbar.ToolX(tool)
	if !ok {
		x = -1
	}
	m.modal.ShowAt(state, x)
	m.toolbar.SetActive(tool)
}

func shortcutNewAction(m *Model) (tea.Model, tea.Cmd) {
	cmd := m.blur()
	s := m.book.Active()
	state := modals.NewNewActionState(s.Columns(), s.HeaderGroups)
	m.modal.Show(state)
	m.toolbar.SetActive(ui.ToolNewAction)
	return m, tea.Batch(cmd, state.SetFocus(modals.FieldName))
}

func shortcutImport(m *Model) (tea.Model, tea.Cmd) {
	cmd := m.blur()
	m.showPopover(ui.ToolImport, modals.NewImportState(sheet.Templates()))
	return m, cmd
}

func shortcutExport(m *Model) (tea.Model, tea.Cmd) {
	cmd := m.blur()
	m.modal.Show(modals.NewExportState(m.book.Active(), m.config.GetExportDir()))
	m.toolbar.SetActive(ui.ToolExport)
	return m, cmd
}

func shortcutShare(m *Model) (tea.Model, tea.Cmd) {
	cmd := m.blur()
	m.showPopover(ui.ToolShare, modals.NewShareState(m.book.Active().Title, m.config.GetShareLink()))
	return m, cmd
}

func shortcutHideRows(m *Model) (tea.Model, tea.Cmd) {
	cmd := m.blur()
	rows := min(ui.HideRowsMax, len(m.book.Active().Rows))
	m.showPopover(ui.ToolHideRows, modals.NewHideRowsState(rows, m.grid.Hidden()))
	return m, cmd
}

func shortcutToggleToolbar(m *Model) (tea.Model, tea.Cmd) {
	m.toolbar.ToggleCollapsed()
	return m, nil
}

func shortcutCopyTitle(m *Model) (tea.Model, tea.Cmd) {
	return m, copyCmd("title", m.book.Active().Title)
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	cmd := m.blur()
	// Include help shortcut in the registry for display purposes
	allShortcuts := append(append([]Shortcut(nil), ShortcutRegistry...), helpShortcut)
	sections := m.getApplicableHelpSections(allShortcuts, DisplayOnlyShortcuts)
	m.modal.Show(modals.NewHelpStateFromSections(sections))
	return m, cmd
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	if cmd := m.blur(); cmd != nil {
		return m, tea.Sequence(cmd, tea.Quit)
	}
	return m, tea.Quit
}
