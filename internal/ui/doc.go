// Package ui provides the user interface components for the tally TUI.
//
// # Overview
//
// The ui package implements the visual components of tally using the Bubble Tea
// framework and Lipgloss styling library. Components render strings; the app
// package owns the Bubble Tea model and routes input to them.
//
// # Layout System
//
// The layout is organized as follows:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header: breadcrumb (1 line)                         │
//	│ Toolbar (1 line)                                    │
//	├─────────────────────────────────────────────────────┤
//	│ Grid: grouped header row                            │
//	│       column titles                                 │
//	│       data rows                                     │
//	├─────────────────────────────────────────────────────┤
//	│ Sheet tabs (1 line)                                 │
//	│ Footer: key hints or flash message (1 line)         │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations and
// maps screen rows to regions for mouse routing.
//
// Grid: Draws the active sheet. The grouped header row comes from the
// layout package; hidden rows are skipped; the row number column is frozen
// while the rest scrolls horizontally. HitTest maps a click to a cell.
//
// Toolbar and Tabs: Record where each button was drawn so clicks can be
// mapped back with ToolAt and TabAt.
//
// Footer: Shows context-aware key hints, or a flash message when one is up.
//
// Modal: Container for the modals subpackage. Dialogs are centered;
// toolbar popovers hang under the button that opened them.
//
// # Styles
//
// All styles are defined in styles.go and rebuilt from the active theme by
// SetTheme. Status and priority chips keep fixed colors in every theme.
package ui
