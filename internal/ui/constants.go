// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants for screen regions, top to bottom
const (
	// HeaderHeight is the breadcrumb bar
	HeaderHeight = 1

	// ToolbarHeight is the tool button row
	ToolbarHeight = 1

	// GridHeaderHeight covers the grouped header row and the column titles
	GridHeaderHeight = 2

	// TabsHeight is the sheet tab strip
	TabsHeight = 1

	// FooterHeight is the key hint / flash line
	FooterHeight = 1

	// ChromeHeight is everything that is not grid body
	ChromeHeight = HeaderHeight + ToolbarHeight + GridHeaderHeight + TabsHeight + FooterHeight

	// CellPadding is the blank space on each side of a cell's text
	CellPadding = 1
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalWidthWide is used by modals that show previews
	ModalWidthWide = 90

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 64

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 40

	// HelpModalMaxVisible is the number of help rows shown at once
	HelpModalMaxVisible = 16

	// ExportPreviewHeight is the height of the JSON preview pane
	ExportPreviewHeight = 12

	// HideRowsMax is how many leading rows the hide-rows popover offers
	HideRowsMax = 20
)

// Timers
const (
	// FlashDuration is how long a footer flash message stays up
	FlashDuration = 3 * time.Second

	// FlashTickInterval is how often an active flash is checked for expiry
	FlashTickInterval = 500 * time.Millisecond

	// CopiedResetDelay is how long the share popover says "Copied!"
	CopiedResetDelay = 2 * time.Second

	// DoubleClickInterval is the longest gap between two clicks on the same
	// cell that still counts as a double click
	DoubleClickInterval = 400 * time.Millisecond
)

// Minimum terminal dimensions
const (
	// MinTerminalWidth keeps the toolbar and a couple of columns on screen
	MinTerminalWidth = 40

	// MinTerminalHeight leaves at least one grid body row
	MinTerminalHeight = ChromeHeight + 1
)
