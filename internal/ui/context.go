package ui

import (
	"sync"

	"github.com/zhubert/tally/internal/logger"
)

// Region is a horizontal band of the screen.
type Region int

const (
	RegionNone Region = iota
	RegionHeader
	RegionToolbar
	RegionGrid
	RegionTabs
	RegionFooter
)

func (r Region) String() string {
	switch r {
	case RegionHeader:
		return "header"
	case RegionToolbar:
		return "toolbar"
	case RegionGrid:
		return "grid"
	case RegionTabs:
		return "tabs"
	case RegionFooter:
		return "footer"
	default:
		return "none"
	}
}

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Top row of each band
	ToolbarY int
	GridY    int
	TabsY    int
	FooterY  int

	// GridHeight includes the two header rows
	GridHeight int

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{}
		ctx.UpdateTerminalSize(MinTerminalWidth, MinTerminalHeight)
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
// Sizes below the minimum are raised to it.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	width = max(width, MinTerminalWidth)
	height = max(height, MinTerminalHeight)

	v.TerminalWidth = width
	v.TerminalHeight = height

	v.ToolbarY = HeaderHeight
	v.GridY = v.ToolbarY + ToolbarHeight
	v.GridHeight = height - HeaderHeight - ToolbarHeight - TabsHeight - FooterHeight
	v.TabsY = v.GridY + v.GridHeight
	v.FooterY = v.TabsY + TabsHeight

	logger.WithComponent("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
		"gridY", v.GridY,
		"gridHeight", v.GridHeight,
	)
}

// RegionAt returns the band containing screen row y and y relative to the
// band's top.
func (v *ViewContext) RegionAt(y int) (Region, int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch {
	case y < 0 || y >= v.TerminalHeight:
		return RegionNone, 0
	case y < v.ToolbarY:
		return RegionHeader, y
	case y < v.GridY:
		return RegionToolbar, y - v.ToolbarY
	case y < v.TabsY:
		return RegionGrid, y - v.GridY
	case y < v.FooterY:
		return RegionTabs, y - v.TabsY
	default:
		return RegionFooter, y - v.FooterY
	}
}

// GridBodyHeight returns how many data rows the grid shows
func (v *ViewContext) GridBodyHeight() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.GridHeight - GridHeaderHeight
}
