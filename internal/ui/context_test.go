package ui

import (
	"sync"
	"testing"
)

func TestGetViewContext_Singleton(t *testing.T) {
	ctx1 := GetViewContext()
	ctx2 := GetViewContext()

	if ctx1 != ctx2 {
		t.Error("GetViewContext should return the same instance")
	}
}

func TestViewContext_UpdateTerminalSize(t *testing.T) {
	ctx := GetViewContext()

	ctx.UpdateTerminalSize(120, 40)

	if ctx.TerminalWidth != 120 || ctx.TerminalHeight != 40 {
		t.Errorf("terminal = %dx%d, want 120x40", ctx.TerminalWidth, ctx.TerminalHeight)
	}
	if ctx.ToolbarY != 1 || ctx.GridY != 2 {
		t.Errorf("ToolbarY, GridY = %d, %d, want 1, 2", ctx.ToolbarY, ctx.GridY)
	}
	if ctx.GridHeight != 36 {
		t.Errorf("GridHeight = %d, want 36", ctx.GridHeight)
	}
	if ctx.TabsY != 38 || ctx.FooterY != 39 {
		t.Errorf("TabsY, FooterY = %d, %d, want 38, 39", ctx.TabsY, ctx.FooterY)
	}
	if got := ctx.GridBodyHeight(); got != 34 {
		t.Errorf("GridBodyHeight() = %d, want 34", got)
	}
}

func TestViewContext_MinimumSize(t *testing.T) {
	ctx := GetViewContext()
	ctx.UpdateTerminalSize(10, 3)

	if ctx.TerminalWidth != MinTerminalWidth || ctx.TerminalHeight != MinTerminalHeight {
		t.Errorf("terminal = %dx%d, want minimum %dx%d",
			ctx.TerminalWidth, ctx.TerminalHeight, MinTerminalWidth, MinTerminalHeight)
	}
	if got := ctx.GridBodyHeight(); got != 1 {
		t.Errorf("GridBodyHeight() = %d, want 1", got)
	}
}

func TestViewContext_RegionAt(t *testing.T) {
	ctx := GetViewContext()
	ctx.UpdateTerminalSize(120, 40)

	tests := []struct {
		y       int
		want    Region
		wantRel int
	}{
		{0, RegionHeader, 0},
		{1, RegionToolbar, 0},
		{2, RegionGrid, 0},
		{5, RegionGrid, 3},
		{37, RegionGrid, 35},
		{38, RegionTabs, 0},
		{39, RegionFooter, 0},
		{40, RegionNone, 0},
		{-1, RegionNone, 0},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got, rel := ctx.RegionAt(tt.y)
			if got != tt.want || rel != tt.wantRel {
				t.Errorf("RegionAt(%d) = %v, %d, want %v, %d", tt.y, got, rel, tt.want, tt.wantRel)
			}
		})
	}
}

func TestViewContext_ConcurrentAccess(t *testing.T) {
	ctx := GetViewContext()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			ctx.UpdateTerminalSize(80+n, 24+n)
			ctx.RegionAt(n)
		}(i)
	}
	wg.Wait()
}
