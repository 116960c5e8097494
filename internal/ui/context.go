package ui

import (
	"log/slog"

	"github.com/zhubert/chatshell/internal/logger"
)

// ViewContext holds the layout arithmetic for one shell. All size
// calculations go through it so the panels agree on their boxes.
type ViewContext struct {
	TerminalWidth  int
	TerminalHeight int

	HeaderHeight  int
	FooterHeight  int
	ContentHeight int

	// SidebarWidth is zero unless the sidebar is inline.
	SidebarWidth int
	BodyWidth    int
	OverlayWidth int

	sidebarInline bool
	log           *slog.Logger
}

// NewViewContext returns a context sized for a default 80x24 terminal.
func NewViewContext() *ViewContext {
	v := &ViewContext{log: logger.WithComponent("ui")}
	v.UpdateTerminalSize(DefaultWrapWidth, 24)
	return v
}

// UpdateTerminalSize recalculates all dimensions for a new terminal size.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}
	v.TerminalWidth = width
	v.TerminalHeight = height
	v.recalculate()
}

// SetSidebarInline reserves (or releases) the inline sidebar column.
func (v *ViewContext) SetSidebarInline(inline bool) {
	if v.sidebarInline == inline {
		return
	}
	v.sidebarInline = inline
	v.recalculate()
}

func (v *ViewContext) recalculate() {
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight
	v.ContentHeight = v.TerminalHeight - v.HeaderHeight - v.FooterHeight

	v.SidebarWidth = 0
	if v.sidebarInline {
		v.SidebarWidth = clamp(v.TerminalWidth/SidebarWidthRatio, MinSidebarWidth, MaxSidebarWidth)
		if v.SidebarWidth > v.TerminalWidth/2 {
			v.SidebarWidth = v.TerminalWidth / 2
		}
	}
	v.BodyWidth = v.TerminalWidth - v.SidebarWidth

	v.OverlayWidth = OverlayWidth
	if limit := v.TerminalWidth - 4; v.OverlayWidth > limit {
		v.OverlayWidth = limit
	}

	v.log.Debug("layout recalculated",
		"width", v.TerminalWidth,
		"height", v.TerminalHeight,
		"contentHeight", v.ContentHeight,
		"sidebarWidth", v.SidebarWidth,
		"bodyWidth", v.BodyWidth,
		"overlayWidth", v.OverlayWidth,
	)
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return max(panelWidth-BorderSize, 0)
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return max(panelHeight-BorderSize, 0)
}

func clamp(n, lo, hi int) int {
	return min(max(n, lo), hi)
}
