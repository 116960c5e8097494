package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// SidebarWidthRatio is the denominator for the inline sidebar width
	SidebarWidthRatio = 4

	// MinSidebarWidth and MaxSidebarWidth clamp the inline sidebar
	MinSidebarWidth = 22
	MaxSidebarWidth = 36

	// OverlayWidth is the preferred width of the sidebar dialog
	OverlayWidth = 40

	// ComposerHeight is the number of lines for the composer textarea
	ComposerHeight = 3

	// ComposerTotalHeight includes the composer border and its status line
	ComposerTotalHeight = ComposerHeight + BorderSize + 1

	// DefaultWrapWidth is used when the width is not known yet
	DefaultWrapWidth = 80

	// MinTerminalWidth and MinTerminalHeight bound layout math
	MinTerminalWidth  = 20
	MinTerminalHeight = 8
)

// Composer limits
const (
	ComposerCharLimit = 4000
	ComposeTitleLimit = 80
)

// Glyphs used by the header toggle.
const (
	ToggleGlyphOpen   = "◧"
	ToggleGlyphClosed = "□"
)
