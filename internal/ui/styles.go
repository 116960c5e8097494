package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, set from the current theme.
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorBackdrop    color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorUser        color.Color
	ColorAssistant   color.Color
	ColorWarning     color.Color
	ColorError       color.Color
	ColorSuccess     color.Color
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style

	FlashInfoStyle    lipgloss.Style
	FlashSuccessStyle lipgloss.Style
	FlashWarningStyle lipgloss.Style
	FlashErrorStyle   lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Sidebar styles
var (
	SidebarItemStyle       lipgloss.Style
	SidebarSelectedStyle   lipgloss.Style
	SidebarActiveMarkStyle lipgloss.Style
	SidebarSlotStyle       lipgloss.Style
)

// Chat styles
var (
	ChatUserStyle      lipgloss.Style
	ChatAssistantStyle lipgloss.Style
	ChatSystemStyle    lipgloss.Style
	ChatMessageStyle   lipgloss.Style
	ChatEmptyStyle     lipgloss.Style

	// TextSelectionStyle highlights a mouse selection in the message list.
	TextSelectionStyle lipgloss.Style

	ComposerStyle        lipgloss.Style
	ComposerFocusedStyle lipgloss.Style
	ComposerStatusStyle  lipgloss.Style
)

// Overlay styles
var (
	DialogStyle      lipgloss.Style
	DialogTitleStyle lipgloss.Style
	DialogHintStyle  lipgloss.Style
	BackdropStyle    lipgloss.Style
	DashboardStyle   lipgloss.Style
)

func init() {
	regenerateStyles()
}
