package ui

import "charm.land/lipgloss/v2"

// Theme is a fixed color palette. Colors are hex strings.
type Theme struct {
	Name string

	Primary   string
	Secondary string

	Bg         string
	BgSelected string // defaults to Primary
	Backdrop   string

	Text        string
	TextMuted   string
	TextInverse string

	User      string
	Assistant string
	Warning   string
	Error     string
	Success   string

	Border      string
	BorderFocus string // defaults to Primary

	// CodeStyle is the chroma style used for fenced code blocks.
	CodeStyle string
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

const (
	ThemeDarkPurple ThemeName = "dark-purple"
	ThemeNord       ThemeName = "nord"
	ThemeLight      ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDarkPurple

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDarkPurple: {
		Name:        "Dark Purple",
		Primary:     "#7C3AED",
		Secondary:   "#06B6D4",
		Bg:          "#1F2937",
		Backdrop:    "#111827",
		Text:        "#F9FAFB",
		TextMuted:   "#9CA3AF",
		TextInverse: "#1F2937",
		User:        "#A78BFA",
		Assistant:   "#22D3EE",
		Warning:     "#F59E0B",
		Error:       "#EF4444",
		Success:     "#10B981",
		Border:      "#374151",
		CodeStyle:   "monokai",
	},
	ThemeNord: {
		Name:        "Nord",
		Primary:     "#88C0D0",
		Secondary:   "#81A1C1",
		Bg:          "#2E3440",
		Backdrop:    "#242933",
		Text:        "#ECEFF4",
		TextMuted:   "#D8DEE9",
		TextInverse: "#2E3440",
		User:        "#A3BE8C",
		Assistant:   "#88C0D0",
		Warning:     "#EBCB8B",
		Error:       "#BF616A",
		Success:     "#A3BE8C",
		Border:      "#4C566A",
		CodeStyle:   "nord",
	},
	ThemeLight: {
		Name:        "Light",
		Primary:     "#6D28D9",
		Secondary:   "#0891B2",
		Bg:          "#FFFFFF",
		BgSelected:  "#EDE9FE",
		Backdrop:    "#E5E7EB",
		Text:        "#111827",
		TextMuted:   "#4B5563",
		TextInverse: "#FFFFFF",
		User:        "#7C3AED",
		Assistant:   "#0E7490",
		Warning:     "#B45309",
		Error:       "#DC2626",
		Success:     "#059669",
		Border:      "#D1D5DB",
		CodeStyle:   "github",
	},
}

// ThemeNames returns the built-in theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{ThemeDarkPurple, ThemeNord, ThemeLight}
}

// GetTheme returns a theme by name, defaulting to DarkPurple if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

var currentTheme = BuiltinThemes[DefaultTheme]

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	regenerateStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	for name, theme := range BuiltinThemes {
		if theme.Name == currentTheme.Name {
			return name
		}
	}
	return DefaultTheme
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorBackdrop = lipgloss.Color(t.Backdrop)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorUser = lipgloss.Color(t.User)
	ColorAssistant = lipgloss.Color(t.Assistant)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	FlashInfoStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	FlashSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	FlashWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	FlashErrorStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	SidebarItemStyle = lipgloss.NewStyle().
		Padding(0, 1)

	SidebarSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(lipgloss.Color(t.Text)).
		Bold(true).
		Padding(0, 1)

	SidebarActiveMarkStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	SidebarSlotStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		Padding(0, 1)

	ChatUserStyle = lipgloss.NewStyle().
		Foreground(ColorUser).
		Bold(true)

	ChatAssistantStyle = lipgloss.NewStyle().
		Foreground(ColorAssistant).
		Bold(true)

	ChatSystemStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	ChatMessageStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	ChatEmptyStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	TextSelectionStyle = lipgloss.NewStyle().
		Background(ColorSecondary).
		Foreground(ColorTextInverse)

	ComposerStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	ComposerFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	ComposerStatusStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	DialogStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 1)

	DialogTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	DialogHintStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	BackdropStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Background(ColorBackdrop)

	DashboardStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Bold(true)
}
