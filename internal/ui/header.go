package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/zhubert/chatshell/internal/keys"
)

// HeaderProps is everything the shell threads into the header.
// A nil OnToggle hides the sidebar toggle.
type HeaderProps struct {
	IsOpen           bool
	OnToggle         func()
	ViewMode         ViewMode
	OnViewModeChange func(ViewMode)
}

// Header is the top bar. It doubles as the focusable sidebar toggle.
type Header struct {
	width   int
	title   string
	right   string
	props   HeaderProps
	mounted bool
	focused bool

	// column ranges computed by the last View, for mouse hit tests
	toggleStart, toggleEnd int
	tabStarts              [2]int
	tabEnds                [2]int
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{title: "chatshell", mounted: true}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetProps replaces the header's props.
func (h *Header) SetProps(p HeaderProps) {
	h.props = p
}

// Props returns the header's current props.
func (h *Header) Props() HeaderProps {
	return h.props
}

// SetRight sets the right-hand slot text.
func (h *Header) SetRight(s string) {
	h.right = s
}

// SetMounted mounts or unmounts the header.
func (h *Header) SetMounted(m bool) {
	h.mounted = m
}

// CanFocus is true while the toggle is shown.
func (h *Header) CanFocus() bool {
	return h.mounted && h.props.OnToggle != nil
}

// SetFocused implements focus.Focuser.
func (h *Header) SetFocused(focused bool) {
	h.focused = focused
}

// IsFocused reports whether the toggle holds focus.
func (h *Header) IsFocused() bool {
	return h.focused
}

// HandleKey activates the toggle on Enter or Space and switches the view
// mode tab on Left/Right.
func (h *Header) HandleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case keys.Enter, keys.Space:
		if h.props.OnToggle == nil {
			return nil, false
		}
		h.props.OnToggle()
		return nil, true
	case "left", "right":
		if h.props.OnViewModeChange == nil {
			return nil, false
		}
		h.props.OnViewModeChange(h.props.ViewMode.Toggle())
		return nil, true
	}
	return nil, false
}

// ToggleAt reports whether column x falls on the toggle glyph.
func (h *Header) ToggleAt(x int) bool {
	return h.props.OnToggle != nil && x >= h.toggleStart && x < h.toggleEnd
}

// TabAt returns the view mode tab under column x.
func (h *Header) TabAt(x int) (ViewMode, bool) {
	for i, mode := range []ViewMode{ViewChat, ViewCompose} {
		if x >= h.tabStarts[i] && x < h.tabEnds[i] {
			return mode, true
		}
	}
	return ViewChat, false
}

type segKind int

const (
	segPlain segKind = iota
	segToggle
	segTitle
	segTabActive
	segTab
	segRight
)

type segment struct {
	text string
	kind segKind
}

// View renders the header
func (h *Header) View() string {
	var segs []segment
	col := 0
	add := func(text string, kind segKind) (start, end int) {
		start = col
		col += runewidth.StringWidth(text)
		segs = append(segs, segment{text, kind})
		return start, col
	}

	add(" ", segPlain)
	h.toggleStart, h.toggleEnd = 0, 0
	if h.props.OnToggle != nil {
		glyph := ToggleGlyphClosed
		if h.props.IsOpen {
			glyph = ToggleGlyphOpen
		}
		h.toggleStart, h.toggleEnd = add(glyph, segToggle)
		add(" ", segPlain)
	}
	add(h.title, segTitle)
	add("  ", segPlain)
	for i, mode := range []ViewMode{ViewChat, ViewCompose} {
		kind := segTab
		if mode == h.props.ViewMode {
			kind = segTabActive
		}
		h.tabStarts[i], h.tabEnds[i] = add(mode.String(), kind)
		if i == 0 {
			add(" · ", segPlain)
		}
	}

	right := strings.TrimSpace(ansi.Strip(h.right))
	if right != "" {
		right += " "
	}
	room := h.width - col
	if room < 1 {
		right = ""
	} else if runewidth.StringWidth(right) > room-1 {
		right = ansi.Truncate(right, room-1, "…")
	}
	pad := h.width - col - runewidth.StringWidth(right)
	if pad > 0 {
		add(strings.Repeat(" ", pad), segPlain)
	}
	if right != "" {
		add(right, segRight)
	}

	return h.renderGradient(segs)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient paints the segments over a background that fades from
// the primary color into the main background.
func (h *Header) renderGradient(segs []segment) string {
	total := 0
	for _, s := range segs {
		total += len([]rune(s.text))
	}
	if total == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	var result strings.Builder
	i := 0
	for _, s := range segs {
		for _, r := range s.text {
			t := float64(i) / float64(total)
			cr := int(float64(startR)*(1-t) + float64(endR)*t)
			cg := int(float64(startG)*(1-t) + float64(endG)*t)
			cb := int(float64(startB)*(1-t) + float64(endB)*t)
			bg := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

			style := lipgloss.NewStyle().Background(bg).Foreground(textColor)
			switch s.kind {
			case segTitle:
				style = style.Bold(true)
			case segToggle:
				style = style.Bold(true)
				if h.focused {
					style = style.Reverse(true)
				}
			case segTabActive:
				style = style.Bold(true).Underline(true)
			case segTab, segRight:
				style = style.Foreground(mutedColor)
			}
			result.WriteString(style.Render(string(r)))
			i++
		}
	}
	return result.String()
}
