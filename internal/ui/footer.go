package ui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// FlashDuration is how long a flash message stays in the footer.
const FlashDuration = 3 * time.Second

// FlashType selects the color of a flash message.
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// FlashTickMsg re-checks whether the flash message has expired.
type FlashTickMsg time.Time

// FlashTick returns a command that sends a FlashTickMsg.
func FlashTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom bar with key hints and flash messages
type Footer struct {
	width    int
	help     help.Model
	bindings []key.Binding

	flashText  string
	flashType  FlashType
	flashUntil time.Time
	now        func() time.Time
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	h := help.New()
	h.ShortSeparator = "  |  "
	h.Styles.ShortKey = FooterKeyStyle
	h.Styles.ShortDesc = FooterDescStyle
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(ColorBorder)
	h.Styles.Ellipsis = FooterDescStyle
	return &Footer{help: h, now: time.Now}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
	f.help.SetWidth(max(width-2, 0))
}

// SetBindings replaces the key hints shown.
func (f *Footer) SetBindings(bindings []key.Binding) {
	f.bindings = bindings
}

// SetFlash shows text in place of the key hints until FlashDuration passes.
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.flashText = text
	f.flashType = flashType
	f.flashUntil = f.now().Add(FlashDuration)
}

// HasFlash reports whether a flash message is showing.
func (f *Footer) HasFlash() bool {
	return f.flashText != ""
}

// ClearIfExpired drops an expired flash message and reports whether it did.
func (f *Footer) ClearIfExpired() bool {
	if f.flashText == "" || f.now().Before(f.flashUntil) {
		return false
	}
	f.flashText = ""
	return true
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashText != "" {
		return FooterStyle.Width(f.width).Render(f.flashStyle().Render(f.flashText))
	}
	return FooterStyle.Width(f.width).Render(f.help.ShortHelpView(f.bindings))
}

func (f *Footer) flashStyle() lipgloss.Style {
	switch f.flashType {
	case FlashSuccess:
		return FlashSuccessStyle
	case FlashWarning:
		return FlashWarningStyle
	case FlashError:
		return FlashErrorStyle
	default:
		return FlashInfoStyle
	}
}

// JoinHints is a plain-text rendering of bindings, used in places that
// cannot host the help view (e.g. the overlay dialog).
func JoinHints(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" · "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
