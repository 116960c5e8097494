package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rivo/uniseg"
	"github.com/zhubert/chatshell/internal/keys"
)

// Composer is the message input at the bottom of the chat view.
type Composer struct {
	input       textarea.Model
	width       int
	mounted     bool
	focused     bool
	left, right string
}

// NewComposer creates a composer.
func NewComposer() *Composer {
	ta := textarea.New()
	ta.Placeholder = "Send a message…"
	ta.CharLimit = ComposerCharLimit
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.SetHeight(ComposerHeight)
	ta.KeyMap.InsertNewline.SetKeys(keys.ShiftEnter, "ctrl+j")
	return &Composer{input: ta, mounted: true}
}

// SetWidth sets the outer width of the composer.
func (c *Composer) SetWidth(width int) {
	c.width = width
	// border plus horizontal padding
	c.input.SetWidth(max(width-BorderSize-2, 1))
}

// SetSlots sets the text shown left and right of the character counter.
func (c *Composer) SetSlots(left, right string) {
	c.left = left
	c.right = right
}

// SetMounted mounts or unmounts the composer.
func (c *Composer) SetMounted(m bool) {
	c.mounted = m
	if !m && c.focused {
		c.SetFocused(false)
	}
}

// CanFocus implements focus.Element.
func (c *Composer) CanFocus() bool {
	return c.mounted
}

// SetFocused implements focus.Focuser.
func (c *Composer) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// Value returns the current input.
func (c *Composer) Value() string {
	return c.input.Value()
}

// SetValue replaces the current input.
func (c *Composer) SetValue(s string) {
	c.input.SetValue(s)
}

// Graphemes returns the number of user-perceived characters typed.
func (c *Composer) Graphemes() int {
	return uniseg.GraphemeClusterCount(c.input.Value())
}

// HandleKey sends on Enter and forwards everything else but Escape to the
// textarea.
func (c *Composer) HandleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case keys.Enter:
		text := strings.TrimSpace(c.input.Value())
		if text == "" {
			return nil, true
		}
		c.input.Reset()
		return emit(SendMsg{Text: text}), true
	case keys.Escape:
		return nil, false
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd, true
}

// Update forwards non-key messages (paste, cursor blink) to the textarea.
func (c *Composer) Update(msg tea.Msg) tea.Cmd {
	if !c.focused {
		return nil
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

// Height returns the rendered height of the composer.
func (c *Composer) Height() int {
	return ComposerTotalHeight
}

// View renders the composer with its status line.
func (c *Composer) View() string {
	style := ComposerStyle
	if c.focused {
		style = ComposerFocusedStyle
	}
	box := style.Width(c.width).Render(c.input.View())

	counter := fmt.Sprintf("%d/%d", c.Graphemes(), ComposerCharLimit)
	left := ComposerStatusStyle.Render(c.left)
	right := ComposerStatusStyle.Render(strings.TrimSpace(c.right + "  " + counter))
	gap := max(c.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	status := " " + left + strings.Repeat(" ", gap) + right + " "

	return lipgloss.JoinVertical(lipgloss.Left, box, status)
}
