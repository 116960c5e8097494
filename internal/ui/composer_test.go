package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func typeText(c *Composer, s string) {
	for _, r := range s {
		c.HandleKey(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestComposer_EnterSends(t *testing.T) {
	c := NewComposer()
	c.SetWidth(60)
	c.SetFocused(true)
	typeText(c, "hi there")

	cmd, handled := c.HandleKey(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !handled || cmd == nil {
		t.Fatal("Enter with text should send")
	}
	send, ok := cmd().(SendMsg)
	if !ok || send.Text != "hi there" {
		t.Errorf("got %#v, want SendMsg{hi there}", cmd())
	}
	if c.Value() != "" {
		t.Errorf("composer should be cleared after send, got %q", c.Value())
	}
}

func TestComposer_EnterOnBlankDoesNothing(t *testing.T) {
	c := NewComposer()
	c.SetFocused(true)
	typeText(c, "   ")

	cmd, handled := c.HandleKey(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !handled {
		t.Error("Enter should be consumed")
	}
	if cmd != nil {
		t.Error("blank input should not send")
	}
}

func TestComposer_EscapeFallsThrough(t *testing.T) {
	c := NewComposer()
	c.SetFocused(true)

	if _, handled := c.HandleKey(tea.KeyPressMsg{Code: tea.KeyEscape}); handled {
		t.Error("Escape should not be consumed by the composer")
	}
}

func TestComposer_Graphemes(t *testing.T) {
	c := NewComposer()
	c.SetValue("héllo 👋🏽")

	if got := c.Graphemes(); got != 7 {
		t.Errorf("Graphemes() = %d, want 7", got)
	}
}

func TestComposer_View(t *testing.T) {
	c := NewComposer()
	c.SetWidth(60)
	c.SetSlots("📎 attach", "model: sonnet")
	c.SetValue("abc")

	view := stripANSI(c.View())
	for _, want := range []string{"📎 attach", "model: sonnet", "3/4000"} {
		if !strings.Contains(view, want) {
			t.Errorf("composer view missing %q:\n%s", want, view)
		}
	}
}

func TestComposer_Unmount(t *testing.T) {
	c := NewComposer()
	c.SetFocused(true)
	c.SetMounted(false)

	if c.CanFocus() {
		t.Error("unmounted composer should not accept focus")
	}
	if c.focused {
		t.Error("unmounting should drop focus")
	}
}
