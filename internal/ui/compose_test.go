package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
)

// runCmd executes cmd and flattens batches into the resulting messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestNewComposeView_DefaultModels(t *testing.T) {
	c := NewComposeView(nil)

	if len(c.models) != len(DefaultModels) {
		t.Errorf("models = %v, want %v", c.models, DefaultModels)
	}
	if c.model != DefaultModels[0] {
		t.Errorf("initial model = %q, want %q", c.model, DefaultModels[0])
	}
}

func TestComposeView_SubmitOnCompletion(t *testing.T) {
	c := NewComposeView([]string{"alpha", "beta"})
	c.title = "  Trip planning  "
	c.model = "beta"
	c.message = "where should we go?"
	c.form.State = huh.StateCompleted

	var submit *ComposeSubmitMsg
	for _, msg := range runCmd(c.Update(struct{}{})) {
		if s, ok := msg.(ComposeSubmitMsg); ok {
			submit = &s
		}
	}

	if submit == nil {
		t.Fatal("expected ComposeSubmitMsg")
	}
	if submit.Title != "Trip planning" || submit.Model != "beta" || submit.Message != "where should we go?" {
		t.Errorf("unexpected submission %+v", submit)
	}
	if c.form.State != huh.StateNormal || c.title != "" {
		t.Error("form should reset after submission")
	}
}

func TestComposeView_EscapeCancels(t *testing.T) {
	c := NewComposeView(nil)
	c.title = "draft"

	cmd, handled := c.HandleKey(tea.KeyPressMsg{Code: tea.KeyEscape})
	if !handled {
		t.Fatal("Escape should be handled")
	}
	msgs := runCmd(cmd)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if _, ok := msgs[0].(ComposeCancelMsg); !ok {
		t.Errorf("expected ComposeCancelMsg, got %T", msgs[0])
	}
	if c.title != "" {
		t.Error("cancel should clear the draft")
	}
}

func TestComposeView_View(t *testing.T) {
	c := NewComposeView(nil)
	c.SetSize(60, 20)

	view := stripANSI(c.View())
	for _, want := range []string{"New conversation", "Title", "Model", "First message"} {
		if !strings.Contains(view, want) {
			t.Errorf("compose view missing %q:\n%s", want, view)
		}
	}
}

func TestComposeView_Focus(t *testing.T) {
	c := NewComposeView(nil)

	if c.CanFocus() {
		t.Error("compose view starts unmounted")
	}
	c.SetMounted(true)
	if !c.CanFocus() {
		t.Error("mounted compose view should accept focus")
	}
}
