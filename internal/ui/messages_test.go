package ui

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/chatshell/internal/clipboard"
	"github.com/zhubert/chatshell/internal/transcript"
)

func testConversation() *transcript.Conversation {
	return &transcript.Conversation{
		ID:    "c1",
		Title: "Greeting",
		Messages: []transcript.Message{
			{Role: transcript.RoleUser, Content: "hello"},
			{Role: transcript.RoleAssistant, Content: "hi! here is code:\n```go\nfmt.Println(1)\n```"},
		},
	}
}

func TestMessageList_EmptyState(t *testing.T) {
	l := NewMessageList(nil)
	l.SetSize(60, 10)

	view := stripANSI(l.View())
	if !strings.Contains(view, "No messages yet") {
		t.Errorf("default empty state missing:\n%s", view)
	}

	l.SetEmptyState("Pick a conversation")
	view = stripANSI(l.View())
	if !strings.Contains(view, "Pick a conversation") {
		t.Errorf("custom empty state missing:\n%s", view)
	}
}

func TestMessageList_RendersMessages(t *testing.T) {
	l := NewMessageList(nil)
	l.SetSize(60, 20)
	l.SetConversation(testConversation())

	view := stripANSI(l.View())
	for _, want := range []string{"You", "hello", "Assistant", "fmt.Println(1)"} {
		if !strings.Contains(view, want) {
			t.Errorf("missing %q:\n%s", want, view)
		}
	}
	if l.IsEmpty() {
		t.Error("IsEmpty should be false with messages")
	}
}

func TestMessageList_CopyLatest(t *testing.T) {
	clip := &clipboard.Memory{}
	l := NewMessageList(clip)
	l.SetSize(60, 20)
	l.SetConversation(testConversation())

	cmd, handled := l.HandleKey(tea.KeyPressMsg{Code: 'y', Text: "y"})
	if !handled || cmd == nil {
		t.Fatal("y should produce a copy command")
	}
	msg, ok := cmd().(CopiedMsg)
	if !ok || msg.Err != nil {
		t.Fatalf("unexpected result %#v", cmd())
	}
	if !strings.Contains(clip.Text(), "fmt.Println(1)") {
		t.Errorf("clipboard = %q", clip.Text())
	}
}

func TestMessageList_CopyError(t *testing.T) {
	clip := &clipboard.Memory{}
	clip.FailWith(errors.New("no display"))
	l := NewMessageList(clip)
	l.SetConversation(testConversation())

	cmd, _ := l.HandleKey(tea.KeyPressMsg{Code: 'y', Text: "y"})
	if msg := cmd().(CopiedMsg); msg.Err == nil {
		t.Error("expected copy error to be reported")
	}
}

func TestMessageList_CopyWithNothing(t *testing.T) {
	l := NewMessageList(&clipboard.Memory{})

	cmd, handled := l.HandleKey(tea.KeyPressMsg{Code: 'y', Text: "y"})
	if !handled {
		t.Error("y should still be consumed")
	}
	if cmd != nil {
		t.Error("nothing to copy should return no command")
	}
}

func TestMessageList_ScrollKeys(t *testing.T) {
	l := NewMessageList(nil)
	l.SetSize(40, 5)
	conv := &transcript.Conversation{ID: "long"}
	for i := 0; i < 30; i++ {
		conv.Messages = append(conv.Messages, transcript.Message{Role: transcript.RoleUser, Content: "line"})
	}
	l.SetConversation(conv)

	if !l.viewport.AtBottom() {
		t.Fatal("new conversation should scroll to the bottom")
	}
	if _, handled := l.HandleKey(tea.KeyPressMsg{Code: tea.KeyHome}); !handled {
		t.Fatal("home should be handled")
	}
	if !l.viewport.AtTop() {
		t.Error("home should scroll to the top")
	}
	if _, handled := l.HandleKey(tea.KeyPressMsg{Code: 'x', Text: "x"}); handled {
		t.Error("unrelated keys should fall through")
	}
}
