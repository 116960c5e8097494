package ui

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/chatshell/internal/clipboard"
	"github.com/zhubert/chatshell/internal/transcript"
)

// selectionList builds a sized list showing text, with a frozen clock.
func selectionList(t *testing.T, text string) (*MessageList, *clipboard.Memory) {
	t.Helper()
	clip := &clipboard.Memory{}
	l := NewMessageList(clip)
	frozen := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return frozen }
	l.SetSize(60, 12)
	l.SetConversation(&transcript.Conversation{
		ID:       "sel",
		Messages: []transcript.Message{{Role: transcript.RoleAssistant, Content: text}},
	})
	return l, clip
}

// panelPos returns the panel-relative cell where text starts.
func panelPos(t *testing.T, l *MessageList, text string) (x, y int) {
	t.Helper()
	for i, line := range strings.Split(ansi.Strip(l.viewport.View()), "\n") {
		if idx := strings.Index(line, text); idx >= 0 {
			return ansi.StringWidth(line[:idx]) + 1, i + 1
		}
	}
	t.Fatalf("%q not in viewport", text)
	return 0, 0
}

func runCopy(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a copy command")
	}
	if msg, ok := cmd().(CopiedMsg); !ok || msg.Err != nil {
		t.Fatalf("copy result = %#v", msg)
	}
}

func TestSelection_Drag(t *testing.T) {
	l, clip := selectionList(t, "hello brave world")
	x, y := panelPos(t, l, "hello")

	if cmd := l.HandleMouseClick(x, y); cmd != nil {
		t.Error("a single click should not copy")
	}
	l.HandleMouseMotion(x+3, y)
	runCopy(t, l.HandleMouseRelease(x+11, y))

	if got := clip.Text(); got != "hello brave" {
		t.Errorf("clipboard = %q, want %q", got, "hello brave")
	}
	if !l.HasSelection() {
		t.Error("selection should stay visible after release")
	}
}

func TestSelection_BackwardDrag(t *testing.T) {
	l, clip := selectionList(t, "hello brave world")
	x, y := panelPos(t, l, "brave")

	l.HandleMouseClick(x+5, y)
	runCopy(t, l.HandleMouseRelease(x, y))
	if got := clip.Text(); got != "brave" {
		t.Errorf("clipboard = %q, want %q", got, "brave")
	}
}

func TestSelection_ClickWithoutDrag(t *testing.T) {
	l, clip := selectionList(t, "hello brave world")
	x, y := panelPos(t, l, "hello")

	l.HandleMouseClick(x, y)
	if cmd := l.HandleMouseRelease(x, y); cmd != nil {
		t.Error("an empty selection should not copy")
	}
	if l.HasSelection() || clip.Text() != "" {
		t.Error("nothing should be selected")
	}
	if cmd := l.HandleMouseRelease(x+3, y); cmd != nil {
		t.Error("a release without a drag should be ignored")
	}
}

func TestSelection_DoubleClickSelectsWord(t *testing.T) {
	l, clip := selectionList(t, "hello brave world")
	x, y := panelPos(t, l, "brave")

	l.HandleMouseClick(x+2, y)
	l.HandleMouseRelease(x+2, y)
	runCopy(t, l.HandleMouseClick(x+2, y))

	if got := clip.Text(); got != "brave" {
		t.Errorf("clipboard = %q, want %q", got, "brave")
	}
	if got := l.SelectedText(); got != "brave" {
		t.Errorf("SelectedText = %q", got)
	}
}

func TestSelection_SlowSecondClickRestarts(t *testing.T) {
	l, _ := selectionList(t, "hello brave world")
	x, y := panelPos(t, l, "brave")

	now := l.now()
	l.HandleMouseClick(x+2, y)
	l.now = func() time.Time { return now.Add(time.Second) }
	if cmd := l.HandleMouseClick(x+2, y); cmd != nil {
		t.Error("a slow second click is a new single click")
	}
	if l.HasSelection() {
		t.Error("a single click selects nothing")
	}
}

func TestSelection_Highlight(t *testing.T) {
	l, _ := selectionList(t, "hello brave world")
	plain := l.View()

	x, y := panelPos(t, l, "hello")
	l.HandleMouseClick(x, y)
	l.HandleMouseRelease(x+5, y)

	highlighted := l.View()
	if highlighted == plain {
		t.Error("selection should change the rendered view")
	}
	if !strings.Contains(stripANSI(highlighted), "hello brave world") {
		t.Errorf("highlight should keep the text:\n%s", stripANSI(highlighted))
	}
}

func TestSelection_ClearedByContentAndScroll(t *testing.T) {
	l, _ := selectionList(t, "hello brave world")
	x, y := panelPos(t, l, "hello")

	l.HandleMouseClick(x, y)
	l.HandleMouseRelease(x+5, y)
	l.Update(tea.MouseWheelMsg{X: x, Y: y, Button: tea.MouseWheelDown})
	if l.HasSelection() {
		t.Error("scrolling should drop the selection")
	}

	l.HandleMouseClick(x, y)
	l.HandleMouseRelease(x+5, y)
	l.SetConversation(testConversation())
	if l.HasSelection() {
		t.Error("new content should drop the selection")
	}
}

func TestSelection_InBounds(t *testing.T) {
	l, _ := selectionList(t, "hi")

	if !l.InBounds(0, 0) || !l.InBounds(59, 11) {
		t.Error("corners should be inside")
	}
	if l.InBounds(60, 0) || l.InBounds(0, 12) || l.InBounds(-1, 0) {
		t.Error("cells past the panel are outside")
	}
	l.SetMounted(false)
	if l.InBounds(1, 1) {
		t.Error("an unmounted list has no bounds")
	}
}
