package ui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/chatshell/internal/clipboard"
	"github.com/zhubert/chatshell/internal/keys"
	"github.com/zhubert/chatshell/internal/transcript"
)

// MessageList shows the active conversation in a scrollable viewport.
type MessageList struct {
	viewport      viewport.Model
	width, height int
	mounted       bool
	focused       bool
	conv          *transcript.Conversation
	empty         string
	clip          clipboard.Writer
	sel           selection
	now           func() time.Time
}

// NewMessageList creates a message list that copies through clip.
func NewMessageList(clip clipboard.Writer) *MessageList {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	return &MessageList{viewport: vp, clip: clip, mounted: true, sel: newSelection(), now: time.Now}
}

// SetSize sets the outer size of the panel.
func (l *MessageList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.viewport.SetWidth(max(width-BorderSize, 0))
	l.viewport.SetHeight(max(height-BorderSize, 0))
	l.refresh()
}

// SetMounted mounts or unmounts the list.
func (l *MessageList) SetMounted(m bool) {
	l.mounted = m
}

// SetEmptyState sets the text shown when there is nothing to display.
func (l *MessageList) SetEmptyState(s string) {
	l.empty = s
	l.refresh()
}

// SetConversation shows conv, or the empty state when conv is nil, and
// scrolls to the newest message.
func (l *MessageList) SetConversation(conv *transcript.Conversation) {
	l.conv = conv
	l.sel.clear()
	l.refresh()
	l.viewport.GotoBottom()
}

// CanFocus implements focus.Element.
func (l *MessageList) CanFocus() bool {
	return l.mounted
}

// SetFocused implements focus.Focuser.
func (l *MessageList) SetFocused(focused bool) {
	l.focused = focused
}

// HandleKey scrolls the viewport and copies the latest message on "y".
func (l *MessageList) HandleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	key := msg.String()
	if key != "y" {
		l.sel.clear()
	}
	switch key {
	case keys.Up, "k":
		l.viewport.ScrollUp(1)
	case keys.Down, "j":
		l.viewport.ScrollDown(1)
	case keys.PgUp:
		l.viewport.PageUp()
	case keys.PgDown:
		l.viewport.PageDown()
	case keys.Home:
		l.viewport.GotoTop()
	case keys.End:
		l.viewport.GotoBottom()
	case "y":
		return l.copyLatest(), true
	default:
		return nil, false
	}
	return nil, true
}

// Update forwards non-key messages (mouse wheel) to the viewport.
// Scrolling drops the selection.
func (l *MessageList) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.MouseWheelMsg); ok {
		l.sel.clear()
	}
	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)
	return cmd
}

func (l *MessageList) copyLatest() tea.Cmd {
	if l.conv == nil || len(l.conv.Messages) == 0 || l.clip == nil {
		return nil
	}
	text := l.conv.Messages[len(l.conv.Messages)-1].Content
	clip := l.clip
	return func() tea.Msg {
		return CopiedMsg{Err: clip.WriteText(text)}
	}
}

// IsEmpty reports whether the empty state is showing.
func (l *MessageList) IsEmpty() bool {
	return l.conv == nil || len(l.conv.Messages) == 0
}

func (l *MessageList) refresh() {
	if l.IsEmpty() {
		l.viewport.SetContent("")
		return
	}
	width := l.viewport.Width()
	var sb strings.Builder
	for i, m := range l.conv.Messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(roleLabel(m.Role))
		sb.WriteString("\n")
		sb.WriteString(ChatMessageStyle.Render(renderContent(m.Content, width)))
	}
	l.viewport.SetContent(sb.String())
}

func roleLabel(r transcript.Role) string {
	switch r {
	case transcript.RoleUser:
		return ChatUserStyle.Render("You")
	case transcript.RoleAssistant:
		return ChatAssistantStyle.Render("Assistant")
	default:
		return ChatSystemStyle.Render("System")
	}
}

// View renders the message list panel.
func (l *MessageList) View() string {
	style := PanelStyle
	if l.focused {
		style = PanelFocusedStyle
	}

	var content string
	if l.IsEmpty() {
		empty := l.empty
		if empty == "" {
			empty = "No messages yet. Start typing below."
		}
		content = lipgloss.Place(l.viewport.Width(), l.viewport.Height(),
			lipgloss.Center, lipgloss.Center, ChatEmptyStyle.Render(empty))
	} else {
		content = l.selectionView(l.viewport.View())
	}
	return style.Width(l.width).Height(l.height).Render(content)
}
