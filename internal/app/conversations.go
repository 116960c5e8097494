package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/chatshell/internal/transcript"
	"github.com/zhubert/chatshell/internal/ui"
)

// refreshConversations reloads the sidebar list and the message list from
// the store.
func (m *Model) refreshConversations() {
	m.sidebar.SetConversations(m.store.List())
	m.sidebar.SetSelected(m.activeID)
	if conv, ok := m.store.Get(m.activeID); ok {
		m.messages.SetConversation(&conv)
	} else {
		m.messages.SetConversation(nil)
	}
}

// ActiveConversation returns the conversation shown in the message list.
func (m *Model) ActiveConversation() (transcript.Conversation, bool) {
	return m.store.Get(m.activeID)
}

// selectConversation shows id in chat view. Picking from the overlay also
// dismisses it, since the overlay covers the conversation.
func (m *Model) selectConversation(id string) {
	if _, ok := m.store.Get(id); !ok {
		m.log.Warn("select of unknown conversation", "id", id)
		return
	}
	m.activeID = id
	m.log.Debug("conversation selected", "id", id)
	m.refreshConversations()
	if m.view.Read() != ui.ViewChat {
		m.setViewMode(ui.ViewChat)
	}
	if m.OverlayShown() {
		m.dismissSidebar()
	}
}

// ReplyMsg appends an assistant message to a conversation. An empty
// ConversationID targets the active conversation.
type ReplyMsg struct {
	ConversationID string
	Content        string
}

func (m *Model) handleReply(msg ReplyMsg) tea.Cmd {
	id := msg.ConversationID
	if id == "" {
		id = m.activeID
	}
	if _, ok := m.store.Append(id, transcript.RoleAssistant, msg.Content); !ok {
		m.log.Warn("reply for unknown conversation", "id", id)
		return nil
	}
	m.refreshConversations()
	return nil
}

func (m *Model) handleNewChat() tea.Cmd {
	conv := m.store.Create("", "")
	m.selectConversation(conv.ID)
	return m.ShowFlashInfo("Started a new chat")
}

func (m *Model) handleSend(msg ui.SendMsg) tea.Cmd {
	if _, ok := m.store.Get(m.activeID); !ok {
		m.activeID = m.store.Create("", "").ID
	}
	if _, ok := m.store.Append(m.activeID, transcript.RoleUser, msg.Text); !ok {
		return m.ShowFlashError("Could not send message")
	}
	m.refreshConversations()
	return nil
}

func (m *Model) handleComposeSubmit(msg ui.ComposeSubmitMsg) tea.Cmd {
	conv := m.store.Create(msg.Title, msg.Model)
	if msg.Message != "" {
		m.store.Append(conv.ID, transcript.RoleUser, msg.Message)
	}
	m.selectConversation(conv.ID)
	return m.ShowFlashSuccess("Created " + conv.Title)
}

func (m *Model) handleComposeCancel() tea.Cmd {
	m.setViewMode(ui.ViewChat)
	return nil
}

func (m *Model) handleCopied(msg ui.CopiedMsg) tea.Cmd {
	if msg.Err != nil {
		m.log.Warn("copy failed", "error", msg.Err)
		return m.ShowFlashError("Copy failed: " + msg.Err.Error())
	}
	return m.ShowFlashSuccess("Copied to clipboard")
}
