package ui

import tea "charm.land/bubbletea/v2"

// KeyHandler is implemented by focusable components that react to keys
// while they hold focus. handled is false when the key should fall through.
type KeyHandler interface {
	HandleKey(msg tea.KeyPressMsg) (cmd tea.Cmd, handled bool)
}

// NewChatMsg asks the shell to start a new conversation.
type NewChatMsg struct{}

// SelectConversationMsg asks the shell to show a conversation.
type SelectConversationMsg struct {
	ID string
}

// SendMsg carries composer text to be appended to the active conversation.
type SendMsg struct {
	Text string
}

// ComposeSubmitMsg is emitted when the compose form completes.
type ComposeSubmitMsg struct {
	Title   string
	Model   string
	Message string
}

// ComposeCancelMsg is emitted when the compose form is aborted.
type ComposeCancelMsg struct{}

// CopiedMsg reports the outcome of copying a message to the clipboard.
type CopiedMsg struct {
	Err error
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
