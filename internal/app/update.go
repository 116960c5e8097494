package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/chatshell/internal/keys"
	"github.com/zhubert/chatshell/internal/ui"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.closed {
		return m, nil
	}

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.observer.Resize(msg.Width)

	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKey(msg))

	case tea.MouseClickMsg:
		cmds = append(cmds, m.handleClick(msg))

	case tea.MouseMotionMsg:
		if x, y, ok := m.messagesPoint(msg.Mouse()); ok {
			m.messages.HandleMouseMotion(x, y)
		}

	case tea.MouseReleaseMsg:
		if x, y, ok := m.messagesPoint(msg.Mouse()); ok {
			cmds = append(cmds, m.messages.HandleMouseRelease(x, y))
		}

	case tea.MouseWheelMsg:
		if m.messages.CanFocus() && !m.OverlayShown() {
			cmds = append(cmds, m.messages.Update(msg))
		}

	case frameMsg:
		if m.frames != nil {
			m.frames.Fire(msg.id)
		}

	case ui.FlashTickMsg:
		cmds = append(cmds, m.handleFlashTick())

	case ui.NewChatMsg:
		cmds = append(cmds, m.handleNewChat())

	case ui.SelectConversationMsg:
		m.selectConversation(msg.ID)

	case ui.SendMsg:
		cmds = append(cmds, m.handleSend(msg))

	case ReplyMsg:
		cmds = append(cmds, m.handleReply(msg))

	case ui.ComposeSubmitMsg:
		cmds = append(cmds, m.handleComposeSubmit(msg))

	case ui.ComposeCancelMsg:
		cmds = append(cmds, m.handleComposeCancel())

	case ui.CopiedMsg:
		cmds = append(cmds, m.handleCopied(msg))

	default:
		// Form field transitions and cursor blinks arrive as plain
		// messages from the components' own commands.
		if m.compose.CanFocus() {
			cmds = append(cmds, m.compose.Update(msg))
		}
		if m.tracker.Active() == m.composer {
			cmds = append(cmds, m.composer.Update(msg))
		}
	}

	if m.closed {
		return m, tea.Batch(cmds...)
	}
	m.reconcile()
	cmds = append(cmds, m.drainFrames())
	return m, tea.Batch(cmds...)
}

// handleKey dispatches a key press: global shortcuts on the key stream
// first, then Tab handling, then the registry, then the focused component.
func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if m.keys.Publish(msg) {
		return nil
	}

	key := msg.String()
	if key == keys.Tab || key == keys.ShiftTab {
		backward := key == keys.ShiftTab
		if !m.overlay.HandleTab(backward) {
			m.cycleFocus(backward)
		}
		return nil
	}

	if cmd, ok := m.ExecuteShortcut(key); ok {
		return cmd
	}

	if h := m.focusedHandler(); h != nil {
		cmd, _ := h.HandleKey(msg)
		return cmd
	}
	return nil
}

// handleClick handles backdrop clicks while the overlay is open and the
// header's toggle and view tabs otherwise.
func (m *Model) handleClick(msg tea.MouseClickMsg) tea.Cmd {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return nil
	}

	if m.OverlayShown() {
		if !m.dialog.InDialog(mouse.X, mouse.Y) {
			m.dismissSidebar()
		}
		return nil
	}

	if mouse.Y != 0 {
		if x, y, ok := m.messagesPoint(mouse); ok && m.messages.InBounds(x, y) {
			return m.messages.HandleMouseClick(x, y)
		}
		return nil
	}
	if m.header.ToggleAt(mouse.X) {
		m.toggleSidebar()
		return nil
	}
	if mode, ok := m.header.TabAt(mouse.X); ok && mode != m.view.Read() {
		m.setViewMode(mode)
	}
	return nil
}

// messagesPoint translates a terminal cell into message list coordinates.
// ok is false when the list is hidden or covered by the overlay. Drags
// may leave the panel, so the point is not clipped.
func (m *Model) messagesPoint(mouse tea.Mouse) (x, y int, ok bool) {
	if m.OverlayShown() || !m.messages.CanFocus() {
		return 0, 0, false
	}
	return mouse.X - m.ctx.SidebarWidth, mouse.Y - m.ctx.HeaderHeight, true
}

func (m *Model) drainFrames() tea.Cmd {
	if m.frames == nil {
		return nil
	}
	return m.frames.Drain()
}
