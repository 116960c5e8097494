package app

import (
	"github.com/zhubert/chatshell/internal/focus"
	"github.com/zhubert/chatshell/internal/layout"
	"github.com/zhubert/chatshell/internal/ui"
)

// focusRing returns the elements Tab cycles through while no overlay is
// open, in screen order.
func (m *Model) focusRing() []focus.Element {
	all := []focus.Element{m.header}
	if m.Behavior() == layout.Inline && m.open.Read() {
		all = append(all, m.sidebar.Focusables()...)
	}
	all = append(all, m.messages, m.composer, m.compose)

	out := all[:0]
	for _, e := range all {
		if e.CanFocus() {
			out = append(out, e)
		}
	}
	return out
}

// cycleFocus moves focus one step around the ring.
func (m *Model) cycleFocus(backward bool) {
	items := m.focusRing()
	if len(items) == 0 {
		return
	}
	next := focus.Cycle(len(items), focus.IndexOf(items, m.tracker.Active()), backward)
	m.tracker.SetActive(items[next])
}

// ensureFocus gives focus to the input area when nothing focusable holds
// it, for example after the focused element was unmounted.
func (m *Model) ensureFocus() {
	if m.tracker.Active() != nil {
		return
	}
	for _, e := range []focus.Element{m.composer, m.compose, m.messages, m.header} {
		if m.tracker.SetActive(e) {
			m.log.Debug("focus defaulted", "element", elementName(e))
			return
		}
	}
	m.tracker.Blur()
}

// focusedHandler returns the focused element's key handler, if any.
func (m *Model) focusedHandler() ui.KeyHandler {
	h, _ := m.tracker.Active().(ui.KeyHandler)
	return h
}

// Focused returns the element holding focus, or nil.
func (m *Model) Focused() focus.Element {
	return m.tracker.Active()
}

func elementName(e focus.Element) string {
	switch e := e.(type) {
	case *ui.Header:
		return "header"
	case *ui.Sidebar:
		return "sidebar"
	case *ui.SidebarEntry:
		if e.IsNewChat() {
			return "sidebar:new"
		}
		return "sidebar:" + e.ConvID
	case *ui.MessageList:
		return "messages"
	case *ui.Composer:
		return "composer"
	case *ui.ComposeView:
		return "compose"
	case nil:
		return "none"
	default:
		return "unknown"
	}
}
