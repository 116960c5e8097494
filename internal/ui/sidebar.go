package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
	"github.com/zhubert/chatshell/internal/focus"
	"github.com/zhubert/chatshell/internal/keys"
	"github.com/zhubert/chatshell/internal/transcript"
)

// SidebarEntry is one focusable row of the sidebar. Entries are detached
// when their conversation disappears; a detached entry never takes focus
// again.
type SidebarEntry struct {
	ConvID   string // empty for the "+ New chat" row
	Title    string
	owner    *Sidebar
	detached bool
	focused  bool
}

// IsNewChat reports whether this is the "+ New chat" row.
func (e *SidebarEntry) IsNewChat() bool {
	return e.ConvID == ""
}

// CanFocus implements focus.Element.
func (e *SidebarEntry) CanFocus() bool {
	return !e.detached && e.owner.mounted
}

// SetFocused implements focus.Focuser.
func (e *SidebarEntry) SetFocused(focused bool) {
	e.focused = focused
}

// HandleKey selects the entry on Enter.
func (e *SidebarEntry) HandleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	if msg.String() != keys.Enter {
		return nil, false
	}
	if e.IsNewChat() {
		return emit(NewChatMsg{}), true
	}
	return emit(SelectConversationMsg{ID: e.ConvID}), true
}

// Sidebar lists conversations. It is a focus.Container over its entries.
type Sidebar struct {
	width, height int
	mounted       bool
	focused       bool
	top, footer   string
	selectedID    string

	newChat *SidebarEntry
	entries []*SidebarEntry
	byID    map[string]*SidebarEntry
}

// NewSidebar creates an unmounted, empty sidebar.
func NewSidebar() *Sidebar {
	s := &Sidebar{byID: make(map[string]*SidebarEntry)}
	s.newChat = &SidebarEntry{Title: "+ New chat", owner: s}
	return s
}

// SetSize sets the outer size of the sidebar panel.
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SetMounted mounts or unmounts the sidebar. Unmounted entries cannot
// take focus.
func (s *Sidebar) SetMounted(m bool) {
	s.mounted = m
}

// Mounted reports whether the sidebar is on screen.
func (s *Sidebar) Mounted() bool {
	return s.mounted
}

// SetSlots sets the text shown above and below the conversation list.
func (s *Sidebar) SetSlots(top, footer string) {
	s.top = top
	s.footer = footer
}

// SetSelected marks the active conversation.
func (s *Sidebar) SetSelected(id string) {
	s.selectedID = id
}

// SetConversations replaces the list. Entries for conversations that are
// still present are reused so focus survives a refresh.
func (s *Sidebar) SetConversations(convs []transcript.Conversation) {
	next := make(map[string]*SidebarEntry, len(convs))
	entries := make([]*SidebarEntry, 0, len(convs))
	for _, c := range convs {
		e, ok := s.byID[c.ID]
		if !ok {
			e = &SidebarEntry{ConvID: c.ID, owner: s}
		}
		e.Title = c.Title
		next[c.ID] = e
		entries = append(entries, e)
	}
	for id, e := range s.byID {
		if _, ok := next[id]; !ok {
			e.detached = true
		}
	}
	s.byID = next
	s.entries = entries
}

// Entries returns the conversation rows, excluding "+ New chat".
func (s *Sidebar) Entries() []*SidebarEntry {
	return s.entries
}

// NewChatEntry returns the "+ New chat" row.
func (s *Sidebar) NewChatEntry() *SidebarEntry {
	return s.newChat
}

// CanFocus implements focus.Element.
func (s *Sidebar) CanFocus() bool {
	return s.mounted
}

// SetFocused implements focus.Focuser.
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// Focusables implements focus.Container.
func (s *Sidebar) Focusables() []focus.Element {
	out := make([]focus.Element, 0, len(s.entries)+1)
	out = append(out, s.newChat)
	for _, e := range s.entries {
		out = append(out, e)
	}
	return out
}

func (s *Sidebar) hasFocusWithin() bool {
	if s.focused || s.newChat.focused {
		return true
	}
	for _, e := range s.entries {
		if e.focused {
			return true
		}
	}
	return false
}

// View renders the sidebar as a bordered panel.
func (s *Sidebar) View() string {
	style := PanelStyle
	if s.hasFocusWithin() {
		style = PanelFocusedStyle
	}
	return style.Width(s.width).Height(s.height).Render(s.Content(s.width - BorderSize))
}

// Content renders the sidebar body without a frame, for hosts that draw
// their own (the overlay dialog).
func (s *Sidebar) Content(width int) string {
	itemWidth := max(width-2, 1)
	var lines []string

	lines = append(lines, PanelTitleStyle.Render("Conversations"))
	if s.top != "" {
		lines = append(lines, SidebarSlotStyle.Render(runewidth.Truncate(s.top, itemWidth, "…")))
	}
	lines = append(lines, s.renderEntry(s.newChat, itemWidth))
	for _, e := range s.entries {
		lines = append(lines, s.renderEntry(e, itemWidth))
	}
	if len(s.entries) == 0 {
		lines = append(lines, SidebarSlotStyle.Render("No conversations yet"))
	}

	body := strings.Join(lines, "\n")
	if s.footer == "" {
		return body
	}

	footer := SidebarSlotStyle.Render(runewidth.Truncate(s.footer, itemWidth, "…"))
	inner := s.height - BorderSize
	if gap := inner - lipgloss.Height(body) - 1; gap > 0 {
		body += strings.Repeat("\n", gap)
	}
	return body + "\n" + footer
}

func (s *Sidebar) renderEntry(e *SidebarEntry, width int) string {
	mark := "  "
	if !e.IsNewChat() && e.ConvID == s.selectedID {
		mark = SidebarActiveMarkStyle.Render("●") + " "
	}
	title := runewidth.Truncate(e.Title, max(width-2, 1), "…")
	if e.focused {
		return SidebarSelectedStyle.Render(mark + title)
	}
	return SidebarItemStyle.Render(mark + title)
}
