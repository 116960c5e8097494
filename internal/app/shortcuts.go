package app

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/chatshell/internal/keys"
	"github.com/zhubert/chatshell/internal/layout"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for the shell's own shortcuts.
type Shortcut struct {
	Key         string                 // The key binding (e.g., "f2", "ctrl+c")
	DisplayKey  string                 // Display name in the footer; defaults to Key
	Description string                 // Human-readable description
	Category    string                 // Grouping for documentation
	Handler     func(m *Model) tea.Cmd // Action to perform
	Condition   func(m *Model) bool    // Optional extra condition
	Label       func(m *Model) string  // Optional dynamic description
}

// Categories for organizing shortcuts
const (
	CategoryLayout  = "Layout"
	CategoryFocus   = "Focus"
	CategoryGeneral = "General"
)

// ShortcutRegistry lists the shortcuts dispatched by ExecuteShortcut.
var ShortcutRegistry = []Shortcut{
	{
		Key:         keys.F2,
		DisplayKey:  "F2",
		Description: "Cycle layout mode",
		Category:    CategoryLayout,
		Handler:     shortcutCycleMode,
		Label: func(m *Model) string {
			return "layout: " + m.mode.Read().Next().String()
		},
	},
	{
		Key:         keys.F3,
		DisplayKey:  "F3",
		Description: "Switch chat / compose",
		Category:    CategoryLayout,
		Handler:     shortcutToggleView,
		Condition:   func(m *Model) bool { return m.Behavior() != layout.None },
		Label: func(m *Model) string {
			return m.view.Read().Toggle().String()
		},
	},
	{
		Key:         keys.CtrlC,
		DisplayKey:  "ctrl+c",
		Description: "quit",
		Category:    CategoryGeneral,
		Handler:     shortcutQuit,
	},
}

// DisplayOnlyShortcuts are handled elsewhere (the shortcut router, the
// focus managers, focused components) and only appear in hints.
var DisplayOnlyShortcuts = []Shortcut{
	{
		Key:         keys.CtrlB,
		DisplayKey:  "ctrl+b",
		Description: "sidebar",
		Category:    CategoryLayout,
		Condition:   func(m *Model) bool { return m.Behavior() != layout.None },
	},
	{
		Key:         keys.Escape,
		DisplayKey:  "esc",
		Description: "close",
		Category:    CategoryLayout,
		Condition:   func(m *Model) bool { return m.OverlayShown() },
	},
	{
		Key:         keys.Tab,
		DisplayKey:  "tab",
		Description: "focus",
		Category:    CategoryFocus,
	},
	{
		Key:         keys.Enter,
		DisplayKey:  "enter",
		Description: "send",
		Category:    CategoryFocus,
		Condition:   func(m *Model) bool { return m.tracker.Active() == m.composer },
	},
	{
		Key:         "y",
		DisplayKey:  "y",
		Description: "copy",
		Category:    CategoryFocus,
		Condition: func(m *Model) bool {
			return m.tracker.Active() == m.messages && !m.messages.IsEmpty()
		},
	},
}

// isShortcutApplicable reports whether a shortcut's guard passes.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	return s.Condition == nil || s.Condition(m)
}

// ExecuteShortcut runs the registry shortcut bound to key. The bool is
// false when no shortcut matched or its guard failed, so the key should
// continue to the focused component.
func (m *Model) ExecuteShortcut(key string) (tea.Cmd, bool) {
	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if !m.isShortcutApplicable(s) {
			m.log.Debug("shortcut guard failed", "key", key)
			return nil, false
		}
		m.log.Debug("executing shortcut", "key", key)
		return s.Handler(m), true
	}
	return nil, false
}

// footerBindings builds the footer hints for the current state.
func (m *Model) footerBindings() []key.Binding {
	var out []key.Binding
	add := func(s Shortcut) {
		display := s.DisplayKey
		if display == "" {
			display = s.Key
		}
		desc := s.Description
		if s.Label != nil {
			desc = s.Label(m)
		}
		b := key.NewBinding(
			key.WithKeys(s.Key),
			key.WithHelp(display, desc),
		)
		b.SetEnabled(m.isShortcutApplicable(s))
		out = append(out, b)
	}
	for _, s := range DisplayOnlyShortcuts {
		add(s)
	}
	for _, s := range ShortcutRegistry {
		add(s)
	}
	return out
}

func shortcutCycleMode(m *Model) tea.Cmd {
	next := m.mode.Read().Next()
	m.setMode(next)
	return m.ShowFlashInfo(fmt.Sprintf("Layout: %s", m.mode.Read()))
}

func shortcutToggleView(m *Model) tea.Cmd {
	m.setViewMode(m.view.Read().Toggle())
	return nil
}

func shortcutQuit(m *Model) tea.Cmd {
	m.Close()
	return tea.Quit
}
