// Package ui provides the visual components of the chatshell TUI.
//
// # Layout
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line): toggle, title, view tabs, slot     │
//	├─────────────────┬───────────────────────────────────┤
//	│                 │  MessageList                      │
//	│   Sidebar       │                                   │
//	│   (inline)      ├───────────────────────────────────┤
//	│                 │  Composer                         │
//	├─────────────────┴───────────────────────────────────┤
//	│ Footer (1 line): key hints or a flash message       │
//	└─────────────────────────────────────────────────────┘
//
// When the sidebar is an overlay it is drawn by Overlay as a dialog over a
// dimmed backdrop instead of taking a column. In compose view the
// ComposeView form replaces the message list and composer.
//
// # Focus
//
// Focusable components implement focus.Element (and focus.Focuser to
// render their focused state). The app package decides which one holds
// focus; components only react through KeyHandler and report intent back
// as messages (NewChatMsg, SendMsg, ComposeSubmitMsg, ...) or, for the
// header, through the callbacks in HeaderProps.
//
// # Sizing
//
// ViewContext owns the layout arithmetic. Widths passed to SetWidth and
// SetSize are outer widths, borders included.
package ui
