package app

import "github.com/zhubert/chatshell/internal/ui"

// Role describes how assistive output should announce a region.
type Role struct {
	Role  string
	Modal bool
	Label string
}

// OverlayRole describes the sidebar overlay: a modal dialog labelled
// "Sidebar".
func (m *Model) OverlayRole() Role {
	return Role{Role: "dialog", Modal: true, Label: ui.OverlayTitle}
}

// BackdropAction names what activating the overlay backdrop does.
func (m *Model) BackdropAction() string {
	return "close"
}
