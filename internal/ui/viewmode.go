package ui

import (
	"strings"

	"github.com/zhubert/chatshell/internal/errors"
)

// ViewMode selects what the body of a non-dashboard layout shows.
type ViewMode int

const (
	ViewChat ViewMode = iota
	ViewCompose
)

func (v ViewMode) String() string {
	switch v {
	case ViewCompose:
		return "compose"
	default:
		return "chat"
	}
}

// Toggle returns the other view mode.
func (v ViewMode) Toggle() ViewMode {
	if v == ViewCompose {
		return ViewChat
	}
	return ViewCompose
}

// ParseViewMode accepts "chat" or "compose" in any case. Empty input
// means ViewChat.
func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "chat":
		return ViewChat, nil
	case "compose":
		return ViewCompose, nil
	}
	return ViewChat, errors.UnknownViewMode(s)
}
