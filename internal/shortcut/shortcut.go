// Package shortcut implements the global sidebar shortcuts: Ctrl/Cmd+B
// toggles the sidebar and Escape dismisses it while it is an open overlay.
package shortcut

import (
	"log/slog"
	"unicode"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/chatshell/internal/events"
	"github.com/zhubert/chatshell/internal/keys"
	"github.com/zhubert/chatshell/internal/layout"
	"github.com/zhubert/chatshell/internal/logger"
)

// Actions connects the router to the state it gates on and the actions it
// triggers. All fields are required.
type Actions struct {
	Behavior func() layout.Behavior
	IsOpen   func() bool
	Toggle   func()
	Dismiss  func()
}

// Router listens on a key stream for the lifetime of the shell.
type Router struct {
	actions Actions
	sub     *events.Subscription
	log     *slog.Logger
}

// NewRouter subscribes a router to stream. Release it with Close.
func NewRouter(stream *events.Stream[tea.KeyPressMsg], actions Actions) *Router {
	r := &Router{
		actions: actions,
		log:     logger.WithComponent("shortcut"),
	}
	r.sub = stream.Subscribe(r.Handle)
	return r
}

// IsToggle reports whether msg is Ctrl+B or Super(Cmd)+B, ignoring case.
func IsToggle(msg tea.KeyPressMsg) bool {
	if msg.Mod&(tea.ModCtrl|tea.ModSuper) == 0 {
		return false
	}
	return unicode.ToLower(msg.Code) == 'b'
}

// IsDismiss reports whether msg is a bare Escape.
func IsDismiss(msg tea.KeyPressMsg) bool {
	return msg.String() == keys.Escape
}

// Handle routes one key press and reports whether it was consumed.
func (r *Router) Handle(msg tea.KeyPressMsg) bool {
	behavior := r.actions.Behavior()
	if behavior == layout.None {
		return false
	}

	switch {
	case IsToggle(msg):
		r.log.Debug("toggle shortcut", "key", msg.String(), "behavior", behavior.String())
		r.actions.Toggle()
		return true
	case IsDismiss(msg) && behavior == layout.Overlay && r.actions.IsOpen():
		r.log.Debug("dismiss shortcut")
		r.actions.Dismiss()
		return true
	}
	return false
}

// Close unsubscribes the router from its stream.
func (r *Router) Close() {
	r.sub.Close()
}
