// Package focus models keyboard focus for the shell and the modal overlay
// focus contract: capture the previous target on open, trap Tab inside the
// overlay while open, and restore the previous target on close.
//
// Everything here works against small capability interfaces, so the state
// machine runs the same over real components and over test fakes.
package focus

import (
	"log/slog"

	"github.com/zhubert/chatshell/internal/logger"
)

// Element is anything that can hold input focus.
type Element interface {
	// CanFocus reports whether the element is mounted and accepts focus.
	CanFocus() bool
}

// Container is an Element with focusable descendants, in Tab order.
type Container interface {
	Element
	Focusables() []Element
}

// Host is the focus primitive of the environment.
type Host interface {
	Active() Element
	SetActive(e Element) bool
}

// Focuser is implemented by elements that render differently when focused.
type Focuser interface {
	SetFocused(focused bool)
}

// Tracker is a Host that remembers the active element and toggles
// SetFocused on elements that implement Focuser.
type Tracker struct {
	active Element
	log    *slog.Logger
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{log: logger.WithComponent("focus")}
}

// Active returns the focused element, or nil if nothing focusable holds
// focus (including when the focused element has since been detached).
func (t *Tracker) Active() Element {
	if t.active == nil || !t.active.CanFocus() {
		return nil
	}
	return t.active
}

// SetActive moves focus to e. It returns false, leaving focus unchanged,
// if e is nil or cannot take focus.
func (t *Tracker) SetActive(e Element) bool {
	if e == nil || !e.CanFocus() {
		return false
	}
	if t.active == e {
		return true
	}
	if f, ok := t.active.(Focuser); ok {
		f.SetFocused(false)
	}
	t.active = e
	if f, ok := e.(Focuser); ok {
		f.SetFocused(true)
	}
	return true
}

// Blur clears focus.
func (t *Tracker) Blur() {
	if f, ok := t.active.(Focuser); ok {
		f.SetFocused(false)
	}
	t.active = nil
}

// Focusables filters c's descendants down to those that can take focus.
func Focusables(c Container) []Element {
	if c == nil {
		return nil
	}
	all := c.Focusables()
	out := make([]Element, 0, len(all))
	for _, e := range all {
		if e != nil && e.CanFocus() {
			out = append(out, e)
		}
	}
	return out
}

// IndexOf returns the position of e in items, or -1.
func IndexOf(items []Element, e Element) int {
	if e == nil {
		return -1
	}
	for i, item := range items {
		if item == e {
			return i
		}
	}
	return -1
}

// Cycle returns the index Tab (or Shift+Tab when backward) moves to from
// current, wrapping at both ends. A current of -1 enters at the first
// element going forward and at the last going backward. n must be > 0.
func Cycle(n, current int, backward bool) int {
	if current < 0 || current >= n {
		if backward {
			return n - 1
		}
		return 0
	}
	if backward {
		return (current - 1 + n) % n
	}
	return (current + 1) % n
}
