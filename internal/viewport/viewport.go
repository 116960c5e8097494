// Package viewport tracks a boolean predicate over the terminal width and
// notifies subscribers when its value flips.
package viewport

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/zhubert/chatshell/internal/events"
	"github.com/zhubert/chatshell/internal/logger"
)

// Predicate classifies a terminal width.
type Predicate func(width int) bool

// NarrowerThan returns a predicate that is true for widths at or below
// breakpoint.
func NarrowerThan(breakpoint int) Predicate {
	return func(width int) bool { return width <= breakpoint }
}

// Environment reports the current terminal width. ok is false when no
// width is available, e.g. when output is not a terminal.
type Environment interface {
	Width() (width int, ok bool)
}

// TerminalEnvironment reads the size of a terminal file descriptor.
type TerminalEnvironment struct {
	File *os.File
}

// Width implements Environment.
func (e TerminalEnvironment) Width() (int, bool) {
	if e.File == nil || !term.IsTerminal(e.File.Fd()) {
		return 0, false
	}
	w, _, err := term.GetSize(e.File.Fd())
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}

// FixedEnvironment always reports the same width.
type FixedEnvironment int

// Width implements Environment. Non-positive values report no width.
func (e FixedEnvironment) Width() (int, bool) {
	return int(e), e > 0
}

// Observer holds the live value of a Predicate.
type Observer struct {
	pred    Predicate
	width   int
	known   bool
	current bool
	changes *events.Stream[bool]
	closed  bool
	log     *slog.Logger
}

// NewObserver evaluates pred against env immediately. Without a usable
// environment width the value falls back to false.
func NewObserver(pred Predicate, env Environment) *Observer {
	o := &Observer{
		pred:    pred,
		changes: events.NewStream[bool](),
		log:     logger.WithComponent("viewport"),
	}
	if env != nil {
		if w, ok := env.Width(); ok {
			o.width, o.known = w, true
			o.current = pred(w)
		}
	}
	o.log.Debug("observer created", "width", o.width, "known", o.known, "current", o.current)
	return o
}

// Current returns the latest predicate value.
func (o *Observer) Current() bool {
	return o.current
}

// Width returns the last observed width and whether one is known.
func (o *Observer) Width() (int, bool) {
	return o.width, o.known
}

// Resize re-evaluates the predicate for a new width and notifies
// subscribers if the value changed.
func (o *Observer) Resize(width int) {
	if o.closed {
		return
	}
	o.width, o.known = width, true
	next := o.pred(width)
	if next == o.current {
		return
	}
	o.current = next
	o.log.Debug("predicate changed", "width", width, "current", next)

	o.changes.Publish(next)
}

// Subscribe registers fn to be called with each new value.
func (o *Observer) Subscribe(fn func(bool)) *events.Subscription {
	return o.changes.Subscribe(func(v bool) bool {
		fn(v)
		return false
	})
}

// Subscribers returns the number of live subscriptions.
func (o *Observer) Subscribers() int {
	return o.changes.Len()
}

// Close drops every subscription and ignores later resizes.
func (o *Observer) Close() {
	if o.closed {
		return
	}
	o.closed = true
	o.changes.Close()
	o.log.Debug("observer closed")
}
