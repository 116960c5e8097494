// Package events provides a small synchronous publish/subscribe stream with
// explicit disposal handles. The shell feeds terminal events (key presses,
// width changes) through streams so listeners can be released at teardown.
package events

import (
	"maps"
	"slices"
)

// Handler receives a published value. Returning true consumes the value and
// stops delivery to later handlers.
type Handler[T any] func(v T) bool

// Stream delivers values to handlers in subscription order.
type Stream[T any] struct {
	handlers map[int]Handler[T]
	nextID   int
	closed   bool
}

// NewStream creates an open stream.
func NewStream[T any]() *Stream[T] {
	return &Stream[T]{handlers: make(map[int]Handler[T])}
}

// Subscribe registers h. Subscribing to a closed stream returns an inert
// handle.
func (s *Stream[T]) Subscribe(h Handler[T]) *Subscription {
	if s.closed {
		return &Subscription{}
	}
	id := s.nextID
	s.nextID++
	s.handlers[id] = h
	return &Subscription{cancel: func() { delete(s.handlers, id) }}
}

// Publish delivers v and reports whether a handler consumed it. Handlers
// may unsubscribe themselves or others during delivery.
func (s *Stream[T]) Publish(v T) bool {
	if s.closed {
		return false
	}
	for _, id := range slices.Sorted(maps.Keys(s.handlers)) {
		h, ok := s.handlers[id]
		if !ok {
			continue
		}
		if h(v) {
			return true
		}
	}
	return false
}

// Len returns the number of live subscriptions.
func (s *Stream[T]) Len() int {
	return len(s.handlers)
}

// Close drops all handlers; later publishes are ignored.
func (s *Stream[T]) Close() {
	s.closed = true
	clear(s.handlers)
}

// Subscription is a disposal handle.
type Subscription struct {
	cancel func()
}

// Close releases the subscription. It is safe to call more than once and
// on a nil handle.
func (s *Subscription) Close() {
	if s == nil || s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
}
