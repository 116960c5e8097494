// Package controllable implements a state cell that is either owned by its
// caller (controlled) or by itself (uncontrolled).
//
// A controlled Value always reports the caller's value; writes only notify
// the caller, who decides whether to feed a new value back through Sync.
// An uncontrolled Value stores writes itself. Both modes call onChange
// exactly once per write.
package controllable

import (
	"log/slog"

	"github.com/zhubert/chatshell/internal/logger"
)

// Value is a controllable state cell.
type Value[T any] struct {
	name       string
	external   T
	internal   T
	controlled bool
	onChange   func(T)

	warned bool
	log    *slog.Logger
}

// New creates a Value. It is controlled iff external is non-nil, and stays
// in that mode for its whole lifetime. def seeds the internal value.
func New[T any](name string, external *T, def T, onChange func(T)) *Value[T] {
	v := &Value[T]{
		name:     name,
		internal: def,
		onChange: onChange,
		log:      logger.WithComponent("controllable"),
	}
	if external != nil {
		v.controlled = true
		v.external = *external
	}
	return v
}

// Controlled reports whether the caller owns the value.
func (v *Value[T]) Controlled() bool {
	return v.controlled
}

// Read returns the effective value.
func (v *Value[T]) Read() T {
	if v.controlled {
		return v.external
	}
	return v.internal
}

// Write stores next (uncontrolled only) and notifies onChange.
func (v *Value[T]) Write(next T) {
	if !v.controlled {
		v.internal = next
	}
	if v.onChange != nil {
		v.onChange(next)
	}
}

// Update resolves fn against the current effective value, then behaves
// like Write with the result.
func (v *Value[T]) Update(fn func(prev T) T) {
	v.Write(fn(v.Read()))
}

// SetOnChange replaces the change callback.
func (v *Value[T]) SetOnChange(fn func(T)) {
	v.onChange = fn
}

// Sync re-supplies the caller's value. Switching between controlled and
// uncontrolled after construction is a caller bug: it is logged once and
// ignored, so a controlled value keeps its last external value.
func (v *Value[T]) Sync(external *T) {
	switch {
	case v.controlled && external != nil:
		v.external = *external
	case v.controlled && external == nil:
		v.warnModeSwitch("controlled", "uncontrolled")
	case !v.controlled && external != nil:
		v.warnModeSwitch("uncontrolled", "controlled")
	}
}

func (v *Value[T]) warnModeSwitch(from, to string) {
	if v.warned {
		return
	}
	v.warned = true
	v.log.Warn("value switched ownership after construction; keeping original mode",
		"value", v.name, "from", from, "to", to)
}
