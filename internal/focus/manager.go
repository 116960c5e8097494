package focus

import (
	"log/slog"

	"github.com/zhubert/chatshell/internal/logger"
)

// Manager enforces modal focus semantics for a single overlay. It owns the
// only reference to the element focused before the overlay opened.
type Manager struct {
	host  Host
	sched Scheduler

	open      bool
	container Container
	memento   Element
	pending   Task
	disposed  bool

	log *slog.Logger
}

// NewManager creates a closed Manager.
func NewManager(host Host, sched Scheduler) *Manager {
	return &Manager{
		host:  host,
		sched: sched,
		log:   logger.WithComponent("focus"),
	}
}

// IsOpen reports whether the overlay is open.
func (m *Manager) IsOpen() bool {
	return m.open
}

// HasMemento reports whether a previous focus target is being held.
func (m *Manager) HasMemento() bool {
	return m.memento != nil
}

// Pending reports whether the deferred focus move has not run yet.
func (m *Manager) Pending() bool {
	return m.pending != nil
}

// Open transitions Closed -> Open for container c. The current focus is
// captured first, then focus moves into c on the next frame. Calling Open
// while already open does nothing.
func (m *Manager) Open(c Container) {
	if m.disposed || m.open {
		return
	}
	m.open = true
	m.container = c

	if m.memento == nil {
		m.memento = m.host.Active()
	}
	m.log.Debug("overlay opened", "captured", m.memento != nil)

	m.cancelPending()
	m.pending = m.sched.Schedule(func() {
		m.pending = nil
		if m.disposed || !m.open {
			return
		}
		m.focusInitial()
	})
}

// focusInitial moves focus to the first focusable descendant, or to the
// container itself when it has none.
func (m *Manager) focusInitial() {
	for _, e := range Focusables(m.container) {
		if m.host.SetActive(e) {
			return
		}
	}
	if m.container != nil && !m.host.SetActive(m.container) {
		m.log.Debug("overlay container could not take focus")
	}
}

// HandleTab traps Tab and Shift+Tab inside the open overlay. It returns
// true when the key was consumed, which is always the case while open,
// including when there is nothing to focus.
func (m *Manager) HandleTab(backward bool) bool {
	if m.disposed || !m.open {
		return false
	}
	items := Focusables(m.container)
	if len(items) == 0 {
		return true
	}
	next := Cycle(len(items), IndexOf(items, m.host.Active()), backward)
	m.host.SetActive(items[next])
	return true
}

// Close transitions Open -> Closed: focus returns to the captured target
// when it can still take focus, then the memento is cleared.
func (m *Manager) Close() {
	if m.disposed || !m.open {
		return
	}
	m.open = false
	m.cancelPending()

	restored := false
	if m.memento != nil && m.memento.CanFocus() {
		restored = m.host.SetActive(m.memento)
	}
	m.memento = nil
	m.container = nil
	m.log.Debug("overlay closed", "restored", restored)
}

// Dispose cancels any pending focus move and makes the Manager inert.
func (m *Manager) Dispose() {
	if m.disposed {
		return
	}
	m.cancelPending()
	m.disposed = true
	m.open = false
	m.memento = nil
	m.container = nil
	m.log.Debug("focus manager disposed")
}

func (m *Manager) cancelPending() {
	if m.pending != nil {
		m.pending.Cancel()
		m.pending = nil
	}
}
