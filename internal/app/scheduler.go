package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/chatshell/internal/focus"
)

// FrameInterval approximates one rendered frame.
const FrameInterval = 16 * time.Millisecond

// frameMsg fires a scheduled task on the event loop.
type frameMsg struct {
	id uint64
}

// frameScheduler defers work to the next frame by issuing a tea.Tick. The
// tick only carries an ID back into Update; the task itself runs there, so
// everything stays on the event loop goroutine.
type frameScheduler struct {
	nextID uint64
	tasks  map[uint64]func()
	queued []tea.Cmd
	closed bool
}

func newFrameScheduler() *frameScheduler {
	return &frameScheduler{tasks: make(map[uint64]func())}
}

type frameTask struct {
	s  *frameScheduler
	id uint64
}

func (t frameTask) Cancel() {
	delete(t.s.tasks, t.id)
}

// Schedule implements focus.Scheduler.
func (s *frameScheduler) Schedule(fn func()) focus.Task {
	s.nextID++
	id := s.nextID
	if s.closed {
		return frameTask{s: s, id: id}
	}
	s.tasks[id] = fn
	s.queued = append(s.queued, tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return frameMsg{id: id}
	}))
	return frameTask{s: s, id: id}
}

// Fire runs the task for id if it is still live.
func (s *frameScheduler) Fire(id uint64) bool {
	fn, ok := s.tasks[id]
	if !ok {
		return false
	}
	delete(s.tasks, id)
	fn()
	return true
}

// Drain returns the ticks issued since the last Drain.
func (s *frameScheduler) Drain() tea.Cmd {
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// Pending returns the number of tasks waiting to fire.
func (s *frameScheduler) Pending() int {
	return len(s.tasks)
}

// Close drops every task. Later Schedule calls return inert tasks.
func (s *frameScheduler) Close() {
	s.closed = true
	clear(s.tasks)
	s.queued = nil
}
