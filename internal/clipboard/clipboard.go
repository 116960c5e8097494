// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/chatshell/internal/logger"
)

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// System is the operating system clipboard.
type System struct {
	once    sync.Once
	initErr error
}

// NewSystem returns a clipboard backed by the OS. Initialization is
// deferred to the first write.
func NewSystem() *System {
	return &System{}
}

// Init initializes the clipboard. It is safe to call multiple times.
func (s *System) Init() error {
	s.once.Do(func() {
		if err := clipboard.Init(); err != nil {
			logger.WithComponent("clipboard").Warn("failed to initialize clipboard", "error", err)
			s.initErr = fmt.Errorf("failed to initialize clipboard: %w", err)
			return
		}
		logger.WithComponent("clipboard").Debug("clipboard initialized")
	})
	return s.initErr
}

// WriteText implements Writer.
func (s *System) WriteText(text string) error {
	if err := s.Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.WithComponent("clipboard").Debug("copied text", "bytes", len(text))
	return nil
}

// Memory is an in-process clipboard for tests and headless runs.
type Memory struct {
	mu   sync.Mutex
	text string
	err  error
}

// WriteText implements Writer.
func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.text = text
	return nil
}

// Text returns the last written text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// FailWith makes every later write return err.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}
