package demo

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/chatshell/internal/app"
	"github.com/zhubert/chatshell/internal/clipboard"
	"github.com/zhubert/chatshell/internal/focus"
	"github.com/zhubert/chatshell/internal/logger"
	"github.com/zhubert/chatshell/internal/transcript"
	"github.com/zhubert/chatshell/internal/viewport"
)

// maxDispatchDepth bounds how many rounds of follow-up messages a single
// step may trigger.
const maxDispatchDepth = 8

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // Delay before this frame
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
	Width      int
	Height     int
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every key and typed character
	CaptureEveryStep bool

	// TypeDelay is the delay between characters when typing (default: 50ms)
	TypeDelay time.Duration

	// KeyDelay is the delay after key presses (default: 100ms)
	KeyDelay time.Duration

	// SettleTimeout is how long a command may take to produce its message
	// before it is dropped. Timers such as flash expiry never settle.
	SettleTimeout time.Duration
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false,
		TypeDelay:        50 * time.Millisecond,
		KeyDelay:         100 * time.Millisecond,
		SettleTimeout:    25 * time.Millisecond,
	}
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config ExecutorConfig
	model  *app.Model
	store  *transcript.Store
	sched  *stepScheduler
	frames []Frame

	width, height     int
	currentAnnotation string
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	if cfg.SettleTimeout <= 0 {
		cfg.SettleTimeout = DefaultExecutorConfig().SettleTimeout
	}
	return &Executor{config: cfg}
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	log := logger.WithComponent("demo")
	log.Info("running scenario", "name", scenario.Name, "steps", len(scenario.Steps))

	e.frames = nil
	e.currentAnnotation = ""
	e.setup(scenario)
	defer e.model.Close()

	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d (%s) failed: %w", i, step.Type, err)
		}
	}

	log.Info("scenario finished", "name", scenario.Name, "frames", len(e.frames))
	return e.frames, nil
}

// Model returns the shell driven by the last Run. It is closed once Run
// returns.
func (e *Executor) Model() *app.Model {
	return e.model
}

// setup seeds the store and builds a sized shell for the scenario.
func (e *Executor) setup(scenario *Scenario) {
	setup := scenario.Setup
	e.store = transcript.NewStore()
	for _, seed := range setup.Conversations {
		conv := e.store.Create(seed.Title, seed.Model)
		for _, msg := range seed.Messages {
			e.store.Append(conv.ID, msg.Role, msg.Content)
		}
	}

	open := !setup.SidebarClosed
	e.sched = &stepScheduler{}
	e.width, e.height = scenario.Width, scenario.Height
	e.model = app.New(app.Options{
		DefaultMode:        setup.Mode,
		DefaultSidebarOpen: &open,
		Slots:              app.Slots{EmptyState: setup.EmptyState},
		Environment:        viewport.FixedEnvironment(scenario.Width),
		Scheduler:          e.sched,
		Store:              e.store,
		Clipboard:          &clipboard.Memory{},
	})
	e.update(tea.WindowSizeMsg{Width: scenario.Width, Height: scenario.Height})
}

// executeStep executes a single demo step.
func (e *Executor) executeStep(index int, step Step) error {
	if e.model.Closed() {
		return fmt.Errorf("shell was closed by an earlier step")
	}

	switch step.Type {
	case StepWait:
		e.captureFrame(index, step.Duration)

	case StepKey:
		e.update(keyPress(step.Key))
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTypeText:
		for _, ch := range step.Text {
			e.update(keyPress(string(ch)))
			if e.config.CaptureEveryStep {
				e.captureFrame(index, e.config.TypeDelay)
			}
		}

	case StepResize:
		e.width, e.height = step.Width, step.Height
		e.update(tea.WindowSizeMsg{Width: step.Width, Height: step.Height})
		e.captureFrame(index, 300*time.Millisecond)

	case StepReply:
		if _, ok := e.model.ActiveConversation(); !ok {
			return fmt.Errorf("no active conversation for reply")
		}
		e.update(app.ReplyMsg{Content: step.Text})
		e.captureFrame(index, 200*time.Millisecond)

	case StepAnnotate:
		e.currentAnnotation = step.Annotation

	case StepCapture:
		e.captureFrame(index, 0)

	default:
		return fmt.Errorf("unknown step type %d", step.Type)
	}
	return nil
}

// captureFrame captures the current view as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	e.frames = append(e.frames, Frame{
		Content:    e.model.RenderToString(),
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
		Width:      e.width,
		Height:     e.height,
	})
	e.currentAnnotation = ""
}

// update delivers msg, runs deferred focus moves and feeds back any
// messages the resulting commands produce.
func (e *Executor) update(msg tea.Msg) {
	e.dispatch(msg, 0)
}

func (e *Executor) dispatch(msg tea.Msg, depth int) {
	if depth > maxDispatchDepth || e.model.Closed() {
		return
	}
	_, cmd := e.model.Update(msg)
	e.sched.RunPending()
	for _, next := range e.settle(cmd) {
		e.dispatch(next, depth+1)
	}
}

// settle runs cmd and returns the messages it produces within the settle
// timeout. Batches are flattened.
func (e *Executor) settle(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-ch:
	case <-time.After(e.config.SettleTimeout):
		return nil
	}

	switch msg := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, e.settle(c)...)
		}
		return out
	case tea.QuitMsg:
		return nil
	default:
		return []tea.Msg{msg}
	}
}

// stepScheduler queues deferred focus moves until the current step's
// update has finished.
type stepScheduler struct {
	tasks []*stepTask
}

type stepTask struct {
	fn        func()
	cancelled bool
}

func (t *stepTask) Cancel() { t.cancelled = true }

func (s *stepScheduler) Schedule(fn func()) focus.Task {
	t := &stepTask{fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

func (s *stepScheduler) RunPending() {
	tasks := s.tasks
	s.tasks = nil
	for _, t := range tasks {
		if !t.cancelled {
			t.fn()
		}
	}
}

// keyPress converts a key string to a tea.KeyPressMsg.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "escape", "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "f2":
		return tea.KeyPressMsg{Code: tea.KeyF2}
	case "f3":
		return tea.KeyPressMsg{Code: tea.KeyF3}
	case "ctrl+b":
		return tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl}
	case "super+b":
		return tea.KeyPressMsg{Code: 'b', Mod: tea.ModSuper}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	default:
		if r := []rune(key); len(r) == 1 {
			return tea.KeyPressMsg{Code: r[0], Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
