// Package app hosts the root shell model. It decides how the sidebar is
// presented from the layout mode and the terminal width, keeps the
// controlled and uncontrolled state for mode, sidebar-open and view mode,
// and runs the modal focus contract while the sidebar is an overlay.
package app

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/chatshell/internal/controllable"
	"github.com/zhubert/chatshell/internal/events"
	"github.com/zhubert/chatshell/internal/focus"
	"github.com/zhubert/chatshell/internal/layout"
	"github.com/zhubert/chatshell/internal/logger"
	"github.com/zhubert/chatshell/internal/shortcut"
	"github.com/zhubert/chatshell/internal/transcript"
	"github.com/zhubert/chatshell/internal/ui"
	"github.com/zhubert/chatshell/internal/viewport"
)

// Model is the main Bubble Tea model
type Model struct {
	opts Options

	mode *controllable.Value[layout.Mode]
	open *controllable.Value[bool]
	view *controllable.Value[ui.ViewMode]

	observer   *viewport.Observer
	narrowSub  *events.Subscription
	breakpoint int

	tracker  *focus.Tracker
	overlay  *focus.Manager
	frames   *frameScheduler // nil when the caller supplied a scheduler
	keys     *events.Stream[tea.KeyPressMsg]
	router   *shortcut.Router
	behavior layout.Behavior

	ctx      *ui.ViewContext
	header   *ui.Header
	sidebar  *ui.Sidebar
	messages *ui.MessageList
	composer *ui.Composer
	compose  *ui.ComposeView
	footer   *ui.Footer
	dialog   ui.Overlay

	store    *transcript.Store
	activeID string

	width  int
	height int
	closed bool

	log *slog.Logger
}

// New creates the shell model. Call Close when the program exits.
func New(opts Options) *Model {
	m := &Model{
		opts:       opts,
		breakpoint: opts.breakpoint(),
		tracker:    focus.NewTracker(),
		keys:       events.NewStream[tea.KeyPressMsg](),
		ctx:        ui.NewViewContext(),
		header:     ui.NewHeader(),
		sidebar:    ui.NewSidebar(),
		composer:   ui.NewComposer(),
		compose:    ui.NewComposeView(opts.models()),
		footer:     ui.NewFooter(),
		store:      opts.store(),
		log:        logger.WithComponent("app"),
	}
	m.messages = ui.NewMessageList(opts.clipboard())

	m.mode = controllable.New("mode", opts.Mode, opts.DefaultMode, m.emitModeChange)
	m.open = controllable.New("sidebarOpen", opts.SidebarOpen, opts.defaultOpen(), m.emitOpenChange)
	m.view = controllable.New("viewMode", opts.ViewMode, opts.DefaultViewMode, m.emitViewModeChange)

	m.observer = viewport.NewObserver(viewport.NarrowerThan(m.breakpoint), opts.environment())
	m.narrowSub = m.observer.Subscribe(m.onNarrowChange)
	if w, ok := m.observer.Width(); ok {
		m.width = w
	}

	sched := opts.Scheduler
	if sched == nil {
		m.frames = newFrameScheduler()
		sched = m.frames
	}
	m.overlay = focus.NewManager(m.tracker, sched)

	m.router = shortcut.NewRouter(m.keys, shortcut.Actions{
		Behavior: m.Behavior,
		IsOpen:   m.open.Read,
		Toggle:   m.toggleSidebar,
		Dismiss:  m.dismissSidebar,
	})

	m.applySlots()
	m.refreshConversations()
	m.behavior = m.Behavior()
	m.reconcile()

	m.log.Debug("shell created",
		"mode", m.mode.Read().String(),
		"open", m.open.Read(),
		"view", m.view.Read().String(),
		"breakpoint", m.breakpoint,
		"narrow", m.observer.Current())
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return m.drainFrames()
}

// Close tears the shell down: the shortcut subscription, the viewport
// subscription and the overlay focus manager, including any focus move
// still waiting for its frame. It is safe to call more than once.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.router.Close()
	m.narrowSub.Close()
	m.observer.Close()
	m.overlay.Dispose()
	if m.frames != nil {
		m.frames.Close()
	}
	m.keys.Close()
	m.log.Debug("shell closed")
}

// Closed reports whether Close has run.
func (m *Model) Closed() bool {
	return m.closed
}

// Behavior resolves how the sidebar is presented right now.
func (m *Model) Behavior() layout.Behavior {
	return layout.Resolve(m.mode.Read(), m.observer.Current())
}

// Mode returns the effective layout mode.
func (m *Model) Mode() layout.Mode {
	return m.mode.Read()
}

// ViewMode returns the effective view mode.
func (m *Model) ViewMode() ui.ViewMode {
	return m.view.Read()
}

// SidebarOpen returns the stored sidebar-open value, which is kept even
// while the layout hides the sidebar entirely.
func (m *Model) SidebarOpen() bool {
	return m.open.Read()
}

// EffectiveOpen is the open state the UI reports: always false when the
// layout has no sidebar, otherwise the stored value.
func (m *Model) EffectiveOpen() bool {
	if m.Behavior() == layout.None {
		return false
	}
	return m.open.Read()
}

// OverlayShown reports whether the sidebar is currently an open overlay.
func (m *Model) OverlayShown() bool {
	return m.Behavior() == layout.Overlay && m.open.Read()
}

// SetOptions re-supplies the caller's options. Controlled values take the
// new external value; switching a value between controlled and
// uncontrolled is logged and ignored.
func (m *Model) SetOptions(opts Options) {
	if m.closed {
		return
	}
	m.opts = opts
	m.mode.Sync(opts.Mode)
	m.open.Sync(opts.SidebarOpen)
	m.view.Sync(opts.ViewMode)

	if bp := opts.breakpoint(); bp != m.breakpoint {
		m.breakpoint = bp
		m.replaceObserver()
	}
	m.applySlots()
	m.reconcile()
}

// replaceObserver swaps in an observer for a new breakpoint, seeded with
// the last known width.
func (m *Model) replaceObserver() {
	env := m.opts.environment()
	if w, ok := m.observer.Width(); ok {
		env = viewport.FixedEnvironment(w)
	}
	m.narrowSub.Close()
	m.observer.Close()
	m.observer = viewport.NewObserver(viewport.NarrowerThan(m.breakpoint), env)
	m.narrowSub = m.observer.Subscribe(m.onNarrowChange)
	m.log.Debug("breakpoint changed", "breakpoint", m.breakpoint, "narrow", m.observer.Current())
}

func (m *Model) onNarrowChange(narrow bool) {
	m.log.Debug("viewport crossed breakpoint", "narrow", narrow, "behavior", m.Behavior().String())
}

func (m *Model) emitModeChange(v layout.Mode) {
	if m.opts.OnModeChange != nil {
		m.opts.OnModeChange(v)
	}
}

func (m *Model) emitOpenChange(v bool) {
	if m.opts.OnSidebarOpenChange != nil {
		m.opts.OnSidebarOpenChange(v)
	}
}

func (m *Model) emitViewModeChange(v ui.ViewMode) {
	if m.opts.OnViewModeChange != nil {
		m.opts.OnViewModeChange(v)
	}
}

// toggleSidebar flips sidebar-open and reports where the new value landed.
func (m *Model) toggleSidebar() {
	behavior := m.Behavior()
	if behavior == layout.None {
		return
	}
	var next bool
	m.open.Update(func(prev bool) bool {
		next = !prev
		return next
	})

	summary := ToggleSummary{}
	if behavior == layout.Inline {
		summary.DesktopOpen = next
	} else {
		summary.OverlayOpen = next
	}
	m.log.Debug("sidebar toggled", "behavior", behavior.String(), "open", next)
	if m.opts.OnToggle != nil {
		m.opts.OnToggle(summary)
	}
}

// dismissSidebar is the overlay's close action (Escape or backdrop click).
func (m *Model) dismissSidebar() {
	m.log.Debug("overlay dismissed")
	m.open.Write(false)
}

// setMode writes the layout mode through its controllable value.
func (m *Model) setMode(mode layout.Mode) {
	m.mode.Write(mode)
}

// setViewMode writes the view mode through its controllable value.
func (m *Model) setViewMode(v ui.ViewMode) {
	m.view.Write(v)
}

// reconcile brings mounts, props, sizes and the overlay focus state in
// line with the current effective values. It runs after every update.
func (m *Model) reconcile() {
	if m.closed {
		return
	}
	behavior := m.Behavior()
	open := m.open.Read()
	view := m.view.Read()
	dashboard := behavior == layout.None
	wantOverlay := behavior == layout.Overlay && open

	if behavior != m.behavior {
		m.log.Debug("sidebar behavior changed", "from", m.behavior.String(), "to", behavior.String())
		m.behavior = behavior
	}

	m.sidebar.SetMounted((behavior == layout.Inline && open) || wantOverlay)
	m.messages.SetMounted(!dashboard && view == ui.ViewChat)
	m.composer.SetMounted(!dashboard && view == ui.ViewChat)
	m.compose.SetMounted(!dashboard && view == ui.ViewCompose)
	m.ctx.SetSidebarInline(behavior == layout.Inline && open)

	props := ui.HeaderProps{
		IsOpen:           m.EffectiveOpen(),
		ViewMode:         view,
		OnViewModeChange: m.setViewMode,
	}
	if !dashboard {
		props.OnToggle = m.toggleSidebar
	}
	m.header.SetProps(props)

	m.updateSizes()

	if !m.overlay.IsOpen() {
		m.ensureFocus()
	}
	switch {
	case wantOverlay && !m.overlay.IsOpen():
		m.overlay.Open(m.sidebar)
	case !wantOverlay && m.overlay.IsOpen():
		m.overlay.Close()
	}
	if !wantOverlay {
		m.ensureFocus()
	}
	m.footer.SetBindings(m.footerBindings())
}

// applySlots pushes the caller's slot content into the components.
func (m *Model) applySlots() {
	s := m.opts.Slots
	m.header.SetRight(s.HeaderRight)
	m.sidebar.SetSlots(s.SidebarTop, s.SidebarFooter)
	m.composer.SetSlots(s.ComposerLeft, s.ComposerRight)
	m.messages.SetEmptyState(s.EmptyState)
}
