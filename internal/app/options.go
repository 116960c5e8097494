package app

import (
	"os"

	"github.com/zhubert/chatshell/internal/clipboard"
	"github.com/zhubert/chatshell/internal/focus"
	"github.com/zhubert/chatshell/internal/layout"
	"github.com/zhubert/chatshell/internal/transcript"
	"github.com/zhubert/chatshell/internal/ui"
	"github.com/zhubert/chatshell/internal/viewport"
)

// DefaultBreakpoint is the narrowest terminal width, in columns, that still
// shows the two-pane layout with an inline sidebar.
const DefaultBreakpoint = 96

// Slots are caller-supplied strings rendered in fixed places. Empty slots
// fall back to built-in text or are left blank.
type Slots struct {
	HeaderRight   string
	SidebarTop    string
	SidebarFooter string
	ComposerLeft  string
	ComposerRight string
	EmptyState    string
}

// ToggleSummary is passed to OnToggle after the sidebar toggle fires.
// Only the field matching the current presentation carries the new state.
type ToggleSummary struct {
	DesktopOpen bool
	OverlayOpen bool
}

// Options configures a Model. A non-nil Mode, SidebarOpen or ViewMode
// makes that value controlled: the Model reports changes through the
// matching callback and waits for the caller to pass the new value back
// with SetOptions.
type Options struct {
	Mode        *layout.Mode
	DefaultMode layout.Mode

	SidebarOpen        *bool
	DefaultSidebarOpen *bool // nil means true

	ViewMode        *ui.ViewMode
	DefaultViewMode ui.ViewMode

	// Breakpoint in columns; widths at or below it count as narrow.
	Breakpoint int

	Slots Slots

	OnModeChange        func(layout.Mode)
	OnSidebarOpenChange func(bool)
	OnViewModeChange    func(ui.ViewMode)
	OnToggle            func(ToggleSummary)

	Environment viewport.Environment
	Scheduler   focus.Scheduler

	Store     *transcript.Store
	Clipboard clipboard.Writer
	Models    []string
}

func (o Options) breakpoint() int {
	if o.Breakpoint <= 0 {
		return DefaultBreakpoint
	}
	return o.Breakpoint
}

func (o Options) defaultOpen() bool {
	if o.DefaultSidebarOpen == nil {
		return true
	}
	return *o.DefaultSidebarOpen
}

func (o Options) environment() viewport.Environment {
	if o.Environment == nil {
		return viewport.TerminalEnvironment{File: os.Stdout}
	}
	return o.Environment
}

func (o Options) store() *transcript.Store {
	if o.Store == nil {
		return transcript.NewStore()
	}
	return o.Store
}

func (o Options) clipboard() clipboard.Writer {
	if o.Clipboard == nil {
		return clipboard.NewSystem()
	}
	return o.Clipboard
}

func (o Options) models() []string {
	if len(o.Models) == 0 {
		return ui.DefaultModels
	}
	return o.Models
}
