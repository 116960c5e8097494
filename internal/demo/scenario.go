// Package demo drives the shell through scripted scenarios and captures the
// rendered frames, so recordings of the sidebar layouts are reproducible
// without a real terminal.
package demo

import (
	"fmt"
	"time"

	"github.com/zhubert/chatshell/internal/layout"
	"github.com/zhubert/chatshell/internal/transcript"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait pauses for a duration and captures a frame.
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepResize changes the terminal size.
	StepResize
	// StepReply appends an assistant message to the active conversation.
	StepReply
	// StepCapture captures the current frame.
	StepCapture
	// StepAnnotate sets a caption for the next captured frame.
	StepAnnotate
)

func (t StepType) String() string {
	switch t {
	case StepWait:
		return "wait"
	case StepKey:
		return "key"
	case StepTypeText:
		return "type"
	case StepResize:
		return "resize"
	case StepReply:
		return "reply"
	case StepCapture:
		return "capture"
	case StepAnnotate:
		return "annotate"
	}
	return "unknown"
}

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepTypeText and StepReply
	Text string

	// For StepWait
	Duration time.Duration

	// For StepResize
	Width  int
	Height int

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 120)
	Height      int // Terminal height (default 40)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup defines the initial state for a demo.
type ScenarioSetup struct {
	Mode          layout.Mode
	SidebarClosed bool
	Conversations []SeedConversation
	// EmptyState fills the dashboard region.
	EmptyState string
}

// SeedConversation is a conversation loaded into the store before the
// first frame.
type SeedConversation struct {
	Title    string
	Model    string
	Messages []SeedMessage
}

// SeedMessage is one message of a SeedConversation.
type SeedMessage struct {
	Role    transcript.Role
	Content string
}

// DefaultSetup returns a minimal setup for demos.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{
		Mode: layout.TwoPane,
		Conversations: []SeedConversation{
			{
				Title: "Getting started",
				Model: "default",
				Messages: []SeedMessage{
					{Role: transcript.RoleUser, Content: "What can this shell do?"},
					{Role: transcript.RoleAssistant, Content: "Press ctrl+b to toggle the sidebar and F2 to change the layout."},
				},
			},
		},
	}
}

// Validate checks that the scenario is valid and fills in defaults.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 120
	}
	if s.Height <= 0 {
		s.Height = 40
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	for i, step := range s.Steps {
		switch {
		case step.Type == StepKey && step.Key == "":
			return &ValidationError{Field: "Steps", Message: stepMessage(i, "key step needs a key")}
		case step.Type == StepResize && (step.Width <= 0 || step.Height <= 0):
			return &ValidationError{Field: "Steps", Message: stepMessage(i, "resize step needs a positive size")}
		}
	}
	return nil
}

func stepMessage(i int, msg string) string {
	return fmt.Sprintf("step %d: %s", i, msg)
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{Type: StepWait, Duration: d}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{Type: StepKey, Key: key}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{Type: StepKey, Key: key, Description: description}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{Type: StepTypeText, Text: text}
}

// TypeWithDesc creates a text typing step with a description.
func TypeWithDesc(text, description string) Step {
	return Step{Type: StepTypeText, Text: text, Description: description}
}

// Resize creates a terminal resize step.
func Resize(width, height int) Step {
	return Step{Type: StepResize, Width: width, Height: height}
}

// Reply creates an assistant reply step.
func Reply(text string) Step {
	return Step{Type: StepReply, Text: text}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{Type: StepAnnotate, Annotation: text}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{Type: StepCapture}
}
