// Package scenarios contains the built-in demo scenarios.
package scenarios

import (
	"time"

	"github.com/zhubert/chatshell/internal/demo"
	"github.com/zhubert/chatshell/internal/layout"
	"github.com/zhubert/chatshell/internal/transcript"
)

// conversations seeds the sidebar with a few realistic chats.
func conversations() []demo.SeedConversation {
	return []demo.SeedConversation{
		{
			Title: "Release checklist",
			Model: "default",
			Messages: []demo.SeedMessage{
				{Role: transcript.RoleUser, Content: "What is left before we tag v1.4?"},
				{Role: transcript.RoleAssistant, Content: "Changelog, the migration note and a pnpm audit run."},
			},
		},
		{
			Title: "Flaky CI job",
			Model: "reasoning",
			Messages: []demo.SeedMessage{
				{Role: transcript.RoleUser, Content: "The e2e job times out roughly once a day."},
			},
		},
		{
			Title: "Lunch ideas",
			Model: "fast",
		},
	}
}

// Overview walks through the three sidebar presentations: inline on a wide
// terminal, the overlay dialog once the terminal is narrow, and none in
// dashboard mode.
var Overview = &demo.Scenario{
	Name:        "overview",
	Description: "Inline sidebar, overlay on a narrow terminal, dashboard",
	Width:       120,
	Height:      32,
	Setup: &demo.ScenarioSetup{
		Mode:          layout.TwoPane,
		Conversations: conversations(),
		EmptyState:    "Nothing pinned yet",
	},
	Steps: []demo.Step{
		demo.Annotate("Two-pane layout with the sidebar inline"),
		demo.Wait(1 * time.Second),

		// The composer has focus at startup.
		demo.TypeWithDesc("Anything else before the tag?", "draft a message"),
		demo.KeyWithDesc("enter", "send"),
		demo.Reply("Bump the version in package.json."),

		demo.KeyWithDesc("ctrl+b", "collapse sidebar"),
		demo.Annotate("ctrl+b collapses the sidebar"),
		demo.Wait(800 * time.Millisecond),
		demo.Key("ctrl+b"),

		demo.Annotate("Below the breakpoint the sidebar becomes a dialog"),
		demo.Resize(80, 32),
		demo.Wait(1 * time.Second),
		demo.KeyWithDesc("esc", "dismiss overlay"),
		demo.Wait(500 * time.Millisecond),

		demo.KeyWithDesc("f2", "full layout"),
		demo.KeyWithDesc("f2", "dashboard layout"),
		demo.Annotate("Dashboard mode hides the sidebar"),
		demo.Wait(1 * time.Second),
	},
}

// Compose shows switching to the compose view and back.
var Compose = &demo.Scenario{
	Name:        "compose",
	Description: "Switch between chat and compose views",
	Width:       110,
	Height:      30,
	Setup: &demo.ScenarioSetup{
		Mode:          layout.TwoPane,
		Conversations: conversations(),
	},
	Steps: []demo.Step{
		demo.Wait(500 * time.Millisecond),
		demo.KeyWithDesc("f3", "compose view"),
		demo.Annotate("F3 opens the compose form"),
		demo.Wait(1 * time.Second),
		demo.KeyWithDesc("esc", "cancel compose"),
		demo.Wait(500 * time.Millisecond),
	},
}

// All returns every built-in scenario.
func All() []*demo.Scenario {
	return []*demo.Scenario{Overview, Compose}
}

// Get returns the scenario with name, or nil.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
