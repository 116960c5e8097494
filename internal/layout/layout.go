// Package layout maps a declared layout mode and the terminal width class
// to the way the sidebar is presented.
package layout

import (
	"strings"

	"github.com/zhubert/chatshell/internal/errors"
)

// Mode is the caller-selected page arrangement.
type Mode int

const (
	TwoPane Mode = iota
	Full
	Dashboard
)

// Modes lists every mode in cycle order.
var Modes = []Mode{TwoPane, Full, Dashboard}

func (m Mode) String() string {
	switch m {
	case TwoPane:
		return "two-pane"
	case Full:
		return "full"
	case Dashboard:
		return "dashboard"
	default:
		return "unknown"
	}
}

// Next returns the mode after m in cycle order.
func (m Mode) Next() Mode {
	for i, mode := range Modes {
		if mode == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return TwoPane
}

// ParseMode parses a mode name. Matching ignores case, dashes and
// underscores, so "two-pane", "twoPane" and "two_pane" are all accepted.
func ParseMode(s string) (Mode, error) {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	switch norm {
	case "twopane", "":
		return TwoPane, nil
	case "full":
		return Full, nil
	case "dashboard":
		return Dashboard, nil
	}
	return TwoPane, errors.UnknownMode(s)
}

// Behavior is the derived presentation strategy for the sidebar.
type Behavior int

const (
	None Behavior = iota
	Inline
	Overlay
)

func (b Behavior) String() string {
	switch b {
	case None:
		return "none"
	case Inline:
		return "inline"
	case Overlay:
		return "overlay"
	default:
		return "unknown"
	}
}

// Resolve derives the sidebar behavior. Full always overlays regardless of
// width; only TwoPane looks at the width class. Unknown modes are treated
// as TwoPane.
func Resolve(mode Mode, narrow bool) Behavior {
	switch mode {
	case Dashboard:
		return None
	case Full:
		return Overlay
	default:
		if narrow {
			return Overlay
		}
		return Inline
	}
}
