// Package errors provides structured error types for chatshell.
// Errors carry the operation that failed and a Kind so callers can branch
// on the category without string matching.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.Function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindIO
	KindConfig
	KindProcess
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindProcess:
		return "process error"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for chatshell.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E builds an *Error from its arguments, which may be an Op, a Kind, a
// string (context) or an error (the cause), in any order. Without a cause
// the context string becomes the error text.
func E(args ...any) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Config errors

func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// Layout errors

func UnknownMode(name string) error {
	return E(Op("layout.ParseMode"), KindInvalid, fmt.Sprintf("unknown layout mode %q", name))
}

func UnknownViewMode(name string) error {
	return E(Op("ui.ParseViewMode"), KindInvalid, fmt.Sprintf("unknown view mode %q", name))
}

// Process errors

func BinaryNotFound(name string) error {
	return E(Op("process.Run"), KindNotFound, fmt.Sprintf("required CLI tool '%s' not found in PATH", name))
}

func ProcessExited(name string, code int, err error) error {
	return E(Op("process.Run"), KindProcess, fmt.Sprintf("%s exited with status %d", name, code), err)
}

func ProcessTimeout(name string) error {
	return E(Op("process.Run"), KindTimeout, fmt.Sprintf("timeout waiting for %s", name))
}
