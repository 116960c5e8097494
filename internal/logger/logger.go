// Package logger writes structured debug logs for chatshell to a file.
//
// A terminal UI owns stdout, so nothing may be printed there while the
// program runs. Components get a slog.Logger with a "component" attribute
// via WithComponent and log state transitions at Debug level.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// DefaultLogPath is the log file used when Init was not called.
const DefaultLogPath = "/tmp/chatshell-debug.log"

// runLogPattern matches log files written by `chatshell pnpm` runs.
const runLogPattern = "/tmp/chatshell-pnpm-*.log"

var (
	mu       sync.Mutex
	base     *slog.Logger
	levelVar = new(slog.LevelVar)
	logFile  *os.File
	logPath  string
	initDone bool
)

// RunLogPath returns the log path for a single pnpm run.
func RunLogPath(runID string) string {
	return fmt.Sprintf("/tmp/chatshell-pnpm-%s.log", runID)
}

// SetDebug switches between debug and info level output.
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// Init opens path for appending and routes all loggers to it.
// Calling Init again after a successful call is a no-op until Reset.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if initDone {
		return nil
	}
	return openLocked(path)
}

func openLocked(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logFile = f
	logPath = path
	base = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	initDone = true
	base.Debug("logger initialized", "path", path)
	return nil
}

// ensureInit lazily opens DefaultLogPath. Caller holds mu.
func ensureInit() {
	if initDone {
		return
	}
	if err := openLocked(DefaultLogPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		// Mark as done anyway so we don't retry on every call.
		initDone = true
	}
}

// WithComponent returns a logger tagged with the given component name.
// It falls back to slog.Default() when no log file could be opened.
//
//	log := logger.WithComponent("focus")
//	log.Debug("overlay opened", "focusables", n)
func WithComponent(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if base == nil {
		return slog.Default().With(slog.String("component", component))
	}
	return base.With(slog.String("component", component))
}

// Get returns the root logger.
func Get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if base == nil {
		return slog.Default()
	}
	return base
}

// Path returns the path of the active log file, or "" if none is open.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Close closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	base = nil
}

// Reset returns the package to its initial state. Used by tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	base = nil
	logPath = ""
	initDone = false
	levelVar = new(slog.LevelVar)
}

// ClearLogs removes the main log and all pnpm run logs. It returns the
// number of files removed.
func ClearLogs() (int, error) {
	count := 0

	if err := os.Remove(DefaultLogPath); err == nil {
		count++
	} else if !os.IsNotExist(err) {
		return count, err
	}

	runLogs, err := filepath.Glob(runLogPattern)
	if err != nil {
		return count, err
	}
	for _, p := range runLogs {
		if err := os.Remove(p); err == nil {
			count++
		} else if !os.IsNotExist(err) {
			return count, err
		}
	}
	return count, nil
}
