package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()

	logPath := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	t.Cleanup(Reset)
	return logPath
}

func TestInit_SetsPath(t *testing.T) {
	logPath := setupTestLogger(t)

	if got := Path(); got != logPath {
		t.Errorf("Path() = %q, want %q", got, logPath)
	}
}

func TestInit_SecondCallIsNoop(t *testing.T) {
	logPath := setupTestLogger(t)

	other := filepath.Join(t.TempDir(), "other.log")
	if err := Init(other); err != nil {
		t.Fatalf("second Init returned error: %v", err)
	}
	if got := Path(); got != logPath {
		t.Errorf("Path() = %q after second Init, want %q", got, logPath)
	}
	if _, err := os.Stat(other); !os.IsNotExist(err) {
		t.Error("second Init should not create a file")
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	defer Reset()

	err := Init(filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestWithComponent_WritesAttribute(t *testing.T) {
	logPath := setupTestLogger(t)
	SetDebug(true)

	WithComponent("focus").Debug("overlay opened", "focusables", 3)

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	got := string(content)
	for _, want := range []string{"component=focus", "overlay opened", "focusables=3"} {
		if !strings.Contains(got, want) {
			t.Errorf("log file missing %q:\n%s", want, got)
		}
	}
}

func TestSetDebug_FiltersDebugAtInfo(t *testing.T) {
	logPath := setupTestLogger(t)
	SetDebug(false)

	WithComponent("app").Debug("hidden-debug-line")
	WithComponent("app").Info("visible-info-line")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if strings.Contains(string(content), "hidden-debug-line") {
		t.Error("debug line should be filtered at info level")
	}
	if !strings.Contains(string(content), "visible-info-line") {
		t.Error("info line should be written")
	}
}

func TestClose_ThenWithComponentDoesNotPanic(t *testing.T) {
	setupTestLogger(t)
	Close()

	// Must fall back to slog.Default rather than a nil logger.
	WithComponent("app").Info("after close")
}

func TestRunLogPath(t *testing.T) {
	got := RunLogPath("abc")
	if got != "/tmp/chatshell-pnpm-abc.log" {
		t.Errorf("RunLogPath = %q", got)
	}
	if matched, _ := filepath.Match(runLogPattern, got); !matched {
		t.Errorf("RunLogPath %q does not match %q", got, runLogPattern)
	}
}
