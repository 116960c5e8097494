package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	cserrors "github.com/zhubert/chatshell/internal/errors"
	"github.com/zhubert/chatshell/internal/notification"
	"github.com/zhubert/chatshell/internal/process"
)

// runRoot executes the root command with a throwaway config file and a
// fake pnpm binary.
func runRoot(t *testing.T, script string, args ...string) (string, []string, error) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	dir := t.TempDir()
	bin := filepath.Join(dir, "pnpm")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"+script+"\n"), 0755); err != nil {
		t.Fatalf("write fake pnpm: %v", err)
	}
	t.Setenv("CHATSHELL_PNPM__BIN", bin)

	var calls []string
	notification.SetNotifier(func(title, message string, icon any) error {
		calls = append(calls, message)
		return nil
	})
	t.Cleanup(notification.ResetNotifier)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(dir, "config.yaml")}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		configPath = ""
		pnpmNotify = false
		pnpmCmd.Flags().Lookup("notify").Changed = false
	})

	err := rootCmd.Execute()
	return out.String(), calls, err
}

func TestPnpmCommand_StreamsOutput(t *testing.T) {
	out, _, err := runRoot(t, `echo "pnpm $*"`, "pnpm", "--", "install", "--frozen-lockfile")
	if err != nil {
		t.Fatalf("pnpm command: %v", err)
	}
	if !strings.Contains(out, "pnpm install --frozen-lockfile") {
		t.Errorf("output = %q", out)
	}
}

func TestPnpmCommand_PropagatesExitCode(t *testing.T) {
	out, _, err := runRoot(t, `echo broken >&2; exit 3`, "pnpm", "--", "build")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := ExitCode(err); got != 3 {
		t.Errorf("ExitCode = %d, want 3", got)
	}
	if !strings.Contains(out, "broken") || !strings.Contains(out, "status 3") {
		t.Errorf("output = %q", out)
	}
}

func TestPnpmCommand_Notify(t *testing.T) {
	_, calls, err := runRoot(t, `exit 0`, "pnpm", "--notify", "--", "test")
	if err != nil {
		t.Fatalf("pnpm command: %v", err)
	}
	if len(calls) != 1 || calls[0] != "pnpm test finished" {
		t.Errorf("notifications = %v", calls)
	}
}

func TestPnpmCommand_NoNotifyByDefault(t *testing.T) {
	_, calls, err := runRoot(t, `exit 0`, "pnpm", "--", "test")
	if err != nil {
		t.Fatalf("pnpm command: %v", err)
	}
	if len(calls) != 0 {
		t.Errorf("notifications = %v, want none", calls)
	}
}

func TestPnpmExitError(t *testing.T) {
	var buf bytes.Buffer

	err := pnpmExitError(&buf, process.Result{ExitCode: -1}, cserrors.BinaryNotFound("pnpm"))
	if ExitCode(err) != 1 || !strings.Contains(err.Error(), "pnpm.bin") {
		t.Errorf("not found: code=%d err=%v", ExitCode(err), err)
	}

	err = pnpmExitError(&buf, process.Result{ExitCode: -1}, cserrors.ProcessTimeout("pnpm"))
	if ExitCode(err) != 124 {
		t.Errorf("timeout: code=%d", ExitCode(err))
	}

	cause := errors.New("exit status 2")
	err = pnpmExitError(&buf, process.Result{ExitCode: 2}, cserrors.ProcessExited("pnpm", 2, cause))
	if ExitCode(err) != 2 || !errors.Is(err, cause) {
		t.Errorf("exited: code=%d err=%v", ExitCode(err), err)
	}
}
