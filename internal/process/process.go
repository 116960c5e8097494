// Package process runs the pnpm package manager on behalf of chatshell.
package process

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os/exec"
	"time"

	"github.com/zhubert/chatshell/internal/errors"
	"github.com/zhubert/chatshell/internal/logger"
)

// DefaultBin is the package manager binary looked up on PATH.
const DefaultBin = "pnpm"

// waitDelay bounds how long Wait blocks on output pipes after the process
// has been killed, since grandchildren can hold them open.
const waitDelay = 2 * time.Second

// Options configures a single run.
type Options struct {
	Bin     string        // Binary name or path; defaults to DefaultBin
	Dir     string        // Working directory; empty means the current one
	Env     []string      // Extra KEY=VALUE entries appended to the environment
	Timeout time.Duration // Zero means no timeout

	// Stdout and Stderr, when set, also receive the output as it is produced.
	Stdout io.Writer
	Stderr io.Writer
}

// Result describes a finished run.
type Result struct {
	Bin      string
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// RunPnpm runs the package manager with args and waits for it to exit.
// A non-zero exit returns a KindProcess error alongside the populated
// Result; a timeout returns KindTimeout; a missing binary KindNotFound.
func RunPnpm(ctx context.Context, opts Options, args ...string) (Result, error) {
	log := logger.WithComponent("process")

	bin := opts.Bin
	if bin == "" {
		bin = DefaultBin
	}
	res := Result{Bin: bin, Args: args, ExitCode: -1}

	path, err := exec.LookPath(bin)
	if err != nil {
		log.Warn("binary not found", "bin", bin, "error", err)
		return res, errors.BinaryNotFound(bin)
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = opts.Dir
	if len(opts.Env) > 0 {
		cmd.Env = append(cmd.Environ(), opts.Env...)
	}
	cmd.Stdout = tee(&stdout, opts.Stdout)
	cmd.Stderr = tee(&stderr, opts.Stderr)
	cmd.WaitDelay = waitDelay

	log.Debug("starting run", "bin", path, "args", args, "dir", opts.Dir, "timeout", opts.Timeout)
	start := time.Now()
	err = cmd.Run()
	res.Duration = time.Since(start)
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}

	switch {
	case err == nil:
		log.Debug("run finished", "bin", bin, "duration", res.Duration)
		return res, nil
	case stderrors.Is(ctx.Err(), context.DeadlineExceeded):
		log.Warn("run timed out", "bin", bin, "timeout", opts.Timeout)
		return res, errors.ProcessTimeout(bin)
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		log.Info("run exited with error", "bin", bin, "code", res.ExitCode)
		return res, errors.ProcessExited(bin, res.ExitCode, err)
	}
	log.Error("run failed", "bin", bin, "error", err)
	return res, errors.E(errors.Op("process.Run"), errors.KindProcess, err)
}

func tee(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(buf, w)
}
