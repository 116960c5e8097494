package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/zhubert/chatshell/internal/errors"
	"github.com/zhubert/chatshell/internal/logger"
	"github.com/zhubert/chatshell/internal/notification"
	"github.com/zhubert/chatshell/internal/process"
)

var (
	pnpmTimeout time.Duration
	pnpmNotify  bool
	pnpmDir     string
)

var pnpmCmd = &cobra.Command{
	Use:   "pnpm [flags] -- <args>",
	Short: "Run pnpm with chatshell's logging and notifications",
	Long: `Runs the configured pnpm binary with the given arguments, streaming its
output. Each run writes its own log to /tmp/chatshell-pnpm-<id>.log.

Examples:
  chatshell pnpm -- install
  chatshell pnpm --timeout 5m --notify -- run build`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPnpm,
}

func init() {
	pnpmCmd.Flags().DurationVar(&pnpmTimeout, "timeout", 0, "Kill pnpm after this long (default from config, 0 for none)")
	pnpmCmd.Flags().BoolVar(&pnpmNotify, "notify", false, "Send a desktop notification when pnpm exits")
	pnpmCmd.Flags().StringVar(&pnpmDir, "dir", "", "Working directory for pnpm")
	rootCmd.AddCommand(pnpmCmd)
}

func runPnpm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	runID := uuid.New().String()[:8]
	if err := logger.Init(logger.RunLogPath(runID)); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
	defer logger.Close()
	log := logger.WithComponent("pnpm").With("run", runID)

	opts := process.Options{
		Bin:     cfg.Pnpm.Bin,
		Dir:     pnpmDir,
		Timeout: cfg.PnpmTimeout(),
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
	}
	if cmd.Flags().Changed("timeout") {
		opts.Timeout = pnpmTimeout
	}
	notify := cfg.GetNotify()
	if cmd.Flags().Changed("notify") {
		notify = pnpmNotify
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	log.Info("running pnpm", "args", args, "timeout", opts.Timeout)
	res, runErr := process.RunPnpm(ctx, opts, args...)
	log.Info("pnpm finished", "code", res.ExitCode, "duration", res.Duration, "error", runErr)

	if notify {
		if err := notification.RunFinished(strings.Join(args, " "), res.ExitCode); err != nil {
			log.Warn("notification failed", "error", err)
		}
	}

	if runErr != nil {
		return pnpmExitError(cmd.ErrOrStderr(), res, runErr)
	}
	return nil
}

// pnpmExitError maps a failed run to the exit status chatshell should use.
func pnpmExitError(w io.Writer, res process.Result, err error) error {
	switch {
	case errors.Is(err, errors.KindNotFound):
		return fmt.Errorf("%w\n\nInstall pnpm or set pnpm.bin in the config", err)
	case errors.Is(err, errors.KindTimeout):
		return &exitError{code: 124, err: err}
	case res.ExitCode > 0:
		fmt.Fprintf(w, "pnpm exited with status %d after %s\n", res.ExitCode, res.Duration.Round(time.Millisecond))
		return &exitError{code: res.ExitCode, err: err}
	}
	return err
}
