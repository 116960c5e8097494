package cmd

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/zhubert/chatshell/internal/app"
	"github.com/zhubert/chatshell/internal/config"
	"github.com/zhubert/chatshell/internal/layout"
	"github.com/zhubert/chatshell/internal/logger"
	"github.com/zhubert/chatshell/internal/ui"
)

var (
	debugMode             bool
	quietMode             bool
	configPath            string
	version, commit, date string
)

// Flags that override the config file for a single run.
var (
	modeFlag          string
	viewFlag          string
	themeFlag         string
	breakpointFlag    int
	sidebarClosedFlag bool
	rememberFlag      bool
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "chatshell",
	Short: "Terminal chat shell with a responsive sidebar",
	Long: `chatshell is a terminal chat shell. On wide terminals the conversation
sidebar sits inline next to the chat; below the breakpoint it opens as a
dialog over the chat; in dashboard mode it is hidden.

Keys: ctrl+b toggles the sidebar, esc closes the overlay, F2 cycles the
layout, F3 switches between chat and compose.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.chatshell/config.yaml)")

	rootCmd.Flags().StringVar(&modeFlag, "mode", "", "Layout mode: two-pane, full or dashboard")
	rootCmd.Flags().StringVar(&viewFlag, "view", "", "Initial view: chat or compose")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "Color theme")
	rootCmd.Flags().IntVar(&breakpointFlag, "breakpoint", 0, "Width in columns at or below which the sidebar becomes an overlay")
	rootCmd.Flags().BoolVar(&sidebarClosedFlag, "sidebar-closed", false, "Start with the sidebar closed")
	rootCmd.Flags().BoolVar(&rememberFlag, "remember-layout", false, "Save the layout mode and sidebar state to the config file on exit")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("chatshell %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("chatshell %s\n", version)
}

// ExitCode returns the process exit status for an error from Execute.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	return 1
}

// exitError carries a child process's exit status out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// loadConfig loads the config file named by --config, or the default one.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags copies command-line overrides onto cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("mode") {
		if _, err := layout.ParseMode(modeFlag); err != nil {
			return err
		}
		cfg.Mode = modeFlag
	}
	if flags.Changed("view") {
		if _, err := ui.ParseViewMode(viewFlag); err != nil {
			return err
		}
		cfg.ViewMode = viewFlag
	}
	if flags.Changed("theme") {
		cfg.SetTheme(themeFlag)
	}
	if flags.Changed("breakpoint") {
		cfg.Breakpoint = breakpointFlag
	}
	if flags.Changed("sidebar-closed") {
		cfg.SidebarOpen = !sidebarClosedFlag
	}
	return cfg.Validate()
}

// buildOptions turns the effective configuration into shell options. The
// shell owns its state; the callbacks record changes back onto cfg.
func buildOptions(cfg *config.Config) app.Options {
	open := cfg.SidebarOpen
	return app.Options{
		DefaultMode:        cfg.LayoutMode(),
		DefaultSidebarOpen: &open,
		DefaultViewMode:    cfg.View(),
		Breakpoint:         cfg.Breakpoint,
		Models:             cfg.Models,
		Slots: app.Slots{
			HeaderRight:   cfg.Slots.HeaderRight,
			SidebarTop:    cfg.Slots.SidebarTop,
			SidebarFooter: cfg.Slots.SidebarFooter,
			ComposerLeft:  cfg.Slots.ComposerLeft,
			ComposerRight: cfg.Slots.ComposerRight,
			EmptyState:    cfg.Slots.EmptyState,
		},
		OnModeChange: func(m layout.Mode) {
			cfg.Mode = m.String()
		},
		OnSidebarOpenChange: func(open bool) {
			cfg.SidebarOpen = open
		},
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()
	log := logger.WithComponent("cmd")

	ui.SetThemeByName(cfg.GetTheme())

	m := app.New(buildOptions(cfg))
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	log.Info("shell exited", "mode", cfg.Mode, "sidebar_open", cfg.SidebarOpen)

	if rememberFlag {
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("error saving layout: %w", err)
		}
	}
	return nil
}
