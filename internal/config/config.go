// Package config loads chatshell settings: built-in defaults, then
// ~/.chatshell/config.yaml, then CHATSHELL_* environment overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/zhubert/chatshell/internal/errors"
	"github.com/zhubert/chatshell/internal/layout"
	"github.com/zhubert/chatshell/internal/ui"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides. Nested keys use a double
// underscore: CHATSHELL_PNPM__BIN sets pnpm.bin.
const EnvPrefix = "CHATSHELL_"

// Config holds the application configuration
type Config struct {
	Mode        string   `yaml:"mode" koanf:"mode"`
	SidebarOpen bool     `yaml:"sidebar_open" koanf:"sidebar_open"`
	ViewMode    string   `yaml:"view_mode" koanf:"view_mode"`
	Breakpoint  int      `yaml:"breakpoint" koanf:"breakpoint"`
	Theme       string   `yaml:"theme" koanf:"theme"`
	Notify      bool     `yaml:"notify" koanf:"notify"`
	Models      []string `yaml:"models,omitempty" koanf:"models"`

	Slots SlotsConfig `yaml:"slots" koanf:"slots"`
	Pnpm  PnpmConfig  `yaml:"pnpm" koanf:"pnpm"`

	mu       sync.RWMutex
	filePath string
}

// SlotsConfig holds the text placed in the shell's slots.
type SlotsConfig struct {
	HeaderRight   string `yaml:"header_right,omitempty" koanf:"header_right"`
	SidebarTop    string `yaml:"sidebar_top,omitempty" koanf:"sidebar_top"`
	SidebarFooter string `yaml:"sidebar_footer,omitempty" koanf:"sidebar_footer"`
	ComposerLeft  string `yaml:"composer_left,omitempty" koanf:"composer_left"`
	ComposerRight string `yaml:"composer_right,omitempty" koanf:"composer_right"`
	EmptyState    string `yaml:"empty_state,omitempty" koanf:"empty_state"`
}

// PnpmConfig configures `chatshell pnpm`.
type PnpmConfig struct {
	Bin     string `yaml:"bin" koanf:"bin"`
	Timeout string `yaml:"timeout,omitempty" koanf:"timeout"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Mode:        layout.TwoPane.String(),
		SidebarOpen: true,
		ViewMode:    ui.ViewChat.String(),
		Breakpoint:  96,
		Theme:       string(ui.DefaultTheme),
		Pnpm:        PnpmConfig{Bin: "pnpm"},
	}
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".chatshell"), nil
}

// DefaultPath returns ~/.chatshell/config.yaml.
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// envKey maps CHATSHELL_PNPM__BIN to pnpm.bin.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Load reads the config at path (DefaultPath when empty), then overlays
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, errors.ConfigLoadFailed("~/.chatshell", err)
		}
		path = p
	}

	k := koanf.New(".")
	cfg := DefaultConfig()
	cfg.filePath = path

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.ConfigLoadFailed(path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.ConfigLoadFailed("environment", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}
	return cfg, nil
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	return c.filePath
}

// Validate checks that every value names something chatshell knows.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, err := layout.ParseMode(c.Mode); err != nil {
		return err
	}
	if _, err := ui.ParseViewMode(c.ViewMode); err != nil {
		return err
	}
	if c.Breakpoint <= 0 {
		return errors.ConfigInvalid("breakpoint must be positive")
	}
	if c.Theme != "" {
		if _, ok := ui.BuiltinThemes[ui.ThemeName(c.Theme)]; !ok {
			return errors.ConfigInvalid("unknown theme " + c.Theme)
		}
	}
	if c.Pnpm.Bin == "" {
		return errors.ConfigInvalid("pnpm.bin is required")
	}
	if c.Pnpm.Timeout != "" {
		if d, err := time.ParseDuration(c.Pnpm.Timeout); err != nil || d < 0 {
			return errors.ConfigInvalid("pnpm.timeout must be a non-negative duration")
		}
	}
	return nil
}

// Save writes the config as YAML to the file it was loaded from,
// creating the directory if needed.
func (c *Config) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.filePath == "" {
		p, err := DefaultPath()
		if err != nil {
			return errors.ConfigSaveFailed("~/.chatshell", err)
		}
		c.filePath = p
	}
	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	data, err := c.marshalLocked()
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// YAML renders the config as it would be saved.
func (c *Config) YAML() ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.marshalLocked()
}

func (c *Config) marshalLocked() ([]byte, error) {
	return yamlv3.Marshal(c)
}

// SetPath changes where Save writes.
func (c *Config) SetPath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}

// LayoutMode returns the parsed layout mode.
func (c *Config) LayoutMode() layout.Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, _ := layout.ParseMode(c.Mode)
	return m
}

// View returns the parsed view mode.
func (c *Config) View() ui.ViewMode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, _ := ui.ParseViewMode(c.ViewMode)
	return v
}

// PnpmTimeout returns the pnpm timeout, zero meaning none.
func (c *Config) PnpmTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, _ := time.ParseDuration(c.Pnpm.Timeout)
	return d
}

// GetTheme returns the UI theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the UI theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotify returns whether desktop notifications are enabled
func (c *Config) GetNotify() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Notify
}

// SetNotify enables or disables desktop notifications
func (c *Config) SetNotify(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Notify = enabled
}
