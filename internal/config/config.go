// Package config provides configuration management for hyprwin.
//
// The configuration is stored in TOML format. The two matcher options live at
// the top level of the file so that a minimal config is just
//
//	max_entries = 5
//	score_threshold = 40
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chazuruo/hyprwin/internal/logging"
)

// FileName is the config file name inside the config directory.
const FileName = "hyprland-window.toml"

const (
	// DefaultMaxEntries is the default number of results per query.
	DefaultMaxEntries = 3

	// DefaultScoreThreshold is the default minimum combined score (exclusive).
	DefaultScoreThreshold = 50

	// DefaultHyprctl is the default compositor CLI.
	DefaultHyprctl = "hyprctl"
)

// Config is the top-level configuration struct for hyprwin.
type Config struct {
	// MaxEntries is the maximum number of results returned per query.
	MaxEntries int `toml:"max_entries"`

	// ScoreThreshold is the combined score a window must strictly exceed.
	ScoreThreshold int `toml:"score_threshold"`

	Desktop DesktopConfig `toml:"desktop"`
	Hyprctl HyprctlConfig `toml:"hyprctl"`
	Log     LogConfig     `toml:"log"`
}

// DesktopConfig contains desktop entry discovery settings.
type DesktopConfig struct {
	// Dirs is an explicit, ordered list of application directories.
	// When empty the list is derived from XDG_DATA_HOME and XDG_DATA_DIRS.
	Dirs []string `toml:"dirs"`
}

// HyprctlConfig contains compositor CLI settings.
type HyprctlConfig struct {
	// Command is the hyprctl binary name or path.
	Command string `toml:"command"`
}

// LogConfig contains diagnostics settings.
type LogConfig struct {
	// Level is one of trace, debug, info, warn, error, off.
	Level string `toml:"level"`

	// JSON switches diagnostics to JSON lines.
	JSON bool `toml:"json"`
}

// DefaultConfig returns a Config with all default values set.
func DefaultConfig() *Config {
	return &Config{
		MaxEntries:     DefaultMaxEntries,
		ScoreThreshold: DefaultScoreThreshold,
		Desktop: DesktopConfig{
			Dirs: nil,
		},
		Hyprctl: HyprctlConfig{
			Command: DefaultHyprctl,
		},
		Log: LogConfig{
			Level: logging.DefaultLevel,
			JSON:  false,
		},
	}
}

// Validate checks the configuration for valid values.
// Returns a nil error if the config is valid, or an error describing the problem.
func (c *Config) Validate() error {
	if c.MaxEntries < 1 {
		return fmt.Errorf("max_entries must be >= 1; got %d", c.MaxEntries)
	}

	if strings.TrimSpace(c.Hyprctl.Command) == "" {
		return fmt.Errorf("hyprctl.command cannot be empty")
	}

	for i, dir := range c.Desktop.Dirs {
		if strings.TrimSpace(dir) == "" {
			return fmt.Errorf("desktop.dirs[%d] cannot be empty", i)
		}
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}

// Dir returns the hyprwin config directory.
// Search order: $XDG_CONFIG_HOME/hyprwin, then ~/.config/hyprwin.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hyprwin")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "hyprwin")
}

// PathIn returns the config file path inside configDir.
func PathIn(configDir string) string {
	return filepath.Join(configDir, FileName)
}
