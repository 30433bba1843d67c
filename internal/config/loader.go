// Package config provides configuration management for hyprwin.
//
// This file contains config loading functionality including:
// - XDG config path detection
// - TOML file parsing
// - Environment variable overrides
// - Validation
// - Lenient loading that falls back to defaults
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-hclog"

	hwerrors "github.com/chazuruo/hyprwin/internal/errors"
)

// DetectConfigPath searches for a config file using XDG standard paths.
// Returns the first config file found, or empty string if none exists.
//
// Search order:
// 1. $XDG_CONFIG_HOME/hyprwin/hyprland-window.toml
// 2. ~/.config/hyprwin/hyprland-window.toml
func DetectConfigPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}

	configPath := PathIn(dir)
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}

	return ""
}

// Load loads a config from the specified path.
// If the file doesn't exist, returns an error.
// After loading, applies environment variable overrides and validates.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &hwerrors.ConfigError{Path: path, Err: fmt.Errorf("config file %w", hwerrors.ErrNotFound)}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &hwerrors.ConfigError{Path: path, Err: fmt.Errorf("failed to read config file: %w", err)}
	}

	cfg := DefaultConfig()

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, &hwerrors.ConfigError{Path: path, Err: fmt.Errorf("failed to parse config file: %w: %v", hwerrors.ErrParse, err)}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, &hwerrors.ConfigError{Path: path, Err: fmt.Errorf("config validation failed: %w: %v", hwerrors.ErrInvalid, err)}
	}

	return cfg, nil
}

// LoadOrDefault loads the config at path, or the detected config when path is
// empty. A missing, unreadable, malformed or invalid file never fails: the
// defaults (with environment overrides) are returned and a warning is written
// to logger.
func LoadOrDefault(path string, logger hclog.Logger) *Config {
	if path == "" {
		path = DetectConfigPath()
	}

	if path == "" {
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		if err := cfg.Validate(); err != nil {
			warn(logger, "environment overrides rejected, using defaults", "error", err)
			return DefaultConfig()
		}
		return cfg
	}

	cfg, err := Load(path)
	if err != nil {
		warn(logger, "config unusable, using defaults", "path", path, "error", err)
		cfg = DefaultConfig()
		applyEnvOverrides(cfg)
		if err := cfg.Validate(); err != nil {
			return DefaultConfig()
		}
	}
	return cfg
}

func warn(logger hclog.Logger, msg string, args ...interface{}) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables follow the pattern: HYPRWIN_<SECTION>_<FIELD>
//
// Examples:
// - HYPRWIN_MAX_ENTRIES overrides max_entries
// - HYPRWIN_HYPRCTL_COMMAND overrides [hyprctl].command
// - HYPRWIN_DESKTOP_DIRS overrides [desktop].dirs (colon-separated)
func applyEnvOverrides(c *Config) {
	applyString := func(key string, target *string) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			*target = val
		}
	}

	applyBool := func(key string, target *bool) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			switch strings.ToLower(val) {
			case "true", "1", "yes", "on":
				*target = true
			case "false", "0", "no", "off":
				*target = false
			}
		}
	}

	applyInt := func(key string, target *int) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			var i int
			if _, err := fmt.Sscanf(val, "%d", &i); err == nil {
				*target = i
			}
		}
	}

	applyList := func(key string, target *[]string) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			var dirs []string
			for _, d := range strings.Split(val, ":") {
				if d != "" {
					dirs = append(dirs, d)
				}
			}
			*target = dirs
		}
	}

	applyInt("HYPRWIN_MAX_ENTRIES", &c.MaxEntries)
	applyInt("HYPRWIN_SCORE_THRESHOLD", &c.ScoreThreshold)

	applyList("HYPRWIN_DESKTOP_DIRS", &c.Desktop.Dirs)

	applyString("HYPRWIN_HYPRCTL_COMMAND", &c.Hyprctl.Command)

	applyString("HYPRWIN_LOG_LEVEL", &c.Log.Level)
	applyBool("HYPRWIN_LOG_JSON", &c.Log.JSON)
}
