// Package cli provides global state and utilities for CLI commands.
package cli

import (
	"os"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/chazuruo/hyprwin/internal/config"
	"github.com/chazuruo/hyprwin/internal/logging"
)

var (
	// NoTUI indicates that TUI/interactive mode should be disabled.
	// This is set by the global --no-tui flag.
	NoTUI bool

	// ConfigPath is the config file chosen with --config. Empty means the
	// detected default location.
	ConfigPath string

	// LogLevel overrides the configured log level when set with --log-level.
	LogLevel string

	// globalMutex protects the globals above for concurrent access.
	globalMutex sync.RWMutex
)

// AddGlobalFlags adds global flags to a command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&NoTUI, "no-tui", false,
		"disable TUI/interactive mode; use plain text or JSON output")
	cmd.PersistentFlags().StringVar(&ConfigPath, "config", "",
		"config file path (default $XDG_CONFIG_HOME/hyprwin/"+config.FileName+")")
	cmd.PersistentFlags().StringVar(&LogLevel, "log-level", "",
		"log level: trace, debug, info, warn, error or off")
}

// IsNoTUI returns true if TUI mode is disabled.
func IsNoTUI() bool {
	globalMutex.RLock()
	defer globalMutex.RUnlock()
	return NoTUI
}

func globalConfigPath() string {
	globalMutex.RLock()
	defer globalMutex.RUnlock()
	return ConfigPath
}

func globalLogLevel() string {
	globalMutex.RLock()
	defer globalMutex.RUnlock()
	return LogLevel
}

// bootstrap loads the configuration leniently and builds the operator
// logger. Config problems are logged, never returned.
func bootstrap() (*config.Config, hclog.Logger) {
	level := globalLogLevel()

	// Until the config is read only the flag and environment know the level.
	early := logging.New(logging.Options{Level: firstNonEmpty(level, os.Getenv("HYPRWIN_LOG_LEVEL"))})
	cfg := config.LoadOrDefault(globalConfigPath(), early)

	logger := logging.New(logging.Options{
		Level: firstNonEmpty(level, cfg.Log.Level),
		JSON:  cfg.Log.JSON,
	})
	return cfg, logger
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
