package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/chazuruo/hyprwin/internal/config"
)

// ConfigInitOptions contains the options for the config init command.
type ConfigInitOptions struct {
	Force bool

	// Scriptable/flag options for --no-tui mode
	MaxEntries     int
	ScoreThreshold int
	HyprctlCommand string
	LogLevel       string
	DesktopDirs    []string
}

// NewConfigCommand creates the config command and its subcommands.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the hyprwin configuration",
	}

	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

func newConfigInitCommand() *cobra.Command {
	defaults := config.DefaultConfig()
	opts := &ConfigInitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file",
		Long: `Write hyprland-window.toml.

The init command asks for:
- the maximum number of results
- the score a window must exceed to be listed
- the log level

Use --no-tui with flags for scripted setup.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, "overwrite an existing config file")
	cmd.Flags().IntVar(&opts.MaxEntries, "max-entries", defaults.MaxEntries, "maximum number of results")
	cmd.Flags().IntVar(&opts.ScoreThreshold, "score-threshold", defaults.ScoreThreshold, "combined score a window must exceed")
	cmd.Flags().StringVar(&opts.HyprctlCommand, "hyprctl", defaults.Hyprctl.Command, "hyprctl command")
	cmd.Flags().StringVar(&opts.LogLevel, "default-log-level", defaults.Log.Level, "log level written to the config")
	cmd.Flags().StringSliceVar(&opts.DesktopDirs, "desktop-dir", nil, "desktop entry directory (repeatable; default from XDG)")

	return cmd
}

func runConfigInit(opts *ConfigInitOptions, w io.Writer) error {
	path := targetConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory; pass --config")
	}

	if _, err := os.Stat(path); err == nil && !opts.Force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}

	if !IsNoTUI() {
		if err := askConfig(opts); err != nil {
			return err
		}
	}

	cfg := config.DefaultConfig()
	cfg.MaxEntries = opts.MaxEntries
	cfg.ScoreThreshold = opts.ScoreThreshold
	cfg.Hyprctl.Command = opts.HyprctlCommand
	cfg.Log.Level = opts.LogLevel
	cfg.Desktop.Dirs = opts.DesktopDirs

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := config.Write(path, cfg); err != nil {
		return err
	}

	fmt.Fprintf(w, "Wrote %s\n", path)
	return nil
}

// askConfig fills opts from an interactive form, starting from the flag values.
func askConfig(opts *ConfigInitOptions) error {
	maxEntries := strconv.Itoa(opts.MaxEntries)
	threshold := strconv.Itoa(opts.ScoreThreshold)
	level := opts.LogLevel

	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Maximum results").
				Description("How many windows to list per query").
				Value(&maxEntries).
				Validate(positiveInt),
			huh.NewInput().
				Title("Score threshold").
				Description("A window must score above this to be listed").
				Value(&threshold).
				Validate(anyInt),
			huh.NewSelect[string]().
				Title("Log level").
				Options(
					huh.NewOption("warn", "warn"),
					huh.NewOption("info", "info"),
					huh.NewOption("debug", "debug"),
					huh.NewOption("trace", "trace"),
					huh.NewOption("error", "error"),
					huh.NewOption("off", "off"),
				).
				Value(&level),
		),
	).Run(); err != nil {
		return fmt.Errorf("form error: %w", err)
	}

	opts.MaxEntries, _ = strconv.Atoi(strings.TrimSpace(maxEntries))
	opts.ScoreThreshold, _ = strconv.Atoi(strings.TrimSpace(threshold))
	opts.LogLevel = level
	return nil
}

func positiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return fmt.Errorf("enter a whole number of at least 1")
	}
	return nil
}

func anyInt(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration hyprwin would run with, after defaults and
HYPRWIN_* environment overrides. An unusable config file is reported in the
log and the defaults are shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd.OutOrStdout())
		},
	}
}

func runConfigShow(w io.Writer) error {
	cfg, _ := bootstrap()

	if path := firstNonEmpty(globalConfigPath(), config.DetectConfigPath()); path != "" {
		fmt.Fprintf(w, "# %s\n", path)
	} else {
		fmt.Fprintln(w, "# defaults (no config file)")
	}

	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

func targetConfigPath() string {
	if path := globalConfigPath(); path != "" {
		return path
	}
	dir := config.Dir()
	if dir == "" {
		return ""
	}
	return config.PathIn(dir)
}
