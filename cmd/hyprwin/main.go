package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazuruo/hyprwin/internal/cli"
)

// Version is set at build time using ldflags
var Version = "dev"

// Commit is set at build time using ldflags
var Commit = "unknown"

// Date is set at build time using ldflags
var Date = "unknown"

// BuiltBy is set at build time using ldflags
var BuiltBy = "unknown"

func main() {
	pick := cli.NewPickCommand()

	rootCmd := &cobra.Command{
		Use:   "hyprwin",
		Short: "Fuzzy window switcher for Hyprland",
		Long: `hyprwin ranks the open Hyprland windows against a typed query, shows each
with the icon of its desktop application and focuses the one you pick.

Run without a subcommand to open the interactive switcher.`,
		Version:      fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         pick.RunE,
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(pick)
	rootCmd.AddCommand(cli.NewQueryCommand())
	rootCmd.AddCommand(cli.NewFocusCommand())
	rootCmd.AddCommand(cli.NewIconCommand())
	rootCmd.AddCommand(cli.NewEntriesCommand())
	rootCmd.AddCommand(cli.NewConfigCommand())
	rootCmd.AddCommand(cli.NewVersionCommand(Version, Commit, Date, BuiltBy))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
