package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chazuruo/hyprwin/internal/desktop"
)

// EntriesOptions contains the options for the entries command.
type EntriesOptions struct {
	Format string
}

// NewEntriesCommand creates the entries command.
func NewEntriesCommand() *cobra.Command {
	opts := &EntriesOptions{}

	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List the desktop entries used for icon resolution",
		Long: `List every visible application found in the desktop entry search
directories, in the order icon resolution scans them.

Entries are not de-duplicated: an application installed in two directories
is listed twice, the higher-priority directory first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEntries(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "table", "output format (table, json, yaml, plain)")

	return cmd
}

func runEntries(ctx context.Context, opts *EntriesOptions, w io.Writer) error {
	format, err := ParseOutputFormat(opts.Format)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, logger := bootstrap()
	catalog := startSession(ctx, cfg, logger, false).Catalog()

	entries := catalog.Entries()
	if entries == nil {
		entries = []desktop.Entry{}
	}

	switch format {
	case FormatJSON:
		return printJSON(w, entries)
	case FormatYAML:
		return printYAML(w, entries)
	case FormatPlain:
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Icon, e.Source)
		}
	default:
		if len(entries) == 0 {
			fmt.Fprintln(w, "No desktop entries found.")
			return nil
		}
		tbl := newTable(w, "NAME", "ICON", "WM CLASS", "EXEC")
		for _, e := range entries {
			tbl.AddRow(e.Name, e.Icon, e.StartupWMClass, e.Exec)
		}
		tbl.Print()
		fmt.Fprintf(w, "\nTotal: %d entries from %d directories\n", len(entries), len(catalog.Dirs()))
	}
	return nil
}
