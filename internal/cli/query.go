package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chazuruo/hyprwin/internal/plugin"
)

// QueryOptions contains the options for the query command.
type QueryOptions struct {
	Format string
}

// NewQueryCommand creates the query command.
func NewQueryCommand() *cobra.Command {
	opts := &QueryOptions{}

	cmd := &cobra.Command{
		Use:   "query <text>...",
		Short: "Rank open windows against a query",
		Long: `Rank the open windows against a query once and print the results.

The query is matched against each window's class and title. Class matches
weigh ten times as much as title matches. Windows with an empty title are
never listed.

Examples:
  hyprwin query firefox
  hyprwin query "mozilla fire" --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd.Context(), opts, strings.Join(args, " "), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "table", "output format (table, json, yaml, plain)")

	return cmd
}

func runQuery(ctx context.Context, opts *QueryOptions, query string, w io.Writer) error {
	format, err := ParseOutputFormat(opts.Format)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, logger := bootstrap()
	session := startSession(ctx, cfg, logger, true)

	return printMatches(w, format, session.GetMatches(query))
}

func printMatches(w io.Writer, format OutputFormat, matches []plugin.Match) error {
	if matches == nil {
		matches = []plugin.Match{}
	}

	switch format {
	case FormatJSON:
		return printJSON(w, matches)
	case FormatYAML:
		return printYAML(w, matches)
	case FormatPlain:
		for _, m := range matches {
			fmt.Fprintf(w, "%d\t%s\t%s\n", m.ID, m.Icon, m.Title)
		}
	default:
		if len(matches) == 0 {
			fmt.Fprintln(w, "No matching windows.")
			return nil
		}
		tbl := newTable(w, "ID", "TITLE", "ICON")
		for _, m := range matches {
			tbl.AddRow(m.ID, m.Title, m.Icon)
		}
		tbl.Print()
	}
	return nil
}
