package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// IconOptions contains the options for the icon command.
type IconOptions struct {
	PID       int
	DesktopID bool
	Format    string
}

// NewIconCommand creates the icon command.
func NewIconCommand() *cobra.Command {
	opts := &IconOptions{}

	cmd := &cobra.Command{
		Use:   "icon <class>",
		Short: "Resolve the icon for a window class",
		Long: `Resolve an icon name the way window results do.

The chain tries, in order: an entry whose StartupWMClass equals the class,
an entry whose name contains the class (ignoring case), an entry whose Exec
contains the name of process --pid, and finally the class itself.

With --desktop-id the argument is a desktop file basename instead and the
search directories are probed for <id>.desktop directly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIcon(cmd.Context(), opts, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&opts.PID, "pid", 0, "process id of the window owner")
	cmd.Flags().BoolVar(&opts.DesktopID, "desktop-id", false, "treat the argument as a desktop file id")
	cmd.Flags().StringVar(&opts.Format, "format", "plain", "output format (plain, json, yaml)")

	return cmd
}

// iconReport is the structured output of the icon command.
type iconReport struct {
	Icon   string `json:"icon" yaml:"icon"`
	Source string `json:"source" yaml:"source"`
	Entry  string `json:"entry,omitempty" yaml:"entry,omitempty"`
}

func runIcon(ctx context.Context, opts *IconOptions, arg string, w io.Writer) error {
	format, err := ParseOutputFormat(opts.Format)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, logger := bootstrap()
	session := startSession(ctx, cfg, logger, false)

	var report iconReport
	if opts.DesktopID {
		report = iconReport{Icon: session.Catalog().LookupIcon(arg), Source: "desktop-id"}
	} else {
		res := session.Resolver().Resolve(arg, opts.PID)
		report = iconReport{Icon: res.Icon, Source: string(res.Source)}
		if res.Entry != nil {
			report.Entry = res.Entry.Source
		}
	}

	switch format {
	case FormatJSON:
		return printJSON(w, report)
	case FormatYAML:
		return printYAML(w, report)
	case FormatTable:
		tbl := newTable(w, "ICON", "SOURCE", "ENTRY")
		tbl.AddRow(report.Icon, report.Source, report.Entry)
		tbl.Print()
	default:
		fmt.Fprintln(w, report.Icon)
	}
	return nil
}
