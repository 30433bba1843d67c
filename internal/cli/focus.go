package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	hwerrors "github.com/chazuruo/hyprwin/internal/errors"
	"github.com/chazuruo/hyprwin/internal/plugin"
)

// NewFocusCommand creates the focus command.
func NewFocusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "focus <id>",
		Short: "Focus a window by result id",
		Long: `Focus the window with the given id, as printed by "hyprwin query".

Ids number the windows in compositor order at the time of the snapshot, so
they are only meaningful while the window list is unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFocus(cmd.Context(), args[0], cmd.OutOrStdout())
		},
	}
}

func runFocus(ctx context.Context, rawID string, w io.Writer) error {
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid window id %q: %w", rawID, hwerrors.ErrInvalid)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, logger := bootstrap()
	session := startSession(ctx, cfg, logger, true)

	// A user-typed id may be stale; Handle treats unknown ids as a bug.
	win, ok := session.Snapshot().ByID(id)
	if !ok {
		return fmt.Errorf("window %d: %w (%d windows open)", id, hwerrors.ErrNotFound, session.Snapshot().Len())
	}

	session.Handle(plugin.Match{Title: win.Title, ID: id})
	fmt.Fprintf(w, "Focused %s (%s)\n", win.Title, win.Address)
	return nil
}
