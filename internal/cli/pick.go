package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/chazuruo/hyprwin/internal/tui"
)

// NewPickCommand creates the pick command.
func NewPickCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Interactively pick a window to focus",
		Long: `Open an interactive window switcher.

Type to rank the open windows, move with the arrow keys and press Enter to
focus the highlighted window. Esc quits without changing focus.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd.Context())
		},
	}
}

func runPick(ctx context.Context) error {
	if IsNoTUI() {
		return fmt.Errorf("pick is interactive; use \"hyprwin query\" and \"hyprwin focus\" with --no-tui")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, logger := bootstrap()
	session := startSession(ctx, cfg, logger, true)

	model := tui.NewPickerModel(session)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	picker := finalModel.(tui.PickerModel)
	if picker.DidQuit() || !picker.DidConfirm() || picker.Selected == nil {
		return nil
	}

	session.Handle(*picker.Selected)
	return nil
}
