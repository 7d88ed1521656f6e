package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/jam/internal/files"
	"github.com/faizmokh/jam/internal/timesheet"
	"github.com/faizmokh/jam/internal/ui"
)

func newTotalsCommand(ctx context.Context, manager *files.Manager, opts *reportOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Rewrite TOTAL.md and print the weekly totals table.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := loadLog(ctx, manager, opts)
			if err != nil {
				return err
			}
			if len(log.Weeks) == 0 {
				return timesheet.ErrNoWeeks
			}

			if err := exportTotals(cmd, manager, log.Weeks); err != nil {
				return err
			}
			return timesheet.WriteTotals(cmd.OutOrStdout(), log.Weeks)
		},
	}
	return cmd
}

func newBrowseCommand(ctx context.Context, manager *files.Manager, opts *reportOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through the weeks in an interactive view.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.file != "" {
				manager.SetLogPath(opts.file)
			}
			palette, err := resolvePalette(manager, opts.color)
			if err != nil {
				return err
			}

			m := ui.NewBrowser(ctx, timesheet.NewReader(manager), newFormatter(manager, palette))
			program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
	}
	return cmd
}
