package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/faizmokh/jam/internal/files"
	"github.com/faizmokh/jam/internal/ui"
	"github.com/faizmokh/jam/internal/version"
)

// NewRootCommand creates the top-level Cobra command. Run without a
// subcommand it prints the weekly report.
func NewRootCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:     "jam",
		Short:   "Total the hours in a weekly timesheet log.",
		Long:    "jam parses a Markdown timesheet organised by week, day, time slot and task, writes TOTAL.md, and prints the weeks you select.",
		Version: version.Info(),
		Args:    cobra.NoArgs,
		// --help and --version are answered before this runs, so a broken
		// jam.yaml only fails commands that read it.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return manager.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(ctx, cmd, manager, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.csv, "csv", false, "Also export the selected weeks to time.csv")
	flags.BoolVarP(&opts.latest, "latest", "l", false, "Show only the latest week")
	flags.StringVarP(&opts.week, "week", "w", "", "Show weeks whose label contains this start date (D.M[.YY])")
	flags.StringVarP(&opts.weeks, "weeks", "W", "", "Show the last N weeks (0 for all)")
	flags.BoolVar(&opts.clean, "clean", false, "Remove TOTAL.md and time.csv, then exit")
	cmd.MarkFlagsMutuallyExclusive("week", "weeks")

	cmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "Timesheet log to read (default: TIME_USAGE.md)")
	cmd.PersistentFlags().StringVar(&opts.color, "color", "", "Color output: auto, always, or never")

	cmd.AddCommand(
		newTotalsCommand(ctx, manager, opts),
		newBrowseCommand(ctx, manager, opts),
		newTimerCommand(ctx, manager, opts),
		newAddCommand(ctx, manager, opts),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	manager, err := files.NewManager("")
	if err != nil {
		return err
	}
	cmd := NewRootCommand(ctx, manager)
	return cmd.Execute()
}

// Main is a helper used by cmd/jam/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.RenderError(fmt.Sprintf("error: %v", err)))
		os.Exit(1)
	}
}
