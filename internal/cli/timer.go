package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/jam/internal/files"
	"github.com/faizmokh/jam/internal/stopwatch"
	"github.com/faizmokh/jam/internal/timesheet"
	"github.com/faizmokh/jam/internal/ui"
)

const timerLabelWidth = 12

func newTimerCommand(ctx context.Context, manager *files.Manager, opts *reportOptions) *cobra.Command {
	var (
		record bool
		task   string
	)

	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Show a running stopwatch until interrupted.",
		Long:  "timer prints the start time, redraws the elapsed duration every second, and prints the end time and total duration on Ctrl+C.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := timesheet.ValidateTask(task); err != nil {
				return fmt.Errorf("--task %q: %w", task, err)
			}

			watch := stopwatch.Start(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-*s%s\n", timerLabelWidth, "Start:", stopwatch.FormatTimestamp(watch.Started()))

			program := tea.NewProgram(ui.NewTimer(watch),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(out),
			)
			if _, err := program.Run(); err != nil && !stoppedCleanly(err) {
				return fmt.Errorf("run timer: %w", err)
			}

			end := printTimerSummary(cmd, watch)
			if !record {
				return nil
			}
			session := timesheet.Session{
				Start: watch.Started(),
				Hours: watch.ElapsedAt(end).Hours(),
				Task:  task,
			}
			// The interrupt that stopped the timer may also have cancelled ctx.
			return recordSession(context.WithoutCancel(ctx), cmd, manager, opts, session)
		},
	}

	cmd.Flags().BoolVarP(&record, "record", "r", false, "Append the session to the log when the timer stops")
	cmd.Flags().StringVarP(&task, "task", "t", "", "Task number or \"meet\" to tag the recorded session with")
	return cmd
}

func stoppedCleanly(err error) bool {
	return errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled)
}

func printTimerSummary(cmd *cobra.Command, watch *stopwatch.Stopwatch) time.Time {
	end := watch.Now()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-*s%s\n", timerLabelWidth, "End:", stopwatch.FormatTimestamp(end))
	fmt.Fprintf(out, "%-*s%s\n", timerLabelWidth, "Duration:", stopwatch.FormatDelta(watch.ElapsedAt(end)))
	return end
}
