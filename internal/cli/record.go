package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/jam/internal/files"
	"github.com/faizmokh/jam/internal/timesheet"
)

const (
	addDateLayout = "2006-01-02"
	addTimeLayout = "15:04"
)

type addOptions struct {
	date  string
	clock string
	task  string
	now   func() time.Time
}

func newAddCommand(ctx context.Context, manager *files.Manager, opts *reportOptions) *cobra.Command {
	add := &addOptions{now: time.Now}

	cmd := &cobra.Command{
		Use:   "add DURATION",
		Short: "Append a worked session to the log.",
		Long:  "add writes one entry such as \"14.10 09:30 1.5h | 2. |\" to the end of the log, starting a new week header when the session falls in a new week.",
		Example: `  jam add 1.5h --task 2
  jam add 45m --time 13:00 --task meet
  jam add 2 --date 2026-10-12 --time 09:00`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := parseHours(args[0])
			if err != nil {
				return err
			}
			start, err := add.start()
			if err != nil {
				return err
			}
			return recordSession(ctx, cmd, manager, opts, timesheet.Session{
				Start: start,
				Hours: hours,
				Task:  add.task,
			})
		},
	}

	cmd.Flags().StringVar(&add.date, "date", "", "Session date in YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&add.clock, "time", "", "Session start time in HH:MM (default: current time)")
	cmd.Flags().StringVarP(&add.task, "task", "t", "", "Task number or \"meet\"")
	return cmd
}

// parseHours accepts a bare number of hours, an "h"-suffixed number, or a
// Go duration such as "45m" or "1h30m".
func parseHours(input string) (float64, error) {
	trimmed := strings.TrimSpace(input)
	if hours, err := strconv.ParseFloat(strings.TrimSuffix(trimmed, "h"), 64); err == nil {
		return hours, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", input)
	}
	return d.Hours(), nil
}

func (o *addOptions) start() (time.Time, error) {
	now := o.now()
	day := now
	if o.date != "" {
		parsed, err := time.ParseInLocation(addDateLayout, o.date, now.Location())
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", o.date)
		}
		day = parsed
	}

	hour, minute := now.Hour(), now.Minute()
	if o.clock != "" {
		clock, err := time.Parse(addTimeLayout, o.clock)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --time %q (expected HH:MM)", o.clock)
		}
		hour, minute = clock.Hour(), clock.Minute()
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, now.Location()), nil
}

func recordSession(ctx context.Context, cmd *cobra.Command, manager *files.Manager, opts *reportOptions, session timesheet.Session) error {
	if opts.file != "" {
		manager.SetLogPath(opts.file)
	}
	if err := timesheet.NewRecorder(manager).Append(ctx, session); err != nil {
		return fmt.Errorf("record session: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Recorded %sh in %s\n",
		timesheet.FormatHours(timesheet.RoundHours(session.Hours)), filepath.Base(manager.LogPath()))
	return nil
}
