package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/faizmokh/jam/internal/files"
	"github.com/faizmokh/jam/internal/timesheet"
)

var (
	// ErrInvalidWeek is returned when --week is not shaped like a start date.
	ErrInvalidWeek = errors.New("not a valid start date of week")
	// ErrInvalidRange is returned when --weeks is not a count.
	ErrInvalidRange = errors.New("no valid range given")
)

// weekKeyPattern accepts D.M, D.M.YY, or D.M.YYYY not followed by another digit.
var weekKeyPattern = regexp.MustCompile(`^[0123]?\d\.[01]?\d(?:\.\d{2}(?:\d\d)?)?(?:\D|$)`)

var leadingDigit = regexp.MustCompile(`^\d`)

type reportOptions struct {
	csv    bool
	latest bool
	week   string
	weeks  string
	clean  bool
	file   string
	color  string
}

// selection is what the report prints and exports.
type selection struct {
	weeks []*timesheet.Week
	// cycle adds a combined total after the weeks.
	cycle bool
	// all prints every week under a "Totals:" heading.
	all bool
}

func runReport(ctx context.Context, cmd *cobra.Command, manager *files.Manager, opts *reportOptions) error {
	if opts.clean {
		return cleanExports(cmd, manager)
	}

	if err := opts.validate(); err != nil {
		return err
	}

	log, err := loadLog(ctx, manager, opts)
	if err != nil {
		return err
	}

	sel, err := opts.selectWeeks(log)
	if err != nil {
		return err
	}

	if len(log.Weeks) > 0 {
		if err := exportTotals(cmd, manager, log.Weeks); err != nil {
			return err
		}
	}

	palette, err := resolvePalette(manager, opts.color)
	if err != nil {
		return err
	}
	formatter := newFormatter(manager, palette)
	printSelection(cmd, formatter, sel)

	if opts.csv {
		return exportCSV(cmd, manager, sel.weeks)
	}
	return nil
}

func (o *reportOptions) validate() error {
	if o.week != "" && o.weeks != "" {
		return errors.New("week and weeks can't be used together")
	}
	if o.week != "" && !weekKeyPattern.MatchString(o.week) {
		return fmt.Errorf("%s is %w", o.week, ErrInvalidWeek)
	}
	if o.weeks != "" {
		if _, err := o.weekCount(); err != nil {
			return err
		}
	}
	return nil
}

func (o *reportOptions) weekCount() (int, error) {
	if !leadingDigit.MatchString(o.weeks) {
		return 0, ErrInvalidRange
	}
	n, err := strconv.Atoi(o.weeks)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRange, o.weeks)
	}
	return n, nil
}

func (o *reportOptions) selectWeeks(log *timesheet.Log) (selection, error) {
	switch {
	case o.latest:
		latest, err := log.Latest()
		if err != nil {
			return selection{}, err
		}
		return selection{weeks: []*timesheet.Week{latest}}, nil
	case o.week != "":
		weeks, err := log.Matching(o.week)
		if err != nil {
			return selection{}, fmt.Errorf("%w: %s", err, o.week)
		}
		return selection{weeks: weeks, cycle: true}, nil
	case o.weeks != "":
		n, err := o.weekCount()
		if err != nil {
			return selection{}, err
		}
		return selection{weeks: log.Last(n), cycle: true}, nil
	default:
		return selection{weeks: log.Weeks, all: true}, nil
	}
}

func loadLog(ctx context.Context, manager *files.Manager, opts *reportOptions) (*timesheet.Log, error) {
	if opts.file != "" {
		manager.SetLogPath(opts.file)
	}
	return timesheet.NewReader(manager).Load(ctx)
}

func exportTotals(cmd *cobra.Command, manager *files.Manager, weeks []*timesheet.Week) error {
	return export(cmd, manager, manager.TotalsPath(), func(w io.Writer) error {
		return timesheet.WriteTotals(w, weeks)
	})
}

func exportCSV(cmd *cobra.Command, manager *files.Manager, weeks []*timesheet.Week) error {
	return export(cmd, manager, manager.CSVPath(), func(w io.Writer) error {
		return timesheet.WriteCSV(w, weeks)
	})
}

func export(cmd *cobra.Command, manager *files.Manager, path string, write func(io.Writer) error) error {
	created, err := manager.Export(path, write)
	if err != nil {
		return err
	}
	name := filepath.Base(path)
	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", name)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "File %s exists, rewriting\n", name)
	}
	return nil
}

func cleanExports(cmd *cobra.Command, manager *files.Manager) error {
	removed, err := manager.Clean()
	for _, path := range removed {
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", filepath.Base(path))
	}
	return err
}
