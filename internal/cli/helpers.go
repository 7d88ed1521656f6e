package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/jam/internal/files"
	"github.com/faizmokh/jam/internal/timesheet"
	"github.com/faizmokh/jam/internal/ui"
)

// resolvePalette picks the console palette from the --color flag, falling
// back to the configured mode.
func resolvePalette(manager *files.Manager, flag string) (timesheet.Palette, error) {
	mode := flag
	if mode == "" {
		mode = manager.Config().Color
	}

	switch mode {
	case files.ColorAuto, "":
		return ui.Palette{}, nil
	case files.ColorAlways:
		return timesheet.ANSIPalette{}, nil
	case files.ColorNever:
		return timesheet.PlainPalette{}, nil
	default:
		return nil, fmt.Errorf("invalid color %q (expected auto|always|never)", mode)
	}
}

func newFormatter(manager *files.Manager, palette timesheet.Palette) timesheet.Formatter {
	formatter := timesheet.NewFormatter(palette)
	if wrap := manager.Config().Wrap; wrap > 0 {
		formatter.Width = wrap
	}
	return formatter
}

func printSelection(cmd *cobra.Command, formatter timesheet.Formatter, sel selection) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out)

	if sel.all {
		fmt.Fprint(out, "Totals:\n\n")
	}
	for _, week := range sel.weeks {
		fmt.Fprintln(out, formatter.Format(week))
	}
	if sel.cycle {
		fmt.Fprintf(out, "Cycle total:\t%sh\n", timesheet.FormatCycleTotal(sel.weeks))
	}
}
