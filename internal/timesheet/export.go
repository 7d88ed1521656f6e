package timesheet

import (
	"fmt"
	"io"
	"strings"
)

// WriteTotals writes a two-column Markdown table with one row per week.
func WriteTotals(w io.Writer, weeks []*Week) error {
	var b strings.Builder
	fmt.Fprintf(&b, "| %-10s | Total |\n", "Week")
	fmt.Fprintf(&b, "| %s | ----- |\n", strings.Repeat("-", 10))
	for _, week := range weeks {
		fmt.Fprintf(&b, "| %-10s | %-5s |\n", week.Label, FormatTotal(week.Total()))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteCSV writes each week as a label line, a header row, one row per
// entry, and a total row. Decimal points become commas so spreadsheets in
// comma-decimal locales read the hours as numbers.
func WriteCSV(w io.Writer, weeks []*Week) error {
	var b strings.Builder
	for _, week := range weeks {
		b.WriteString(week.Label)
		b.WriteString("\nDate,Hours,Task\n")
		for _, day := range week.Days {
			for _, entry := range day.Entries {
				fmt.Fprintf(&b, "%s %s,%s,%s\n",
					day.Date, entry.Time,
					quote(decimalComma(entry.HoursText())),
					quote(entry.Task.Label()),
				)
			}
		}
		fmt.Fprintf(&b, "Total, %s\n", quote(decimalComma(formatSum(week.Total(), week.measuredCount()))))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func decimalComma(s string) string {
	return strings.ReplaceAll(s, ".", ",")
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
