package timesheet

import (
	"strings"
	"testing"
)

func TestWriteTotals(t *testing.T) {
	log := mustParse(t, `## Week 01.05 - 07.05
01.05 09:00 1.5h
## Week 08.05 - 14.05
08.05 09:00 8h
09.05 09:00 8h
10.05 09:00 8h
11.05 09:00 8h
12.05 09:00 8h
`)

	var b strings.Builder
	if err := WriteTotals(&b, log.Weeks); err != nil {
		t.Fatalf("WriteTotals: %v", err)
	}

	want := "| Week       | Total |\n" +
		"| ---------- | ----- |\n" +
		"| Week 01.05 | 1.5   |\n" +
		"| Week 08.05 | 40    |\n"
	if got := b.String(); got != want {
		t.Fatalf("WriteTotals = %q, want %q", got, want)
	}
}

func TestWriteCSV(t *testing.T) {
	log := mustParse(t, standupLog)

	var b strings.Builder
	if err := WriteCSV(&b, log.Weeks); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	want := "Week 01.05\n" +
		"Date,Hours,Task\n" +
		"01.05 09:00,\"1,5\",\"Standup meeting\"\n" +
		"Total, \"1,5\"\n"
	if got := b.String(); got != want {
		t.Fatalf("WriteCSV = %q, want %q", got, want)
	}
}

func TestWriteCSVRangeRowsAndQuotes(t *testing.T) {
	log := mustParse(t, `## Week 1.1 - 7.1
| 9 - 17 | 8h | 1. |
1. Ship "v2"
02.01 10:00
`)

	var b strings.Builder
	if err := WriteCSV(&b, log.Weeks); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	want := "Week 1.1\n" +
		"Date,Hours,Task\n" +
		"9 - 17 *,\"8,0\",\"Ship \"\"v2\"\"\"\n" +
		"02.01 10:00,\"0\",\"\"\n" +
		"Total, \"8,0\"\n"
	if got := b.String(); got != want {
		t.Fatalf("WriteCSV = %q, want %q", got, want)
	}
}

func TestWriteCSVEmptyWeek(t *testing.T) {
	log := mustParse(t, "## Week 1.1 - 7.1\n")

	var b strings.Builder
	if err := WriteCSV(&b, log.Weeks); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	want := "Week 1.1\nDate,Hours,Task\nTotal, \"0\"\n"
	if got := b.String(); got != want {
		t.Fatalf("WriteCSV = %q, want %q", got, want)
	}
}

func TestWriteCSVTinyDurationUsesExponentForm(t *testing.T) {
	log := mustParse(t, "## Week 1.1 - 7.1\n01.01 09:00 0.00001h\n")

	var b strings.Builder
	if err := WriteCSV(&b, log.Weeks); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	want := "01.01 09:00,\"1e-05\",\"\"\n"
	if !strings.Contains(b.String(), want) {
		t.Fatalf("csv = %q, missing %q", b.String(), want)
	}
}
