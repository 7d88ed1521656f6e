package timesheet

import (
	"strings"
	"testing"
)

const standupLog = `## Week 01.05 - 07.05
01.05 09:00
1.5h
1. Standup meeting
`

func mustParse(t *testing.T, input string) *Log {
	t.Helper()
	log, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return log
}

func TestFormatPlainWeek(t *testing.T) {
	week := mustParse(t, standupLog).Weeks[0]

	want := "Week 01.05:\n" +
		"01.05\t09:00\t1.5\tStandup meeting\n" +
		"Total:\t\t1.5h\n\n"
	if got := week.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestFormatANSIWeek(t *testing.T) {
	week := mustParse(t, standupLog).Weeks[0]

	want := "\033[93mWeek 01.05:\033[0m\n" +
		"\033[2m01.05\033[0m\033[2m\t09:00\t1.5\tStandup meeting\033[0m\n" +
		"\033[96mTotal:\t\t1.5h\033[0m\n\n"
	if got := NewFormatter(ANSIPalette{}).Format(week); got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestFormatAlternatesDayStyle(t *testing.T) {
	week := mustParse(t, `## Week 1.1 - 7.1
01.01 09:00 1h
02.01 09:00 2h
`).Weeks[0]

	got := NewFormatter(ANSIPalette{}).Format(week)
	if !strings.Contains(got, "\033[2m01.01\033[0m") {
		t.Fatalf("first day not dimmed: %q", got)
	}
	if !strings.Contains(got, "02.01\033[0m\t09:00\t2.0\t\033[0m\n") {
		t.Fatalf("second day unexpectedly styled: %q", got)
	}
}

func TestFormatZeroTotalAddsSeparator(t *testing.T) {
	week := mustParse(t, "## Week 2.2 - 8.2\n02.02 10:00\n").Weeks[0]

	want := "Week 2.2:\n" +
		"02.02\t10:00\t0\t\n" +
		"\n" +
		"Total:\t\t0h\n\n"
	if got := week.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestFormatWrapsLongTasks(t *testing.T) {
	label := strings.Repeat("a", 70) + " " + strings.Repeat("b", 19)
	week := mustParse(t, "## Week 3.3 - 9.3\n03.03 09:00 1.5h\n1. "+label+"\n").Weeks[0]

	want := "Week 3.3:\n" +
		"03.03\t09:00\t1.5\t" + strings.Repeat("a", 70) + "\n" +
		"\t     \t   \t" + strings.Repeat("b", 19) + "\n" +
		"Total:\t\t1.5h\n\n"
	if got := week.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestWrapLabel(t *testing.T) {
	if got := WrapLabel("short", 80); len(got) != 1 || got[0] != "short" {
		t.Fatalf("WrapLabel(short) = %q", got)
	}

	unbroken := strings.Repeat("x", 90)
	if got := WrapLabel(unbroken, 80); len(got) != 1 || got[0] != unbroken {
		t.Fatalf("WrapLabel(unbroken) = %q, want single line", got)
	}

	words := strings.Repeat("word ", 40)
	for _, line := range WrapLabel(strings.TrimSpace(words), 80) {
		if len(line) > 80 {
			t.Fatalf("wrapped line longer than 80: %q", line)
		}
	}
}

func TestFormatNumbers(t *testing.T) {
	hours := map[float64]string{
		1.5:     "1.5",
		2:       "2.0",
		0.25:    "0.25",
		0:       "0.0",
		0.0001:  "0.0001",
		0.00001: "1e-05",
		1.5e-05: "1.5e-05",
		1e15:    "1000000000000000.0",
		1e16:    "1e+16",
		1.25e17: "1.25e+17",
	}
	for in, want := range hours {
		if got := FormatHours(in); got != want {
			t.Fatalf("FormatHours(%v) = %q, want %q", in, got, want)
		}
	}

	totals := map[float64]string{1.5: "1.5", 40: "40", 0: "0", 37.25: "37.25", 0.1 + 0.2: "0.3"}
	for in, want := range totals {
		if got := FormatTotal(in); got != want {
			t.Fatalf("FormatTotal(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatCycleTotal(t *testing.T) {
	log := mustParse(t, sampleLog)
	if got := FormatCycleTotal(log.Weeks); got != "12.5" {
		t.Fatalf("FormatCycleTotal = %q, want %q", got, "12.5")
	}

	empty := mustParse(t, "## Week 1.1 - 7.1\n01.01 09:00\n")
	if got := FormatCycleTotal(empty.Weeks); got != "0" {
		t.Fatalf("FormatCycleTotal(unmeasured) = %q, want %q", got, "0")
	}
}
