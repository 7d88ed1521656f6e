package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/faizmokh/jam/internal/timesheet"
)

func TestAddAppendsSession(t *testing.T) {
	mgr := newTempManager(t, "## Week 12.10 - 18.10\n14.10 09:00 1h\n")

	out := executeCommand(t, NewRootCommand(context.Background(), mgr),
		"add", "45m", "--date", "2026-10-14", "--time", "13:00", "--task", "meet")
	if out != "Recorded 0.75h in TIME_USAGE.md\n" {
		t.Fatalf("output = %q", out)
	}

	want := "## Week 12.10 - 18.10\n14.10 09:00 1h\n13:00 0.75h | meet |\n"
	if got := readFile(t, mgr.LogPath()); got != want {
		t.Fatalf("log = %q, want %q", got, want)
	}

	report := executeCommand(t, NewRootCommand(context.Background(), mgr), "-l", "--color", "never")
	assertContains(t, report, "\t13:00\t0.75\tMeeting\n")
	assertContains(t, report, "Total:\t\t1.75h")
}

func TestAddHonoursFileFlag(t *testing.T) {
	mgr := newTempManager(t, "")

	executeCommand(t, NewRootCommand(context.Background(), mgr),
		"add", "2h", "--date", "2026-10-12", "--time", "08:15", "-f", "other.md")
	if got, want := readFile(t, mgr.BasePath()+"/other.md"), "## Week 12.10 - 18.10\n12.10 08:15 2.0h\n"; got != want {
		t.Fatalf("other.md = %q, want %q", got, want)
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	mgr := newTempManager(t, "")

	cases := [][]string{
		{"add", "soon"},
		{"add", "1h", "--date", "14.10.2026"},
		{"add", "1h", "--time", "9am"},
	}
	for _, args := range cases {
		if _, err := executeCommandErr(NewRootCommand(context.Background(), mgr), args...); err == nil {
			t.Fatalf("%q: expected error", args)
		}
	}

	_, err := executeCommandErr(NewRootCommand(context.Background(), mgr), "add", "1h", "--task", "review")
	if !errors.Is(err, timesheet.ErrInvalidTask) {
		t.Fatalf("error = %v, want ErrInvalidTask", err)
	}
}

func TestParseHours(t *testing.T) {
	cases := map[string]float64{
		"1.5":   1.5,
		"1.5h":  1.5,
		"2h":    2,
		"45m":   0.75,
		"1h30m": 1.5,
	}
	for input, want := range cases {
		got, err := parseHours(input)
		if err != nil {
			t.Fatalf("parseHours(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("parseHours(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestAddStartDefaultsToNow(t *testing.T) {
	now := time.Date(2026, time.October, 18, 17, 42, 31, 0, time.UTC)
	add := &addOptions{now: func() time.Time { return now }}

	got, err := add.start()
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if want := time.Date(2026, time.October, 18, 17, 42, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("start = %v, want %v", got, want)
	}

	add.date, add.clock = "2026-10-12", "09:05"
	got, err = add.start()
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if want := time.Date(2026, time.October, 12, 9, 5, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("start = %v, want %v", got, want)
	}
}
