package stopwatch

import (
	"testing"
	"time"
)

func TestFormatDelta(t *testing.T) {
	cases := map[time.Duration]string{
		0:               "0 days 00:00:00",
		5 * time.Second: "0 days 00:00:05",
		time.Hour + 2*time.Minute + 3*time.Second: "0 days 01:02:03",
		49*time.Hour + 30*time.Second:             "2 days 01:00:30",
		1500 * time.Millisecond:                   "0 days 00:00:01",
		-time.Minute:                              "0 days 00:00:00",
	}
	for in, want := range cases {
		if got := FormatDelta(in); got != want {
			t.Fatalf("FormatDelta(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestStopwatchElapsed(t *testing.T) {
	start := time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)
	current := start
	sw := Start(func() time.Time { return current })

	if !sw.Started().Equal(start) {
		t.Fatalf("Started() = %s, want %s", sw.Started(), start)
	}

	current = start.Add(90*time.Minute + 1500*time.Millisecond)
	if got, want := sw.Elapsed(), 90*time.Minute+time.Second; got != want {
		t.Fatalf("Elapsed() = %v, want %v", got, want)
	}

	if got := sw.ElapsedAt(start.Add(-time.Second)); got != 0 {
		t.Fatalf("ElapsedAt(before start) = %v, want 0", got)
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2025, time.May, 1, 9, 5, 7, 123456000, time.UTC)
	if got, want := FormatTimestamp(ts), "2025-05-01 09:05:07.123456"; got != want {
		t.Fatalf("FormatTimestamp() = %q, want %q", got, want)
	}
}
