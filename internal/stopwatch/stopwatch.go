package stopwatch

import (
	"fmt"
	"time"
)

// TimestampLayout matches the precision printed for start and end times.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// Stopwatch measures wall-clock time since it was started.
type Stopwatch struct {
	started time.Time
	now     func() time.Time
}

// Start begins measuring at the current time. A nil clock uses time.Now.
func Start(now func() time.Time) *Stopwatch {
	if now == nil {
		now = time.Now
	}
	return &Stopwatch{started: now(), now: now}
}

// Started returns the instant the stopwatch began.
func (s *Stopwatch) Started() time.Time {
	return s.started
}

// Now reads the stopwatch's clock.
func (s *Stopwatch) Now() time.Time {
	return s.now()
}

// Elapsed returns the time since Start, truncated to whole seconds.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.ElapsedAt(s.now())
}

// ElapsedAt returns the time between Start and at, truncated to whole seconds.
func (s *Stopwatch) ElapsedAt(at time.Time) time.Duration {
	d := at.Sub(s.started)
	if d < 0 {
		return 0
	}
	return d.Truncate(time.Second)
}

// FormatDelta renders d as "<days> days HH:MM:SS".
func FormatDelta(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	days := total / 86400
	rem := total % 86400
	return fmt.Sprintf("%d days %02d:%02d:%02d", days, rem/3600, rem%3600/60, rem%60)
}

// FormatTimestamp renders t using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
