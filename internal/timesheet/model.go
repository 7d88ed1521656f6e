package timesheet

import "strings"

// RangeTime is the time value of entries opened by a table-row range marker.
const RangeTime = "*"

// Entry is a single worked slot within a Day.
type Entry struct {
	Time  string
	Hours float64
	// Measured is false when no duration marker accompanied the time.
	Measured bool
	Task     *Task
}

// HoursText renders the duration; unmeasured entries show a bare "0".
func (e *Entry) HoursText() string {
	if !e.Measured {
		return "0"
	}
	return FormatHours(e.Hours)
}

// Day groups entries beneath a date label.
type Day struct {
	Date    string
	Entries []*Entry
}

// Week is one reporting week introduced by a "## Week" header.
type Week struct {
	Label string
	Days  []*Day
}

// Log is the parsed timesheet in source order.
type Log struct {
	Weeks []*Week
}

// Total sums the hours of every entry in the week.
func (w *Week) Total() float64 {
	var total float64
	for _, day := range w.Days {
		for _, entry := range day.Entries {
			total += entry.Hours
		}
	}
	return total
}

// EntryCount reports how many entries the week holds across all days.
func (w *Week) EntryCount() int {
	count := 0
	for _, day := range w.Days {
		count += len(day.Entries)
	}
	return count
}

func (w *Week) measuredCount() int {
	count := 0
	for _, day := range w.Days {
		for _, entry := range day.Entries {
			if entry.Measured {
				count++
			}
		}
	}
	return count
}

func (w *Week) addDay(date string) {
	w.Days = append(w.Days, &Day{Date: date})
}

// addEntry appends to the last day. It returns nil when the week has no day yet.
func (w *Week) addEntry(time string, hours float64, measured bool) *Entry {
	if len(w.Days) == 0 {
		return nil
	}
	day := w.Days[len(w.Days)-1]
	entry := &Entry{Time: time, Hours: hours, Measured: measured, Task: &Task{}}
	day.Entries = append(day.Entries, entry)
	return entry
}

func (w *Week) lastEntry() *Entry {
	if len(w.Days) == 0 {
		return nil
	}
	day := w.Days[len(w.Days)-1]
	if len(day.Entries) == 0 {
		return nil
	}
	return day.Entries[len(day.Entries)-1]
}

// Latest returns the most recently parsed week.
func (l *Log) Latest() (*Week, error) {
	if l == nil || len(l.Weeks) == 0 {
		return nil, ErrNoWeeks
	}
	return l.Weeks[len(l.Weeks)-1], nil
}

// Last returns the final n weeks. Zero or a count beyond the log length returns all weeks.
func (l *Log) Last(n int) []*Week {
	if l == nil {
		return nil
	}
	if n <= 0 || n >= len(l.Weeks) {
		return l.Weeks
	}
	return l.Weeks[len(l.Weeks)-n:]
}

// Matching returns the weeks whose label contains key.
func (l *Log) Matching(key string) ([]*Week, error) {
	var weeks []*Week
	if l != nil {
		for _, week := range l.Weeks {
			if strings.Contains(week.Label, key) {
				weeks = append(weeks, week)
			}
		}
	}
	if len(weeks) == 0 {
		return nil, ErrWeekNotFound
	}
	return weeks, nil
}

// Total sums the hours across the given weeks.
func Total(weeks []*Week) float64 {
	var total float64
	for _, week := range weeks {
		total += week.Total()
	}
	return total
}
