package timesheet

import (
	"regexp"
	"strconv"
)

var (
	weekPattern = regexp.MustCompile(`^## (Week +\d\d?\.\d\d?(?:\.\d\d)?)(?: *- *\d\d?\.\d\d?(?:\.\d\d)?)?`)
	// The date must be followed by a space, so an "h"-suffixed number such as
	// "1.5h" can never be taken for a date.
	dayTimePattern  = regexp.MustCompile(`(?:(?:(\d\d?\.\d\d?) )?(\d\d?:\d\d?))|(?:\|\s+?(\d+\s*?-\s*?\d+)\s+?\|)`)
	durationPattern = regexp.MustCompile(`(\d+(?:\.\d*)?)h`)
	taskPattern     = regexp.MustCompile(`(^\d+\. .*)|\| *(?:(\d+)\.|(meet)|(\.{3})) *\|`)
)

// TaskKind identifies which form of task marker a line carried.
type TaskKind uint8

const (
	TaskNone TaskKind = iota
	// TaskDescription is a "N. text" line that names a numbered task.
	TaskDescription
	// TaskNumber is a "| N. |" table cell referencing a numbered task.
	TaskNumber
	// TaskMeeting is a "| meet |" table cell.
	TaskMeeting
	// TaskEllipsis is a "| ... |" table cell.
	TaskEllipsis
)

// MeetingLabel is the label given to entries tagged with "meet".
const MeetingLabel = "Meeting"

// Marker is the classification of a single raw line. Each category is
// detected independently, so one line can carry several markers.
type Marker struct {
	// Week is the label of a week header. When set, the rest is not inspected.
	Week string

	// Date opens a new day when non-empty.
	Date string
	// Time opens a new entry when non-empty. Range rows use RangeTime.
	Time string

	Hours    float64
	HasHours bool

	TaskKind TaskKind
	// TaskText is the whole description line, the placeholder number, or the
	// literal label, depending on TaskKind.
	TaskText string
}

// IsWeek reports whether the line started a new week.
func (m Marker) IsWeek() bool {
	return m.Week != ""
}

// Empty reports whether nothing in the line was recognised.
func (m Marker) Empty() bool {
	return m.Week == "" && m.Date == "" && m.Time == "" && !m.HasHours && m.TaskKind == TaskNone
}

// Classify inspects one line of the log and reports the markers it contains.
func Classify(line string) Marker {
	if match := weekPattern.FindStringSubmatch(line); match != nil {
		return Marker{Week: match[1]}
	}

	var marker Marker
	marker.Date, marker.Time = matchDayTime(line)
	marker.Hours, marker.HasHours = matchDuration(line)
	marker.TaskKind, marker.TaskText = matchTask(line)
	return marker
}

func matchDayTime(line string) (date, clock string) {
	match := dayTimePattern.FindStringSubmatch(line)
	if match == nil {
		return "", ""
	}
	if match[3] != "" {
		return match[3], RangeTime
	}
	return match[1], match[2]
}

func matchDuration(line string) (float64, bool) {
	match := durationPattern.FindStringSubmatch(line)
	if match == nil {
		return 0, false
	}
	hours, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	return hours, true
}

func matchTask(line string) (TaskKind, string) {
	match := taskPattern.FindStringSubmatch(line)
	switch {
	case match == nil:
		return TaskNone, ""
	case match[1] != "":
		return TaskDescription, match[1]
	case match[2] != "":
		return TaskNumber, match[2]
	case match[3] != "":
		return TaskMeeting, MeetingLabel
	case match[4] != "":
		return TaskEllipsis, match[4]
	default:
		return TaskNone, ""
	}
}
