package timesheet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/faizmokh/jam/internal/files"
)

// meetKeyword is the table cell that tags an entry as a meeting.
const meetKeyword = "meet"

// Session is a block of worked time to append to the log.
type Session struct {
	Start time.Time
	Hours float64
	// Task is a task number or "meet". Empty leaves the entry unlabeled.
	Task string
}

// Recorder appends sessions to the timesheet log located by a files.Manager.
type Recorder struct {
	manager *files.Manager
}

// NewRecorder wires a recorder using the shared files.Manager.
func NewRecorder(manager *files.Manager) *Recorder {
	return &Recorder{manager: manager}
}

// ValidateTask reports whether task can be written as a task cell.
func ValidateTask(task string) error {
	_, err := taskCell(task)
	return err
}

// Append writes the session as one line at the end of the log. When the
// latest week is not the Monday-to-Sunday week holding the session start, a
// new week header is written first. The date is left off when the session
// falls on the latest day already logged. A missing log is created.
func (r *Recorder) Append(ctx context.Context, session Session) error {
	if r == nil || r.manager == nil {
		return errors.New("recorder not initialized with file manager")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	cell, err := taskCell(session.Task)
	if err != nil {
		return fmt.Errorf("%q: %w", session.Task, err)
	}
	if session.Hours < 0 || math.IsNaN(session.Hours) || math.IsInf(session.Hours, 0) {
		return ErrInvalidHours
	}

	path := r.manager.LogPath()
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read log: %w", err)
	}

	log, err := Parse(strings.NewReader(string(data)))
	if err != nil {
		return err
	}

	monday := weekStart(session.Start)
	lines := splitLines(string(data))

	latest, _ := log.Latest()
	sameWeek := latest != nil && sameWeekLabel(latest.Label, monday)
	if !sameWeek {
		if needsSeparation(lines) {
			lines = append(lines, "")
		}
		lines = append(lines, weekHeading(monday))
	}
	sameDay := sameWeek && len(latest.Days) > 0 && sameDate(latest.Days[len(latest.Days)-1].Date, session.Start)
	lines = append(lines, sessionLine(session, cell, !sameDay))

	_, err = r.manager.Export(path, func(w io.Writer) error {
		_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
		return err
	})
	return err
}

// RoundHours rounds to the hundredth of an hour written to the log.
func RoundHours(hours float64) float64 {
	return math.Round(hours*100) / 100
}

func taskCell(task string) (string, error) {
	switch {
	case task == "":
		return "", nil
	case task == meetKeyword:
		return meetKeyword, nil
	case isNumeric(task):
		return task + ".", nil
	default:
		return "", ErrInvalidTask
	}
}

func sessionLine(session Session, cell string, withDate bool) string {
	var b strings.Builder
	if withDate {
		b.WriteString(session.Start.Format("02.01"))
		b.WriteByte(' ')
	}
	b.WriteString(session.Start.Format("15:04"))
	b.WriteByte(' ')
	b.WriteString(FormatHours(RoundHours(session.Hours)))
	b.WriteByte('h')
	if cell != "" {
		b.WriteString(" | ")
		b.WriteString(cell)
		b.WriteString(" |")
	}
	return b.String()
}

func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day()-offset, 0, 0, 0, 0, t.Location())
}

func weekHeading(monday time.Time) string {
	sunday := monday.AddDate(0, 0, 6)
	return fmt.Sprintf("## Week %s - %s", monday.Format("02.01"), sunday.Format("02.01"))
}

var (
	weekLabelDate = regexp.MustCompile(`^Week +(\d\d?)\.(\d\d?)`)
	dayDate       = regexp.MustCompile(`^(\d\d?)\.(\d\d?)$`)
)

// sameWeekLabel compares the start date of label with monday, ignoring zero
// padding and any year suffix.
func sameWeekLabel(label string, monday time.Time) bool {
	return sameDayMonth(weekLabelDate.FindStringSubmatch(label), monday)
}

// sameDate reports whether a day label such as "6.10" names the date of t.
// Range rows never match.
func sameDate(date string, t time.Time) bool {
	return sameDayMonth(dayDate.FindStringSubmatch(date), t)
}

func sameDayMonth(match []string, t time.Time) bool {
	if match == nil {
		return false
	}
	day, err := strconv.Atoi(match[1])
	if err != nil {
		return false
	}
	month, err := strconv.Atoi(match[2])
	if err != nil {
		return false
	}
	return day == t.Day() && month == int(t.Month())
}

func splitLines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func needsSeparation(lines []string) bool {
	if len(lines) == 0 {
		return false
	}
	return strings.TrimSpace(lines[len(lines)-1]) != ""
}
