package timesheet

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Parser builds a Log from timesheet lines fed to it in order. The most
// recent week, day, and entry act as cursors that later markers attach to.
type Parser struct {
	log *Log

	// pending indexes tasks still holding a numeric placeholder by that
	// placeholder, so a description line only visits the tasks it can fill.
	pending map[string][]*Task

	// fresh is the entry opened on the previous matched line without a
	// duration. A duration on the following matched line still applies to it.
	fresh *Entry

	// untagged is the latest clock-time entry opened without a task marker
	// and not yet followed by one. Only it may take a description as its label.
	untagged *Entry
}

// NewParser returns a parser with an empty Log.
func NewParser() *Parser {
	return &Parser{
		log:     &Log{},
		pending: make(map[string][]*Task),
	}
}

// Parse reads every line from r and returns the resulting Log.
func Parse(r io.Reader) (*Log, error) {
	p := NewParser()
	if r == nil {
		return p.Log(), nil
	}

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			p.ParseLine(line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return p.Log(), nil
			}
			return nil, err
		}
	}
}

// Log returns the log built so far.
func (p *Parser) Log() *Log {
	return p.log
}

// ParseLine applies a single line. Lines before the first week header and
// markers without a day or entry to attach to are ignored.
func (p *Parser) ParseLine(line string) {
	line = strings.TrimRight(line, "\r\n")

	marker := Classify(line)
	if marker.Empty() {
		return
	}

	fresh := p.fresh
	p.fresh = nil
	untagged := p.untagged
	if marker.TaskKind != TaskNone {
		p.untagged = nil
	}

	if marker.IsWeek() {
		p.untagged = nil
		p.log.Weeks = append(p.log.Weeks, &Week{Label: marker.Week})
		return
	}

	week := p.currentWeek()
	if week == nil {
		return
	}

	if marker.Date != "" {
		week.addDay(marker.Date)
	}
	if marker.Time != "" {
		entry := week.addEntry(marker.Time, marker.Hours, marker.HasHours)
		if entry != nil && !marker.HasHours {
			p.fresh = entry
		}
		// Range rows leave an empty task cell on purpose.
		p.untagged, untagged = nil, nil
		if entry != nil && marker.Time != RangeTime {
			if marker.TaskKind == TaskNone {
				p.untagged = entry
			} else {
				untagged = entry
			}
		}
	} else if marker.HasHours && fresh != nil {
		fresh.Hours = marker.Hours
		fresh.Measured = true
	}

	switch marker.TaskKind {
	case TaskDescription:
		p.describe(marker.TaskText)
		// A clock-time entry with no task marker of its own takes the first
		// description that follows it.
		if untagged != nil && !untagged.Task.set {
			p.assign(untagged.Task, descriptionText(marker.TaskText))
		}
	case TaskNumber, TaskMeeting, TaskEllipsis:
		entry := week.lastEntry()
		if entry == nil {
			return
		}
		p.assign(entry.Task, marker.TaskText)
	}
}

func (p *Parser) currentWeek() *Week {
	if len(p.log.Weeks) == 0 {
		return nil
	}
	return p.log.Weeks[len(p.log.Weeks)-1]
}

func (p *Parser) assign(task *Task, text string) {
	wasSet := task.set
	task.SetLabel(text)
	if !wasSet && task.Placeholder() {
		p.track(task)
	}
}

func (p *Parser) track(task *Task) {
	key := task.Label()
	p.pending[key] = append(p.pending[key], task)
}

// describe fills every earlier placeholder whose number prefixes the
// description line. The match is on the string prefix, so "1" also
// matches "12. ...".
func (p *Parser) describe(line string) {
	var keys []string
	for key := range p.pending {
		if strings.HasPrefix(line, key) {
			keys = append(keys, key)
		}
	}

	for _, key := range keys {
		tasks := p.pending[key]
		delete(p.pending, key)

		label := sliceAfter(line, len(key)+2)
		for _, task := range tasks {
			if task.Label() != key {
				continue
			}
			task.SetLabel(label)
			if task.Placeholder() {
				p.track(task)
			}
		}
	}
}

// descriptionText strips the list number and separator from "N. text".
func descriptionText(line string) string {
	number := strings.IndexByte(line, '.')
	if number < 0 {
		return line
	}
	return sliceAfter(line, number+2)
}

func sliceAfter(s string, cut int) string {
	if cut >= len(s) {
		return ""
	}
	return s[cut:]
}
