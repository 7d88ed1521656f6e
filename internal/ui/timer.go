package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/jam/internal/stopwatch"
)

// TickMsg carries the wall-clock time of a timer refresh.
type TickMsg time.Time

// Timer redraws the running duration of a stopwatch once per second.
type Timer struct {
	watch    *stopwatch.Stopwatch
	interval time.Duration
	now      time.Time
	width    int
	stopped  bool
}

// NewTimer wraps a started stopwatch.
func NewTimer(watch *stopwatch.Stopwatch) Timer {
	return Timer{
		watch:    watch,
		interval: time.Second,
		now:      watch.Started(),
	}
}

// Init schedules the first refresh.
func (m Timer) Init() tea.Cmd {
	return m.tick()
}

// Update advances the clock on ticks and stops on Ctrl+C, q, or Esc.
func (m Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.stopped {
			return m, nil
		}
		m.now = time.Time(msg)
		return m, m.tick()
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.stopped = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the current duration padded to the terminal width.
func (m Timer) View() string {
	if m.stopped {
		return ""
	}
	line := "Current duration " + stopwatch.FormatDelta(m.watch.ElapsedAt(m.now))
	return fmt.Sprintf("%-*s", m.width, line)
}

// Stopped reports whether the user ended the timer.
func (m Timer) Stopped() bool {
	return m.stopped
}

func (m Timer) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
