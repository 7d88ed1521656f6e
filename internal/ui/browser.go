package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/jam/internal/timesheet"
)

// chromeHeight is the number of lines View draws around the viewport.
const chromeHeight = 5

// Browser is the Bubble Tea model for paging through parsed weeks.
type Browser struct {
	ctx       context.Context
	reader    *timesheet.Reader
	formatter timesheet.Formatter

	weeks    []*timesheet.Week
	current  int
	viewport viewport.Model
	spinner  spinner.Model

	loading    bool
	statusLine string
	errorLine  string
}

type logLoadedMsg struct {
	log *timesheet.Log
	err error
}

// NewBrowser seeds a browser that renders weeks with formatter.
func NewBrowser(ctx context.Context, reader *timesheet.Reader, formatter timesheet.Formatter) Browser {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Browser{
		ctx:        ctx,
		reader:     reader,
		formatter:  formatter,
		viewport:   viewport.New(80, 20),
		spinner:    sp,
		loading:    true,
		statusLine: "Loading timesheet...",
	}
}

// Init loads the log and starts the spinner.
func (m Browser) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// Update wires navigation keys, window resizes, and load results.
func (m Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.refresh()
		return m, nil
	case logLoadedMsg:
		return m.handleLoaded(msg)
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Browser) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "left", "h", "p":
		return m.show(m.current - 1), nil
	case "right", "l", "n":
		return m.show(m.current + 1), nil
	case "home", "g":
		return m.show(0), nil
	case "end", "G":
		return m.show(len(m.weeks) - 1), nil
	case "r":
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.statusLine = "Reloading..."
		m.errorLine = ""
		return m, tea.Batch(m.loadCmd(), m.spinner.Tick)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Browser) handleLoaded(msg logLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.errorLine = msg.err.Error()
		m.statusLine = ""
		return m, nil
	}

	m.weeks = msg.log.Weeks
	m.errorLine = ""
	if len(m.weeks) == 0 {
		m.statusLine = "No weeks in the log."
		m.viewport.SetContent("")
		return m, nil
	}
	m.statusLine = fmt.Sprintf("Loaded %d week%s", len(m.weeks), plural(len(m.weeks)))
	return m.show(len(m.weeks) - 1), nil
}

func (m Browser) show(index int) Browser {
	if len(m.weeks) == 0 {
		return m
	}
	index = min(max(index, 0), len(m.weeks)-1)
	m.current = index
	m.refresh()
	m.viewport.GotoTop()
	return m
}

func (m *Browser) refresh() {
	if len(m.weeks) == 0 {
		return
	}
	m.viewport.SetContent(m.formatter.Format(m.weeks[m.current]))
}

func (m Browser) loadCmd() tea.Cmd {
	reader := m.reader
	ctx := m.ctx
	return func() tea.Msg {
		log, err := reader.Load(ctx)
		return logLoadedMsg{log: log, err: err}
	}
}

// Current returns the week on screen, or nil before anything is loaded.
func (m Browser) Current() *timesheet.Week {
	if len(m.weeks) == 0 {
		return nil
	}
	return m.weeks[m.current]
}

// View renders the frame.
func (m Browser) View() string {
	var b strings.Builder

	header := "jam"
	if len(m.weeks) > 0 {
		header = fmt.Sprintf("jam  week %d of %d", m.current+1, len(m.weeks))
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	} else {
		b.WriteString(m.viewport.View())
		b.WriteByte('\n')
	}

	if m.errorLine != "" {
		b.WriteString(RenderError("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString(m.statusLine)
		b.WriteByte('\n')
	}

	b.WriteString(helpStyle.Render("<-/h/p prev  ->/l/n next  g first  G latest  j/k scroll  r reload  q quit"))
	b.WriteByte('\n')
	return b.String()
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
