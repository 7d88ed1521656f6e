package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/jam/internal/timesheet"
)

var (
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			TabWidth(lipgloss.NoTabConversion)

	dimStyle = lipgloss.NewStyle().
			Faint(true).
			TabWidth(lipgloss.NoTabConversion)

	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			TabWidth(lipgloss.NoTabConversion)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))
)

// Palette styles rendered weeks with lipgloss, degrading to plain text when
// the output does not support color.
type Palette struct{}

var _ timesheet.Palette = Palette{}

func (Palette) Heading(text string) string {
	return headingStyle.Render(text)
}

func (Palette) Row(index int, text string) string {
	if index%2 == 0 {
		return dimStyle.Render(text)
	}
	return text
}

func (Palette) Total(text string) string {
	return totalStyle.Render(text)
}

// RenderError styles an error message for the terminal.
func RenderError(text string) string {
	return errorStyle.Render(text)
}
