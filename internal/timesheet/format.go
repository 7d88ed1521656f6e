package timesheet

import (
	"math"
	"strconv"
	"strings"
)

// DefaultWrapWidth is the column at which long task labels are wrapped.
const DefaultWrapWidth = 80

// Palette decorates the pieces of a rendered week.
type Palette interface {
	Heading(text string) string
	// Row styles a line belonging to the day at index, alternating by parity.
	Row(index int, text string) string
	Total(text string) string
}

// PlainPalette leaves text undecorated.
type PlainPalette struct{}

func (PlainPalette) Heading(text string) string    { return text }
func (PlainPalette) Row(_ int, text string) string { return text }
func (PlainPalette) Total(text string) string      { return text }

const (
	ansiHeader = "\033[93m"
	ansiCyan   = "\033[96m"
	ansiDim    = "\033[2m"
	ansiReset  = "\033[0m"
)

// ANSIPalette emits fixed escape codes regardless of the terminal.
type ANSIPalette struct{}

func (ANSIPalette) Heading(text string) string {
	return ansiHeader + text + ansiReset
}

func (ANSIPalette) Row(index int, text string) string {
	if index%2 == 0 {
		return ansiDim + text + ansiReset
	}
	return text + ansiReset
}

func (ANSIPalette) Total(text string) string {
	return ansiCyan + text + ansiReset
}

// Formatter renders weeks as tab-separated console blocks.
type Formatter struct {
	Palette Palette
	Width   int
}

// NewFormatter returns a formatter using palette and the default wrap width.
func NewFormatter(palette Palette) Formatter {
	if palette == nil {
		palette = PlainPalette{}
	}
	return Formatter{Palette: palette, Width: DefaultWrapWidth}
}

// Format renders the week header, every entry grouped by day, and the week total.
func (f Formatter) Format(week *Week) string {
	palette := f.Palette
	if palette == nil {
		palette = PlainPalette{}
	}
	width := f.Width
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var b strings.Builder
	b.WriteString(palette.Heading(week.Label + ":"))
	b.WriteByte('\n')

	var total float64
	for idx, day := range week.Days {
		// The first entry continues on the date's line.
		b.WriteString(palette.Row(idx, day.Date))
		for _, entry := range day.Entries {
			hours := entry.HoursText()
			lines := WrapLabel(entry.Task.Label(), width)

			b.WriteString(palette.Row(idx, "\t"+entry.Time+"\t"+hours+"\t"+lines[0]))
			b.WriteByte('\n')
			for _, rest := range lines[1:] {
				pad := "\t" + strings.Repeat(" ", len(entry.Time)) + "\t" + strings.Repeat(" ", len(hours)) + "\t"
				b.WriteString(palette.Row(idx, pad+rest))
				b.WriteByte('\n')
			}
			total += entry.Hours
		}
	}

	if total <= 0 {
		b.WriteByte('\n')
	}
	b.WriteString(palette.Total("Total:\t\t" + FormatTotal(total) + "h"))
	b.WriteString("\n\n")
	return b.String()
}

func (w *Week) String() string {
	return NewFormatter(PlainPalette{}).Format(w)
}

// WrapLabel splits text at the last space before width, repeatedly, until
// every piece fits or has no space to break on.
func WrapLabel(text string, width int) []string {
	runes := []rune(text)
	var lines []string
	for len(runes) > width {
		cut := -1
		for i := width - 1; i >= 0; i-- {
			if runes[i] == ' ' {
				cut = i
				break
			}
		}
		if cut == -1 {
			break
		}
		lines = append(lines, string(runes[:cut]))
		runes = runes[cut+1:]
	}
	return append(lines, string(runes))
}

// FormatHours renders an entry duration as a decimal that always keeps a
// fractional part, e.g. "1.5" or "2.0". Values whose decimal exponent is
// below -4 or at least 16 use exponent form instead, e.g. "1e-05".
func FormatHours(hours float64) string {
	if sci, exp, ok := exponentForm(hours); ok && (exp < -4 || exp >= 16) {
		return sci
	}
	s := strconv.FormatFloat(hours, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// exponentForm returns the shortest exponent rendering of v and its decimal
// exponent. Zero and non-finite values report false.
func exponentForm(v float64) (string, int, bool) {
	if v == 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return "", 0, false
	}
	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.LastIndexByte(sci, 'e')+1:])
	if err != nil {
		return "", 0, false
	}
	return sci, exp, true
}

// FormatTotal renders a sum in general format with trailing zeros trimmed.
func FormatTotal(total float64) string {
	return strconv.FormatFloat(total, 'g', 6, 64)
}

// formatSum renders a sum like FormatHours, except that a sum without any
// measured entry is the bare integer "0".
func formatSum(total float64, measured int) string {
	if measured == 0 {
		return "0"
	}
	return FormatHours(total)
}

// FormatCycleTotal renders the combined hours of several weeks.
func FormatCycleTotal(weeks []*Week) string {
	measured := 0
	for _, week := range weeks {
		measured += week.measuredCount()
	}
	return formatSum(Total(weeks), measured)
}
