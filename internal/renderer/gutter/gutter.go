// Package gutter renders the line-number column to the left of the text.
//
// The gutter is as wide as the digit count of the document's line count
// plus one separator space. Numbers are right-aligned and wrapped in the
// gutter style; continuation rows of a wrapped line get a blank gutter.
package gutter

import (
	"strconv"
	"strings"
)

// DefaultStyle is the SGR parameter string used for line numbers.
const DefaultStyle = "38;5;243"

// Gutter renders line numbers for one frame.
type Gutter struct {
	digits    int
	style     string
	formatter *LineNumberFormatter
}

// New creates a gutter for a document of lineCount lines.
// style is an SGR parameter string such as "38;5;243"; empty disables styling.
func New(lineCount int, style string, mode LineNumberMode) *Gutter {
	digits := CountDigits(lineCount)
	return &Gutter{
		digits:    digits,
		style:     style,
		formatter: NewLineNumberFormatter(mode, digits),
	}
}

// SetCurrentLine sets the cursor line used by relative numbering.
func (g *Gutter) SetCurrentLine(line int) {
	g.formatter.SetCurrentLine(line)
}

// Width returns the number of columns the gutter occupies.
func (g *Gutter) Width() int {
	return g.digits + 1
}

// Render returns the styled gutter for the 0-indexed line.
func (g *Gutter) Render(line int) string {
	num := g.formatter.Format(line)
	pad := len(num) - len(strings.TrimLeft(num, " "))

	var sb strings.Builder
	sb.WriteString(num[:pad])
	if g.style != "" {
		sb.WriteString("\x1b[")
		sb.WriteString(g.style)
		sb.WriteString("m")
		sb.WriteString(num[pad:])
		sb.WriteString("\x1b[0m")
	} else {
		sb.WriteString(num[pad:])
	}
	sb.WriteByte(' ')
	return sb.String()
}

// Blank returns the gutter for a continuation row.
func (g *Gutter) Blank() string {
	return strings.Repeat(" ", g.Width())
}

// CountDigits returns the number of decimal digits in n. Zero has one digit.
func CountDigits(n int) int {
	if n <= 0 {
		return 1
	}
	return len(strconv.Itoa(n))
}
