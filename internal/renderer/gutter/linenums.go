package gutter

import (
	"fmt"
	"strconv"
	"strings"
)

// LineNumberMode selects what number each gutter row shows.
type LineNumberMode uint8

const (
	// LineNumberAbsolute numbers lines from 1.
	LineNumberAbsolute LineNumberMode = iota
	// LineNumberRelative shows the distance from the cursor line.
	LineNumberRelative
	// LineNumberHybrid is relative except on the cursor line, which keeps
	// its absolute number.
	LineNumberHybrid
)

var modeNames = map[string]LineNumberMode{
	"absolute": LineNumberAbsolute,
	"relative": LineNumberRelative,
	"hybrid":   LineNumberHybrid,
}

func (m LineNumberMode) String() string {
	for name, mode := range modeNames {
		if mode == m {
			return name
		}
	}
	return "absolute"
}

// ParseLineNumberMode parses a configuration name. The empty string is absolute.
func ParseLineNumberMode(s string) (LineNumberMode, error) {
	if s == "" {
		return LineNumberAbsolute, nil
	}
	if m, ok := modeNames[s]; ok {
		return m, nil
	}
	return LineNumberAbsolute, fmt.Errorf("unknown line number mode %q", s)
}

// LineNumberFormatter turns 0-indexed line numbers into fixed-width labels.
type LineNumberFormatter struct {
	mode    LineNumberMode
	width   int
	current int
}

// NewLineNumberFormatter creates a formatter padding labels to width.
func NewLineNumberFormatter(mode LineNumberMode, width int) *LineNumberFormatter {
	return &LineNumberFormatter{mode: mode, width: width}
}

// SetCurrentLine sets the cursor line relative numbers are counted from.
func (f *LineNumberFormatter) SetCurrentLine(line int) {
	f.current = line
}

// Format returns the right-aligned label of line.
func (f *LineNumberFormatter) Format(line int) string {
	n := line + 1
	if f.mode == LineNumberRelative || (f.mode == LineNumberHybrid && line != f.current) {
		n = line - f.current
		if n < 0 {
			n = -n
		}
	}
	return PadLeft(strconv.Itoa(n), f.width)
}

// PadLeft right-aligns s in width columns. Longer strings are kept whole.
func PadLeft(s string, width int) string {
	if pad := width - len(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}
