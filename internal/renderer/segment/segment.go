// Package segment splits styled text into display cells.
//
// A cell is the smallest substring that occupies one terminal position:
// one ASCII byte, one complete UTF-8 sequence, or either of those together
// with the ANSI escape sequences that precede it. Escape sequences
// (ESC ... m) and multi-byte sequences are never split across cells.
package segment

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	esc   = 0x1b
	reset = "\x1b[0m"
)

// Cell is one display cell of a string.
type Cell struct {
	// Text holds the bytes of the cell, including preceding escape sequences.
	Text string

	// Start and End delimit Text within the source string: [Start, End).
	Start, End int

	// Width is the number of terminal columns the cell occupies.
	// Cells made only of escape sequences have width 0.
	Width int
}

// Visible returns the cell text without escape sequences.
func (c Cell) Visible() string {
	return Strip(c.Text)
}

// scanner holds the two pieces of state that suppress cell boundaries.
type scanner struct {
	escaping bool
	pending  int
}

// step feeds one byte and reports whether a cell boundary follows it.
func (s *scanner) step(b byte) bool {
	if b == esc {
		s.escaping = true
	}
	switch {
	case b&0xe0 == 0xc0:
		s.pending = 1
	case b&0xf0 == 0xe0:
		s.pending = 2
	case b&0xf8 == 0xf0:
		s.pending = 3
	case b&0xc0 == 0x80:
		if s.pending > 0 {
			s.pending--
		}
	}
	boundary := !s.escaping && s.pending == 0
	if s.escaping && b == 'm' {
		s.escaping = false
	}
	return boundary
}

// Split divides s into display cells.
// Bytes left over at the end (an unterminated escape or UTF-8 sequence)
// form a final cell so no input is lost.
func Split(s string) []Cell {
	cells := make([]Cell, 0, len(s))
	var sc scanner
	start := 0
	for i := 0; i < len(s); i++ {
		if sc.step(s[i]) {
			cells = append(cells, newCell(s, start, i+1))
			start = i + 1
		}
	}
	if start < len(s) {
		cells = append(cells, newCell(s, start, len(s)))
	}
	return cells
}

func newCell(s string, start, end int) Cell {
	text := s[start:end]
	return Cell{Text: text, Start: start, End: end, Width: cellWidth(text)}
}

// cellWidth returns the display width of a cell. Any visible content
// occupies at least one column, so control bytes still advance layout.
func cellWidth(text string) int {
	visible := Strip(text)
	if visible == "" {
		return 0
	}
	if w := runewidth.StringWidth(visible); w > 0 {
		return w
	}
	return 1
}

// Width returns the total display width of s.
func Width(s string) int {
	w := 0
	for _, c := range Split(s) {
		w += c.Width
	}
	return w
}

// Strip removes ANSI escape sequences from s.
func Strip(s string) string {
	if strings.IndexByte(s, esc) < 0 {
		return s
	}
	var sb strings.Builder
	escaping := false
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == esc {
			escaping = true
			continue
		}
		if escaping {
			if b == 'm' {
				escaping = false
			}
			continue
		}
		sb.WriteByte(b)
	}
	return sb.String()
}
