package segment

import "strings"

// Segmenter splits styled text into self-contained cells.
//
// It remembers the style escape sequences that are still open, so every
// emitted cell is prefixed with the open style and suffixed with a reset.
// A styled run cut by a wrap boundary therefore renders the same on each
// side of the cut. The open style carries over between calls to Split
// until a reset is seen or Reset is called.
type Segmenter struct {
	style string
}

// NewSegmenter creates a segmenter with no open style.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Style returns the escape sequences currently open.
func (s *Segmenter) Style() string {
	return s.style
}

// Reset forgets the open style.
func (s *Segmenter) Reset() {
	s.style = ""
}

// Split divides str into cells, each independently styled.
func (s *Segmenter) Split(str string) []string {
	cells := s.Cells(str)
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.Text
	}
	return out
}

// Cells divides str into cells like Split, keeping the source range and
// display width of each cell. Cell.Text is the self-contained styled text.
// Trailing escape sequences that only change the open style produce no cell.
func (s *Segmenter) Cells(str string) []Cell {
	var (
		out      []Cell
		sc       scanner
		fragment strings.Builder
		seq      strings.Builder
	)
	start := 0
	fragment.WriteString(s.style)

	emit := func(end int) {
		text := fragment.String()
		if s.style != "" {
			text += reset
		}
		out = append(out, Cell{Text: text, Start: start, End: end, Width: cellWidth(str[start:end])})
		start = end
	}

	for i := 0; i < len(str); i++ {
		b := str[i]
		wasEscaping := sc.escaping || b == esc
		boundary := sc.step(b)
		fragment.WriteByte(b)
		if wasEscaping {
			seq.WriteByte(b)
		}

		if boundary {
			emit(i + 1)
			fragment.Reset()
			fragment.WriteString(s.style)
			continue
		}

		if wasEscaping && !sc.escaping {
			// an escape sequence just ended
			if isReset(seq.String()) {
				s.style = ""
				fragment.Reset()
			} else {
				s.style += seq.String()
			}
			seq.Reset()
		}
	}

	if start < len(str) && fragment.String() != s.style {
		emit(len(str))
	}
	return out
}

func isReset(seq string) bool {
	return seq == reset || seq == "\x1b[m"
}
