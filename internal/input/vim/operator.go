package vim

// Span is a byte range [Start, End) of a line removed by a delete operator.
type Span struct {
	Start, End int
}

// Len returns the number of bytes in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// DeleteSpan returns the bytes of line removed by d followed by one of the
// within-line motions h, l, w, e or b, with the cursor at col.
//
// ok is false when the command is a no-op that must leave the registers
// untouched: dh or db at column 0, or a motion that is not a within-line
// motion. dl, dw and de report ok even when they remove nothing.
func DeleteSpan(motion byte, line string, col int) (span Span, ok bool) {
	n := len(line)
	if col > n {
		col = n
	}
	switch motion {
	case 'h':
		if col == 0 {
			return Span{}, false
		}
		return Span{Start: col - 1, End: col}, true

	case 'l':
		if col >= n {
			return Span{Start: col, End: col}, true
		}
		return Span{Start: col, End: col + 1}, true

	case 'w':
		// up to and including the first space
		end := col
		for end < n {
			end++
			if line[end-1] == ' ' {
				break
			}
		}
		return Span{Start: col, End: end}, true

	case 'e':
		// leading spaces, then the word up to the next space
		end := col
		nonSpace := false
		for end < n && !(nonSpace && line[end] == ' ') {
			nonSpace = line[end] != ' '
			end++
		}
		return Span{Start: col, End: end}, true

	case 'b':
		if col == 0 {
			return Span{}, false
		}
		start := col - 1
		nonSpace := false
		for start >= 0 && !(nonSpace && line[start] == ' ') {
			nonSpace = line[start] != ' '
			start--
		}
		return Span{Start: start + 1, End: col}, true
	}
	return Span{}, false
}

// IsLineMotion returns true for the motions that make d operate on whole lines.
func IsLineMotion(motion byte) bool {
	return motion == 'j' || motion == 'k'
}
