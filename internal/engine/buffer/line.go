package buffer

// Line is a mutable sequence of bytes without its terminating line feed.
type Line struct {
	text []byte
}

// NewLine creates a line holding a copy of s.
func NewLine(s string) *Line {
	return &Line{text: []byte(s)}
}

// Len returns the number of bytes in the line.
func (l *Line) Len() int {
	return len(l.text)
}

// IsEmpty returns true if the line has no bytes.
func (l *Line) IsEmpty() bool {
	return len(l.text) == 0
}

// At returns the byte at col. Returns 0 and false if col is not a byte of the line.
func (l *Line) At(col int) (byte, bool) {
	if col < 0 || col >= len(l.text) {
		return 0, false
	}
	return l.text[col], true
}

// String returns the line content.
func (l *Line) String() string {
	return string(l.text)
}

// Slice returns the bytes in [start, end) as a string.
// The bounds are clamped to the line.
func (l *Line) Slice(start, end int) string {
	start = clamp(start, 0, len(l.text))
	end = clamp(end, start, len(l.text))
	return string(l.text[start:end])
}

// Insert inserts b before col. col == Len() (or End) appends.
func (l *Line) Insert(col int, b byte) error {
	if col == End {
		col = len(l.text)
	}
	if col < 0 || col > len(l.text) {
		return ErrOutOfRange
	}
	l.text = append(l.text, 0)
	copy(l.text[col+1:], l.text[col:])
	l.text[col] = b
	return nil
}

// Remove deletes and returns the byte at col.
func (l *Line) Remove(col int) (byte, error) {
	if col < 0 || col >= len(l.text) {
		return 0, ErrColumnRemoved
	}
	b := l.text[col]
	l.text = append(l.text[:col], l.text[col+1:]...)
	return b, nil
}

// Truncate removes and returns everything from col to the end of the line.
func (l *Line) Truncate(col int) string {
	if col == End {
		return ""
	}
	col = clamp(col, 0, len(l.text))
	tail := string(l.text[col:])
	l.text = l.text[:col]
	return tail
}

// Append adds s to the end of the line.
func (l *Line) Append(s string) {
	l.text = append(l.text, s...)
}

// Prepend adds s to the beginning of the line.
func (l *Line) Prepend(s string) {
	l.text = append([]byte(s), l.text...)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
