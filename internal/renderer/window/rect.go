package window

import "fmt"

// Rect is the screen area of a window. Row and Col are the top-left corner.
type Rect struct {
	Row, Col      int
	Width, Height int
}

// Empty returns true if the rect holds no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the window-relative position lies inside.
func (r Rect) Contains(row, col int) bool {
	return row >= 0 && row < r.Height && col >= 0 && col < r.Width
}

// String returns a human-readable representation of the rect.
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d)", r.Width, r.Height, r.Row, r.Col)
}

// Border selects the frame drawn around a window.
type Border uint8

const (
	BorderNone Border = iota
	BorderSingle
	BorderDouble
)

type borderRunes struct {
	h, v           string
	tl, tr, bl, br string
}

func (b Border) runes() (borderRunes, bool) {
	switch b {
	case BorderSingle:
		return borderRunes{"─", "│", "┌", "┐", "└", "┘"}, true
	case BorderDouble:
		return borderRunes{"═", "║", "╔", "╗", "╚", "╝"}, true
	}
	return borderRunes{}, false
}
