package buffer

import "fmt"

// End is the column value denoting the slot one past the last byte of a line.
const End = -1

// LineRef is a generation-checked handle to a line.
// The zero LineRef never refers to a live line.
type LineRef struct {
	slot uint32
	gen  uint32
}

// IsZero returns true if the ref was never assigned.
func (r LineRef) IsZero() bool {
	return r.gen == 0
}

// String returns a human-readable representation of the ref.
func (r LineRef) String() string {
	return fmt.Sprintf("line#%d.%d", r.slot, r.gen)
}

// Pos is a position handle: a line plus a column within it.
// Col is a byte index, or End for the one-past-the-end slot.
type Pos struct {
	Line LineRef
	Col  int
}

// AtEnd returns true if the position is the end slot of its line.
func (p Pos) AtEnd() bool {
	return p.Col == End
}

// String returns a human-readable representation of the position.
func (p Pos) String() string {
	if p.AtEnd() {
		return fmt.Sprintf("(%s:end)", p.Line)
	}
	return fmt.Sprintf("(%s:%d)", p.Line, p.Col)
}

// Point is a numeric line/column location.
// Both Line and Col are 0-indexed; Col is a byte index.
type Point struct {
	Line int
	Col  int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Col)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Col < other.Col {
		return -1
	}
	if p.Col > other.Col {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Point) Before(other Point) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Point) After(other Point) bool {
	return p.Compare(other) > 0
}
