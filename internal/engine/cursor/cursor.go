package cursor

import (
	"fmt"

	"github.com/danlliu/dvim/internal/engine/buffer"
)

// Point is an alias for buffer.Point for convenience.
type Point = buffer.Point

// Cursor is a location in a document held both numerically and as a handle.
type Cursor struct {
	line int
	col  int
	pos  buffer.Pos
}

// New returns a cursor at the start of the document.
func New(doc *buffer.Document) Cursor {
	var c Cursor
	c.Place(doc, 0, 0, false)
	return c
}

// Line returns the 0-indexed line number.
func (c Cursor) Line() int { return c.line }

// Col returns the 0-indexed byte column.
func (c Cursor) Col() int { return c.col }

// Point returns the numeric location.
func (c Cursor) Point() Point { return Point{Line: c.line, Col: c.col} }

// Pos returns the position handle.
func (c Cursor) Pos() buffer.Pos { return c.pos }

// AtEnd returns true if the cursor sits on the End slot of its line.
func (c Cursor) AtEnd() bool { return c.pos.AtEnd() }

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d:%d %s)", c.line, c.col, c.pos)
}

// CurrentLine returns the line under the cursor, reached through the handle.
// Returns nil for an empty document.
func (c Cursor) CurrentLine(doc *buffer.Document) *buffer.Line {
	line, err := doc.LineOf(c.pos.Line)
	if err != nil {
		return nil
	}
	return line
}

// Byte returns the byte under the cursor.
func (c Cursor) Byte(doc *buffer.Document) (byte, bool) {
	line := c.CurrentLine(doc)
	if line == nil || c.pos.AtEnd() {
		return 0, false
	}
	return line.At(c.pos.Col)
}

// Place moves the cursor to (line, col) after clamping both to the document
// and recomputes the handle. insert selects the insert-mode column rule.
func (c *Cursor) Place(doc *buffer.Document, line, col int, insert bool) {
	if doc.IsEmpty() {
		*c = Cursor{}
		return
	}
	line = clamp(line, 0, doc.LineCount()-1)
	col = clamp(col, 0, maxCol(doc.Line(line).Len(), insert))
	c.line = line
	c.col = col
	c.pos, _ = doc.Handle(Point{Line: line, Col: col})
}

// Repair re-derives the cursor from the document after an edit, keeping the
// numeric location where possible.
func (c *Cursor) Repair(doc *buffer.Document, insert bool) {
	c.Place(doc, c.line, c.col, insert)
}

// Left moves one column left. Returns false at column 0.
func (c *Cursor) Left(doc *buffer.Document) bool {
	if c.col == 0 || doc.IsEmpty() {
		return false
	}
	c.col--
	c.pos = buffer.Pos{Line: c.pos.Line, Col: c.col}
	return true
}

// Right moves one column right. Returns false on the last column, or on
// the End slot in insert mode.
func (c *Cursor) Right(doc *buffer.Document, insert bool) bool {
	line := c.CurrentLine(doc)
	if line == nil || c.col >= maxCol(line.Len(), insert) {
		return false
	}
	c.col++
	if c.col == line.Len() {
		c.pos = buffer.Pos{Line: c.pos.Line, Col: buffer.End}
	} else {
		c.pos = buffer.Pos{Line: c.pos.Line, Col: c.col}
	}
	return true
}

// Up moves to the previous line, clamping the column. Returns false on the first line.
func (c *Cursor) Up(doc *buffer.Document) bool {
	if c.line == 0 || doc.IsEmpty() {
		return false
	}
	c.Place(doc, c.line-1, c.col, false)
	return true
}

// Down moves to the next line, clamping the column. Returns false on the last line.
func (c *Cursor) Down(doc *buffer.Document) bool {
	if c.line >= doc.LineCount()-1 {
		return false
	}
	c.Place(doc, c.line+1, c.col, false)
	return true
}

// LineStart moves to column 0.
func (c *Cursor) LineStart(doc *buffer.Document) {
	c.Place(doc, c.line, 0, false)
}

// LineEnd moves to the last column of the line, or to End on an empty line.
func (c *Cursor) LineEnd(doc *buffer.Document) {
	line := c.CurrentLine(doc)
	if line == nil {
		return
	}
	c.Place(doc, c.line, line.Len()-1, false)
}

// Valid reports whether the numeric pair and the handle agree and the
// location satisfies the column rule of the mode.
func (c Cursor) Valid(doc *buffer.Document, insert bool) error {
	if doc.IsEmpty() {
		if c.line != 0 || c.col != 0 || !c.pos.Line.IsZero() {
			return fmt.Errorf("cursor %s on empty document", c)
		}
		return nil
	}
	pt, err := doc.Resolve(c.pos)
	if err != nil {
		return fmt.Errorf("cursor %s: %w", c, err)
	}
	if pt != c.Point() {
		return fmt.Errorf("cursor %s: handle resolves to %s", c, pt)
	}
	n := doc.Line(c.line).Len()
	if c.pos.AtEnd() && n > 0 && !insert {
		return fmt.Errorf("cursor %s: End slot on non-empty line outside insert mode", c)
	}
	return nil
}

// maxCol returns the largest column allowed on a line of length n.
func maxCol(n int, insert bool) int {
	if insert || n == 0 {
		return n
	}
	return n - 1
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
