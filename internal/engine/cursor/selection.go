package cursor

import "github.com/danlliu/dvim/internal/engine/buffer"

// Anchor is the fixed endpoint of a visual selection.
type Anchor struct {
	pt  Point
	pos buffer.Pos
}

// AnchorAt records the cursor's current location as an anchor.
func AnchorAt(c Cursor) Anchor {
	return Anchor{pt: c.Point(), pos: c.Pos()}
}

// AnchorAtLineStart records column 0 of the cursor's line as an anchor.
func AnchorAtLineStart(doc *buffer.Document, c Cursor) Anchor {
	pos, _ := doc.Handle(Point{Line: c.Line(), Col: 0})
	return Anchor{pt: Point{Line: c.Line(), Col: 0}, pos: pos}
}

// Point returns the numeric location of the anchor.
func (a Anchor) Point() Point { return a.pt }

// Pos returns the position handle of the anchor.
func (a Anchor) Pos() buffer.Pos { return a.pos }

// Forward reports whether the head lies after the anchor: on the same
// line when its column is greater, otherwise when its line is greater.
func Forward(anchor, head Point) bool {
	if anchor.Line == head.Line {
		return head.Col > anchor.Col
	}
	return head.Line > anchor.Line
}

// Order returns the selection endpoints in document order.
func Order(anchor, head Point) (lo, hi Point) {
	if Forward(anchor, head) {
		return anchor, head
	}
	return head, anchor
}

// Yank returns the text of the inclusive range between anchor and head.
// Line fragments are joined with "\n". The byte at hi is included when it
// exists; an End endpoint on an empty line contributes nothing.
func Yank(doc *buffer.Document, anchor, head Point) string {
	lo, hi := Order(anchor, head)
	var out []byte
	for ln := lo.Line; ln < hi.Line; ln++ {
		line := doc.Line(ln)
		if line == nil {
			break
		}
		start := 0
		if ln == lo.Line {
			start = lo.Col
		}
		out = append(out, line.Slice(start, line.Len())...)
		out = append(out, '\n')
	}

	line := doc.Line(hi.Line)
	if line == nil {
		return string(out)
	}
	start := 0
	if lo.Line == hi.Line {
		start = lo.Col
	}
	out = append(out, line.Slice(start, hi.Col+1)...)
	return string(out)
}
