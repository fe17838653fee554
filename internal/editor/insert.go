package editor

import (
	"github.com/danlliu/dvim/internal/input/mode"
)

const (
	keyEscape    = 0x1b
	keyEnter     = '\r'
	keyBackspace = 0x7f
	keyTab       = '\t'
)

// insertable returns true for the bytes insert mode writes into the line.
func insertable(b byte) bool {
	return b == keyTab || (b >= 0x20 && b < keyBackspace) || b >= 0x80
}

func (e *Editor) insertInput(b byte) {
	switch {
	case b == keyEscape:
		col := e.cur.Col()
		if e.cur.AtEnd() && col > 0 {
			col--
		}
		e.setMode(mode.Normal)
		e.place(e.cur.Line(), col)

	case b == keyEnter:
		e.ensureLine()
		if _, err := e.doc.SplitLine(e.cur.Pos()); err != nil {
			return
		}
		e.modified = true
		e.place(e.cur.Line()+1, 0)

	case b == keyBackspace:
		e.backspace()

	case insertable(b):
		e.ensureLine()
		if err := e.doc.InsertByte(e.cur.Pos(), b); err != nil {
			return
		}
		e.modified = true
		e.place(e.cur.Line(), e.cur.Col()+1)
	}
}

// backspace deletes the byte before the cursor. At column 0 the cursor
// line is joined onto the previous one.
func (e *Editor) backspace() {
	if e.doc.IsEmpty() {
		return
	}
	ln, col := e.cur.Line(), e.cur.Col()
	if col > 0 {
		if _, err := e.doc.RemoveByte(e.handle(ln, col-1)); err != nil {
			return
		}
		e.modified = true
		e.place(ln, col-1)
		return
	}
	if ln == 0 {
		return
	}

	prev := e.doc.Ref(ln - 1)
	boundary := e.doc.Line(ln - 1).Len()
	if boundary == 0 {
		if _, err := e.doc.RemoveLine(prev); err != nil {
			return
		}
	} else if err := e.doc.MergeWithNext(prev); err != nil {
		return
	}
	e.modified = true
	e.place(ln-1, boundary)
}
