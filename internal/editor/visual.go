package editor

import (
	"github.com/danlliu/dvim/internal/engine/cursor"
	"github.com/danlliu/dvim/internal/input/mode"
)

func (e *Editor) visualInput(b byte) {
	switch b {
	case 'h':
		e.cur.Left(e.doc)
	case 'l':
		e.cur.Right(e.doc, false)
	case 'j':
		e.cur.Down(e.doc)
	case 'k':
		e.cur.Up(e.doc)
	case 'y':
		if !e.doc.IsEmpty() {
			e.regs.WriteActive(cursor.Yank(e.doc, e.anchor.Point(), e.cur.Point()))
		}
		e.setMode(mode.Normal)
	case keyEscape:
		e.setMode(mode.Normal)
	}
}

// Selection returns the visual selection endpoints in document order.
// ok is false outside visual mode.
func (e *Editor) Selection() (lo, hi cursor.Point, ok bool) {
	if e.mode != mode.Visual {
		return cursor.Point{}, cursor.Point{}, false
	}
	lo, hi = cursor.Order(e.anchor.Point(), e.cur.Point())
	return lo, hi, true
}
