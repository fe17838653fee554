package editor

import (
	"github.com/danlliu/dvim/internal/engine/cursor"
	"github.com/danlliu/dvim/internal/input/mode"
	"github.com/danlliu/dvim/internal/input/vim"
)

// isSingleAction returns true for the normal-mode keys a count repeats.
func isSingleAction(b byte) bool {
	switch b {
	case 'h', 'j', 'k', 'l', 'w', 'e', 'b', '^', '$', 'p', 'x':
		return true
	}
	return false
}

func (e *Editor) normalInput(b byte) {
	if e.pending.HasOperator() {
		n := e.pending.Count(e.opts.MaxCount)
		op := e.pending.Operator()
		e.pending.Reset()
		if op == 'd' {
			e.deleteOperator(b, n)
		}
		return
	}

	if e.pending.AddDigit(b) {
		return
	}
	if vim.IsOperator(b) {
		e.pending.SetOperator(b)
		return
	}

	counted := !e.pending.Empty()
	n := e.pending.Count(e.opts.MaxCount)
	e.pending.Reset()

	if isSingleAction(b) {
		for i := 0; i < n; i++ {
			e.singleAction(b)
		}
		return
	}
	if counted {
		return
	}

	switch b {
	case 'i':
		e.setMode(mode.Insert)
	case 'a':
		e.setMode(mode.Insert)
		e.cur.Right(e.doc, true)
	case 'o':
		e.openLine(true)
	case 'O':
		e.openLine(false)
	case 'v':
		e.anchor = cursor.AnchorAt(e.cur)
		e.setMode(mode.Visual)
	case 'V':
		e.anchor = cursor.AnchorAtLineStart(e.doc, e.cur)
		e.cur.LineEnd(e.doc)
		e.setMode(mode.Visual)
	case ':':
		e.command = e.command[:0]
		e.setMode(mode.Command)
	}
}

// singleAction performs one repetition of a countable key.
func (e *Editor) singleAction(b byte) {
	switch b {
	case 'h':
		e.cur.Left(e.doc)
	case 'l':
		e.cur.Right(e.doc, false)
	case 'j':
		e.cur.Down(e.doc)
	case 'k':
		e.cur.Up(e.doc)
	case '^':
		e.cur.LineStart(e.doc)
	case '$':
		e.cur.LineEnd(e.doc)
	case 'w', 'e', 'b':
		e.wordMotion(b)
	case 'x':
		e.deleteChar()
	case 'p':
		e.paste()
	}
}

func (e *Editor) wordMotion(b byte) {
	line := e.cur.CurrentLine(e.doc)
	if line == nil {
		return
	}
	text := line.String()
	col := e.cur.Col()
	switch b {
	case 'w':
		col = vim.NextWordStart(text, col)
	case 'e':
		col = vim.WordEnd(text, col)
	case 'b':
		col = vim.PrevWordStart(text, col)
	}
	e.place(e.cur.Line(), col)
}

// openLine inserts an empty line below or above the cursor and enters
// insert mode on it.
func (e *Editor) openLine(below bool) {
	if e.doc.IsEmpty() {
		e.setMode(mode.Insert)
		e.ensureLine()
		return
	}
	ln := e.cur.Line()
	var err error
	if below {
		_, err = e.doc.InsertLineAfter(e.currentRef())
		ln++
	} else {
		_, err = e.doc.InsertLineBefore(e.currentRef())
	}
	if err != nil {
		return
	}
	e.modified = true
	e.setMode(mode.Insert)
	e.place(ln, 0)
}

// deleteChar removes the byte under the cursor into the active register.
func (e *Editor) deleteChar() {
	if e.cur.AtEnd() {
		return
	}
	c, err := e.doc.RemoveByte(e.cur.Pos())
	if err != nil {
		return
	}
	e.modified = true
	e.regs.WriteActive(string(c))
	e.place(e.cur.Line(), e.cur.Col())
}

// paste inserts the active register after the cursor. Line breaks in the
// text split the line.
func (e *Editor) paste() {
	text := e.regs.ReadActive()
	if text == "" {
		return
	}
	e.ensureLine()
	e.modified = true

	ln := e.cur.Line()
	col := e.cur.Col() + 1
	if n := e.doc.Line(ln).Len(); col > n {
		col = n
	}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			if _, err := e.doc.SplitLine(e.handle(ln, col)); err != nil {
				return
			}
			ln++
			col = 0
			continue
		}
		if err := e.doc.InsertByte(e.handle(ln, col), text[i]); err != nil {
			return
		}
		col++
	}
	if text[len(text)-1] == '\n' {
		e.place(ln, 0)
		return
	}
	e.place(ln, col-1)
}

// deleteOperator resolves d followed by motion, repeated n times.
func (e *Editor) deleteOperator(motion byte, n int) {
	if vim.IsLineMotion(motion) {
		for i := 0; i < n; i++ {
			if !e.deleteLines(motion) {
				return
			}
		}
		return
	}
	for i := 0; i < n; i++ {
		if !e.deleteMotion(motion) {
			return
		}
	}
}

// deleteMotion removes the span of one within-line motion. Returns false
// when the motion was a no-op.
func (e *Editor) deleteMotion(motion byte) bool {
	line := e.cur.CurrentLine(e.doc)
	if line == nil {
		return false
	}
	span, ok := vim.DeleteSpan(motion, line.String(), e.cur.Col())
	if !ok {
		return false
	}
	removed := line.Slice(span.Start, span.End)
	for col := span.End - 1; col >= span.Start; col-- {
		if _, err := line.Remove(col); err != nil {
			return false
		}
	}
	if span.Len() > 0 {
		e.modified = true
	}
	e.regs.WriteActive(removed)

	col := e.cur.Col()
	if motion == 'h' || motion == 'b' {
		col = span.Start
	}
	e.place(e.cur.Line(), col)
	return true
}

// deleteLines removes the cursor line and its neighbour below (j) or above
// (k). Returns false when there is no neighbour.
func (e *Editor) deleteLines(motion byte) bool {
	ln := e.cur.Line()
	first := ln
	if motion == 'j' {
		if ln+1 >= e.doc.LineCount() {
			return false
		}
	} else {
		if ln == 0 || e.doc.IsEmpty() {
			return false
		}
		first = ln - 1
	}

	a, b := e.doc.Ref(first), e.doc.Ref(first+1)
	text := e.doc.Line(first).String() + "\n" + e.doc.Line(first+1).String() + "\n"
	if e.doc.LineCount() == 2 {
		if _, err := e.doc.InsertLineAt(2, ""); err != nil {
			return false
		}
	}
	if _, err := e.doc.RemoveLine(a); err != nil {
		return false
	}
	if _, err := e.doc.RemoveLine(b); err != nil {
		return false
	}
	e.modified = true
	e.regs.WriteActive(text)
	e.place(first, 0)
	return true
}
