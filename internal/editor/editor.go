package editor

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/danlliu/dvim/internal/engine/buffer"
	"github.com/danlliu/dvim/internal/engine/cursor"
	"github.com/danlliu/dvim/internal/input/mode"
	"github.com/danlliu/dvim/internal/input/vim"
	"github.com/danlliu/dvim/internal/renderer/gutter"
	"github.com/danlliu/dvim/internal/renderer/layout"
	"github.com/danlliu/dvim/internal/renderer/window"
)

// WindowHost is the window manager the editor draws its popups through.
type WindowHost interface {
	// Geometry returns the rect of an open window.
	Geometry(name string) (window.Rect, bool)

	// OpenAuxiliaryWindow opens a popup window.
	OpenAuxiliaryWindow(name string, r window.Rect) error

	// CloseWindow removes a window.
	CloseWindow(name string)

	// SetCellText writes text at a window-relative position.
	SetCellText(window string, row, col int, text string)
}

// Editor is the modal editing engine for one file.
type Editor struct {
	path string
	doc  *buffer.Document
	host WindowHost
	opts Options

	mode    mode.Mode
	cur     cursor.Cursor
	anchor  cursor.Anchor
	regs    *vim.RegisterStore
	pending vim.Pending
	command []byte

	errMsg    string
	lastErr   error
	modified  bool
	cursorRow int
	cache     *layout.LineCache
}

// New creates an editor for doc, saved to path. host may be nil, in which
// case the register inspector is not drawn.
func New(path string, doc *buffer.Document, host WindowHost, opts Options) *Editor {
	if doc == nil {
		doc = buffer.New()
	}
	if opts.MaxCount <= 0 {
		opts.MaxCount = vim.DefaultMaxCount
	}
	return &Editor{
		path:  path,
		doc:   doc,
		host:  host,
		opts:  opts,
		mode:  mode.Normal,
		cur:   cursor.New(doc),
		regs:  vim.NewRegisterStore(),
		cache: layout.NewLineCache(0),
	}
}

// Open loads path into a new editor. A missing file opens an empty document
// that is created on the first write.
func Open(path string, host WindowHost, opts Options) (*Editor, error) {
	doc, err := buffer.Load(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open editor: %w", err)
		}
		doc = buffer.New()
	}
	return New(path, doc, host, opts), nil
}

// HandleInput feeds one input byte to the state machine.
func (e *Editor) HandleInput(b byte) {
	switch e.mode {
	case mode.Stopped:
		return
	case mode.Error:
		e.errMsg = ""
		e.setMode(mode.Normal)
	case mode.Normal:
		e.normalInput(b)
	case mode.Insert:
		e.insertInput(b)
	case mode.Visual:
		e.visualInput(b)
	case mode.Command:
		e.commandInput(b)
	case mode.RegisterInspector:
		e.registerInput(b)
	}
}

// HandleString feeds every byte of s in order.
func (e *Editor) HandleString(s string) {
	for i := 0; i < len(s); i++ {
		e.HandleInput(s[i])
	}
}

// ProjectLines returns the display rows for a viewport of the given width
// and records the row holding the cursor.
func (e *Editor) ProjectLines(width int) []string {
	frame := layout.Project(layout.State{
		Lines:  e.doc.Lines(),
		Cursor: e.cur.Point(),
		Visual: e.mode == mode.Visual,
		Anchor: e.anchor.Point(),
	}, layout.Options{
		Width:    width,
		Theme:    e.opts.Theme,
		Numbers:  e.opts.Numbers,
		TabWidth: e.opts.TabWidth,
		Cache:    e.cache,
	})
	e.cursorRow = frame.CursorRow
	return frame.Rows
}

// CursorScroll returns the row index of the cursor in the last projection.
func (e *Editor) CursorScroll() int {
	return e.cursorRow
}

// UsageHints returns the help text of the current mode.
func (e *Editor) UsageHints() []string {
	return mode.Hints(e.mode)
}

// Mode returns the current mode.
func (e *Editor) Mode() mode.Mode {
	return e.mode
}

// ModeName returns the status-line name of the current mode.
func (e *Editor) ModeName() string {
	return e.mode.String()
}

// CursorLine returns the 0-indexed cursor line.
func (e *Editor) CursorLine() int {
	return e.cur.Line()
}

// CursorColumn returns the 0-indexed cursor column.
func (e *Editor) CursorColumn() int {
	return e.cur.Col()
}

// Cursor returns the cursor.
func (e *Editor) Cursor() cursor.Cursor {
	return e.cur
}

// PendingActionText returns the count and operator typed so far.
func (e *Editor) PendingActionText() string {
	return e.pending.String()
}

// PendingCommandText returns the command line typed so far.
func (e *Editor) PendingCommandText() string {
	return string(e.command)
}

// ErrorMessage returns the message shown in error mode.
func (e *Editor) ErrorMessage() string {
	return e.errMsg
}

// LastError returns the error of the most recent failed write, or nil.
func (e *Editor) LastError() error {
	return e.lastErr
}

// Registers returns the register store.
func (e *Editor) Registers() *vim.RegisterStore {
	return e.regs
}

// Document returns the document being edited.
func (e *Editor) Document() *buffer.Document {
	return e.doc
}

// Path returns the backing file path.
func (e *Editor) Path() string {
	return e.path
}

// Modified returns true if the document changed since it was loaded or
// last written.
func (e *Editor) Modified() bool {
	return e.modified
}

// SetTheme replaces the projection theme.
func (e *Editor) SetTheme(t layout.Theme) {
	e.opts.Theme = t
}

// SetDisplay replaces the line number mode and tab width.
func (e *Editor) SetDisplay(numbers gutter.LineNumberMode, tabWidth int) {
	if tabWidth != e.opts.TabWidth {
		e.cache.InvalidateAll()
	}
	e.opts.Numbers = numbers
	e.opts.TabWidth = tabWidth
}

// RefreshInspector redraws the register window after the host window moved.
func (e *Editor) RefreshInspector() {
	if e.mode == mode.RegisterInspector {
		e.showRegisters()
	}
}

// Stopped returns true once the editor has quit.
func (e *Editor) Stopped() bool {
	return e.mode == mode.Stopped
}

func (e *Editor) setMode(m mode.Mode) {
	from := e.mode
	e.mode = m
	e.pending.Reset()
	if from != m && e.opts.OnModeChange != nil {
		e.opts.OnModeChange(from, m)
	}
}

func (e *Editor) fail(msg string) {
	e.errMsg = msg
	e.setMode(mode.Error)
}

// place moves the cursor with the column rule of the current mode.
func (e *Editor) place(line, col int) {
	e.cur.Place(e.doc, line, col, e.mode.AllowsEnd())
}

// ensureLine gives an empty document its first line before an edit.
func (e *Editor) ensureLine() {
	if e.doc.IsEmpty() {
		e.doc.AppendLine("")
		e.place(0, 0)
	}
}

// currentRef returns the handle of the cursor line.
func (e *Editor) currentRef() buffer.LineRef {
	return e.cur.Pos().Line
}

func (e *Editor) handle(line, col int) buffer.Pos {
	pos, _ := e.doc.Handle(buffer.Point{Line: line, Col: col})
	return pos
}
