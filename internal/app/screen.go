package app

import (
	"unicode/utf8"

	"github.com/danlliu/dvim/internal/editor"
	"github.com/danlliu/dvim/internal/input/mode"
	"github.com/danlliu/dvim/internal/renderer/backend"
	"github.com/danlliu/dvim/internal/renderer/layout"
	"github.com/danlliu/dvim/internal/renderer/statusline"
	"github.com/danlliu/dvim/internal/renderer/style"
	"github.com/danlliu/dvim/internal/renderer/window"
)

// Window names besides editor.HostWindow.
const (
	StatusWindow = "status"
	HintsWindow  = "hints"
)

// screenLayout splits the terminal into the bordered editor window, a
// status row, and the hint panel at the bottom.
type screenLayout struct {
	width, height int
	hintRows      int

	editor window.Rect
	status window.Rect
	hints  window.Rect
}

// minEditorHeight fits one content row inside the border.
const minEditorHeight = 3

func computeLayout(width, height, hintRows int) (screenLayout, error) {
	if hintRows < 0 {
		hintRows = 0
	}
	if height-hintRows-1 < minEditorHeight {
		hintRows = 0
	}
	edHeight := height - hintRows - 1
	if width < 3 || edHeight < minEditorHeight {
		return screenLayout{}, ErrScreenTooSmall
	}
	return screenLayout{
		width:    width,
		height:   height,
		hintRows: hintRows,
		editor:   window.Rect{Row: 0, Col: 0, Width: width, Height: edHeight},
		status:   window.Rect{Row: edHeight, Col: 0, Width: width, Height: 1},
		hints:    window.Rect{Row: edHeight + 1, Col: 0, Width: width, Height: hintRows},
	}, nil
}

// contentHeight is the number of editor rows inside the border.
func (s screenLayout) contentHeight() int { return s.editor.Height - 2 }

// contentWidth is the number of editor columns inside the border.
func (s screenLayout) contentWidth() int { return s.editor.Width - 2 }

func (a *App) relayout(width, height int) {
	s, err := computeLayout(width, height, a.cfg.Layout.HintRows)
	if err != nil {
		a.screenOK = false
		a.log.Warn("layout %dx%d: %v", width, height, err)
		return
	}
	a.screen = s
	a.screenOK = true

	a.place(editor.HostWindow, s.editor, window.BorderDouble)
	a.place(StatusWindow, s.status, window.BorderNone)
	if s.hintRows > 0 {
		a.place(HintsWindow, s.hints, window.BorderNone)
	} else {
		a.windows.CloseWindow(HintsWindow)
	}
	a.view.Resize(s.contentHeight())
	a.editor.RefreshInspector()
}

// place moves an open window or opens it.
func (a *App) place(name string, r window.Rect, b window.Border) {
	if _, ok := a.windows.Geometry(name); ok {
		if err := a.windows.Resize(name, r); err != nil {
			a.log.Warn("resize %s: %v", name, err)
		}
		return
	}
	if err := a.windows.Open(name, r, b); err != nil {
		a.log.Warn("open %s: %v", name, err)
	}
}

func (a *App) applyTheme() {
	a.status.SetBarStyle(a.cfg.Theme.StatusLine)
	a.windows.SetBorderStyle(editor.HostWindow, style.FromSGR(a.cfg.Theme.Border))
}

// draw renders every window and flushes the backend.
func (a *App) draw() {
	if !a.screenOK {
		a.backend.Clear()
		a.backend.Show()
		return
	}
	s := a.screen

	frame := a.editor.ProjectLines(s.contentWidth())
	rows, _ := a.view.Visible(frame, a.editor.CursorScroll())
	a.windows.ClearWindow(editor.HostWindow)
	for i, row := range rows {
		a.windows.SetCellText(editor.HostWindow, i+1, 1, row)
	}

	a.updateStatus()
	a.windows.ClearWindow(StatusWindow)
	a.windows.SetCellText(StatusWindow, 0, 0, a.status.Render(s.width))

	if s.hintRows > 0 {
		a.windows.ClearWindow(HintsWindow)
		hints := layout.LayoutHints(a.editor.UsageHints(), s.width)
		for i := 0; i < len(hints) && i < s.hintRows; i++ {
			a.windows.SetCellText(HintsWindow, i, 0, paint(a.cfg.Theme.Hints, hints[i]))
		}
	}

	a.windows.Draw(a.backend)
	a.backend.Show()
}

func (a *App) updateStatus() {
	ed := a.editor
	st := a.status
	st.SetMode(ed.ModeName())
	st.SetFilename(ed.Path())
	st.SetModified(ed.Modified())
	st.SetPosition(ed.CursorLine(), ed.CursorColumn())
	st.SetTotalLines(ed.Document().LineCount())
	st.SetPending(ed.PendingActionText())
	st.SetCommandMode(ed.Mode() == mode.Command)
	st.SetCommandBuffer(ed.PendingCommandText())
	switch {
	case ed.ErrorMessage() != "":
		st.SetMessage(ed.ErrorMessage(), statusline.MessageError)
	case a.notice != "":
		st.SetMessage(a.notice, statusline.MessageInfo)
	default:
		st.ClearMessage()
	}
}

func paint(sgr, text string) string {
	if sgr == "" {
		return text
	}
	return "\x1b[" + sgr + "m" + text + "\x1b[0m"
}

// keyBytes translates a key event into the bytes the editor reads.
// Keys without a byte form produce nothing.
func keyBytes(ev backend.Event) []byte {
	switch ev.Key {
	case backend.KeyRune:
		if ev.Rune < 0 || !utf8.ValidRune(ev.Rune) {
			return nil
		}
		return utf8.AppendRune(nil, ev.Rune)
	case backend.KeyEnter:
		return []byte{'\r'}
	case backend.KeyEscape:
		return []byte{0x1b}
	case backend.KeyBackspace:
		return []byte{0x7f}
	case backend.KeyTab:
		return []byte{'\t'}
	}
	return nil
}
