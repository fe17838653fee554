package window

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/danlliu/dvim/internal/renderer/backend"
	"github.com/danlliu/dvim/internal/renderer/segment"
	"github.com/danlliu/dvim/internal/renderer/style"
)

// Window is one named area of the screen.
type Window struct {
	name   string
	rect   Rect
	border Border
	style  tcell.Style
	cells  [][]backend.Cell
	set    [][]bool
}

func newWindow(name string, r Rect, b Border) *Window {
	w := &Window{name: name, rect: r, border: b, style: tcell.StyleDefault}
	w.Clear()
	return w
}

// Name returns the window name.
func (w *Window) Name() string { return w.name }

// Rect returns the window geometry.
func (w *Window) Rect() Rect { return w.rect }

// Clear removes all content.
func (w *Window) Clear() {
	w.cells = make([][]backend.Cell, w.rect.Height)
	w.set = make([][]bool, w.rect.Height)
	for i := range w.cells {
		w.cells[i] = make([]backend.Cell, w.rect.Width)
		w.set[i] = make([]bool, w.rect.Width)
	}
}

// SetText writes styled text starting at the window-relative position.
// Text past the right edge is dropped.
func (w *Window) SetText(row, col int, text string) {
	if row < 0 || row >= w.rect.Height {
		return
	}
	for _, c := range segment.NewSegmenter().Cells(text) {
		if c.Width == 0 {
			continue
		}
		if col+c.Width > w.rect.Width {
			return
		}
		if col >= 0 {
			w.cells[row][col] = render(c)
			w.set[row][col] = true
			for i := 1; i < c.Width; i++ {
				w.cells[row][col+i] = backend.Cell{}
				w.set[row][col+i] = true
			}
		}
		col += c.Width
	}
}

// Text returns the visible text of a content row, blanks included.
func (w *Window) Text(row int) string {
	if row < 0 || row >= w.rect.Height {
		return ""
	}
	var sb strings.Builder
	for col := 0; col < w.rect.Width; col++ {
		if !w.set[row][col] {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteString(w.cells[row][col].Text)
	}
	return sb.String()
}

// CellAt returns the content cell at a window-relative position.
func (w *Window) CellAt(row, col int) (backend.Cell, bool) {
	if !w.rect.Contains(row, col) || !w.set[row][col] {
		return backend.Cell{}, false
	}
	return w.cells[row][col], true
}

func (w *Window) draw(b backend.Backend) {
	r := w.rect
	blank := backend.EmptyCell()
	for row := 0; row < r.Height; row++ {
		for col := 0; col < r.Width; col++ {
			b.SetCell(r.Col+col, r.Row+row, blank)
		}
	}

	if br, ok := w.border.runes(); ok && r.Width >= 2 && r.Height >= 2 {
		edge := func(row, col int, s string) {
			b.SetCell(r.Col+col, r.Row+row, backend.NewCell(s, w.style))
		}
		for col := 1; col < r.Width-1; col++ {
			edge(0, col, br.h)
			edge(r.Height-1, col, br.h)
		}
		for row := 1; row < r.Height-1; row++ {
			edge(row, 0, br.v)
			edge(row, r.Width-1, br.v)
		}
		edge(0, 0, br.tl)
		edge(0, r.Width-1, br.tr)
		edge(r.Height-1, 0, br.bl)
		edge(r.Height-1, r.Width-1, br.br)
	}

	for row := 0; row < r.Height; row++ {
		for col := 0; col < r.Width; col++ {
			if !w.set[row][col] || w.cells[row][col].Text == "" {
				continue
			}
			b.SetCell(r.Col+col, r.Row+row, w.cells[row][col])
		}
	}
}

// render turns a self-contained styled cell into a backend cell.
func render(c segment.Cell) backend.Cell {
	st := style.Default
	var visible strings.Builder
	text := c.Text
	for len(text) > 0 {
		if text[0] == 0x1b {
			end := strings.IndexByte(text, 'm')
			if end < 0 {
				break
			}
			// the trailing reset closes the cell and must not clear its style
			if visible.Len() == 0 {
				st = style.ApplySequence(st, text[:end+1])
			}
			text = text[end+1:]
			continue
		}
		visible.WriteByte(text[0])
		text = text[1:]
	}
	return backend.Cell{Text: printable(visible.String()), Width: c.Width, Style: st}
}

// printable replaces text the terminal cannot draw with a placeholder.
func printable(s string) string {
	if s == "" || !utf8.ValidString(s) {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r < 0x20 || r == 0x7f {
		return "?"
	}
	return s
}
