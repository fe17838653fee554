package layout

import (
	"strings"

	"github.com/danlliu/dvim/internal/engine/buffer"
	"github.com/danlliu/dvim/internal/engine/cursor"
	"github.com/danlliu/dvim/internal/renderer/gutter"
	"github.com/danlliu/dvim/internal/renderer/segment"
)

// DefaultHighlight is the SGR parameter string of the cursor and selection.
const DefaultHighlight = "7"

// Theme holds the SGR parameter strings used in projected rows.
type Theme struct {
	// Gutter styles line numbers.
	Gutter string

	// Highlight styles the cursor cell and selected cells.
	Highlight string
}

// DefaultTheme returns dim line numbers and an inverse highlight.
func DefaultTheme() Theme {
	return Theme{
		Gutter:    gutter.DefaultStyle,
		Highlight: DefaultHighlight,
	}
}

// State is the editor state a frame is projected from.
type State struct {
	// Lines holds the document content, one entry per line.
	Lines []string

	// Cursor is the live cursor. A column equal to the line length is the
	// end slot and is drawn as a highlighted blank.
	Cursor buffer.Point

	// Visual enables the selection between Anchor and Cursor.
	Visual bool

	// Anchor is the fixed end of the visual selection.
	Anchor buffer.Point
}

// Options controls the shape of the frame.
type Options struct {
	// Width is the viewport width in columns, gutter included.
	Width int

	Theme   Theme
	Numbers gutter.LineNumberMode

	// TabWidth expands tab cells to tab stops. 0 draws a tab as one column.
	TabWidth int

	// Cache, when set, reuses line segmentation between frames.
	Cache *LineCache
}

// Frame is one projected screen of rows.
type Frame struct {
	Rows []string

	// CursorRow is the index in Rows of the row holding the cursor.
	CursorRow int
}

// Project lays the state out into display rows.
func Project(st State, opts Options) Frame {
	hl := highlighter(opts.Theme.Highlight)

	if len(st.Lines) == 0 {
		return Frame{Rows: []string{hl(" ")}}
	}

	g := gutter.New(len(st.Lines), opts.Theme.Gutter, opts.Numbers)
	g.SetCurrentLine(st.Cursor.Line)
	contentWidth := opts.Width - g.Width()
	if contentWidth < 1 {
		contentWidth = 1
	}

	var tabs *TabExpander
	if opts.TabWidth > 0 {
		tabs = NewTabExpander(opts.TabWidth)
	}

	var lo, hi buffer.Point
	if st.Visual {
		lo, hi = cursor.Order(st.Anchor, st.Cursor)
	}

	var f Frame
	for i, text := range st.Lines {
		var cells []segment.Cell
		if opts.Cache != nil {
			cells = opts.Cache.Get(i, text)
		} else {
			cells = segment.NewSegmenter().Cells(text)
		}

		selStart, selEnd := -1, -1
		if st.Visual && i >= lo.Line && i <= hi.Line {
			selStart, selEnd = 0, len(text)
			if i == lo.Line {
				selStart = lo.Col
			}
			if i == hi.Line {
				selEnd = hi.Col + 1
			}
		}

		onCursorLine := i == st.Cursor.Line
		cursorDrawn := false

		var row strings.Builder
		row.WriteString(g.Render(i))
		used := 0
		wrap := func() {
			f.Rows = append(f.Rows, row.String())
			row.Reset()
			row.WriteString(g.Blank())
			used = 0
		}

		for _, c := range cells {
			cellText, w := c.Text, c.Width
			isTab := tabs != nil && c.Visible() == "\t"
			if isTab {
				cellText, w = tabs.Expand(c.Text, used)
			}
			if used > 0 && used+w > contentWidth {
				wrap()
				if isTab {
					cellText, w = tabs.Expand(c.Text, used)
				}
			}

			isCursor := onCursorLine && st.Cursor.Col >= c.Start && st.Cursor.Col < c.End
			selected := c.Start < selEnd && c.End > selStart
			if isCursor || selected {
				cellText = hl(cellText)
			}
			if isCursor && w > 0 {
				cursorDrawn = true
				f.CursorRow = len(f.Rows)
			}
			row.WriteString(cellText)
			used += w
		}

		if onCursorLine && !cursorDrawn {
			if used > 0 && used+1 > contentWidth {
				wrap()
			}
			row.WriteString(hl(" "))
			f.CursorRow = len(f.Rows)
		}
		f.Rows = append(f.Rows, row.String())
	}
	return f
}

func highlighter(sgr string) func(string) string {
	if sgr == "" {
		sgr = DefaultHighlight
	}
	open := "\x1b[" + sgr + "m"
	return func(s string) string {
		return open + s + "\x1b[0m"
	}
}
