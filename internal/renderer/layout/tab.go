package layout

import "strings"

// TabExpander expands tab cells to the next tab stop.
type TabExpander struct {
	tabWidth int
}

// NewTabExpander creates a tab expander with the given tab width.
// A width below 1 disables expansion: a tab is one blank column.
func NewTabExpander(tabWidth int) *TabExpander {
	if tabWidth < 1 {
		tabWidth = 1
	}
	return &TabExpander{tabWidth: tabWidth}
}

// TabWidth returns the current tab width.
func (t *TabExpander) TabWidth() int {
	return t.tabWidth
}

// TabStopOffset returns how many columns a tab at the given column expands to.
func (t *TabExpander) TabStopOffset(col int) int {
	return t.tabWidth - (col % t.tabWidth)
}

// Expand replaces the tab in a cell's text by the blanks it occupies at col.
// Returns the new text and its width.
func (t *TabExpander) Expand(text string, col int) (string, int) {
	n := t.TabStopOffset(col)
	return strings.Replace(text, "\t", strings.Repeat(" ", n), 1), n
}
