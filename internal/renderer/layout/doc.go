// Package layout projects editor state into display rows.
//
// Project turns the document lines, the cursor and the optional visual
// selection into word-wrapped, line-numbered rows ready for a terminal:
// every row is a string that may contain SGR escape sequences, and every
// cell of a row occupies its display width in columns. The row holding the
// cursor is reported so the consumer can scroll it into view.
//
// LayoutHints arranges the usage hints of the current mode into evenly
// spaced columns for the hint panel.
package layout
