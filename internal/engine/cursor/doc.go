// Package cursor provides the cursor and visual-selection model of the
// modal editor.
//
// A Cursor keeps two descriptions of the same location: a numeric
// (line, column) pair and a buffer.Pos handle. Every movement updates both.
// After a structural edit the editor calls Place, which clamps the numeric
// pair to the rules of the current mode and recomputes the handle from the
// document.
//
// Validity Rules:
//
//   - Outside insert mode the column handle is End only when the line is
//     empty; otherwise it names an existing byte.
//   - In insert mode the column handle may also be End on a non-empty line
//     (the cursor sits one past the last byte).
//
// Selection Model:
//
// An Anchor records where visual mode was entered. Paired with the live
// cursor it defines an inclusive range. The direction is not stored; Order
// derives it by comparing anchor and cursor.
package cursor
