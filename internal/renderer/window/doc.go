// Package window composes named, rectangular windows onto a backend.
//
// Windows are stacked in the order they were opened; later windows are
// drawn on top. Each window keeps a grid of cells written with SetCellText,
// where the text may carry SGR escape sequences. Manager satisfies the
// window host the editor uses for its register inspector.
package window
