package buffer

import "errors"

// Errors returned by document operations.
var (
	// ErrStaleLine indicates a LineRef whose line has been removed.
	ErrStaleLine = errors.New("line has been removed")

	// ErrColumnRemoved indicates a column that does not name a byte of its line.
	ErrColumnRemoved = errors.New("column does not exist")

	// ErrOutOfRange indicates a line index or insertion column outside the document.
	ErrOutOfRange = errors.New("position out of range")

	// ErrLastLine indicates an attempt to remove the only remaining line.
	ErrLastLine = errors.New("cannot remove the last line")
)
