package window

import "errors"

var (
	// ErrInvalidGeometry is returned when a window would have no cells.
	ErrInvalidGeometry = errors.New("invalid window geometry")

	// ErrUnknownWindow is returned for operations on a window that is not open.
	ErrUnknownWindow = errors.New("unknown window")
)
