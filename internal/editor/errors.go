package editor

import "errors"

// ErrNoFileName is returned when saving an editor that has no backing file.
var ErrNoFileName = errors.New("no file name")
