package backend

import "errors"

// ErrEventQueueFull is returned by PostEvent when the event cannot be queued.
var ErrEventQueueFull = errors.New("event queue full")
