package mode

// Mode is the active member of the editing state machine.
type Mode uint8

const (
	// Normal is the navigation and command mode.
	Normal Mode = iota

	// Insert inserts typed bytes at the cursor.
	Insert

	// Visual extends a selection from an anchor.
	Visual

	// Command accumulates an ex command.
	Command

	// RegisterInspector shows the register popup.
	RegisterInspector

	// Error shows a message until the next key.
	Error

	// Stopped is terminal.
	Stopped
)

// String returns the status-line name of the mode.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "NORMAL"
	case Insert:
		return "INSERT"
	case Visual:
		return "VISUAL"
	case Command:
		return "COMMAND"
	case RegisterInspector:
		return "REGISTERS"
	case Error:
		return "ERROR"
	case Stopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}

// AllowsEnd returns true if the cursor may sit one past the last character
// of a non-empty line in this mode.
func (m Mode) AllowsEnd() bool {
	return m == Insert
}

// Terminal returns true if the mode accepts no further input.
func (m Mode) Terminal() bool {
	return m == Stopped
}
