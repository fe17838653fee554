// Package statusline builds the status row shown under the editor window.
//
// The row is produced as text with embedded SGR sequences so it can be
// written into a window like any other styled text.
package statusline

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// StatusLine renders the mode, pending keys, command text and position.
type StatusLine struct {
	// Display state
	mode       string // Current mode name (e.g., "NORMAL", "INSERT")
	filename   string // Current filename (empty for scratch)
	modified   bool   // Buffer has unsaved changes
	line       int    // Current line (0-indexed)
	col        int    // Current column (0-indexed)
	totalLines int    // Total lines in buffer

	// Command line state
	commandActive bool
	commandBuffer string
	pending       string

	// Message display
	message     string
	messageType MessageType

	// Style configuration
	barStyle   string
	modeStyles map[string]string
}

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageError
)

// New creates a new status line. barStyle is the SGR parameter string of
// the whole row.
func New(barStyle string) *StatusLine {
	return &StatusLine{
		mode:       "NORMAL",
		barStyle:   barStyle,
		modeStyles: defaultModeStyles(),
	}
}

// defaultModeStyles returns default SGR styles for each mode.
func defaultModeStyles() map[string]string {
	return map[string]string{
		"NORMAL":    "1;44;37",
		"INSERT":    "1;42;30",
		"VISUAL":    "1;45;37",
		"COMMAND":   "1;43;30",
		"REGISTERS": "1;46;30",
		"ERROR":     "1;41;37",
		"STOPPED":   "1;40;37",
	}
}

// SetBarStyle replaces the row style.
func (s *StatusLine) SetBarStyle(sgr string) {
	s.barStyle = sgr
}

// SetMode updates the displayed mode.
func (s *StatusLine) SetMode(mode string) {
	s.mode = mode
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetModified updates the modified indicator.
func (s *StatusLine) SetModified(modified bool) {
	s.modified = modified
}

// SetPosition updates the cursor position (0-indexed).
func (s *StatusLine) SetPosition(line, col int) {
	s.line = line
	s.col = col
}

// SetTotalLines updates the total line count.
func (s *StatusLine) SetTotalLines(total int) {
	s.totalLines = total
}

// SetPending updates the count and operator typed so far.
func (s *StatusLine) SetPending(keys string) {
	s.pending = keys
}

// SetCommandMode activates command line display.
func (s *StatusLine) SetCommandMode(active bool) {
	s.commandActive = active
	if !active {
		s.commandBuffer = ""
	}
}

// SetCommandBuffer updates the command being typed.
func (s *StatusLine) SetCommandBuffer(buffer string) {
	s.commandBuffer = buffer
}

// SetMessage displays a status message.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Render returns the status row for a screen of the given width.
func (s *StatusLine) Render(width int) string {
	if width <= 0 {
		return ""
	}

	modeText := " " + s.mode + " "
	var middle string
	switch {
	case s.commandActive:
		middle = " :" + s.commandBuffer
	case s.message != "":
		middle = " " + s.message
	default:
		filename := s.filename
		if filename == "" {
			filename = "[No Name]"
		}
		if s.modified {
			filename += " [+]"
		}
		middle = " " + filename
	}
	right := s.formatPosition()
	if s.pending != "" {
		right = s.pending + "  " + right
	}

	used := runewidth.StringWidth(modeText)
	if used > width {
		modeText = runewidth.Truncate(modeText, width, "")
		used = runewidth.StringWidth(modeText)
	}
	room := width - used
	rightWidth := runewidth.StringWidth(right) + 1
	if rightWidth > room {
		right, rightWidth = "", 0
	}
	middle = runewidth.Truncate(middle, room-rightWidth, "")
	pad := room - rightWidth - runewidth.StringWidth(middle)

	var sb strings.Builder
	sb.WriteString(sgr(s.modeStyle()))
	sb.WriteString(modeText)
	sb.WriteString(reset)
	sb.WriteString(sgr(s.middleStyle()))
	sb.WriteString(middle)
	sb.WriteString(reset)
	sb.WriteString(sgr(s.barStyle))
	sb.WriteString(strings.Repeat(" ", pad))
	if right != "" {
		sb.WriteString(right)
		sb.WriteByte(' ')
	}
	sb.WriteString(reset)
	return sb.String()
}

func (s *StatusLine) modeStyle() string {
	if st, ok := s.modeStyles[s.mode]; ok {
		return st
	}
	return "1"
}

func (s *StatusLine) middleStyle() string {
	if s.message != "" && s.messageType == MessageError && !s.commandActive {
		return join(s.barStyle, "1;31")
	}
	return s.barStyle
}

// formatPosition formats the position info for the right side.
func (s *StatusLine) formatPosition() string {
	// Format: "Ln 123, Col 45 | Top"
	result := "Ln " + strconv.Itoa(s.line+1) + ", Col " + strconv.Itoa(s.col+1)
	if s.totalLines > 0 {
		switch {
		case s.line == 0:
			result += " | Top"
		case s.line >= s.totalLines-1:
			result += " | Bot"
		default:
			result += " | " + strconv.Itoa(s.line*100/(s.totalLines-1)) + "%"
		}
	}
	return result
}

const reset = "\x1b[0m"

func sgr(params string) string {
	if params == "" {
		return ""
	}
	return "\x1b[" + params + "m"
}

func join(a, b string) string {
	if a == "" {
		return b
	}
	return a + ";" + b
}
