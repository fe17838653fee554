package vim

import (
	"strconv"
	"strings"
)

// CommandKind identifies the kind of ex command.
type CommandKind uint8

const (
	// CommandUnknown is any text that matches no command.
	CommandUnknown CommandKind = iota

	// CommandRegShow opens the register inspector ("reg show").
	CommandRegShow

	// CommandRegSelect selects the active register ("reg select <digits>").
	CommandRegSelect

	// CommandWriteQuit is a sequence of w and q letters.
	CommandWriteQuit
)

// String returns a human-readable command kind.
func (k CommandKind) String() string {
	switch k {
	case CommandRegShow:
		return "reg show"
	case CommandRegSelect:
		return "reg select"
	case CommandWriteQuit:
		return "write/quit"
	default:
		return "unknown"
	}
}

const regSelectPrefix = "reg select "

// Command is a tokenized ex command.
type Command struct {
	Kind CommandKind

	// Register is the index named by reg select, or -1 when the digits do
	// not fit in an int.
	Register int

	// Ops holds the w/q letters of a write/quit command in order.
	Ops string

	// Text is the command text as typed.
	Text string
}

// ParseCommand tokenizes the text typed in command mode.
// Alternatives are tried in priority order: reg show, reg select, w/q
// sequence. Anything else is CommandUnknown.
func ParseCommand(text string) Command {
	cmd := Command{Kind: CommandUnknown, Register: -1, Text: text}

	switch {
	case text == "reg show":
		cmd.Kind = CommandRegShow

	case strings.HasPrefix(text, regSelectPrefix) && isDigits(text[len(regSelectPrefix):]):
		cmd.Kind = CommandRegSelect
		if n, err := strconv.Atoi(text[len(regSelectPrefix):]); err == nil {
			cmd.Register = n
		}

	case isWriteQuit(text):
		cmd.Kind = CommandWriteQuit
		cmd.Ops = text
	}
	return cmd
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsCountDigit(s[i]) {
			return false
		}
	}
	return true
}

func isWriteQuit(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != 'w' && s[i] != 'q' {
			return false
		}
	}
	return true
}
