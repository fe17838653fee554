// Package style converts ANSI SGR escape sequences into tcell styles.
//
// Projected rows carry their styling inline as "ESC [ params m" sequences.
// The compositor walks each cell, folds every sequence it meets into the
// running tcell.Style with Apply, and draws the visible text with the
// result.
package style

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Default is the style of unstyled text.
var Default = tcell.StyleDefault

// FromSGR returns the style described by an SGR parameter string such as
// "38;5;243" or "1;7", applied to the default style.
func FromSGR(params string) tcell.Style {
	return Apply(Default, params)
}

// Apply folds an SGR parameter string into st. An empty string resets, as
// "ESC [ m" does. Unknown parameters are ignored.
func Apply(st tcell.Style, params string) tcell.Style {
	if params == "" {
		return Default
	}
	codes := parseParams(params)
	for i := 0; i < len(codes); i++ {
		switch c := codes[i]; {
		case c == 0:
			st = Default
		case c == 1:
			st = st.Bold(true)
		case c == 2:
			st = st.Dim(true)
		case c == 3:
			st = st.Italic(true)
		case c == 4:
			st = st.Underline(true)
		case c == 5:
			st = st.Blink(true)
		case c == 7:
			st = st.Reverse(true)
		case c == 9:
			st = st.StrikeThrough(true)
		case c == 22:
			st = st.Bold(false).Dim(false)
		case c == 23:
			st = st.Italic(false)
		case c == 24:
			st = st.Underline(false)
		case c == 25:
			st = st.Blink(false)
		case c == 27:
			st = st.Reverse(false)
		case c == 29:
			st = st.StrikeThrough(false)
		case c >= 30 && c <= 37:
			st = st.Foreground(tcell.PaletteColor(c - 30))
		case c == 38:
			color, n := extendedColor(codes[i+1:])
			i += n
			if color != tcell.ColorDefault {
				st = st.Foreground(color)
			}
		case c == 39:
			st = st.Foreground(tcell.ColorDefault)
		case c >= 40 && c <= 47:
			st = st.Background(tcell.PaletteColor(c - 40))
		case c == 48:
			color, n := extendedColor(codes[i+1:])
			i += n
			if color != tcell.ColorDefault {
				st = st.Background(color)
			}
		case c == 49:
			st = st.Background(tcell.ColorDefault)
		case c >= 90 && c <= 97:
			st = st.Foreground(tcell.PaletteColor(c - 90 + 8))
		case c >= 100 && c <= 107:
			st = st.Background(tcell.PaletteColor(c - 100 + 8))
		}
	}
	return st
}

// ApplySequence folds a complete escape sequence ("\x1b[...m") into st.
// Sequences that are not SGR leave st unchanged.
func ApplySequence(st tcell.Style, seq string) tcell.Style {
	if !strings.HasPrefix(seq, "\x1b[") || !strings.HasSuffix(seq, "m") {
		return st
	}
	return Apply(st, seq[2:len(seq)-1])
}

// extendedColor decodes the arguments of a 38/48 parameter: "5;n" for a
// palette index or "2;r;g;b" for true color. Returns the number of
// parameters consumed.
func extendedColor(args []int) (tcell.Color, int) {
	if len(args) == 0 {
		return tcell.ColorDefault, 0
	}
	switch args[0] {
	case 5:
		if len(args) < 2 {
			return tcell.ColorDefault, len(args)
		}
		return tcell.PaletteColor(clampByte(args[1])), 2
	case 2:
		if len(args) < 4 {
			return tcell.ColorDefault, len(args)
		}
		return tcell.NewRGBColor(int32(clampByte(args[1])), int32(clampByte(args[2])), int32(clampByte(args[3]))), 4
	}
	return tcell.ColorDefault, 1
}

func parseParams(params string) []int {
	parts := strings.Split(params, ";")
	codes := make([]int, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			codes = append(codes, 0)
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			n = -1
		}
		codes = append(codes, n)
	}
	return codes
}

func clampByte(n int) int {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}
