package mode

var hints = map[Mode][]string{
	Normal: {
		"h - move left",
		"j - move down",
		"k - move up",
		"l - move right",
		"w - beginning of next word",
		"e - end of next word",
		"b - beginning of previous word",
		"^ - go to beginning of line",
		"$ - go to end of line",
		"i - insert character",
		"a - append character",
		"o - add line below",
		"O - add line above",
		": - enter command mode",
		"v - enter visual mode",
		"V - enter line visual mode",
		"x - delete character",
		"p - paste contents of active register",
		"d<motion> - delete by motion",
	},
	Insert: {
		"ESC - exit insert mode",
	},
	Command: {
		"ESC - exit command mode",
		"ENTER - submit command",
		"w - save file",
		"q - quit editor",
		"reg show - show register contents",
		"reg select <x> - select register x",
	},
	Visual: {
		"ESC - exit visual mode",
		"h - move left",
		"j - move down",
		"k - move up",
		"l - move right",
		"y - copy selection to active register",
	},
	RegisterInspector: {
		"ESC - exit register window",
	},
	Error: {
		"any key - exit error mode",
	},
}

// Hints returns the usage hints for m. Stopped and unknown modes have none.
// The returned slice is a copy.
func Hints(m Mode) []string {
	h := hints[m]
	if len(h) == 0 {
		return nil
	}
	out := make([]string, len(h))
	copy(out, h)
	return out
}
