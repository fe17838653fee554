package vim

import (
	"fmt"
	"strings"
)

// Escape renders s on one line for display: line feeds become `\n`, ESC
// becomes `\33`, and every other byte outside printable ASCII becomes
// `\xNN`.
func Escape(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b == '\n':
			sb.WriteString(`\n`)
		case b == 0x1b:
			sb.WriteString(`\33`)
		case b < 0x20 || b > 0x7e:
			fmt.Fprintf(&sb, `\x%02x`, b)
		default:
			sb.WriteByte(b)
		}
	}
	return sb.String()
}
