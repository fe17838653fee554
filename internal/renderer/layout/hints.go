package layout

import "strings"

// LayoutHints arranges hints into rows of equally wide columns that fill
// width. Every hint is padded to the longest hint; the columns share the
// leftover space evenly.
func LayoutHints(hints []string, width int) []string {
	if len(hints) == 0 {
		return nil
	}

	longest := 0
	for _, h := range hints {
		if len(h) > longest {
			longest = len(h)
		}
	}
	if longest == 0 {
		longest = 1
	}

	columns := width / longest
	if columns < 1 {
		columns = 1
	}
	if columns > len(hints) {
		columns = len(hints)
	}
	spacing := width - columns*longest
	if spacing < 0 {
		spacing = 0
	}

	var rows []string
	for i := 0; i < len(hints); i += columns {
		var sb strings.Builder
		for j := 0; j < columns && i+j < len(hints); j++ {
			h := hints[i+j]
			sb.WriteString(h)
			sb.WriteString(strings.Repeat(" ", longest-len(h)))
			sb.WriteString(strings.Repeat(" ", (spacing+j)/columns))
		}
		rows = append(rows, sb.String())
	}
	return rows
}
