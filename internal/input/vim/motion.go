package vim

// Word motions operate on the bytes of one line and return the new column.
// A word boundary is the space character. The motions mirror cursor steps:
// a step right never passes the last byte and a step left never passes
// column 0. On an empty line every motion returns col unchanged.

// NextWordStart returns the column reached by w.
//
// The cursor steps right once, advances while it is not on a space and
// another byte follows, then steps right once more. Runs of several spaces
// therefore leave the cursor on a space.
func NextWordStart(line string, col int) int {
	n := len(line)
	if n == 0 {
		return col
	}
	col = stepRight(n, col)
	for col+1 < n && line[col] != ' ' {
		col++
	}
	return stepRight(n, col)
}

// WordEnd returns the column reached by e.
//
// If the next byte is a space the cursor first steps onto it, then it
// advances until the following byte is a space or the line ends.
func WordEnd(line string, col int) int {
	n := len(line)
	if n == 0 {
		return col
	}
	next := col + 1
	if next < n && line[next] == ' ' {
		col = stepRight(n, col)
		next++
	}
	for next < n && line[next] != ' ' {
		col++
		next++
	}
	return col
}

// PrevWordStart returns the column reached by b.
//
// If the previous byte is a space the cursor first steps onto it, then it
// retreats until the preceding byte is a space or column 0 is reached.
func PrevWordStart(line string, col int) int {
	if len(line) == 0 || col == 0 {
		return col
	}
	prev := col - 1
	if line[prev] == ' ' {
		col--
		prev--
	}
	for col != 0 && line[prev] != ' ' {
		col--
		prev--
	}
	return col
}

func stepRight(n, col int) int {
	if col < n-1 {
		return col + 1
	}
	return col
}
