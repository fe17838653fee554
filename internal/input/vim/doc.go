// Package vim provides the vi grammar pieces used by the modal editor.
//
// This package implements:
//   - Registers: ten numbered text slots, one of them active
//   - Pending actions: a repeat count followed by at most one operator
//   - Motions: word motions over a single line, where a word boundary is
//     the space character
//   - Delete spans: the byte range removed by d combined with a motion
//   - Ex commands: tokenizing the text typed after ':'
//
// # Normal Mode Grammar
//
// The reduced grammar accepted in normal mode is:
//
//	[count][motion|edit]
//	[count]d[motion]
//
// Examples:
//   - "3l": count=3, motion=l (move right three times)
//   - "2x": count=2, edit=x (delete two characters)
//   - "3dw": count=3, operator=d, motion=w (delete three words)
//   - "dj": operator=d, motion=j (delete this line and the next)
//
// # Ex Commands
//
//	reg show            list every register
//	reg select <digits> make a register active
//	[wq]+               write and/or quit, left to right
package vim
