// Package buffer provides the line-structured text document edited by the
// modal engine.
//
// A Document is an ordered sequence of lines. Each line is a mutable byte
// sequence; no encoding validation is performed, so any file content can
// be loaded and written back unchanged.
//
// Position Handles:
//
// Lines live in an arena of slots. A LineRef names a slot together with
// the generation the slot had when the line was created. Removing a line
// bumps the slot generation, so a LineRef held across the removal is
// detected as stale instead of silently aliasing a newer line:
//
//	doc := buffer.NewFromLines("ab", "cd")
//	ref := doc.Ref(1)
//	_, _ = doc.RemoveLine(ref)
//	_, err := doc.Index(ref) // errors.Is(err, buffer.ErrStaleLine)
//
// A Pos pairs a LineRef with a column. The column End denotes the slot
// one past the last byte of the line (the insertion point in insert mode).
//
// The Document performs no cursor bookkeeping. Callers that hold positions
// across a structural edit (line insert/remove/split/merge, byte
// insert/remove) are responsible for repairing them.
//
// Thread Safety:
//
// Document is not safe for concurrent use. The editor owns exactly one
// Document and mutates it from a single goroutine.
package buffer
