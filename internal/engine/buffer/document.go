package buffer

import "strings"

// slot is one arena entry. A slot is reused after its line is removed,
// with gen incremented so older refs no longer match.
type slot struct {
	gen   uint32
	live  bool
	index int
	line  *Line
}

// Document is an ordered sequence of lines.
type Document struct {
	slots []slot
	free  []uint32
	order []LineRef
}

// New creates a document with no lines.
func New() *Document {
	return &Document{}
}

// NewFromLines creates a document with one line per argument.
func NewFromLines(lines ...string) *Document {
	d := New()
	for _, s := range lines {
		d.AppendLine(s)
	}
	return d
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.order)
}

// IsEmpty returns true if the document has no lines.
func (d *Document) IsEmpty() bool {
	return len(d.order) == 0
}

// Ref returns the handle of line i, or the zero ref if i is out of range.
func (d *Document) Ref(i int) LineRef {
	if i < 0 || i >= len(d.order) {
		return LineRef{}
	}
	return d.order[i]
}

// Line returns line i, or nil if i is out of range.
func (d *Document) Line(i int) *Line {
	if i < 0 || i >= len(d.order) {
		return nil
	}
	return d.slots[d.order[i].slot].line
}

// LineOf returns the line referenced by ref.
func (d *Document) LineOf(ref LineRef) (*Line, error) {
	s, err := d.lookup(ref)
	if err != nil {
		return nil, err
	}
	return s.line, nil
}

// Index returns the line number of ref.
func (d *Document) Index(ref LineRef) (int, error) {
	s, err := d.lookup(ref)
	if err != nil {
		return 0, err
	}
	return s.index, nil
}

// Valid returns true if ref names a live line.
func (d *Document) Valid(ref LineRef) bool {
	_, err := d.lookup(ref)
	return err == nil
}

func (d *Document) lookup(ref LineRef) (*slot, error) {
	if ref.IsZero() || int(ref.slot) >= len(d.slots) {
		return nil, ErrStaleLine
	}
	s := &d.slots[ref.slot]
	if !s.live || s.gen != ref.gen {
		return nil, ErrStaleLine
	}
	return s, nil
}

// Structural line operations

// AppendLine adds a line holding text after the last line.
func (d *Document) AppendLine(text string) LineRef {
	ref, _ := d.InsertLineAt(len(d.order), text)
	return ref
}

// InsertLineAt inserts a line holding text so that it becomes line i.
func (d *Document) InsertLineAt(i int, text string) (LineRef, error) {
	if i < 0 || i > len(d.order) {
		return LineRef{}, ErrOutOfRange
	}
	ref := d.alloc(NewLine(text))
	d.order = append(d.order, LineRef{})
	copy(d.order[i+1:], d.order[i:])
	d.order[i] = ref
	d.renumber(i)
	return ref, nil
}

// InsertLineAfter inserts an empty line immediately after ref.
func (d *Document) InsertLineAfter(ref LineRef) (LineRef, error) {
	i, err := d.Index(ref)
	if err != nil {
		return LineRef{}, err
	}
	return d.InsertLineAt(i+1, "")
}

// InsertLineBefore inserts an empty line immediately before ref.
func (d *Document) InsertLineBefore(ref LineRef) (LineRef, error) {
	i, err := d.Index(ref)
	if err != nil {
		return LineRef{}, err
	}
	return d.InsertLineAt(i, "")
}

// RemoveLine removes the line referenced by ref and returns its content.
// The only remaining line cannot be removed; insert its replacement first.
func (d *Document) RemoveLine(ref LineRef) (string, error) {
	s, err := d.lookup(ref)
	if err != nil {
		return "", err
	}
	if len(d.order) == 1 {
		return "", ErrLastLine
	}
	i := s.index
	text := s.line.String()
	d.order = append(d.order[:i], d.order[i+1:]...)
	s.live = false
	s.line = nil
	d.free = append(d.free, ref.slot)
	d.renumber(i)
	return text, nil
}

// SplitLine moves everything from p.Col to the end of the line into a new
// line placed immediately after it. Returns the new line.
func (d *Document) SplitLine(p Pos) (LineRef, error) {
	line, err := d.LineOf(p.Line)
	if err != nil {
		return LineRef{}, err
	}
	if p.Col != End && (p.Col < 0 || p.Col > line.Len()) {
		return LineRef{}, ErrOutOfRange
	}
	i, _ := d.Index(p.Line)
	tail := line.Truncate(p.Col)
	return d.InsertLineAt(i+1, tail)
}

// MergeWithNext appends the next line's content onto ref and removes the next line.
func (d *Document) MergeWithNext(ref LineRef) error {
	i, err := d.Index(ref)
	if err != nil {
		return err
	}
	if i+1 >= len(d.order) {
		return ErrOutOfRange
	}
	next := d.Ref(i + 1)
	text, err := d.RemoveLine(next)
	if err != nil {
		return err
	}
	d.Line(i).Append(text)
	return nil
}

// Byte operations

// InsertByte inserts b before the position. Inserting at End appends.
func (d *Document) InsertByte(p Pos, b byte) error {
	line, err := d.LineOf(p.Line)
	if err != nil {
		return err
	}
	return line.Insert(p.Col, b)
}

// RemoveByte removes and returns the byte at the position.
func (d *Document) RemoveByte(p Pos) (byte, error) {
	line, err := d.LineOf(p.Line)
	if err != nil {
		return 0, err
	}
	return line.Remove(p.Col)
}

// Handle conversion

// Handle returns the position handle for a numeric point.
// A column equal to the line length yields the End slot.
func (d *Document) Handle(pt Point) (Pos, error) {
	line := d.Line(pt.Line)
	if line == nil {
		return Pos{}, ErrOutOfRange
	}
	if pt.Col < 0 || pt.Col > line.Len() {
		return Pos{}, ErrOutOfRange
	}
	if pt.Col == line.Len() {
		return Pos{Line: d.Ref(pt.Line), Col: End}, nil
	}
	return Pos{Line: d.Ref(pt.Line), Col: pt.Col}, nil
}

// Resolve returns the numeric point a position handle denotes.
func (d *Document) Resolve(p Pos) (Point, error) {
	s, err := d.lookup(p.Line)
	if err != nil {
		return Point{}, err
	}
	if p.Col == End {
		return Point{Line: s.index, Col: s.line.Len()}, nil
	}
	if p.Col < 0 || p.Col >= s.line.Len() {
		return Point{}, ErrColumnRemoved
	}
	return Point{Line: s.index, Col: p.Col}, nil
}

// Content access

// Lines returns a copy of every line's content.
func (d *Document) Lines() []string {
	out := make([]string, len(d.order))
	for i := range d.order {
		out[i] = d.Line(i).String()
	}
	return out
}

// Text returns the document as it would be saved: each line followed by "\n".
func (d *Document) Text() string {
	var sb strings.Builder
	for i := range d.order {
		sb.WriteString(d.Line(i).String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (d *Document) alloc(line *Line) LineRef {
	if n := len(d.free); n > 0 {
		idx := d.free[n-1]
		d.free = d.free[:n-1]
		s := &d.slots[idx]
		s.gen++
		s.live = true
		s.line = line
		return LineRef{slot: idx, gen: s.gen}
	}
	d.slots = append(d.slots, slot{gen: 1, live: true, line: line})
	return LineRef{slot: uint32(len(d.slots) - 1), gen: 1}
}

// renumber refreshes the cached line numbers from line i onwards.
func (d *Document) renumber(from int) {
	for i := from; i < len(d.order); i++ {
		d.slots[d.order[i].slot].index = i
	}
}
