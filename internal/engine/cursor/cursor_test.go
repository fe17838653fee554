package cursor

import (
	"testing"

	"github.com/danlliu/dvim/internal/engine/buffer"
)

func mustValid(t *testing.T, doc *buffer.Document, c Cursor, insert bool) {
	t.Helper()
	if err := c.Valid(doc, insert); err != nil {
		t.Fatal(err)
	}
}

func TestNewCursor(t *testing.T) {
	doc := buffer.NewFromLines("abc")
	c := New(doc)

	if c.Line() != 0 || c.Col() != 0 {
		t.Errorf("New() = %s, want (0:0)", c)
	}
	mustValid(t, doc, c, false)
}

func TestNewCursorEmptyDocument(t *testing.T) {
	doc := buffer.New()
	c := New(doc)

	mustValid(t, doc, c, false)
	if c.Down(doc) || c.Up(doc) || c.Left(doc) || c.Right(doc, false) {
		t.Error("movement on an empty document should be a no-op")
	}
	if c.CurrentLine(doc) != nil {
		t.Error("CurrentLine on empty document should be nil")
	}
}

func TestHorizontalBounds(t *testing.T) {
	doc := buffer.NewFromLines("abc")
	c := New(doc)

	if c.Left(doc) {
		t.Error("Left at column 0 should be a no-op")
	}
	for i := 0; i < 10; i++ {
		c.Right(doc, false)
		mustValid(t, doc, c, false)
	}
	if c.Col() != 2 {
		t.Errorf("normal-mode Right should stop at last column, got %d", c.Col())
	}

	if !c.Right(doc, true) {
		t.Fatal("insert-mode Right should reach the End slot")
	}
	if !c.AtEnd() || c.Col() != 3 {
		t.Errorf("expected End slot at column 3, got %s", c)
	}
	mustValid(t, doc, c, true)
	if c.Right(doc, true) {
		t.Error("insert-mode Right at End should be a no-op")
	}

	c.Left(doc)
	if c.AtEnd() || c.Col() != 2 {
		t.Errorf("Left from End = %s", c)
	}
	mustValid(t, doc, c, false)
}

func TestHorizontalSweepStaysInRange(t *testing.T) {
	doc := buffer.NewFromLines("hello world")
	c := New(doc)
	moves := "llllhhlllllllllllllllhhhhhhhhhhhhhhhhhlll"

	for _, m := range moves {
		if m == 'h' {
			c.Left(doc)
		} else {
			c.Right(doc, false)
		}
		if c.Col() < 0 || c.Col() > doc.Line(0).Len()-1 {
			t.Fatalf("column %d out of range", c.Col())
		}
		mustValid(t, doc, c, false)
	}
}

func TestVerticalClamp(t *testing.T) {
	doc := buffer.NewFromLines("long line", "ab", "", "another")
	c := New(doc)
	c.Place(doc, 0, 7, false)

	c.Down(doc)
	if c.Line() != 1 || c.Col() != 1 {
		t.Errorf("Down onto shorter line = %s, want (1:1)", c)
	}
	mustValid(t, doc, c, false)

	c.Down(doc)
	if c.Line() != 2 || c.Col() != 0 || !c.AtEnd() {
		t.Errorf("Down onto empty line = %s, want End at (2:0)", c)
	}
	mustValid(t, doc, c, false)

	c.Down(doc)
	if c.Col() != 0 {
		t.Errorf("column should stay clamped, got %d", c.Col())
	}
	if c.Down(doc) {
		t.Error("Down on last line should be a no-op")
	}

	for c.Up(doc) {
	}
	if c.Line() != 0 {
		t.Errorf("Up should stop at line 0, got %d", c.Line())
	}
}

func TestLineStartEnd(t *testing.T) {
	doc := buffer.NewFromLines("abcd", "")
	c := New(doc)

	c.LineEnd(doc)
	if c.Col() != 3 {
		t.Errorf("LineEnd = %d, want 3", c.Col())
	}
	c.LineStart(doc)
	if c.Col() != 0 {
		t.Errorf("LineStart = %d, want 0", c.Col())
	}

	c.Down(doc)
	c.LineEnd(doc)
	if c.Col() != 0 || !c.AtEnd() {
		t.Errorf("LineEnd on empty line = %s", c)
	}
	mustValid(t, doc, c, false)
}

func TestPlaceClamps(t *testing.T) {
	doc := buffer.NewFromLines("abc", "de")
	var c Cursor

	c.Place(doc, 9, 9, false)
	if c.Line() != 1 || c.Col() != 1 {
		t.Errorf("Place(9,9) = %s, want (1:1)", c)
	}
	c.Place(doc, 0, 9, true)
	if c.Col() != 3 || !c.AtEnd() {
		t.Errorf("insert Place(0,9) = %s, want End at 3", c)
	}
}

func TestValidDetectsStaleHandle(t *testing.T) {
	doc := buffer.NewFromLines("abc", "def")
	c := New(doc)
	c.Down(doc)

	if _, err := doc.RemoveLine(doc.Ref(1)); err != nil {
		t.Fatal(err)
	}
	if err := c.Valid(doc, false); err == nil {
		t.Error("Valid should report a removed line")
	}

	c.Repair(doc, false)
	mustValid(t, doc, c, false)
	if c.Line() != 0 {
		t.Errorf("Repair should clamp to line 0, got %d", c.Line())
	}
}

func TestByteUnderCursor(t *testing.T) {
	doc := buffer.NewFromLines("xy", "")
	c := New(doc)

	if b, ok := c.Byte(doc); !ok || b != 'x' {
		t.Errorf("Byte() = %q, %v", b, ok)
	}
	c.Down(doc)
	if _, ok := c.Byte(doc); ok {
		t.Error("Byte() on empty line should report false")
	}
}
