package buffer

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewDocumentIsEmpty(t *testing.T) {
	d := New()

	if !d.IsEmpty() {
		t.Error("new document should be empty")
	}
	if d.LineCount() != 0 {
		t.Errorf("expected 0 lines, got %d", d.LineCount())
	}
	if d.Line(0) != nil {
		t.Error("Line(0) on empty document should be nil")
	}
	if !d.Ref(0).IsZero() {
		t.Error("Ref(0) on empty document should be zero")
	}
}

func TestNewFromLines(t *testing.T) {
	d := NewFromLines("line1", "line2", "line3")

	if d.LineCount() != 3 {
		t.Fatalf("expected 3 lines, got %d", d.LineCount())
	}
	want := []string{"line1", "line2", "line3"}
	if got := d.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %q, want %q", got, want)
	}
	if d.Text() != "line1\nline2\nline3\n" {
		t.Errorf("Text() = %q", d.Text())
	}
}

func TestInsertLineAfterAndBefore(t *testing.T) {
	d := NewFromLines("a", "c")

	ref, err := d.InsertLineAfter(d.Ref(0))
	if err != nil {
		t.Fatalf("InsertLineAfter failed: %v", err)
	}
	d.Line(1).Append("b")

	if i, _ := d.Index(ref); i != 1 {
		t.Errorf("new line index = %d, want 1", i)
	}

	top, err := d.InsertLineBefore(d.Ref(0))
	if err != nil {
		t.Fatalf("InsertLineBefore failed: %v", err)
	}
	if i, _ := d.Index(top); i != 0 {
		t.Errorf("new top line index = %d, want 0", i)
	}

	want := []string{"", "a", "b", "c"}
	if got := d.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %q, want %q", got, want)
	}
	if i, _ := d.Index(ref); i != 2 {
		t.Errorf("refs should follow their line: index = %d, want 2", i)
	}
}

func TestRemoveLine(t *testing.T) {
	d := NewFromLines("a", "b", "c")
	ref := d.Ref(1)

	text, err := d.RemoveLine(ref)
	if err != nil {
		t.Fatalf("RemoveLine failed: %v", err)
	}
	if text != "b" {
		t.Errorf("removed %q, want %q", text, "b")
	}
	if got := d.Lines(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("Lines() = %q", got)
	}

	if _, err := d.Index(ref); !errors.Is(err, ErrStaleLine) {
		t.Errorf("expected ErrStaleLine, got %v", err)
	}
	if i, _ := d.Index(d.Ref(1)); i != 1 {
		t.Errorf("line after removal should be renumbered, got %d", i)
	}
}

func TestRemoveLineLast(t *testing.T) {
	d := NewFromLines("only")

	_, err := d.RemoveLine(d.Ref(0))
	if !errors.Is(err, ErrLastLine) {
		t.Errorf("expected ErrLastLine, got %v", err)
	}
	if d.LineCount() != 1 {
		t.Errorf("document should be unchanged, got %d lines", d.LineCount())
	}
}

func TestSlotReuseDetectsStaleRefs(t *testing.T) {
	d := NewFromLines("a", "b")
	old := d.Ref(1)
	if _, err := d.RemoveLine(old); err != nil {
		t.Fatal(err)
	}

	fresh := d.AppendLine("z")
	if fresh == old {
		t.Fatal("reused slot must carry a new generation")
	}
	if d.Valid(old) {
		t.Error("old ref should be invalid after its slot was reused")
	}
	if !d.Valid(fresh) {
		t.Error("fresh ref should be valid")
	}
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name string
		col  int
		want []string
	}{
		{"middle", 2, []string{"he", "llo", "x"}},
		{"start", 0, []string{"", "hello", "x"}},
		{"end column", 5, []string{"hello", "", "x"}},
		{"end slot", End, []string{"hello", "", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewFromLines("hello", "x")
			ref, err := d.SplitLine(Pos{Line: d.Ref(0), Col: tt.col})
			if err != nil {
				t.Fatalf("SplitLine failed: %v", err)
			}
			if got := d.Lines(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lines() = %q, want %q", got, tt.want)
			}
			if i, _ := d.Index(ref); i != 1 {
				t.Errorf("new line index = %d, want 1", i)
			}
		})
	}
}

func TestMergeWithNext(t *testing.T) {
	d := NewFromLines("ab", "cd", "ef")

	if err := d.MergeWithNext(d.Ref(0)); err != nil {
		t.Fatalf("MergeWithNext failed: %v", err)
	}
	if got := d.Lines(); !reflect.DeepEqual(got, []string{"abcd", "ef"}) {
		t.Errorf("Lines() = %q", got)
	}

	if err := d.MergeWithNext(d.Ref(1)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("merging the last line: expected ErrOutOfRange, got %v", err)
	}
}

func TestInsertAndRemoveByte(t *testing.T) {
	d := NewFromLines("ac")
	ref := d.Ref(0)

	if err := d.InsertByte(Pos{Line: ref, Col: 1}, 'b'); err != nil {
		t.Fatalf("InsertByte failed: %v", err)
	}
	if err := d.InsertByte(Pos{Line: ref, Col: End}, 'd'); err != nil {
		t.Fatalf("InsertByte at End failed: %v", err)
	}
	if d.Line(0).String() != "abcd" {
		t.Errorf("line = %q, want abcd", d.Line(0).String())
	}

	b, err := d.RemoveByte(Pos{Line: ref, Col: 0})
	if err != nil || b != 'a' {
		t.Errorf("RemoveByte = %q, %v", b, err)
	}
	if _, err := d.RemoveByte(Pos{Line: ref, Col: End}); !errors.Is(err, ErrColumnRemoved) {
		t.Errorf("removing End: expected ErrColumnRemoved, got %v", err)
	}
}

func TestHandleResolveRoundTrip(t *testing.T) {
	d := NewFromLines("abc", "")

	for _, pt := range []Point{{0, 0}, {0, 2}, {0, 3}, {1, 0}} {
		h, err := d.Handle(pt)
		if err != nil {
			t.Fatalf("Handle(%v) failed: %v", pt, err)
		}
		got, err := d.Resolve(h)
		if err != nil {
			t.Fatalf("Resolve(%v) failed: %v", h, err)
		}
		if got != pt {
			t.Errorf("Resolve(Handle(%v)) = %v", pt, got)
		}
	}

	h, _ := d.Handle(Point{Line: 0, Col: 3})
	if !h.AtEnd() {
		t.Error("column equal to length should map to the End slot")
	}
	if _, err := d.Handle(Point{Line: 0, Col: 4}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestResolveRemovedColumn(t *testing.T) {
	d := NewFromLines("ab")
	h, _ := d.Handle(Point{Line: 0, Col: 1})

	if _, err := d.RemoveByte(h); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Resolve(h); !errors.Is(err, ErrColumnRemoved) {
		t.Errorf("expected ErrColumnRemoved, got %v", err)
	}
}

func TestPointCompare(t *testing.T) {
	tests := []struct {
		a, b Point
		want int
	}{
		{Point{0, 0}, Point{0, 0}, 0},
		{Point{0, 1}, Point{0, 2}, -1},
		{Point{1, 0}, Point{0, 9}, 1},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
	if !(Point{0, 1}).Before(Point{1, 0}) {
		t.Error("Before should compare lines first")
	}
}
