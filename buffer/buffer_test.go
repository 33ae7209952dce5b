package buffer

import "testing"

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := New("ab\ncde", Options{})
	v := b.Version()

	b.SetCursor(Pos{Row: 9, GraphemeCol: 9})
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 3}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}

	b.SetCursor(Pos{Row: 1, GraphemeCol: 3})
	if got := b.Version(); got != v+1 {
		t.Fatalf("no-op SetCursor bumped version: %d", got)
	}
}

func TestBuffer_SetSelection_MovesCursorToEnd(t *testing.T) {
	b := New("hello world", Options{})
	b.SetSelection(Range{Start: Pos{Row: 0, GraphemeCol: 6}, End: Pos{Row: 0, GraphemeCol: 11}})

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection")
	}
	if got, want := r, (Range{Start: Pos{Row: 0, GraphemeCol: 6}, End: Pos{Row: 0, GraphemeCol: 11}}); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 11}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_SetSelection_EmptyClears(t *testing.T) {
	b := New("abc", Options{})
	b.SetSelection(Range{Start: Pos{Row: 0, GraphemeCol: 0}, End: Pos{Row: 0, GraphemeCol: 2}})
	b.SetSelection(Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 0, GraphemeCol: 1}})
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected no selection")
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_SelectionRaw_PreservesDirection(t *testing.T) {
	b := New("abcdef", Options{})
	b.SetSelection(Range{Start: Pos{Row: 0, GraphemeCol: 4}, End: Pos{Row: 0, GraphemeCol: 1}})

	raw, ok := b.SelectionRaw()
	if !ok {
		t.Fatalf("expected raw selection")
	}
	if raw.Start.GraphemeCol != 4 || raw.End.GraphemeCol != 1 {
		t.Fatalf("raw selection=%v", raw)
	}
	norm, _ := b.Selection()
	if norm.Start.GraphemeCol != 1 || norm.End.GraphemeCol != 4 {
		t.Fatalf("normalized selection=%v", norm)
	}
}

func TestBuffer_LineAccessors(t *testing.T) {
	b := New("one\n\nthree", Options{})
	if got := b.LineCount(); got != 3 {
		t.Fatalf("LineCount=%d, want 3", got)
	}
	if got := b.LineText(2); got != "three" {
		t.Fatalf("LineText(2)=%q", got)
	}
	if got := b.LineText(5); got != "" {
		t.Fatalf("LineText(5)=%q, want empty", got)
	}
	if got, want := b.End(), (Pos{Row: 2, GraphemeCol: 5}); got != want {
		t.Fatalf("End=%v, want %v", got, want)
	}
}
