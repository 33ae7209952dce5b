package buffer

import "testing"

func TestBuffer_MoveGrapheme_CrossesLines(t *testing.T) {
	b := New("ab\nc", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 2})

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 0}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_Move_ExtendKeepsAnchor(t *testing.T) {
	b := New("abcd", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 1})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection")
	}
	if got, want := r, (Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 0, GraphemeCol: 3}}); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}
}

func TestBuffer_MoveWord(t *testing.T) {
	b := New("one two  three", Options{})
	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got := b.Cursor().GraphemeCol; got != 3 {
		t.Fatalf("col=%d, want 3", got)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got := b.Cursor().GraphemeCol; got != 7 {
		t.Fatalf("col=%d, want 7", got)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirLeft})
	if got := b.Cursor().GraphemeCol; got != 4 {
		t.Fatalf("col=%d, want 4", got)
	}
}

func TestBuffer_MoveDoc_StartEnd(t *testing.T) {
	b := New("a\nbc", Options{})
	b.Move(Move{Unit: MoveDoc, Dir: DirEnd})
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveDoc, Dir: DirHome})
	if got := b.Cursor(); got != (Pos{}) {
		t.Fatalf("cursor=%v, want origin", got)
	}
}
