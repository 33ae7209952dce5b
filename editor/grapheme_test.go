package editor

import (
	"testing"

	"github.com/iw2rmb/sceneedit/internal/grapheme"
)

func TestLayoutCells_TabUsesTabStops(t *testing.T) {
	cells := layoutCells(grapheme.Split("a\tb"), 4)
	if len(cells) != 3 {
		t.Fatalf("cell count: got %d, want %d", len(cells), 3)
	}

	if got, want := cells[0].Width, 1; got != want {
		t.Fatalf("width of 'a': got %d, want %d", got, want)
	}
	if got, want := cells[1].Width, 3; got != want {
		t.Fatalf("width of tab after col 1: got %d, want %d", got, want)
	}
	if got, want := cells[2].Width, 1; got != want {
		t.Fatalf("width of 'b': got %d, want %d", got, want)
	}

	if got, want := graphemeCellWidth("\t", 2, 4), 2; got != want {
		t.Fatalf("width of tab at visual col 2: got %d, want %d", got, want)
	}
	if got, want := graphemeCellWidth("\t", 0, 0), defaultTabWidth; got != want {
		t.Fatalf("width of tab with no tab width: got %d, want %d", got, want)
	}
}

func TestLayoutCells_UnicodeWidths(t *testing.T) {
	cases := []struct {
		name           string
		text           string
		wantFirstWidth int
	}{
		{name: "combining", text: "e\u0301x", wantFirstWidth: 1},
		{name: "emoji", text: "🙂x", wantFirstWidth: 2},
		{name: "cjk", text: "界x", wantFirstWidth: 2},
		{name: "combining-only", text: "\u0301x", wantFirstWidth: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cells := layoutCells(grapheme.Split(tc.text), 4)
			if len(cells) != 2 {
				t.Fatalf("cell count for %q: got %d, want 2", tc.text, len(cells))
			}
			if got := cells[0].Width; got != tc.wantFirstWidth {
				t.Fatalf("first width: got %d, want %d", got, tc.wantFirstWidth)
			}
			for i, c := range cells {
				if c.Col != i {
					t.Fatalf("cell %d col: got %d", i, c.Col)
				}
			}
		})
	}
}

func TestLayoutCells_Empty(t *testing.T) {
	if cells := layoutCells(nil, 4); cells != nil {
		t.Fatalf("cells=%v, want nil", cells)
	}
}
