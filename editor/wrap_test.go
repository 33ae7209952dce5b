package editor

import (
	"testing"

	"github.com/iw2rmb/sceneedit/internal/grapheme"
)

func wrapped(text string, mode WrapMode, width int) []string {
	cells := layoutCells(grapheme.Split(text), 4)
	var out []string
	for _, seg := range wrapCells(cells, mode, width) {
		s := ""
		for _, c := range cells[seg.start:seg.end] {
			s += c.Text
		}
		out = append(out, s)
	}
	return out
}

func TestWrapCells(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		mode  WrapMode
		width int
		want  []string
	}{
		{name: "fits", text: "one two", mode: WrapWord, width: 10, want: []string{"one two"}},
		{name: "word", text: "one two three", mode: WrapWord, width: 9, want: []string{"one two ", "three"}},
		{name: "exact fit", text: "three four five", mode: WrapWord, width: 10, want: []string{"three four", " five"}},
		{name: "long word", text: "abcdefghij", mode: WrapWord, width: 4, want: []string{"abcd", "efgh", "ij"}},
		{name: "grapheme", text: "one two three", mode: WrapGrapheme, width: 5, want: []string{"one t", "wo th", "ree"}},
		{name: "none", text: "one two three", mode: WrapNone, width: 3, want: []string{"one two three"}},
		{name: "wide", text: "界界界", mode: WrapGrapheme, width: 5, want: []string{"界界", "界"}},
		{name: "empty", text: "", mode: WrapWord, width: 5, want: []string{""}},
		{name: "markup kept whole", text: "[b]bold[/b] plain", mode: WrapWord, width: 12, want: []string{"[b]bold[/b] ", "plain"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := wrapped(tc.text, tc.mode, tc.width)
			if len(got) != len(tc.want) {
				t.Fatalf("rows=%q, want %q", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("rows=%q, want %q", got, tc.want)
				}
			}
		})
	}
}

func TestWrapCells_CountsCells(t *testing.T) {
	cells := layoutCells(grapheme.Split("a\tb"), 4)
	segs := wrapCells(cells, WrapNone, 0)
	if len(segs) != 1 || segs[0].cells != 5 {
		t.Fatalf("segs=%+v, want one segment of 5 cells", segs)
	}
}
