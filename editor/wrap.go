package editor

import "github.com/iw2rmb/sceneedit/internal/grapheme"

type WrapMode uint8

const (
	// WrapWord breaks after the last whitespace run that fits, falling back
	// to grapheme breaks for words longer than the width.
	WrapWord WrapMode = iota
	WrapGrapheme
	WrapNone
)

// segment is a half-open range of cell indices shown on one screen row.
type segment struct {
	start, end int
	cells      int
}

// wrapCells splits a laid out logical line into screen rows of at most width
// cells. Every line yields at least one segment.
func wrapCells(cells []cell, mode WrapMode, width int) []segment {
	if width <= 0 || mode == WrapNone || len(cells) == 0 {
		return []segment{{start: 0, end: len(cells), cells: cellSum(cells)}}
	}

	segs := make([]segment, 0, 1+cellSum(cells)/width)
	for start := 0; start < len(cells); {
		used := 0
		overflow := start
		for overflow < len(cells) {
			w := cells[overflow].Width
			if used > 0 && used+w > width {
				break
			}
			used += w
			overflow++
		}

		end := overflow
		if mode == WrapWord && overflow < len(cells) {
			if br, ok := findWordWrapBreak(cells, start, overflow); ok {
				end = br
			}
		}
		segs = append(segs, segment{start: start, end: end, cells: cellSum(cells[start:end])})
		start = end
	}
	return segs
}

// findWordWrapBreak returns the index right after the last whitespace run in
// cells[start:overflow] that is followed by a word. A word ending exactly at
// the overflow point breaks there.
func findWordWrapBreak(cells []cell, start, overflow int) (int, bool) {
	if grapheme.IsSpace(cells[overflow].Text) {
		return overflow, true
	}
	for i := overflow; i > start+1; i-- {
		if grapheme.IsSpace(cells[i-1].Text) && !grapheme.IsSpace(cells[i].Text) {
			return i, true
		}
	}
	return 0, false
}

func cellSum(cells []cell) int {
	n := 0
	for _, c := range cells {
		n += c.Width
	}
	return n
}
