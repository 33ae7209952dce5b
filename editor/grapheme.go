package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const defaultTabWidth = 4

// cell is one grapheme cluster of a logical line placed on the terminal.
type cell struct {
	Col   int // grapheme column in the line
	Text  string
	Width int // terminal cells; tabs expand to the next tab stop
}

// layoutCells assigns terminal widths to the clusters of one logical line.
func layoutCells(clusters []string, tabWidth int) []cell {
	if len(clusters) == 0 {
		return nil
	}
	out := make([]cell, 0, len(clusters))
	visualCol := 0
	for i, c := range clusters {
		w := max(graphemeCellWidth(c, visualCol, tabWidth), 0)
		out = append(out, cell{Col: i, Text: c, Width: w})
		visualCol += w
	}
	return out
}

func graphemeCellWidth(text string, visualCol, tabWidth int) int {
	if text == "\t" {
		return tabAdvance(visualCol, tabWidth)
	}

	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = defaultTabWidth
	}
	return tabWidth - visualCol%tabWidth
}
