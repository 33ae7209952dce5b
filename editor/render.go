package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/sceneedit/buffer"
	"github.com/iw2rmb/sceneedit/internal/grapheme"
	"github.com/iw2rmb/sceneedit/markup"
)

// class is how a rune of the stored markup is drawn.
type class uint8

const (
	classText class = iota
	classDelimiter
	classStrong
	classEmphasis
	classComment
)

// classify returns the class of every rune of raw. Comments win over tags;
// delimiters that do not pair up stay plain text.
func classify(d markup.Dialect, raw string) []class {
	out := make([]class, utf8.RuneCountInString(raw))
	for _, l := range markup.DecodeIndexed(d, raw) {
		var c class
		switch l.Tag {
		case markup.Strong:
			c = classStrong
		case markup.Emphasis:
			c = classEmphasis
		default:
			continue
		}
		fill(out[l.OuterStart:l.Start], classDelimiter)
		fill(out[l.Start:l.End], c)
		fill(out[l.End:l.OuterEnd], classDelimiter)
	}
	markComments(d, raw, out)
	return out
}

func markComments(d markup.Dialect, raw string, out []class) {
	for from := 0; from < len(raw); {
		i, end, ok := d.NextComment(raw, from)
		if !ok {
			return
		}
		start := utf8.RuneCountInString(raw[:i])
		fill(out[start:start+utf8.RuneCountInString(raw[i:end])], classComment)
		from = end
	}
}

func fill(cs []class, c class) {
	for i := range cs {
		cs[i] = c
	}
}

type runKey struct {
	class    class
	selected bool
	cursor   bool
}

type run struct {
	key  runKey
	text strings.Builder
}

func (st Style) forKey(k runKey) lipgloss.Style {
	var s lipgloss.Style
	switch k.class {
	case classDelimiter:
		s = st.Delimiter
	case classStrong:
		s = st.Strong
	case classEmphasis:
		s = st.Emphasis
	case classComment:
		s = st.Comment
	default:
		s = st.Text
	}
	if k.selected {
		s = st.Selection.Inherit(s)
	}
	if k.cursor {
		s = st.Cursor.Inherit(s)
	}
	return s
}

// renderContent draws the buffer as screen rows and reports the row holding
// the cursor.
func (m *Model) renderContent() (string, int) {
	st := m.style()
	buf := m.sess.Buffer()
	classes := classify(m.sess.Dialect(), buf.Text())
	sel, hasSel := buf.Selection()
	cur := buf.Cursor()
	width := m.viewport.Width

	var rows []string
	cursorRow := 0
	off := 0
	for row := 0; row < buf.LineCount(); row++ {
		cells := layoutCells(grapheme.Split(buf.LineText(row)), m.cfg.tabWidth())
		offs := make([]int, len(cells))
		for i, c := range cells {
			offs[i] = off
			off += utf8.RuneCountInString(c.Text)
		}
		off++

		segs := wrapCells(cells, m.cfg.WrapMode, width)
		for si, seg := range segs {
			last := si == len(segs)-1
			hasCursor := cur.Row == row &&
				(cur.GraphemeCol >= seg.start && cur.GraphemeCol < seg.end || last && cur.GraphemeCol >= seg.end)
			if hasCursor {
				cursorRow = len(rows)
			}

			var runs []*run
			add := func(k runKey, text string) {
				if n := len(runs); n > 0 && runs[n-1].key == k {
					runs[n-1].text.WriteString(text)
					return
				}
				r := &run{key: k}
				r.text.WriteString(text)
				runs = append(runs, r)
			}

			used := seg.cells
			for i := seg.start; i < seg.end; i++ {
				c := cells[i]
				pos := buffer.Pos{Row: row, GraphemeCol: i}
				k := runKey{
					selected: hasSel && buffer.ComparePos(pos, sel.Start) >= 0 && buffer.ComparePos(pos, sel.End) < 0,
					cursor:   m.focused && pos == cur,
				}
				if o := offs[i]; o < len(classes) {
					k.class = classes[o]
				}
				text := c.Text
				if text == "\t" {
					text = strings.Repeat(" ", c.Width)
				}
				add(k, text)
			}
			if m.focused && hasCursor && cur.GraphemeCol >= seg.end {
				add(runKey{cursor: true}, " ")
				used++
			}
			if width > 0 && used < width {
				add(runKey{}, strings.Repeat(" ", width-used))
			}

			var sb strings.Builder
			for _, r := range runs {
				sb.WriteString(st.forKey(r.key).Render(r.text.String()))
			}
			rows = append(rows, sb.String())
		}
	}
	return strings.Join(rows, "\n"), cursorRow
}

// renderBar draws a one-row header or status bar padded to the width.
func renderBar(s lipgloss.Style, text string, width int) string {
	text = strings.ReplaceAll(text, "\n", " ")
	if width <= 0 {
		return s.Render(text)
	}
	text = runewidth.Truncate(text, width, "…")
	return s.Render(runewidth.FillRight(text, width))
}
