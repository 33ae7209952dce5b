package editor

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/sceneedit/buffer"
	"github.com/iw2rmb/sceneedit/markup"
)

// classString spells classes with one letter per rune: t text, d delimiter,
// s strong, e emphasis, c comment.
func classString(cs []class) string {
	const letters = "tdsec"
	var sb strings.Builder
	for _, c := range cs {
		sb.WriteByte(letters[c])
	}
	return sb.String()
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		dialect markup.Dialect
		raw     string
		want    string
	}{
		{name: "plain", dialect: markup.Bracket, raw: "ab", want: "tt"},
		{name: "strong", dialect: markup.Bracket, raw: "a[b]xy[/b]", want: "tdddssdddd"},
		{name: "emphasis", dialect: markup.Bracket, raw: "[i]x[/i]", want: "dddedddd"},
		{name: "unclosed is text", dialect: markup.Bracket, raw: "[b]x", want: "tttt"},
		{name: "comment", dialect: markup.Bracket, raw: "a/*b*/", want: "tccccc"},
		{name: "comment wins over tag", dialect: markup.Bracket, raw: "[b]/*x*/[/b]", want: "dddcccccdddd"},
		{name: "unclosed comment", dialect: markup.Bracket, raw: "/*x", want: "ttt"},
		{name: "angle", dialect: markup.Angle, raw: "<em>x</em>", want: "ddddeddddd"},
		{name: "angle note", dialect: markup.Angle, raw: "<note>x</note>y", want: "cccccccccccccct"},
		{name: "angle comment", dialect: markup.Angle, raw: "a<comment></comment>", want: "tccccccccccccccccccc"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classString(classify(tc.dialect, tc.raw)); got != tc.want {
				t.Fatalf("classify(%q)=%s, want %s", tc.raw, got, tc.want)
			}
		})
	}
}

func TestRenderBar(t *testing.T) {
	st := DefaultTheme().For(0)
	got := stripANSI(renderBar(st.Status, "one\ntwo three", 8))
	if got != "one two…" {
		t.Fatalf("bar=%q, want %q", got, "one two…")
	}

	got = stripANSI(renderBar(st.Status, "ab", 4))
	if got != "ab  " {
		t.Fatalf("bar=%q, want %q", got, "ab  ")
	}
}

func TestRenderContent_WrapsAndMarksCursorRow(t *testing.T) {
	f := newFixture(t, "one two three four five six", false)
	f.m = f.m.SetSize(10, 8)
	f.m.Session().Buffer().SetCursor(f.m.Session().Buffer().End())

	content, row := f.m.renderContent()
	rows := strings.Split(stripANSI(content), "\n")
	want := []string{"one two   ", "three four", " five six "}
	if len(rows) != len(want) {
		t.Fatalf("rows=%q, want %q", rows, want)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("rows=%q, want %q", rows, want)
		}
	}
	if row != 2 {
		t.Fatalf("cursor row=%d, want 2", row)
	}
}

func TestTheme_UnknownModeFallsBack(t *testing.T) {
	th := DefaultTheme()
	if got, want := th.For(7).Text.GetBackground(), th[0].Text.GetBackground(); got != want {
		t.Fatalf("background=%v, want %v", got, want)
	}
}

func trueColorStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	return Style{
		Text:      r.NewStyle(),
		Delimiter: r.NewStyle().Faint(true),
		Strong:    r.NewStyle().Bold(true),
		Emphasis:  r.NewStyle().Italic(true),
		Comment:   r.NewStyle().Foreground(lipgloss.Color("240")),
		Selection: r.NewStyle().Background(lipgloss.Color("237")),
		Cursor:    r.NewStyle().Reverse(true),
	}
}

func TestRenderContent_StylesRunsByClass(t *testing.T) {
	f := newFixture(t, "a[b]xy[/b]/*c*/", false)
	st := trueColorStyle()
	f.m.cfg.Theme = &Theme{st, st, st}
	f.m = f.m.SetSize(0, 8)
	f.m = f.m.Blur()

	got, _ := f.m.renderContent()
	want := st.Text.Render("a") + st.Delimiter.Render("[b]") + st.Strong.Render("xy") +
		st.Delimiter.Render("[/b]") + st.Comment.Render("/*c*/")
	if got != want {
		t.Fatalf("unexpected render:\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderContent_SelectionAndCursor(t *testing.T) {
	f := newFixture(t, "a[b]xy[/b]", false)
	st := trueColorStyle()
	f.m.cfg.Theme = &Theme{st, st, st}
	f.m = f.m.SetSize(0, 8)

	buf := f.m.Session().Buffer()
	buf.SetSelection(buffer.Range{Start: buffer.Pos{GraphemeCol: 6}, End: buffer.Pos{GraphemeCol: 4}})

	got, _ := f.m.renderContent()
	want := st.Text.Render("a") + st.Delimiter.Render("[b]") +
		st.Cursor.Inherit(st.Selection.Inherit(st.Strong)).Render("x") +
		st.Selection.Inherit(st.Strong).Render("y") +
		st.Delimiter.Render("[/b]")
	if got != want {
		t.Fatalf("unexpected render:\n got: %q\nwant: %q", got, want)
	}
}
