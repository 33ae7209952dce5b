package markup

import (
	"fmt"
	"testing"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		name string
		d    Dialect
		in   string
		want []Span
	}{
		{name: "empty", d: Bracket, in: "", want: nil},
		{name: "plain", d: Bracket, in: "just text", want: []Span{{Text: "just text"}}},
		{
			name: "strong-and-emphasis",
			d:    Bracket,
			in:   "a [b]bold[/b] and [i]it[/i].",
			want: []Span{{Text: "a "}, {Text: "bold", Tag: Strong}, {Text: " and "}, {Text: "it", Tag: Emphasis}, {Text: "."}},
		},
		{
			name: "unknown-tag-is-literal",
			d:    Bracket,
			in:   "x [unknown] y",
			want: []Span{{Text: "x [unknown] y"}},
		},
		{
			name: "dangling-open-is-literal",
			d:    Bracket,
			in:   "x [b]y",
			want: []Span{{Text: "x [b]y"}},
		},
		{
			name: "dangling-close-is-literal",
			d:    Bracket,
			in:   "x[/i] y",
			want: []Span{{Text: "x[/i] y"}},
		},
		{
			name: "same-tag-nesting-is-literal",
			d:    Bracket,
			in:   "[b]a[b]c[/b]d[/b]",
			want: []Span{{Text: "a[b]c", Tag: Strong}, {Text: "d[/b]"}},
		},
		{
			name: "other-tag-inside-is-literal",
			d:    Bracket,
			in:   "[b]x[i]y[/i]z[/b]",
			want: []Span{{Text: "x[i]y[/i]z", Tag: Strong}},
		},
		{
			name: "empty-pair-dropped",
			d:    Bracket,
			in:   "a[i][/i]b",
			want: []Span{{Text: "a"}, {Text: "b"}},
		},
		{
			name: "adjacent-same-tag-not-merged",
			d:    Bracket,
			in:   "[b]x[/b][b]y[/b]",
			want: []Span{{Text: "x", Tag: Strong}, {Text: "y", Tag: Strong}},
		},
		{
			name: "angle",
			d:    Angle,
			in:   "<em>Oh</em>, <strong>no</strong> <note>n</note>",
			want: []Span{{Text: "Oh", Tag: Emphasis}, {Text: ", "}, {Text: "no", Tag: Strong}, {Text: " <note>n</note>"}},
		},
		{
			name: "bracket-tags-literal-in-angle",
			d:    Angle,
			in:   "[b]x[/b]",
			want: []Span{{Text: "[b]x[/b]"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Decode(tc.d, tc.in)
			if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", tc.want) {
				t.Fatalf("Decode(%q):\n got: %q\nwant: %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDecodeIndexed_Offsets(t *testing.T) {
	locs := DecodeIndexed(Bracket, "ab[i]cd[/i]\u00e9")
	if len(locs) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(locs))
	}
	it := locs[1]
	if it.Start != 5 || it.End != 7 || it.OuterStart != 2 || it.OuterEnd != 11 {
		t.Fatalf("unexpected offsets: %+v", it)
	}
	last := locs[2]
	if last.Start != 11 || last.End != 12 || last.OuterStart != last.Start || last.OuterEnd != last.End {
		t.Fatalf("unexpected offsets for plain span: %+v", last)
	}
}

func TestEncode(t *testing.T) {
	spans := []Span{{Text: "Call "}, {Text: "me", Tag: Emphasis}, {Text: ""}, {Text: " now", Tag: Strong}}
	if got, want := Encode(Bracket, spans), "Call [i]me[/i][b] now[/b]"; got != want {
		t.Fatalf("bracket: got %q, want %q", got, want)
	}
	if got, want := Encode(Angle, spans), "Call <em>me</em><strong> now</strong>"; got != want {
		t.Fatalf("angle: got %q, want %q", got, want)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	inputs := [][]Span{
		{{Text: "plain"}},
		{{Text: "a", Tag: Strong}, {Text: "b", Tag: Emphasis}, {Text: "c"}},
		{{Text: "x", Tag: Strong}, {Text: "y", Tag: Strong}},
		{{Text: "line one\n"}, {Text: "line two", Tag: Emphasis}, {Text: "\n[unknown] tail"}},
	}
	for _, d := range []Dialect{Bracket, Angle} {
		for _, spans := range inputs {
			m := Encode(d, spans)
			if got := Encode(d, Decode(d, m)); got != m {
				t.Fatalf("%s: encode(decode(%q)) = %q", d.Name, m, got)
			}
			back := Normalize(Decode(d, m))
			if fmt.Sprintf("%q", back) != fmt.Sprintf("%q", Normalize(spans)) {
				t.Fatalf("%s: decode(encode(%q)) = %q", d.Name, spans, back)
			}
		}
	}
}

func TestNormalize_MergesAndDrops(t *testing.T) {
	got := Normalize([]Span{{Text: "a", Tag: Strong}, {Text: ""}, {Text: "b", Tag: Strong}, {Text: "c"}, {Text: "d"}})
	want := []Span{{Text: "ab", Tag: Strong}, {Text: "cd"}}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNormalize_MergedEncodesLikeCanonical(t *testing.T) {
	in := "[b]x[/b][b]y[/b] [i][/i]z"
	if got, want := Canonical(Bracket, in), "[b]xy[/b] z"; got != want {
		t.Fatalf("Canonical(%q) = %q, want %q", in, got, want)
	}
	if got := Canonical(Bracket, Canonical(Bracket, in)); got != Canonical(Bracket, in) {
		t.Fatalf("Canonical must be idempotent, got %q", got)
	}
}

func TestDialectByName(t *testing.T) {
	for _, tc := range []struct {
		name string
		want string
		ok   bool
	}{
		{name: "", want: "bracket", ok: true},
		{name: "Angle", want: "angle", ok: true},
		{name: "bracket", want: "bracket", ok: true},
		{name: "markdown", ok: false},
	} {
		d, err := DialectByName(tc.name)
		if (err == nil) != tc.ok {
			t.Fatalf("DialectByName(%q) err=%v, want ok=%v", tc.name, err, tc.ok)
		}
		if tc.ok && d.Name != tc.want {
			t.Fatalf("DialectByName(%q) = %q, want %q", tc.name, d.Name, tc.want)
		}
	}
}
