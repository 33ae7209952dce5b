package markup

import "strings"

// Located is a decoded span together with where it came from. Offsets are
// rune offsets into the decoded text: [Start, End) covers the span content,
// [OuterStart, OuterEnd) adds the delimiters (equal to the content range for
// untagged spans).
type Located struct {
	Span
	Start, End           int
	OuterStart, OuterEnd int
}

// Decode parses s into spans. Zero-length spans are dropped; adjacent spans
// with the same tag are kept apart.
func Decode(d Dialect, s string) []Span {
	locs := DecodeIndexed(d, s)
	if len(locs) == 0 {
		return nil
	}
	out := make([]Span, len(locs))
	for i, l := range locs {
		out[i] = l.Span
	}
	return out
}

// DecodeIndexed scans s left to right. An opening delimiter starts a span
// only when the matching closing delimiter follows it; inside a span every
// other delimiter, including a second opening of the same tag, is literal
// text. Closing delimiters with nothing open are literal too.
func DecodeIndexed(d Dialect, s string) []Located {
	if s == "" {
		return nil
	}
	rs := []rune(s)

	var out []Located
	plain := 0
	flush := func(end int) {
		if end > plain {
			out = append(out, Located{
				Span:       Span{Text: string(rs[plain:end])},
				Start:      plain,
				End:        end,
				OuterStart: plain,
				OuterEnd:   end,
			})
		}
	}

	for i := 0; i < len(rs); {
		tag, n := d.openAt(rs, i)
		if tag == None {
			i++
			continue
		}
		closer := d.Close(tag)
		end := indexFrom(rs, i+n, closer)
		if end < 0 {
			i += n
			continue
		}

		flush(i)
		if end > i+n {
			out = append(out, Located{
				Span:       Span{Text: string(rs[i+n : end]), Tag: tag},
				Start:      i + n,
				End:        end,
				OuterStart: i,
				OuterEnd:   end + runeCount(closer),
			})
		}
		i = end + runeCount(closer)
		plain = i
	}
	flush(len(rs))
	return out
}

// Encode writes spans in order, wrapping tagged ones in their delimiters.
// Empty spans produce nothing.
func Encode(d Dialect, spans []Span) string {
	var sb strings.Builder
	for _, sp := range spans {
		if sp.Text == "" {
			continue
		}
		if sp.Tag == None {
			sb.WriteString(sp.Text)
			continue
		}
		sb.WriteString(d.Open(sp.Tag))
		sb.WriteString(sp.Text)
		sb.WriteString(d.Close(sp.Tag))
	}
	return sb.String()
}

// Normalize drops empty spans and merges neighbours that share a tag.
func Normalize(spans []Span) []Span {
	out := make([]Span, 0, len(spans))
	for _, sp := range spans {
		if sp.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Tag == sp.Tag {
			out[n-1].Text += sp.Text
			continue
		}
		out = append(out, sp)
	}
	return out
}

// Canonical re-encodes s through Normalize, removing empty tag pairs and
// joining touching runs of the same tag.
func Canonical(d Dialect, s string) string {
	return Encode(d, Normalize(Decode(d, s)))
}

// Content returns the text of spans without any delimiters.
func Content(spans []Span) string {
	var sb strings.Builder
	for _, sp := range spans {
		sb.WriteString(sp.Text)
	}
	return sb.String()
}
