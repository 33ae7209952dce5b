package markup

import "slices"

// Covered reports whether every content rune in [start, end) carries tag.
// An empty range is never covered.
func Covered(spans []Span, start, end int, tag Tag) bool {
	if start >= end {
		return false
	}
	cum := 0
	for _, sp := range spans {
		n := runeCount(sp.Text)
		if cum < end && cum+n > start && sp.Tag != tag {
			return false
		}
		cum += n
	}
	return cum >= end
}

// Retag gives every content rune in [start, end) the tag t and returns the
// normalized result. Runes outside the range keep their tags.
func Retag(spans []Span, start, end int, t Tag) []Span {
	out := make([]Span, 0, len(spans)+2)
	cum := 0
	for _, sp := range spans {
		rs := []rune(sp.Text)
		n := len(rs)
		lo := clamp(start-cum, 0, n)
		hi := clamp(end-cum, 0, n)
		if lo >= hi {
			out = append(out, sp)
			cum += n
			continue
		}
		out = append(out,
			Span{Text: string(rs[:lo]), Tag: sp.Tag},
			Span{Text: string(rs[lo:hi]), Tag: t},
			Span{Text: string(rs[hi:]), Tag: sp.Tag},
		)
		cum += n
	}
	return Normalize(out)
}

// SplitAt cuts spans at content offset at. A span that straddles the cut is
// divided so both halves keep its tag.
func SplitAt(spans []Span, at int) (left, right []Span) {
	cum := 0
	for _, sp := range spans {
		rs := []rune(sp.Text)
		n := len(rs)
		switch {
		case cum+n <= at:
			left = append(left, sp)
		case cum >= at:
			right = append(right, sp)
		default:
			k := at - cum
			left = append(left, Span{Text: string(rs[:k]), Tag: sp.Tag})
			right = append(right, Span{Text: string(rs[k:]), Tag: sp.Tag})
		}
		cum += n
	}
	return Normalize(left), Normalize(right)
}

// RawRange maps the content range [start, end) back to raw offsets in
// Encode(d, spans). When a boundary coincides with the edge of a tagged span
// the delimiter is included, so a fully wrapped run is returned with its
// opening and closing delimiters.
func RawRange(d Dialect, spans []Span, start, end int) (rawStart, rawEnd int) {
	rawStart, rawEnd = -1, -1
	raw, cum := 0, 0
	for _, sp := range spans {
		n := runeCount(sp.Text)
		if n == 0 {
			continue
		}
		open, closing := runeCount(d.Open(sp.Tag)), runeCount(d.Close(sp.Tag))
		if rawStart < 0 && start >= cum && start < cum+n {
			if start == cum {
				rawStart = raw
			} else {
				rawStart = raw + open + start - cum
			}
		}
		if rawEnd < 0 && end > cum && end <= cum+n {
			if end == cum+n {
				rawEnd = raw + open + n + closing
			} else {
				rawEnd = raw + open + end - cum
			}
		}
		raw += open + n + closing
		cum += n
	}
	if rawStart < 0 {
		rawStart = raw
	}
	if rawEnd < 0 {
		rawEnd = rawStart
	}
	return rawStart, rawEnd
}

// TagAt returns the tag in effect at the raw offset off, as seen by text
// typed there. A position touching the outside of a delimiter pair is
// untagged; a position inside a delimiter is moved to the nearest content
// edge, returned as pos.
func TagAt(locs []Located, off int) (tag Tag, pos int) {
	for _, l := range locs {
		if l.Tag == None || off <= l.OuterStart || off >= l.OuterEnd {
			continue
		}
		switch {
		case off < l.Start:
			return l.Tag, l.Start
		case off > l.End:
			return l.Tag, l.End
		default:
			return l.Tag, off
		}
	}
	return None, off
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ContentOffset returns how many content runes precede the raw offset off.
// An offset inside a delimiter counts as the nearest content edge before it.
func ContentOffset(locs []Located, off int) int {
	cum := 0
	for _, l := range locs {
		if off <= l.Start {
			return cum
		}
		if off < l.End {
			return cum + off - l.Start
		}
		cum += l.End - l.Start
	}
	return cum
}

// Run is the part of decoded text a formatting change touches: the selected
// raw range widened so that it neither starts nor ends inside a delimiter
// pair. Text outside the run is never rewritten.
type Run struct {
	// RawStart and RawEnd are rune offsets of the run in the decoded text.
	RawStart, RawEnd int
	// Spans is the content of the run; Start and End locate the selected
	// content runes within it.
	Spans      []Span
	Start, End int

	d             Dialect
	raw           []rune
	before, after []Span
}

// RunAt cuts the run around the raw range [rawStart, rawEnd) of s. ok is
// false when the range holds no content.
func RunAt(d Dialect, s string, rawStart, rawEnd int) (Run, bool) {
	raw := []rune(s)
	locs := DecodeIndexed(d, s)

	lo, hi := rawStart, rawEnd
	for _, l := range locs {
		if l.Tag != None && l.OuterStart < hi && l.OuterEnd > lo {
			lo = min(lo, l.OuterStart)
			hi = max(hi, l.OuterEnd)
		}
	}
	// Gaps between located spans hold empty delimiter pairs only.
	gap := 0
	for i := 0; i <= len(locs); i++ {
		next := len(raw)
		if i < len(locs) {
			next = locs[i].OuterStart
		}
		if lo > gap && lo < next {
			lo = gap
		}
		if hi > gap && hi < next {
			hi = next
		}
		if i < len(locs) {
			gap = locs[i].OuterEnd
		}
	}

	run := Run{RawStart: lo, RawEnd: hi, Start: -1, d: d, raw: raw}
	var tail []Span
	cum := 0
	for _, l := range locs {
		switch {
		case l.OuterEnd <= lo:
			run.before = append(run.before, l.Span)
			continue
		case l.OuterStart >= hi:
			run.after = append(run.after, l.Span)
			continue
		}
		// Only untagged spans can be cut here.
		text := []rune(l.Text)
		a := clamp(lo-l.Start, 0, len(text))
		b := clamp(hi-l.Start, 0, len(text))
		if a > 0 {
			run.before = append(run.before, Span{Text: string(text[:a]), Tag: l.Tag})
		}
		if b < len(text) {
			tail = append(tail, Span{Text: string(text[b:]), Tag: l.Tag})
		}
		sa := clamp(rawStart-l.Start, a, b)
		sb := clamp(rawEnd-l.Start, a, b)
		if sa < sb {
			if run.Start < 0 {
				run.Start = cum + sa - a
			}
			run.End = cum + sb - a
		}
		run.Spans = append(run.Spans, Span{Text: string(text[a:b]), Tag: l.Tag})
		cum += b - a
	}
	if run.Start < 0 {
		return Run{}, false
	}
	run.after = append(tail, run.after...)
	return run, true
}

// Text returns the raw text the run covers now.
func (r Run) Text() string { return string(r.raw[r.RawStart:r.RawEnd]) }

// Replace encodes spans as the new raw text of the run. ok is false when the
// edited document would not decode to the text around the run followed by
// spans, which happens when a literal delimiter outside the run pairs with
// one written into it.
func (r Run) Replace(spans []Span) (text string, ok bool) {
	text = Encode(r.d, spans)
	doc := string(r.raw[:r.RawStart]) + text + string(r.raw[r.RawEnd:])

	want := make([]Span, 0, len(r.before)+len(spans)+len(r.after))
	want = append(want, r.before...)
	want = append(want, spans...)
	want = append(want, r.after...)
	return text, slices.Equal(Normalize(Decode(r.d, doc)), Normalize(want))
}
