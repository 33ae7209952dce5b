package session

import (
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/iw2rmb/sceneedit/buffer"
	"github.com/iw2rmb/sceneedit/markup"
)

// ToggleFormat applies tag to the selection, or removes it when every
// selected character already carries it. With no selection it inserts a
// delimiter pair at the cursor and leaves the cursor between them.
func (s *Session) ToggleFormat(tag markup.Tag) error {
	if !s.open {
		return ErrClosed
	}
	if tag == markup.None {
		return s.Plain()
	}
	raw, ok := s.buf.SelectionRaw()
	if !ok {
		s.insertDelimiters(tag)
		return nil
	}
	s.retag(raw, tag, true)
	return nil
}

// Plain removes every tag from the selected characters.
func (s *Session) Plain() error {
	if !s.open {
		return ErrClosed
	}
	raw, ok := s.buf.SelectionRaw()
	if !ok {
		return nil
	}
	s.retag(raw, markup.None, false)
	return nil
}

// retag rewrites the run around the selection, leaving the rest of the text
// untouched. An edit that would make a literal delimiter outside the run
// start formatting is refused with a message.
func (s *Session) retag(raw buffer.Range, tag markup.Tag, toggle bool) {
	r := buffer.NormalizeRange(raw)
	backward := r != raw

	rawStart, _ := s.buf.RuneOffsetFromPos(r.Start, buffer.OffsetClamp)
	rawEnd, _ := s.buf.RuneOffsetFromPos(r.End, buffer.OffsetClamp)
	run, ok := markup.RunAt(s.dialect, s.buf.Text(), rawStart, rawEnd)
	if !ok {
		return
	}
	if toggle && markup.Covered(run.Spans, run.Start, run.End, tag) {
		tag = markup.None
	}

	next := markup.Retag(run.Spans, run.Start, run.End, tag)
	text, ok := run.Replace(next)
	if !ok {
		s.host.Inform(MessageFormatLiteral)
		s.log.Debug("Retag refused", zap.Stringer("tag", tag), zap.Int("start", run.RawStart), zap.Int("end", run.RawEnd))
		return
	}
	if text != run.Text() {
		s.buf.Apply(buffer.TextEdit{
			Range: buffer.Range{Start: s.posAt(run.RawStart), End: s.posAt(run.RawEnd)},
			Text:  text,
		})
	}

	selStart, selEnd := markup.RawRange(s.dialect, next, run.Start, run.End)
	sel := buffer.Range{Start: s.posAt(run.RawStart + selStart), End: s.posAt(run.RawStart + selEnd)}
	if backward {
		sel.Start, sel.End = sel.End, sel.Start
	}
	s.buf.SetSelection(sel)
	s.log.Debug("Retagged selection", zap.Stringer("tag", tag), zap.Int("start", run.RawStart), zap.Int("end", run.RawEnd))
}

func (s *Session) insertDelimiters(tag markup.Tag) {
	off, _ := s.buf.RuneOffsetFromPos(s.buf.Cursor(), buffer.OffsetClamp)
	cur, at := markup.TagAt(markup.DecodeIndexed(s.dialect, s.buf.Text()), off)

	var ins, before string
	switch cur {
	case markup.None:
		before = s.dialect.Open(tag)
		ins = before + s.dialect.Close(tag)
	case tag:
		before = s.dialect.Close(tag)
		ins = before + s.dialect.Open(tag)
	default:
		before = s.dialect.Close(cur) + s.dialect.Open(tag)
		ins = before + s.dialect.Close(tag) + s.dialect.Open(cur)
	}

	p := s.posAt(at)
	s.buf.Apply(buffer.TextEdit{Range: buffer.Range{Start: p, End: p}, Text: ins})
	s.buf.SetCursor(s.posAt(at + utf8.RuneCountInString(before)))
}

// replaceAll swaps the whole text as one undoable edit.
func (s *Session) replaceAll(before, after string) {
	if before == after {
		return
	}
	s.buf.Apply(buffer.TextEdit{
		Range: buffer.Range{Start: buffer.Pos{}, End: s.buf.End()},
		Text:  after,
	})
}

// posAt converts a rune offset to a buffer position, moving forward out of a
// grapheme cluster when the offset splits one.
func (s *Session) posAt(off int) buffer.Pos {
	for {
		p, ok := s.buf.PosFromRuneOffset(off, buffer.OffsetClamp)
		if ok {
			return p
		}
		off++
	}
}
