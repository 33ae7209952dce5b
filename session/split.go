package session

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/iw2rmb/sceneedit/buffer"
	"github.com/iw2rmb/sceneedit/markup"
)

// CanSplit reports whether the host can create units.
func (s *Session) CanSplit() bool {
	_, ok := s.host.(Splitter)
	return ok
}

// Split moves the text from the cursor to the end into a new unit placed
// after this one, then applies the remainder here. A span cut by the cursor
// is closed on the left and reopened on the right. It returns the new unit's
// id, or "" when the user declined or the host is locked.
func (s *Session) Split() (string, error) {
	if !s.open {
		return "", ErrClosed
	}
	sp, ok := s.host.(Splitter)
	if !ok {
		return "", ErrDisabled
	}
	if !s.host.Confirm(QuestionSplit) {
		return "", nil
	}
	if s.host.IsLocked() {
		s.host.Inform(MessageLocked)
		return "", nil
	}

	text := s.buf.Text()
	locs := markup.DecodeIndexed(s.dialect, text)
	off, _ := s.buf.RuneOffsetFromPos(s.buf.Cursor(), buffer.OffsetClamp)
	spans := make([]markup.Span, len(locs))
	for i, l := range locs {
		spans[i] = l.Span
	}
	left, right := markup.SplitAt(spans, markup.ContentOffset(locs, off))

	newID, err := sp.SplitUnit(s.unitID)
	if err != nil {
		return "", fmt.Errorf("unable to split unit %q: %w", s.unitID, err)
	}
	moved := strings.Trim(markup.Encode(s.dialect, right), " \n")
	if err := s.host.SetContent(newID, moved); err != nil {
		return newID, fmt.Errorf("unable to store unit %q: %w", newID, err)
	}

	s.replaceAll(text, markup.Encode(s.dialect, left))
	s.buf.SetCursor(s.buf.End())
	if err := s.Apply(); err != nil {
		return newID, err
	}
	s.host.NotifyModified()
	s.log.Info("Unit split", zap.String("new", newID), zap.Int("moved", markup.CountWords(moved)))
	return newID, nil
}
