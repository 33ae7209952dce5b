package editor

import (
	"github.com/iw2rmb/sceneedit/buffer"
	"github.com/iw2rmb/sceneedit/session"
)

// ChangeEvent describes the buffer after an update that changed it.
//
// Change is the buffer mutation recorded during the update. It is empty
// when the update only moved the cursor or the selection.
type ChangeEvent struct {
	Unit      string
	Version   uint64
	Cursor    buffer.Pos
	Selection struct {
		Range  buffer.Range
		Active bool
	}
	Change buffer.Change
	Words  session.WordCount
}

// Edited reports whether the update changed the text.
func (ev ChangeEvent) Edited() bool { return len(ev.Change.AppliedEdits) > 0 }

func buildChangeEvent(s *session.Session, before uint64) ChangeEvent {
	b := s.Buffer()
	ev := ChangeEvent{
		Unit:    s.UnitID(),
		Version: b.Version(),
		Cursor:  b.Cursor(),
		Words:   s.WordCount(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	if ch, ok := b.LastChange(); ok && ch.VersionAfter > before {
		ev.Change = ch
	}
	return ev
}
