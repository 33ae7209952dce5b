package editor

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/sceneedit/buffer"
	"github.com/iw2rmb/sceneedit/session"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || !m.sess.IsOpen() {
		return m, nil
	}
	if m.pending != "" {
		m.answer(msg)
		return m, nil
	}
	m.message = ""

	buf := m.sess.Buffer()
	defer m.sess.Keystroke()

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		buf.InsertText(normalizeNewlines(string(msg.Runes)))
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirDown, Extend: true})

	case key.Matches(msg, km.WordLeft):
		buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocStart):
		buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})
	case key.Matches(msg, km.PageUp):
		m.viewport.HalfViewUp()
	case key.Matches(msg, km.PageDown):
		m.viewport.HalfViewDown()

	case key.Matches(msg, km.Backspace):
		buf.DeleteBackward()
	case key.Matches(msg, km.Delete):
		buf.DeleteForward()
	case key.Matches(msg, km.Enter):
		buf.InsertNewline()

	case key.Matches(msg, km.Strong):
		m.run(session.CmdStrong)
	case key.Matches(msg, km.Emphasis):
		m.run(session.CmdEmphasis)
	case key.Matches(msg, km.Plain):
		m.run(session.CmdPlain)
	case key.Matches(msg, km.Undo):
		m.run(session.CmdUndo)
	case key.Matches(msg, km.Redo):
		m.run(session.CmdRedo)

	case key.Matches(msg, km.Apply):
		m.run(session.CmdApply)
	case key.Matches(msg, km.Split):
		m.run(session.CmdSplit)
	case key.Matches(msg, km.Close):
		return m, m.requestClose(false)
	case key.Matches(msg, km.ApplyAndClose):
		return m, m.requestClose(true)

	case key.Matches(msg, km.WordCount):
		m.run(session.CmdWordCount)
	case key.Matches(msg, km.LiveWordCount):
		if m.sess.Prefs().LiveWordCount() {
			m.run(session.CmdLiveOff)
		} else {
			m.run(session.CmdLiveOn)
		}
	case key.Matches(msg, km.ColorMode):
		prefs := m.sess.Prefs()
		prefs.SetColorMode((prefs.ColorMode() + 1) % 3)

	default:
		switch {
		case msg.Type == tea.KeyTab:
			buf.InsertText("\t")
		case msg.Type == tea.KeySpace:
			buf.InsertText(" ")
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			buf.InsertText(string(msg.Runes))
		}
	}

	return m, nil
}

// run executes a session command, asking first when the command has a
// question.
func (m *Model) run(id session.CommandID) {
	if q, ok := m.cfg.Questions[id]; ok && m.cfg.Prompt != nil {
		if !m.sess.Enabled(id) {
			return
		}
		m.pending = id
		m.question = q
		return
	}
	m.exec(id)
}

func (m *Model) exec(id session.CommandID) {
	err := m.sess.Run(id)
	if err != nil && !errors.Is(err, session.ErrDisabled) {
		m.message = err.Error()
	}
	if m.cfg.Prompt != nil {
		if msg := m.cfg.Prompt.takeMessage(); msg != "" {
			m.message = msg
		}
	}
}

// answer resolves the pending question. Keys other than y, n and esc are
// ignored until then.
func (m *Model) answer(msg tea.KeyMsg) {
	var yes bool
	switch {
	case msg.Type == tea.KeyEsc:
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && strings.ContainsRune("nN", msg.Runes[0]):
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && strings.ContainsRune("yY", msg.Runes[0]):
		yes = true
	default:
		return
	}

	id := m.pending
	m.pending, m.question = "", ""
	if !yes {
		return
	}
	m.cfg.Prompt.arm(true)
	defer m.cfg.Prompt.disarm()
	m.exec(id)
}

func (m Model) requestClose(apply bool) tea.Cmd {
	unit := m.sess.UnitID()
	return func() tea.Msg { return CloseMsg{Unit: unit, Apply: apply} }
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
