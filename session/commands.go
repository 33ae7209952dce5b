package session

import (
	"fmt"

	"github.com/iw2rmb/sceneedit/markup"
)

// CommandID names a user action. Shortcuts, menus and buttons all dispatch
// through Session.Run.
type CommandID string

const (
	CmdStrong        CommandID = "strong"
	CmdEmphasis      CommandID = "emphasis"
	CmdPlain         CommandID = "plain"
	CmdApply         CommandID = "apply"
	CmdClose         CommandID = "close"
	CmdApplyAndClose CommandID = "apply_and_close"
	CmdSplit         CommandID = "split"
	CmdWordCount     CommandID = "word_count"
	CmdLiveOn        CommandID = "live_word_count_on"
	CmdLiveOff       CommandID = "live_word_count_off"
	CmdUndo          CommandID = "undo"
	CmdRedo          CommandID = "redo"
)

// Command is an action with its precondition. A nil Enabled means always
// enabled while the session is open.
type Command struct {
	Enabled func(*Session) bool
	Run     func(*Session) error
}

// DefaultCommands returns a fresh copy of the built-in command table.
func DefaultCommands() map[CommandID]Command {
	return map[CommandID]Command{
		CmdStrong: {Run: func(s *Session) error { return s.ToggleFormat(markup.Strong) }},
		CmdEmphasis: {Run: func(s *Session) error {
			return s.ToggleFormat(markup.Emphasis)
		}},
		CmdPlain:         {Run: (*Session).Plain},
		CmdApply:         {Run: (*Session).Apply},
		CmdClose:         {Run: (*Session).OnClose},
		CmdApplyAndClose: {Run: (*Session).ApplyAndClose},
		CmdSplit: {
			Enabled: (*Session).CanSplit,
			Run: func(s *Session) error {
				_, err := s.Split()
				return err
			},
		},
		CmdWordCount: {Run: func(s *Session) error {
			s.ShowWordCount()
			return nil
		}},
		CmdLiveOn: {
			Enabled: func(s *Session) bool { return !s.prefs.LiveWordCount() },
			Run: func(s *Session) error {
				s.prefs.SetLiveWordCount(true)
				return nil
			},
		},
		CmdLiveOff: {
			Enabled: func(s *Session) bool { return s.prefs.LiveWordCount() },
			Run: func(s *Session) error {
				s.prefs.SetLiveWordCount(false)
				return nil
			},
		},
		CmdUndo: {
			Enabled: func(s *Session) bool { return s.buf.CanUndo() },
			Run:     (*Session).Undo,
		},
		CmdRedo: {
			Enabled: func(s *Session) bool { return s.buf.CanRedo() },
			Run:     (*Session).Redo,
		},
	}
}

// Enabled reports whether id can run now.
func (s *Session) Enabled(id CommandID) bool {
	if !s.open {
		return false
	}
	cmd, ok := s.commands[id]
	if !ok {
		return false
	}
	return cmd.Enabled == nil || cmd.Enabled(s)
}

// Run executes the command id.
func (s *Session) Run(id CommandID) error {
	if !s.open {
		return ErrClosed
	}
	cmd, ok := s.commands[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, id)
	}
	if cmd.Enabled != nil && !cmd.Enabled(s) {
		return fmt.Errorf("%w: %q", ErrDisabled, id)
	}
	return cmd.Run(s)
}
