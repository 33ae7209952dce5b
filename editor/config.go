package editor

import "github.com/iw2rmb/sceneedit/session"

// Config configures the editor Model.
type Config struct {
	// Title is shown in the header row.
	Title string

	KeyMap   KeyMap
	Theme    *Theme // nil: DefaultTheme
	WrapMode WrapMode
	TabWidth int // default: 4

	// Prompt answers the session's questions while the program runs. Hosts
	// route their Confirm and Inform calls through it.
	Prompt *Prompt

	// Status receives word count reports; pass Status.Set to
	// session.WithStatus.
	Status *Status

	// Questions lists commands that need a yes/no answer first. The editor
	// asks in the status row and runs the command with the answer armed in
	// Prompt. Nil means DefaultQuestions.
	Questions map[session.CommandID]string

	// OnChange is called after every update that changed the buffer.
	OnChange func(ChangeEvent)
}

// DefaultQuestions returns the commands that ask before running.
func DefaultQuestions() map[session.CommandID]string {
	return map[session.CommandID]string{
		session.CmdSplit: session.QuestionSplit,
	}
}

func (c Config) tabWidth() int {
	if c.TabWidth <= 0 {
		return defaultTabWidth
	}
	return c.TabWidth
}
