package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/sceneedit/config"
	"github.com/iw2rmb/sceneedit/editor"
)

// model hosts the editor for the lifetime of the program and quits when the
// editor asks to close.
type model struct {
	editor  editor.Model
	closing *editor.CloseMsg
}

func newModel(ed editor.Model, win config.WindowConfig) model {
	return model{editor: ed.SetSize(win.Width, win.Height)}
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(editor.CloseMsg); ok {
		m.closing = &msg
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.closing != nil {
		return ""
	}
	return m.editor.View()
}

func themeFrom(c *config.ColorsConfig) editor.Theme {
	scheme := func(s config.SchemeConfig) editor.Scheme {
		return editor.Scheme{Foreground: s.Foreground, Background: s.Background}
	}
	return editor.NewTheme(scheme(c.Bright), scheme(c.Light), scheme(c.Dark))
}

// logEdits records every text edit of the running editor in the log.
func logEdits(log *zap.Logger) func(editor.ChangeEvent) {
	return func(ev editor.ChangeEvent) {
		if !ev.Edited() {
			return
		}
		log.Debug("Scene edited",
			zap.String("scene", ev.Unit),
			zap.Uint64("version", ev.Change.VersionAfter),
			zap.Stringer("source", ev.Change.Source),
			zap.Int("edits", len(ev.Change.AppliedEdits)),
			zap.Int("words", ev.Words.Total))
	}
}
