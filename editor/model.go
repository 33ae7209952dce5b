package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/sceneedit/buffer"
	"github.com/iw2rmb/sceneedit/session"
)

// CloseMsg asks the program hosting the editor to end the session. Apply
// skips the "apply changes?" question.
type CloseMsg struct {
	Unit  string
	Apply bool
}

// Model is a Bubble Tea component that renders and edits one session.
//
// The header row shows Config.Title, the status row shows questions,
// messages and the word count.
type Model struct {
	cfg  Config
	sess *session.Session

	focused bool
	width   int

	viewport  viewport.Model
	cursorRow int

	lastBufVersion uint64
	lastCursor     buffer.Pos
	lastMode       session.ColorMode

	pending  session.CommandID
	question string
	message  string
}

func New(sess *session.Session, cfg Config) Model {
	if len(cfg.KeyMap.Close.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Theme == nil {
		theme := DefaultTheme()
		cfg.Theme = &theme
	}
	if cfg.Questions == nil {
		cfg.Questions = DefaultQuestions()
	}
	if cfg.Status == nil {
		cfg.Status = &Status{}
	}

	m := Model{
		cfg:      cfg,
		sess:     sess,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = sess.Buffer().Version()
	m.lastCursor = sess.Buffer().Cursor()
	m.lastMode = sess.Prefs().ColorMode()
	m.rebuildContent()
	return m
}

func (m Model) Session() *session.Session { return m.sess }

// Init shows the word count of the freshly loaded unit.
func (m Model) Init() tea.Cmd {
	m.sess.ShowWordCount()
	return nil
}

// SetSize sets the whole component size, header and status rows included.
func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = max(height-2, 0)

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// Pending returns the command waiting for a yes/no answer.
func (m Model) Pending() (session.CommandID, bool) { return m.pending, m.pending != "" }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		before := m.sess.Buffer().Version()
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		if m.syncFromBuffer() {
			m.followCursor()
		}
		if m.cfg.OnChange != nil && m.sess.Buffer().Version() != before {
			m.cfg.OnChange(buildChangeEvent(m.sess, before))
		}
		return m, cmd
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		// Manual scrolling must not snap back to the cursor.
		m.syncFromBuffer()
		return m, cmd
	default:
		if m.syncFromBuffer() {
			m.followCursor()
		}
		return m, nil
	}
}

func (m Model) View() string {
	st := m.style()
	title := renderBar(st.Title, m.cfg.Title, m.width)

	body := m.viewport.View()
	var status string
	switch {
	case m.pending != "":
		prompt := m.question + " [y/n]"
		if framed, ok := renderDialog(st, m.question, body, m.width, m.viewport.Height); ok {
			body, prompt = framed, "[y/n]"
		}
		status = renderBar(st.Message, prompt, m.width)
	case m.message != "":
		status = renderBar(st.Message, m.message, m.width)
	default:
		status = renderBar(st.Status, m.cfg.Status.Text(), m.width)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, body, status)
}

func (m Model) style() Style { return m.cfg.Theme.For(m.sess.Prefs().ColorMode()) }

func (m *Model) syncFromBuffer() (cursorChanged bool) {
	buf := m.sess.Buffer()
	ver := buf.Version()
	cur := buf.Cursor()
	mode := m.sess.Prefs().ColorMode()
	if ver == m.lastBufVersion && cur == m.lastCursor && mode == m.lastMode {
		return false
	}
	cursorChanged = ver != m.lastBufVersion || cur != m.lastCursor
	m.lastBufVersion = ver
	m.lastCursor = cur
	m.lastMode = mode
	m.rebuildContent()
	return cursorChanged
}

func (m *Model) rebuildContent() {
	content, row := m.renderContent()
	m.cursorRow = row
	m.viewport.SetContent(content)
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if m.cursorRow < y {
		m.viewport.SetYOffset(m.cursorRow)
		return
	}
	if m.cursorRow >= y+h {
		m.viewport.SetYOffset(m.cursorRow - h + 1)
	}
}
