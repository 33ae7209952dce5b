package session

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/message"

	"github.com/iw2rmb/sceneedit/buffer"
	"github.com/iw2rmb/sceneedit/markup"
)

var (
	ErrClosed         = errors.New("session is closed")
	ErrUnknownCommand = errors.New("unknown command")
	ErrDisabled       = errors.New("command is not available")
)

// WordCount is the current word total and its change since the last load.
type WordCount struct {
	Total int
	Delta int
}

// Session edits one unit of a host document.
type Session struct {
	host    Host
	unitID  string
	dialect markup.Dialect
	log     *zap.Logger
	prefs   *Prefs
	printer *message.Printer
	status  func(string)

	commands map[CommandID]Command

	buf      *buffer.Buffer
	baseline int
	open     bool

	keyListeners map[int]func()
	nextListener int
	cancelPrefs  func()
	cancelLive   func()
}

// New opens a session on unitID, loading the unit's stored markup into a
// fresh buffer.
func New(host Host, unitID string, opts ...Option) (*Session, error) {
	if host == nil {
		return nil, errors.New("session: nil host")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.prefs == nil {
		o.prefs = NewPrefs(ColorBright, false)
	}
	if o.commands == nil {
		o.commands = DefaultCommands()
	}

	content, err := host.Content(unitID)
	if err != nil {
		return nil, fmt.Errorf("unable to read unit %q: %w", unitID, err)
	}

	s := &Session{
		host:     host,
		unitID:   unitID,
		dialect:  o.dialect,
		log:      o.log.With(zap.String("unit", unitID)),
		prefs:    o.prefs,
		printer:  message.NewPrinter(o.lang),
		status:   o.status,
		commands: o.commands,
		buf:      buffer.New("", buffer.Options{HistoryLimit: o.historyLimit}),
		open:     true,
	}
	s.load(content)
	s.cancelPrefs = s.prefs.Subscribe(s.prefsChanged)
	if s.prefs.LiveWordCount() {
		s.startLive()
	}
	s.log.Debug("Session opened", zap.String("dialect", s.dialect.Name), zap.Int("words", s.baseline))
	return s, nil
}

func (s *Session) UnitID() string { return s.unitID }

func (s *Session) Dialect() markup.Dialect { return s.dialect }

func (s *Session) Prefs() *Prefs { return s.prefs }

// Buffer exposes the edited text for the surface. Surfaces may move the
// cursor and type through it directly.
func (s *Session) Buffer() *buffer.Buffer { return s.buf }

func (s *Session) IsOpen() bool { return s.open }

// Load replaces the buffer with markup, makes it the word count baseline and
// forgets undo history.
func (s *Session) Load(markupText string) error {
	if !s.open {
		return ErrClosed
	}
	s.load(markupText)
	return nil
}

func (s *Session) load(markupText string) {
	text := markup.Canonical(s.dialect, markupText)
	s.buf.Reset(text)
	s.baseline = markup.CountWords(text)
}

// Extract returns the buffer as canonical markup with surrounding spaces and
// newlines removed.
func (s *Session) Extract() string {
	return strings.Trim(markup.Canonical(s.dialect, s.buf.Text()), " \n")
}

func (s *Session) WordCount() WordCount {
	total := markup.CountWords(s.buf.Text())
	return WordCount{Total: total, Delta: total - s.baseline}
}

// Status renders the word count for a status line.
func (s *Session) Status() string {
	wc := s.WordCount()
	return s.printer.Sprintf("%d words (%d new)", wc.Total, wc.Delta)
}

// ShowWordCount pushes the status line to the status sink.
func (s *Session) ShowWordCount() {
	if s.status != nil {
		s.status(s.Status())
	}
}

func (s *Session) Undo() error {
	if !s.open {
		return ErrClosed
	}
	s.buf.Undo()
	return nil
}

func (s *Session) Redo() error {
	if !s.open {
		return ErrClosed
	}
	s.buf.Redo()
	return nil
}

// Keystroke is called by the surface after each key is handled.
func (s *Session) Keystroke() {
	if !s.open {
		return
	}
	for _, id := range slices.Sorted(maps.Keys(s.keyListeners)) {
		if fn, ok := s.keyListeners[id]; ok {
			fn()
		}
	}
}

// OnKeystroke calls fn after every keystroke until cancel is called.
func (s *Session) OnKeystroke(fn func()) (cancel func()) {
	if s.keyListeners == nil {
		s.keyListeners = make(map[int]func())
	}
	id := s.nextListener
	s.nextListener++
	s.keyListeners[id] = fn
	return func() { delete(s.keyListeners, id) }
}

func (s *Session) prefsChanged(f PrefsField) {
	if !s.open || f != FieldLiveWordCount {
		return
	}
	if s.prefs.LiveWordCount() {
		s.startLive()
		return
	}
	s.stopLive()
}

func (s *Session) startLive() {
	if s.cancelLive != nil {
		return
	}
	s.cancelLive = s.OnKeystroke(s.ShowWordCount)
	s.ShowWordCount()
}

func (s *Session) stopLive() {
	if s.cancelLive == nil {
		return
	}
	s.cancelLive()
	s.cancelLive = nil
}

// LiveWordCount reports whether the session follows keystrokes with a word
// count.
func (s *Session) LiveWordCount() bool { return s.cancelLive != nil }

func (s *Session) shutdown() {
	s.stopLive()
	if s.cancelPrefs != nil {
		s.cancelPrefs()
		s.cancelPrefs = nil
	}
	s.keyListeners = nil
	s.open = false
	s.log.Debug("Session closed")
}
