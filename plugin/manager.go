// Package plugin keeps the open editing sessions of one host document: at
// most one session per unit, all sharing the same preferences.
package plugin

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/iw2rmb/sceneedit/config"
	"github.com/iw2rmb/sceneedit/session"
)

const MessageLocked = "Cannot edit scenes, because the project is locked."

// ErrLocked is returned by Open while the host is write-protected.
var ErrLocked = errors.New("project is locked")

// Manager owns the sessions opened on a host.
type Manager struct {
	host     session.Host
	prefs    *session.Prefs
	log      *zap.Logger
	opts     []session.Option
	sessions map[string]*session.Session
}

// NewManager creates a registry over host. opts are applied to every session
// after the shared prefs and logger.
func NewManager(host session.Host, prefs *session.Prefs, log *zap.Logger, opts ...session.Option) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	if prefs == nil {
		prefs = session.NewPrefs(session.ColorBright, false)
	}
	return &Manager{
		host:     host,
		prefs:    prefs,
		log:      log,
		opts:     opts,
		sessions: make(map[string]*session.Session),
	}
}

// NewManagerFromConfig takes shared prefs and session options from cfg.
func NewManagerFromConfig(host session.Host, cfg *config.EditorConfig, log *zap.Logger, opts ...session.Option) (*Manager, error) {
	d, err := cfg.MarkupDialect()
	if err != nil {
		return nil, err
	}
	prefs := session.NewPrefs(session.ColorMode(cfg.ColorMode), cfg.LiveWordCount)
	opts = append([]session.Option{
		session.WithDialect(d),
		session.WithHistoryLimit(cfg.HistoryLimit),
		session.WithLanguage(cfg.Language()),
	}, opts...)
	return NewManager(host, prefs, log, opts...), nil
}

func (m *Manager) Prefs() *session.Prefs { return m.prefs }

// Open returns the open session for unitID, creating it if needed. A locked
// host refuses to open units and is told so. extra options apply only when a
// new session is created.
func (m *Manager) Open(unitID string, extra ...session.Option) (*session.Session, error) {
	if m.host.IsLocked() {
		m.host.Inform(MessageLocked)
		return nil, ErrLocked
	}
	if s, ok := m.sessions[unitID]; ok && s.IsOpen() {
		return s, nil
	}

	opts := append([]session.Option{
		session.WithPrefs(m.prefs),
		session.WithLogger(m.log),
	}, m.opts...)
	opts = append(opts, extra...)
	s, err := session.New(m.host, unitID, opts...)
	if err != nil {
		return nil, err
	}
	m.sessions[unitID] = s
	m.log.Debug("Unit opened", zap.String("unit", unitID), zap.Int("open", m.Len()))
	return s, nil
}

// Session returns the open session for unitID.
func (m *Manager) Session(unitID string) (*session.Session, bool) {
	s, ok := m.sessions[unitID]
	if !ok || !s.IsOpen() {
		return nil, false
	}
	return s, true
}

// Len returns the number of open sessions.
func (m *Manager) Len() int {
	n := 0
	for _, s := range m.sessions {
		if s.IsOpen() {
			n++
		}
	}
	return n
}

// Close closes the session for unitID, asking about unapplied changes.
func (m *Manager) Close(unitID string) error {
	s, ok := m.sessions[unitID]
	if !ok {
		return nil
	}
	delete(m.sessions, unitID)
	if !s.IsOpen() {
		return nil
	}
	return s.OnClose()
}

// CloseAll closes every open session in unit id order. Every session is
// closed even when some fail; the failures are combined.
func (m *Manager) CloseAll() (err error) {
	for _, id := range slices.Sorted(maps.Keys(m.sessions)) {
		if er := m.Close(id); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close unit %q: %w", id, er))
		}
	}
	return err
}

// Quit closes all sessions and stores the shared preferences into cfg,
// saving it to path when path is not empty.
func (m *Manager) Quit(cfg *config.Config, path string) error {
	err := m.CloseAll()
	if cfg == nil {
		return err
	}
	cfg.Editor.ColorMode = int(m.prefs.ColorMode())
	cfg.Editor.LiveWordCount = m.prefs.LiveWordCount()
	if path != "" {
		if er := config.Save(path, cfg); er != nil {
			err = multierr.Append(err, er)
		}
	}
	return err
}
