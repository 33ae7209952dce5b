package session

import (
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/iw2rmb/sceneedit/markup"
)

type options struct {
	dialect      markup.Dialect
	log          *zap.Logger
	prefs        *Prefs
	historyLimit int
	status       func(string)
	lang         language.Tag
	commands     map[CommandID]Command
}

// Option configures a Session.
type Option func(*options)

// WithDialect selects the storage dialect. The default is markup.Bracket.
func WithDialect(d markup.Dialect) Option {
	return func(o *options) { o.dialect = d }
}

func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithPrefs shares p with the session. Without it the session gets private
// defaults.
func WithPrefs(p *Prefs) Option {
	return func(o *options) {
		if p != nil {
			o.prefs = p
		}
	}
}

// WithHistoryLimit bounds the number of undo steps; negative disables undo.
func WithHistoryLimit(n int) Option {
	return func(o *options) { o.historyLimit = n }
}

// WithStatus receives the word count line whenever it is shown.
func WithStatus(fn func(string)) Option {
	return func(o *options) { o.status = fn }
}

// WithLanguage sets the locale used to format the status line.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) { o.lang = tag }
}

// WithCommands replaces the command table. Missing ids are unknown to Run.
func WithCommands(cmds map[CommandID]Command) Option {
	return func(o *options) { o.commands = cmds }
}

func defaultOptions() options {
	return options{
		dialect: markup.Bracket,
		log:     zap.NewNop(),
		lang:    language.English,
	}
}
