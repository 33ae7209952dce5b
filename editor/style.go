package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/sceneedit/session"
)

// Style controls the editor's rendering for one color scheme.
type Style struct {
	Title   lipgloss.Style
	Status  lipgloss.Style
	Message lipgloss.Style

	Text      lipgloss.Style
	Delimiter lipgloss.Style
	Strong    lipgloss.Style
	Emphasis  lipgloss.Style
	Comment   lipgloss.Style

	Selection lipgloss.Style
	Cursor    lipgloss.Style
}

// Scheme is a foreground/background pair in any form lipgloss.Color accepts.
type Scheme struct {
	Foreground string
	Background string
}

// Theme holds one Style per session.ColorMode.
type Theme [3]Style

// For returns the style for mode; unknown modes get the bright style.
func (t Theme) For(mode session.ColorMode) Style {
	if mode < 0 || int(mode) >= len(t) {
		return t[session.ColorBright]
	}
	return t[mode]
}

// NewStyle derives every style of the editor from one scheme.
func NewStyle(s Scheme) Style {
	fg, bg := lipgloss.Color(s.Foreground), lipgloss.Color(s.Background)
	text := lipgloss.NewStyle().Foreground(fg).Background(bg)
	return Style{
		Title:     text.Bold(true).Underline(true),
		Status:    text.Faint(true),
		Message:   text.Bold(true),
		Text:      text,
		Delimiter: text.Faint(true),
		Strong:    text.Bold(true),
		Emphasis:  text.Italic(true),
		Comment:   text.Faint(true).Italic(true),
		Selection: lipgloss.NewStyle().Foreground(bg).Background(fg),
		Cursor:    lipgloss.NewStyle().Reverse(true),
	}
}

// NewTheme builds a theme from the bright, light and dark schemes.
func NewTheme(bright, light, dark Scheme) Theme {
	return Theme{
		session.ColorBright: NewStyle(bright),
		session.ColorLight:  NewStyle(light),
		session.ColorDark:   NewStyle(dark),
	}
}

func DefaultTheme() Theme {
	return NewTheme(
		Scheme{Foreground: "#000000", Background: "#ffffff"},
		Scheme{Foreground: "#000000", Background: "#faebd7"},
		Scheme{Foreground: "#d3d3d3", Background: "#333333"},
	)
}
