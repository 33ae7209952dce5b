// Package editor provides a Bubble Tea component that edits one unit through
// a session.Session.
//
// The stored markup is shown as is: delimiters are dimmed, tagged text is
// styled by tag and comments are muted. Keys map to session commands, and
// the word count goes to a status row under the text.
package editor
