package session

// Host is the document model a session edits. The session never touches
// storage directly.
type Host interface {
	// Content returns the stored markup of a unit.
	Content(unitID string) (string, error)
	// SetContent stores markup for a unit.
	SetContent(unitID, markup string) error
	// IsLocked reports whether the document is write-protected.
	IsLocked() bool
	// Unlock lifts write protection.
	Unlock()
	// Confirm asks the user a yes/no question.
	Confirm(question string) bool
	// Inform shows a message that needs no answer.
	Inform(message string)
	// NotifyModified marks the document dirty.
	NotifyModified()
}

// Splitter is implemented by hosts that can create a new unit right after an
// existing one, copying its metadata. It returns the new unit's id.
type Splitter interface {
	SplitUnit(unitID string) (string, error)
}

const (
	QuestionApply  = "Apply scene changes?"
	QuestionUnlock = "Cannot apply scene changes, because the project is locked.\nUnlock and apply changes?"
	QuestionSplit  = "Move the text from the cursor position to the end into a new scene?"
	MessageLocked  = "Cannot apply scene changes, because the project is locked."

	MessageFormatLiteral = "Cannot format the selection, because a literal tag outside it would take effect."
)
