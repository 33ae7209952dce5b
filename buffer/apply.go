package buffer

// Apply applies a sequence of text edits in order. Each edit's range is
// interpreted against the buffer state at the time that edit is applied.
//
// v0 semantics:
// - Edit ranges are clamped into current document bounds.
// - Empty range + non-empty text inserts.
// - Cursor moves to the end of the last applied (effective) edit.
// - Selection is cleared if any edit applies.
func (b *Buffer) Apply(edits ...TextEdit) {
	if len(edits) == 0 {
		return
	}

	prev := b.snapshot()
	change := b.beginChange(ChangeSourceLocal)

	anyChanged := false
	lastCursor := b.cursor

	for _, e := range edits {
		nextCursor, applied, changed := b.replaceRange(e.Range, e.Text)
		if !changed {
			continue
		}
		anyChanged = true
		lastCursor = nextCursor
		change.addAppliedEdit(applied)
	}

	if !anyChanged {
		return
	}

	b.cursor = b.clampPos(lastCursor)
	b.sel = selectionState{}
	b.version++
	b.recordUndo(prev)
	b.commitChange(change)
}

// Reset replaces the whole document with text, moves the cursor to the start
// and drops undo/redo history. The previous document is not reachable by Undo.
// The change is recorded as coming from outside the buffer.
func (b *Buffer) Reset(text string) {
	before := b.Text()
	change := b.beginChange(ChangeSourceRemote)

	b.lines = splitLines(text)
	b.cursor = Pos{}
	b.sel = selectionState{}
	b.ResetHistory()
	b.version++
	if applied, ok := replacementAppliedEdit(before, text); ok {
		change.addAppliedEdit(applied)
	}
	b.commitChange(change)
}
