package session

import (
	"errors"
	"slices"
	"testing"
)

func TestOnClose(t *testing.T) {
	tests := []struct {
		name      string
		locked    bool
		edit      bool
		answers   []bool
		wantText  string
		wantAsked []string
		unlocked  bool
	}{
		{name: "unchanged", wantText: "one"},
		{name: "declined", edit: true, answers: []bool{false}, wantText: "one", wantAsked: []string{QuestionApply}},
		{name: "accepted", edit: true, answers: []bool{true}, wantText: "one two", wantAsked: []string{QuestionApply}},
		{
			name: "locked declined", locked: true, edit: true, answers: []bool{true, false},
			wantText: "one", wantAsked: []string{QuestionApply, QuestionUnlock},
		},
		{
			name: "locked unlocked", locked: true, edit: true, answers: []bool{true, true},
			wantText: "one two", wantAsked: []string{QuestionApply, QuestionUnlock}, unlocked: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newFakeHost(map[string]string{"u": "one"})
			h.locked = tt.locked
			h.answers = tt.answers
			s := newTestSession(t, h, "u")
			if tt.edit {
				s.Buffer().SetCursor(s.Buffer().End())
				s.Buffer().InsertText(" two\n")
			}

			if err := s.OnClose(); err != nil {
				t.Fatalf("close: %v", err)
			}
			if s.IsOpen() {
				t.Fatalf("session must be closed")
			}
			if got := h.units["u"]; got != tt.wantText {
				t.Fatalf("stored=%q, want %q", got, tt.wantText)
			}
			if !slices.Equal(h.questions, tt.wantAsked) {
				t.Fatalf("questions=%q, want %q", h.questions, tt.wantAsked)
			}
			if h.unlocked != tt.unlocked {
				t.Fatalf("unlocked=%v, want %v", h.unlocked, tt.unlocked)
			}
			wantModified := 0
			if tt.wantText != "one" {
				wantModified = 1
			}
			if h.modified != wantModified {
				t.Fatalf("modified=%d, want %d", h.modified, wantModified)
			}
		})
	}
}

func TestApplyAndClose_SkipsFirstQuestion(t *testing.T) {
	h := newFakeHost(map[string]string{"u": "one"})
	s := newTestSession(t, h, "u")
	s.Buffer().SetCursor(s.Buffer().End())
	s.Buffer().InsertText(" two")

	if err := s.ApplyAndClose(); err != nil {
		t.Fatalf("apply and close: %v", err)
	}
	if len(h.questions) != 0 {
		t.Fatalf("questions=%q, want none", h.questions)
	}
	if got, want := h.units["u"], "one two"; got != want {
		t.Fatalf("stored=%q, want %q", got, want)
	}
}

func TestApplyAndClose_LockedAsksToUnlock(t *testing.T) {
	h := newFakeHost(map[string]string{"u": "one"})
	h.locked = true
	s := newTestSession(t, h, "u")
	s.Buffer().SetCursor(s.Buffer().End())
	s.Buffer().InsertText(" two")

	if err := s.ApplyAndClose(); err != nil {
		t.Fatalf("apply and close: %v", err)
	}
	if !slices.Equal(h.questions, []string{QuestionUnlock}) {
		t.Fatalf("questions=%q, want %q", h.questions, QuestionUnlock)
	}
	if got, want := h.units["u"], "one"; got != want {
		t.Fatalf("stored=%q, want %q", got, want)
	}
}

func TestApply_KeepsSessionOpen(t *testing.T) {
	h := newFakeHost(map[string]string{"u": "one"})
	s := newTestSession(t, h, "u")
	s.Buffer().SetCursor(s.Buffer().End())
	s.Buffer().InsertText(" two")

	if err := s.Apply(); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !s.IsOpen() {
		t.Fatalf("session must stay open")
	}
	if got, want := h.units["u"], "one two"; got != want {
		t.Fatalf("stored=%q, want %q", got, want)
	}
	if h.modified != 1 {
		t.Fatalf("modified=%d, want 1", h.modified)
	}
}

func TestApply_LockedInforms(t *testing.T) {
	h := newFakeHost(map[string]string{"u": "one"})
	h.locked = true
	s := newTestSession(t, h, "u")
	s.Buffer().SetCursor(s.Buffer().End())
	s.Buffer().InsertText(" two")

	if err := s.Apply(); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got, want := h.units["u"], "one"; got != want {
		t.Fatalf("stored=%q, want %q", got, want)
	}
	if len(h.informed) != 1 || h.informed[0] != MessageLocked {
		t.Fatalf("informed=%q, want %q", h.informed, MessageLocked)
	}
}

func TestOnClose_HostError(t *testing.T) {
	h := newFakeHost(map[string]string{"u": "one"})
	s := newTestSession(t, h, "u")
	delete(h.units, "u")

	if err := s.OnClose(); err == nil {
		t.Fatalf("expected host error")
	}
	if s.IsOpen() {
		t.Fatalf("session must close even when the host fails")
	}
	if err := s.OnClose(); !errors.Is(err, ErrClosed) {
		t.Fatalf("err=%v, want %v", err, ErrClosed)
	}
}
