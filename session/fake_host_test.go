package session

import (
	"fmt"
	"testing"

	"go.uber.org/zap/zaptest"
)

type fakeHost struct {
	units  map[string]string
	locked bool

	answers   []bool
	questions []string
	informed  []string
	modified  int
	unlocked  bool
}

func newFakeHost(units map[string]string) *fakeHost {
	return &fakeHost{units: units}
}

func (h *fakeHost) Content(id string) (string, error) {
	text, ok := h.units[id]
	if !ok {
		return "", fmt.Errorf("no unit %q", id)
	}
	return text, nil
}

func (h *fakeHost) SetContent(id, text string) error {
	if _, ok := h.units[id]; !ok {
		return fmt.Errorf("no unit %q", id)
	}
	h.units[id] = text
	return nil
}

func (h *fakeHost) IsLocked() bool { return h.locked }

func (h *fakeHost) Unlock() {
	h.locked = false
	h.unlocked = true
}

func (h *fakeHost) Confirm(q string) bool {
	h.questions = append(h.questions, q)
	if len(h.answers) == 0 {
		return false
	}
	a := h.answers[0]
	h.answers = h.answers[1:]
	return a
}

func (h *fakeHost) Inform(msg string) { h.informed = append(h.informed, msg) }

func (h *fakeHost) NotifyModified() { h.modified++ }

type splitHost struct {
	*fakeHost
	next int
}

func (h *splitHost) SplitUnit(id string) (string, error) {
	if _, ok := h.units[id]; !ok {
		return "", fmt.Errorf("no unit %q", id)
	}
	h.next++
	newID := fmt.Sprintf("%s-%d", id, h.next)
	h.units[newID] = ""
	return newID, nil
}

func newTestSession(t *testing.T, h Host, id string, opts ...Option) *Session {
	t.Helper()
	opts = append([]Option{WithLogger(zaptest.NewLogger(t))}, opts...)
	s, err := New(h, id, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}
