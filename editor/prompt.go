package editor

import "sync"

// Prompt answers host questions while the editor owns the terminal. The
// editor asks in its status row first and arms the answer before running the
// command; a question nobody armed is declined and shown as a message.
type Prompt struct {
	armed   bool
	answer  bool
	message string
}

func NewPrompt() *Prompt { return &Prompt{} }

func (p *Prompt) Confirm(question string) bool {
	if !p.armed {
		p.message = question
		return false
	}
	return p.answer
}

func (p *Prompt) Inform(message string) { p.message = message }

func (p *Prompt) arm(answer bool) { p.armed, p.answer = true, answer }

func (p *Prompt) disarm() { p.armed, p.answer = false, false }

// takeMessage returns the last message and forgets it.
func (p *Prompt) takeMessage() string {
	msg := p.message
	p.message = ""
	return msg
}

// Status keeps the latest word count report of a session. Set may be called
// from the goroutine that flips shared preferences.
type Status struct {
	mu   sync.Mutex
	text string
}

func (s *Status) Set(text string) {
	s.mu.Lock()
	s.text = text
	s.mu.Unlock()
}

func (s *Status) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}
