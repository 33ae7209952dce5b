package session

import (
	"fmt"

	"go.uber.org/zap"
)

// OnClose ends the session. Unapplied changes are written back only if the
// user agrees, and on a locked host only after a second confirmation that
// unlocks it. The session is closed even when writing fails.
func (s *Session) OnClose() error {
	if !s.open {
		return ErrClosed
	}
	defer s.shutdown()
	return s.commit(true)
}

// ApplyAndClose is OnClose without the first question.
func (s *Session) ApplyAndClose() error {
	if !s.open {
		return ErrClosed
	}
	defer s.shutdown()
	return s.commit(false)
}

// Apply writes changes back and keeps the session open. A locked host is
// told why nothing was written.
func (s *Session) Apply() error {
	if !s.open {
		return ErrClosed
	}
	text, changed, err := s.pending()
	if err != nil || !changed {
		return err
	}
	if s.host.IsLocked() {
		s.host.Inform(MessageLocked)
		s.log.Debug("Apply refused, host is locked")
		return nil
	}
	return s.write(text)
}

func (s *Session) commit(ask bool) error {
	text, changed, err := s.pending()
	if err != nil || !changed {
		return err
	}
	if ask && !s.host.Confirm(QuestionApply) {
		s.log.Debug("Changes discarded")
		return nil
	}
	if s.host.IsLocked() {
		if !s.host.Confirm(QuestionUnlock) {
			s.log.Debug("Changes discarded, host stays locked")
			return nil
		}
		s.host.Unlock()
	}
	return s.write(text)
}

// pending returns the extracted text and whether it differs from storage.
func (s *Session) pending() (string, bool, error) {
	text := s.Extract()
	stored, err := s.host.Content(s.unitID)
	if err != nil {
		return "", false, fmt.Errorf("unable to read unit %q: %w", s.unitID, err)
	}
	if text == stored {
		return text, false, nil
	}
	return text, true, nil
}

func (s *Session) write(text string) error {
	if err := s.host.SetContent(s.unitID, text); err != nil {
		return fmt.Errorf("unable to store unit %q: %w", s.unitID, err)
	}
	s.host.NotifyModified()
	s.log.Info("Unit updated", zap.Int("words", s.WordCount().Total))
	return nil
}
