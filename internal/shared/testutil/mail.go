package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/mail"
)

var errMailRejected = errors.New("testutil: mail rejected")

// RecordingSender captures outgoing mail instead of sending it
type RecordingSender struct {
	mu       sync.Mutex
	messages []mail.Message

	// FailFor rejects mail addressed to these recipients
	FailFor map[string]bool
	// OnSend runs before a message is recorded
	OnSend func(msg mail.Message)
}

func NewRecordingSender() *RecordingSender {
	return &RecordingSender{FailFor: map[string]bool{}}
}

func (s *RecordingSender) Send(_ context.Context, msg mail.Message) (string, error) {
	if s.OnSend != nil {
		s.OnSend(msg)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, to := range msg.To {
		if s.FailFor[to] {
			return "", fmt.Errorf("to=%s: %w", to, errMailRejected)
		}
	}
	s.messages = append(s.messages, msg)
	return fmt.Sprintf("msg-%d", len(s.messages)), nil
}

// Messages returns a copy of every recorded message
func (s *RecordingSender) Messages() []mail.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]mail.Message(nil), s.messages...)
}

var _ mail.Sender = (*RecordingSender)(nil)
