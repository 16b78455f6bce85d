package mail

import (
	"context"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/logger"
	"github.com/google/uuid"
)

// NoopSender logs instead of sending. Used when RESEND_API_KEY is not configured.
type NoopSender struct{}

func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

func (s *NoopSender) Send(ctx context.Context, msg Message) (string, error) {
	id := "noop-" + uuid.NewString()
	logger.FromContext(ctx).Info("메일 발송 생략 (noop)",
		"message_id", id,
		"to", maskAll(msg.To),
		"subject", msg.Subject,
		"attachments", len(msg.Attachments),
	)
	return id, nil
}
