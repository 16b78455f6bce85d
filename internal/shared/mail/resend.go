package mail

import (
	"context"
	"fmt"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/logger"
	"github.com/resend/resend-go/v2"
)

// ResendSender sends email through the Resend API
type ResendSender struct {
	client  *resend.Client
	from    string
	replyTo string
}

func NewResendSender(apiKey, from, replyTo string) *ResendSender {
	return &ResendSender{
		client:  resend.NewClient(apiKey),
		from:    from,
		replyTo: replyTo,
	}
}

func (s *ResendSender) Send(ctx context.Context, msg Message) (string, error) {
	log := logger.FromContext(ctx)

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		ReplyTo: s.replyTo,
	}
	if msg.ReplyTo != "" {
		params.ReplyTo = msg.ReplyTo
	}

	for _, a := range msg.Attachments {
		params.Attachments = append(params.Attachments, &resend.Attachment{
			Filename:    a.Filename,
			ContentType: a.ContentType,
			Content:     a.Content,
			Path:        a.URL,
		})
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		log.Error("메일 발송 실패", "error", err, "to", maskAll(msg.To), "subject", msg.Subject)
		return "", fmt.Errorf("resend 발송 실패: %w", err)
	}

	log.Info("메일 발송 완료", "message_id", sent.Id, "to", maskAll(msg.To))
	return sent.Id, nil
}

func maskAll(addrs []string) []string {
	masked := make([]string, len(addrs))
	for i, a := range addrs {
		masked[i] = logger.MaskEmail(a)
	}
	return masked
}
