package mail

import "context"

// Attachment is either inline content or a URL the provider downloads at send time
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
	URL         string
}

// Message is a single outgoing email
type Message struct {
	To          []string
	Subject     string
	HTML        string
	ReplyTo     string
	Attachments []Attachment
}

// Sender delivers email. Send returns the provider message id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}
