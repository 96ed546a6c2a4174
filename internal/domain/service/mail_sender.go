package service

import "context"

// MailSender defines the interface for delivering verification and reset emails.
type MailSender interface {
	// Send delivers a single plain-text email message.
	Send(ctx context.Context, to, subject, body string) error
}
