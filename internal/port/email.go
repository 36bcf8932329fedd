package port

import "context"

// EmailMessage is a plain-text email with an optional HTML alternative.
type EmailMessage struct {
	To       []string
	Subject  string
	TextBody string
	HTMLBody string
}

// EmailSender delivers transactional email (day-close summaries).
type EmailSender interface {
	Send(ctx context.Context, msg *EmailMessage) error
}
