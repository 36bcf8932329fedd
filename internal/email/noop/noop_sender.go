package noop

import (
	"context"
	"log"
	"strings"

	"dhaba/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs messages to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) Send(_ context.Context, msg *port.EmailMessage) error {
	log.Printf("[NOOP EMAIL] to=%s subject=%q\n%s", strings.Join(msg.To, ","), msg.Subject, msg.TextBody)
	return nil
}
