package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dhaba/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, msg *port.EmailMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
