package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"dhaba/internal/domain"
)

// MockTableRepo is a mock implementation of port.TableRepository.
type MockTableRepo struct {
	mock.Mock
}

func (m *MockTableRepo) Create(ctx context.Context, table *domain.DiningTable) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *MockTableRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.DiningTable, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DiningTable), args.Error(1)
}

func (m *MockTableRepo) List(ctx context.Context, tenantID uuid.UUID) ([]domain.DiningTable, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DiningTable), args.Error(1)
}

func (m *MockTableRepo) Update(ctx context.Context, table *domain.DiningTable) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *MockTableRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
