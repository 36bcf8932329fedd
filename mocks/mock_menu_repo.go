package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"dhaba/internal/billing"
	"dhaba/internal/domain"
)

// MockMenuRepo is a mock implementation of port.MenuRepository.
type MockMenuRepo struct {
	mock.Mock
}

func (m *MockMenuRepo) CreateCategory(ctx context.Context, cat *domain.MenuCategory) error {
	args := m.Called(ctx, cat)
	return args.Error(0)
}

func (m *MockMenuRepo) GetCategory(ctx context.Context, tenantID, id uuid.UUID) (*domain.MenuCategory, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuCategory), args.Error(1)
}

func (m *MockMenuRepo) ListCategories(ctx context.Context, tenantID uuid.UUID) ([]domain.MenuCategory, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuCategory), args.Error(1)
}

func (m *MockMenuRepo) UpdateCategory(ctx context.Context, cat *domain.MenuCategory) error {
	args := m.Called(ctx, cat)
	return args.Error(0)
}

func (m *MockMenuRepo) DeleteCategory(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockMenuRepo) CreateItem(ctx context.Context, item *domain.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepo) GetItem(ctx context.Context, tenantID, id uuid.UUID) (*domain.MenuItem, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MockMenuRepo) ListItems(ctx context.Context, tenantID uuid.UUID, categoryID *uuid.UUID) ([]domain.MenuItem, error) {
	args := m.Called(ctx, tenantID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MockMenuRepo) UpdateItem(ctx context.Context, item *domain.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepo) DeleteItem(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockMenuRepo) TaxCatalog(ctx context.Context, tenantID uuid.UUID, itemIDs []uuid.UUID) (billing.Catalog, error) {
	args := m.Called(ctx, tenantID, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(billing.Catalog), args.Error(1)
}
