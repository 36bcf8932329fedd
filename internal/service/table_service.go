package service

import (
	"context"

	"github.com/google/uuid"

	"dhaba/internal/domain"
	"dhaba/internal/port"
)

// CreateTableInput is the DTO for creating a dining table.
type CreateTableInput struct {
	Label    string `json:"label" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
}

// UpdateTableInput is the DTO for updating a dining table.
type UpdateTableInput struct {
	Label    *string `json:"label"`
	Capacity *int    `json:"capacity"`
	IsActive *bool   `json:"is_active"`
}

// TableService defines the dining table management contract.
type TableService interface {
	Create(ctx context.Context, tenantID uuid.UUID, input CreateTableInput) (*domain.DiningTable, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.DiningTable, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]domain.DiningTable, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, input UpdateTableInput) (*domain.DiningTable, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type tableService struct {
	repo port.TableRepository
}

// NewTableService creates a new TableService implementation.
func NewTableService(repo port.TableRepository) TableService {
	return &tableService{repo: repo}
}

func (s *tableService) Create(ctx context.Context, tenantID uuid.UUID, input CreateTableInput) (*domain.DiningTable, error) {
	table := &domain.DiningTable{
		TenantID: tenantID,
		Label:    input.Label,
		Capacity: input.Capacity,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

func (s *tableService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.DiningTable, error) {
	return s.repo.GetByID(ctx, tenantID, id)
}

func (s *tableService) List(ctx context.Context, tenantID uuid.UUID) ([]domain.DiningTable, error) {
	return s.repo.List(ctx, tenantID)
}

func (s *tableService) Update(ctx context.Context, tenantID, id uuid.UUID, input UpdateTableInput) (*domain.DiningTable, error) {
	table, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if input.Label != nil {
		table.Label = *input.Label
	}
	if input.Capacity != nil {
		table.Capacity = *input.Capacity
	}
	if input.IsActive != nil {
		table.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

func (s *tableService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, id)
}
