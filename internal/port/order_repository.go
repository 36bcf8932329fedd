package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"dhaba/internal/domain"
)

// OrderListFilter narrows order listings.
type OrderListFilter struct {
	TableID *uuid.UUID
	Status  *domain.OrderStatus
	From    *time.Time
	To      *time.Time
	Offset  int
	Limit   int
}

// OrderRepository manages persisted orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error)
	List(ctx context.Context, tenantID uuid.UUID, filter OrderListFilter) ([]domain.Order, int, error)
	Update(ctx context.Context, order *domain.Order) error
	// ListSettled returns paid orders whose settlement falls in [from, to),
	// ordered by settlement time. Feeds reporting and the day-close email.
	ListSettled(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]domain.Order, error)
	// NextOrderNumber hands out the tenant's next sequential order number.
	NextOrderNumber(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

// TableRepository manages dining tables.
type TableRepository interface {
	Create(ctx context.Context, table *domain.DiningTable) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.DiningTable, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]domain.DiningTable, error)
	Update(ctx context.Context, table *domain.DiningTable) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}
