package port

import (
	"context"

	"github.com/google/uuid"

	"dhaba/internal/billing"
	"dhaba/internal/domain"
)

// MenuRepository manages menu categories and items for a tenant.
type MenuRepository interface {
	CreateCategory(ctx context.Context, cat *domain.MenuCategory) error
	GetCategory(ctx context.Context, tenantID, id uuid.UUID) (*domain.MenuCategory, error)
	ListCategories(ctx context.Context, tenantID uuid.UUID) ([]domain.MenuCategory, error)
	UpdateCategory(ctx context.Context, cat *domain.MenuCategory) error
	DeleteCategory(ctx context.Context, tenantID, id uuid.UUID) error

	CreateItem(ctx context.Context, item *domain.MenuItem) error
	GetItem(ctx context.Context, tenantID, id uuid.UUID) (*domain.MenuItem, error)
	ListItems(ctx context.Context, tenantID uuid.UUID, categoryID *uuid.UUID) ([]domain.MenuItem, error)
	UpdateItem(ctx context.Context, item *domain.MenuItem) error
	DeleteItem(ctx context.Context, tenantID, id uuid.UUID) error

	// TaxCatalog returns the inheritable tax attributes (item and owning
	// category levels) for the given menu item ids. Ids that no longer exist
	// are simply absent from the result; the billing engine then falls back
	// to the attributes stored on the order line itself.
	TaxCatalog(ctx context.Context, tenantID uuid.UUID, itemIDs []uuid.UUID) (billing.Catalog, error)
}
