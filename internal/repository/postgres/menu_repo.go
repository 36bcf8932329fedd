package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"dhaba/internal/billing"
	"dhaba/internal/domain"
	"dhaba/internal/port"
)

type menuRepo struct {
	db *sqlx.DB
}

// NewMenuRepo creates a new PostgreSQL-backed MenuRepository.
func NewMenuRepo(db *sqlx.DB) port.MenuRepository {
	return &menuRepo{db: db}
}

func (r *menuRepo) CreateCategory(ctx context.Context, cat *domain.MenuCategory) error {
	cat.ID = uuid.New()
	now := time.Now().UTC()
	cat.CreatedAt = now
	cat.UpdatedAt = now

	query := `INSERT INTO menu_categories (id, tenant_id, name, sort_order, gst_rate, gst_mode, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		cat.ID, cat.TenantID, cat.Name, cat.SortOrder, cat.GSTRate, cat.GSTMode,
		cat.IsActive, cat.CreatedAt, cat.UpdatedAt)
	if err != nil {
		return fmt.Errorf("menuRepo.CreateCategory: %w", err)
	}
	return nil
}

func (r *menuRepo) GetCategory(ctx context.Context, tenantID, id uuid.UUID) (*domain.MenuCategory, error) {
	var cat domain.MenuCategory
	err := r.db.GetContext(ctx, &cat,
		"SELECT * FROM menu_categories WHERE tenant_id = $1 AND id = $2", tenantID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("menuRepo.GetCategory: %w", err)
	}
	return &cat, nil
}

func (r *menuRepo) ListCategories(ctx context.Context, tenantID uuid.UUID) ([]domain.MenuCategory, error) {
	var cats []domain.MenuCategory
	err := r.db.SelectContext(ctx, &cats,
		"SELECT * FROM menu_categories WHERE tenant_id = $1 ORDER BY sort_order, name", tenantID)
	if err != nil {
		return nil, fmt.Errorf("menuRepo.ListCategories: %w", err)
	}
	return cats, nil
}

func (r *menuRepo) UpdateCategory(ctx context.Context, cat *domain.MenuCategory) error {
	cat.UpdatedAt = time.Now().UTC()
	query := `UPDATE menu_categories SET name = $1, sort_order = $2, gst_rate = $3, gst_mode = $4, is_active = $5, updated_at = $6
		WHERE tenant_id = $7 AND id = $8`
	result, err := r.db.ExecContext(ctx, query,
		cat.Name, cat.SortOrder, cat.GSTRate, cat.GSTMode, cat.IsActive,
		cat.UpdatedAt, cat.TenantID, cat.ID)
	if err != nil {
		return fmt.Errorf("menuRepo.UpdateCategory: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *menuRepo) DeleteCategory(ctx context.Context, tenantID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM menu_categories WHERE tenant_id = $1 AND id = $2", tenantID, id)
	if err != nil {
		return fmt.Errorf("menuRepo.DeleteCategory: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *menuRepo) CreateItem(ctx context.Context, item *domain.MenuItem) error {
	item.ID = uuid.New()
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	query := `INSERT INTO menu_items (id, tenant_id, category_id, name, description, price, gst_rate, gst_mode, image_key, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.TenantID, item.CategoryID, item.Name, item.Description, item.Price,
		item.GSTRate, item.GSTMode, item.ImageKey, item.IsAvailable, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("menuRepo.CreateItem: %w", err)
	}
	return nil
}

func (r *menuRepo) GetItem(ctx context.Context, tenantID, id uuid.UUID) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.db.GetContext(ctx, &item,
		"SELECT * FROM menu_items WHERE tenant_id = $1 AND id = $2", tenantID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("menuRepo.GetItem: %w", err)
	}
	return &item, nil
}

func (r *menuRepo) ListItems(ctx context.Context, tenantID uuid.UUID, categoryID *uuid.UUID) ([]domain.MenuItem, error) {
	query := "SELECT * FROM menu_items WHERE tenant_id = $1"
	args := []interface{}{tenantID}
	if categoryID != nil {
		query += " AND category_id = $2"
		args = append(args, *categoryID)
	}
	query += " ORDER BY name"

	var items []domain.MenuItem
	err := r.db.SelectContext(ctx, &items, query, args...)
	if err != nil {
		return nil, fmt.Errorf("menuRepo.ListItems: %w", err)
	}
	return items, nil
}

func (r *menuRepo) UpdateItem(ctx context.Context, item *domain.MenuItem) error {
	item.UpdatedAt = time.Now().UTC()
	query := `UPDATE menu_items SET category_id = $1, name = $2, description = $3, price = $4, gst_rate = $5, gst_mode = $6, image_key = $7, is_available = $8, updated_at = $9
		WHERE tenant_id = $10 AND id = $11`
	result, err := r.db.ExecContext(ctx, query,
		item.CategoryID, item.Name, item.Description, item.Price, item.GSTRate, item.GSTMode,
		item.ImageKey, item.IsAvailable, item.UpdatedAt, item.TenantID, item.ID)
	if err != nil {
		return fmt.Errorf("menuRepo.UpdateItem: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

func (r *menuRepo) DeleteItem(ctx context.Context, tenantID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM menu_items WHERE tenant_id = $1 AND id = $2", tenantID, id)
	if err != nil {
		return fmt.Errorf("menuRepo.DeleteItem: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

// taxCatalogRow joins each requested item with its category's tax attributes.
type taxCatalogRow struct {
	ItemID          uuid.UUID `db:"item_id"`
	ItemGSTRate     *float64  `db:"item_gst_rate"`
	ItemGSTMode     string    `db:"item_gst_mode"`
	CategoryGSTRate *float64  `db:"category_gst_rate"`
	CategoryGSTMode string    `db:"category_gst_mode"`
}

func (r *menuRepo) TaxCatalog(ctx context.Context, tenantID uuid.UUID, itemIDs []uuid.UUID) (billing.Catalog, error) {
	catalog := billing.Catalog{}
	if len(itemIDs) == 0 {
		return catalog, nil
	}

	query, args, err := sqlx.In(`
		SELECT i.id AS item_id,
		       i.gst_rate AS item_gst_rate,
		       COALESCE(i.gst_mode, '') AS item_gst_mode,
		       c.gst_rate AS category_gst_rate,
		       COALESCE(c.gst_mode, '') AS category_gst_mode
		FROM menu_items i
		JOIN menu_categories c ON c.id = i.category_id
		WHERE i.tenant_id = ? AND i.id IN (?)`, tenantID, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("menuRepo.TaxCatalog: %w", err)
	}
	query = r.db.Rebind(query)

	var rows []taxCatalogRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("menuRepo.TaxCatalog: %w", err)
	}

	for _, row := range rows {
		catalog[row.ItemID] = billing.CatalogEntry{
			Item:     billing.TaxAttrs{Rate: row.ItemGSTRate, Mode: row.ItemGSTMode},
			Category: billing.TaxAttrs{Rate: row.CategoryGSTRate, Mode: row.CategoryGSTMode},
		}
	}
	return catalog, nil
}
