package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"dhaba/internal/domain"
	"dhaba/internal/port"
)

type tableRepo struct {
	db *sqlx.DB
}

// NewTableRepo creates a new PostgreSQL-backed TableRepository.
func NewTableRepo(db *sqlx.DB) port.TableRepository {
	return &tableRepo{db: db}
}

func (r *tableRepo) Create(ctx context.Context, table *domain.DiningTable) error {
	table.ID = uuid.New()
	now := time.Now().UTC()
	table.CreatedAt = now
	table.UpdatedAt = now

	query := `INSERT INTO dining_tables (id, tenant_id, label, capacity, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		table.ID, table.TenantID, table.Label, table.Capacity, table.IsActive,
		table.CreatedAt, table.UpdatedAt)
	if err != nil {
		return fmt.Errorf("tableRepo.Create: %w", err)
	}
	return nil
}

func (r *tableRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.DiningTable, error) {
	var table domain.DiningTable
	err := r.db.GetContext(ctx, &table,
		"SELECT * FROM dining_tables WHERE tenant_id = $1 AND id = $2", tenantID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTableNotFound
		}
		return nil, fmt.Errorf("tableRepo.GetByID: %w", err)
	}
	return &table, nil
}

func (r *tableRepo) List(ctx context.Context, tenantID uuid.UUID) ([]domain.DiningTable, error) {
	var tables []domain.DiningTable
	err := r.db.SelectContext(ctx, &tables,
		"SELECT * FROM dining_tables WHERE tenant_id = $1 ORDER BY label", tenantID)
	if err != nil {
		return nil, fmt.Errorf("tableRepo.List: %w", err)
	}
	return tables, nil
}

func (r *tableRepo) Update(ctx context.Context, table *domain.DiningTable) error {
	table.UpdatedAt = time.Now().UTC()
	query := `UPDATE dining_tables SET label = $1, capacity = $2, is_active = $3, updated_at = $4
		WHERE tenant_id = $5 AND id = $6`
	result, err := r.db.ExecContext(ctx, query,
		table.Label, table.Capacity, table.IsActive, table.UpdatedAt, table.TenantID, table.ID)
	if err != nil {
		return fmt.Errorf("tableRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrTableNotFound
	}
	return nil
}

func (r *tableRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM dining_tables WHERE tenant_id = $1 AND id = $2", tenantID, id)
	if err != nil {
		return fmt.Errorf("tableRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrTableNotFound
	}
	return nil
}
