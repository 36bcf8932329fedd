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

type orderRepo struct {
	db *sqlx.DB
}

// NewOrderRepo creates a new PostgreSQL-backed OrderRepository.
func NewOrderRepo(db *sqlx.DB) port.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, order *domain.Order) error {
	order.ID = uuid.New()
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	query := `INSERT INTO orders (id, tenant_id, table_id, order_number, order_type, status, items, total, payment_mode, customer_name, customer_phone, notes, created_by, created_at, updated_at, settled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.ExecContext(ctx, query,
		order.ID, order.TenantID, order.TableID, order.OrderNumber, order.OrderType,
		order.Status, order.Items, order.Total, order.PaymentMode, order.CustomerName,
		order.CustomerPhone, order.Notes, order.CreatedBy, order.CreatedAt, order.UpdatedAt,
		order.SettledAt)
	if err != nil {
		return fmt.Errorf("orderRepo.Create: %w", err)
	}
	return nil
}

func (r *orderRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error) {
	var order domain.Order
	err := r.db.GetContext(ctx, &order,
		"SELECT * FROM orders WHERE tenant_id = $1 AND id = $2", tenantID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("orderRepo.GetByID: %w", err)
	}
	return &order, nil
}

func (r *orderRepo) List(ctx context.Context, tenantID uuid.UUID, filter port.OrderListFilter) ([]domain.Order, int, error) {
	clause := " WHERE tenant_id = $1"
	args := []interface{}{tenantID}
	argN := 2

	if filter.TableID != nil {
		clause += fmt.Sprintf(" AND table_id = $%d", argN)
		args = append(args, *filter.TableID)
		argN++
	}
	if filter.Status != nil {
		clause += fmt.Sprintf(" AND status = $%d", argN)
		args = append(args, *filter.Status)
		argN++
	}
	if filter.From != nil {
		clause += fmt.Sprintf(" AND created_at >= $%d", argN)
		args = append(args, *filter.From)
		argN++
	}
	if filter.To != nil {
		clause += fmt.Sprintf(" AND created_at < $%d", argN)
		args = append(args, *filter.To)
		argN++
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM orders"+clause, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("orderRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM orders%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		clause, argN, argN+1)
	args = append(args, filter.Limit, filter.Offset)

	var orders []domain.Order
	err = r.db.SelectContext(ctx, &orders, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("orderRepo.List: %w", err)
	}
	return orders, total, nil
}

func (r *orderRepo) Update(ctx context.Context, order *domain.Order) error {
	order.UpdatedAt = time.Now().UTC()
	query := `UPDATE orders SET table_id = $1, status = $2, items = $3, total = $4, payment_mode = $5, customer_name = $6, customer_phone = $7, notes = $8, updated_at = $9, settled_at = $10
		WHERE tenant_id = $11 AND id = $12`
	result, err := r.db.ExecContext(ctx, query,
		order.TableID, order.Status, order.Items, order.Total, order.PaymentMode,
		order.CustomerName, order.CustomerPhone, order.Notes, order.UpdatedAt, order.SettledAt,
		order.TenantID, order.ID)
	if err != nil {
		return fmt.Errorf("orderRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *orderRepo) ListSettled(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.SelectContext(ctx, &orders, `
		SELECT * FROM orders
		WHERE tenant_id = $1 AND status = $2 AND settled_at >= $3 AND settled_at < $4
		ORDER BY settled_at`, tenantID, domain.OrderStatusPaid, from, to)
	if err != nil {
		return nil, fmt.Errorf("orderRepo.ListSettled: %w", err)
	}
	return orders, nil
}

func (r *orderRepo) NextOrderNumber(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var next int64
	err := r.db.GetContext(ctx, &next, `
		INSERT INTO order_counters (tenant_id, counter)
		VALUES ($1, 1)
		ON CONFLICT (tenant_id) DO UPDATE SET counter = order_counters.counter + 1
		RETURNING counter`, tenantID)
	if err != nil {
		return 0, fmt.Errorf("orderRepo.NextOrderNumber: %w", err)
	}
	return next, nil
}
