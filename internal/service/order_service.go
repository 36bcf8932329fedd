package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"dhaba/internal/billing"
	"dhaba/internal/domain"
	"dhaba/internal/port"
)

// OrderItemInput is one requested line on a new or amended order.
type OrderItemInput struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderInput is the DTO for placing an order.
type CreateOrderInput struct {
	TableID       *uuid.UUID       `json:"table_id"`
	OrderType     domain.OrderType `json:"order_type" binding:"required"`
	Items         []OrderItemInput `json:"items" binding:"required"`
	CustomerName  string           `json:"customer_name"`
	CustomerPhone string           `json:"customer_phone"`
	Notes         string           `json:"notes"`
}

// UpdateOrderItemsInput replaces the line items of a still-open order.
type UpdateOrderItemsInput struct {
	Items []OrderItemInput `json:"items" binding:"required"`
}

// SettleOrderInput is the DTO for settling a billed order. TenderedTotal,
// when given, becomes the authoritative order total (a cashier rounding the
// bill to the nearest rupee); otherwise the computed total stands.
type SettleOrderInput struct {
	PaymentMode   domain.PaymentMode `json:"payment_mode" binding:"required"`
	TenderedTotal *float64           `json:"tendered_total"`
}

// OrderService defines the order workflow contract.
type OrderService interface {
	Create(ctx context.Context, tenantID, createdBy uuid.UUID, input CreateOrderInput) (*domain.Order, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error)
	List(ctx context.Context, tenantID uuid.UUID, filter port.OrderListFilter) ([]domain.Order, int, error)
	UpdateItems(ctx context.Context, tenantID, id uuid.UUID, input UpdateOrderItemsInput) (*domain.Order, error)
	ChangeStatus(ctx context.Context, tenantID, id uuid.UUID, to domain.OrderStatus) (*domain.Order, error)
	Settle(ctx context.Context, tenantID, id uuid.UUID, input SettleOrderInput) (*domain.Order, error)
	Cancel(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error)
}

type orderService struct {
	orderRepo port.OrderRepository
	tableRepo port.TableRepository
	menuRepo  port.MenuRepository
}

// NewOrderService creates a new OrderService implementation.
func NewOrderService(
	orderRepo port.OrderRepository,
	tableRepo port.TableRepository,
	menuRepo port.MenuRepository,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		tableRepo: tableRepo,
		menuRepo:  menuRepo,
	}
}

func (s *orderService) Create(ctx context.Context, tenantID, createdBy uuid.UUID, input CreateOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrOrderEmpty
	}
	if input.OrderType == domain.OrderTypeDineIn {
		if input.TableID == nil {
			return nil, domain.ErrTableNotFound
		}
		if _, err := s.tableRepo.GetByID(ctx, tenantID, *input.TableID); err != nil {
			return nil, err
		}
	}

	items, err := s.priceLines(ctx, tenantID, input.Items)
	if err != nil {
		return nil, err
	}

	number, err := s.orderRepo.NextOrderNumber(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		TenantID:      tenantID,
		TableID:       input.TableID,
		OrderNumber:   fmt.Sprintf("ORD-%05d", number),
		OrderType:     input.OrderType,
		Status:        domain.OrderStatusPlaced,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		Notes:         input.Notes,
		CreatedBy:     createdBy,
	}
	if err := s.applyLines(ctx, order, items); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	log.Printf("orderService.Create: order %s (%s) placed for tenant %s, total %.2f",
		order.OrderNumber, order.ID, tenantID, order.Total)
	return order, nil
}

func (s *orderService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, tenantID, id)
}

func (s *orderService) List(ctx context.Context, tenantID uuid.UUID, filter port.OrderListFilter) ([]domain.Order, int, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.orderRepo.List(ctx, tenantID, filter)
}

func (s *orderService) UpdateItems(ctx context.Context, tenantID, id uuid.UUID, input UpdateOrderItemsInput) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderStatusPlaced && order.Status != domain.OrderStatusPreparing {
		return nil, domain.ErrInvalidStatusChange
	}
	if len(input.Items) == 0 {
		return nil, domain.ErrOrderEmpty
	}

	items, err := s.priceLines(ctx, tenantID, input.Items)
	if err != nil {
		return nil, err
	}
	if err := s.applyLines(ctx, order, items); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) ChangeStatus(ctx context.Context, tenantID, id uuid.UUID, to domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if !domain.ValidOrderStatusTransition(order.Status, to) {
		return nil, domain.ErrInvalidStatusChange
	}
	if to == domain.OrderStatusPaid {
		// Settlement goes through Settle so a payment mode is always captured.
		return nil, domain.ErrInvalidStatusChange
	}

	if to == domain.OrderStatusBilled {
		// Re-reconcile against the current stored lines so the persisted
		// total is the authoritative figure every later reprint shows.
		if err := s.rebill(ctx, tenantID, order); err != nil {
			return nil, err
		}
	}

	order.Status = to
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) Settle(ctx context.Context, tenantID, id uuid.UUID, input SettleOrderInput) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if order.Status == domain.OrderStatusPaid {
		return nil, domain.ErrOrderAlreadySettled
	}
	if order.Status != domain.OrderStatusBilled {
		return nil, domain.ErrOrderNotBilled
	}
	if !domain.ValidPaymentModes[input.PaymentMode] {
		return nil, domain.ErrInvalidPaymentMode
	}

	if input.TenderedTotal != nil && *input.TenderedTotal > 0 {
		order.Total = billing.Round2(*input.TenderedTotal)
	}

	order.Status = domain.OrderStatusPaid
	order.PaymentMode = &input.PaymentMode
	settled := time.Now().UTC()
	order.SettledAt = &settled

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	log.Printf("orderService.Settle: order %s settled via %s, total %.2f",
		order.OrderNumber, input.PaymentMode, order.Total)
	return order, nil
}

func (s *orderService) Cancel(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if !order.CanCancel() {
		return nil, domain.ErrOrderNotCancellable
	}
	order.Status = domain.OrderStatusCancelled
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// priceLines turns requested item/quantity pairs into billing inputs priced
// from the current menu.
func (s *orderService) priceLines(ctx context.Context, tenantID uuid.UUID, requested []OrderItemInput) ([]billing.LineInput, error) {
	lines := make([]billing.LineInput, 0, len(requested))
	for _, req := range requested {
		item, err := s.menuRepo.GetItem(ctx, tenantID, req.ItemID)
		if err != nil {
			return nil, err
		}
		if !item.IsAvailable {
			return nil, domain.ErrMenuItemUnavailable
		}
		price := item.Price
		lines = append(lines, billing.LineInput{
			ItemID:    item.ID,
			Name:      item.Name,
			Quantity:  req.Quantity,
			UnitPrice: &price,
		})
	}
	return lines, nil
}

// applyLines runs the billing pipeline over the priced lines and snapshots
// the reconciled breakdown onto the order: each stored line carries its
// resolved rate, mode, subtotal and total, so reprints reconcile against
// consistent values even after the menu changes.
func (s *orderService) applyLines(ctx context.Context, order *domain.Order, lines []billing.LineInput) error {
	ids := make([]uuid.UUID, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ItemID)
	}

	catalog, err := s.menuRepo.TaxCatalog(ctx, order.TenantID, ids)
	if err != nil {
		return err
	}

	breakdown := billing.Compute(lines, catalog, nil)

	raw, err := json.Marshal(breakdown.Lines)
	if err != nil {
		return fmt.Errorf("orderService: marshaling lines: %w", err)
	}
	order.Items = raw
	order.Total = breakdown.Totals.ComputedTotal
	return nil
}

// rebill recomputes the order total from its stored lines just before the
// order is billed, making the persisted total authoritative from then on.
func (s *orderService) rebill(ctx context.Context, tenantID uuid.UUID, order *domain.Order) error {
	lines, err := billing.ParseItems(order.Items)
	if err != nil {
		return fmt.Errorf("orderService: parsing stored lines: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(lines))
	for _, l := range lines {
		if l.ItemID != uuid.Nil {
			ids = append(ids, l.ItemID)
		}
	}
	catalog, err := s.menuRepo.TaxCatalog(ctx, tenantID, ids)
	if err != nil {
		return err
	}

	breakdown := billing.Compute(lines, catalog, nil)
	order.Total = breakdown.Totals.ComputedTotal
	return nil
}
