package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dhaba/internal/billing"
	"dhaba/internal/domain"
	"dhaba/internal/port"
)

// DocumentKind distinguishes the financial documents built from an order.
type DocumentKind string

const (
	DocumentReceipt DocumentKind = "receipt"
	DocumentInvoice DocumentKind = "tax_invoice"
)

// BillingDocument is a display-ready receipt or tax invoice. It is rebuilt
// from the stored order on every request; nothing here is persisted, so a
// reprint after a menu edit still reconciles to the order's authoritative
// total.
type BillingDocument struct {
	Kind           DocumentKind       `json:"kind"`
	RestaurantName string             `json:"restaurant_name"`
	GSTIN          string             `json:"gstin,omitempty"`
	Address        string             `json:"address,omitempty"`
	OrderID        uuid.UUID          `json:"order_id"`
	OrderNumber    string             `json:"order_number"`
	OrderType      domain.OrderType   `json:"order_type"`
	TableLabel     string             `json:"table_label,omitempty"`
	CustomerName   string             `json:"customer_name,omitempty"`
	PlacedAt       time.Time          `json:"placed_at"`
	GeneratedAt    time.Time          `json:"generated_at"`
	PaymentMode    string             `json:"payment_mode,omitempty"`
	Breakdown      *billing.Breakdown `json:"breakdown"`
}

// KOTLine is one kitchen order ticket line. No money on a KOT.
type KOTLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// KOTDocument is the kitchen order ticket for an order.
type KOTDocument struct {
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	TableLabel  string    `json:"table_label,omitempty"`
	Lines       []KOTLine `json:"lines"`
	Notes       string    `json:"notes,omitempty"`
	PlacedAt    time.Time `json:"placed_at"`
	GeneratedAt time.Time `json:"generated_at"`
}

// InvoiceService builds billing documents from stored orders.
type InvoiceService interface {
	Receipt(ctx context.Context, tenantID, orderID uuid.UUID) (*BillingDocument, error)
	Invoice(ctx context.Context, tenantID, orderID uuid.UUID) (*BillingDocument, error)
	KOT(ctx context.Context, tenantID, orderID uuid.UUID) (*KOTDocument, error)
	// ComputeBreakdown reruns the billing pipeline for one order.
	ComputeBreakdown(ctx context.Context, tenantID uuid.UUID, order *domain.Order) (*billing.Breakdown, error)
}

type invoiceService struct {
	orderRepo  port.OrderRepository
	tableRepo  port.TableRepository
	menuRepo   port.MenuRepository
	tenantRepo port.TenantRepository
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	orderRepo port.OrderRepository,
	tableRepo port.TableRepository,
	menuRepo port.MenuRepository,
	tenantRepo port.TenantRepository,
) InvoiceService {
	return &invoiceService{
		orderRepo:  orderRepo,
		tableRepo:  tableRepo,
		menuRepo:   menuRepo,
		tenantRepo: tenantRepo,
	}
}

func (s *invoiceService) Receipt(ctx context.Context, tenantID, orderID uuid.UUID) (*BillingDocument, error) {
	return s.document(ctx, tenantID, orderID, DocumentReceipt)
}

func (s *invoiceService) Invoice(ctx context.Context, tenantID, orderID uuid.UUID) (*BillingDocument, error) {
	return s.document(ctx, tenantID, orderID, DocumentInvoice)
}

func (s *invoiceService) document(ctx context.Context, tenantID, orderID uuid.UUID, kind DocumentKind) (*BillingDocument, error) {
	order, err := s.orderRepo.GetByID(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderStatusBilled && order.Status != domain.OrderStatusPaid {
		return nil, domain.ErrOrderNotBilled
	}

	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.ComputeBreakdown(ctx, tenantID, order)
	if err != nil {
		return nil, err
	}

	doc := &BillingDocument{
		Kind:           kind,
		RestaurantName: tenant.Name,
		Address:        tenant.Address,
		OrderID:        order.ID,
		OrderNumber:    order.OrderNumber,
		OrderType:      order.OrderType,
		CustomerName:   order.CustomerName,
		PlacedAt:       order.CreatedAt,
		GeneratedAt:    time.Now().UTC(),
		Breakdown:      breakdown,
	}
	if kind == DocumentInvoice {
		doc.GSTIN = tenant.GSTIN
	}
	if order.PaymentMode != nil {
		doc.PaymentMode = string(*order.PaymentMode)
	}
	doc.TableLabel = s.tableLabel(ctx, tenantID, order.TableID)

	return doc, nil
}

func (s *invoiceService) KOT(ctx context.Context, tenantID, orderID uuid.UUID) (*KOTDocument, error) {
	order, err := s.orderRepo.GetByID(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == domain.OrderStatusCancelled {
		return nil, domain.ErrOrderNotFound
	}

	items, err := billing.ParseItems(order.Items)
	if err != nil {
		return nil, fmt.Errorf("invoiceService.KOT: %w", err)
	}

	lines := make([]KOTLine, 0, len(items))
	for _, it := range items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		lines = append(lines, KOTLine{Name: it.Name, Quantity: qty})
	}

	return &KOTDocument{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		TableLabel:  s.tableLabel(ctx, tenantID, order.TableID),
		Lines:       lines,
		Notes:       order.Notes,
		PlacedAt:    order.CreatedAt,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// ComputeBreakdown reruns the billing pipeline over the order's stored lines.
// The persisted order total is passed through as the authoritative figure, so
// the document always shows it as TOTAL with any divergence surfaced as
// round-off.
func (s *invoiceService) ComputeBreakdown(ctx context.Context, tenantID uuid.UUID, order *domain.Order) (*billing.Breakdown, error) {
	lines, err := billing.ParseItems(order.Items)
	if err != nil {
		return nil, fmt.Errorf("invoiceService: parsing stored lines: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(lines))
	for _, l := range lines {
		if l.ItemID != uuid.Nil {
			ids = append(ids, l.ItemID)
		}
	}
	catalog, err := s.menuRepo.TaxCatalog(ctx, tenantID, ids)
	if err != nil {
		return nil, err
	}

	return billing.Compute(lines, catalog, order.Total), nil
}

func (s *invoiceService) tableLabel(ctx context.Context, tenantID uuid.UUID, tableID *uuid.UUID) string {
	if tableID == nil {
		return ""
	}
	table, err := s.tableRepo.GetByID(ctx, tenantID, *tableID)
	if err != nil {
		return ""
	}
	return table.Label
}
