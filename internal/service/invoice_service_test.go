package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"dhaba/internal/billing"
	"dhaba/internal/domain"
	"dhaba/internal/service"
	"dhaba/mocks"
)

func newInvoiceService() (service.InvoiceService, *mocks.MockOrderRepo, *mocks.MockTableRepo, *mocks.MockMenuRepo, *mocks.MockTenantRepo) {
	orderRepo := new(mocks.MockOrderRepo)
	tableRepo := new(mocks.MockTableRepo)
	menuRepo := new(mocks.MockMenuRepo)
	tenantRepo := new(mocks.MockTenantRepo)
	return service.NewInvoiceService(orderRepo, tableRepo, menuRepo, tenantRepo), orderRepo, tableRepo, menuRepo, tenantRepo
}

func storedLines(t *testing.T, lines []billing.LineBreakdown) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(lines)
	assert.NoError(t, err)
	return raw
}

func TestInvoiceService_Receipt_ReconcilesToOrderTotal(t *testing.T) {
	svc, orderRepo, _, menuRepo, tenantRepo := newInvoiceService()

	tenantID := uuid.New()
	orderID := uuid.New()
	itemID := uuid.New()

	items := storedLines(t, []billing.LineBreakdown{{
		ItemID: itemID, Name: "Paneer Tikka", Quantity: 2,
		UnitPrice: 250, Subtotal: 500, GSTRate: 5, GSTMode: billing.ModeExclude,
		GSTAmount: 25, Total: 525,
	}})
	mode := domain.PaymentModeCash
	orderRepo.On("GetByID", mock.Anything, tenantID, orderID).Return(&domain.Order{
		ID: orderID, TenantID: tenantID, OrderNumber: "ORD-00042",
		OrderType: domain.OrderTypeTakeaway, Status: domain.OrderStatusPaid,
		Items: items, Total: 525.4, PaymentMode: &mode,
	}, nil)
	tenantRepo.On("GetByID", mock.Anything, tenantID).
		Return(&domain.Tenant{ID: tenantID, Name: "Sharma Dhaba", GSTIN: "22AAAAA0000A1Z5", Address: "GT Road, Karnal"}, nil)
	menuRepo.On("TaxCatalog", mock.Anything, tenantID, mock.Anything).Return(billing.Catalog{}, nil)

	doc, err := svc.Receipt(context.Background(), tenantID, orderID)

	assert.NoError(t, err)
	assert.Equal(t, service.DocumentReceipt, doc.Kind)
	assert.Equal(t, "Sharma Dhaba", doc.RestaurantName)
	assert.Empty(t, doc.GSTIN)
	assert.Equal(t, "cash", doc.PaymentMode)

	totals := doc.Breakdown.Totals
	assert.Equal(t, 525.0, totals.ComputedTotal)
	// The stored order total is authoritative; the gap prints as round-off.
	assert.Equal(t, 525.4, totals.FinalTotal)
	assert.InDelta(t, 0.4, totals.RoundOff, 1e-9)
	assert.True(t, totals.HasRoundOff())
}

func TestInvoiceService_Invoice_CarriesGSTINAndSlabs(t *testing.T) {
	svc, orderRepo, _, menuRepo, tenantRepo := newInvoiceService()

	tenantID := uuid.New()
	orderID := uuid.New()

	items := storedLines(t, []billing.LineBreakdown{{
		ItemID: uuid.New(), Name: "Dal Makhani", Quantity: 1,
		UnitPrice: 220, Subtotal: 220, GSTRate: 5, GSTMode: billing.ModeExclude,
		GSTAmount: 11, Total: 231,
	}})
	orderRepo.On("GetByID", mock.Anything, tenantID, orderID).Return(&domain.Order{
		ID: orderID, TenantID: tenantID, OrderNumber: "ORD-00043",
		OrderType: domain.OrderTypeTakeaway, Status: domain.OrderStatusBilled,
		Items: items, Total: 231,
	}, nil)
	tenantRepo.On("GetByID", mock.Anything, tenantID).
		Return(&domain.Tenant{ID: tenantID, Name: "Sharma Dhaba", GSTIN: "22AAAAA0000A1Z5"}, nil)
	menuRepo.On("TaxCatalog", mock.Anything, tenantID, mock.Anything).Return(billing.Catalog{}, nil)

	doc, err := svc.Invoice(context.Background(), tenantID, orderID)

	assert.NoError(t, err)
	assert.Equal(t, service.DocumentInvoice, doc.Kind)
	assert.Equal(t, "22AAAAA0000A1Z5", doc.GSTIN)

	slabs := doc.Breakdown.RateSlabs
	assert.Len(t, slabs, 1)
	assert.Equal(t, 5.0, slabs[0].Rate)
	assert.Equal(t, 2.5, slabs[0].CGSTRate)
	assert.Equal(t, 5.5, slabs[0].CGSTAmount)
	assert.Equal(t, 5.5, slabs[0].SGSTAmount)
}

func TestInvoiceService_Receipt_StableUnderMenuEdits(t *testing.T) {
	svc, orderRepo, _, menuRepo, tenantRepo := newInvoiceService()

	tenantID := uuid.New()
	orderID := uuid.New()
	itemID := uuid.New()

	items := storedLines(t, []billing.LineBreakdown{{
		ItemID: itemID, Name: "Butter Naan", Quantity: 4,
		UnitPrice: 40, Subtotal: 160, GSTRate: 5, GSTMode: billing.ModeExclude,
		GSTAmount: 8, Total: 168,
	}})
	orderRepo.On("GetByID", mock.Anything, tenantID, orderID).Return(&domain.Order{
		ID: orderID, TenantID: tenantID, Status: domain.OrderStatusBilled,
		Items: items, Total: 168,
	}, nil)
	tenantRepo.On("GetByID", mock.Anything, tenantID).
		Return(&domain.Tenant{ID: tenantID, Name: "Sharma Dhaba"}, nil)

	// The menu was re-rated to 18% after billing; the line's stored rate wins.
	newRate := 18.0
	menuRepo.On("TaxCatalog", mock.Anything, tenantID, mock.Anything).
		Return(billing.Catalog{itemID: {Item: billing.TaxAttrs{Rate: &newRate, Mode: "exclude"}}}, nil)

	doc, err := svc.Receipt(context.Background(), tenantID, orderID)

	assert.NoError(t, err)
	assert.Equal(t, 5.0, doc.Breakdown.Lines[0].GSTRate)
	assert.Equal(t, 8.0, doc.Breakdown.Lines[0].GSTAmount)
	assert.Equal(t, 168.0, doc.Breakdown.Totals.FinalTotal)
	assert.False(t, doc.Breakdown.Totals.HasRoundOff())
}

func TestInvoiceService_Receipt_NotBilled(t *testing.T) {
	svc, orderRepo, _, _, _ := newInvoiceService()

	tenantID := uuid.New()
	orderID := uuid.New()
	orderRepo.On("GetByID", mock.Anything, tenantID, orderID).
		Return(&domain.Order{ID: orderID, TenantID: tenantID, Status: domain.OrderStatusPlaced}, nil)

	doc, err := svc.Receipt(context.Background(), tenantID, orderID)

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, domain.ErrOrderNotBilled)
}

func TestInvoiceService_KOT_NoMoney(t *testing.T) {
	svc, orderRepo, tableRepo, _, _ := newInvoiceService()

	tenantID := uuid.New()
	orderID := uuid.New()
	tableID := uuid.New()

	items := storedLines(t, []billing.LineBreakdown{
		{ItemID: uuid.New(), Name: "Masala Dosa", Quantity: 2, UnitPrice: 120, Total: 240},
		{ItemID: uuid.New(), Name: "Filter Coffee", Quantity: 0, UnitPrice: 40, Total: 40},
	})
	orderRepo.On("GetByID", mock.Anything, tenantID, orderID).Return(&domain.Order{
		ID: orderID, TenantID: tenantID, TableID: &tableID, OrderNumber: "ORD-00044",
		Status: domain.OrderStatusPlaced, Items: items, Notes: "less spicy",
	}, nil)
	tableRepo.On("GetByID", mock.Anything, tenantID, tableID).
		Return(&domain.DiningTable{ID: tableID, Label: "T2"}, nil)

	kot, err := svc.KOT(context.Background(), tenantID, orderID)

	assert.NoError(t, err)
	assert.Equal(t, "T2", kot.TableLabel)
	assert.Equal(t, "less spicy", kot.Notes)
	assert.Len(t, kot.Lines, 2)
	assert.Equal(t, service.KOTLine{Name: "Masala Dosa", Quantity: 2}, kot.Lines[0])
	// Quantity floors to 1 on malformed lines.
	assert.Equal(t, service.KOTLine{Name: "Filter Coffee", Quantity: 1}, kot.Lines[1])
}

func TestInvoiceService_KOT_CancelledOrder(t *testing.T) {
	svc, orderRepo, _, _, _ := newInvoiceService()

	tenantID := uuid.New()
	orderID := uuid.New()
	orderRepo.On("GetByID", mock.Anything, tenantID, orderID).
		Return(&domain.Order{ID: orderID, TenantID: tenantID, Status: domain.OrderStatusCancelled}, nil)

	kot, err := svc.KOT(context.Background(), tenantID, orderID)

	assert.Nil(t, kot)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}
