package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"dhaba/internal/billing"
	"dhaba/internal/domain"
	"dhaba/internal/port"
	"dhaba/internal/service"
	"dhaba/mocks"
)

func newReportService() (service.ReportService, *mocks.MockOrderRepo, *mocks.MockTenantRepo, *mocks.MockEmailSender) {
	orderRepo := new(mocks.MockOrderRepo)
	tenantRepo := new(mocks.MockTenantRepo)
	email := new(mocks.MockEmailSender)
	return service.NewReportService(orderRepo, tenantRepo, email), orderRepo, tenantRepo, email
}

func settledOrders(t *testing.T, tenantID uuid.UUID, day time.Time) []domain.Order {
	t.Helper()

	cash := domain.PaymentModeCash
	upi := domain.PaymentModeUPI
	settledA := day.Add(13 * time.Hour)
	settledB := day.Add(20 * time.Hour)

	// Exclusive-mode order: 2 x 250 at 5% on top.
	itemsA := storedLines(t, []billing.LineBreakdown{{
		ItemID: uuid.New(), Name: "Paneer Tikka", Quantity: 2,
		UnitPrice: 250, Subtotal: 500, GSTRate: 5, GSTMode: billing.ModeExclude,
		GSTAmount: 25, Total: 525,
	}})
	// Inclusive-mode order: the quoted 300 already contains 14.30 of tax.
	itemsB := storedLines(t, []billing.LineBreakdown{{
		ItemID: uuid.New(), Name: "Special Thali", Quantity: 1,
		UnitPrice: 300, Subtotal: 285.7, GSTRate: 5, GSTMode: billing.ModeInclude,
		GSTAmount: 14.3, Total: 300,
	}})

	return []domain.Order{
		{
			ID: uuid.New(), TenantID: tenantID, OrderNumber: "ORD-00010",
			OrderType: domain.OrderTypeDineIn, Status: domain.OrderStatusPaid,
			Items: itemsA, Total: 525, PaymentMode: &cash, SettledAt: &settledA,
		},
		{
			ID: uuid.New(), TenantID: tenantID, OrderNumber: "ORD-00011",
			OrderType: domain.OrderTypeTakeaway, Status: domain.OrderStatusPaid,
			Items: itemsB, Total: 300, PaymentMode: &upi, SettledAt: &settledB,
		},
	}
}

func TestReportService_SalesRegister(t *testing.T) {
	svc, orderRepo, _, _ := newReportService()

	tenantID := uuid.New()
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	from, to := day, day.Add(24*time.Hour)
	orderRepo.On("ListSettled", mock.Anything, tenantID, from, to).
		Return(settledOrders(t, tenantID, day), nil)

	rows, err := svc.SalesRegister(context.Background(), tenantID, domain.ReportFilters{From: from, To: to})

	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	assert.Equal(t, "ORD-00010", rows[0].OrderNumber)
	assert.Equal(t, domain.PaymentModeCash, rows[0].PaymentMode)
	assert.Equal(t, 500.0, rows[0].Subtotal)
	assert.InDelta(t, 12.5, rows[0].CGST, 1e-9)
	assert.InDelta(t, 12.5, rows[0].SGST, 1e-9)
	assert.Equal(t, 525.0, rows[0].Total)
	assert.InDelta(t, 0, rows[0].RoundOff, 1e-9)

	// Inclusive-mode tax still shows up split, recovered from the quoted price.
	assert.Equal(t, "ORD-00011", rows[1].OrderNumber)
	assert.InDelta(t, 285.7, rows[1].Subtotal, 1e-9)
	assert.InDelta(t, 7.15, rows[1].CGST, 1e-9)
	assert.InDelta(t, 7.15, rows[1].SGST, 1e-9)
	assert.Equal(t, 300.0, rows[1].Total)
}

func TestReportService_DailySummary(t *testing.T) {
	svc, orderRepo, _, _ := newReportService()

	tenantID := uuid.New()
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	orderRepo.On("ListSettled", mock.Anything, tenantID, day, day.Add(24*time.Hour)).
		Return(settledOrders(t, tenantID, day), nil)

	summary, err := svc.DailySummary(context.Background(), tenantID, day.Add(9*time.Hour))

	assert.NoError(t, err)
	assert.Equal(t, "2025-03-14", summary.Date)
	assert.Equal(t, 2, summary.OrderCount)
	assert.InDelta(t, 785.7, summary.Subtotal, 1e-9)
	assert.InDelta(t, 19.65, summary.CGST, 1e-9)
	assert.InDelta(t, 19.65, summary.SGST, 1e-9)
	assert.InDelta(t, 39.3, summary.TotalGST, 1e-9)
	assert.InDelta(t, 825.0, summary.GrossSales, 1e-9)
	assert.InDelta(t, 525.0, summary.CashSales, 1e-9)
	assert.InDelta(t, 0, summary.CardSales, 1e-9)
	assert.InDelta(t, 300.0, summary.UPISales, 1e-9)
}

func TestReportService_DailySummary_NoOrders(t *testing.T) {
	svc, orderRepo, _, _ := newReportService()

	tenantID := uuid.New()
	day := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	orderRepo.On("ListSettled", mock.Anything, tenantID, day, day.Add(24*time.Hour)).
		Return([]domain.Order{}, nil)

	summary, err := svc.DailySummary(context.Background(), tenantID, day)

	assert.NoError(t, err)
	assert.Equal(t, 0, summary.OrderCount)
	assert.Equal(t, 0.0, summary.GrossSales)
}

func TestReportService_SendDayCloseEmail(t *testing.T) {
	svc, orderRepo, tenantRepo, email := newReportService()

	tenantID := uuid.New()
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	tenantRepo.On("GetByID", mock.Anything, tenantID).
		Return(&domain.Tenant{ID: tenantID, Name: "Sharma Dhaba"}, nil)
	orderRepo.On("ListSettled", mock.Anything, tenantID, day, day.Add(24*time.Hour)).
		Return(settledOrders(t, tenantID, day), nil)

	var sent *port.EmailMessage
	email.On("Send", mock.Anything, mock.AnythingOfType("*port.EmailMessage")).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*port.EmailMessage) }).
		Return(nil)

	err := svc.SendDayCloseEmail(context.Background(), tenantID, day, []string{"owner@sharmadhaba.in"})

	assert.NoError(t, err)
	assert.NotNil(t, sent)
	assert.Equal(t, []string{"owner@sharmadhaba.in"}, sent.To)
	assert.Contains(t, sent.Subject, "2025-03-14")
	assert.Contains(t, sent.TextBody, "Orders settled: 2")
	assert.Contains(t, sent.TextBody, "Gross sales:    825.00")
	email.AssertExpectations(t)
}
