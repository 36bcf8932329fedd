package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"dhaba/internal/billing"
	"dhaba/internal/domain"
	"dhaba/internal/port"
)

// ReportService provides financial reporting over settled orders. Figures are
// recomputed from each order's stored line snapshot through the billing
// pipeline, so the statutory CGST/SGST split in reports always matches what
// the printed invoices showed.
type ReportService interface {
	SalesRegister(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.SalesRegisterRow, error)
	DailySummary(ctx context.Context, tenantID uuid.UUID, day time.Time) (*domain.DailySummary, error)
	SendDayCloseEmail(ctx context.Context, tenantID uuid.UUID, day time.Time, recipients []string) error
}

type reportService struct {
	orderRepo  port.OrderRepository
	tenantRepo port.TenantRepository
	email      port.EmailSender
}

// NewReportService creates a new ReportService implementation.
func NewReportService(
	orderRepo port.OrderRepository,
	tenantRepo port.TenantRepository,
	email port.EmailSender,
) ReportService {
	return &reportService{
		orderRepo:  orderRepo,
		tenantRepo: tenantRepo,
		email:      email,
	}
}

func (s *reportService) SalesRegister(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.SalesRegisterRow, error) {
	orders, err := s.orderRepo.ListSettled(ctx, tenantID, filters.From, filters.To)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.SalesRegisterRow, 0, len(orders))
	for i := range orders {
		row, err := registerRow(&orders[i])
		if err != nil {
			return nil, err
		}
		rows = append(rows, *row)
	}
	return rows, nil
}

func (s *reportService) DailySummary(ctx context.Context, tenantID uuid.UUID, day time.Time) (*domain.DailySummary, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	rows, err := s.SalesRegister(ctx, tenantID, domain.ReportFilters{From: from, To: to})
	if err != nil {
		return nil, err
	}

	summary := &domain.DailySummary{Date: from.Format("2006-01-02")}
	for _, row := range rows {
		summary.OrderCount++
		summary.Subtotal += row.Subtotal
		summary.CGST += row.CGST
		summary.SGST += row.SGST
		summary.RoundOff += row.RoundOff
		summary.GrossSales += row.Total
		switch row.PaymentMode {
		case domain.PaymentModeCash:
			summary.CashSales += row.Total
		case domain.PaymentModeCard:
			summary.CardSales += row.Total
		case domain.PaymentModeUPI:
			summary.UPISales += row.Total
		}
	}
	summary.Subtotal = billing.Round2(summary.Subtotal)
	summary.CGST = billing.Round2(summary.CGST)
	summary.SGST = billing.Round2(summary.SGST)
	summary.TotalGST = billing.Round2(summary.CGST + summary.SGST)
	summary.RoundOff = billing.Round2(summary.RoundOff)
	summary.GrossSales = billing.Round2(summary.GrossSales)
	summary.CashSales = billing.Round2(summary.CashSales)
	summary.CardSales = billing.Round2(summary.CardSales)
	summary.UPISales = billing.Round2(summary.UPISales)

	return summary, nil
}

func (s *reportService) SendDayCloseEmail(ctx context.Context, tenantID uuid.UUID, day time.Time, recipients []string) error {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return err
	}
	summary, err := s.DailySummary(ctx, tenantID, day)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Day close for %s — %s\n\n", tenant.Name, summary.Date)
	fmt.Fprintf(&b, "Orders settled: %d\n", summary.OrderCount)
	fmt.Fprintf(&b, "Subtotal:       %.2f\n", summary.Subtotal)
	fmt.Fprintf(&b, "CGST:           %.2f\n", summary.CGST)
	fmt.Fprintf(&b, "SGST:           %.2f\n", summary.SGST)
	fmt.Fprintf(&b, "Round off:      %.2f\n", summary.RoundOff)
	fmt.Fprintf(&b, "Gross sales:    %.2f\n\n", summary.GrossSales)
	fmt.Fprintf(&b, "Cash: %.2f  Card: %.2f  UPI: %.2f\n", summary.CashSales, summary.CardSales, summary.UPISales)

	msg := &port.EmailMessage{
		To:       recipients,
		Subject:  fmt.Sprintf("%s day close %s: %.2f across %d orders", tenant.Name, summary.Date, summary.GrossSales, summary.OrderCount),
		TextBody: b.String(),
	}
	if err := s.email.Send(ctx, msg); err != nil {
		log.Printf("reportService.SendDayCloseEmail: send failed for tenant %s: %v", tenantID, err)
		return err
	}
	return nil
}

// registerRow reruns the billing pipeline over one settled order's stored
// lines. The snapshot lines carry their resolved rate and mode, so no menu
// lookup is needed and historical reports stay stable under menu edits.
func registerRow(order *domain.Order) (*domain.SalesRegisterRow, error) {
	lines, err := billing.ParseItems(order.Items)
	if err != nil {
		return nil, fmt.Errorf("reportService: parsing lines for order %s: %w", order.ID, err)
	}

	breakdown := billing.Compute(lines, nil, order.Total)

	cgst := breakdown.Inclusive.CGST
	sgst := breakdown.Inclusive.SGST
	for _, slab := range breakdown.RateSlabs {
		cgst += slab.CGSTAmount
		sgst += slab.SGSTAmount
	}

	row := &domain.SalesRegisterRow{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		OrderType:   order.OrderType,
		Subtotal:    breakdown.Totals.Subtotal,
		CGST:        billing.Round2(cgst),
		SGST:        billing.Round2(sgst),
		RoundOff:    breakdown.Totals.RoundOff,
		Total:       breakdown.Totals.FinalTotal,
	}
	if order.SettledAt != nil {
		row.SettledAt = *order.SettledAt
	}
	if order.PaymentMode != nil {
		row.PaymentMode = *order.PaymentMode
	}
	return row, nil
}
