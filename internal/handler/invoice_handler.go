package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dhaba/internal/service"
)

// InvoiceHandler serves receipts, tax invoices and kitchen order tickets.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Receipt handles GET /api/v1/orders/:id/receipt
// @Summary Get order receipt
// @Description Rebuild the customer receipt from the stored order; safe to call repeatedly
// @Tags invoices
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Success 200 {object} Response{data=service.BillingDocument} "Receipt"
// @Failure 409 {object} ErrorResponseBody "Order not billed yet"
// @Security BearerAuth
// @Router /orders/{id}/receipt [get]
func (h *InvoiceHandler) Receipt(c *gin.Context) {
	h.document(c, h.invoiceService.Receipt)
}

// Invoice handles GET /api/v1/orders/:id/invoice
// @Summary Get order tax invoice
// @Description Rebuild the GST tax invoice with the statutory CGST/SGST breakdown
// @Tags invoices
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Success 200 {object} Response{data=service.BillingDocument} "Tax invoice"
// @Failure 409 {object} ErrorResponseBody "Order not billed yet"
// @Security BearerAuth
// @Router /orders/{id}/invoice [get]
func (h *InvoiceHandler) Invoice(c *gin.Context) {
	h.document(c, h.invoiceService.Invoice)
}

// KOT handles GET /api/v1/orders/:id/kot
// @Summary Get kitchen order ticket
// @Tags invoices
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Success 200 {object} Response{data=service.KOTDocument} "KOT"
// @Failure 404 {object} ErrorResponseBody "Order not found"
// @Security BearerAuth
// @Router /orders/{id}/kot [get]
func (h *InvoiceHandler) KOT(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid order ID")
		return
	}

	doc, err := h.invoiceService.KOT(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

type documentFn func(ctx context.Context, tenantID, orderID uuid.UUID) (*service.BillingDocument, error)

func (h *InvoiceHandler) document(c *gin.Context, build documentFn) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid order ID")
		return
	}

	doc, err := build(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}
