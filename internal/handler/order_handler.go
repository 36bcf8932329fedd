package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dhaba/internal/domain"
	"dhaba/internal/port"
	"dhaba/internal/service"
)

// OrderHandler handles order workflow endpoints.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles POST /api/v1/orders
// @Summary Place an order
// @Description Place an order; each line is priced from the current menu and its GST snapshot stored with the order
// @Tags orders
// @Accept json
// @Produce json
// @Param request body CreateOrderRequest true "Order details"
// @Success 201 {object} Response{data=domain.Order} "Order placed"
// @Failure 400 {object} ErrorResponseBody "Validation error or empty order"
// @Failure 404 {object} ErrorResponseBody "Table or menu item not found"
// @Failure 409 {object} ErrorResponseBody "Menu item unavailable"
// @Security BearerAuth
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), tenantID, userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, order)
}

// List handles GET /api/v1/orders
// @Summary List orders
// @Tags orders
// @Produce json
// @Param table_id query string false "Filter by table (UUID)"
// @Param status query string false "Filter by status"
// @Param from query string false "Created from (RFC3339)"
// @Param to query string false "Created before (RFC3339)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Order,meta=PagMeta} "Orders"
// @Security BearerAuth
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var filter port.OrderListFilter
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	if raw := c.Query("table_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid table ID")
			return
		}
		filter.TableID = &id
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.OrderStatus(raw)
		filter.Status = &status
	}
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid from timestamp")
			return
		}
		filter.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid to timestamp")
			return
		}
		filter.To = &t
	}

	orders, total, err := h.orderService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, orders, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// GetByID handles GET /api/v1/orders/:id
// @Summary Get order by ID
// @Tags orders
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Success 200 {object} Response{data=domain.Order} "Order"
// @Failure 404 {object} ErrorResponseBody "Order not found"
// @Security BearerAuth
// @Router /orders/{id} [get]
func (h *OrderHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid order ID")
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, order)
}

// UpdateItems handles PUT /api/v1/orders/:id/items
// @Summary Replace the items of an open order
// @Description Allowed while the order is placed or preparing; totals are recomputed
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Success 200 {object} Response{data=domain.Order} "Order updated"
// @Failure 409 {object} ErrorResponseBody "Order no longer open"
// @Security BearerAuth
// @Router /orders/{id}/items [put]
func (h *OrderHandler) UpdateItems(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid order ID")
		return
	}

	var input service.UpdateOrderItemsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	order, err := h.orderService.UpdateItems(c.Request.Context(), tenantID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, order)
}

// ChangeStatus handles PATCH /api/v1/orders/:id/status
// @Summary Change order status
// @Description Move an order through its lifecycle; billing re-reconciles and freezes the total
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Param request body ChangeStatusRequest true "Target status"
// @Success 200 {object} Response{data=domain.Order} "Order updated"
// @Failure 409 {object} ErrorResponseBody "Transition not allowed"
// @Security BearerAuth
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid order ID")
		return
	}

	var input struct {
		Status domain.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	order, err := h.orderService.ChangeStatus(c.Request.Context(), tenantID, id, input.Status)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, order)
}

// Settle handles POST /api/v1/orders/:id/settle
// @Summary Settle a billed order
// @Description Capture payment; an optional tendered total becomes the authoritative figure
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Param request body SettleOrderRequest true "Payment details"
// @Success 200 {object} Response{data=domain.Order} "Order settled"
// @Failure 409 {object} ErrorResponseBody "Order not billed or already settled"
// @Security BearerAuth
// @Router /orders/{id}/settle [post]
func (h *OrderHandler) Settle(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid order ID")
		return
	}

	var input service.SettleOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	order, err := h.orderService.Settle(c.Request.Context(), tenantID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, order)
}

// Cancel handles POST /api/v1/orders/:id/cancel
// @Summary Cancel an order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Success 200 {object} Response{data=domain.Order} "Order cancelled"
// @Failure 409 {object} ErrorResponseBody "Order can no longer be cancelled"
// @Security BearerAuth
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid order ID")
		return
	}

	order, err := h.orderService.Cancel(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, order)
}
