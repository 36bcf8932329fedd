package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dhaba/internal/service"
)

// TableHandler handles dining table endpoints.
type TableHandler struct {
	tableService service.TableService
}

// NewTableHandler creates a new TableHandler.
func NewTableHandler(tableService service.TableService) *TableHandler {
	return &TableHandler{tableService: tableService}
}

// Create handles POST /api/v1/tables
// @Summary Create a dining table
// @Tags tables
// @Accept json
// @Produce json
// @Param request body CreateTableRequest true "Table details"
// @Success 201 {object} Response{data=domain.DiningTable} "Table created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /tables [post]
func (h *TableHandler) Create(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateTableInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	table, err := h.tableService.Create(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, table)
}

// List handles GET /api/v1/tables
// @Summary List dining tables
// @Tags tables
// @Produce json
// @Success 200 {object} Response{data=[]domain.DiningTable} "Tables"
// @Security BearerAuth
// @Router /tables [get]
func (h *TableHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	tables, err := h.tableService.List(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tables)
}

// Update handles PUT /api/v1/tables/:id
// @Summary Update a dining table
// @Tags tables
// @Accept json
// @Produce json
// @Param id path string true "Table ID (UUID)"
// @Success 200 {object} Response{data=domain.DiningTable} "Table updated"
// @Failure 404 {object} ErrorResponseBody "Table not found"
// @Security BearerAuth
// @Router /tables/{id} [put]
func (h *TableHandler) Update(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid table ID")
		return
	}

	var input service.UpdateTableInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	table, err := h.tableService.Update(c.Request.Context(), tenantID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, table)
}

// Delete handles DELETE /api/v1/tables/:id
// @Summary Delete a dining table
// @Tags tables
// @Produce json
// @Param id path string true "Table ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Table deleted"
// @Failure 404 {object} ErrorResponseBody "Table not found"
// @Security BearerAuth
// @Router /tables/{id} [delete]
func (h *TableHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid table ID")
		return
	}

	if err := h.tableService.Delete(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "table deleted"})
}
