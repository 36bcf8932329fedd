package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dhaba/internal/domain"
	"dhaba/internal/export"
	"dhaba/internal/service"
)

// ReportHandler serves sales reporting endpoints.
type ReportHandler struct {
	reportService service.ReportService
	tenantService service.TenantService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService, tenantService service.TenantService) *ReportHandler {
	return &ReportHandler{reportService: reportService, tenantService: tenantService}
}

// parseWindow reads from/to query params as YYYY-MM-DD dates. The window is
// half-open: [from, to+1d).
func parseWindow(c *gin.Context) (domain.ReportFilters, bool) {
	const layout = "2006-01-02"

	from, err := time.Parse(layout, c.Query("from"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "from must be YYYY-MM-DD")
		return domain.ReportFilters{}, false
	}
	to, err := time.Parse(layout, c.Query("to"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "to must be YYYY-MM-DD")
		return domain.ReportFilters{}, false
	}

	return domain.ReportFilters{From: from, To: to.Add(24 * time.Hour)}, true
}

// SalesRegister handles GET /api/v1/reports/register
// @Summary Sales register
// @Description One row per settled order with the statutory CGST/SGST split and round-off
// @Tags reports
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date inclusive (YYYY-MM-DD)"
// @Success 200 {object} Response{data=[]domain.SalesRegisterRow} "Register rows"
// @Security BearerAuth
// @Router /reports/register [get]
func (h *ReportHandler) SalesRegister(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	filters, ok := parseWindow(c)
	if !ok {
		return
	}

	rows, err := h.reportService.SalesRegister(c.Request.Context(), tenantID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}

// ExportRegister handles GET /api/v1/reports/register/export
// @Summary Export the sales register
// @Description Download the register window as CSV (default) or XLSX
// @Tags reports
// @Produce octet-stream
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date inclusive (YYYY-MM-DD)"
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {file} binary "Register file"
// @Security BearerAuth
// @Router /reports/register/export [get]
func (h *ReportHandler) ExportRegister(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	filters, ok := parseWindow(c)
	if !ok {
		return
	}

	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "format must be csv or xlsx")
		return
	}

	rows, err := h.reportService.SalesRegister(c.Request.Context(), tenantID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	tenant, err := h.tenantService.GetByID(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(tenant.Name, format)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if format == "xlsx" {
		var buf bytes.Buffer
		if err := export.WriteXLSX(&buf, rows); err != nil {
			HandleError(c, err)
			return
		}
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
		return
	}

	var buf bytes.Buffer
	buf.Write(export.BOM)
	w := export.NewCSVWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		HandleError(c, err)
		return
	}
	if err := w.WriteRows(rows); err != nil {
		HandleError(c, err)
		return
	}
	w.Flush()
	if err := w.Error(); err != nil {
		HandleError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// DailySummary handles GET /api/v1/reports/daily
// @Summary Daily sales summary
// @Tags reports
// @Produce json
// @Param date query string true "Business day (YYYY-MM-DD)"
// @Success 200 {object} Response{data=domain.DailySummary} "Summary"
// @Security BearerAuth
// @Router /reports/daily [get]
func (h *ReportHandler) DailySummary(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	day, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "date must be YYYY-MM-DD")
		return
	}

	summary, err := h.reportService.DailySummary(c.Request.Context(), tenantID, day)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, summary)
}

// DayClose handles POST /api/v1/reports/day-close
// @Summary Send the day-close summary email
// @Tags reports
// @Accept json
// @Produce json
// @Param request body DayCloseRequest true "Day and recipients"
// @Success 200 {object} Response{data=MessageResponse} "Email sent"
// @Security BearerAuth
// @Router /reports/day-close [post]
func (h *ReportHandler) DayClose(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input struct {
		Date       string   `json:"date" binding:"required"`
		Recipients []string `json:"recipients" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	day, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "date must be YYYY-MM-DD")
		return
	}

	if err := h.reportService.SendDayCloseEmail(c.Request.Context(), tenantID, day, input.Recipients); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "day close email sent"})
}
