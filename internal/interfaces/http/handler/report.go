package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/erp/bizhub/internal/application/common"
	reportapp "github.com/erp/bizhub/internal/application/report"
	"github.com/erp/bizhub/internal/domain/report"
	"github.com/erp/bizhub/internal/infrastructure/export"
	"github.com/gin-gonic/gin"
)

// FormatXLSX selects spreadsheet output on report endpoints
const FormatXLSX = "xlsx"

// ReportHandler serves the read-only aggregate reports
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Stock godoc
// @Summary  Stock in, out and available per product
// @Param    company_id query int false "Limit to one company"
// @Param    format query string false "xlsx"
// @Router   /reports/stock [get]
func (h *ReportHandler) Stock(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	companyID, ok := h.companyParam(c)
	if !ok {
		return
	}
	rep, err := h.reportService.Stock(c.Request.Context(), scope, companyID)
	h.render(c, rep, err)
}

// ProfitLoss godoc
// @Summary  Sales versus purchases over a period (default last 30 days)
// @Param    company_id query int false "Limit to one company"
// @Param    start_date query string false "YYYY-MM-DD"
// @Param    end_date query string false "YYYY-MM-DD"
// @Router   /reports/pnl [get]
func (h *ReportHandler) ProfitLoss(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	companyID, ok := h.companyParam(c)
	if !ok {
		return
	}
	start, end, ok := h.dateRange(c)
	if !ok {
		return
	}
	rep, err := h.reportService.ProfitLoss(c.Request.Context(), scope, companyID, start, end)
	h.render(c, rep, err)
}

// Dashboard godoc
// @Summary  Record counts and current-month totals
// @Router   /reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	companyID, ok := h.companyParam(c)
	if !ok {
		return
	}
	rep, err := h.reportService.Dashboard(c.Request.Context(), scope, companyID)
	h.render(c, rep, err)
}

// Ecommerce godoc
// @Summary  Storefront analytics for the last 30 days, admins only
// @Router   /reports/ecommerce [get]
func (h *ReportHandler) Ecommerce(c *gin.Context) {
	rep, err := h.reportService.Ecommerce(c.Request.Context())
	h.render(c, rep, err)
}

// ProductPerformance godoc
// @Summary  Top products, category performance and low stock
// @Router   /reports/product-performance [get]
func (h *ReportHandler) ProductPerformance(c *gin.Context) {
	rep, err := h.reportService.ProductPerformance(c.Request.Context())
	h.render(c, rep, err)
}

// Production godoc
// @Summary  Work-order totals and per-work-center breakdown
// @Router   /reports/production [get]
func (h *ReportHandler) Production(c *gin.Context) {
	start, end, ok := h.dateRange(c)
	if !ok {
		return
	}
	rep, err := h.reportService.Production(c.Request.Context(), start, end)
	h.render(c, rep, err)
}

// ManufacturingStats godoc
// @Summary  Manufacturing dashboard counters
// @Router   /dashboard/stats [get]
func (h *ReportHandler) ManufacturingStats(c *gin.Context) {
	stats, err := h.reportService.ManufacturingStats(c.Request.Context())
	h.render(c, stats, err)
}

// render writes rep as JSON, or as a workbook when ?format=xlsx
func (h *ReportHandler) render(c *gin.Context, rep any, err error) {
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if c.Query("format") != FormatXLSX {
		h.Success(c, rep)
		return
	}
	exportable, ok := rep.(report.Exportable)
	if !ok {
		h.BadRequest(c, "format: xlsx export is not available for this report")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, exportable); err != nil {
		h.HandleError(c, fmt.Errorf("render %s: %w", exportable.Title(), err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(exportable.Title(), time.Now())))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

func (h *ReportHandler) companyParam(c *gin.Context) (*int64, bool) {
	raw := c.Query("company_id")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.BadRequest(c, "company_id: Must be a valid id")
		return nil, false
	}
	return &id, true
}

func (h *ReportHandler) dateRange(c *gin.Context) (start, end *time.Time, ok bool) {
	for _, p := range []struct {
		name string
		dst  **time.Time
	}{{"start_date", &start}, {"end_date", &end}} {
		raw := c.Query(p.name)
		if raw == "" {
			continue
		}
		d, err := common.ParseDate(raw)
		if err != nil {
			h.BadRequest(c, p.name+": "+err.Error())
			return nil, nil, false
		}
		t := d.Time
		*p.dst = &t
	}
	if start != nil && end != nil && end.Before(*start) {
		h.BadRequest(c, "end_date: Must not be before start_date")
		return nil, nil, false
	}
	return start, end, true
}

// exportFilename turns "Profit & Loss Report" into profit-loss-report-20240115.xlsx
func exportFilename(title string, now time.Time) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	name := strings.TrimSuffix(b.String(), "-")
	if name == "" {
		name = "report"
	}
	return name + "-" + now.Format("20060102") + "." + FormatXLSX
}
