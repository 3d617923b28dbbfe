package handler

import (
	financeapp "github.com/erp/bizhub/internal/application/finance"
	"github.com/gin-gonic/gin"
)

// FinanceHandler serves vendor bills and customer invoices
type FinanceHandler struct {
	BaseHandler
	financeService *financeapp.FinanceService
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(financeService *financeapp.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

// ListBills lists vendor bills
func (h *FinanceHandler) ListBills(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	page, err := h.financeService.ListBills(c.Request.Context(), scope, ParseFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// GetBill returns one vendor bill with its lines
func (h *FinanceHandler) GetBill(c *gin.Context) {
	byID(&h.BaseHandler, c, h.financeService.GetBill)
}

// ChangeBillStatus moves a bill along draft, confirmed, paid or cancelled
func (h *FinanceHandler) ChangeBillStatus(c *gin.Context) {
	byIDWithBody(&h.BaseHandler, c, h.financeService.ChangeBillStatus)
}

// DeleteBill deletes a vendor bill
func (h *FinanceHandler) DeleteBill(c *gin.Context) {
	h.delete(c, h.financeService.DeleteBill)
}

// ListInvoices lists customer invoices
func (h *FinanceHandler) ListInvoices(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	page, err := h.financeService.ListInvoices(c.Request.Context(), scope, ParseFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// GetInvoice returns one customer invoice with its lines
func (h *FinanceHandler) GetInvoice(c *gin.Context) {
	byID(&h.BaseHandler, c, h.financeService.GetInvoice)
}

// ChangeInvoiceStatus changes the status of an invoice
func (h *FinanceHandler) ChangeInvoiceStatus(c *gin.Context) {
	byIDWithBody(&h.BaseHandler, c, h.financeService.ChangeInvoiceStatus)
}

// DeleteInvoice deletes a customer invoice
func (h *FinanceHandler) DeleteInvoice(c *gin.Context) {
	h.delete(c, h.financeService.DeleteInvoice)
}
