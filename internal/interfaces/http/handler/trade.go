package handler

import (
	"context"

	tradeapp "github.com/erp/bizhub/internal/application/trade"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/gin-gonic/gin"
)

// PurchaseOrderHandler serves /purchase-orders
type PurchaseOrderHandler struct {
	*ResourceHandler[tradeapp.PurchaseOrderRequest, tradeapp.PurchaseOrderResponse]
	service *tradeapp.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a PurchaseOrderHandler
func NewPurchaseOrderHandler(service *tradeapp.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{
		ResourceHandler: NewResourceHandler[tradeapp.PurchaseOrderRequest, tradeapp.PurchaseOrderResponse](service),
		service:         service,
	}
}

// Confirm moves a draft purchase order to confirmed
func (h *PurchaseOrderHandler) Confirm(c *gin.Context) {
	byID(&h.BaseHandler, c, h.service.Confirm)
}

// Cancel cancels a purchase order
func (h *PurchaseOrderHandler) Cancel(c *gin.Context) {
	byID(&h.BaseHandler, c, h.service.Cancel)
}

// ConvertToBill creates a vendor bill from a confirmed purchase order and marks it received
func (h *PurchaseOrderHandler) ConvertToBill(c *gin.Context) {
	convert(&h.BaseHandler, c, h.service.ConvertToBill)
}

// SalesOrderHandler serves /sales-orders
type SalesOrderHandler struct {
	*ResourceHandler[tradeapp.SalesOrderRequest, tradeapp.SalesOrderResponse]
	service *tradeapp.SalesOrderService
}

// NewSalesOrderHandler creates a SalesOrderHandler
func NewSalesOrderHandler(service *tradeapp.SalesOrderService) *SalesOrderHandler {
	return &SalesOrderHandler{
		ResourceHandler: NewResourceHandler[tradeapp.SalesOrderRequest, tradeapp.SalesOrderResponse](service),
		service:         service,
	}
}

// Confirm moves a draft sales order to confirmed
func (h *SalesOrderHandler) Confirm(c *gin.Context) {
	byID(&h.BaseHandler, c, h.service.Confirm)
}

// Cancel cancels a sales order
func (h *SalesOrderHandler) Cancel(c *gin.Context) {
	byID(&h.BaseHandler, c, h.service.Cancel)
}

// ConvertToInvoice creates a customer invoice from a confirmed sales order and marks it delivered
func (h *SalesOrderHandler) ConvertToInvoice(c *gin.Context) {
	convert(&h.BaseHandler, c, h.service.ConvertToInvoice)
}

func convert(h *BaseHandler, c *gin.Context, fn func(context.Context, identity.Scope, int64) (*tradeapp.ConversionResult, error)) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	result, err := fn(c.Request.Context(), scope, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}
