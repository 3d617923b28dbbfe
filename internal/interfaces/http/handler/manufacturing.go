package handler

import (
	mfgapp "github.com/erp/bizhub/internal/application/manufacturing"
	"github.com/gin-gonic/gin"
)

// WorkCenterHandler serves /work-centers
type WorkCenterHandler struct {
	*ResourceHandler[mfgapp.WorkCenterRequest, mfgapp.WorkCenterResponse]
	service *mfgapp.WorkCenterService
}

// NewWorkCenterHandler creates a WorkCenterHandler
func NewWorkCenterHandler(service *mfgapp.WorkCenterService) *WorkCenterHandler {
	return &WorkCenterHandler{
		ResourceHandler: NewResourceHandler[mfgapp.WorkCenterRequest, mfgapp.WorkCenterResponse](service),
		service:         service,
	}
}

// Efficiency reports completed versus total work orders for a work center
func (h *WorkCenterHandler) Efficiency(c *gin.Context) {
	byID(&h.BaseHandler, c, h.service.Efficiency)
}

// ManufacturingOrderHandler serves /manufacturing-orders
type ManufacturingOrderHandler struct {
	*ResourceHandler[mfgapp.ManufacturingOrderRequest, mfgapp.ManufacturingOrderResponse]
	service *mfgapp.ManufacturingOrderService
}

// NewManufacturingOrderHandler creates a ManufacturingOrderHandler
func NewManufacturingOrderHandler(service *mfgapp.ManufacturingOrderService) *ManufacturingOrderHandler {
	return &ManufacturingOrderHandler{
		ResourceHandler: NewResourceHandler[mfgapp.ManufacturingOrderRequest, mfgapp.ManufacturingOrderResponse](service),
		service:         service,
	}
}

// Cancel cancels a manufacturing order that has not completed
func (h *ManufacturingOrderHandler) Cancel(c *gin.Context) {
	byID(&h.BaseHandler, c, h.service.Cancel)
}

// CreateWorkOrder adds a work order to a manufacturing order
func (h *ManufacturingOrderHandler) CreateWorkOrder(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req mfgapp.WorkOrderRequest
	if !h.bindJSON(c, &req) {
		return
	}
	wo, err := h.service.CreateWorkOrder(c.Request.Context(), scope, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, wo)
}

// WorkOrderHandler serves /work-orders
type WorkOrderHandler struct {
	BaseHandler
	service *mfgapp.WorkOrderService
}

// NewWorkOrderHandler creates a WorkOrderHandler
func NewWorkOrderHandler(service *mfgapp.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{service: service}
}

// List lists work orders visible to the caller
func (h *WorkOrderHandler) List(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	page, err := h.service.List(c.Request.Context(), scope, ParseFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// Get returns one work order
func (h *WorkOrderHandler) Get(c *gin.Context) {
	byID(&h.BaseHandler, c, h.service.GetByID)
}

// Update edits a work order
func (h *WorkOrderHandler) Update(c *gin.Context) {
	byIDWithBody(&h.BaseHandler, c, h.service.Update)
}

// Release moves a draft work order to ready
func (h *WorkOrderHandler) Release(c *gin.Context) {
	byID(&h.BaseHandler, c, h.service.Release)
}

// Start moves a ready work order to in_progress
func (h *WorkOrderHandler) Start(c *gin.Context) {
	byID(&h.BaseHandler, c, h.service.Start)
}

// Complete finishes an in-progress work order
func (h *WorkOrderHandler) Complete(c *gin.Context) {
	byIDWithBody(&h.BaseHandler, c, h.service.Complete)
}

// Cancel cancels a work order
func (h *WorkOrderHandler) Cancel(c *gin.Context) {
	byID(&h.BaseHandler, c, h.service.Cancel)
}
