package handler

import (
	"strconv"

	inventoryapp "github.com/erp/bizhub/internal/application/inventory"
	"github.com/gin-gonic/gin"
)

// InventoryHandler serves the stock movement ledger
type InventoryHandler struct {
	BaseHandler
	inventoryService *inventoryapp.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService *inventoryapp.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// List lists stock movements, newest first
func (h *InventoryHandler) List(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	page, err := h.inventoryService.List(c.Request.Context(), scope, ParseFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// Get returns one stock movement
func (h *InventoryHandler) Get(c *gin.Context) {
	byID(&h.BaseHandler, c, h.inventoryService.GetByID)
}

// Create records a manual stock movement
func (h *InventoryHandler) Create(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	var req inventoryapp.CreateMovementRequest
	if !h.bindJSON(c, &req) {
		return
	}
	movement, err := h.inventoryService.Create(c.Request.Context(), scope, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, movement)
}

// Summary returns per-product stock totals for ?company_id=
func (h *InventoryHandler) Summary(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	companyID, err := strconv.ParseInt(c.Query("company_id"), 10, 64)
	if err != nil || companyID <= 0 {
		h.BadRequest(c, "company_id: This field is required")
		return
	}
	summary, err := h.inventoryService.Summary(c.Request.Context(), scope, companyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}
