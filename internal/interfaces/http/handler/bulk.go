package handler

import (
	bulkapp "github.com/erp/bizhub/internal/application/bulk"
	"github.com/gin-gonic/gin"
)

// BulkHandler applies one operation to many rows of a model
type BulkHandler struct {
	BaseHandler
	bulkService *bulkapp.BulkService
}

// NewBulkHandler creates a new BulkHandler
func NewBulkHandler(bulkService *bulkapp.BulkService) *BulkHandler {
	return &BulkHandler{bulkService: bulkService}
}

// Delete handles POST /bulk/delete/:model
func (h *BulkHandler) Delete(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	var req bulkapp.DeleteRequest
	if !h.bindJSON(c, &req) {
		return
	}
	result, err := h.bulkService.Delete(c.Request.Context(), scope, c.Param("model"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Update handles POST /bulk/update/:model
func (h *BulkHandler) Update(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	var req bulkapp.UpdateRequest
	if !h.bindJSON(c, &req) {
		return
	}
	result, err := h.bulkService.Update(c.Request.Context(), scope, c.Param("model"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
