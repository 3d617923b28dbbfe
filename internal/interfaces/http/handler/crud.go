package handler

import (
	"context"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/gin-gonic/gin"
)

// ScopedService is the CRUD surface shared by the company-scoped services
type ScopedService[Req, Resp any] interface {
	List(ctx context.Context, scope identity.Scope, filter shared.Filter) (shared.Paginated[Resp], error)
	GetByID(ctx context.Context, scope identity.Scope, id int64) (*Resp, error)
	Create(ctx context.Context, scope identity.Scope, req Req) (*Resp, error)
	Update(ctx context.Context, scope identity.Scope, id int64, req Req) (*Resp, error)
	Delete(ctx context.Context, scope identity.Scope, id int64) error
}

// ResourceHandler serves list/get/create/update/delete for one scoped resource
type ResourceHandler[Req, Resp any] struct {
	BaseHandler
	service ScopedService[Req, Resp]
}

// NewResourceHandler creates a ResourceHandler over service
func NewResourceHandler[Req, Resp any](service ScopedService[Req, Resp]) *ResourceHandler[Req, Resp] {
	return &ResourceHandler[Req, Resp]{service: service}
}

// List handles GET /<resource>
func (h *ResourceHandler[Req, Resp]) List(c *gin.Context) {
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

// Get handles GET /<resource>/:id
func (h *ResourceHandler[Req, Resp]) Get(c *gin.Context) {
	byID(&h.BaseHandler, c, h.service.GetByID)
}

// Create handles POST /<resource>
func (h *ResourceHandler[Req, Resp]) Create(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	var req Req
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.service.Create(c.Request.Context(), scope, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Update handles PUT /<resource>/:id
func (h *ResourceHandler[Req, Resp]) Update(c *gin.Context) {
	byIDWithBody(&h.BaseHandler, c, h.service.Update)
}

// Delete handles DELETE /<resource>/:id
func (h *ResourceHandler[Req, Resp]) Delete(c *gin.Context) {
	h.delete(c, h.service.Delete)
}

// Register mounts the five CRUD routes on rg
func (h *ResourceHandler[Req, Resp]) Register(rg gin.IRoutes) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *BaseHandler) delete(c *gin.Context, fn func(ctx context.Context, scope identity.Scope, id int64) error) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	if err := fn(c.Request.Context(), scope, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// byID runs a scoped operation on the :id resource and writes its result.
// It serves plain reads as well as status actions such as confirm or cancel.
func byID[T any](h *BaseHandler, c *gin.Context, fn func(ctx context.Context, scope identity.Scope, id int64) (*T, error)) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	resp, err := fn(c.Request.Context(), scope, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// byIDWithBody is byID for actions that take a request body
func byIDWithBody[Req, T any](h *BaseHandler, c *gin.Context, fn func(ctx context.Context, scope identity.Scope, id int64, req Req) (*T, error)) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req Req
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := fn(c.Request.Context(), scope, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
