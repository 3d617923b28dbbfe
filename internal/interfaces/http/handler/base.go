package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/infrastructure/logger"
	"github.com/erp/bizhub/internal/interfaces/http/dto"
	"github.com/erp/bizhub/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// listParams are the query keys consumed by the paging/ordering parser;
// every other query key becomes an equality filter.
var listParams = map[string]bool{
	"page":      true,
	"page_size": true,
	"search":    true,
	"ordering":  true,
	"format":    true,
}

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// scope returns the caller's data scope; it answers 401 when there is none
func (h *BaseHandler) scope(c *gin.Context) (identity.Scope, bool) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		h.Unauthorized(c, "Authentication credentials were not provided")
		return identity.Scope{}, false
	}
	return scope, true
}

// pathID parses the :id (or another named) path parameter
func (h *BaseHandler) pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		h.NotFound(c, "Not found")
		return 0, false
	}
	return id, true
}

// bindJSON binds and validates the body, answering 400 on failure. An empty
// body validates the zero request, so optional-only bodies may be omitted.
func (h *BaseHandler) bindJSON(c *gin.Context, req any) bool {
	var err error
	if c.Request.ContentLength == 0 {
		err = binding.Validator.ValidateStruct(req)
	} else {
		err = c.ShouldBindJSON(req)
	}
	if err != nil {
		h.BadRequest(c, middleware.ValidationMessage(err))
		return false
	}
	return true
}

// ParseFilter reads search, ordering ("field" or "-field"), page, page_size
// and the remaining query keys as equality filters. Keys ending in _id are
// parsed as integers and "true"/"false" as booleans.
func ParseFilter(c *gin.Context) shared.Filter {
	filter := shared.DefaultFilter()
	filter.OrderBy = ""
	filter.OrderDir = ""
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.Query("page_size")); err == nil {
		filter.PageSize = size
	}
	filter.Search = strings.TrimSpace(c.Query("search"))
	if ordering := strings.TrimSpace(c.Query("ordering")); ordering != "" {
		filter.OrderDir = "asc"
		if strings.HasPrefix(ordering, "-") {
			filter.OrderDir = "desc"
			ordering = ordering[1:]
		}
		filter.OrderBy = ordering
	}
	for key, values := range c.Request.URL.Query() {
		if listParams[key] || len(values) == 0 || values[0] == "" {
			continue
		}
		filter.Filters[key] = filterValue(key, values[0])
	}
	return filter.Normalize()
}

func filterValue(key, raw string) interface{} {
	switch raw {
	case "true", "True":
		return true
	case "false", "False":
		return false
	}
	if strings.HasSuffix(key, "_id") || key == "id" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n
		}
	}
	return raw
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Page sends a list page with its meta
func Page[T any](c *gin.Context, page shared.Paginated[T]) {
	c.JSON(http.StatusOK, dto.NewPageResponse(page))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.AbortWithStatusJSON(statusCode, dto.NewErrorResponse(code, message))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeValidation, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// Unauthorized sends a 401 unauthorized response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, message)
}

// Forbidden sends a 403 forbidden response
func (h *BaseHandler) Forbidden(c *gin.Context, message string) {
	h.Error(c, http.StatusForbidden, dto.ErrCodeForbidden, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, "internal server error")
}

// HandleError converts domain errors to HTTP responses. Anything that is not
// a domain error, or maps to a 5xx, is logged and reported generically.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		status := dto.GetHTTPStatus(domainErr.Code)
		if status < http.StatusInternalServerError {
			h.Error(c, status, domainErr.Code, domainErr.Message)
			return
		}
	}
	logger.FromContext(c.Request.Context()).Error("Request failed",
		zap.String("route", c.FullPath()),
		zap.Error(err),
	)
	_ = c.Error(err)
	h.InternalError(c)
}
