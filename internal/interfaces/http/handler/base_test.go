package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/infrastructure/auth"
	"github.com/erp/bizhub/internal/interfaces/http/dto"
	"github.com/erp/bizhub/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// asUser simulates the JWT middleware for an authenticated caller
func asUser(userID int64, role identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.JWTClaimsKey, &auth.Claims{UserID: userID, Username: fmt.Sprintf("user%d", userID), Role: string(role)})
		c.Next()
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		assert func(t *testing.T, f shared.Filter)
	}{
		{
			name:  "defaults",
			query: "",
			assert: func(t *testing.T, f shared.Filter) {
				assert.Equal(t, 1, f.Page)
				assert.Equal(t, shared.DefaultPageSize, f.PageSize)
				assert.Empty(t, f.Filters)
			},
		},
		{
			name:  "descending ordering",
			query: "ordering=-created_at&page=3&page_size=5",
			assert: func(t *testing.T, f shared.Filter) {
				assert.Equal(t, "created_at", f.OrderBy)
				assert.Equal(t, "desc", f.OrderDir)
				assert.Equal(t, 3, f.Page)
				assert.Equal(t, 5, f.PageSize)
			},
		},
		{
			name:  "ascending ordering",
			query: "ordering=name",
			assert: func(t *testing.T, f shared.Filter) {
				assert.Equal(t, "name", f.OrderBy)
				assert.Equal(t, "asc", f.OrderDir)
			},
		},
		{
			name:  "page size is capped",
			query: "page_size=1000",
			assert: func(t *testing.T, f shared.Filter) {
				assert.Equal(t, shared.MaxPageSize, f.PageSize)
			},
		},
		{
			name:  "typed filters",
			query: "search=%20acme%20&company_id=4&is_active=true&status=draft&format=xlsx",
			assert: func(t *testing.T, f shared.Filter) {
				assert.Equal(t, "acme", f.Search)
				assert.Equal(t, int64(4), f.Filters["company_id"])
				assert.Equal(t, true, f.Filters["is_active"])
				assert.Equal(t, "draft", f.Filters["status"])
				assert.NotContains(t, f.Filters, "format")
				assert.NotContains(t, f.Filters, "search")
			},
		},
		{
			name:  "non-numeric id stays a string",
			query: "company_id=abc",
			assert: func(t *testing.T, f shared.Filter) {
				assert.Equal(t, "abc", f.Filters["company_id"])
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/items?"+tt.query, nil)
			tt.assert(t, ParseFilter(c))
		})
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"not found", shared.ErrNotFound, http.StatusNotFound, "NOT_FOUND", shared.ErrNotFound.Error()},
		{"wrapped validation", fmt.Errorf("create: %w", shared.NewValidationError("quantity must be positive")), http.StatusBadRequest, "VALIDATION_ERROR", "quantity must be positive"},
		{"invalid state", shared.NewDomainError("INVALID_STATE", "only draft orders can be confirmed"), http.StatusBadRequest, "INVALID_STATE", "only draft orders can be confirmed"},
		{"empty cart", shared.NewDomainError("EMPTY_CART", "Cart is empty"), http.StatusBadRequest, "EMPTY_CART", "Cart is empty"},
		{"forbidden", shared.NewDomainError("FORBIDDEN", "not yours"), http.StatusForbidden, "FORBIDDEN", "not yours"},
		{"conflict", shared.NewDomainError("ALREADY_EXISTS", "duplicate"), http.StatusConflict, "ALREADY_EXISTS", "duplicate"},
		{"raw error is hidden", errors.New("pq: connection refused"), http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			h := &BaseHandler{}
			h.HandleError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.code, resp.Code)
			assert.Equal(t, tt.message, resp.Error)
			assert.True(t, c.IsAborted())
		})
	}
}

func TestPathID(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-3"} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Params = gin.Params{{Key: "id", Value: raw}}

		h := &BaseHandler{}
		_, ok := h.pathID(c, "id")
		assert.False(t, ok, raw)
		assert.Equal(t, http.StatusNotFound, w.Code, raw)
	}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, ok := (&BaseHandler{}).pathID(c, "id")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
}

func TestScope_Unauthenticated(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := (&BaseHandler{}).scope(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, w).Code)
}
