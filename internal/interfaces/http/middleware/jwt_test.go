package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/infrastructure/auth"
	"github.com/erp/bizhub/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAuthenticator struct {
	claims *auth.Claims
	err    error
	calls  int
}

func (f *fakeAuthenticator) Authenticate(_ context.Context, token string) (*auth.Claims, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if token != "good-token" {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid token")
	}
	return f.claims, nil
}

func newAuthRouter(a Authenticator, handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(JWTAuthMiddleware(a))
	router.GET("/api/v1/test", handler)
	router.POST("/api/v1/auth/login", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	a := &fakeAuthenticator{claims: &auth.Claims{UserID: 42, Username: "alice", Role: "accountant"}}
	router := newAuthRouter(a, func(c *gin.Context) {
		claims := GetJWTClaims(c)
		require.NotNil(t, claims)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, int64(42), c.GetInt64(logger.GinUserIDKey))
		assert.Equal(t, "42", logger.GetUserID(c.Request.Context()))

		scope, ok := GetScope(c)
		assert.True(t, ok)
		assert.Equal(t, identity.RoleAccountant, scope.Role)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/test", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuthMiddleware_MissingOrMalformedHeader(t *testing.T) {
	for name, header := range map[string]string{
		"missing":      "",
		"wrong scheme": "Basic abc",
		"empty token":  "Bearer ",
	} {
		t.Run(name, func(t *testing.T) {
			a := &fakeAuthenticator{}
			router := newAuthRouter(a, func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/api/v1/test", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "UNAUTHORIZED", decodeError(t, rec)["code"])
			assert.Zero(t, a.calls)
		})
	}
}

func TestJWTAuthMiddleware_DomainErrorKeepsCode(t *testing.T) {
	a := &fakeAuthenticator{err: shared.NewDomainError("TOKEN_REVOKED", "Token has been revoked")}
	router := newAuthRouter(a, func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/test", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "TOKEN_REVOKED", body["code"])
	assert.Equal(t, "Token has been revoked", body["error"])
}

func TestJWTAuthMiddleware_InfrastructureErrorIsGeneric(t *testing.T) {
	a := &fakeAuthenticator{err: errors.New("redis: connection refused")}
	router := newAuthRouter(a, func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/test", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotContains(t, rec.Body.String(), "redis")
}

func TestJWTAuthMiddleware_DefaultSkipPaths(t *testing.T) {
	a := &fakeAuthenticator{}
	router := newAuthRouter(a, func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, r := range []struct{ method, path string }{
		{http.MethodPost, "/api/v1/auth/login"},
		{http.MethodGet, "/health"},
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(r.method, r.path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, r.path)
	}
	assert.Zero(t, a.calls)
}

func TestJWTAuthMiddleware_SkipPathPrefixes(t *testing.T) {
	router := gin.New()
	router.Use(JWTAuthMiddlewareWithConfig(JWTMiddlewareConfig{
		Authenticator:    &fakeAuthenticator{},
		SkipPathPrefixes: []string{"/public"},
	}))
	router.GET("/public/info", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/public/info", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetScope_WithoutClaims(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := GetScope(c)
	assert.False(t, ok)
	assert.Nil(t, GetJWTClaims(c))
}

func TestRequireRoles(t *testing.T) {
	build := func(role string) *gin.Engine {
		router := gin.New()
		router.Use(func(c *gin.Context) {
			if role != "" {
				c.Set(JWTClaimsKey, &auth.Claims{UserID: 5, Role: role})
			}
			c.Next()
		})
		router.POST("/x", RequireRoles(identity.RoleInventoryManager), func(c *gin.Context) {
			c.Status(http.StatusCreated)
		})
		return router
	}

	tests := []struct {
		role string
		want int
	}{
		{string(identity.RoleInventoryManager), http.StatusCreated},
		{string(identity.RoleAdmin), http.StatusCreated},
		{string(identity.RoleAccountant), http.StatusForbidden},
		{"", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		build(tt.role).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/x", nil))
		assert.Equal(t, tt.want, rec.Code, tt.role)
	}
}
