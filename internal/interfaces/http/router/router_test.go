package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/infrastructure/auth"
	"github.com/erp/bizhub/internal/interfaces/http/handler"
	"github.com/erp/bizhub/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())
	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)

	r = NewRouter(gin.New(), WithAPIVersion("v2"))
	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	catalog := NewDomainGroup("catalog", "/catalog").
		GET("/products", func(c *gin.Context) { c.String(http.StatusOK, "products") })
	partner := NewDomainGroup("partner", "/partner").
		GET("/companies", func(c *gin.Context) { c.String(http.StatusOK, "companies") })

	NewRouter(engine).Register(catalog).Register(partner).Setup()

	w := serve(engine, http.MethodGet, "/api/v1/catalog/products")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "products", w.Body.String())

	w = serve(engine, http.MethodGet, "/api/v1/partner/companies")
	assert.Equal(t, "companies", w.Body.String())
}

func TestDomainGroup_Methods(t *testing.T) {
	engine := gin.New()
	ok := func(c *gin.Context) { c.String(http.StatusOK, c.Request.Method) }
	g := NewDomainGroup("test", "/test").
		GET("/items", ok).
		POST("/items", ok).
		PUT("/items/:id", ok).
		PATCH("/items/:id", ok).
		DELETE("/items/:id", ok)
	assert.Equal(t, "test", g.Name())
	assert.Equal(t, "/test", g.Prefix())
	g.RegisterRoutes(engine.Group("/api/v1"))

	tests := []struct{ method, path string }{
		{http.MethodGet, "/api/v1/test/items"},
		{http.MethodPost, "/api/v1/test/items"},
		{http.MethodPut, "/api/v1/test/items/1"},
		{http.MethodPatch, "/api/v1/test/items/1"},
		{http.MethodDelete, "/api/v1/test/items/1"},
	}
	for _, tt := range tests {
		w := serve(engine, tt.method, tt.path)
		assert.Equal(t, http.StatusOK, w.Code, "%s %s", tt.method, tt.path)
		assert.Equal(t, tt.method, w.Body.String())
	}
}

func TestDomainGroup_MiddlewareAndSubgroups(t *testing.T) {
	engine := gin.New()
	g := NewDomainGroup("manufacturing", "/manufacturing").Use(func(c *gin.Context) {
		c.Header("X-Group", "manufacturing")
		c.Next()
	})
	g.Group("work-orders", "/work-orders").
		GET("", func(c *gin.Context) { c.String(http.StatusOK, "work orders") })
	g.RegisterRoutes(engine.Group("/api/v1"))

	w := serve(engine, http.MethodGet, "/api/v1/manufacturing/work-orders")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "manufacturing", w.Header().Get("X-Group"))
	assert.Equal(t, "work orders", w.Body.String())
}

type stubCRUD struct{}

func (stubCRUD) List(c *gin.Context)   { c.String(http.StatusOK, "list") }
func (stubCRUD) Get(c *gin.Context)    { c.String(http.StatusOK, "get "+c.Param("id")) }
func (stubCRUD) Create(c *gin.Context) { c.String(http.StatusCreated, "create") }
func (stubCRUD) Update(c *gin.Context) { c.String(http.StatusOK, "update "+c.Param("id")) }
func (stubCRUD) Delete(c *gin.Context) { c.Status(http.StatusNoContent) }

func TestDomainGroup_CRUD(t *testing.T) {
	engine := gin.New()
	NewDomainGroup("taxes", "/taxes").CRUD(stubCRUD{}).RegisterRoutes(engine.Group("/api/v1"))

	assert.Equal(t, "list", serve(engine, http.MethodGet, "/api/v1/taxes").Body.String())
	assert.Equal(t, http.StatusCreated, serve(engine, http.MethodPost, "/api/v1/taxes").Code)
	assert.Equal(t, "get 7", serve(engine, http.MethodGet, "/api/v1/taxes/7").Body.String())
	assert.Equal(t, "update 7", serve(engine, http.MethodPut, "/api/v1/taxes/7").Body.String())
	assert.Equal(t, http.StatusNoContent, serve(engine, http.MethodDelete, "/api/v1/taxes/7").Code)
}

func testHandlers() Handlers {
	return Handlers{
		System:             handler.NewSystemHandler("bizhub", "test", nil),
		Auth:               handler.NewAuthHandler(nil),
		User:               handler.NewUserHandler(nil),
		Company:            handler.NewCompanyHandler(nil),
		Contact:            handler.NewContactHandler(nil),
		SellerProfile:      handler.NewSellerProfileHandler(nil),
		Category:           handler.NewCategoryHandler(nil),
		Tax:                handler.NewTaxHandler(nil),
		Product:            handler.NewProductHandler(nil, nil),
		PurchaseOrder:      handler.NewPurchaseOrderHandler(nil),
		SalesOrder:         handler.NewSalesOrderHandler(nil),
		Finance:            handler.NewFinanceHandler(nil),
		Inventory:          handler.NewInventoryHandler(nil),
		Cart:               handler.NewCartHandler(nil),
		Order:              handler.NewOrderHandler(nil),
		SellerProduct:      handler.NewSellerProductHandler(nil),
		WorkCenter:         handler.NewWorkCenterHandler(nil),
		ManufacturingOrder: handler.NewManufacturingOrderHandler(nil),
		WorkOrder:          handler.NewWorkOrderHandler(nil),
		Bulk:               handler.NewBulkHandler(nil),
		Report:             handler.NewReportHandler(nil),
	}
}

func denyAll(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication credentials were not provided", "code": "UNAUTHORIZED"})
}

func TestSetupAPI_RegistersRoutes(t *testing.T) {
	engine := gin.New()
	SetupAPI(engine, testHandlers(), APIOptions{Auth: denyAll, Metrics: http.NotFoundHandler()})

	registered := make(map[string]bool)
	for _, route := range engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /health",
		"GET /metrics",
		"POST /api/v1/auth/register",
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/refresh",
		"POST /api/v1/auth/logout",
		"GET /api/v1/auth/check-username",
		"GET /api/v1/auth/me",
		"GET /api/v1/users/roles-info",
		"GET /api/v1/users/by-role/:role",
		"GET /api/v1/users/by-type/:type",
		"DELETE /api/v1/users/:id",
		"PUT /api/v1/companies/:id",
		"POST /api/v1/contacts",
		"POST /api/v1/seller-profiles/:id/verify",
		"POST /api/v1/categories",
		"GET /api/v1/taxes",
		"POST /api/v1/products/:id/images",
		"GET /api/v1/products/:id/images",
		"POST /api/v1/purchase-orders/:id/confirm",
		"POST /api/v1/purchase-orders/:id/cancel",
		"POST /api/v1/purchase-orders/:id/convert-to-bill",
		"POST /api/v1/sales-orders/:id/convert-to-invoice",
		"PATCH /api/v1/bills/:id/status",
		"DELETE /api/v1/invoices/:id",
		"GET /api/v1/stock-movements",
		"POST /api/v1/stock-movements",
		"GET /api/v1/stock-movements/summary",
		"GET /api/v1/cart",
		"PATCH /api/v1/cart/:id",
		"DELETE /api/v1/cart/:id",
		"POST /api/v1/checkout",
		"GET /api/v1/orders/:id",
		"PATCH /api/v1/orders/:id/status",
		"POST /api/v1/seller-products/:id/approve",
		"GET /api/v1/work-centers/:id/efficiency",
		"POST /api/v1/manufacturing-orders/:id/work-orders",
		"POST /api/v1/manufacturing-orders/:id/cancel",
		"PUT /api/v1/work-orders/:id",
		"POST /api/v1/work-orders/:id/release",
		"POST /api/v1/work-orders/:id/start",
		"POST /api/v1/work-orders/:id/complete",
		"POST /api/v1/work-orders/:id/cancel",
		"POST /api/v1/bulk/delete/:model",
		"POST /api/v1/bulk/update/:model",
		"GET /api/v1/reports/stock",
		"GET /api/v1/reports/pnl",
		"GET /api/v1/reports/dashboard",
		"GET /api/v1/reports/ecommerce",
		"GET /api/v1/reports/product-performance",
		"GET /api/v1/reports/production",
		"GET /api/v1/dashboard/stats",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "route %s is not registered", route)
	}
}

func TestSetupAPI_ProtectedRoutesNeedAuth(t *testing.T) {
	engine := gin.New()
	SetupAPI(engine, testHandlers(), APIOptions{Auth: denyAll})

	for _, path := range []string{"/api/v1/companies", "/api/v1/auth/me", "/api/v1/reports/stock", "/api/v1/cart"} {
		w := serve(engine, http.MethodGet, path)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.JSONEq(t, `{"error":"Authentication credentials were not provided","code":"UNAUTHORIZED"}`, w.Body.String())
	}

	w := serve(engine, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	// public but invalid: validation happens before the service is reached
	w = serve(engine, http.MethodPost, "/api/v1/auth/login")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetupAPI_EcommerceReportIsAdminOnly(t *testing.T) {
	engine := gin.New()
	asBuyer := func(c *gin.Context) {
		c.Set(middleware.JWTClaimsKey, &auth.Claims{UserID: 7, Role: string(identity.RoleContactUser)})
		c.Next()
	}
	SetupAPI(engine, testHandlers(), APIOptions{Auth: asBuyer})

	w := serve(engine, http.MethodGet, "/api/v1/reports/ecommerce")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"You do not have permission to perform this action","code":"FORBIDDEN"}`, w.Body.String())
}

func TestSetupAPI_AuthRateLimit(t *testing.T) {
	engine := gin.New()
	calls := 0
	limit := func(c *gin.Context) {
		calls++
		c.AbortWithStatus(http.StatusTooManyRequests)
	}
	SetupAPI(engine, testHandlers(), APIOptions{Auth: denyAll, AuthRateLimit: limit})

	assert.Equal(t, http.StatusTooManyRequests, serve(engine, http.MethodPost, "/api/v1/auth/login").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(engine, http.MethodPost, "/api/v1/auth/register").Code)
	assert.Equal(t, 2, calls)
	assert.NotEqual(t, http.StatusTooManyRequests, serve(engine, http.MethodGet, "/api/v1/auth/check-username").Code)
}
