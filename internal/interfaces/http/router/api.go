package router

import (
	"net/http"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/interfaces/http/handler"
	"github.com/erp/bizhub/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers are the HTTP handlers mounted by SetupAPI
type Handlers struct {
	System             *handler.SystemHandler
	Auth               *handler.AuthHandler
	User               *handler.UserHandler
	Company            *handler.CompanyHandler
	Contact            *handler.ContactHandler
	SellerProfile      *handler.SellerProfileHandler
	Category           *handler.CategoryHandler
	Tax                *handler.TaxHandler
	Product            *handler.ProductHandler
	PurchaseOrder      *handler.PurchaseOrderHandler
	SalesOrder         *handler.SalesOrderHandler
	Finance            *handler.FinanceHandler
	Inventory          *handler.InventoryHandler
	Cart               *handler.CartHandler
	Order              *handler.OrderHandler
	SellerProduct      *handler.SellerProductHandler
	WorkCenter         *handler.WorkCenterHandler
	ManufacturingOrder *handler.ManufacturingOrderHandler
	WorkOrder          *handler.WorkOrderHandler
	Bulk               *handler.BulkHandler
	Report             *handler.ReportHandler
}

// APIOptions carries the cross-cutting pieces the route tree needs
type APIOptions struct {
	// Auth authenticates protected routes
	Auth gin.HandlerFunc
	// AuthRateLimit throttles login and registration; nil disables it
	AuthRateLimit gin.HandlerFunc
	// Metrics serves /metrics; nil leaves the route out
	Metrics http.Handler
}

// SetupAPI mounts /health, /metrics and the /api/v1 tree on engine
func SetupAPI(engine *gin.Engine, h Handlers, opts APIOptions) *Router {
	engine.GET("/health", h.System.Health)
	if opts.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(opts.Metrics))
	}

	authed := opts.Auth
	limited := []gin.HandlerFunc{}
	if opts.AuthRateLimit != nil {
		limited = append(limited, opts.AuthRateLimit)
	}
	withLimit := func(fn gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, limited...), fn)
	}

	auth := NewDomainGroup("auth", "/auth").
		POST("/register", withLimit(h.Auth.Register)...).
		POST("/login", withLimit(h.Auth.Login)...).
		POST("/refresh", withLimit(h.Auth.Refresh)...).
		GET("/check-username", h.Auth.CheckUsername).
		POST("/logout", authed, h.Auth.Logout).
		GET("/me", authed, h.Auth.Me)

	users := NewDomainGroup("users", "/users").Use(authed).
		GET("/roles-info", h.User.RolesInfo).
		GET("/by-role/:role", h.User.ByRole).
		GET("/by-type/:type", h.User.ByType).
		CRUD(h.User)

	companies := NewDomainGroup("companies", "/companies").Use(authed).CRUD(h.Company)
	contacts := NewDomainGroup("contacts", "/contacts").Use(authed).CRUD(h.Contact)
	sellerProfiles := NewDomainGroup("seller-profiles", "/seller-profiles").Use(authed).
		CRUD(h.SellerProfile).
		POST("/:id/verify", middleware.RequireRoles(identity.RoleAdmin), h.SellerProfile.Verify)

	categoryWriters := middleware.RequireRoles(identity.RoleInventoryManager, identity.RoleBusinessOwner)
	categories := NewDomainGroup("categories", "/categories").Use(authed).
		GET("", h.Category.List).
		GET("/:id", h.Category.Get).
		POST("", categoryWriters, h.Category.Create).
		PUT("/:id", categoryWriters, h.Category.Update).
		DELETE("/:id", categoryWriters, h.Category.Delete)
	taxes := NewDomainGroup("taxes", "/taxes").Use(authed).CRUD(h.Tax)
	products := NewDomainGroup("products", "/products").Use(authed).
		CRUD(h.Product).
		POST("/:id/images", h.Product.RequestImageUpload).
		GET("/:id/images", h.Product.ListImages)

	purchaseOrders := NewDomainGroup("purchase-orders", "/purchase-orders").Use(authed).
		CRUD(h.PurchaseOrder).
		POST("/:id/confirm", h.PurchaseOrder.Confirm).
		POST("/:id/cancel", h.PurchaseOrder.Cancel).
		POST("/:id/convert-to-bill", h.PurchaseOrder.ConvertToBill)
	salesOrders := NewDomainGroup("sales-orders", "/sales-orders").Use(authed).
		CRUD(h.SalesOrder).
		POST("/:id/confirm", h.SalesOrder.Confirm).
		POST("/:id/cancel", h.SalesOrder.Cancel).
		POST("/:id/convert-to-invoice", h.SalesOrder.ConvertToInvoice)

	bills := NewDomainGroup("bills", "/bills").Use(authed).
		GET("", h.Finance.ListBills).
		GET("/:id", h.Finance.GetBill).
		PATCH("/:id/status", h.Finance.ChangeBillStatus).
		DELETE("/:id", h.Finance.DeleteBill)
	invoices := NewDomainGroup("invoices", "/invoices").Use(authed).
		GET("", h.Finance.ListInvoices).
		GET("/:id", h.Finance.GetInvoice).
		PATCH("/:id/status", h.Finance.ChangeInvoiceStatus).
		DELETE("/:id", h.Finance.DeleteInvoice)

	stock := NewDomainGroup("stock-movements", "/stock-movements").Use(authed).
		GET("", h.Inventory.List).
		POST("", h.Inventory.Create).
		GET("/summary", h.Inventory.Summary).
		GET("/:id", h.Inventory.Get)

	cart := NewDomainGroup("cart", "/cart").Use(authed).
		GET("", h.Cart.Get).
		POST("", h.Cart.Add).
		PATCH("/:id", h.Cart.UpdateQuantity).
		DELETE("/:id", h.Cart.Remove)
	checkout := NewDomainGroup("checkout", "/checkout").Use(authed).
		POST("", h.Order.Checkout)
	orders := NewDomainGroup("orders", "/orders").Use(authed).
		GET("", h.Order.List).
		GET("/:id", h.Order.Get).
		PATCH("/:id/status", h.Order.ChangeStatus)
	sellerProducts := NewDomainGroup("seller-products", "/seller-products").Use(authed).
		CRUD(h.SellerProduct).
		POST("/:id/approve", middleware.RequireRoles(identity.RoleAdmin), h.SellerProduct.Approve)

	workCenters := NewDomainGroup("work-centers", "/work-centers").Use(authed).
		CRUD(h.WorkCenter).
		GET("/:id/efficiency", h.WorkCenter.Efficiency)
	manufacturingOrders := NewDomainGroup("manufacturing-orders", "/manufacturing-orders").Use(authed).
		CRUD(h.ManufacturingOrder).
		POST("/:id/cancel", h.ManufacturingOrder.Cancel).
		POST("/:id/work-orders", h.ManufacturingOrder.CreateWorkOrder)
	workOrders := NewDomainGroup("work-orders", "/work-orders").Use(authed).
		GET("", h.WorkOrder.List).
		GET("/:id", h.WorkOrder.Get).
		PUT("/:id", h.WorkOrder.Update).
		POST("/:id/release", h.WorkOrder.Release).
		POST("/:id/start", h.WorkOrder.Start).
		POST("/:id/complete", h.WorkOrder.Complete).
		POST("/:id/cancel", h.WorkOrder.Cancel)

	bulk := NewDomainGroup("bulk", "/bulk").Use(authed).
		POST("/delete/:model", h.Bulk.Delete).
		POST("/update/:model", h.Bulk.Update)

	reports := NewDomainGroup("reports", "/reports").Use(authed).
		GET("/stock", h.Report.Stock).
		GET("/pnl", h.Report.ProfitLoss).
		GET("/dashboard", h.Report.Dashboard).
		GET("/ecommerce", middleware.RequireRoles(identity.RoleAdmin), h.Report.Ecommerce).
		GET("/product-performance", h.Report.ProductPerformance).
		GET("/production", h.Report.Production)
	dashboard := NewDomainGroup("dashboard", "/dashboard").Use(authed).
		GET("/stats", h.Report.ManufacturingStats)

	r := NewRouter(engine)
	r.Register(
		auth, users,
		companies, contacts, sellerProfiles,
		categories, taxes, products,
		purchaseOrders, salesOrders, bills, invoices,
		stock,
		cart, checkout, orders, sellerProducts,
		workCenters, manufacturingOrders, workOrders,
		bulk, reports, dashboard,
	)
	r.Setup()
	return r
}
