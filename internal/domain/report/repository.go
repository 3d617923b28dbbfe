package report

import (
	"context"
	"time"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/shopspring/decimal"
)

// ERPReader reads the accounting and inventory aggregates. Rows are limited to
// what the scope can see; companyID narrows further when set.
type ERPReader interface {
	StockRows(ctx context.Context, scope identity.Scope, companyID *int64) ([]StockRow, error)
	InvoicedSales(ctx context.Context, scope identity.Scope, companyID *int64, p Period) (decimal.Decimal, error)
	BilledPurchases(ctx context.Context, scope identity.Scope, companyID *int64, p Period) (decimal.Decimal, error)
	DashboardCounts(ctx context.Context, scope identity.Scope, companyID *int64) (DashboardCounts, error)
	// PaidSince sums paid invoices and paid bills dated on or after since
	PaidSince(ctx context.Context, scope identity.Scope, companyID *int64, since time.Time) (sales, purchases decimal.Decimal, err error)
}

// StorefrontReader reads storefront aggregates across all orders
type StorefrontReader interface {
	OrderCount(ctx context.Context, p Period) (int64, error)
	// Revenue sums orders in a revenue status created within p
	Revenue(ctx context.Context, p Period) (decimal.Decimal, error)
	TopCategory(ctx context.Context, p Period) (*string, error)
	TopProduct(ctx context.Context, p Period) (*string, error)
	RecentOrders(ctx context.Context, p Period, limit int) ([]RecentOrder, error)
	TopProducts(ctx context.Context, limit int) ([]ProductSales, error)
	CategoryPerformance(ctx context.Context) ([]CategorySales, error)
	LowStock(ctx context.Context, threshold decimal.Decimal) ([]LowStockProduct, error)
}

// ProductionReader reads shop-floor aggregates
type ProductionReader interface {
	ProductionSummary(ctx context.Context, start, end *time.Time) (ProductionSummary, error)
	WorkCenterBreakdown(ctx context.Context, start, end *time.Time) ([]WorkCenterBreakdown, error)
	ManufacturingStats(ctx context.Context, lowStock decimal.Decimal) (ManufacturingStats, error)
}
