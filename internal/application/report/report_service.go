package report

import (
	"context"
	"time"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/report"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	recentOrdersLimit = 10
	topProductsLimit  = 10
	revenueMonths     = 6
)

// Settings are the deployment-wide numbers the reports depend on
type Settings struct {
	CommissionRate    decimal.Decimal
	LowStockThreshold decimal.Decimal
}

// DefaultSettings returns a 10% commission and a low-stock threshold of 10
func DefaultSettings() Settings {
	return Settings{
		CommissionRate:    decimal.NewFromFloat(0.10),
		LowStockThreshold: decimal.NewFromInt(10),
	}
}

// ReportService builds the read-only reports. Nothing is cached; every call queries.
type ReportService struct {
	erp        report.ERPReader
	storefront report.StorefrontReader
	production report.ProductionReader
	settings   Settings
	now        func() time.Time
	logger     *zap.Logger
}

// NewReportService creates a new ReportService. Zero settings fall back to DefaultSettings.
func NewReportService(
	erp report.ERPReader,
	storefront report.StorefrontReader,
	production report.ProductionReader,
	settings Settings,
	logger *zap.Logger,
) *ReportService {
	def := DefaultSettings()
	if settings.CommissionRate.IsZero() {
		settings.CommissionRate = def.CommissionRate
	}
	if settings.LowStockThreshold.IsZero() {
		settings.LowStockThreshold = def.LowStockThreshold
	}
	return &ReportService{
		erp:        erp,
		storefront: storefront,
		production: production,
		settings:   settings,
		now:        time.Now,
		logger:     logger,
	}
}

// Stock lists stock in, out and available per product visible to the caller
func (s *ReportService) Stock(ctx context.Context, scope identity.Scope, companyID *int64) (*report.StockReport, error) {
	rows, err := s.erp.StockRows(ctx, scope, companyID)
	if err != nil {
		return nil, err
	}
	return report.NewStockReport(rows, s.now()), nil
}

// ProfitLoss compares invoiced sales with billed purchases over a period, by default the last 30 days
func (s *ReportService) ProfitLoss(ctx context.Context, scope identity.Scope, companyID *int64, start, end *time.Time) (*report.ProfitLossReport, error) {
	now := s.now()
	period := report.Resolve(start, end, now)
	sales, err := s.erp.InvoicedSales(ctx, scope, companyID, period)
	if err != nil {
		return nil, err
	}
	purchases, err := s.erp.BilledPurchases(ctx, scope, companyID, period)
	if err != nil {
		return nil, err
	}
	return &report.ProfitLossReport{
		ReportType:  "Profit & Loss Report",
		Period:      period.String(),
		GeneratedAt: now,
		Summary:     report.NewProfitLossSummary(sales, purchases),
	}, nil
}

// Dashboard counts the caller's records and sums this month's paid invoices and bills
func (s *ReportService) Dashboard(ctx context.Context, scope identity.Scope, companyID *int64) (*report.DashboardReport, error) {
	now := s.now()
	counts, err := s.erp.DashboardCounts(ctx, scope, companyID)
	if err != nil {
		return nil, err
	}
	sales, purchases, err := s.erp.PaidSince(ctx, scope, companyID, report.MonthStart(now))
	if err != nil {
		return nil, err
	}
	return &report.DashboardReport{
		ReportType:  "Dashboard Summary",
		GeneratedAt: now,
		Summary: report.DashboardSummary{
			DashboardCounts:       counts,
			CurrentMonthSales:     sales,
			CurrentMonthPurchases: purchases,
			CurrentMonthProfit:    sales.Sub(purchases),
		},
	}, nil
}

// Ecommerce summarizes storefront orders of the last 30 days with a six-month revenue trend
func (s *ReportService) Ecommerce(ctx context.Context) (*report.EcommerceAnalytics, error) {
	now := s.now()
	period := report.DefaultPeriod(now)

	count, err := s.storefront.OrderCount(ctx, period)
	if err != nil {
		return nil, err
	}
	revenue, err := s.storefront.Revenue(ctx, period)
	if err != nil {
		return nil, err
	}
	topCategory, err := s.storefront.TopCategory(ctx, period)
	if err != nil {
		return nil, err
	}
	topProduct, err := s.storefront.TopProduct(ctx, period)
	if err != nil {
		return nil, err
	}
	recent, err := s.storefront.RecentOrders(ctx, period, recentOrdersLimit)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []report.RecentOrder{}
	}

	windows := report.MonthWindows(now, revenueMonths)
	monthly := make([]report.MonthlyRevenue, 0, len(windows))
	for _, w := range windows {
		r, err := s.storefront.Revenue(ctx, w)
		if err != nil {
			return nil, err
		}
		monthly = append(monthly, report.MonthlyRevenue{Month: w.Start.Format("Jan 2006"), Revenue: r})
	}

	commission := revenue.Mul(s.settings.CommissionRate).Round(2)
	return &report.EcommerceAnalytics{
		ReportType:  "E-commerce Analytics",
		GeneratedAt: now,
		Period:      period.String(),
		Summary: report.EcommerceSummary{
			TotalOrders:        count,
			TotalRevenue:       revenue,
			TotalCommission:    commission,
			NetProfit:          revenue.Sub(commission),
			TopSellingCategory: topCategory,
			TopSellingProduct:  topProduct,
		},
		RecentOrders: recent,
		MonthlySales: monthly,
	}, nil
}

// ProductPerformance ranks products and categories by quantity sold and lists low-stock products
func (s *ReportService) ProductPerformance(ctx context.Context) (*report.ProductPerformance, error) {
	top, err := s.storefront.TopProducts(ctx, topProductsLimit)
	if err != nil {
		return nil, err
	}
	categories, err := s.storefront.CategoryPerformance(ctx)
	if err != nil {
		return nil, err
	}
	low, err := s.storefront.LowStock(ctx, s.settings.LowStockThreshold)
	if err != nil {
		return nil, err
	}
	return &report.ProductPerformance{
		ReportType:          "Product Performance",
		GeneratedAt:         s.now(),
		TopProducts:         nonNil(top),
		CategoryPerformance: nonNil(categories),
		LowStockProducts:    nonNil(low),
	}, nil
}

// Production summarizes work orders created in an optional date range
func (s *ReportService) Production(ctx context.Context, start, end *time.Time) (*report.ProductionReport, error) {
	summary, err := s.production.ProductionSummary(ctx, start, end)
	if err != nil {
		return nil, err
	}
	summary.CompletionRate = report.Rate(summary.CompletedOrders, summary.TotalWorkOrders)
	breakdown, err := s.production.WorkCenterBreakdown(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return &report.ProductionReport{
		ReportType:          "Production Report",
		GeneratedAt:         s.now(),
		Start:               start,
		End:                 end,
		Summary:             summary,
		WorkCenterBreakdown: nonNil(breakdown),
	}, nil
}

// ManufacturingStats is the shop-floor dashboard
func (s *ReportService) ManufacturingStats(ctx context.Context) (*report.ManufacturingStats, error) {
	stats, err := s.production.ManufacturingStats(ctx, s.settings.LowStockThreshold)
	if err != nil {
		s.logger.Error("Failed to load manufacturing stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
