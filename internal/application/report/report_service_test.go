package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockERPReader struct {
	mock.Mock
}

func (m *MockERPReader) StockRows(ctx context.Context, scope identity.Scope, companyID *int64) ([]report.StockRow, error) {
	args := m.Called(ctx, scope, companyID)
	rows, _ := args.Get(0).([]report.StockRow)
	return rows, args.Error(1)
}

func (m *MockERPReader) InvoicedSales(ctx context.Context, scope identity.Scope, companyID *int64, p report.Period) (decimal.Decimal, error) {
	args := m.Called(ctx, scope, companyID, p)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockERPReader) BilledPurchases(ctx context.Context, scope identity.Scope, companyID *int64, p report.Period) (decimal.Decimal, error) {
	args := m.Called(ctx, scope, companyID, p)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockERPReader) DashboardCounts(ctx context.Context, scope identity.Scope, companyID *int64) (report.DashboardCounts, error) {
	args := m.Called(ctx, scope, companyID)
	return args.Get(0).(report.DashboardCounts), args.Error(1)
}

func (m *MockERPReader) PaidSince(ctx context.Context, scope identity.Scope, companyID *int64, since time.Time) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, scope, companyID, since)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

type MockStorefrontReader struct {
	mock.Mock
}

func (m *MockStorefrontReader) OrderCount(ctx context.Context, p report.Period) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorefrontReader) Revenue(ctx context.Context, p report.Period) (decimal.Decimal, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockStorefrontReader) TopCategory(ctx context.Context, p report.Period) (*string, error) {
	args := m.Called(ctx, p)
	name, _ := args.Get(0).(*string)
	return name, args.Error(1)
}

func (m *MockStorefrontReader) TopProduct(ctx context.Context, p report.Period) (*string, error) {
	args := m.Called(ctx, p)
	name, _ := args.Get(0).(*string)
	return name, args.Error(1)
}

func (m *MockStorefrontReader) RecentOrders(ctx context.Context, p report.Period, limit int) ([]report.RecentOrder, error) {
	args := m.Called(ctx, p, limit)
	rows, _ := args.Get(0).([]report.RecentOrder)
	return rows, args.Error(1)
}

func (m *MockStorefrontReader) TopProducts(ctx context.Context, limit int) ([]report.ProductSales, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]report.ProductSales)
	return rows, args.Error(1)
}

func (m *MockStorefrontReader) CategoryPerformance(ctx context.Context) ([]report.CategorySales, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]report.CategorySales)
	return rows, args.Error(1)
}

func (m *MockStorefrontReader) LowStock(ctx context.Context, threshold decimal.Decimal) ([]report.LowStockProduct, error) {
	args := m.Called(ctx, threshold)
	rows, _ := args.Get(0).([]report.LowStockProduct)
	return rows, args.Error(1)
}

type MockProductionReader struct {
	mock.Mock
}

func (m *MockProductionReader) ProductionSummary(ctx context.Context, start, end *time.Time) (report.ProductionSummary, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(report.ProductionSummary), args.Error(1)
}

func (m *MockProductionReader) WorkCenterBreakdown(ctx context.Context, start, end *time.Time) ([]report.WorkCenterBreakdown, error) {
	args := m.Called(ctx, start, end)
	rows, _ := args.Get(0).([]report.WorkCenterBreakdown)
	return rows, args.Error(1)
}

func (m *MockProductionReader) ManufacturingStats(ctx context.Context, lowStock decimal.Decimal) (report.ManufacturingStats, error) {
	args := m.Called(ctx, lowStock)
	return args.Get(0).(report.ManufacturingStats), args.Error(1)
}

var (
	accountant = identity.NewScope(3, identity.RoleAccountant)
	fixedNow   = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
)

type fixture struct {
	erp        *MockERPReader
	storefront *MockStorefrontReader
	production *MockProductionReader
	svc        *ReportService
}

func newFixture() *fixture {
	f := &fixture{
		erp:        new(MockERPReader),
		storefront: new(MockStorefrontReader),
		production: new(MockProductionReader),
	}
	f.svc = NewReportService(f.erp, f.storefront, f.production, Settings{}, zap.NewNop())
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestReportService_ProfitLoss(t *testing.T) {
	t.Run("defaults to the last 30 days", func(t *testing.T) {
		f := newFixture()
		want := report.Period{
			Start: time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		}
		f.erp.On("InvoicedSales", mock.Anything, accountant, (*int64)(nil), want).Return(dec("1000"), nil)
		f.erp.On("BilledPurchases", mock.Anything, accountant, (*int64)(nil), want).Return(dec("750"), nil)

		rep, err := f.svc.ProfitLoss(context.Background(), accountant, nil, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, "Profit & Loss Report", rep.ReportType)
		assert.Equal(t, "2024-02-14 to 2024-03-15", rep.Period)
		assert.Equal(t, "250", rep.Summary.GrossProfit.String())
		assert.Equal(t, "25", rep.Summary.ProfitMargin.String())
	})

	t.Run("no sales means zero margin", func(t *testing.T) {
		f := newFixture()
		f.erp.On("InvoicedSales", mock.Anything, accountant, mock.Anything, mock.Anything).Return(decimal.Zero, nil)
		f.erp.On("BilledPurchases", mock.Anything, accountant, mock.Anything, mock.Anything).Return(dec("40"), nil)

		rep, err := f.svc.ProfitLoss(context.Background(), accountant, nil, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, "-40", rep.Summary.GrossProfit.String())
		assert.True(t, rep.Summary.ProfitMargin.IsZero())
	})
}

func TestReportService_Dashboard(t *testing.T) {
	f := newFixture()
	company := int64(2)
	f.erp.On("DashboardCounts", mock.Anything, accountant, &company).Return(report.DashboardCounts{TotalCompanies: 1, TotalInvoices: 4}, nil)
	f.erp.On("PaidSince", mock.Anything, accountant, &company, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).
		Return(dec("900"), dec("300"), nil)

	rep, err := f.svc.Dashboard(context.Background(), accountant, &company)

	require.NoError(t, err)
	assert.Equal(t, int64(4), rep.Summary.TotalInvoices)
	assert.Equal(t, "600", rep.Summary.CurrentMonthProfit.String())
}

func TestReportService_Ecommerce(t *testing.T) {
	f := newFixture()
	last30 := report.DefaultPeriod(fixedNow)
	lamps := "Lamps"
	f.storefront.On("OrderCount", mock.Anything, last30).Return(int64(7), nil)
	f.storefront.On("Revenue", mock.Anything, last30).Return(dec("1234.50"), nil).Once()
	f.storefront.On("Revenue", mock.Anything, mock.Anything).Return(dec("100"), nil)
	f.storefront.On("TopCategory", mock.Anything, last30).Return(&lamps, nil)
	f.storefront.On("TopProduct", mock.Anything, last30).Return(nil, nil)
	f.storefront.On("RecentOrders", mock.Anything, last30, 10).Return(nil, nil)

	rep, err := f.svc.Ecommerce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), rep.Summary.TotalOrders)
	assert.Equal(t, "123.45", rep.Summary.TotalCommission.String())
	assert.Equal(t, "1111.05", rep.Summary.NetProfit.String())
	assert.Equal(t, "Lamps", *rep.Summary.TopSellingCategory)
	assert.Nil(t, rep.Summary.TopSellingProduct)
	assert.NotNil(t, rep.RecentOrders)
	require.Len(t, rep.MonthlySales, 6)
	assert.Equal(t, "Oct 2023", rep.MonthlySales[0].Month)
	assert.Equal(t, "Mar 2024", rep.MonthlySales[5].Month)
}

func TestReportService_ProductPerformance(t *testing.T) {
	f := newFixture()
	f.storefront.On("TopProducts", mock.Anything, 10).Return([]report.ProductSales{{ProductName: "Lamp", TotalSales: 12}}, nil)
	f.storefront.On("CategoryPerformance", mock.Anything).Return(nil, nil)
	f.storefront.On("LowStock", mock.Anything, decimal.NewFromInt(10)).Return(nil, nil)

	rep, err := f.svc.ProductPerformance(context.Background())

	require.NoError(t, err)
	assert.Len(t, rep.TopProducts, 1)
	assert.Empty(t, rep.CategoryPerformance)
	assert.NotNil(t, rep.LowStockProducts)
}

func TestReportService_Production(t *testing.T) {
	f := newFixture()
	f.production.On("ProductionSummary", mock.Anything, (*time.Time)(nil), (*time.Time)(nil)).
		Return(report.ProductionSummary{TotalWorkOrders: 3, CompletedOrders: 1, InProgressOrders: 1}, nil)
	f.production.On("WorkCenterBreakdown", mock.Anything, (*time.Time)(nil), (*time.Time)(nil)).
		Return([]report.WorkCenterBreakdown{{WorkCenterName: "Assembly", Total: 3, Completed: 1}}, nil)

	rep, err := f.svc.Production(context.Background(), nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "33.33", rep.Summary.CompletionRate.String())
	assert.Len(t, rep.WorkCenterBreakdown, 1)
}

func TestReportService_ManufacturingStats_Error(t *testing.T) {
	f := newFixture()
	f.production.On("ManufacturingStats", mock.Anything, decimal.NewFromInt(10)).
		Return(report.ManufacturingStats{}, errors.New("db down"))

	_, err := f.svc.ManufacturingStats(context.Background())

	assert.EqualError(t, err, "db down")
}
