package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/report"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockQueries(t *testing.T) (*Queries, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewQueries(sqlx.NewDb(mockDB, "postgres")), mock
}

var period = report.Period{
	Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
}

func TestQueries_StockRows(t *testing.T) {
	t.Run("scopes products to the owner", func(t *testing.T) {
		q, mock := newMockQueries(t)
		rows := sqlmock.NewRows([]string{"product_id", "product_name", "product_sku", "unit_price", "stock_in", "stock_out", "available_stock", "company_name"}).
			AddRow(1, "Bolt", "B-1", "2.50", "10", "4", "6", "Acme")

		mock.ExpectQuery(`FROM products p .*WHERE p\.created_by = \$5 AND p\.company_id = \$6 GROUP BY`).
			WithArgs("in", "out", "in", "out", int64(7), int64(3)).
			WillReturnRows(rows)

		company := int64(3)
		got, err := q.StockRows(context.Background(), identity.NewScope(7, identity.RoleContactUser), &company)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Bolt", got[0].ProductName)
		assert.Equal(t, "6", got[0].AvailableStock.String())
		assert.Equal(t, "Acme", got[0].CompanyName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("admin sees every product", func(t *testing.T) {
		q, mock := newMockQueries(t)
		mock.ExpectQuery(`LEFT JOIN stock_movements sm ON sm\.product_id = p\.id\s+GROUP BY`).
			WithArgs("in", "out", "in", "out").
			WillReturnRows(sqlmock.NewRows([]string{"product_id"}))

		got, err := q.StockRows(context.Background(), identity.NewScope(1, identity.RoleAdmin), nil)
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestQueries_InvoicedSales(t *testing.T) {
	q, mock := newMockQueries(t)
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(i\.total_amount\), 0\) FROM customer_invoices i WHERE i\.created_by = \$1 AND i\.invoice_date >= \$2 AND i\.invoice_date < \$3`).
		WithArgs(int64(7), period.Start, period.EndExclusive()).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow("1250.50"))

	total, err := q.InvoicedSales(context.Background(), identity.NewScope(7, identity.RoleAccountant), nil, period)
	require.NoError(t, err)
	assert.Equal(t, "1250.5", total.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueries_BilledPurchasesWithoutActorMatchesNothing(t *testing.T) {
	q, mock := newMockQueries(t)
	mock.ExpectQuery(`FROM vendor_bills b WHERE 1 = 0 AND b\.bill_date >= \$1 AND b\.bill_date < \$2`).
		WithArgs(period.Start, period.EndExclusive()).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow("0"))

	total, err := q.BilledPurchases(context.Background(), identity.NewScope(0, identity.RoleAccountant), nil, period)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueries_DashboardCounts(t *testing.T) {
	q, mock := newMockQueries(t)
	count := func(n int) *sqlmock.Rows { return sqlmock.NewRows([]string{"count"}).AddRow(n) }

	mock.ExpectQuery(`FROM companies t WHERE t\.created_by = \$1$`).WithArgs(int64(7)).WillReturnRows(count(2))
	mock.ExpectQuery(`FROM products t WHERE t\.created_by = \$1$`).WithArgs(int64(7)).WillReturnRows(count(5))
	mock.ExpectQuery(`FROM contacts t WHERE t\.created_by = \$1 AND t\.contact_type IN \(\$2, \$3\)`).
		WithArgs(int64(7), "customer", "both").WillReturnRows(count(3))
	mock.ExpectQuery(`FROM contacts t WHERE t\.created_by = \$1 AND t\.contact_type IN \(\$2, \$3\)`).
		WithArgs(int64(7), "supplier", "both").WillReturnRows(count(4))
	mock.ExpectQuery(`FROM purchase_orders t WHERE t\.created_by = \$1 AND t\.company_id = \$2`).
		WithArgs(int64(7), int64(9)).WillReturnRows(count(6))
	mock.ExpectQuery(`FROM sales_orders t`).WillReturnRows(count(7))
	mock.ExpectQuery(`FROM vendor_bills t`).WillReturnRows(count(8))
	mock.ExpectQuery(`FROM customer_invoices t`).WillReturnRows(count(9))

	company := int64(9)
	got, err := q.DashboardCounts(context.Background(), identity.NewScope(7, identity.RoleContactUser), &company)
	require.NoError(t, err)
	assert.Equal(t, report.DashboardCounts{
		TotalCompanies: 2, TotalProducts: 5, TotalCustomers: 3, TotalSuppliers: 4,
		TotalPurchaseOrders: 6, TotalSalesOrders: 7, TotalBills: 8, TotalInvoices: 9,
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueries_Revenue(t *testing.T) {
	q, mock := newMockQueries(t)
	mock.ExpectQuery(`FROM orders o\s+WHERE o\.created_at >= \$1 AND o\.created_at < \$2 AND o\.status IN \(\$3, \$4, \$5\)`).
		WithArgs(period.Start, period.EndExclusive(), "confirmed", "shipped", "delivered").
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow("900"))

	got, err := q.Revenue(context.Background(), period)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(900)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueries_TopCategory(t *testing.T) {
	t.Run("no sales yields nil", func(t *testing.T) {
		q, mock := newMockQueries(t)
		mock.ExpectQuery(`SELECT cat\.name FROM order_items oi`).
			WillReturnRows(sqlmock.NewRows([]string{"name"}))

		got, err := q.TopCategory(context.Background(), period)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("returns the leading name", func(t *testing.T) {
		q, mock := newMockQueries(t)
		mock.ExpectQuery(`SELECT p\.name FROM order_items oi .*GROUP BY p\.name\s+ORDER BY SUM\(oi\.quantity\) DESC\s+LIMIT 1`).
			WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Kettle"))

		got, err := q.TopProduct(context.Background(), period)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Kettle", *got)
	})
}

func TestQueries_ProductionSummary(t *testing.T) {
	q, mock := newMockQueries(t)
	start := period.Start
	mock.ExpectQuery(`FROM work_orders wo WHERE wo\.created_at >= \$3$`).
		WithArgs("completed", "in_progress", start).
		WillReturnRows(sqlmock.NewRows([]string{"total_work_orders", "completed_orders", "in_progress_orders"}).AddRow(8, 6, 1))

	got, err := q.ProductionSummary(context.Background(), &start, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.TotalWorkOrders)
	assert.Equal(t, "75", got.CompletionRate.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueries_ManufacturingStats(t *testing.T) {
	q, mock := newMockQueries(t)
	cols := []string{"total_orders", "pending_orders", "completed_orders", "total_work_orders", "active_work_orders",
		"total_work_centers", "active_work_centers", "total_stock_items", "low_stock_items"}
	mock.ExpectQuery(`WHERE status IN \(\$3, \$4\)`).
		WithArgs("pending", "completed", "ready", "in_progress", true, true, decimal.NewFromInt(10)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(4, 1, 2, 9, 3, 2, 2, 12, 1))

	got, err := q.ManufacturingStats(context.Background(), decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ActiveWorkOrders)
	assert.Equal(t, int64(12), got.TotalStockItems)
	assert.NoError(t, mock.ExpectationsWereMet())
}
