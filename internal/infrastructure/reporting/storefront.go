package reporting

import (
	"context"
	"database/sql"
	"errors"

	"github.com/erp/bizhub/internal/domain/commerce"
	"github.com/erp/bizhub/internal/domain/report"
	"github.com/shopspring/decimal"
)

// revenueStatuses are the order statuses counted as revenue
var revenueStatuses = []commerce.OrderStatus{
	commerce.OrderStatusConfirmed,
	commerce.OrderStatusShipped,
	commerce.OrderStatusDelivered,
}

const soldItems = ` FROM order_items oi
	JOIN orders o ON o.id = oi.order_id
	JOIN products p ON p.id = oi.product_id
	LEFT JOIN categories cat ON cat.id = p.category_id`

// OrderCount counts orders created within p
func (q *Queries) OrderCount(ctx context.Context, p report.Period) (int64, error) {
	var n int64
	err := q.get(ctx, &n, `SELECT COUNT(*) FROM orders o WHERE o.created_at >= ? AND o.created_at < ?`,
		p.Start, p.EndExclusive())
	return n, err
}

// Revenue sums confirmed, shipped and delivered orders created within p
func (q *Queries) Revenue(ctx context.Context, p report.Period) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := q.getIn(ctx, &total, `SELECT COALESCE(SUM(o.total_amount), 0) FROM orders o
		WHERE o.created_at >= ? AND o.created_at < ? AND o.status IN (?)`,
		p.Start, p.EndExclusive(), revenueStatuses)
	return total, err
}

// TopCategory names the category with the most units sold within p
func (q *Queries) TopCategory(ctx context.Context, p report.Period) (*string, error) {
	return q.topName(ctx, "cat.name", p)
}

// TopProduct names the product with the most units sold within p
func (q *Queries) TopProduct(ctx context.Context, p report.Period) (*string, error) {
	return q.topName(ctx, "p.name", p)
}

func (q *Queries) topName(ctx context.Context, column string, p report.Period) (*string, error) {
	var name sql.NullString
	err := q.getIn(ctx, &name, `SELECT `+column+soldItems+`
		WHERE o.created_at >= ? AND o.created_at < ? AND o.status IN (?)
		GROUP BY `+column+`
		ORDER BY SUM(oi.quantity) DESC
		LIMIT 1`, p.Start, p.EndExclusive(), revenueStatuses)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !name.Valid {
		return nil, nil
	}
	return &name.String, nil
}

// RecentOrders lists the newest orders created within p
func (q *Queries) RecentOrders(ctx context.Context, p report.Period, limit int) ([]report.RecentOrder, error) {
	rows := []report.RecentOrder{}
	err := q.selectAll(ctx, &rows, `SELECT o.id, o.order_number, u.username AS user_name, o.total_amount, o.status, o.created_at
		FROM orders o
		JOIN users u ON u.id = o.created_by
		WHERE o.created_at >= ? AND o.created_at < ?
		ORDER BY o.created_at DESC
		LIMIT ?`, p.Start, p.EndExclusive(), limit)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// TopProducts ranks products by units sold on revenue orders
func (q *Queries) TopProducts(ctx context.Context, limit int) ([]report.ProductSales, error) {
	rows := []report.ProductSales{}
	err := q.selectIn(ctx, &rows, `SELECT p.name AS product_name, cat.name AS category_name, p.unit_price,
		COALESCE(SUM(oi.quantity), 0) AS total_sales, COALESCE(SUM(oi.total_price), 0) AS total_revenue`+soldItems+`
		WHERE o.status IN (?)
		GROUP BY p.id, p.name, cat.name, p.unit_price
		ORDER BY total_sales DESC
		LIMIT ?`, revenueStatuses, limit)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CategoryPerformance ranks categories by units sold on revenue orders
func (q *Queries) CategoryPerformance(ctx context.Context) ([]report.CategorySales, error) {
	rows := []report.CategorySales{}
	err := q.selectIn(ctx, &rows, `SELECT cat.name AS category_name,
		COALESCE(SUM(oi.quantity), 0) AS total_sales, COALESCE(SUM(oi.total_price), 0) AS total_revenue`+soldItems+`
		WHERE o.status IN (?)
		GROUP BY cat.name
		ORDER BY total_sales DESC`, revenueStatuses)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// LowStock lists active products whose stock is under threshold
func (q *Queries) LowStock(ctx context.Context, threshold decimal.Decimal) ([]report.LowStockProduct, error) {
	rows := []report.LowStockProduct{}
	err := q.selectAll(ctx, &rows, `SELECT p.name, p.stock_quantity, cat.name AS category_name
		FROM products p
		LEFT JOIN categories cat ON cat.id = p.category_id
		WHERE p.stock_quantity < ? AND p.is_active = ?
		ORDER BY p.stock_quantity ASC, p.name ASC`, threshold, true)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
