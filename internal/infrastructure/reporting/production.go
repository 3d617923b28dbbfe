package reporting

import (
	"context"
	"time"

	"github.com/erp/bizhub/internal/domain/manufacturing"
	"github.com/erp/bizhub/internal/domain/report"
	"github.com/shopspring/decimal"
)

func createdBetween(alias string, start, end *time.Time) *where {
	w := &where{}
	if start != nil {
		w.add(alias+".created_at >= ?", *start)
	}
	if end != nil {
		w.add(alias+".created_at <= ?", *end)
	}
	return w
}

// ProductionSummary counts work orders created in the optional range
func (q *Queries) ProductionSummary(ctx context.Context, start, end *time.Time) (report.ProductionSummary, error) {
	w := createdBetween("wo", start, end)
	args := append([]any{manufacturing.WorkOrderStatusCompleted, manufacturing.WorkOrderStatusInProgress}, w.args...)

	var s report.ProductionSummary
	err := q.get(ctx, &s, `SELECT COUNT(*) AS total_work_orders,
		COALESCE(SUM(CASE WHEN wo.status = ? THEN 1 ELSE 0 END), 0) AS completed_orders,
		COALESCE(SUM(CASE WHEN wo.status = ? THEN 1 ELSE 0 END), 0) AS in_progress_orders
		FROM work_orders wo`+w.String(), args...)
	if err != nil {
		return report.ProductionSummary{}, err
	}
	s.CompletionRate = report.Rate(s.CompletedOrders, s.TotalWorkOrders)
	return s, nil
}

// WorkCenterBreakdown counts work orders per work center in the optional range
func (q *Queries) WorkCenterBreakdown(ctx context.Context, start, end *time.Time) ([]report.WorkCenterBreakdown, error) {
	w := createdBetween("wo", start, end)
	args := append([]any{manufacturing.WorkOrderStatusCompleted}, w.args...)

	rows := []report.WorkCenterBreakdown{}
	err := q.selectAll(ctx, &rows, `SELECT wc.name AS work_center_name, COUNT(wo.id) AS total,
		COALESCE(SUM(CASE WHEN wo.status = ? THEN 1 ELSE 0 END), 0) AS completed
		FROM work_orders wo
		JOIN work_centers wc ON wc.id = wo.work_center_id`+w.String()+`
		GROUP BY wc.id, wc.name
		ORDER BY wc.name ASC`, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ManufacturingStats reads the manufacturing dashboard counters
func (q *Queries) ManufacturingStats(ctx context.Context, lowStock decimal.Decimal) (report.ManufacturingStats, error) {
	var s report.ManufacturingStats
	err := q.getIn(ctx, &s, `SELECT
		(SELECT COUNT(*) FROM manufacturing_orders) AS total_orders,
		(SELECT COUNT(*) FROM manufacturing_orders WHERE status = ?) AS pending_orders,
		(SELECT COUNT(*) FROM manufacturing_orders WHERE status = ?) AS completed_orders,
		(SELECT COUNT(*) FROM work_orders) AS total_work_orders,
		(SELECT COUNT(*) FROM work_orders WHERE status IN (?)) AS active_work_orders,
		(SELECT COUNT(*) FROM work_centers) AS total_work_centers,
		(SELECT COUNT(*) FROM work_centers WHERE is_active = ?) AS active_work_centers,
		(SELECT COUNT(DISTINCT product_id) FROM stock_movements) AS total_stock_items,
		(SELECT COUNT(*) FROM products WHERE is_active = ? AND stock_quantity < ?) AS low_stock_items`,
		manufacturing.OrderStatusPending,
		manufacturing.OrderStatusCompleted,
		[]manufacturing.WorkOrderStatus{manufacturing.WorkOrderStatusReady, manufacturing.WorkOrderStatusInProgress},
		true,
		true, lowStock,
	)
	return s, err
}
