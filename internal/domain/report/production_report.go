package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkCenterBreakdown counts work orders per work center
type WorkCenterBreakdown struct {
	WorkCenterName string `json:"work_center_name" db:"work_center_name"`
	Total          int64  `json:"total" db:"total"`
	Completed      int64  `json:"completed" db:"completed"`
}

// ProductionSummary are the headline work-order numbers
type ProductionSummary struct {
	TotalWorkOrders  int64           `json:"total_work_orders" db:"total_work_orders"`
	CompletedOrders  int64           `json:"completed_orders" db:"completed_orders"`
	InProgressOrders int64           `json:"in_progress_orders" db:"in_progress_orders"`
	CompletionRate   decimal.Decimal `json:"completion_rate"`
}

// ProductionReport summarizes work orders created in an optional range
type ProductionReport struct {
	ReportType          string                `json:"report_type"`
	GeneratedAt         time.Time             `json:"generated_at"`
	Start               *time.Time            `json:"start"`
	End                 *time.Time            `json:"end"`
	Summary             ProductionSummary     `json:"summary"`
	WorkCenterBreakdown []WorkCenterBreakdown `json:"work_center_breakdown"`
}

func (r *ProductionReport) Title() string { return r.ReportType }

func (r *ProductionReport) Sheets() []Sheet {
	summary := Sheet{
		Name:    "Summary",
		Headers: []string{"Total", "Completed", "In Progress", "Completion %"},
		Rows: [][]any{{
			r.Summary.TotalWorkOrders, r.Summary.CompletedOrders, r.Summary.InProgressOrders,
			r.Summary.CompletionRate.InexactFloat64(),
		}},
	}
	wc := Sheet{Name: "Work Centers", Headers: []string{"Work Center", "Total", "Completed"}}
	for _, b := range r.WorkCenterBreakdown {
		wc.Rows = append(wc.Rows, []any{b.WorkCenterName, b.Total, b.Completed})
	}
	return []Sheet{summary, wc}
}

// ManufacturingStats is the manufacturing dashboard
type ManufacturingStats struct {
	TotalOrders       int64 `json:"total_orders" db:"total_orders"`
	PendingOrders     int64 `json:"pending_orders" db:"pending_orders"`
	CompletedOrders   int64 `json:"completed_orders" db:"completed_orders"`
	TotalWorkOrders   int64 `json:"total_work_orders" db:"total_work_orders"`
	ActiveWorkOrders  int64 `json:"active_work_orders" db:"active_work_orders"`
	TotalWorkCenters  int64 `json:"total_work_centers" db:"total_work_centers"`
	ActiveWorkCenters int64 `json:"active_work_centers" db:"active_work_centers"`
	TotalStockItems   int64 `json:"total_stock_items" db:"total_stock_items"`
	LowStockItems     int64 `json:"low_stock_items" db:"low_stock_items"`
}
