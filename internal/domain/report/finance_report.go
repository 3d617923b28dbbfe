package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProfitLossSummary compares invoiced sales with billed purchases
type ProfitLossSummary struct {
	TotalSales     decimal.Decimal `json:"total_sales"`
	TotalPurchases decimal.Decimal `json:"total_purchases"`
	GrossProfit    decimal.Decimal `json:"gross_profit"`
	ProfitMargin   decimal.Decimal `json:"profit_margin"`
}

// NewProfitLossSummary derives profit and margin from the two totals
func NewProfitLossSummary(sales, purchases decimal.Decimal) ProfitLossSummary {
	profit := sales.Sub(purchases)
	return ProfitLossSummary{
		TotalSales:     sales,
		TotalPurchases: purchases,
		GrossProfit:    profit,
		ProfitMargin:   Margin(profit, sales),
	}
}

// ProfitLossReport is the P&L over a period
type ProfitLossReport struct {
	ReportType  string            `json:"report_type"`
	Period      string            `json:"period"`
	GeneratedAt time.Time         `json:"generated_at"`
	Summary     ProfitLossSummary `json:"summary"`
}

func (r *ProfitLossReport) Title() string { return r.ReportType }

func (r *ProfitLossReport) Sheets() []Sheet {
	return []Sheet{{
		Name:    "Profit and Loss",
		Headers: []string{"Period", "Total Sales", "Total Purchases", "Gross Profit", "Margin %"},
		Rows: [][]any{{
			r.Period,
			r.Summary.TotalSales.InexactFloat64(),
			r.Summary.TotalPurchases.InexactFloat64(),
			r.Summary.GrossProfit.InexactFloat64(),
			r.Summary.ProfitMargin.InexactFloat64(),
		}},
	}}
}

// DashboardCounts are the entity counts of the ERP dashboard
type DashboardCounts struct {
	TotalCompanies      int64 `json:"total_companies" db:"total_companies"`
	TotalProducts       int64 `json:"total_products" db:"total_products"`
	TotalCustomers      int64 `json:"total_customers" db:"total_customers"`
	TotalSuppliers      int64 `json:"total_suppliers" db:"total_suppliers"`
	TotalPurchaseOrders int64 `json:"total_purchase_orders" db:"total_purchase_orders"`
	TotalSalesOrders    int64 `json:"total_sales_orders" db:"total_sales_orders"`
	TotalBills          int64 `json:"total_bills" db:"total_bills"`
	TotalInvoices       int64 `json:"total_invoices" db:"total_invoices"`
}

// DashboardSummary adds current-month paid totals to the counts
type DashboardSummary struct {
	DashboardCounts
	CurrentMonthSales     decimal.Decimal `json:"current_month_sales"`
	CurrentMonthPurchases decimal.Decimal `json:"current_month_purchases"`
	CurrentMonthProfit    decimal.Decimal `json:"current_month_profit"`
}

// DashboardReport is the ERP dashboard
type DashboardReport struct {
	ReportType  string           `json:"report_type"`
	GeneratedAt time.Time        `json:"generated_at"`
	Summary     DashboardSummary `json:"summary"`
}

func (r *DashboardReport) Title() string { return r.ReportType }

func (r *DashboardReport) Sheets() []Sheet {
	s := r.Summary
	return []Sheet{{
		Name:    "Dashboard",
		Headers: []string{"Metric", "Value"},
		Rows: [][]any{
			{"Companies", s.TotalCompanies},
			{"Products", s.TotalProducts},
			{"Customers", s.TotalCustomers},
			{"Suppliers", s.TotalSuppliers},
			{"Purchase Orders", s.TotalPurchaseOrders},
			{"Sales Orders", s.TotalSalesOrders},
			{"Bills", s.TotalBills},
			{"Invoices", s.TotalInvoices},
			{"Current Month Sales", s.CurrentMonthSales.InexactFloat64()},
			{"Current Month Purchases", s.CurrentMonthPurchases.InexactFloat64()},
			{"Current Month Profit", s.CurrentMonthProfit.InexactFloat64()},
		},
	}}
}
