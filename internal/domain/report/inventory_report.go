package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockRow is one product line of the stock report
type StockRow struct {
	ProductID      int64           `json:"product_id" db:"product_id"`
	ProductName    string          `json:"product_name" db:"product_name"`
	ProductSKU     string          `json:"product_sku" db:"product_sku"`
	UnitPrice      decimal.Decimal `json:"unit_price" db:"unit_price"`
	StockIn        decimal.Decimal `json:"stock_in" db:"stock_in"`
	StockOut       decimal.Decimal `json:"stock_out" db:"stock_out"`
	AvailableStock decimal.Decimal `json:"available_stock" db:"available_stock"`
	CompanyName    string          `json:"company_name" db:"company_name"`
}

// StockReport lists in/out/available per product
type StockReport struct {
	ReportType    string     `json:"report_type"`
	GeneratedAt   time.Time  `json:"generated_at"`
	TotalProducts int        `json:"total_products"`
	Data          []StockRow `json:"data"`
}

// NewStockReport wraps rows with the report header
func NewStockReport(rows []StockRow, now time.Time) *StockReport {
	if rows == nil {
		rows = []StockRow{}
	}
	return &StockReport{ReportType: "Stock Report", GeneratedAt: now, TotalProducts: len(rows), Data: rows}
}

func (r *StockReport) Title() string { return r.ReportType }

func (r *StockReport) Sheets() []Sheet {
	s := Sheet{
		Name:    "Stock",
		Headers: []string{"Product ID", "Product", "SKU", "Unit Price", "Stock In", "Stock Out", "Available", "Company"},
	}
	for _, row := range r.Data {
		s.Rows = append(s.Rows, []any{
			row.ProductID, row.ProductName, row.ProductSKU, row.UnitPrice.InexactFloat64(),
			row.StockIn.InexactFloat64(), row.StockOut.InexactFloat64(), row.AvailableStock.InexactFloat64(), row.CompanyName,
		})
	}
	return []Sheet{s}
}
