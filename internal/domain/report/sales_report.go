package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// EcommerceSummary is the headline of the storefront analytics
type EcommerceSummary struct {
	TotalOrders        int64           `json:"total_orders"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	TotalCommission    decimal.Decimal `json:"total_commission"`
	NetProfit          decimal.Decimal `json:"net_profit"`
	TopSellingCategory *string         `json:"top_selling_category"`
	TopSellingProduct  *string         `json:"top_selling_product"`
}

// RecentOrder is a row of the recent orders list
type RecentOrder struct {
	ID          int64           `json:"id" db:"id"`
	OrderNumber string          `json:"order_number" db:"order_number"`
	UserName    string          `json:"user_name" db:"user_name"`
	TotalAmount decimal.Decimal `json:"total_amount" db:"total_amount"`
	Status      string          `json:"status" db:"status"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// MonthlyRevenue is revenue in one calendar month
type MonthlyRevenue struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

// EcommerceAnalytics summarizes storefront activity over the last 30 days
type EcommerceAnalytics struct {
	ReportType   string           `json:"report_type"`
	GeneratedAt  time.Time        `json:"generated_at"`
	Period       string           `json:"period"`
	Summary      EcommerceSummary `json:"summary"`
	RecentOrders []RecentOrder    `json:"recent_orders"`
	MonthlySales []MonthlyRevenue `json:"monthly_sales"`
}

func (r *EcommerceAnalytics) Title() string { return r.ReportType }

func (r *EcommerceAnalytics) Sheets() []Sheet {
	str := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	summary := Sheet{
		Name:    "Summary",
		Headers: []string{"Orders", "Revenue", "Commission", "Net", "Top Category", "Top Product"},
		Rows: [][]any{{
			r.Summary.TotalOrders, r.Summary.TotalRevenue.InexactFloat64(), r.Summary.TotalCommission.InexactFloat64(),
			r.Summary.NetProfit.InexactFloat64(), str(r.Summary.TopSellingCategory), str(r.Summary.TopSellingProduct),
		}},
	}
	recent := Sheet{Name: "Recent Orders", Headers: []string{"ID", "Order", "User", "Total", "Status", "Created"}}
	for _, o := range r.RecentOrders {
		recent.Rows = append(recent.Rows, []any{o.ID, o.OrderNumber, o.UserName, o.TotalAmount.InexactFloat64(), o.Status, o.CreatedAt})
	}
	monthly := Sheet{Name: "Monthly", Headers: []string{"Month", "Revenue"}}
	for _, m := range r.MonthlySales {
		monthly.Rows = append(monthly.Rows, []any{m.Month, m.Revenue.InexactFloat64()})
	}
	return []Sheet{summary, recent, monthly}
}

// ProductSales is quantity and revenue sold for a product
type ProductSales struct {
	ProductName  string          `json:"product_name" db:"product_name"`
	CategoryName *string         `json:"category_name" db:"category_name"`
	UnitPrice    decimal.Decimal `json:"unit_price" db:"unit_price"`
	TotalSales   int64           `json:"total_sales" db:"total_sales"`
	TotalRevenue decimal.Decimal `json:"total_revenue" db:"total_revenue"`
}

// CategorySales is quantity and revenue sold for a category
type CategorySales struct {
	CategoryName *string         `json:"category_name" db:"category_name"`
	TotalSales   int64           `json:"total_sales" db:"total_sales"`
	TotalRevenue decimal.Decimal `json:"total_revenue" db:"total_revenue"`
}

// LowStockProduct is an active product under the low-stock threshold
type LowStockProduct struct {
	Name          string          `json:"name" db:"name"`
	StockQuantity decimal.Decimal `json:"stock_quantity" db:"stock_quantity"`
	CategoryName  *string         `json:"category_name" db:"category_name"`
}

// ProductPerformance ranks products and categories by quantity sold
type ProductPerformance struct {
	ReportType          string            `json:"report_type"`
	GeneratedAt         time.Time         `json:"generated_at"`
	TopProducts         []ProductSales    `json:"top_products"`
	CategoryPerformance []CategorySales   `json:"category_performance"`
	LowStockProducts    []LowStockProduct `json:"low_stock_products"`
}

func (r *ProductPerformance) Title() string { return r.ReportType }

func (r *ProductPerformance) Sheets() []Sheet {
	str := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	top := Sheet{Name: "Top Products", Headers: []string{"Product", "Category", "Unit Price", "Quantity", "Revenue"}}
	for _, p := range r.TopProducts {
		top.Rows = append(top.Rows, []any{p.ProductName, str(p.CategoryName), p.UnitPrice.InexactFloat64(), p.TotalSales, p.TotalRevenue.InexactFloat64()})
	}
	cats := Sheet{Name: "Categories", Headers: []string{"Category", "Quantity", "Revenue"}}
	for _, c := range r.CategoryPerformance {
		cats.Rows = append(cats.Rows, []any{str(c.CategoryName), c.TotalSales, c.TotalRevenue.InexactFloat64()})
	}
	low := Sheet{Name: "Low Stock", Headers: []string{"Product", "Stock", "Category"}}
	for _, l := range r.LowStockProducts {
		low.Rows = append(low.Rows, []any{l.Name, l.StockQuantity.InexactFloat64(), str(l.CategoryName)})
	}
	return []Sheet{top, cats, low}
}
