package finance

import (
	"github.com/erp/bizhub/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// Line is a bill or invoice line copied verbatim from the source order
type Line struct {
	ID          int64
	ProductID   int64
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

func copyLines(items []trade.LineItem) []Line {
	lines := make([]Line, len(items))
	for i, it := range items {
		lines[i] = Line{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
		}
	}
	return lines
}
