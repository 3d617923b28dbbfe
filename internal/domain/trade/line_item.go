package trade

import (
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// LineItem is a quantity/price pair on an order
type LineItem struct {
	ID          int64
	ProductID   int64
	ProductName string // read-only, resolved on load
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// LineInput is the caller-supplied part of a line item
type LineInput struct {
	ProductID int64
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// NewLineItem validates the input and computes the line total
func NewLineItem(in LineInput) (LineItem, error) {
	if in.ProductID <= 0 {
		return LineItem{}, shared.NewValidationError("product_id is required")
	}
	if !in.Quantity.IsPositive() {
		return LineItem{}, shared.NewValidationError("quantity must be positive")
	}
	if in.UnitPrice.IsNegative() {
		return LineItem{}, shared.NewValidationError("unit_price cannot be negative")
	}
	return LineItem{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		LineTotal: shared.RoundMoney(in.Quantity.Mul(in.UnitPrice)),
	}, nil
}

func buildLines(inputs []LineInput) ([]LineItem, error) {
	if len(inputs) == 0 {
		return nil, shared.NewValidationError("at least one line item is required")
	}
	lines := make([]LineItem, 0, len(inputs))
	for i, in := range inputs {
		line, err := NewLineItem(in)
		if err != nil {
			return nil, shared.NewValidationError("line %d: %s", i+1, err.Error())
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// totals returns subtotal and total for the given lines and tax
func totals(lines []LineItem, tax decimal.Decimal) (subtotal, total decimal.Decimal) {
	sums := make([]decimal.Decimal, len(lines))
	for i, l := range lines {
		sums[i] = l.LineTotal
	}
	subtotal = shared.SumMoney(sums...)
	return subtotal, shared.SumMoney(subtotal, tax)
}
