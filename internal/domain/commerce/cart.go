package commerce

import (
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CartItem is one product in a user's cart. (user, product) is unique.
type CartItem struct {
	shared.BaseEntity
	UserID    int64
	ProductID int64
	Quantity  int

	// resolved from the product on load
	ProductName      string
	CompanyID        int64
	UnitPrice        decimal.Decimal
	StockQuantity    decimal.Decimal
	MinOrderQuantity int
}

// NewCartItem creates a cart row for a product
func NewCartItem(userID, productID int64, quantity int) (*CartItem, error) {
	if productID <= 0 {
		return nil, shared.NewValidationError("product_id is required")
	}
	if quantity < 1 {
		return nil, shared.NewValidationError("quantity must be at least 1")
	}
	return &CartItem{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		ProductID:  productID,
		Quantity:   quantity,
	}, nil
}

// Add increases the quantity when the same product is added again
func (c *CartItem) Add(quantity int) error {
	if quantity < 1 {
		return shared.NewValidationError("quantity must be at least 1")
	}
	c.Quantity += quantity
	c.Touch()
	return nil
}

// SetQuantity replaces the quantity
func (c *CartItem) SetQuantity(quantity int) error {
	if quantity < 1 {
		return shared.NewValidationError("quantity must be at least 1")
	}
	c.Quantity = quantity
	c.Touch()
	return nil
}

// TotalPrice is quantity × current product unit price
func (c *CartItem) TotalPrice() decimal.Decimal {
	return shared.RoundMoney(c.UnitPrice.Mul(decimal.NewFromInt(int64(c.Quantity))))
}

// CartTotal sums the total price of every row
func CartTotal(items []CartItem) decimal.Decimal {
	sums := make([]decimal.Decimal, len(items))
	for i := range items {
		sums[i] = items[i].TotalPrice()
	}
	return shared.SumMoney(sums...)
}
