package commerce

import (
	"time"

	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// SellerProduct is a marketplace listing of a product by a seller.
// CreatedBy is the seller.
type SellerProduct struct {
	shared.OwnedEntity
	ProductID        int64
	ProductName      string
	SellingPrice     decimal.Decimal
	CommissionAmount decimal.Decimal
	IsApproved       bool
	ApprovedBy       *int64
	ApprovedAt       *time.Time
}

// NewSellerProduct creates an unapproved listing
func NewSellerProduct(sellerID, productID int64, price, commissionRate decimal.Decimal) (*SellerProduct, error) {
	if productID <= 0 {
		return nil, shared.NewValidationError("product_id is required")
	}
	sp := &SellerProduct{OwnedEntity: shared.NewOwnedEntity(sellerID), ProductID: productID}
	if err := sp.SetSellingPrice(price, commissionRate); err != nil {
		return nil, err
	}
	return sp, nil
}

// SetSellingPrice stores the price and the commission owed on it
func (sp *SellerProduct) SetSellingPrice(price, commissionRate decimal.Decimal) error {
	if !price.IsPositive() {
		return shared.NewValidationError("selling_price must be positive")
	}
	sp.SellingPrice = shared.RoundMoney(price)
	sp.CommissionAmount = Commission(sp.SellingPrice, commissionRate)
	sp.Touch()
	return nil
}

// Approve marks the listing approved by an administrator
func (sp *SellerProduct) Approve(adminID int64, at time.Time) error {
	if sp.IsApproved {
		return shared.NewDomainError("INVALID_STATE", "Seller product is already approved")
	}
	sp.IsApproved = true
	sp.ApprovedBy = &adminID
	sp.ApprovedAt = &at
	sp.Touch()
	return nil
}

// Commission returns amount × rate rounded to currency precision
func Commission(amount, rate decimal.Decimal) decimal.Decimal {
	return shared.RoundMoney(amount.Mul(rate))
}
