package catalog

import (
	"strings"

	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TaxType says how a tax rate is applied
type TaxType string

const (
	TaxTypePercentage TaxType = "percentage"
	TaxTypeFixed      TaxType = "fixed"
)

// IsValid checks if the tax type is known
func (t TaxType) IsValid() bool {
	return t == TaxTypePercentage || t == TaxTypeFixed
}

// Tax is a company-defined tax that products may reference
type Tax struct {
	shared.OwnedEntity
	CompanyID int64
	Name      string
	Rate      decimal.Decimal
	TaxType   TaxType
	IsActive  bool
}

// NewTax creates an active tax
func NewTax(ownerID, companyID int64, name string, rate decimal.Decimal, taxType TaxType) (*Tax, error) {
	t := &Tax{OwnedEntity: shared.NewOwnedEntity(ownerID), IsActive: true}
	if err := t.Update(companyID, name, rate, taxType); err != nil {
		return nil, err
	}
	return t, nil
}

// Update replaces the tax definition
func (t *Tax) Update(companyID int64, name string, rate decimal.Decimal, taxType TaxType) error {
	if companyID <= 0 {
		return shared.NewValidationError("company_id is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("tax name is required")
	}
	if taxType == "" {
		taxType = TaxTypePercentage
	}
	if !taxType.IsValid() {
		return shared.NewValidationError("tax_type must be percentage or fixed")
	}
	if rate.IsNegative() {
		return shared.NewValidationError("tax rate cannot be negative")
	}
	if taxType == TaxTypePercentage && rate.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewValidationError("percentage tax rate cannot exceed 100")
	}
	t.CompanyID = companyID
	t.Name = name
	t.Rate = rate
	t.TaxType = taxType
	t.Touch()
	return nil
}

// AmountFor computes the tax owed on a net amount
func (t *Tax) AmountFor(net decimal.Decimal) decimal.Decimal {
	if t.TaxType == TaxTypeFixed {
		return shared.RoundMoney(t.Rate)
	}
	return shared.RoundMoney(net.Mul(t.Rate).Div(decimal.NewFromInt(100)))
}
