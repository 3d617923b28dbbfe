package commerce

import (
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Default storefront pricing
var (
	DefaultTaxRate        = decimal.RequireFromString("0.18")
	DefaultDeliveryFee    = decimal.RequireFromString("50.00")
	DefaultCommissionRate = decimal.RequireFromString("0.10")
)

// Pricing holds the deployment-wide checkout constants
type Pricing struct {
	TaxRate     decimal.Decimal
	DeliveryFee decimal.Decimal
}

// DefaultPricing returns the stock tax rate and delivery fee
func DefaultPricing() Pricing {
	return Pricing{TaxRate: DefaultTaxRate, DeliveryFee: DefaultDeliveryFee}
}

// Quote is the money breakdown of an order
type Quote struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Delivery decimal.Decimal
	Total    decimal.Decimal
}

// Quote computes tax = subtotal × rate and total = subtotal + tax + delivery
func (p Pricing) Quote(subtotal decimal.Decimal) Quote {
	subtotal = shared.RoundMoney(subtotal)
	tax := shared.RoundMoney(subtotal.Mul(p.TaxRate))
	delivery := shared.RoundMoney(p.DeliveryFee)
	return Quote{
		Subtotal: subtotal,
		Tax:      tax,
		Delivery: delivery,
		Total:    shared.SumMoney(subtotal, tax, delivery),
	}
}
