package commerce

import (
	"strings"

	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfilment status of a storefront order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid checks if the status is known
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks if the status can transition to the target status
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusConfirmed || target == OrderStatusCancelled
	case OrderStatusConfirmed:
		return target == OrderStatusShipped || target == OrderStatusCancelled
	case OrderStatusShipped:
		return target == OrderStatusDelivered
	}
	return false
}

// CountsAsRevenue reports whether orders in this status count toward revenue
func (s OrderStatus) CountsAsRevenue() bool {
	return s == OrderStatusConfirmed || s == OrderStatusShipped || s == OrderStatusDelivered
}

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// IsValid checks if the payment status is known
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// DefaultPaymentMethod is used when checkout does not name one
const DefaultPaymentMethod = "cash_on_delivery"

// OrderItem is a product line on a storefront order
type OrderItem struct {
	ID          int64
	ProductID   int64
	ProductName string
	CompanyID   int64
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// Order is a placed storefront order. CreatedBy is the buying user.
type Order struct {
	shared.OwnedEntity
	OrderNumber     string
	Status          OrderStatus
	Subtotal        decimal.Decimal
	TaxAmount       decimal.Decimal
	DeliveryCharge  decimal.Decimal
	TotalAmount     decimal.Decimal
	ShippingAddress string
	PaymentMethod   string
	PaymentStatus   PaymentStatus
	Notes           string
	Items           []OrderItem
}

// CheckoutDetails is what the buyer supplies at checkout
type CheckoutDetails struct {
	ShippingAddress string
	PaymentMethod   string
	Notes           string
}

// ErrEmptyCart is returned when checking out with no cart rows
var ErrEmptyCart = shared.NewDomainError("EMPTY_CART", "Cart is empty")

// PlaceOrder builds a pending order from cart rows, copying each product's current unit price
func PlaceOrder(userID int64, cart []CartItem, pricing Pricing, d CheckoutDetails) (*Order, error) {
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}
	if strings.TrimSpace(d.ShippingAddress) == "" {
		return nil, shared.NewValidationError("shipping_address is required")
	}
	if strings.TrimSpace(d.PaymentMethod) == "" {
		d.PaymentMethod = DefaultPaymentMethod
	}

	items := make([]OrderItem, 0, len(cart))
	sums := make([]decimal.Decimal, 0, len(cart))
	for _, c := range cart {
		total := shared.RoundMoney(c.UnitPrice.Mul(decimal.NewFromInt(int64(c.Quantity))))
		items = append(items, OrderItem{
			ProductID:   c.ProductID,
			ProductName: c.ProductName,
			CompanyID:   c.CompanyID,
			Quantity:    c.Quantity,
			UnitPrice:   c.UnitPrice,
			TotalPrice:  total,
		})
		sums = append(sums, total)
	}
	q := pricing.Quote(shared.SumMoney(sums...))

	return &Order{
		OwnedEntity:     shared.NewOwnedEntity(userID),
		Status:          OrderStatusPending,
		Subtotal:        q.Subtotal,
		TaxAmount:       q.Tax,
		DeliveryCharge:  q.Delivery,
		TotalAmount:     q.Total,
		ShippingAddress: d.ShippingAddress,
		PaymentMethod:   d.PaymentMethod,
		PaymentStatus:   PaymentStatusPending,
		Notes:           d.Notes,
		Items:           items,
	}, nil
}

// AssignNumber sets the order number if none is present
func (o *Order) AssignNumber(number string) {
	if o.OrderNumber == "" {
		o.OrderNumber = number
	}
}

// ChangeStatus applies a guarded status transition
func (o *Order) ChangeStatus(target OrderStatus) error {
	if !target.IsValid() {
		return shared.NewValidationError("unknown order status %q", target)
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot move order from "+string(o.Status)+" to "+string(target))
	}
	o.Status = target
	o.Touch()
	return nil
}

// SetPaymentStatus records the payment state
func (o *Order) SetPaymentStatus(status PaymentStatus) error {
	if !status.IsValid() {
		return shared.NewValidationError("unknown payment status %q", status)
	}
	o.PaymentStatus = status
	o.Touch()
	return nil
}

// ItemCount returns the number of units ordered
func (o *Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}
