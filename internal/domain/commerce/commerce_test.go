package commerce

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartRow(productID int64, price string, qty int) CartItem {
	return CartItem{
		ProductID:   productID,
		ProductName: "p",
		CompanyID:   2,
		UnitPrice:   decimal.RequireFromString(price),
		Quantity:    qty,
	}
}

func TestPlaceOrder_Totals(t *testing.T) {
	cart := []CartItem{cartRow(1, "100.00", 2), cartRow(2, "49.99", 1)}

	order, err := PlaceOrder(5, cart, DefaultPricing(), CheckoutDetails{ShippingAddress: "12 MG Road"})
	require.NoError(t, err)

	assert.Equal(t, "249.99", order.Subtotal.StringFixed(2))
	assert.Equal(t, "45.00", order.TaxAmount.StringFixed(2))
	assert.Equal(t, "50.00", order.DeliveryCharge.StringFixed(2))
	assert.True(t, order.TotalAmount.Equal(order.Subtotal.Add(order.TaxAmount).Add(order.DeliveryCharge)))
	assert.Equal(t, DefaultPaymentMethod, order.PaymentMethod)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, 3, order.ItemCount())
	require.Len(t, order.Items, 2)
	assert.Equal(t, "200", order.Items[0].TotalPrice.String())
	assert.Equal(t, int64(2), order.Items[0].CompanyID)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	_, err := PlaceOrder(5, nil, DefaultPricing(), CheckoutDetails{ShippingAddress: "x"})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrder_RequiresAddress(t *testing.T) {
	_, err := PlaceOrder(5, []CartItem{cartRow(1, "1", 1)}, DefaultPricing(), CheckoutDetails{})
	assert.ErrorContains(t, err, "shipping_address")
}

func TestPricing_QuoteCustomRate(t *testing.T) {
	p := Pricing{TaxRate: decimal.RequireFromString("0.05"), DeliveryFee: decimal.Zero}
	q := p.Quote(decimal.RequireFromString("10.10"))
	assert.Equal(t, "0.51", q.Tax.StringFixed(2))
	assert.Equal(t, "10.61", q.Total.StringFixed(2))
}

func TestOrder_StatusFlow(t *testing.T) {
	o := &Order{Status: OrderStatusPending}
	assert.Error(t, o.ChangeStatus(OrderStatusShipped))
	require.NoError(t, o.ChangeStatus(OrderStatusConfirmed))
	require.NoError(t, o.ChangeStatus(OrderStatusShipped))
	assert.Error(t, o.ChangeStatus(OrderStatusCancelled))
	require.NoError(t, o.ChangeStatus(OrderStatusDelivered))
	assert.True(t, o.Status.CountsAsRevenue())
	assert.Error(t, o.SetPaymentStatus("bounced"))
}

func TestCartItem_Quantities(t *testing.T) {
	_, err := NewCartItem(1, 2, 0)
	assert.Error(t, err)

	c, err := NewCartItem(1, 2, 1)
	require.NoError(t, err)
	require.NoError(t, c.Add(2))
	assert.Equal(t, 3, c.Quantity)
	c.UnitPrice = decimal.RequireFromString("3.33")
	assert.Equal(t, "9.99", c.TotalPrice().String())
	assert.Equal(t, "9.99", CartTotal([]CartItem{*c}).String())
}

func TestSellerProduct_Commission(t *testing.T) {
	sp, err := NewSellerProduct(4, 9, decimal.RequireFromString("199.99"), DefaultCommissionRate)
	require.NoError(t, err)
	assert.Equal(t, "20", sp.CommissionAmount.String())

	require.NoError(t, sp.SetSellingPrice(decimal.RequireFromString("55.55"), DefaultCommissionRate))
	assert.Equal(t, "5.56", sp.CommissionAmount.String())

	_, err = NewSellerProduct(4, 9, decimal.Zero, DefaultCommissionRate)
	assert.Error(t, err)
}

func TestSellerProduct_Approve(t *testing.T) {
	sp, err := NewSellerProduct(4, 9, decimal.NewFromInt(10), DefaultCommissionRate)
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, sp.Approve(1, now))
	assert.True(t, sp.IsApproved)
	assert.Equal(t, int64(1), *sp.ApprovedBy)
	assert.Error(t, sp.Approve(1, now))
}
