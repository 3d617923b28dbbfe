package commerce

import (
	"time"

	"github.com/erp/bizhub/internal/domain/commerce"
	"github.com/shopspring/decimal"
)

// ==================== Cart DTOs ====================

// AddToCartRequest adds a product to the caller's cart
type AddToCartRequest struct {
	ProductID int64 `json:"product" binding:"required,gt=0"`
	Quantity  int   `json:"quantity" binding:"omitempty,min=1"`
}

// UpdateCartItemRequest replaces a cart row's quantity
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CartItemResponse is one cart row with its current price
type CartItemResponse struct {
	ID           int64           `json:"id"`
	ProductID    int64           `json:"product"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Quantity     int             `json:"quantity"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToCartItemResponse converts a cart row
func ToCartItemResponse(c *commerce.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:           c.ID,
		ProductID:    c.ProductID,
		ProductName:  c.ProductName,
		ProductPrice: c.UnitPrice,
		Quantity:     c.Quantity,
		TotalPrice:   c.TotalPrice(),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// CartResponse is the caller's whole cart
type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	ItemsCount int                `json:"items_count"`
	Total      decimal.Decimal    `json:"total"`
}

// ==================== Order DTOs ====================

// CheckoutRequest places an order from the caller's cart
type CheckoutRequest struct {
	ShippingAddress string `json:"shipping_address" binding:"required"`
	PaymentMethod   string `json:"payment_method" binding:"max=50"`
	Notes           string `json:"notes"`
}

// OrderStatusRequest changes an order's status and optionally its payment status
type OrderStatusRequest struct {
	Status        string `json:"status" binding:"required"`
	PaymentStatus string `json:"payment_status" binding:"omitempty,oneof=pending paid failed refunded"`
}

// OrderItemResponse is one line of a placed order
type OrderItemResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// OrderResponse is the API view of a storefront order
type OrderResponse struct {
	ID              int64               `json:"id"`
	UserID          int64               `json:"user"`
	OrderNumber     string              `json:"order_number"`
	Status          string              `json:"status"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	TaxAmount       decimal.Decimal     `json:"tax_amount"`
	DeliveryCharge  decimal.Decimal     `json:"delivery_charge"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	ShippingAddress string              `json:"shipping_address"`
	PaymentMethod   string              `json:"payment_method"`
	PaymentStatus   string              `json:"payment_status"`
	Notes           string              `json:"notes"`
	ItemsCount      int                 `json:"items_count"`
	OrderItems      []OrderItemResponse `json:"order_items"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// ToOrderResponse converts a domain order
func ToOrderResponse(o *commerce.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		}
	}
	return OrderResponse{
		ID:              o.ID,
		UserID:          o.CreatedBy,
		OrderNumber:     o.OrderNumber,
		Status:          string(o.Status),
		Subtotal:        o.Subtotal,
		TaxAmount:       o.TaxAmount,
		DeliveryCharge:  o.DeliveryCharge,
		TotalAmount:     o.TotalAmount,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		PaymentStatus:   string(o.PaymentStatus),
		Notes:           o.Notes,
		ItemsCount:      o.ItemCount(),
		OrderItems:      items,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// ==================== Seller product DTOs ====================

// SellerProductRequest lists a product for sale by the caller
type SellerProductRequest struct {
	ProductID    int64           `json:"product" binding:"required,gt=0"`
	SellingPrice decimal.Decimal `json:"selling_price" binding:"decimal_gt0"`
}

// SellerProductResponse is the API view of a seller listing
type SellerProductResponse struct {
	ID               int64           `json:"id"`
	SellerID         int64           `json:"seller"`
	ProductID        int64           `json:"product"`
	ProductName      string          `json:"product_name"`
	SellingPrice     decimal.Decimal `json:"selling_price"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	IsApproved       bool            `json:"is_approved"`
	ApprovedBy       *int64          `json:"approved_by"`
	ApprovedAt       *time.Time      `json:"approved_at"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ToSellerProductResponse converts a seller listing
func ToSellerProductResponse(sp *commerce.SellerProduct) SellerProductResponse {
	return SellerProductResponse{
		ID:               sp.ID,
		SellerID:         sp.CreatedBy,
		ProductID:        sp.ProductID,
		ProductName:      sp.ProductName,
		SellingPrice:     sp.SellingPrice,
		CommissionAmount: sp.CommissionAmount,
		IsApproved:       sp.IsApproved,
		ApprovedBy:       sp.ApprovedBy,
		ApprovedAt:       sp.ApprovedAt,
		CreatedAt:        sp.CreatedAt,
		UpdatedAt:        sp.UpdatedAt,
	}
}

func mapSlice[T, R any](items []T, fn func(*T) R) []R {
	out := make([]R, len(items))
	for i := range items {
		out[i] = fn(&items[i])
	}
	return out
}
