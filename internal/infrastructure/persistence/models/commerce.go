package models

import (
	"time"

	"github.com/erp/bizhub/internal/domain/commerce"
	"github.com/shopspring/decimal"
)

// CartItemModel is the persistence model for a cart row.
// Product columns are read-only and resolved through a join on products.
type CartItemModel struct {
	BaseModel
	UserID           int64           `gorm:"not null;uniqueIndex:idx_cart_user_product,priority:1"`
	ProductID        int64           `gorm:"not null;uniqueIndex:idx_cart_user_product,priority:2"`
	Quantity         int             `gorm:"not null"`
	ProductName      string          `gorm:"->;-:migration"`
	CompanyID        int64           `gorm:"->;-:migration"`
	UnitPrice        decimal.Decimal `gorm:"->;-:migration"`
	StockQuantity    decimal.Decimal `gorm:"->;-:migration"`
	MinOrderQuantity int             `gorm:"->;-:migration"`
}

// TableName returns the table name for GORM
func (CartItemModel) TableName() string {
	return "cart_items"
}

// ToDomain converts the persistence model to a domain CartItem
func (m *CartItemModel) ToDomain() *commerce.CartItem {
	return &commerce.CartItem{
		BaseEntity:       m.BaseModel.ToDomain(),
		UserID:           m.UserID,
		ProductID:        m.ProductID,
		Quantity:         m.Quantity,
		ProductName:      m.ProductName,
		CompanyID:        m.CompanyID,
		UnitPrice:        m.UnitPrice,
		StockQuantity:    m.StockQuantity,
		MinOrderQuantity: m.MinOrderQuantity,
	}
}

// FromDomain populates the persistence model from a domain CartItem
func (m *CartItemModel) FromDomain(c *commerce.CartItem) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.UserID = c.UserID
	m.ProductID = c.ProductID
	m.Quantity = c.Quantity
}

// OrderItemModel is a storefront order line
type OrderItemModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	OrderID     int64           `gorm:"not null;index"`
	ProductID   int64           `gorm:"not null;index"`
	ProductName string          `gorm:"->;-:migration"`
	CompanyID   int64           `gorm:"->;-:migration"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// OrderModel is the persistence model for the Order aggregate
type OrderModel struct {
	OwnedModel
	OrderNumber     string                 `gorm:"type:varchar(50);not null;uniqueIndex"`
	Status          commerce.OrderStatus   `gorm:"type:varchar(20);not null;default:'pending';index"`
	Subtotal        decimal.Decimal        `gorm:"type:decimal(14,2);not null"`
	TaxAmount       decimal.Decimal        `gorm:"type:decimal(14,2);not null"`
	DeliveryCharge  decimal.Decimal        `gorm:"type:decimal(10,2);not null"`
	TotalAmount     decimal.Decimal        `gorm:"type:decimal(14,2);not null"`
	ShippingAddress string                 `gorm:"type:text;not null"`
	PaymentMethod   string                 `gorm:"type:varchar(50);not null"`
	PaymentStatus   commerce.PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	Notes           string                 `gorm:"type:text"`
	Items           []OrderItemModel       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order
func (m *OrderModel) ToDomain() *commerce.Order {
	items := make([]commerce.OrderItem, len(m.Items))
	for i, it := range m.Items {
		items[i] = commerce.OrderItem{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			CompanyID:   it.CompanyID,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		}
	}
	return &commerce.Order{
		OwnedEntity:     m.ToOwned(),
		OrderNumber:     m.OrderNumber,
		Status:          m.Status,
		Subtotal:        m.Subtotal,
		TaxAmount:       m.TaxAmount,
		DeliveryCharge:  m.DeliveryCharge,
		TotalAmount:     m.TotalAmount,
		ShippingAddress: m.ShippingAddress,
		PaymentMethod:   m.PaymentMethod,
		PaymentStatus:   m.PaymentStatus,
		Notes:           m.Notes,
		Items:           items,
	}
}

// FromDomain populates the persistence model from a domain Order
func (m *OrderModel) FromDomain(o *commerce.Order) {
	m.FromDomainOwnedEntity(o.OwnedEntity)
	m.OrderNumber = o.OrderNumber
	m.Status = o.Status
	m.Subtotal = o.Subtotal
	m.TaxAmount = o.TaxAmount
	m.DeliveryCharge = o.DeliveryCharge
	m.TotalAmount = o.TotalAmount
	m.ShippingAddress = o.ShippingAddress
	m.PaymentMethod = o.PaymentMethod
	m.PaymentStatus = o.PaymentStatus
	m.Notes = o.Notes
	m.Items = make([]OrderItemModel, len(o.Items))
	for i, it := range o.Items {
		m.Items[i] = OrderItemModel{
			ID:         it.ID,
			OrderID:    o.ID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		}
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order
func OrderModelFromDomain(o *commerce.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// SellerProductModel is the persistence model for a marketplace listing
type SellerProductModel struct {
	OwnedModel
	ProductID        int64           `gorm:"not null;index"`
	ProductName      string          `gorm:"->;-:migration"`
	SellingPrice     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CommissionAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	IsApproved       bool            `gorm:"not null;default:false;index"`
	ApprovedBy       *int64
	ApprovedAt       *time.Time
}

// TableName returns the table name for GORM
func (SellerProductModel) TableName() string {
	return "seller_products"
}

// ToDomain converts the persistence model to a domain SellerProduct
func (m *SellerProductModel) ToDomain() *commerce.SellerProduct {
	return &commerce.SellerProduct{
		OwnedEntity:      m.ToOwned(),
		ProductID:        m.ProductID,
		ProductName:      m.ProductName,
		SellingPrice:     m.SellingPrice,
		CommissionAmount: m.CommissionAmount,
		IsApproved:       m.IsApproved,
		ApprovedBy:       m.ApprovedBy,
		ApprovedAt:       m.ApprovedAt,
	}
}

// FromDomain populates the persistence model from a domain SellerProduct
func (m *SellerProductModel) FromDomain(sp *commerce.SellerProduct) {
	m.FromDomainOwnedEntity(sp.OwnedEntity)
	m.ProductID = sp.ProductID
	m.SellingPrice = sp.SellingPrice
	m.CommissionAmount = sp.CommissionAmount
	m.IsApproved = sp.IsApproved
	m.ApprovedBy = sp.ApprovedBy
	m.ApprovedAt = sp.ApprovedAt
}
