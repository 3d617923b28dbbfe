package models

import (
	"time"

	"github.com/erp/bizhub/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// LineItemModel holds the columns shared by purchase and sales order items
type LineItemModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	ProductID   int64           `gorm:"not null;index"`
	ProductName string          `gorm:"->;-:migration"`
	Quantity    decimal.Decimal `gorm:"type:decimal(14,3);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}

func (m *LineItemModel) toDomain() trade.LineItem {
	return trade.LineItem{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		LineTotal:   m.LineTotal,
	}
}

func lineItemModel(l trade.LineItem) LineItemModel {
	return LineItemModel{
		ID:        l.ID,
		ProductID: l.ProductID,
		Quantity:  l.Quantity,
		UnitPrice: l.UnitPrice,
		LineTotal: l.LineTotal,
	}
}

// PurchaseOrderItemModel is a purchase order line
type PurchaseOrderItemModel struct {
	LineItemModel
	PurchaseOrderID int64 `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (PurchaseOrderItemModel) TableName() string {
	return "purchase_order_items"
}

// PurchaseOrderModel is the persistence model for the PurchaseOrder aggregate
type PurchaseOrderModel struct {
	OwnedModel
	CompanyID            int64                     `gorm:"not null;index"`
	SupplierID           int64                     `gorm:"not null;index"`
	SupplierName         string                    `gorm:"->;-:migration"`
	PONumber             string                    `gorm:"column:po_number;type:varchar(50);not null;uniqueIndex"`
	PODate               time.Time                 `gorm:"column:po_date;type:date;not null"`
	ExpectedDeliveryDate time.Time                 `gorm:"type:date;not null"`
	Status               trade.PurchaseOrderStatus `gorm:"type:varchar(20);not null;default:'draft';index"`
	Subtotal             decimal.Decimal           `gorm:"type:decimal(14,2);not null;default:0"`
	TaxAmount            decimal.Decimal           `gorm:"type:decimal(14,2);not null;default:0"`
	TotalAmount          decimal.Decimal           `gorm:"type:decimal(14,2);not null;default:0"`
	Notes                string                    `gorm:"type:text"`
	Items                []PurchaseOrderItemModel  `gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (PurchaseOrderModel) TableName() string {
	return "purchase_orders"
}

// ToDomain converts the persistence model to a domain PurchaseOrder
func (m *PurchaseOrderModel) ToDomain() *trade.PurchaseOrder {
	items := make([]trade.LineItem, len(m.Items))
	for i := range m.Items {
		items[i] = m.Items[i].toDomain()
	}
	return &trade.PurchaseOrder{
		OwnedEntity:          m.ToOwned(),
		CompanyID:            m.CompanyID,
		SupplierID:           m.SupplierID,
		SupplierName:         m.SupplierName,
		PONumber:             m.PONumber,
		PODate:               m.PODate,
		ExpectedDeliveryDate: m.ExpectedDeliveryDate,
		Status:               m.Status,
		Subtotal:             m.Subtotal,
		TaxAmount:            m.TaxAmount,
		TotalAmount:          m.TotalAmount,
		Notes:                m.Notes,
		Items:                items,
	}
}

// FromDomain populates the persistence model from a domain PurchaseOrder
func (m *PurchaseOrderModel) FromDomain(o *trade.PurchaseOrder) {
	m.FromDomainOwnedEntity(o.OwnedEntity)
	m.CompanyID = o.CompanyID
	m.SupplierID = o.SupplierID
	m.PONumber = o.PONumber
	m.PODate = o.PODate
	m.ExpectedDeliveryDate = o.ExpectedDeliveryDate
	m.Status = o.Status
	m.Subtotal = o.Subtotal
	m.TaxAmount = o.TaxAmount
	m.TotalAmount = o.TotalAmount
	m.Notes = o.Notes
	m.Items = make([]PurchaseOrderItemModel, len(o.Items))
	for i, l := range o.Items {
		m.Items[i] = PurchaseOrderItemModel{LineItemModel: lineItemModel(l), PurchaseOrderID: o.ID}
	}
}

// PurchaseOrderModelFromDomain creates a new persistence model from a domain PurchaseOrder
func PurchaseOrderModelFromDomain(o *trade.PurchaseOrder) *PurchaseOrderModel {
	m := &PurchaseOrderModel{}
	m.FromDomain(o)
	return m
}

// SalesOrderItemModel is a sales order line
type SalesOrderItemModel struct {
	LineItemModel
	SalesOrderID int64 `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (SalesOrderItemModel) TableName() string {
	return "sales_order_items"
}

// SalesOrderModel is the persistence model for the SalesOrder aggregate
type SalesOrderModel struct {
	OwnedModel
	CompanyID            int64                  `gorm:"not null;index"`
	CustomerID           int64                  `gorm:"not null;index"`
	CustomerName         string                 `gorm:"->;-:migration"`
	SONumber             string                 `gorm:"column:so_number;type:varchar(50);not null;uniqueIndex"`
	SODate               time.Time              `gorm:"column:so_date;type:date;not null"`
	ExpectedDeliveryDate time.Time              `gorm:"type:date;not null"`
	Status               trade.SalesOrderStatus `gorm:"type:varchar(20);not null;default:'draft';index"`
	Subtotal             decimal.Decimal        `gorm:"type:decimal(14,2);not null;default:0"`
	TaxAmount            decimal.Decimal        `gorm:"type:decimal(14,2);not null;default:0"`
	TotalAmount          decimal.Decimal        `gorm:"type:decimal(14,2);not null;default:0"`
	Notes                string                 `gorm:"type:text"`
	Items                []SalesOrderItemModel  `gorm:"foreignKey:SalesOrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (SalesOrderModel) TableName() string {
	return "sales_orders"
}

// ToDomain converts the persistence model to a domain SalesOrder
func (m *SalesOrderModel) ToDomain() *trade.SalesOrder {
	items := make([]trade.LineItem, len(m.Items))
	for i := range m.Items {
		items[i] = m.Items[i].toDomain()
	}
	return &trade.SalesOrder{
		OwnedEntity:          m.ToOwned(),
		CompanyID:            m.CompanyID,
		CustomerID:           m.CustomerID,
		CustomerName:         m.CustomerName,
		SONumber:             m.SONumber,
		SODate:               m.SODate,
		ExpectedDeliveryDate: m.ExpectedDeliveryDate,
		Status:               m.Status,
		Subtotal:             m.Subtotal,
		TaxAmount:            m.TaxAmount,
		TotalAmount:          m.TotalAmount,
		Notes:                m.Notes,
		Items:                items,
	}
}

// FromDomain populates the persistence model from a domain SalesOrder
func (m *SalesOrderModel) FromDomain(o *trade.SalesOrder) {
	m.FromDomainOwnedEntity(o.OwnedEntity)
	m.CompanyID = o.CompanyID
	m.CustomerID = o.CustomerID
	m.SONumber = o.SONumber
	m.SODate = o.SODate
	m.ExpectedDeliveryDate = o.ExpectedDeliveryDate
	m.Status = o.Status
	m.Subtotal = o.Subtotal
	m.TaxAmount = o.TaxAmount
	m.TotalAmount = o.TotalAmount
	m.Notes = o.Notes
	m.Items = make([]SalesOrderItemModel, len(o.Items))
	for i, l := range o.Items {
		m.Items[i] = SalesOrderItemModel{LineItemModel: lineItemModel(l), SalesOrderID: o.ID}
	}
}

// SalesOrderModelFromDomain creates a new persistence model from a domain SalesOrder
func SalesOrderModelFromDomain(o *trade.SalesOrder) *SalesOrderModel {
	m := &SalesOrderModel{}
	m.FromDomain(o)
	return m
}
