package models

import (
	"time"

	"github.com/erp/bizhub/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// DocumentLineModel holds the columns shared by bill and invoice lines
type DocumentLineModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	ProductID   int64           `gorm:"not null;index"`
	ProductName string          `gorm:"->;-:migration"`
	Quantity    decimal.Decimal `gorm:"type:decimal(14,3);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}

func (m *DocumentLineModel) toDomain() finance.Line {
	return finance.Line{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		LineTotal:   m.LineTotal,
	}
}

func documentLineModel(l finance.Line) DocumentLineModel {
	return DocumentLineModel{
		ID:        l.ID,
		ProductID: l.ProductID,
		Quantity:  l.Quantity,
		UnitPrice: l.UnitPrice,
		LineTotal: l.LineTotal,
	}
}

// VendorBillLineModel is a vendor bill line
type VendorBillLineModel struct {
	DocumentLineModel
	VendorBillID int64 `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (VendorBillLineModel) TableName() string {
	return "vendor_bill_lines"
}

// VendorBillModel is the persistence model for the VendorBill aggregate
type VendorBillModel struct {
	OwnedModel
	CompanyID       int64                 `gorm:"not null;index"`
	SupplierID      int64                 `gorm:"not null;index"`
	SupplierName    string                `gorm:"->;-:migration"`
	PurchaseOrderID *int64                `gorm:"index"`
	BillNumber      string                `gorm:"type:varchar(50);not null;uniqueIndex"`
	BillDate        time.Time             `gorm:"type:date;not null"`
	DueDate         time.Time             `gorm:"type:date;not null"`
	Status          finance.BillStatus    `gorm:"type:varchar(20);not null;default:'draft';index"`
	Subtotal        decimal.Decimal       `gorm:"type:decimal(14,2);not null;default:0"`
	TaxAmount       decimal.Decimal       `gorm:"type:decimal(14,2);not null;default:0"`
	TotalAmount     decimal.Decimal       `gorm:"type:decimal(14,2);not null;default:0"`
	Notes           string                `gorm:"type:text"`
	Lines           []VendorBillLineModel `gorm:"foreignKey:VendorBillID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (VendorBillModel) TableName() string {
	return "vendor_bills"
}

// ToDomain converts the persistence model to a domain VendorBill
func (m *VendorBillModel) ToDomain() *finance.VendorBill {
	lines := make([]finance.Line, len(m.Lines))
	for i := range m.Lines {
		lines[i] = m.Lines[i].toDomain()
	}
	return &finance.VendorBill{
		OwnedEntity:     m.ToOwned(),
		CompanyID:       m.CompanyID,
		SupplierID:      m.SupplierID,
		SupplierName:    m.SupplierName,
		PurchaseOrderID: m.PurchaseOrderID,
		BillNumber:      m.BillNumber,
		BillDate:        m.BillDate,
		DueDate:         m.DueDate,
		Status:          m.Status,
		Subtotal:        m.Subtotal,
		TaxAmount:       m.TaxAmount,
		TotalAmount:     m.TotalAmount,
		Notes:           m.Notes,
		Lines:           lines,
	}
}

// FromDomain populates the persistence model from a domain VendorBill
func (m *VendorBillModel) FromDomain(b *finance.VendorBill) {
	m.FromDomainOwnedEntity(b.OwnedEntity)
	m.CompanyID = b.CompanyID
	m.SupplierID = b.SupplierID
	m.PurchaseOrderID = b.PurchaseOrderID
	m.BillNumber = b.BillNumber
	m.BillDate = b.BillDate
	m.DueDate = b.DueDate
	m.Status = b.Status
	m.Subtotal = b.Subtotal
	m.TaxAmount = b.TaxAmount
	m.TotalAmount = b.TotalAmount
	m.Notes = b.Notes
	m.Lines = make([]VendorBillLineModel, len(b.Lines))
	for i, l := range b.Lines {
		m.Lines[i] = VendorBillLineModel{DocumentLineModel: documentLineModel(l), VendorBillID: b.ID}
	}
}

// VendorBillModelFromDomain creates a new persistence model from a domain VendorBill
func VendorBillModelFromDomain(b *finance.VendorBill) *VendorBillModel {
	m := &VendorBillModel{}
	m.FromDomain(b)
	return m
}

// CustomerInvoiceLineModel is a customer invoice line
type CustomerInvoiceLineModel struct {
	DocumentLineModel
	CustomerInvoiceID int64 `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (CustomerInvoiceLineModel) TableName() string {
	return "customer_invoice_lines"
}

// CustomerInvoiceModel is the persistence model for the CustomerInvoice aggregate
type CustomerInvoiceModel struct {
	OwnedModel
	CompanyID     int64                      `gorm:"not null;index"`
	CustomerID    int64                      `gorm:"not null;index"`
	CustomerName  string                     `gorm:"->;-:migration"`
	SalesOrderID  *int64                     `gorm:"index"`
	InvoiceNumber string                     `gorm:"type:varchar(50);not null;uniqueIndex"`
	InvoiceDate   time.Time                  `gorm:"type:date;not null"`
	DueDate       time.Time                  `gorm:"type:date;not null"`
	Status        finance.InvoiceStatus      `gorm:"type:varchar(20);not null;default:'draft';index"`
	Subtotal      decimal.Decimal            `gorm:"type:decimal(14,2);not null;default:0"`
	TaxAmount     decimal.Decimal            `gorm:"type:decimal(14,2);not null;default:0"`
	TotalAmount   decimal.Decimal            `gorm:"type:decimal(14,2);not null;default:0"`
	Notes         string                     `gorm:"type:text"`
	Lines         []CustomerInvoiceLineModel `gorm:"foreignKey:CustomerInvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (CustomerInvoiceModel) TableName() string {
	return "customer_invoices"
}

// ToDomain converts the persistence model to a domain CustomerInvoice
func (m *CustomerInvoiceModel) ToDomain() *finance.CustomerInvoice {
	lines := make([]finance.Line, len(m.Lines))
	for i := range m.Lines {
		lines[i] = m.Lines[i].toDomain()
	}
	return &finance.CustomerInvoice{
		OwnedEntity:   m.ToOwned(),
		CompanyID:     m.CompanyID,
		CustomerID:    m.CustomerID,
		CustomerName:  m.CustomerName,
		SalesOrderID:  m.SalesOrderID,
		InvoiceNumber: m.InvoiceNumber,
		InvoiceDate:   m.InvoiceDate,
		DueDate:       m.DueDate,
		Status:        m.Status,
		Subtotal:      m.Subtotal,
		TaxAmount:     m.TaxAmount,
		TotalAmount:   m.TotalAmount,
		Notes:         m.Notes,
		Lines:         lines,
	}
}

// FromDomain populates the persistence model from a domain CustomerInvoice
func (m *CustomerInvoiceModel) FromDomain(inv *finance.CustomerInvoice) {
	m.FromDomainOwnedEntity(inv.OwnedEntity)
	m.CompanyID = inv.CompanyID
	m.CustomerID = inv.CustomerID
	m.SalesOrderID = inv.SalesOrderID
	m.InvoiceNumber = inv.InvoiceNumber
	m.InvoiceDate = inv.InvoiceDate
	m.DueDate = inv.DueDate
	m.Status = inv.Status
	m.Subtotal = inv.Subtotal
	m.TaxAmount = inv.TaxAmount
	m.TotalAmount = inv.TotalAmount
	m.Notes = inv.Notes
	m.Lines = make([]CustomerInvoiceLineModel, len(inv.Lines))
	for i, l := range inv.Lines {
		m.Lines[i] = CustomerInvoiceLineModel{DocumentLineModel: documentLineModel(l), CustomerInvoiceID: inv.ID}
	}
}

// CustomerInvoiceModelFromDomain creates a new persistence model from a domain CustomerInvoice
func CustomerInvoiceModelFromDomain(inv *finance.CustomerInvoice) *CustomerInvoiceModel {
	m := &CustomerInvoiceModel{}
	m.FromDomain(inv)
	return m
}
