package trade

import "github.com/erp/bizhub/internal/domain/shared"

const (
	AggregateTypePurchaseOrder = "PurchaseOrder"
	AggregateTypeSalesOrder    = "SalesOrder"

	EventTypePurchaseOrderConverted = "purchase_order.converted"
	EventTypeSalesOrderConverted    = "sales_order.converted"
)

// PurchaseOrderConvertedEvent is raised after a purchase order has been turned into a vendor bill
type PurchaseOrderConvertedEvent struct {
	shared.BaseDomainEvent
	PONumber   string `json:"po_number"`
	BillID     int64  `json:"bill_id"`
	BillNumber string `json:"bill_number"`
	CompanyID  int64  `json:"company_id"`
}

// NewPurchaseOrderConvertedEvent creates the event for a finished PO→Bill conversion
func NewPurchaseOrderConvertedEvent(po *PurchaseOrder, billID int64, billNumber string, actorID int64) *PurchaseOrderConvertedEvent {
	return &PurchaseOrderConvertedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderConverted, AggregateTypePurchaseOrder, po.ID, actorID),
		PONumber:        po.PONumber,
		BillID:          billID,
		BillNumber:      billNumber,
		CompanyID:       po.CompanyID,
	}
}

// SalesOrderConvertedEvent is raised after a sales order has been turned into a customer invoice
type SalesOrderConvertedEvent struct {
	shared.BaseDomainEvent
	SONumber      string `json:"so_number"`
	InvoiceID     int64  `json:"invoice_id"`
	InvoiceNumber string `json:"invoice_number"`
	CompanyID     int64  `json:"company_id"`
}

// NewSalesOrderConvertedEvent creates the event for a finished SO→Invoice conversion
func NewSalesOrderConvertedEvent(so *SalesOrder, invoiceID int64, invoiceNumber string, actorID int64) *SalesOrderConvertedEvent {
	return &SalesOrderConvertedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSalesOrderConverted, AggregateTypeSalesOrder, so.ID, actorID),
		SONumber:        so.SONumber,
		InvoiceID:       invoiceID,
		InvoiceNumber:   invoiceNumber,
		CompanyID:       so.CompanyID,
	}
}
