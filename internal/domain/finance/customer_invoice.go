package finance

import (
	"time"

	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the status of a customer invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// IsValid checks if the status is known
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks if the status can transition to the target status
func (s InvoiceStatus) CanTransitionTo(target InvoiceStatus) bool {
	switch s {
	case InvoiceStatusDraft:
		return target == InvoiceStatusSent || target == InvoiceStatusCancelled
	case InvoiceStatusSent:
		return target == InvoiceStatusPaid || target == InvoiceStatusOverdue || target == InvoiceStatusCancelled
	case InvoiceStatusOverdue:
		return target == InvoiceStatusPaid || target == InvoiceStatusCancelled
	}
	return false
}

// CustomerInvoice is a receivable raised against a customer
type CustomerInvoice struct {
	shared.OwnedEntity
	CompanyID     int64
	CustomerID    int64
	CustomerName  string
	SalesOrderID  *int64
	InvoiceNumber string
	InvoiceDate   time.Time
	DueDate       time.Time
	Status        InvoiceStatus
	Subtotal      decimal.Decimal
	TaxAmount     decimal.Decimal
	TotalAmount   decimal.Decimal
	Notes         string
	Lines         []Line
}

// NewCustomerInvoiceFromSalesOrder builds a draft invoice mirroring a confirmed sales order
func NewCustomerInvoiceFromSalesOrder(so *trade.SalesOrder, actorID int64) (*CustomerInvoice, error) {
	if so.Status != trade.SalesOrderStatusConfirmed {
		return nil, shared.NewDomainError("INVALID_STATE", "Sales order must be confirmed to convert")
	}
	soID := so.ID
	return &CustomerInvoice{
		OwnedEntity:  shared.NewOwnedEntity(actorID),
		CompanyID:    so.CompanyID,
		CustomerID:   so.CustomerID,
		CustomerName: so.CustomerName,
		SalesOrderID: &soID,
		InvoiceDate:  so.SODate,
		DueDate:      so.ExpectedDeliveryDate,
		Status:       InvoiceStatusDraft,
		Subtotal:     so.Subtotal,
		TaxAmount:    so.TaxAmount,
		TotalAmount:  so.TotalAmount,
		Notes:        so.Notes,
		Lines:        copyLines(so.Items),
	}, nil
}

// AssignNumber sets the invoice number if none is present
func (i *CustomerInvoice) AssignNumber(number string) {
	if i.InvoiceNumber == "" {
		i.InvoiceNumber = number
	}
}

// ChangeStatus applies a guarded status transition
func (i *CustomerInvoice) ChangeStatus(target InvoiceStatus) error {
	if !target.IsValid() {
		return shared.NewValidationError("unknown invoice status %q", target)
	}
	if !i.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot move invoice from "+string(i.Status)+" to "+string(target))
	}
	i.Status = target
	i.Touch()
	return nil
}

// IsPastDue reports whether an unpaid invoice is past its due date
func (i *CustomerInvoice) IsPastDue(now time.Time) bool {
	return i.Status == InvoiceStatusSent && now.After(i.DueDate)
}
