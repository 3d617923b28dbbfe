package trade

import (
	"time"

	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// SalesOrderStatus represents the status of a sales order
type SalesOrderStatus string

const (
	SalesOrderStatusDraft     SalesOrderStatus = "draft"
	SalesOrderStatusConfirmed SalesOrderStatus = "confirmed"
	SalesOrderStatusDelivered SalesOrderStatus = "delivered"
	SalesOrderStatusCancelled SalesOrderStatus = "cancelled"
)

// IsValid checks if the status is a valid SalesOrderStatus
func (s SalesOrderStatus) IsValid() bool {
	switch s {
	case SalesOrderStatusDraft, SalesOrderStatusConfirmed,
		SalesOrderStatusDelivered, SalesOrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks if the status can transition to the target status
func (s SalesOrderStatus) CanTransitionTo(target SalesOrderStatus) bool {
	switch s {
	case SalesOrderStatusDraft:
		return target == SalesOrderStatusConfirmed || target == SalesOrderStatusCancelled
	case SalesOrderStatusConfirmed:
		return target == SalesOrderStatusDelivered || target == SalesOrderStatusCancelled
	}
	return false
}

// SalesOrder is an order received from a customer
type SalesOrder struct {
	shared.OwnedEntity
	CompanyID            int64
	CustomerID           int64
	CustomerName         string // read-only
	SONumber             string
	SODate               time.Time
	ExpectedDeliveryDate time.Time
	Status               SalesOrderStatus
	Subtotal             decimal.Decimal
	TaxAmount            decimal.Decimal
	TotalAmount          decimal.Decimal
	Notes                string
	Items                []LineItem
}

// NewSalesOrder creates a draft sales order
func NewSalesOrder(ownerID int64, h OrderHeader, items []LineInput) (*SalesOrder, error) {
	if err := h.validate("customer"); err != nil {
		return nil, err
	}
	lines, err := buildLines(items)
	if err != nil {
		return nil, err
	}
	so := &SalesOrder{
		OwnedEntity: shared.NewOwnedEntity(ownerID),
		Status:      SalesOrderStatusDraft,
		SONumber:    h.Number,
		Items:       lines,
	}
	so.applyHeader(h)
	so.recalculateTotals()
	return so, nil
}

func (o *SalesOrder) applyHeader(h OrderHeader) {
	o.CompanyID = h.CompanyID
	o.CustomerID = h.PartnerID
	o.SODate = h.Date
	o.ExpectedDeliveryDate = h.ExpectedDeliveryDate
	o.TaxAmount = shared.RoundMoney(h.TaxAmount)
	o.Notes = h.Notes
}

// Update replaces header fields and, when items is non-nil, the line items
func (o *SalesOrder) Update(h OrderHeader, items []LineInput) error {
	if o.Status != SalesOrderStatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Only draft sales orders can be modified")
	}
	if err := h.validate("customer"); err != nil {
		return err
	}
	if o.SONumber != "" && h.CompanyID != o.CompanyID {
		return shared.NewValidationError("company cannot change once the order is numbered")
	}
	if items != nil {
		lines, err := buildLines(items)
		if err != nil {
			return err
		}
		o.Items = lines
	}
	o.applyHeader(h)
	o.recalculateTotals()
	o.Touch()
	return nil
}

// AssignNumber sets the document number if none was supplied
func (o *SalesOrder) AssignNumber(number string) {
	if o.SONumber == "" {
		o.SONumber = number
	}
}

func (o *SalesOrder) transition(target SalesOrderStatus) error {
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot move sales order from "+string(o.Status)+" to "+string(target))
	}
	o.Status = target
	o.Touch()
	return nil
}

// Confirm moves a draft order to confirmed
func (o *SalesOrder) Confirm() error {
	return o.transition(SalesOrderStatusConfirmed)
}

// Cancel cancels a draft or confirmed order
func (o *SalesOrder) Cancel() error {
	return o.transition(SalesOrderStatusCancelled)
}

// MarkDelivered is called by invoice conversion
func (o *SalesOrder) MarkDelivered() error {
	if o.Status != SalesOrderStatusConfirmed {
		return shared.NewDomainError("INVALID_STATE", "Sales order must be confirmed to convert")
	}
	return o.transition(SalesOrderStatusDelivered)
}

func (o *SalesOrder) recalculateTotals() {
	o.Subtotal, o.TotalAmount = totals(o.Items, o.TaxAmount)
}
