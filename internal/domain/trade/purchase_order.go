package trade

import (
	"time"

	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus represents the status of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft     PurchaseOrderStatus = "draft"
	PurchaseOrderStatusConfirmed PurchaseOrderStatus = "confirmed"
	PurchaseOrderStatusReceived  PurchaseOrderStatus = "received"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "cancelled"
)

// IsValid checks if the status is a valid PurchaseOrderStatus
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderStatusDraft, PurchaseOrderStatusConfirmed,
		PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks if the status can transition to the target status
func (s PurchaseOrderStatus) CanTransitionTo(target PurchaseOrderStatus) bool {
	switch s {
	case PurchaseOrderStatusDraft:
		return target == PurchaseOrderStatusConfirmed || target == PurchaseOrderStatusCancelled
	case PurchaseOrderStatusConfirmed:
		return target == PurchaseOrderStatusReceived || target == PurchaseOrderStatusCancelled
	}
	return false // received and cancelled are terminal
}

// PurchaseOrder is an order placed with a supplier
type PurchaseOrder struct {
	shared.OwnedEntity
	CompanyID            int64
	SupplierID           int64
	SupplierName         string // read-only
	PONumber             string
	PODate               time.Time
	ExpectedDeliveryDate time.Time
	Status               PurchaseOrderStatus
	Subtotal             decimal.Decimal
	TaxAmount            decimal.Decimal
	TotalAmount          decimal.Decimal
	Notes                string
	Items                []LineItem
}

// OrderHeader is the editable header shared by purchase and sales orders
type OrderHeader struct {
	CompanyID            int64
	PartnerID            int64
	Number               string
	Date                 time.Time
	ExpectedDeliveryDate time.Time
	TaxAmount            decimal.Decimal
	Notes                string
}

func (h OrderHeader) validate(partner string) error {
	if h.CompanyID <= 0 {
		return shared.NewValidationError("company_id is required")
	}
	if h.PartnerID <= 0 {
		return shared.NewValidationError("%s_id is required", partner)
	}
	if h.Date.IsZero() {
		return shared.NewValidationError("order date is required")
	}
	if h.ExpectedDeliveryDate.IsZero() {
		return shared.NewValidationError("expected_delivery_date is required")
	}
	if h.ExpectedDeliveryDate.Before(h.Date) {
		return shared.NewValidationError("expected_delivery_date cannot be before the order date")
	}
	if h.TaxAmount.IsNegative() {
		return shared.NewValidationError("tax_amount cannot be negative")
	}
	return nil
}

// NewPurchaseOrder creates a draft purchase order. An empty number is assigned by the sequencer on save.
func NewPurchaseOrder(ownerID int64, h OrderHeader, items []LineInput) (*PurchaseOrder, error) {
	if err := h.validate("supplier"); err != nil {
		return nil, err
	}
	lines, err := buildLines(items)
	if err != nil {
		return nil, err
	}
	po := &PurchaseOrder{
		OwnedEntity: shared.NewOwnedEntity(ownerID),
		Status:      PurchaseOrderStatusDraft,
	}
	po.applyHeader(h)
	po.PONumber = h.Number
	po.Items = lines
	po.recalculateTotals()
	return po, nil
}

func (o *PurchaseOrder) applyHeader(h OrderHeader) {
	o.CompanyID = h.CompanyID
	o.SupplierID = h.PartnerID
	o.PODate = h.Date
	o.ExpectedDeliveryDate = h.ExpectedDeliveryDate
	o.TaxAmount = shared.RoundMoney(h.TaxAmount)
	o.Notes = h.Notes
}

// Update replaces header fields and, when items is non-nil, the line items. Only drafts are editable.
func (o *PurchaseOrder) Update(h OrderHeader, items []LineInput) error {
	if o.Status != PurchaseOrderStatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Only draft purchase orders can be modified")
	}
	if err := h.validate("supplier"); err != nil {
		return err
	}
	if o.PONumber != "" && h.CompanyID != o.CompanyID {
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
func (o *PurchaseOrder) AssignNumber(number string) {
	if o.PONumber == "" {
		o.PONumber = number
	}
}

func (o *PurchaseOrder) transition(target PurchaseOrderStatus) error {
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot move purchase order from "+string(o.Status)+" to "+string(target))
	}
	o.Status = target
	o.Touch()
	return nil
}

// Confirm moves a draft order to confirmed
func (o *PurchaseOrder) Confirm() error {
	return o.transition(PurchaseOrderStatusConfirmed)
}

// Cancel cancels a draft or confirmed order
func (o *PurchaseOrder) Cancel() error {
	return o.transition(PurchaseOrderStatusCancelled)
}

// MarkReceived is called by bill conversion; the order must be confirmed
func (o *PurchaseOrder) MarkReceived() error {
	if o.Status != PurchaseOrderStatusConfirmed {
		return shared.NewDomainError("INVALID_STATE", "Purchase order must be confirmed to convert")
	}
	return o.transition(PurchaseOrderStatusReceived)
}

func (o *PurchaseOrder) recalculateTotals() {
	o.Subtotal, o.TotalAmount = totals(o.Items, o.TaxAmount)
}
