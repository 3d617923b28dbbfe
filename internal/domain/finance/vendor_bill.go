package finance

import (
	"time"

	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// BillStatus represents the status of a vendor bill
type BillStatus string

const (
	BillStatusDraft     BillStatus = "draft"
	BillStatusConfirmed BillStatus = "confirmed"
	BillStatusPaid      BillStatus = "paid"
	BillStatusCancelled BillStatus = "cancelled"
)

// IsValid checks if the status is known
func (s BillStatus) IsValid() bool {
	switch s {
	case BillStatusDraft, BillStatusConfirmed, BillStatusPaid, BillStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks if the status can transition to the target status
func (s BillStatus) CanTransitionTo(target BillStatus) bool {
	switch s {
	case BillStatusDraft:
		return target == BillStatusConfirmed || target == BillStatusCancelled
	case BillStatusConfirmed:
		return target == BillStatusPaid || target == BillStatusCancelled
	}
	return false
}

// VendorBill is a payable raised against a supplier
type VendorBill struct {
	shared.OwnedEntity
	CompanyID       int64
	SupplierID      int64
	SupplierName    string
	PurchaseOrderID *int64
	BillNumber      string
	BillDate        time.Time
	DueDate         time.Time
	Status          BillStatus
	Subtotal        decimal.Decimal
	TaxAmount       decimal.Decimal
	TotalAmount     decimal.Decimal
	Notes           string
	Lines           []Line
}

// NewVendorBillFromPurchaseOrder builds a draft bill mirroring a confirmed purchase order
func NewVendorBillFromPurchaseOrder(po *trade.PurchaseOrder, actorID int64) (*VendorBill, error) {
	if po.Status != trade.PurchaseOrderStatusConfirmed {
		return nil, shared.NewDomainError("INVALID_STATE", "Purchase order must be confirmed to convert")
	}
	poID := po.ID
	return &VendorBill{
		OwnedEntity:     shared.NewOwnedEntity(actorID),
		CompanyID:       po.CompanyID,
		SupplierID:      po.SupplierID,
		SupplierName:    po.SupplierName,
		PurchaseOrderID: &poID,
		BillDate:        po.PODate,
		DueDate:         po.ExpectedDeliveryDate,
		Status:          BillStatusDraft,
		Subtotal:        po.Subtotal,
		TaxAmount:       po.TaxAmount,
		TotalAmount:     po.TotalAmount,
		Notes:           po.Notes,
		Lines:           copyLines(po.Items),
	}, nil
}

// AssignNumber sets the bill number if none is present
func (b *VendorBill) AssignNumber(number string) {
	if b.BillNumber == "" {
		b.BillNumber = number
	}
}

// ChangeStatus applies a guarded status transition
func (b *VendorBill) ChangeStatus(target BillStatus) error {
	if !target.IsValid() {
		return shared.NewValidationError("unknown bill status %q", target)
	}
	if !b.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot move bill from "+string(b.Status)+" to "+string(target))
	}
	b.Status = target
	b.Touch()
	return nil
}
