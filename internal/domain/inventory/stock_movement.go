package inventory

import (
	"fmt"

	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MovementType classifies a stock ledger entry
type MovementType string

const (
	MovementIn         MovementType = "in"
	MovementOut        MovementType = "out"
	MovementAdjustment MovementType = "adjustment"
)

// IsValid checks if the movement type is known
func (t MovementType) IsValid() bool {
	return t == MovementIn || t == MovementOut || t == MovementAdjustment
}

// ReferenceType names the document that caused a movement
type ReferenceType string

const (
	ReferencePurchaseOrder ReferenceType = "purchase_order"
	ReferenceSalesOrder    ReferenceType = "sales_order"
	ReferenceOrder         ReferenceType = "order"
	ReferenceManual        ReferenceType = "manual"
)

// IsValid checks if the reference type is known
func (r ReferenceType) IsValid() bool {
	switch r {
	case ReferencePurchaseOrder, ReferenceSalesOrder, ReferenceOrder, ReferenceManual:
		return true
	}
	return false
}

// StockMovement is an append-only ledger entry. It is never updated or deleted once saved.
type StockMovement struct {
	shared.OwnedEntity
	CompanyID     int64
	ProductID     int64
	ProductName   string // read-only
	MovementType  MovementType
	Quantity      decimal.Decimal
	ReferenceType ReferenceType
	ReferenceID   *int64
	Notes         string
}

// MovementInput describes a new ledger entry
type MovementInput struct {
	CompanyID     int64
	ProductID     int64
	MovementType  MovementType
	Quantity      decimal.Decimal
	ReferenceType ReferenceType
	ReferenceID   *int64
	Notes         string
}

// NewStockMovement validates a ledger entry. In and out quantities must be positive;
// an adjustment may be negative but not zero.
func NewStockMovement(actorID int64, in MovementInput) (*StockMovement, error) {
	if in.CompanyID <= 0 {
		return nil, shared.NewValidationError("company_id is required")
	}
	if in.ProductID <= 0 {
		return nil, shared.NewValidationError("product_id is required")
	}
	if !in.MovementType.IsValid() {
		return nil, shared.NewValidationError("movement_type must be in, out or adjustment")
	}
	switch in.MovementType {
	case MovementAdjustment:
		if in.Quantity.IsZero() {
			return nil, shared.NewValidationError("adjustment quantity cannot be zero")
		}
	default:
		if !in.Quantity.IsPositive() {
			return nil, shared.NewValidationError("quantity must be positive")
		}
	}
	if in.ReferenceType == "" {
		in.ReferenceType = ReferenceManual
	}
	if !in.ReferenceType.IsValid() {
		return nil, shared.NewValidationError("unknown reference_type %q", in.ReferenceType)
	}
	return &StockMovement{
		OwnedEntity:   shared.NewOwnedEntity(actorID),
		CompanyID:     in.CompanyID,
		ProductID:     in.ProductID,
		MovementType:  in.MovementType,
		Quantity:      in.Quantity,
		ReferenceType: in.ReferenceType,
		ReferenceID:   in.ReferenceID,
		Notes:         in.Notes,
	}, nil
}

// NewDocumentMovement builds the movement written when a document moves goods
func NewDocumentMovement(actorID, companyID, productID int64, mt MovementType, qty decimal.Decimal,
	ref ReferenceType, refID int64, number string) (*StockMovement, error) {
	verb := "in"
	if mt == MovementOut {
		verb = "out"
	}
	return NewStockMovement(actorID, MovementInput{
		CompanyID:     companyID,
		ProductID:     productID,
		MovementType:  mt,
		Quantity:      qty,
		ReferenceType: ref,
		ReferenceID:   &refID,
		Notes:         fmt.Sprintf("Stock %s from %s", verb, number),
	})
}

// Delta returns the signed effect of the movement on on-hand stock
func (m *StockMovement) Delta() decimal.Decimal {
	switch m.MovementType {
	case MovementOut:
		return m.Quantity.Neg()
	default:
		return m.Quantity
	}
}

// StockSummary aggregates the ledger of one product
type StockSummary struct {
	ProductID       int64           `json:"product_id" db:"product_id"`
	ProductName     string          `json:"product_name" db:"product_name"`
	SKU             string          `json:"sku" db:"sku"`
	TotalIn         decimal.Decimal `json:"total_in" db:"total_in"`
	TotalOut        decimal.Decimal `json:"total_out" db:"total_out"`
	TotalAdjustment decimal.Decimal `json:"total_adjustment" db:"total_adjustment"`
	OnHand          decimal.Decimal `json:"on_hand" db:"on_hand"`
}

// Summarize folds movements into per-product summaries, preserving first-seen order
func Summarize(movements []StockMovement) []StockSummary {
	index := make(map[int64]int)
	var out []StockSummary
	for _, m := range movements {
		i, ok := index[m.ProductID]
		if !ok {
			i = len(out)
			index[m.ProductID] = i
			out = append(out, StockSummary{ProductID: m.ProductID, ProductName: m.ProductName})
		}
		s := &out[i]
		switch m.MovementType {
		case MovementIn:
			s.TotalIn = s.TotalIn.Add(m.Quantity)
		case MovementOut:
			s.TotalOut = s.TotalOut.Add(m.Quantity)
		case MovementAdjustment:
			s.TotalAdjustment = s.TotalAdjustment.Add(m.Quantity)
		}
		s.OnHand = s.OnHand.Add(m.Delta())
	}
	return out
}
