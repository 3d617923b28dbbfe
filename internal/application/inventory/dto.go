package inventory

import (
	"time"

	"github.com/erp/bizhub/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// CreateMovementRequest records a manual stock movement
type CreateMovementRequest struct {
	CompanyID     int64           `json:"company" binding:"required,gt=0"`
	ProductID     int64           `json:"product" binding:"required,gt=0"`
	MovementType  string          `json:"movement_type" binding:"required,oneof=in out adjustment"`
	Quantity      decimal.Decimal `json:"quantity"`
	ReferenceType string          `json:"reference_type" binding:"omitempty,oneof=purchase_order sales_order order manual"`
	ReferenceID   *int64          `json:"reference_id"`
	Notes         string          `json:"notes"`
}

func (r CreateMovementRequest) input() inventory.MovementInput {
	return inventory.MovementInput{
		CompanyID:     r.CompanyID,
		ProductID:     r.ProductID,
		MovementType:  inventory.MovementType(r.MovementType),
		Quantity:      r.Quantity,
		ReferenceType: inventory.ReferenceType(r.ReferenceType),
		ReferenceID:   r.ReferenceID,
		Notes:         r.Notes,
	}
}

// MovementResponse is the API view of a ledger entry
type MovementResponse struct {
	ID            int64           `json:"id"`
	CompanyID     int64           `json:"company"`
	ProductID     int64           `json:"product"`
	ProductName   string          `json:"product_name"`
	MovementType  string          `json:"movement_type"`
	Quantity      decimal.Decimal `json:"quantity"`
	ReferenceType string          `json:"reference_type"`
	ReferenceID   *int64          `json:"reference_id"`
	Notes         string          `json:"notes"`
	CreatedBy     int64           `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToMovementResponse converts a domain stock movement
func ToMovementResponse(m *inventory.StockMovement) MovementResponse {
	return MovementResponse{
		ID:            m.ID,
		CompanyID:     m.CompanyID,
		ProductID:     m.ProductID,
		ProductName:   m.ProductName,
		MovementType:  string(m.MovementType),
		Quantity:      m.Quantity,
		ReferenceType: string(m.ReferenceType),
		ReferenceID:   m.ReferenceID,
		Notes:         m.Notes,
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
	}
}

func mapSlice[T, R any](items []T, fn func(*T) R) []R {
	out := make([]R, len(items))
	for i := range items {
		out[i] = fn(&items[i])
	}
	return out
}
