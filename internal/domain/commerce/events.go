package commerce

import (
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/shopspring/decimal"
)

const (
	AggregateTypeOrder   = "Order"
	EventTypeOrderPlaced = "order.placed"
)

// OrderPlacedEvent is raised after checkout commits
type OrderPlacedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string          `json:"order_number"`
	ItemCount   int             `json:"item_count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// NewOrderPlacedEvent creates the event for a placed order
func NewOrderPlacedEvent(o *Order) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPlaced, AggregateTypeOrder, o.ID, o.CreatedBy),
		OrderNumber:     o.OrderNumber,
		ItemCount:       o.ItemCount(),
		TotalAmount:     o.TotalAmount,
	}
}
