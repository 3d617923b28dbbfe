package manufacturing

import (
	"strings"
	"time"

	"github.com/erp/bizhub/internal/domain/shared"
)

// OrderStatus is the status of a manufacturing order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid checks if the status is known
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Priority ranks manufacturing orders
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// IsValid checks if the priority is known
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ManufacturingOrder is a customer request to produce a quantity of a product
type ManufacturingOrder struct {
	shared.OwnedEntity
	OrderNumber  string
	CustomerName string
	ProductName  string
	Quantity     int
	Status       OrderStatus
	Priority     Priority
	DueDate      time.Time
	WorkCenterID *int64
}

// ManufacturingOrderDetails is the editable part of a manufacturing order
type ManufacturingOrderDetails struct {
	OrderNumber  string
	CustomerName string
	ProductName  string
	Quantity     int
	Priority     Priority
	DueDate      time.Time
	WorkCenterID *int64
}

// NewManufacturingOrder creates a pending manufacturing order
func NewManufacturingOrder(ownerID int64, d ManufacturingOrderDetails) (*ManufacturingOrder, error) {
	mo := &ManufacturingOrder{
		OwnedEntity: shared.NewOwnedEntity(ownerID),
		Status:      OrderStatusPending,
		OrderNumber: strings.TrimSpace(d.OrderNumber),
	}
	if err := mo.Update(d); err != nil {
		return nil, err
	}
	return mo, nil
}

// Update replaces the editable fields
func (mo *ManufacturingOrder) Update(d ManufacturingOrderDetails) error {
	if strings.TrimSpace(d.CustomerName) == "" {
		return shared.NewValidationError("customer_name is required")
	}
	if strings.TrimSpace(d.ProductName) == "" {
		return shared.NewValidationError("product_name is required")
	}
	if d.Quantity < 1 {
		return shared.NewValidationError("quantity must be at least 1")
	}
	if d.Priority == "" {
		d.Priority = PriorityMedium
	}
	if !d.Priority.IsValid() {
		return shared.NewValidationError("priority must be low, medium, high or urgent")
	}
	if d.DueDate.IsZero() {
		return shared.NewValidationError("due_date is required")
	}
	mo.CustomerName = strings.TrimSpace(d.CustomerName)
	mo.ProductName = strings.TrimSpace(d.ProductName)
	mo.Quantity = d.Quantity
	mo.Priority = d.Priority
	mo.DueDate = d.DueDate
	mo.WorkCenterID = d.WorkCenterID
	mo.Touch()
	return nil
}

// AssignNumber sets the order number if none is present
func (mo *ManufacturingOrder) AssignNumber(number string) {
	if mo.OrderNumber == "" {
		mo.OrderNumber = number
	}
}

// IsOpen reports whether new work orders may still be attached
func (mo *ManufacturingOrder) IsOpen() bool {
	return mo.Status == OrderStatusPending || mo.Status == OrderStatusInProgress
}

// MarkStarted moves a pending order to in_progress; other states are left as they are
func (mo *ManufacturingOrder) MarkStarted() bool {
	if mo.Status != OrderStatusPending {
		return false
	}
	mo.Status = OrderStatusInProgress
	mo.Touch()
	return true
}

// CompleteIfDone completes the order when every work order is completed
func (mo *ManufacturingOrder) CompleteIfDone(workOrders []WorkOrder) bool {
	if len(workOrders) == 0 || mo.Status == OrderStatusCompleted || mo.Status == OrderStatusCancelled {
		return false
	}
	for _, wo := range workOrders {
		if wo.Status != WorkOrderStatusCompleted {
			return false
		}
	}
	mo.Status = OrderStatusCompleted
	mo.Touch()
	return true
}

// Cancel cancels an order that has not completed
func (mo *ManufacturingOrder) Cancel() error {
	if !mo.IsOpen() {
		return shared.NewDomainError("INVALID_STATE", "Only pending or in-progress orders can be cancelled")
	}
	mo.Status = OrderStatusCancelled
	mo.Touch()
	return nil
}
