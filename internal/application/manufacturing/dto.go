package manufacturing

import (
	"time"

	"github.com/erp/bizhub/internal/application/common"
	"github.com/erp/bizhub/internal/domain/manufacturing"
	"github.com/shopspring/decimal"
)

// ==================== Work center DTOs ====================

// WorkCenterRequest creates or replaces a work center
type WorkCenterRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity" binding:"omitempty,min=1"`
	IsActive    *bool  `json:"is_active"`
	ManagerID   *int64 `json:"manager"`
}

func (r WorkCenterRequest) details() manufacturing.WorkCenterDetails {
	return manufacturing.WorkCenterDetails{
		Name:        r.Name,
		Description: r.Description,
		Capacity:    r.Capacity,
		IsActive:    r.IsActive,
		ManagerID:   r.ManagerID,
	}
}

// WorkCenterResponse is the API view of a work center
type WorkCenterResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Capacity    int       `json:"capacity"`
	IsActive    bool      `json:"is_active"`
	ManagerID   *int64    `json:"manager"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToWorkCenterResponse converts a domain work center
func ToWorkCenterResponse(wc *manufacturing.WorkCenter) WorkCenterResponse {
	return WorkCenterResponse{
		ID:          wc.ID,
		Name:        wc.Name,
		Description: wc.Description,
		Capacity:    wc.Capacity,
		IsActive:    wc.IsActive,
		ManagerID:   wc.ManagerID,
		CreatedBy:   wc.CreatedBy,
		CreatedAt:   wc.CreatedAt,
		UpdatedAt:   wc.UpdatedAt,
	}
}

// ==================== Manufacturing order DTOs ====================

// ManufacturingOrderRequest creates or replaces a manufacturing order
type ManufacturingOrderRequest struct {
	OrderNumber  string      `json:"order_number" binding:"max=50"`
	CustomerName string      `json:"customer_name" binding:"required"`
	ProductName  string      `json:"product_name" binding:"required"`
	Quantity     int         `json:"quantity" binding:"required,min=1"`
	Priority     string      `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate      common.Date `json:"due_date"`
	WorkCenterID *int64      `json:"work_center"`
}

func (r ManufacturingOrderRequest) details() manufacturing.ManufacturingOrderDetails {
	return manufacturing.ManufacturingOrderDetails{
		OrderNumber:  r.OrderNumber,
		CustomerName: r.CustomerName,
		ProductName:  r.ProductName,
		Quantity:     r.Quantity,
		Priority:     manufacturing.Priority(r.Priority),
		DueDate:      r.DueDate.Time,
		WorkCenterID: r.WorkCenterID,
	}
}

// ManufacturingOrderResponse is the API view of a manufacturing order
type ManufacturingOrderResponse struct {
	ID           int64               `json:"id"`
	OrderNumber  string              `json:"order_number"`
	CustomerName string              `json:"customer_name"`
	ProductName  string              `json:"product_name"`
	Quantity     int                 `json:"quantity"`
	Status       string              `json:"status"`
	Priority     string              `json:"priority"`
	DueDate      common.Date         `json:"due_date"`
	WorkCenterID *int64              `json:"work_center"`
	WorkOrders   []WorkOrderResponse `json:"work_orders,omitempty"`
	CreatedBy    int64               `json:"created_by"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// ToManufacturingOrderResponse converts a domain manufacturing order
func ToManufacturingOrderResponse(mo *manufacturing.ManufacturingOrder) ManufacturingOrderResponse {
	return ManufacturingOrderResponse{
		ID:           mo.ID,
		OrderNumber:  mo.OrderNumber,
		CustomerName: mo.CustomerName,
		ProductName:  mo.ProductName,
		Quantity:     mo.Quantity,
		Status:       string(mo.Status),
		Priority:     string(mo.Priority),
		DueDate:      common.NewDate(mo.DueDate),
		WorkCenterID: mo.WorkCenterID,
		CreatedBy:    mo.CreatedBy,
		CreatedAt:    mo.CreatedAt,
		UpdatedAt:    mo.UpdatedAt,
	}
}

// ==================== Work order DTOs ====================

// WorkOrderRequest creates or replaces a work order
type WorkOrderRequest struct {
	WorkCenterID   int64           `json:"work_center" binding:"required,gt=0"`
	AssignedTo     *int64          `json:"assigned_to"`
	EstimatedHours decimal.Decimal `json:"estimated_hours"`
	Notes          string          `json:"notes"`
}

func (r WorkOrderRequest) details() manufacturing.WorkOrderDetails {
	return manufacturing.WorkOrderDetails{
		WorkCenterID:   r.WorkCenterID,
		AssignedTo:     r.AssignedTo,
		EstimatedHours: r.EstimatedHours,
		Notes:          r.Notes,
	}
}

// CompleteWorkOrderRequest optionally records the hours actually spent
type CompleteWorkOrderRequest struct {
	ActualHours *decimal.Decimal `json:"actual_hours"`
}

// WorkOrderResponse is the API view of a work order
type WorkOrderResponse struct {
	ID                   int64           `json:"id"`
	WorkOrderNumber      string          `json:"work_order_number"`
	ManufacturingOrderID int64           `json:"manufacturing_order"`
	WorkCenterID         int64           `json:"work_center"`
	WorkCenterName       string          `json:"work_center_name"`
	Status               string          `json:"status"`
	AssignedTo           *int64          `json:"assigned_to"`
	StartDate            *time.Time      `json:"start_date"`
	EndDate              *time.Time      `json:"end_date"`
	EstimatedHours       decimal.Decimal `json:"estimated_hours"`
	ActualHours          decimal.Decimal `json:"actual_hours"`
	Notes                string          `json:"notes"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// ToWorkOrderResponse converts a domain work order
func ToWorkOrderResponse(wo *manufacturing.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:                   wo.ID,
		WorkOrderNumber:      wo.WorkOrderNumber,
		ManufacturingOrderID: wo.ManufacturingOrderID,
		WorkCenterID:         wo.WorkCenterID,
		WorkCenterName:       wo.WorkCenterName,
		Status:               string(wo.Status),
		AssignedTo:           wo.AssignedTo,
		StartDate:            wo.StartDate,
		EndDate:              wo.EndDate,
		EstimatedHours:       wo.EstimatedHours,
		ActualHours:          wo.ActualHours,
		Notes:                wo.Notes,
		CreatedAt:            wo.CreatedAt,
		UpdatedAt:            wo.UpdatedAt,
	}
}

func mapSlice[T, R any](items []T, fn func(*T) R) []R {
	out := make([]R, len(items))
	for i := range items {
		out[i] = fn(&items[i])
	}
	return out
}
