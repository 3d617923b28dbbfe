package manufacturing

import (
	"time"

	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// WorkOrderStatus is the status of a work order
type WorkOrderStatus string

const (
	WorkOrderStatusDraft      WorkOrderStatus = "draft"
	WorkOrderStatusReady      WorkOrderStatus = "ready"
	WorkOrderStatusInProgress WorkOrderStatus = "in_progress"
	WorkOrderStatusCompleted  WorkOrderStatus = "completed"
	WorkOrderStatusCancelled  WorkOrderStatus = "cancelled"
)

// CanTransitionTo checks if the status can transition to the target status
func (s WorkOrderStatus) CanTransitionTo(target WorkOrderStatus) bool {
	switch s {
	case WorkOrderStatusDraft:
		return target == WorkOrderStatusReady || target == WorkOrderStatusCancelled
	case WorkOrderStatusReady:
		return target == WorkOrderStatusInProgress || target == WorkOrderStatusCancelled
	case WorkOrderStatusInProgress:
		return target == WorkOrderStatusCompleted || target == WorkOrderStatusCancelled
	}
	return false
}

// IsActive reports whether work is scheduled or running
func (s WorkOrderStatus) IsActive() bool {
	return s == WorkOrderStatusReady || s == WorkOrderStatusInProgress
}

// WorkOrder is one unit of work on a manufacturing order at a work center
type WorkOrder struct {
	shared.BaseEntity
	WorkOrderNumber      string
	ManufacturingOrderID int64
	WorkCenterID         int64
	WorkCenterName       string
	Status               WorkOrderStatus
	AssignedTo           *int64
	StartDate            *time.Time
	EndDate              *time.Time
	EstimatedHours       decimal.Decimal
	ActualHours          decimal.Decimal
	Notes                string
}

// WorkOrderDetails is the editable part of a work order
type WorkOrderDetails struct {
	WorkCenterID   int64
	AssignedTo     *int64
	EstimatedHours decimal.Decimal
	Notes          string
}

// NewWorkOrder creates a draft work order for an open manufacturing order
func NewWorkOrder(mo *ManufacturingOrder, d WorkOrderDetails) (*WorkOrder, error) {
	if !mo.IsOpen() {
		return nil, shared.NewDomainError("INVALID_STATE", "Manufacturing order is closed")
	}
	wo := &WorkOrder{
		BaseEntity:           shared.NewBaseEntity(),
		ManufacturingOrderID: mo.ID,
		Status:               WorkOrderStatusDraft,
	}
	if err := wo.Update(d); err != nil {
		return nil, err
	}
	return wo, nil
}

// Update replaces the editable fields; completed and cancelled work orders are frozen
func (wo *WorkOrder) Update(d WorkOrderDetails) error {
	if wo.Status == WorkOrderStatusCompleted || wo.Status == WorkOrderStatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Work order is closed")
	}
	if d.WorkCenterID <= 0 {
		return shared.NewValidationError("work_center_id is required")
	}
	if d.EstimatedHours.IsNegative() {
		return shared.NewValidationError("estimated_hours cannot be negative")
	}
	wo.WorkCenterID = d.WorkCenterID
	wo.AssignedTo = d.AssignedTo
	wo.EstimatedHours = d.EstimatedHours
	wo.Notes = d.Notes
	wo.Touch()
	return nil
}

// AssignNumber sets the work order number if none is present
func (wo *WorkOrder) AssignNumber(number string) {
	if wo.WorkOrderNumber == "" {
		wo.WorkOrderNumber = number
	}
}

func (wo *WorkOrder) transition(target WorkOrderStatus, msg string) error {
	if !wo.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE", msg)
	}
	wo.Status = target
	wo.Touch()
	return nil
}

// Release moves a draft work order to ready
func (wo *WorkOrder) Release() error {
	return wo.transition(WorkOrderStatusReady, "Work order must be draft to release")
}

// Start requires ready and stamps the start date
func (wo *WorkOrder) Start(now time.Time) error {
	if wo.Status != WorkOrderStatusReady {
		return shared.NewDomainError("INVALID_STATE", "Work order must be ready to start")
	}
	if err := wo.transition(WorkOrderStatusInProgress, "Work order must be ready to start"); err != nil {
		return err
	}
	wo.StartDate = &now
	return nil
}

// Complete requires in_progress, stamps the end date and records actual hours when given
func (wo *WorkOrder) Complete(now time.Time, actualHours *decimal.Decimal) error {
	if wo.Status != WorkOrderStatusInProgress {
		return shared.NewDomainError("INVALID_STATE", "Work order must be in progress to complete")
	}
	if actualHours != nil && actualHours.IsNegative() {
		return shared.NewValidationError("actual_hours cannot be negative")
	}
	if err := wo.transition(WorkOrderStatusCompleted, "Work order must be in progress to complete"); err != nil {
		return err
	}
	wo.EndDate = &now
	if actualHours != nil {
		wo.ActualHours = *actualHours
	}
	return nil
}

// Cancel cancels a work order that has not completed
func (wo *WorkOrder) Cancel() error {
	return wo.transition(WorkOrderStatusCancelled, "Work order cannot be cancelled in its current state")
}
