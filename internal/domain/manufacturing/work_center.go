package manufacturing

import (
	"strings"

	"github.com/erp/bizhub/internal/domain/shared"
)

// WorkCenter is a station where work orders are executed
type WorkCenter struct {
	shared.OwnedEntity
	Name        string
	Description string
	Capacity    int
	IsActive    bool
	ManagerID   *int64
}

// WorkCenterDetails is the editable part of a work center
type WorkCenterDetails struct {
	Name        string
	Description string
	Capacity    int
	IsActive    *bool
	ManagerID   *int64
}

// NewWorkCenter creates an active work center
func NewWorkCenter(ownerID int64, d WorkCenterDetails) (*WorkCenter, error) {
	wc := &WorkCenter{OwnedEntity: shared.NewOwnedEntity(ownerID), IsActive: true}
	if err := wc.Update(d); err != nil {
		return nil, err
	}
	return wc, nil
}

// Update replaces the editable fields
func (wc *WorkCenter) Update(d WorkCenterDetails) error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return shared.NewValidationError("work center name is required")
	}
	if d.Capacity == 0 {
		d.Capacity = 1
	}
	if d.Capacity < 1 {
		return shared.NewValidationError("capacity must be at least 1")
	}
	wc.Name = name
	wc.Description = d.Description
	wc.Capacity = d.Capacity
	wc.ManagerID = d.ManagerID
	if d.IsActive != nil {
		wc.IsActive = *d.IsActive
	}
	wc.Touch()
	return nil
}

// Efficiency summarizes work-order throughput of a work center
type Efficiency struct {
	WorkCenterID          int64   `json:"work_center_id"`
	WorkCenterName        string  `json:"work_center_name"`
	TotalWorkOrders       int64   `json:"total_work_orders"`
	CompletedWorkOrders   int64   `json:"completed_work_orders"`
	EfficiencyPercentage  float64 `json:"efficiency_percentage"`
	AverageCompletionTime float64 `json:"average_completion_time"`
}

// Percentage returns completed/total × 100 rounded to 2 places, 0 when total is 0
func Percentage(completed, total int64) float64 {
	if total <= 0 {
		return 0
	}
	v := float64(completed) / float64(total) * 100
	return float64(int64(v*100+0.5)) / 100
}
