package manufacturing

import (
	"context"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
)

// WorkCenterRepository defines persistence operations for work centers
type WorkCenterRepository interface {
	FindByID(ctx context.Context, scope identity.Scope, id int64) (*WorkCenter, error)
	FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]WorkCenter, int64, error)
	Save(ctx context.Context, wc *WorkCenter) error
	Delete(ctx context.Context, scope identity.Scope, id int64) error
	Efficiency(ctx context.Context, id int64) (*Efficiency, error)
}

// ManufacturingOrderRepository defines persistence operations for manufacturing orders.
// Assigned visibility resolves to orders with a work order assigned to the actor.
type ManufacturingOrderRepository interface {
	FindByID(ctx context.Context, scope identity.Scope, id int64) (*ManufacturingOrder, error)
	FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]ManufacturingOrder, int64, error)
	Save(ctx context.Context, mo *ManufacturingOrder) error
	Delete(ctx context.Context, scope identity.Scope, id int64) error
}

// WorkOrderRepository defines persistence operations for work orders
type WorkOrderRepository interface {
	FindByID(ctx context.Context, scope identity.Scope, id int64) (*WorkOrder, error)
	FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]WorkOrder, int64, error)
	FindByManufacturingOrder(ctx context.Context, moID int64) ([]WorkOrder, error)
	Save(ctx context.Context, wo *WorkOrder) error
}
