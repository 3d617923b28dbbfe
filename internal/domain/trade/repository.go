package trade

import (
	"context"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
)

// PurchaseOrderRepository defines persistence operations for purchase orders.
// Save writes the header and replaces the line items.
type PurchaseOrderRepository interface {
	FindByID(ctx context.Context, scope identity.Scope, id int64) (*PurchaseOrder, error)
	FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]PurchaseOrder, int64, error)
	Save(ctx context.Context, order *PurchaseOrder) error
	Delete(ctx context.Context, scope identity.Scope, id int64) error
}

// SalesOrderRepository defines persistence operations for sales orders
type SalesOrderRepository interface {
	FindByID(ctx context.Context, scope identity.Scope, id int64) (*SalesOrder, error)
	FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]SalesOrder, int64, error)
	Save(ctx context.Context, order *SalesOrder) error
	Delete(ctx context.Context, scope identity.Scope, id int64) error
}
