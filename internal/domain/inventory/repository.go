package inventory

import (
	"context"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
)

// StockMovementRepository is the append-only ledger store. Append also applies
// the movement delta to the product's cached stock counter in the same transaction.
type StockMovementRepository interface {
	Append(ctx context.Context, movement *StockMovement) error
	FindByID(ctx context.Context, scope identity.Scope, id int64) (*StockMovement, error)
	FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]StockMovement, int64, error)
	Summary(ctx context.Context, scope identity.Scope, companyID int64) ([]StockSummary, error)
}
