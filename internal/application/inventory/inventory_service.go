package inventory

import (
	"context"
	"errors"

	"github.com/erp/bizhub/internal/application/common"
	"github.com/erp/bizhub/internal/domain/catalog"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/inventory"
	"github.com/erp/bizhub/internal/domain/partner"
	"github.com/erp/bizhub/internal/domain/shared"
	"go.uber.org/zap"
)

// InventoryService records manual stock movements and reads the ledger.
// Movements are never updated or deleted.
type InventoryService struct {
	txScope      common.TransactionScope
	movementRepo inventory.StockMovementRepository
	productRepo  catalog.ProductRepository
	companyRepo  partner.CompanyRepository
	logger       *zap.Logger
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(
	txScope common.TransactionScope,
	movementRepo inventory.StockMovementRepository,
	productRepo catalog.ProductRepository,
	companyRepo partner.CompanyRepository,
	logger *zap.Logger,
) *InventoryService {
	return &InventoryService{
		txScope:      txScope,
		movementRepo: movementRepo,
		productRepo:  productRepo,
		companyRepo:  companyRepo,
		logger:       logger,
	}
}

// List returns a page of movements visible to the caller
func (s *InventoryService) List(ctx context.Context, scope identity.Scope, filter shared.Filter) (shared.Paginated[MovementResponse], error) {
	filter = filter.Normalize()
	movements, total, err := s.movementRepo.FindAll(ctx, scope, filter)
	if err != nil {
		return shared.Paginated[MovementResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(movements, ToMovementResponse), total, filter.Page, filter.PageSize), nil
}

// GetByID returns one movement visible to the caller
func (s *InventoryService) GetByID(ctx context.Context, scope identity.Scope, id int64) (*MovementResponse, error) {
	movement, err := s.movementRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	resp := ToMovementResponse(movement)
	return &resp, nil
}

// Create appends a manual movement and applies its delta to the product stock
func (s *InventoryService) Create(ctx context.Context, scope identity.Scope, req CreateMovementRequest) (*MovementResponse, error) {
	movement, err := inventory.NewStockMovement(scope.UserID, req.input())
	if err != nil {
		return nil, err
	}
	if _, err := s.companyRepo.FindByID(ctx, scope, movement.CompanyID); err != nil {
		return nil, err
	}
	product, err := s.productRepo.FindByID(ctx, scope, movement.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewValidationError("product %d not found", movement.ProductID)
		}
		return nil, err
	}
	if product.CompanyID != movement.CompanyID {
		return nil, shared.NewValidationError("product %d does not belong to company %d", product.ID, movement.CompanyID)
	}
	movement.ProductName = product.Name

	err = s.txScope.Execute(ctx, func(repos common.TransactionalRepositories) error {
		return repos.StockMovements().Append(ctx, movement)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Stock movement recorded",
		zap.Int64("movement_id", movement.ID),
		zap.Int64("product_id", movement.ProductID),
		zap.String("type", string(movement.MovementType)),
		zap.String("delta", movement.Delta().String()),
	)
	resp := ToMovementResponse(movement)
	return &resp, nil
}

// Summary aggregates the ledger per product. companyID 0 covers every visible company.
func (s *InventoryService) Summary(ctx context.Context, scope identity.Scope, companyID int64) ([]inventory.StockSummary, error) {
	if companyID > 0 {
		if _, err := s.companyRepo.FindByID(ctx, scope, companyID); err != nil {
			return nil, err
		}
	}
	summary, err := s.movementRepo.Summary(ctx, scope, companyID)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		summary = []inventory.StockSummary{}
	}
	return summary, nil
}
