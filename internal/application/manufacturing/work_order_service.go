package manufacturing

import (
	"context"
	"errors"
	"time"

	"github.com/erp/bizhub/internal/application/common"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/manufacturing"
	"github.com/erp/bizhub/internal/domain/shared"
	"go.uber.org/zap"
)

// WorkOrderService drives work orders through draft, ready, in_progress and completed.
// Starting or completing a work order updates its manufacturing order in the same transaction.
type WorkOrderService struct {
	txScope        common.TransactionScope
	workOrderRepo  manufacturing.WorkOrderRepository
	workCenterRepo manufacturing.WorkCenterRepository
	now            func() time.Time
	logger         *zap.Logger
}

// NewWorkOrderService creates a new WorkOrderService
func NewWorkOrderService(
	txScope common.TransactionScope,
	workOrderRepo manufacturing.WorkOrderRepository,
	workCenterRepo manufacturing.WorkCenterRepository,
	logger *zap.Logger,
) *WorkOrderService {
	return &WorkOrderService{
		txScope:        txScope,
		workOrderRepo:  workOrderRepo,
		workCenterRepo: workCenterRepo,
		now:            time.Now,
		logger:         logger,
	}
}

// List returns a page of work orders visible to the caller
func (s *WorkOrderService) List(ctx context.Context, scope identity.Scope, filter shared.Filter) (shared.Paginated[WorkOrderResponse], error) {
	filter = filter.Normalize()
	orders, total, err := s.workOrderRepo.FindAll(ctx, scope, filter)
	if err != nil {
		return shared.Paginated[WorkOrderResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(orders, ToWorkOrderResponse), total, filter.Page, filter.PageSize), nil
}

// GetByID returns a work order visible to the caller
func (s *WorkOrderService) GetByID(ctx context.Context, scope identity.Scope, id int64) (*WorkOrderResponse, error) {
	wo, err := s.workOrderRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	resp := ToWorkOrderResponse(wo)
	return &resp, nil
}

// Update replaces the editable fields of an open work order
func (s *WorkOrderService) Update(ctx context.Context, scope identity.Scope, id int64, req WorkOrderRequest) (*WorkOrderResponse, error) {
	wo, err := s.workOrderRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if req.WorkCenterID != wo.WorkCenterID {
		wc, err := s.workCenterRepo.FindByID(ctx, scope, req.WorkCenterID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewValidationError("work center %d not found", req.WorkCenterID)
			}
			return nil, err
		}
		wo.WorkCenterName = wc.Name
	}
	if err := wo.Update(req.details()); err != nil {
		return nil, err
	}
	if err := s.workOrderRepo.Save(ctx, wo); err != nil {
		return nil, err
	}
	resp := ToWorkOrderResponse(wo)
	return &resp, nil
}

// Release marks a draft work order ready to start
func (s *WorkOrderService) Release(ctx context.Context, scope identity.Scope, id int64) (*WorkOrderResponse, error) {
	return s.apply(ctx, scope, id, "released", func(_ common.TransactionalRepositories, wo *manufacturing.WorkOrder) error {
		return wo.Release()
	})
}

// Start begins a ready work order. A pending manufacturing order moves to in_progress.
func (s *WorkOrderService) Start(ctx context.Context, scope identity.Scope, id int64) (*WorkOrderResponse, error) {
	return s.apply(ctx, scope, id, "started", func(repos common.TransactionalRepositories, wo *manufacturing.WorkOrder) error {
		if err := wo.Start(s.now()); err != nil {
			return err
		}
		mo, err := repos.ManufacturingOrders().FindByID(ctx, identity.SystemScope(), wo.ManufacturingOrderID)
		if err != nil {
			return err
		}
		if mo.MarkStarted() {
			return repos.ManufacturingOrders().Save(ctx, mo)
		}
		return nil
	})
}

// Complete finishes an in-progress work order. When every work order of the
// manufacturing order is complete, the manufacturing order completes too.
func (s *WorkOrderService) Complete(ctx context.Context, scope identity.Scope, id int64, req CompleteWorkOrderRequest) (*WorkOrderResponse, error) {
	return s.apply(ctx, scope, id, "completed", func(repos common.TransactionalRepositories, wo *manufacturing.WorkOrder) error {
		if err := wo.Complete(s.now(), req.ActualHours); err != nil {
			return err
		}
		// saved first so the sibling read sees this work order as completed
		if err := repos.WorkOrders().Save(ctx, wo); err != nil {
			return err
		}
		siblings, err := repos.WorkOrders().FindByManufacturingOrder(ctx, wo.ManufacturingOrderID)
		if err != nil {
			return err
		}
		mo, err := repos.ManufacturingOrders().FindByID(ctx, identity.SystemScope(), wo.ManufacturingOrderID)
		if err != nil {
			return err
		}
		if mo.CompleteIfDone(siblings) {
			s.logger.Info("Manufacturing order completed", zap.Int64("order_id", mo.ID))
			return repos.ManufacturingOrders().Save(ctx, mo)
		}
		return nil
	})
}

// Cancel cancels a work order that has not completed
func (s *WorkOrderService) Cancel(ctx context.Context, scope identity.Scope, id int64) (*WorkOrderResponse, error) {
	return s.apply(ctx, scope, id, "cancelled", func(_ common.TransactionalRepositories, wo *manufacturing.WorkOrder) error {
		return wo.Cancel()
	})
}

func (s *WorkOrderService) apply(
	ctx context.Context,
	scope identity.Scope,
	id int64,
	verb string,
	fn func(repos common.TransactionalRepositories, wo *manufacturing.WorkOrder) error,
) (*WorkOrderResponse, error) {
	wo, err := s.workOrderRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	err = s.txScope.Execute(ctx, func(repos common.TransactionalRepositories) error {
		if err := fn(repos, wo); err != nil {
			return err
		}
		return repos.WorkOrders().Save(ctx, wo)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Work order "+verb,
		zap.Int64("work_order_id", wo.ID),
		zap.String("status", string(wo.Status)),
	)
	resp := ToWorkOrderResponse(wo)
	return &resp, nil
}
