package manufacturing

import (
	"context"
	"errors"

	"github.com/erp/bizhub/internal/application/common"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/manufacturing"
	"github.com/erp/bizhub/internal/domain/shared"
	"go.uber.org/zap"
)

// ManufacturingOrderService handles manufacturing orders and the work orders planned under them
type ManufacturingOrderService struct {
	txScope        common.TransactionScope
	sequencer      shared.NumberSequencer
	orderRepo      manufacturing.ManufacturingOrderRepository
	workOrderRepo  manufacturing.WorkOrderRepository
	workCenterRepo manufacturing.WorkCenterRepository
	logger         *zap.Logger
}

// NewManufacturingOrderService creates a new ManufacturingOrderService
func NewManufacturingOrderService(
	txScope common.TransactionScope,
	sequencer shared.NumberSequencer,
	orderRepo manufacturing.ManufacturingOrderRepository,
	workOrderRepo manufacturing.WorkOrderRepository,
	workCenterRepo manufacturing.WorkCenterRepository,
	logger *zap.Logger,
) *ManufacturingOrderService {
	return &ManufacturingOrderService{
		txScope:        txScope,
		sequencer:      sequencer,
		orderRepo:      orderRepo,
		workOrderRepo:  workOrderRepo,
		workCenterRepo: workCenterRepo,
		logger:         logger,
	}
}

// List returns a page of manufacturing orders visible to the caller
func (s *ManufacturingOrderService) List(ctx context.Context, scope identity.Scope, filter shared.Filter) (shared.Paginated[ManufacturingOrderResponse], error) {
	filter = filter.Normalize()
	orders, total, err := s.orderRepo.FindAll(ctx, scope, filter)
	if err != nil {
		return shared.Paginated[ManufacturingOrderResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(orders, ToManufacturingOrderResponse), total, filter.Page, filter.PageSize), nil
}

// GetByID returns a manufacturing order with its work orders
func (s *ManufacturingOrderService) GetByID(ctx context.Context, scope identity.Scope, id int64) (*ManufacturingOrderResponse, error) {
	mo, err := s.orderRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	workOrders, err := s.workOrderRepo.FindByManufacturingOrder(ctx, mo.ID)
	if err != nil {
		return nil, err
	}
	resp := ToManufacturingOrderResponse(mo)
	resp.WorkOrders = mapSlice(workOrders, ToWorkOrderResponse)
	return &resp, nil
}

// Create adds a pending manufacturing order. A blank order number draws MO-NNNNNN.
func (s *ManufacturingOrderService) Create(ctx context.Context, scope identity.Scope, req ManufacturingOrderRequest) (*ManufacturingOrderResponse, error) {
	mo, err := manufacturing.NewManufacturingOrder(scope.UserID, req.details())
	if err != nil {
		return nil, err
	}
	if err := s.checkWorkCenter(ctx, scope, mo.WorkCenterID); err != nil {
		return nil, err
	}

	err = common.WithNumber(ctx, s.sequencer, shared.ManufacturingOrderNumbering, 0, mo.OrderNumber,
		func(ctx context.Context, number string) error {
			mo.AssignNumber(number)
			return s.txScope.Execute(ctx, func(repos common.TransactionalRepositories) error {
				return repos.ManufacturingOrders().Save(ctx, mo)
			})
		})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Manufacturing order created",
		zap.Int64("order_id", mo.ID),
		zap.String("order_number", mo.OrderNumber),
	)
	resp := ToManufacturingOrderResponse(mo)
	return &resp, nil
}

// Update replaces the editable fields of a manufacturing order
func (s *ManufacturingOrderService) Update(ctx context.Context, scope identity.Scope, id int64, req ManufacturingOrderRequest) (*ManufacturingOrderResponse, error) {
	mo, err := s.orderRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if err := mo.Update(req.details()); err != nil {
		return nil, err
	}
	if req.OrderNumber != "" {
		mo.OrderNumber = req.OrderNumber
	}
	if err := s.checkWorkCenter(ctx, scope, mo.WorkCenterID); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, mo); err != nil {
		return nil, err
	}
	resp := ToManufacturingOrderResponse(mo)
	return &resp, nil
}

// Cancel cancels a pending or in-progress manufacturing order
func (s *ManufacturingOrderService) Cancel(ctx context.Context, scope identity.Scope, id int64) (*ManufacturingOrderResponse, error) {
	mo, err := s.orderRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if err := mo.Cancel(); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, mo); err != nil {
		return nil, err
	}
	s.logger.Info("Manufacturing order cancelled", zap.Int64("order_id", mo.ID))
	resp := ToManufacturingOrderResponse(mo)
	return &resp, nil
}

// Delete removes a manufacturing order; its work orders go with it
func (s *ManufacturingOrderService) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return s.orderRepo.Delete(ctx, scope, id)
}

// CreateWorkOrder plans a draft work order under an open manufacturing order
func (s *ManufacturingOrderService) CreateWorkOrder(ctx context.Context, scope identity.Scope, moID int64, req WorkOrderRequest) (*WorkOrderResponse, error) {
	mo, err := s.orderRepo.FindByID(ctx, scope, moID)
	if err != nil {
		return nil, err
	}
	wc, err := s.workCenter(ctx, scope, req.WorkCenterID)
	if err != nil {
		return nil, err
	}
	wo, err := manufacturing.NewWorkOrder(mo, req.details())
	if err != nil {
		return nil, err
	}
	wo.WorkCenterName = wc.Name

	err = s.sequencer.WithNext(ctx, shared.WorkOrderNumbering, 0, func(ctx context.Context, number string) error {
		wo.AssignNumber(number)
		return s.txScope.Execute(ctx, func(repos common.TransactionalRepositories) error {
			return repos.WorkOrders().Save(ctx, wo)
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Work order created",
		zap.Int64("work_order_id", wo.ID),
		zap.String("work_order_number", wo.WorkOrderNumber),
		zap.Int64("manufacturing_order_id", mo.ID),
	)
	resp := ToWorkOrderResponse(wo)
	return &resp, nil
}

func (s *ManufacturingOrderService) checkWorkCenter(ctx context.Context, scope identity.Scope, id *int64) error {
	if id == nil {
		return nil
	}
	_, err := s.workCenter(ctx, scope, *id)
	return err
}

func (s *ManufacturingOrderService) workCenter(ctx context.Context, scope identity.Scope, id int64) (*manufacturing.WorkCenter, error) {
	wc, err := s.workCenterRepo.FindByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewValidationError("work center %d not found", id)
		}
		return nil, err
	}
	return wc, nil
}
