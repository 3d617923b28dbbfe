package manufacturing

import (
	"context"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/manufacturing"
	"github.com/erp/bizhub/internal/domain/shared"
	"go.uber.org/zap"
)

// WorkCenterService handles work center use cases
type WorkCenterService struct {
	repo   manufacturing.WorkCenterRepository
	logger *zap.Logger
}

// NewWorkCenterService creates a new WorkCenterService
func NewWorkCenterService(repo manufacturing.WorkCenterRepository, logger *zap.Logger) *WorkCenterService {
	return &WorkCenterService{repo: repo, logger: logger}
}

// List returns a page of work centers visible to the caller
func (s *WorkCenterService) List(ctx context.Context, scope identity.Scope, filter shared.Filter) (shared.Paginated[WorkCenterResponse], error) {
	filter = filter.Normalize()
	centers, total, err := s.repo.FindAll(ctx, scope, filter)
	if err != nil {
		return shared.Paginated[WorkCenterResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(centers, ToWorkCenterResponse), total, filter.Page, filter.PageSize), nil
}

// GetByID returns a work center visible to the caller
func (s *WorkCenterService) GetByID(ctx context.Context, scope identity.Scope, id int64) (*WorkCenterResponse, error) {
	wc, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	resp := ToWorkCenterResponse(wc)
	return &resp, nil
}

// Create adds a work center owned by the caller
func (s *WorkCenterService) Create(ctx context.Context, scope identity.Scope, req WorkCenterRequest) (*WorkCenterResponse, error) {
	wc, err := manufacturing.NewWorkCenter(scope.UserID, req.details())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, wc); err != nil {
		return nil, err
	}
	s.logger.Info("Work center created", zap.Int64("work_center_id", wc.ID), zap.String("name", wc.Name))
	resp := ToWorkCenterResponse(wc)
	return &resp, nil
}

// Update replaces the editable fields of a work center
func (s *WorkCenterService) Update(ctx context.Context, scope identity.Scope, id int64, req WorkCenterRequest) (*WorkCenterResponse, error) {
	wc, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if err := wc.Update(req.details()); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, wc); err != nil {
		return nil, err
	}
	resp := ToWorkCenterResponse(wc)
	return &resp, nil
}

// Delete removes a work center visible to the caller
func (s *WorkCenterService) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	if err := s.repo.Delete(ctx, scope, id); err != nil {
		return err
	}
	s.logger.Info("Work center deleted", zap.Int64("work_center_id", id))
	return nil
}

// Efficiency reports completed versus total work orders for a visible work center
func (s *WorkCenterService) Efficiency(ctx context.Context, scope identity.Scope, id int64) (*manufacturing.Efficiency, error) {
	wc, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	eff, err := s.repo.Efficiency(ctx, wc.ID)
	if err != nil {
		return nil, err
	}
	eff.WorkCenterID = wc.ID
	eff.WorkCenterName = wc.Name
	eff.EfficiencyPercentage = manufacturing.Percentage(eff.CompletedWorkOrders, eff.TotalWorkOrders)
	return eff, nil
}
