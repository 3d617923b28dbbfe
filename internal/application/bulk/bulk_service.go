// Package bulkapp applies delete and update operations to many rows of one model at a time.
package bulkapp

import (
	"context"
	"fmt"
	"strings"

	"github.com/erp/bizhub/internal/domain/bulk"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
	"go.uber.org/zap"
)

// DeleteRequest lists the ids to delete
type DeleteRequest struct {
	IDs []int64 `json:"ids"`
}

// UpdateRequest lists the ids to update and the column values to set
type UpdateRequest struct {
	IDs        []int64                `json:"ids"`
	UpdateData map[string]interface{} `json:"update_data"`
}

// DeleteResult reports a bulk delete
type DeleteResult struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deleted_count"`
}

// UpdateResult reports a bulk update
type UpdateResult struct {
	Message      string `json:"message"`
	UpdatedCount int64  `json:"updated_count"`
}

// BulkService resolves the model, checks the caller may mutate it and delegates to the repository
type BulkService struct {
	repo   bulk.Repository
	logger *zap.Logger
}

// NewBulkService creates a new BulkService
func NewBulkService(repo bulk.Repository, logger *zap.Logger) *BulkService {
	return &BulkService{repo: repo, logger: logger}
}

// Delete removes the listed rows of model that the caller can see
func (s *BulkService) Delete(ctx context.Context, scope identity.Scope, model string, req DeleteRequest) (*DeleteResult, error) {
	t, err := s.resolve(scope, model, req.IDs)
	if err != nil {
		return nil, err
	}
	count, err := s.repo.DeleteByIDs(ctx, scope, t, dedupe(req.IDs))
	if err != nil {
		return nil, err
	}
	s.logger.Info("Bulk delete",
		zap.String("model", model),
		zap.Int("requested", len(req.IDs)),
		zap.Int64("deleted", count),
		zap.Int64("user_id", scope.UserID),
	)
	return &DeleteResult{
		Message:      fmt.Sprintf("Deleted %d %s", count, label(model)),
		DeletedCount: count,
	}, nil
}

// Update sets whitelisted columns on the listed rows of model that the caller can see
func (s *BulkService) Update(ctx context.Context, scope identity.Scope, model string, req UpdateRequest) (*UpdateResult, error) {
	t, err := s.resolve(scope, model, req.IDs)
	if err != nil {
		return nil, err
	}
	if err := t.CheckUpdate(req.UpdateData); err != nil {
		return nil, err
	}
	count, err := s.repo.UpdateByIDs(ctx, scope, t, dedupe(req.IDs), req.UpdateData)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Bulk update",
		zap.String("model", model),
		zap.Int("requested", len(req.IDs)),
		zap.Int64("updated", count),
		zap.Int64("user_id", scope.UserID),
	)
	return &UpdateResult{
		Message:      fmt.Sprintf("Updated %d %s", count, label(model)),
		UpdatedCount: count,
	}, nil
}

func (s *BulkService) resolve(scope identity.Scope, model string, ids []int64) (bulk.Target, error) {
	t, err := bulk.Lookup(model)
	if err != nil {
		return bulk.Target{}, err
	}
	if err := t.CheckMutable(scope); err != nil {
		return bulk.Target{}, err
	}
	if len(ids) == 0 {
		return bulk.Target{}, shared.ErrNothingToApply
	}
	return t, nil
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func label(model string) string {
	return strings.ReplaceAll(model, "_", " ")
}
