package partner

import (
	"context"
	"errors"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/partner"
	"github.com/erp/bizhub/internal/domain/shared"
	"go.uber.org/zap"
)

// SellerProfileService manages marketplace seller profiles. Each user has at most one.
type SellerProfileService struct {
	profileRepo partner.SellerProfileRepository
	logger      *zap.Logger
}

// NewSellerProfileService creates a new SellerProfileService
func NewSellerProfileService(profileRepo partner.SellerProfileRepository, logger *zap.Logger) *SellerProfileService {
	return &SellerProfileService{profileRepo: profileRepo, logger: logger}
}

// List returns the profiles visible to scope
func (s *SellerProfileService) List(ctx context.Context, scope identity.Scope, filter shared.Filter) (shared.Paginated[SellerProfileResponse], error) {
	filter = filter.Normalize()
	profiles, total, err := s.profileRepo.FindAll(ctx, scope, filter)
	if err != nil {
		return shared.Paginated[SellerProfileResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(profiles, ToSellerProfileResponse), total, filter.Page, filter.PageSize), nil
}

// GetByID returns one profile
func (s *SellerProfileService) GetByID(ctx context.Context, scope identity.Scope, id int64) (*SellerProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	resp := ToSellerProfileResponse(profile)
	return &resp, nil
}

// Create registers the actor's seller profile
func (s *SellerProfileService) Create(ctx context.Context, scope identity.Scope, req SellerProfileRequest) (*SellerProfileResponse, error) {
	existing, err := s.profileRepo.FindByUserID(ctx, scope.UserID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Seller profile already exists for this user")
	}
	profile, err := partner.NewSellerProfile(scope.UserID, req.details())
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	s.logger.Info("Seller profile created", zap.Int64("profile_id", profile.ID), zap.Int64("user_id", scope.UserID))
	resp := ToSellerProfileResponse(profile)
	return &resp, nil
}

// Update replaces the seller-editable details
func (s *SellerProfileService) Update(ctx context.Context, scope identity.Scope, id int64, req SellerProfileRequest) (*SellerProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if err := profile.Update(req.details()); err != nil {
		return nil, err
	}
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	resp := ToSellerProfileResponse(profile)
	return &resp, nil
}

// Verify marks a seller as verified. Admin only.
func (s *SellerProfileService) Verify(ctx context.Context, scope identity.Scope, id int64) (*SellerProfileResponse, error) {
	if !scope.IsAdmin() {
		return nil, shared.NewDomainError("FORBIDDEN", "Only admins can verify sellers")
	}
	profile, err := s.profileRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	profile.Verify()
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	s.logger.Info("Seller verified", zap.Int64("profile_id", id), zap.Int64("admin_id", scope.UserID))
	resp := ToSellerProfileResponse(profile)
	return &resp, nil
}

// Delete removes a profile
func (s *SellerProfileService) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return s.profileRepo.Delete(ctx, scope, id)
}
