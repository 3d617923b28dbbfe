package commerce

import (
	"context"
	"errors"
	"time"

	"github.com/erp/bizhub/internal/domain/catalog"
	"github.com/erp/bizhub/internal/domain/commerce"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SellerProductService manages marketplace listings
type SellerProductService struct {
	listingRepo    commerce.SellerProductRepository
	productRepo    catalog.ProductRepository
	commissionRate decimal.Decimal
	logger         *zap.Logger
}

// NewSellerProductService creates a new SellerProductService
func NewSellerProductService(
	listingRepo commerce.SellerProductRepository,
	productRepo catalog.ProductRepository,
	commissionRate decimal.Decimal,
	logger *zap.Logger,
) *SellerProductService {
	if commissionRate.IsZero() {
		commissionRate = commerce.DefaultCommissionRate
	}
	return &SellerProductService{
		listingRepo:    listingRepo,
		productRepo:    productRepo,
		commissionRate: commissionRate,
		logger:         logger,
	}
}

// List returns a page of listings visible to the caller
func (s *SellerProductService) List(ctx context.Context, scope identity.Scope, filter shared.Filter) (shared.Paginated[SellerProductResponse], error) {
	filter = filter.Normalize()
	listings, total, err := s.listingRepo.FindAll(ctx, scope, filter)
	if err != nil {
		return shared.Paginated[SellerProductResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(listings, ToSellerProductResponse), total, filter.Page, filter.PageSize), nil
}

// GetByID returns a listing visible to the caller
func (s *SellerProductService) GetByID(ctx context.Context, scope identity.Scope, id int64) (*SellerProductResponse, error) {
	listing, err := s.listingRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	resp := ToSellerProductResponse(listing)
	return &resp, nil
}

// Create lists a product for the caller
func (s *SellerProductService) Create(ctx context.Context, scope identity.Scope, req SellerProductRequest) (*SellerProductResponse, error) {
	product, err := s.product(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	listing, err := commerce.NewSellerProduct(scope.UserID, req.ProductID, req.SellingPrice, s.commissionRate)
	if err != nil {
		return nil, err
	}
	if err := s.listingRepo.Save(ctx, listing); err != nil {
		return nil, err
	}
	listing.ProductName = product.Name
	s.logger.Info("Seller product listed",
		zap.Int64("listing_id", listing.ID),
		zap.Int64("seller_id", scope.UserID),
		zap.String("commission", listing.CommissionAmount.String()),
	)
	resp := ToSellerProductResponse(listing)
	return &resp, nil
}

// Update changes the product or price of a listing. Commission is recomputed.
func (s *SellerProductService) Update(ctx context.Context, scope identity.Scope, id int64, req SellerProductRequest) (*SellerProductResponse, error) {
	listing, err := s.listingRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if req.ProductID != listing.ProductID {
		product, err := s.product(ctx, req.ProductID)
		if err != nil {
			return nil, err
		}
		listing.ProductID = product.ID
		listing.ProductName = product.Name
	}
	if err := listing.SetSellingPrice(req.SellingPrice, s.commissionRate); err != nil {
		return nil, err
	}
	if err := s.listingRepo.Save(ctx, listing); err != nil {
		return nil, err
	}
	resp := ToSellerProductResponse(listing)
	return &resp, nil
}

// Approve marks a listing approved; administrators only
func (s *SellerProductService) Approve(ctx context.Context, scope identity.Scope, id int64) (*SellerProductResponse, error) {
	if !scope.IsAdmin() {
		return nil, shared.NewDomainError("FORBIDDEN", "Only administrators can approve listings")
	}
	listing, err := s.listingRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if err := listing.Approve(scope.UserID, time.Now()); err != nil {
		return nil, err
	}
	if err := s.listingRepo.Save(ctx, listing); err != nil {
		return nil, err
	}
	s.logger.Info("Seller product approved", zap.Int64("listing_id", listing.ID), zap.Int64("admin_id", scope.UserID))
	resp := ToSellerProductResponse(listing)
	return &resp, nil
}

// Delete removes a listing visible to the caller
func (s *SellerProductService) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return s.listingRepo.Delete(ctx, scope, id)
}

func (s *SellerProductService) product(ctx context.Context, id int64) (*catalog.Product, error) {
	product, err := s.productRepo.FindByIDUnscoped(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewValidationError("product %d not found", id)
		}
		return nil, err
	}
	return product, nil
}
