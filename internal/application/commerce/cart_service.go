package commerce

import (
	"context"
	"errors"

	"github.com/erp/bizhub/internal/domain/catalog"
	"github.com/erp/bizhub/internal/domain/commerce"
	"github.com/erp/bizhub/internal/domain/shared"
	"go.uber.org/zap"
)

// CartService manages the caller's own cart. Rows of other users are never reachable.
type CartService struct {
	cartRepo    commerce.CartRepository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewCartService creates a new CartService
func NewCartService(cartRepo commerce.CartRepository, productRepo catalog.ProductRepository, logger *zap.Logger) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo, logger: logger}
}

// Get returns the caller's cart with current prices
func (s *CartService) Get(ctx context.Context, userID int64) (*CartResponse, error) {
	items, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	count := 0
	for _, it := range items {
		count += it.Quantity
	}
	return &CartResponse{
		Items:      mapSlice(items, ToCartItemResponse),
		ItemsCount: count,
		Total:      commerce.CartTotal(items),
	}, nil
}

// Add puts a product in the cart, increasing the quantity when it is already there
func (s *CartService) Add(ctx context.Context, userID int64, req AddToCartRequest) (*CartItemResponse, error) {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	product, err := s.productRepo.FindByIDUnscoped(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewValidationError("product %d not found", req.ProductID)
		}
		return nil, err
	}
	if !product.IsActive {
		return nil, shared.NewValidationError("product %d is not available", req.ProductID)
	}

	item, err := s.cartRepo.FindByProduct(ctx, userID, req.ProductID)
	switch {
	case err == nil:
		if err := item.Add(quantity); err != nil {
			return nil, err
		}
	case errors.Is(err, shared.ErrNotFound):
		item, err = commerce.NewCartItem(userID, req.ProductID, quantity)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	if item.Quantity < product.MinOrderQuantity {
		return nil, shared.NewValidationError("minimum order quantity for %s is %d", product.Name, product.MinOrderQuantity)
	}

	if err := s.cartRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	item.ProductName = product.Name
	item.CompanyID = product.CompanyID
	item.UnitPrice = product.UnitPrice

	s.logger.Debug("Cart item saved",
		zap.Int64("user_id", userID),
		zap.Int64("product_id", item.ProductID),
		zap.Int("quantity", item.Quantity),
	)
	resp := ToCartItemResponse(item)
	return &resp, nil
}

// UpdateQuantity replaces the quantity of one of the caller's cart rows
func (s *CartService) UpdateQuantity(ctx context.Context, userID, id int64, req UpdateCartItemRequest) (*CartItemResponse, error) {
	item, err := s.cartRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := item.SetQuantity(req.Quantity); err != nil {
		return nil, err
	}
	if item.MinOrderQuantity > 0 && item.Quantity < item.MinOrderQuantity {
		return nil, shared.NewValidationError("minimum order quantity for %s is %d", item.ProductName, item.MinOrderQuantity)
	}
	if err := s.cartRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	resp := ToCartItemResponse(item)
	return &resp, nil
}

// Remove deletes one of the caller's cart rows
func (s *CartService) Remove(ctx context.Context, userID, id int64) error {
	return s.cartRepo.Delete(ctx, userID, id)
}
