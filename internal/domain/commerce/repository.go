package commerce

import (
	"context"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
)

// CartRepository stores cart rows; every call is bound to one user
type CartRepository interface {
	FindByUser(ctx context.Context, userID int64) ([]CartItem, error)
	FindByID(ctx context.Context, userID, id int64) (*CartItem, error)
	FindByProduct(ctx context.Context, userID, productID int64) (*CartItem, error)
	Save(ctx context.Context, item *CartItem) error
	Delete(ctx context.Context, userID, id int64) error
	DeleteByUser(ctx context.Context, userID int64) (int64, error)
}

// OrderRepository defines persistence operations for storefront orders
type OrderRepository interface {
	FindByID(ctx context.Context, scope identity.Scope, id int64) (*Order, error)
	FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]Order, int64, error)
	// Save writes the header, and the items on insert
	Save(ctx context.Context, order *Order) error
}

// SellerProductRepository defines persistence operations for seller listings
type SellerProductRepository interface {
	FindByID(ctx context.Context, scope identity.Scope, id int64) (*SellerProduct, error)
	FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]SellerProduct, int64, error)
	Save(ctx context.Context, sp *SellerProduct) error
	Delete(ctx context.Context, scope identity.Scope, id int64) error
}
