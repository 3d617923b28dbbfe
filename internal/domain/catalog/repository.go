package catalog

import (
	"context"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CategoryRepository defines persistence operations for categories.
// Categories are global reference data and are not owner-scoped.
type CategoryRepository interface {
	FindByID(ctx context.Context, id int64) (*Category, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, int64, error)
	Save(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id int64) error
}

// TaxRepository defines persistence operations for taxes
type TaxRepository interface {
	FindByID(ctx context.Context, scope identity.Scope, id int64) (*Tax, error)
	FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]Tax, int64, error)
	Save(ctx context.Context, tax *Tax) error
	Delete(ctx context.Context, scope identity.Scope, id int64) error
}

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	FindByID(ctx context.Context, scope identity.Scope, id int64) (*Product, error)
	// FindByIDUnscoped loads a product regardless of owner, e.g. for storefront checkout
	FindByIDUnscoped(ctx context.Context, id int64) (*Product, error)
	FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]Product, int64, error)
	ExistsBySKU(ctx context.Context, sku string, excludeID int64) (bool, error)
	Save(ctx context.Context, product *Product) error
	// AdjustStock adds a signed delta to the cached stock counter
	AdjustStock(ctx context.Context, productID int64, delta decimal.Decimal) error
	Delete(ctx context.Context, scope identity.Scope, id int64) error
}

// ProductImageRepository defines persistence operations for product images
type ProductImageRepository interface {
	FindByProduct(ctx context.Context, productID int64) ([]ProductImage, error)
	Save(ctx context.Context, image *ProductImage) error
	ClearPrimary(ctx context.Context, productID int64) error
}
