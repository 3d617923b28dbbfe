package persistence

import (
	"context"

	"github.com/erp/bizhub/internal/domain/commerce"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

var sellerProductList = listSpec{
	table:         "seller_products",
	resource:      identity.ResourceSellerProducts,
	searchColumns: []string{"products.name", "products.sku"},
	filterColumns: map[string]string{
		"product_id":  "seller_products.product_id",
		"is_approved": "seller_products.is_approved",
		"created_by":  "seller_products.created_by",
	},
	sortFields:  SellerProductSortFields,
	defaultSort: "created_at",
	defaultDir:  "DESC",
}

// GormSellerProductRepository implements commerce.SellerProductRepository using GORM
type GormSellerProductRepository struct {
	db *gorm.DB
}

// NewGormSellerProductRepository creates a new GormSellerProductRepository
func NewGormSellerProductRepository(db *gorm.DB) *GormSellerProductRepository {
	return &GormSellerProductRepository{db: db}
}

func (r *GormSellerProductRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.SellerProductModel{}).
		Select("seller_products.*, products.name AS product_name").
		Joins("LEFT JOIN products ON products.id = seller_products.product_id")
}

// FindByID finds a listing visible to scope
func (r *GormSellerProductRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*commerce.SellerProduct, error) {
	var m models.SellerProductModel
	if err := sellerProductList.firstScoped(r.query(ctx), scope, id, &m); err != nil {
		return nil, translateError(err, "seller product")
	}
	return m.ToDomain(), nil
}

// FindAll lists listings visible to scope
func (r *GormSellerProductRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]commerce.SellerProduct, int64, error) {
	var rows []models.SellerProductModel
	build := func() *gorm.DB { return sellerProductList.where(r.query(ctx), scope, filter) }
	total, err := sellerProductList.findPage(build, filter, &rows, nil)
	if err != nil {
		return nil, 0, err
	}
	out := make([]commerce.SellerProduct, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// Save creates or updates a listing
func (r *GormSellerProductRepository) Save(ctx context.Context, sp *commerce.SellerProduct) error {
	m := &models.SellerProductModel{}
	m.FromDomain(sp)
	if err := saveModel(r.db.WithContext(ctx), m, sp.IsNew(), "created_by"); err != nil {
		return translateError(err, "seller product")
	}
	sp.ID = m.ID
	return nil
}

// Delete removes a listing visible to scope
func (r *GormSellerProductRepository) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return sellerProductList.deleteScoped(r.db.WithContext(ctx), scope, id, &models.SellerProductModel{}, "seller product")
}

var _ commerce.SellerProductRepository = (*GormSellerProductRepository)(nil)
