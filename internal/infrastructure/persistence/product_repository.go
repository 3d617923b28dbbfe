package persistence

import (
	"context"
	"strings"
	"time"

	"github.com/erp/bizhub/internal/domain/catalog"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var productList = listSpec{
	table:         "products",
	resource:      identity.ResourceProducts,
	searchColumns: []string{"products.name", "products.sku", "products.description", "products.manufacturer"},
	filterColumns: map[string]string{
		"company_id":     "products.company_id",
		"category_id":    "products.category_id",
		"subcategory_id": "products.subcategory_id",
		"tax_id":         "products.tax_id",
		"product_type":   "products.product_type",
		"is_active":      "products.is_active",
		"is_featured":    "products.is_featured",
	},
	sortFields:  ProductSortFields,
	defaultSort: "name",
	defaultDir:  "ASC",
}

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Select("products.*, companies.name AS company_name").
		Joins("LEFT JOIN companies ON companies.id = products.company_id")
}

// FindByID finds a product visible to scope
func (r *GormProductRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*catalog.Product, error) {
	var m models.ProductModel
	if err := productList.firstScoped(r.query(ctx), scope, id, &m); err != nil {
		return nil, translateError(err, "product")
	}
	return m.ToDomain(), nil
}

// FindByIDUnscoped finds a product regardless of owner
func (r *GormProductRepository) FindByIDUnscoped(ctx context.Context, id int64) (*catalog.Product, error) {
	var m models.ProductModel
	if err := r.query(ctx).Where("products.id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err, "product")
	}
	return m.ToDomain(), nil
}

// FindAll lists products visible to scope
func (r *GormProductRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]catalog.Product, int64, error) {
	var rows []models.ProductModel
	build := func() *gorm.DB { return productList.where(r.query(ctx), scope, filter) }
	total, err := productList.findPage(build, filter, &rows, nil)
	if err != nil {
		return nil, 0, err
	}
	out := make([]catalog.Product, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// ExistsBySKU checks whether another product already uses sku
func (r *GormProductRepository) ExistsBySKU(ctx context.Context, sku string, excludeID int64) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.ProductModel{}).Where("sku = ?", strings.TrimSpace(sku))
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a product. The stock counter is never written here;
// it only moves through AdjustStock.
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	m := models.ProductModelFromDomain(product)
	if product.IsNew() {
		m.StockQuantity = decimal.Zero
	}
	if err := saveModel(r.db.WithContext(ctx), m, product.IsNew(), "created_by", "stock_quantity"); err != nil {
		return translateError(err, "product")
	}
	product.ID = m.ID
	return nil
}

// AdjustStock adds a signed delta to the cached stock counter
func (r *GormProductRepository) AdjustStock(ctx context.Context, productID int64, delta decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("id = ?", productID).
		UpdateColumns(map[string]interface{}{
			"stock_quantity": gorm.Expr("stock_quantity + ?", delta),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return translateError(result.Error, "product")
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("product", productID)
	}
	return nil
}

// Delete removes a product visible to scope
func (r *GormProductRepository) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return productList.deleteScoped(r.db.WithContext(ctx), scope, id, &models.ProductModel{}, "product")
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)

// GormProductImageRepository implements catalog.ProductImageRepository using GORM
type GormProductImageRepository struct {
	db *gorm.DB
}

// NewGormProductImageRepository creates a new GormProductImageRepository
func NewGormProductImageRepository(db *gorm.DB) *GormProductImageRepository {
	return &GormProductImageRepository{db: db}
}

// FindByProduct lists the images of a product, primary first
func (r *GormProductImageRepository) FindByProduct(ctx context.Context, productID int64) ([]catalog.ProductImage, error) {
	var rows []models.ProductImageModel
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("is_primary DESC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]catalog.ProductImage, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Save creates or updates an image record
func (r *GormProductImageRepository) Save(ctx context.Context, image *catalog.ProductImage) error {
	m := &models.ProductImageModel{}
	m.FromDomain(image)
	if err := saveModel(r.db.WithContext(ctx), m, image.IsNew()); err != nil {
		return translateError(err, "product image")
	}
	image.ID = m.ID
	return nil
}

// ClearPrimary unsets the primary flag on every image of a product
func (r *GormProductImageRepository) ClearPrimary(ctx context.Context, productID int64) error {
	return r.db.WithContext(ctx).
		Model(&models.ProductImageModel{}).
		Where("product_id = ? AND is_primary = ?", productID, true).
		Update("is_primary", false).Error
}

var _ catalog.ProductImageRepository = (*GormProductImageRepository)(nil)
