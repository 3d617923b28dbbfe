package persistence

import (
	"context"

	"github.com/erp/bizhub/internal/domain/commerce"
	"github.com/erp/bizhub/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCartRepository implements commerce.CartRepository using GORM.
// Product columns are resolved on every read so prices are always current.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) query(ctx context.Context, userID int64) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.CartItemModel{}).
		Select(`cart_items.*,
			products.name AS product_name,
			products.company_id AS company_id,
			products.unit_price AS unit_price,
			products.stock_quantity AS stock_quantity,
			products.min_order_quantity AS min_order_quantity`).
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID)
}

// FindByUser lists the cart of a user in insertion order
func (r *GormCartRepository) FindByUser(ctx context.Context, userID int64) ([]commerce.CartItem, error) {
	var rows []models.CartItemModel
	if err := r.query(ctx, userID).Order("cart_items.id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]commerce.CartItem, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// FindByID finds one cart row of a user
func (r *GormCartRepository) FindByID(ctx context.Context, userID, id int64) (*commerce.CartItem, error) {
	var m models.CartItemModel
	if err := r.query(ctx, userID).Where("cart_items.id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err, "cart item")
	}
	return m.ToDomain(), nil
}

// FindByProduct finds the cart row of a user for a product, or nil
func (r *GormCartRepository) FindByProduct(ctx context.Context, userID, productID int64) (*commerce.CartItem, error) {
	var m models.CartItemModel
	err := r.query(ctx, userID).Where("cart_items.product_id = ?", productID).First(&m).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

// Save creates or updates a cart row
func (r *GormCartRepository) Save(ctx context.Context, item *commerce.CartItem) error {
	m := &models.CartItemModel{}
	m.FromDomain(item)
	if err := saveModel(r.db.WithContext(ctx), m, item.IsNew(), "user_id", "product_id"); err != nil {
		return translateError(err, "cart item")
	}
	item.ID = m.ID
	return nil
}

// Delete removes one cart row of a user
func (r *GormCartRepository) Delete(ctx context.Context, userID, id int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&models.CartItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "cart item")
	}
	return nil
}

// DeleteByUser empties the cart of a user and returns the number of rows removed
func (r *GormCartRepository) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItemModel{})
	return result.RowsAffected, result.Error
}

var _ commerce.CartRepository = (*GormCartRepository)(nil)
