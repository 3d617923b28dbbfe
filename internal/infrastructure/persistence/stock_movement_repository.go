package persistence

import (
	"context"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/inventory"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

var stockMovementList = listSpec{
	table:         "stock_movements",
	resource:      identity.ResourceStockMovements,
	searchColumns: []string{"products.name", "products.sku", "stock_movements.notes"},
	filterColumns: map[string]string{
		"company_id":     "stock_movements.company_id",
		"product_id":     "stock_movements.product_id",
		"movement_type":  "stock_movements.movement_type",
		"reference_type": "stock_movements.reference_type",
		"reference_id":   "stock_movements.reference_id",
	},
	sortFields:  StockMovementSortFields,
	defaultSort: "created_at",
	defaultDir:  "DESC",
}

// GormStockMovementRepository implements inventory.StockMovementRepository using GORM.
// Rows are only ever inserted.
type GormStockMovementRepository struct {
	db *gorm.DB
}

// NewGormStockMovementRepository creates a new GormStockMovementRepository
func NewGormStockMovementRepository(db *gorm.DB) *GormStockMovementRepository {
	return &GormStockMovementRepository{db: db}
}

func (r *GormStockMovementRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.StockMovementModel{}).
		Select("stock_movements.*, products.name AS product_name").
		Joins("LEFT JOIN products ON products.id = stock_movements.product_id")
}

// Append inserts a movement and applies its delta to the product counter in one transaction
func (r *GormStockMovementRepository) Append(ctx context.Context, movement *inventory.StockMovement) error {
	if !movement.IsNew() {
		return shared.NewDomainError("INVALID_STATE", "Stock movements cannot be modified")
	}
	m := &models.StockMovementModel{}
	m.FromDomain(movement)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return translateError(err, "stock movement")
		}
		return NewGormProductRepository(tx).AdjustStock(ctx, movement.ProductID, movement.Delta())
	})
	if err != nil {
		return err
	}
	movement.ID = m.ID
	return nil
}

// FindByID finds a movement visible to scope
func (r *GormStockMovementRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*inventory.StockMovement, error) {
	var m models.StockMovementModel
	if err := stockMovementList.firstScoped(r.query(ctx), scope, id, &m); err != nil {
		return nil, translateError(err, "stock movement")
	}
	return m.ToDomain(), nil
}

// FindAll lists movements visible to scope
func (r *GormStockMovementRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]inventory.StockMovement, int64, error) {
	var rows []models.StockMovementModel
	build := func() *gorm.DB { return stockMovementList.where(r.query(ctx), scope, filter) }
	total, err := stockMovementList.findPage(build, filter, &rows, nil)
	if err != nil {
		return nil, 0, err
	}
	out := make([]inventory.StockMovement, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// Summary folds the visible ledger into per-product totals. companyID 0 covers every company.
func (r *GormStockMovementRepository) Summary(ctx context.Context, scope identity.Scope, companyID int64) ([]inventory.StockSummary, error) {
	q := stockMovementList.where(r.db.WithContext(ctx).Table("stock_movements"), scope, shared.Filter{}).
		Select(`stock_movements.product_id AS product_id,
			products.name AS product_name,
			products.sku AS sku,
			COALESCE(SUM(CASE WHEN stock_movements.movement_type = 'in' THEN stock_movements.quantity ELSE 0 END), 0) AS total_in,
			COALESCE(SUM(CASE WHEN stock_movements.movement_type = 'out' THEN stock_movements.quantity ELSE 0 END), 0) AS total_out,
			COALESCE(SUM(CASE WHEN stock_movements.movement_type = 'adjustment' THEN stock_movements.quantity ELSE 0 END), 0) AS total_adjustment,
			COALESCE(SUM(CASE WHEN stock_movements.movement_type = 'out' THEN -stock_movements.quantity ELSE stock_movements.quantity END), 0) AS on_hand`).
		Joins("JOIN products ON products.id = stock_movements.product_id").
		Group("stock_movements.product_id, products.name, products.sku").
		Order("products.name ASC")
	if companyID > 0 {
		q = q.Where("stock_movements.company_id = ?", companyID)
	}
	var out []inventory.StockSummary
	if err := q.Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

var _ inventory.StockMovementRepository = (*GormStockMovementRepository)(nil)
