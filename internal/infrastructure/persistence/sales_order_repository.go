package persistence

import (
	"context"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/domain/trade"
	"github.com/erp/bizhub/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

var salesOrderList = listSpec{
	table:         "sales_orders",
	resource:      identity.ResourceSalesOrders,
	searchColumns: []string{"sales_orders.so_number", "contacts.name", "sales_orders.notes"},
	filterColumns: map[string]string{
		"company_id":  "sales_orders.company_id",
		"customer_id": "sales_orders.customer_id",
		"status":      "sales_orders.status",
	},
	sortFields:  SalesOrderSortFields,
	defaultSort: "created_at",
	defaultDir:  "DESC",
}

// GormSalesOrderRepository implements trade.SalesOrderRepository using GORM
type GormSalesOrderRepository struct {
	db *gorm.DB
}

// NewGormSalesOrderRepository creates a new GormSalesOrderRepository
func NewGormSalesOrderRepository(db *gorm.DB) *GormSalesOrderRepository {
	return &GormSalesOrderRepository{db: db}
}

func (r *GormSalesOrderRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.SalesOrderModel{}).
		Select("sales_orders.*, contacts.name AS customer_name").
		Joins("LEFT JOIN contacts ON contacts.id = sales_orders.customer_id")
}

func preloadSalesOrderItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", withLineProducts("sales_order_items"))
}

// FindByID finds a sales order with its items
func (r *GormSalesOrderRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*trade.SalesOrder, error) {
	var m models.SalesOrderModel
	if err := salesOrderList.firstScoped(preloadSalesOrderItems(r.query(ctx)), scope, id, &m); err != nil {
		return nil, translateError(err, "sales order")
	}
	return m.ToDomain(), nil
}

// FindAll lists sales orders visible to scope, with items
func (r *GormSalesOrderRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]trade.SalesOrder, int64, error) {
	var rows []models.SalesOrderModel
	build := func() *gorm.DB { return salesOrderList.where(r.query(ctx), scope, filter) }
	total, err := salesOrderList.findPage(build, filter, &rows, preloadSalesOrderItems)
	if err != nil {
		return nil, 0, err
	}
	out := make([]trade.SalesOrder, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// Save writes the header and replaces the items
func (r *GormSalesOrderRepository) Save(ctx context.Context, order *trade.SalesOrder) error {
	m := models.SalesOrderModelFromDomain(order)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveModel(tx, m, order.IsNew(), "created_by"); err != nil {
			return err
		}
		if err := tx.Where("sales_order_id = ?", m.ID).Delete(&models.SalesOrderItemModel{}).Error; err != nil {
			return err
		}
		for i := range m.Items {
			m.Items[i].ID = 0
			m.Items[i].SalesOrderID = m.ID
		}
		if len(m.Items) == 0 {
			return nil
		}
		return tx.Create(&m.Items).Error
	})
	if err != nil {
		return translateNumberedError(err, "sales order", order.SONumber)
	}
	order.ID = m.ID
	for i := range m.Items {
		order.Items[i].ID = m.Items[i].ID
	}
	return nil
}

// Delete removes a sales order and its items
func (r *GormSalesOrderRepository) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := salesOrderList.deleteScoped(tx, scope, id, &models.SalesOrderModel{}, "sales order"); err != nil {
			return err
		}
		return tx.Where("sales_order_id = ?", id).Delete(&models.SalesOrderItemModel{}).Error
	})
}

var _ trade.SalesOrderRepository = (*GormSalesOrderRepository)(nil)
