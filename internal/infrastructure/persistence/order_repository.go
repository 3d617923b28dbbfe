package persistence

import (
	"context"

	"github.com/erp/bizhub/internal/domain/commerce"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

var orderList = listSpec{
	table:         "orders",
	resource:      identity.ResourceOrders,
	searchColumns: []string{"orders.order_number", "orders.shipping_address"},
	filterColumns: map[string]string{
		"status":         "orders.status",
		"payment_status": "orders.payment_status",
		"payment_method": "orders.payment_method",
		"created_by":     "orders.created_by",
	},
	sortFields:  OrderSortFields,
	defaultSort: "created_at",
	defaultDir:  "DESC",
}

// GormOrderRepository implements commerce.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.OrderModel{})
}

func preloadOrderItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Select("order_items.*, products.name AS product_name, products.company_id AS company_id").
			Joins("LEFT JOIN products ON products.id = order_items.product_id").
			Order("order_items.id ASC")
	})
}

// FindByID finds an order with its items
func (r *GormOrderRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*commerce.Order, error) {
	var m models.OrderModel
	if err := orderList.firstScoped(preloadOrderItems(r.query(ctx)), scope, id, &m); err != nil {
		return nil, translateError(err, "order")
	}
	return m.ToDomain(), nil
}

// FindAll lists orders visible to scope
func (r *GormOrderRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]commerce.Order, int64, error) {
	var rows []models.OrderModel
	build := func() *gorm.DB { return orderList.where(r.query(ctx), scope, filter) }
	total, err := orderList.findPage(build, filter, &rows, preloadOrderItems)
	if err != nil {
		return nil, 0, err
	}
	out := make([]commerce.Order, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// Save writes the header, and the items when the order is new
func (r *GormOrderRepository) Save(ctx context.Context, order *commerce.Order) error {
	m := models.OrderModelFromDomain(order)
	isNew := order.IsNew()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveModel(tx, m, isNew, "created_by"); err != nil {
			return err
		}
		if !isNew || len(m.Items) == 0 {
			return nil
		}
		for i := range m.Items {
			m.Items[i].ID = 0
			m.Items[i].OrderID = m.ID
		}
		return tx.Create(&m.Items).Error
	})
	if err != nil {
		return translateNumberedError(err, "order", order.OrderNumber)
	}
	order.ID = m.ID
	if isNew {
		for i := range m.Items {
			order.Items[i].ID = m.Items[i].ID
		}
	}
	return nil
}

var _ commerce.OrderRepository = (*GormOrderRepository)(nil)
