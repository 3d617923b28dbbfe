package persistence

import (
	"context"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/domain/trade"
	"github.com/erp/bizhub/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

var purchaseOrderList = listSpec{
	table:         "purchase_orders",
	resource:      identity.ResourcePurchaseOrders,
	searchColumns: []string{"purchase_orders.po_number", "contacts.name", "purchase_orders.notes"},
	filterColumns: map[string]string{
		"company_id":  "purchase_orders.company_id",
		"supplier_id": "purchase_orders.supplier_id",
		"status":      "purchase_orders.status",
	},
	sortFields:  PurchaseOrderSortFields,
	defaultSort: "created_at",
	defaultDir:  "DESC",
}

// withLineProducts resolves product names on a line-item table during preload
func withLineProducts(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Select(table + ".*, products.name AS product_name").
			Joins("LEFT JOIN products ON products.id = " + table + ".product_id").
			Order(table + ".id ASC")
	}
}

// GormPurchaseOrderRepository implements trade.PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

func (r *GormPurchaseOrderRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.PurchaseOrderModel{}).
		Select("purchase_orders.*, contacts.name AS supplier_name").
		Joins("LEFT JOIN contacts ON contacts.id = purchase_orders.supplier_id")
}

func preloadPurchaseOrderItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", withLineProducts("purchase_order_items"))
}

// FindByID finds a purchase order with its items
func (r *GormPurchaseOrderRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*trade.PurchaseOrder, error) {
	var m models.PurchaseOrderModel
	if err := purchaseOrderList.firstScoped(preloadPurchaseOrderItems(r.query(ctx)), scope, id, &m); err != nil {
		return nil, translateError(err, "purchase order")
	}
	return m.ToDomain(), nil
}

// FindAll lists purchase orders visible to scope, with items
func (r *GormPurchaseOrderRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]trade.PurchaseOrder, int64, error) {
	var rows []models.PurchaseOrderModel
	build := func() *gorm.DB { return purchaseOrderList.where(r.query(ctx), scope, filter) }
	total, err := purchaseOrderList.findPage(build, filter, &rows, preloadPurchaseOrderItems)
	if err != nil {
		return nil, 0, err
	}
	out := make([]trade.PurchaseOrder, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// Save writes the header and replaces the items
func (r *GormPurchaseOrderRepository) Save(ctx context.Context, order *trade.PurchaseOrder) error {
	m := models.PurchaseOrderModelFromDomain(order)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveModel(tx, m, order.IsNew(), "created_by"); err != nil {
			return err
		}
		if err := tx.Where("purchase_order_id = ?", m.ID).Delete(&models.PurchaseOrderItemModel{}).Error; err != nil {
			return err
		}
		for i := range m.Items {
			m.Items[i].ID = 0
			m.Items[i].PurchaseOrderID = m.ID
		}
		if len(m.Items) == 0 {
			return nil
		}
		return tx.Create(&m.Items).Error
	})
	if err != nil {
		return translateNumberedError(err, "purchase order", order.PONumber)
	}
	order.ID = m.ID
	for i := range m.Items {
		order.Items[i].ID = m.Items[i].ID
	}
	return nil
}

// Delete removes a purchase order and its items
func (r *GormPurchaseOrderRepository) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := purchaseOrderList.deleteScoped(tx, scope, id, &models.PurchaseOrderModel{}, "purchase order"); err != nil {
			return err
		}
		return tx.Where("purchase_order_id = ?", id).Delete(&models.PurchaseOrderItemModel{}).Error
	})
}

var _ trade.PurchaseOrderRepository = (*GormPurchaseOrderRepository)(nil)
