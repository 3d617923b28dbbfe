package persistence

import (
	"context"
	"time"

	"github.com/erp/bizhub/internal/domain/bulk"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
	"gorm.io/gorm"
)

type childTable struct {
	table  string
	column string
}

type bulkTable struct {
	table    string
	children []childTable
}

var bulkTables = map[string]bulkTable{
	"users":                {table: "users", children: []childTable{{"cart_items", "user_id"}}},
	"companies":            {table: "companies"},
	"contacts":             {table: "contacts"},
	"categories":           {table: "categories"},
	"taxes":                {table: "taxes"},
	"products":             {table: "products", children: []childTable{{"product_images", "product_id"}, {"cart_items", "product_id"}}},
	"seller_profiles":      {table: "seller_profiles"},
	"seller_products":      {table: "seller_products"},
	"carts":                {table: "cart_items"},
	"orders":               {table: "orders", children: []childTable{{"order_items", "order_id"}}},
	"purchase_orders":      {table: "purchase_orders", children: []childTable{{"purchase_order_items", "purchase_order_id"}}},
	"sales_orders":         {table: "sales_orders", children: []childTable{{"sales_order_items", "sales_order_id"}}},
	"vendor_bills":         {table: "vendor_bills", children: []childTable{{"vendor_bill_lines", "vendor_bill_id"}}},
	"customer_invoices":    {table: "customer_invoices", children: []childTable{{"customer_invoice_lines", "customer_invoice_id"}}},
	"work_centers":         {table: "work_centers"},
	"manufacturing_orders": {table: "manufacturing_orders", children: []childTable{{"work_orders", "manufacturing_order_id"}}},
	"work_orders":          {table: "work_orders"},
}

// GormBulkRepository implements bulk.Repository using GORM
type GormBulkRepository struct {
	db *gorm.DB
}

// NewGormBulkRepository creates a new GormBulkRepository
func NewGormBulkRepository(db *gorm.DB) *GormBulkRepository {
	return &GormBulkRepository{db: db}
}

func (r *GormBulkRepository) table(t bulk.Target) (bulkTable, error) {
	bt, ok := bulkTables[t.Name]
	if !ok || t.ReadOnly {
		return bulkTable{}, shared.NewValidationError("Invalid model name: %s", t.Name)
	}
	return bt, nil
}

// visibleIDs narrows ids to the rows of the target scope can see
func (r *GormBulkRepository) visibleIDs(tx *gorm.DB, scope identity.Scope, t bulk.Target, bt bulkTable, ids []int64) ([]int64, error) {
	q := tx.Table(bt.table)
	if !t.AdminOnly {
		spec := listSpec{table: bt.table, resource: t.Resource}
		q = spec.where(q, scope, shared.Filter{})
	}
	var visible []int64
	err := q.Where(bt.table+".id IN ?", ids).Pluck(bt.table+".id", &visible).Error
	return visible, err
}

// DeleteByIDs removes the visible rows and their dependent rows
func (r *GormBulkRepository) DeleteByIDs(ctx context.Context, scope identity.Scope, t bulk.Target, ids []int64) (int64, error) {
	bt, err := r.table(t)
	if err != nil {
		return 0, err
	}
	var deleted int64
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		visible, err := r.visibleIDs(tx, scope, t, bt, ids)
		if err != nil || len(visible) == 0 {
			return err
		}
		for _, child := range bt.children {
			if err := tx.Exec("DELETE FROM "+child.table+" WHERE "+child.column+" IN ?", visible).Error; err != nil {
				return err
			}
		}
		result := tx.Exec("DELETE FROM "+bt.table+" WHERE id IN ?", visible)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, translateError(err, t.Name)
	}
	return deleted, nil
}

// UpdateByIDs sets the whitelisted columns on the visible rows
func (r *GormBulkRepository) UpdateByIDs(ctx context.Context, scope identity.Scope, t bulk.Target, ids []int64, data map[string]interface{}) (int64, error) {
	bt, err := r.table(t)
	if err != nil {
		return 0, err
	}
	if err := t.CheckUpdate(data); err != nil {
		return 0, err
	}
	values := make(map[string]interface{}, len(data)+1)
	for k, v := range data {
		values[k] = v
	}
	values["updated_at"] = time.Now()

	var updated int64
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		visible, err := r.visibleIDs(tx, scope, t, bt, ids)
		if err != nil || len(visible) == 0 {
			return err
		}
		result := tx.Table(bt.table).Where("id IN ?", visible).Updates(values)
		if result.Error != nil {
			return result.Error
		}
		updated = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, translateError(err, t.Name)
	}
	return updated, nil
}

var _ bulk.Repository = (*GormBulkRepository)(nil)
