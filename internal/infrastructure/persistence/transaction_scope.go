package persistence

import (
	"context"

	"github.com/erp/bizhub/internal/application/common"
	"github.com/erp/bizhub/internal/domain/catalog"
	"github.com/erp/bizhub/internal/domain/commerce"
	"github.com/erp/bizhub/internal/domain/finance"
	"github.com/erp/bizhub/internal/domain/inventory"
	"github.com/erp/bizhub/internal/domain/manufacturing"
	"github.com/erp/bizhub/internal/domain/trade"
	"gorm.io/gorm"
)

// GormTransactionScope implements common.TransactionScope using GORM transactions
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn inside one database transaction. A non-nil error from fn rolls back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos common.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories builds repositories bound to the open transaction
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormTransactionalRepositories) PurchaseOrders() trade.PurchaseOrderRepository {
	return NewGormPurchaseOrderRepository(r.tx)
}

func (r *gormTransactionalRepositories) SalesOrders() trade.SalesOrderRepository {
	return NewGormSalesOrderRepository(r.tx)
}

func (r *gormTransactionalRepositories) VendorBills() finance.VendorBillRepository {
	return NewGormVendorBillRepository(r.tx)
}

func (r *gormTransactionalRepositories) CustomerInvoices() finance.CustomerInvoiceRepository {
	return NewGormCustomerInvoiceRepository(r.tx)
}

func (r *gormTransactionalRepositories) StockMovements() inventory.StockMovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

func (r *gormTransactionalRepositories) Carts() commerce.CartRepository {
	return NewGormCartRepository(r.tx)
}

func (r *gormTransactionalRepositories) Orders() commerce.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

func (r *gormTransactionalRepositories) ManufacturingOrders() manufacturing.ManufacturingOrderRepository {
	return NewGormManufacturingOrderRepository(r.tx)
}

func (r *gormTransactionalRepositories) WorkOrders() manufacturing.WorkOrderRepository {
	return NewGormWorkOrderRepository(r.tx)
}

var (
	_ common.TransactionScope          = (*GormTransactionScope)(nil)
	_ common.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
)
