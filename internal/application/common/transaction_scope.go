package common

import (
	"context"

	"github.com/erp/bizhub/internal/domain/catalog"
	"github.com/erp/bizhub/internal/domain/commerce"
	"github.com/erp/bizhub/internal/domain/finance"
	"github.com/erp/bizhub/internal/domain/inventory"
	"github.com/erp/bizhub/internal/domain/manufacturing"
	"github.com/erp/bizhub/internal/domain/trade"
)

// TransactionScope runs a function against repositories that share one database transaction.
// If fn returns an error the transaction is rolled back, otherwise it is committed.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories gives access to the write-side repositories bound to the
// current transaction. Stock movements written through StockMovements also update
// the product counter inside the same transaction.
type TransactionalRepositories interface {
	Products() catalog.ProductRepository
	PurchaseOrders() trade.PurchaseOrderRepository
	SalesOrders() trade.SalesOrderRepository
	VendorBills() finance.VendorBillRepository
	CustomerInvoices() finance.CustomerInvoiceRepository
	StockMovements() inventory.StockMovementRepository
	Carts() commerce.CartRepository
	Orders() commerce.OrderRepository
	ManufacturingOrders() manufacturing.ManufacturingOrderRepository
	WorkOrders() manufacturing.WorkOrderRepository
}

// Repositories is a plain set of repositories. Unset fields return nil.
type Repositories struct {
	ProductRepo            catalog.ProductRepository
	PurchaseOrderRepo      trade.PurchaseOrderRepository
	SalesOrderRepo         trade.SalesOrderRepository
	VendorBillRepo         finance.VendorBillRepository
	CustomerInvoiceRepo    finance.CustomerInvoiceRepository
	StockMovementRepo      inventory.StockMovementRepository
	CartRepo               commerce.CartRepository
	OrderRepo              commerce.OrderRepository
	ManufacturingOrderRepo manufacturing.ManufacturingOrderRepository
	WorkOrderRepo          manufacturing.WorkOrderRepository
}

func (r *Repositories) Products() catalog.ProductRepository                 { return r.ProductRepo }
func (r *Repositories) PurchaseOrders() trade.PurchaseOrderRepository       { return r.PurchaseOrderRepo }
func (r *Repositories) SalesOrders() trade.SalesOrderRepository             { return r.SalesOrderRepo }
func (r *Repositories) VendorBills() finance.VendorBillRepository           { return r.VendorBillRepo }
func (r *Repositories) CustomerInvoices() finance.CustomerInvoiceRepository { return r.CustomerInvoiceRepo }
func (r *Repositories) StockMovements() inventory.StockMovementRepository   { return r.StockMovementRepo }
func (r *Repositories) Carts() commerce.CartRepository                      { return r.CartRepo }
func (r *Repositories) Orders() commerce.OrderRepository                    { return r.OrderRepo }
func (r *Repositories) ManufacturingOrders() manufacturing.ManufacturingOrderRepository {
	return r.ManufacturingOrderRepo
}
func (r *Repositories) WorkOrders() manufacturing.WorkOrderRepository { return r.WorkOrderRepo }

// NoOpTransactionScope runs fn against fixed repositories without a transaction.
// It is used by service tests.
type NoOpTransactionScope struct {
	repos *Repositories
	// Calls counts Execute invocations
	Calls int
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over repos
func NewNoOpTransactionScope(repos Repositories) *NoOpTransactionScope {
	return &NoOpTransactionScope{repos: &repos}
}

// Execute calls fn directly
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	s.Calls++
	return fn(s.repos)
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*Repositories)(nil)
