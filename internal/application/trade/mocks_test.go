package trade

import (
	"context"

	"github.com/erp/bizhub/internal/domain/catalog"
	"github.com/erp/bizhub/internal/domain/finance"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/inventory"
	"github.com/erp/bizhub/internal/domain/partner"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/domain/trade"
	"github.com/stretchr/testify/mock"
)

// MockPurchaseOrderRepository is a mock implementation of trade.PurchaseOrderRepository
type MockPurchaseOrderRepository struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*trade.PurchaseOrder, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]trade.PurchaseOrder, int64, error) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).([]trade.PurchaseOrder), args.Get(1).(int64), args.Error(2)
}

func (m *MockPurchaseOrderRepository) Save(ctx context.Context, order *trade.PurchaseOrder) error {
	args := m.Called(ctx, order)
	if order.ID == 0 {
		order.ID = 11
	}
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return m.Called(ctx, scope, id).Error(0)
}

// MockSalesOrderRepository is a mock implementation of trade.SalesOrderRepository
type MockSalesOrderRepository struct {
	mock.Mock
}

func (m *MockSalesOrderRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*trade.SalesOrder, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]trade.SalesOrder, int64, error) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).([]trade.SalesOrder), args.Get(1).(int64), args.Error(2)
}

func (m *MockSalesOrderRepository) Save(ctx context.Context, order *trade.SalesOrder) error {
	args := m.Called(ctx, order)
	if order.ID == 0 {
		order.ID = 21
	}
	return args.Error(0)
}

func (m *MockSalesOrderRepository) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return m.Called(ctx, scope, id).Error(0)
}

// MockVendorBillRepository is a mock implementation of finance.VendorBillRepository
type MockVendorBillRepository struct {
	mock.Mock
}

func (m *MockVendorBillRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*finance.VendorBill, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.VendorBill), args.Error(1)
}

func (m *MockVendorBillRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]finance.VendorBill, int64, error) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).([]finance.VendorBill), args.Get(1).(int64), args.Error(2)
}

func (m *MockVendorBillRepository) Save(ctx context.Context, bill *finance.VendorBill) error {
	args := m.Called(ctx, bill)
	if bill.ID == 0 {
		bill.ID = 31
	}
	return args.Error(0)
}

func (m *MockVendorBillRepository) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return m.Called(ctx, scope, id).Error(0)
}

// MockCustomerInvoiceRepository is a mock implementation of finance.CustomerInvoiceRepository
type MockCustomerInvoiceRepository struct {
	mock.Mock
}

func (m *MockCustomerInvoiceRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*finance.CustomerInvoice, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.CustomerInvoice), args.Error(1)
}

func (m *MockCustomerInvoiceRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]finance.CustomerInvoice, int64, error) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).([]finance.CustomerInvoice), args.Get(1).(int64), args.Error(2)
}

func (m *MockCustomerInvoiceRepository) Save(ctx context.Context, invoice *finance.CustomerInvoice) error {
	args := m.Called(ctx, invoice)
	if invoice.ID == 0 {
		invoice.ID = 41
	}
	return args.Error(0)
}

func (m *MockCustomerInvoiceRepository) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return m.Called(ctx, scope, id).Error(0)
}

// MockStockMovementRepository records appended movements
type MockStockMovementRepository struct {
	mock.Mock
	Appended []*inventory.StockMovement
}

func (m *MockStockMovementRepository) Append(ctx context.Context, movement *inventory.StockMovement) error {
	args := m.Called(ctx, movement)
	if args.Error(0) == nil {
		m.Appended = append(m.Appended, movement)
	}
	return args.Error(0)
}

func (m *MockStockMovementRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*inventory.StockMovement, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockMovement), args.Error(1)
}

func (m *MockStockMovementRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]inventory.StockMovement, int64, error) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).([]inventory.StockMovement), args.Get(1).(int64), args.Error(2)
}

func (m *MockStockMovementRepository) Summary(ctx context.Context, scope identity.Scope, companyID int64) ([]inventory.StockSummary, error) {
	args := m.Called(ctx, scope, companyID)
	return args.Get(0).([]inventory.StockSummary), args.Error(1)
}

// MockContactRepository is a mock implementation of partner.ContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*partner.Contact, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Contact), args.Error(1)
}

func (m *MockContactRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]partner.Contact, int64, error) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).([]partner.Contact), args.Get(1).(int64), args.Error(2)
}

func (m *MockContactRepository) Save(ctx context.Context, contact *partner.Contact) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *MockContactRepository) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return m.Called(ctx, scope, id).Error(0)
}

// MockCompanyRepository is a mock implementation of partner.CompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*partner.Company, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]partner.Company, int64, error) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).([]partner.Company), args.Get(1).(int64), args.Error(2)
}

func (m *MockCompanyRepository) ExistsByTaxID(ctx context.Context, taxID string, excludeID int64) (bool, error) {
	args := m.Called(ctx, taxID, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCompanyRepository) Save(ctx context.Context, company *partner.Company) error {
	return m.Called(ctx, company).Error(0)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return m.Called(ctx, scope, id).Error(0)
}

// MockProductRepository stubs the scoped product lookup used to check order lines
type MockProductRepository struct {
	mock.Mock
	catalog.ProductRepository
}

func (m *MockProductRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*catalog.Product, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

// MockEventPublisher captures published events
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}
