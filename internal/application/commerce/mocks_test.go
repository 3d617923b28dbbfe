package commerce

import (
	"context"

	"github.com/erp/bizhub/internal/domain/catalog"
	"github.com/erp/bizhub/internal/domain/commerce"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/inventory"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockCartRepository is a mock implementation of commerce.CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) FindByUser(ctx context.Context, userID int64) ([]commerce.CartItem, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]commerce.CartItem), args.Error(1)
}

func (m *MockCartRepository) FindByID(ctx context.Context, userID, id int64) (*commerce.CartItem, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commerce.CartItem), args.Error(1)
}

func (m *MockCartRepository) FindByProduct(ctx context.Context, userID, productID int64) (*commerce.CartItem, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commerce.CartItem), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, item *commerce.CartItem) error {
	args := m.Called(ctx, item)
	if item.ID == 0 {
		item.ID = 61
	}
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockCartRepository) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockOrderRepository is a mock implementation of commerce.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*commerce.Order, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commerce.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]commerce.Order, int64, error) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).([]commerce.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *commerce.Order) error {
	args := m.Called(ctx, order)
	if order.ID == 0 {
		order.ID = 81
	}
	return args.Error(0)
}

// MockSellerProductRepository is a mock implementation of commerce.SellerProductRepository
type MockSellerProductRepository struct {
	mock.Mock
}

func (m *MockSellerProductRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*commerce.SellerProduct, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commerce.SellerProduct), args.Error(1)
}

func (m *MockSellerProductRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]commerce.SellerProduct, int64, error) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).([]commerce.SellerProduct), args.Get(1).(int64), args.Error(2)
}

func (m *MockSellerProductRepository) Save(ctx context.Context, sp *commerce.SellerProduct) error {
	args := m.Called(ctx, sp)
	if sp.ID == 0 {
		sp.ID = 91
	}
	return args.Error(0)
}

func (m *MockSellerProductRepository) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return m.Called(ctx, scope, id).Error(0)
}

// MockProductRepository stubs the unscoped product lookup; other methods are not used here
type MockProductRepository struct {
	mock.Mock
	catalog.ProductRepository
}

func (m *MockProductRepository) FindByIDUnscoped(ctx context.Context, id int64) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

// MockStockMovementRepository records appended movements
type MockStockMovementRepository struct {
	mock.Mock
	inventory.StockMovementRepository
	Appended []*inventory.StockMovement
}

func (m *MockStockMovementRepository) Append(ctx context.Context, movement *inventory.StockMovement) error {
	args := m.Called(ctx, movement)
	if args.Error(0) == nil {
		m.Appended = append(m.Appended, movement)
	}
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of shared.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	return m.Called(ctx, events).Error(0)
}
