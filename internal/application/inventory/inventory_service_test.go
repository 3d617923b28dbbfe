package inventory

import (
	"context"
	"testing"

	"github.com/erp/bizhub/internal/application/common"
	"github.com/erp/bizhub/internal/domain/catalog"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/inventory"
	"github.com/erp/bizhub/internal/domain/partner"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockStockMovementRepository struct {
	mock.Mock
}

func (m *MockStockMovementRepository) Append(ctx context.Context, movement *inventory.StockMovement) error {
	args := m.Called(ctx, movement)
	if movement.ID == 0 {
		movement.ID = 70
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.StockSummary), args.Error(1)
}

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

type MockCompanyRepository struct {
	mock.Mock
	partner.CompanyRepository
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*partner.Company, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Company), args.Error(1)
}

var keeper = identity.NewScope(4, identity.RoleInventoryManager)

type inventoryFixture struct {
	movements *MockStockMovementRepository
	products  *MockProductRepository
	companies *MockCompanyRepository
	tx        *common.NoOpTransactionScope
	svc       *InventoryService
}

func newInventoryFixture() *inventoryFixture {
	f := &inventoryFixture{
		movements: new(MockStockMovementRepository),
		products:  new(MockProductRepository),
		companies: new(MockCompanyRepository),
	}
	f.tx = common.NewNoOpTransactionScope(common.Repositories{StockMovementRepo: f.movements})
	f.svc = NewInventoryService(f.tx, f.movements, f.products, f.companies, zap.NewNop())
	return f
}

func TestInventoryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("negative adjustment is recorded", func(t *testing.T) {
		f := newInventoryFixture()
		f.companies.On("FindByID", ctx, keeper, int64(1)).Return(&partner.Company{}, nil)
		f.products.On("FindByID", ctx, keeper, int64(9)).Return(&catalog.Product{CompanyID: 1, Name: "Bolt"}, nil)
		f.movements.On("Append", ctx, mock.AnythingOfType("*inventory.StockMovement")).Return(nil)

		resp, err := f.svc.Create(ctx, keeper, CreateMovementRequest{
			CompanyID:    1,
			ProductID:    9,
			MovementType: "adjustment",
			Quantity:     decimal.NewFromInt(-3),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(70), resp.ID)
		assert.Equal(t, "manual", resp.ReferenceType)
		assert.Equal(t, "Bolt", resp.ProductName)
		assert.Equal(t, 1, f.tx.Calls)
	})

	t.Run("zero adjustment is rejected", func(t *testing.T) {
		f := newInventoryFixture()

		_, err := f.svc.Create(ctx, keeper, CreateMovementRequest{
			CompanyID:    1,
			ProductID:    9,
			MovementType: "adjustment",
			Quantity:     decimal.Zero,
		})

		require.Error(t, err)
		assert.Zero(t, f.tx.Calls)
	})

	t.Run("outbound quantity must be positive", func(t *testing.T) {
		f := newInventoryFixture()

		_, err := f.svc.Create(ctx, keeper, CreateMovementRequest{
			CompanyID:    1,
			ProductID:    9,
			MovementType: "out",
			Quantity:     decimal.NewFromInt(-1),
		})

		require.Error(t, err)
	})

	t.Run("product of another company", func(t *testing.T) {
		f := newInventoryFixture()
		f.companies.On("FindByID", ctx, keeper, int64(1)).Return(&partner.Company{}, nil)
		f.products.On("FindByID", ctx, keeper, int64(9)).Return(&catalog.Product{CompanyID: 2}, nil)

		_, err := f.svc.Create(ctx, keeper, CreateMovementRequest{
			CompanyID:    1,
			ProductID:    9,
			MovementType: "in",
			Quantity:     decimal.NewFromInt(5),
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
		f.movements.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})
}

func TestInventoryService_Summary(t *testing.T) {
	ctx := context.Background()
	f := newInventoryFixture()
	f.movements.On("Summary", ctx, keeper, int64(0)).Return(nil, nil)
	f.companies.On("FindByID", ctx, keeper, int64(5)).Return(nil, shared.NewNotFoundError("company", 5))

	out, err := f.svc.Summary(ctx, keeper, 0)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	_, err = f.svc.Summary(ctx, keeper, 5)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
