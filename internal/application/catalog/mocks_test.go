package catalog

import (
	"context"
	"time"

	"github.com/erp/bizhub/internal/domain/catalog"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/partner"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*catalog.Product, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDUnscoped(ctx context.Context, id int64) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]catalog.Product, int64, error) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).([]catalog.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) ExistsBySKU(ctx context.Context, sku string, excludeID int64) (bool, error) {
	args := m.Called(ctx, sku, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	if product.ID == 0 {
		product.ID = 500
	}
	return args.Error(0)
}

func (m *MockProductRepository) AdjustStock(ctx context.Context, productID int64, delta decimal.Decimal) error {
	args := m.Called(ctx, productID, delta)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	args := m.Called(ctx, scope, id)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of catalog.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id int64) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Category), args.Get(1).(int64), args.Error(2)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	if category.ID == 0 {
		category.ID = 40
	}
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTaxRepository is a mock implementation of catalog.TaxRepository
type MockTaxRepository struct {
	mock.Mock
}

func (m *MockTaxRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*catalog.Tax, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Tax), args.Error(1)
}

func (m *MockTaxRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]catalog.Tax, int64, error) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).([]catalog.Tax), args.Get(1).(int64), args.Error(2)
}

func (m *MockTaxRepository) Save(ctx context.Context, tax *catalog.Tax) error {
	args := m.Called(ctx, tax)
	return args.Error(0)
}

func (m *MockTaxRepository) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	args := m.Called(ctx, scope, id)
	return args.Error(0)
}

// MockProductImageRepository is a mock implementation of catalog.ProductImageRepository
type MockProductImageRepository struct {
	mock.Mock
}

func (m *MockProductImageRepository) FindByProduct(ctx context.Context, productID int64) ([]catalog.ProductImage, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]catalog.ProductImage), args.Error(1)
}

func (m *MockProductImageRepository) Save(ctx context.Context, image *catalog.ProductImage) error {
	args := m.Called(ctx, image)
	if image.ID == 0 {
		image.ID = 9
	}
	return args.Error(0)
}

func (m *MockProductImageRepository) ClearPrimary(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
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

// MockObjectStorage is a mock implementation of ObjectStorage
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) GenerateUploadURL(ctx context.Context, storageKey, contentType string) (string, time.Time, error) {
	args := m.Called(ctx, storageKey, contentType)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorage) GenerateDownloadURL(ctx context.Context, storageKey string) (string, time.Time, error) {
	args := m.Called(ctx, storageKey)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
