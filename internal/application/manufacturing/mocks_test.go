package manufacturing

import (
	"context"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/manufacturing"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockWorkCenterRepository is a mock implementation of manufacturing.WorkCenterRepository
type MockWorkCenterRepository struct {
	mock.Mock
}

func (m *MockWorkCenterRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*manufacturing.WorkCenter, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*manufacturing.WorkCenter), args.Error(1)
}

func (m *MockWorkCenterRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]manufacturing.WorkCenter, int64, error) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).([]manufacturing.WorkCenter), args.Get(1).(int64), args.Error(2)
}

func (m *MockWorkCenterRepository) Save(ctx context.Context, wc *manufacturing.WorkCenter) error {
	args := m.Called(ctx, wc)
	if wc.ID == 0 {
		wc.ID = 7
	}
	return args.Error(0)
}

func (m *MockWorkCenterRepository) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return m.Called(ctx, scope, id).Error(0)
}

func (m *MockWorkCenterRepository) Efficiency(ctx context.Context, id int64) (*manufacturing.Efficiency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*manufacturing.Efficiency), args.Error(1)
}

// MockManufacturingOrderRepository is a mock implementation of manufacturing.ManufacturingOrderRepository
type MockManufacturingOrderRepository struct {
	mock.Mock
}

func (m *MockManufacturingOrderRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*manufacturing.ManufacturingOrder, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*manufacturing.ManufacturingOrder), args.Error(1)
}

func (m *MockManufacturingOrderRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]manufacturing.ManufacturingOrder, int64, error) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).([]manufacturing.ManufacturingOrder), args.Get(1).(int64), args.Error(2)
}

func (m *MockManufacturingOrderRepository) Save(ctx context.Context, mo *manufacturing.ManufacturingOrder) error {
	args := m.Called(ctx, mo)
	if mo.ID == 0 {
		mo.ID = 51
	}
	return args.Error(0)
}

func (m *MockManufacturingOrderRepository) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return m.Called(ctx, scope, id).Error(0)
}

// MockWorkOrderRepository is a mock implementation of manufacturing.WorkOrderRepository
type MockWorkOrderRepository struct {
	mock.Mock
}

func (m *MockWorkOrderRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*manufacturing.WorkOrder, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*manufacturing.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]manufacturing.WorkOrder, int64, error) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).([]manufacturing.WorkOrder), args.Get(1).(int64), args.Error(2)
}

func (m *MockWorkOrderRepository) FindByManufacturingOrder(ctx context.Context, moID int64) ([]manufacturing.WorkOrder, error) {
	args := m.Called(ctx, moID)
	return args.Get(0).([]manufacturing.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) Save(ctx context.Context, wo *manufacturing.WorkOrder) error {
	args := m.Called(ctx, wo)
	if wo.ID == 0 {
		wo.ID = 52
	}
	return args.Error(0)
}
