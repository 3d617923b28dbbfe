package models

import (
	"time"

	"github.com/erp/bizhub/internal/domain/manufacturing"
	"github.com/shopspring/decimal"
)

// WorkCenterModel is the persistence model for the WorkCenter domain entity
type WorkCenterModel struct {
	OwnedModel
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
	Capacity    int    `gorm:"not null;default:1"`
	IsActive    bool   `gorm:"not null"`
	ManagerID   *int64 `gorm:"index"`
}

// TableName returns the table name for GORM
func (WorkCenterModel) TableName() string {
	return "work_centers"
}

// ToDomain converts the persistence model to a domain WorkCenter
func (m *WorkCenterModel) ToDomain() *manufacturing.WorkCenter {
	return &manufacturing.WorkCenter{
		OwnedEntity: m.ToOwned(),
		Name:        m.Name,
		Description: m.Description,
		Capacity:    m.Capacity,
		IsActive:    m.IsActive,
		ManagerID:   m.ManagerID,
	}
}

// FromDomain populates the persistence model from a domain WorkCenter
func (m *WorkCenterModel) FromDomain(wc *manufacturing.WorkCenter) {
	m.FromDomainOwnedEntity(wc.OwnedEntity)
	m.Name = wc.Name
	m.Description = wc.Description
	m.Capacity = wc.Capacity
	m.IsActive = wc.IsActive
	m.ManagerID = wc.ManagerID
}

// ManufacturingOrderModel is the persistence model for the ManufacturingOrder domain entity
type ManufacturingOrderModel struct {
	OwnedModel
	OrderNumber  string                    `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerName string                    `gorm:"type:varchar(200);not null"`
	ProductName  string                    `gorm:"type:varchar(200);not null"`
	Quantity     int                       `gorm:"not null"`
	Status       manufacturing.OrderStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	Priority     manufacturing.Priority    `gorm:"type:varchar(10);not null;default:'medium'"`
	DueDate      time.Time                 `gorm:"not null"`
	WorkCenterID *int64                    `gorm:"index"`
}

// TableName returns the table name for GORM
func (ManufacturingOrderModel) TableName() string {
	return "manufacturing_orders"
}

// ToDomain converts the persistence model to a domain ManufacturingOrder
func (m *ManufacturingOrderModel) ToDomain() *manufacturing.ManufacturingOrder {
	return &manufacturing.ManufacturingOrder{
		OwnedEntity:  m.ToOwned(),
		OrderNumber:  m.OrderNumber,
		CustomerName: m.CustomerName,
		ProductName:  m.ProductName,
		Quantity:     m.Quantity,
		Status:       m.Status,
		Priority:     m.Priority,
		DueDate:      m.DueDate,
		WorkCenterID: m.WorkCenterID,
	}
}

// FromDomain populates the persistence model from a domain ManufacturingOrder
func (m *ManufacturingOrderModel) FromDomain(mo *manufacturing.ManufacturingOrder) {
	m.FromDomainOwnedEntity(mo.OwnedEntity)
	m.OrderNumber = mo.OrderNumber
	m.CustomerName = mo.CustomerName
	m.ProductName = mo.ProductName
	m.Quantity = mo.Quantity
	m.Status = mo.Status
	m.Priority = mo.Priority
	m.DueDate = mo.DueDate
	m.WorkCenterID = mo.WorkCenterID
}

// WorkOrderModel is the persistence model for the WorkOrder domain entity
type WorkOrderModel struct {
	BaseModel
	WorkOrderNumber      string                        `gorm:"type:varchar(50);not null;uniqueIndex"`
	ManufacturingOrderID int64                         `gorm:"not null;index"`
	WorkCenterID         int64                         `gorm:"not null;index"`
	WorkCenterName       string                        `gorm:"->;-:migration"`
	Status               manufacturing.WorkOrderStatus `gorm:"type:varchar(20);not null;default:'draft';index"`
	AssignedTo           *int64                        `gorm:"index"`
	StartDate            *time.Time
	EndDate              *time.Time
	EstimatedHours       decimal.Decimal `gorm:"type:decimal(8,2);not null;default:0"`
	ActualHours          decimal.Decimal `gorm:"type:decimal(8,2);not null;default:0"`
	Notes                string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (WorkOrderModel) TableName() string {
	return "work_orders"
}

// ToDomain converts the persistence model to a domain WorkOrder
func (m *WorkOrderModel) ToDomain() *manufacturing.WorkOrder {
	return &manufacturing.WorkOrder{
		BaseEntity:           m.BaseModel.ToDomain(),
		WorkOrderNumber:      m.WorkOrderNumber,
		ManufacturingOrderID: m.ManufacturingOrderID,
		WorkCenterID:         m.WorkCenterID,
		WorkCenterName:       m.WorkCenterName,
		Status:               m.Status,
		AssignedTo:           m.AssignedTo,
		StartDate:            m.StartDate,
		EndDate:              m.EndDate,
		EstimatedHours:       m.EstimatedHours,
		ActualHours:          m.ActualHours,
		Notes:                m.Notes,
	}
}

// FromDomain populates the persistence model from a domain WorkOrder
func (m *WorkOrderModel) FromDomain(wo *manufacturing.WorkOrder) {
	m.FromDomainBaseEntity(wo.BaseEntity)
	m.WorkOrderNumber = wo.WorkOrderNumber
	m.ManufacturingOrderID = wo.ManufacturingOrderID
	m.WorkCenterID = wo.WorkCenterID
	m.Status = wo.Status
	m.AssignedTo = wo.AssignedTo
	m.StartDate = wo.StartDate
	m.EndDate = wo.EndDate
	m.EstimatedHours = wo.EstimatedHours
	m.ActualHours = wo.ActualHours
	m.Notes = wo.Notes
}

// All lists every model, in dependency order, for AutoMigrate in tests
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&CompanyModel{},
		&ContactModel{},
		&SellerProfileModel{},
		&CategoryModel{},
		&TaxModel{},
		&ProductModel{},
		&ProductImageModel{},
		&PurchaseOrderModel{},
		&PurchaseOrderItemModel{},
		&SalesOrderModel{},
		&SalesOrderItemModel{},
		&VendorBillModel{},
		&VendorBillLineModel{},
		&CustomerInvoiceModel{},
		&CustomerInvoiceLineModel{},
		&StockMovementModel{},
		&CartItemModel{},
		&OrderModel{},
		&OrderItemModel{},
		&SellerProductModel{},
		&WorkCenterModel{},
		&ManufacturingOrderModel{},
		&WorkOrderModel{},
	}
}
