package persistence

import (
	"context"
	"database/sql"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/manufacturing"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

var workCenterList = listSpec{
	table:         "work_centers",
	resource:      identity.ResourceWorkCenters,
	searchColumns: []string{"work_centers.name", "work_centers.description"},
	filterColumns: map[string]string{
		"is_active":  "work_centers.is_active",
		"manager_id": "work_centers.manager_id",
	},
	sortFields:  WorkCenterSortFields,
	defaultSort: "name",
	defaultDir:  "ASC",
}

var manufacturingOrderList = listSpec{
	table:         "manufacturing_orders",
	resource:      identity.ResourceManufacturingOrders,
	searchColumns: []string{"manufacturing_orders.order_number", "manufacturing_orders.customer_name", "manufacturing_orders.product_name"},
	filterColumns: map[string]string{
		"status":         "manufacturing_orders.status",
		"priority":       "manufacturing_orders.priority",
		"work_center_id": "manufacturing_orders.work_center_id",
	},
	sortFields:  ManufacturingOrderSortFields,
	defaultSort: "created_at",
	defaultDir:  "DESC",
}

var workOrderList = listSpec{
	table:         "work_orders",
	resource:      identity.ResourceWorkOrders,
	searchColumns: []string{"work_orders.work_order_number", "work_orders.notes"},
	filterColumns: map[string]string{
		"status":                 "work_orders.status",
		"work_center_id":         "work_orders.work_center_id",
		"manufacturing_order_id": "work_orders.manufacturing_order_id",
		"assigned_to":            "work_orders.assigned_to",
	},
	sortFields:  WorkOrderSortFields,
	defaultSort: "created_at",
	defaultDir:  "DESC",
}

// GormWorkCenterRepository implements manufacturing.WorkCenterRepository using GORM
type GormWorkCenterRepository struct {
	db *gorm.DB
}

// NewGormWorkCenterRepository creates a new GormWorkCenterRepository
func NewGormWorkCenterRepository(db *gorm.DB) *GormWorkCenterRepository {
	return &GormWorkCenterRepository{db: db}
}

func (r *GormWorkCenterRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.WorkCenterModel{})
}

// FindByID finds a work center visible to scope
func (r *GormWorkCenterRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*manufacturing.WorkCenter, error) {
	var m models.WorkCenterModel
	if err := workCenterList.firstScoped(r.query(ctx), scope, id, &m); err != nil {
		return nil, translateError(err, "work center")
	}
	return m.ToDomain(), nil
}

// FindAll lists work centers visible to scope
func (r *GormWorkCenterRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]manufacturing.WorkCenter, int64, error) {
	var rows []models.WorkCenterModel
	build := func() *gorm.DB { return workCenterList.where(r.query(ctx), scope, filter) }
	total, err := workCenterList.findPage(build, filter, &rows, nil)
	if err != nil {
		return nil, 0, err
	}
	out := make([]manufacturing.WorkCenter, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// Save creates or updates a work center
func (r *GormWorkCenterRepository) Save(ctx context.Context, wc *manufacturing.WorkCenter) error {
	m := &models.WorkCenterModel{}
	m.FromDomain(wc)
	if err := saveModel(r.db.WithContext(ctx), m, wc.IsNew(), "created_by"); err != nil {
		return translateError(err, "work center")
	}
	wc.ID = m.ID
	return nil
}

// Delete removes a work center visible to scope
func (r *GormWorkCenterRepository) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return workCenterList.deleteScoped(r.db.WithContext(ctx), scope, id, &models.WorkCenterModel{}, "work center")
}

// Efficiency counts the work orders run at a work center
func (r *GormWorkCenterRepository) Efficiency(ctx context.Context, id int64) (*manufacturing.Efficiency, error) {
	var wc models.WorkCenterModel
	if err := r.db.WithContext(ctx).First(&wc, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "work center")
	}
	var row struct {
		Total     int64
		Completed int64
		AvgHours  sql.NullFloat64
	}
	err := r.db.WithContext(ctx).
		Model(&models.WorkOrderModel{}).
		Select(`COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS completed,
			AVG(CASE WHEN status = ? THEN actual_hours END) AS avg_hours`,
			manufacturing.WorkOrderStatusCompleted, manufacturing.WorkOrderStatusCompleted).
		Where("work_center_id = ?", id).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &manufacturing.Efficiency{
		WorkCenterID:          wc.ID,
		WorkCenterName:        wc.Name,
		TotalWorkOrders:       row.Total,
		CompletedWorkOrders:   row.Completed,
		EfficiencyPercentage:  manufacturing.Percentage(row.Completed, row.Total),
		AverageCompletionTime: row.AvgHours.Float64,
	}, nil
}

var _ manufacturing.WorkCenterRepository = (*GormWorkCenterRepository)(nil)

// GormManufacturingOrderRepository implements manufacturing.ManufacturingOrderRepository using GORM
type GormManufacturingOrderRepository struct {
	db *gorm.DB
}

// NewGormManufacturingOrderRepository creates a new GormManufacturingOrderRepository
func NewGormManufacturingOrderRepository(db *gorm.DB) *GormManufacturingOrderRepository {
	return &GormManufacturingOrderRepository{db: db}
}

func (r *GormManufacturingOrderRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.ManufacturingOrderModel{})
}

// FindByID finds a manufacturing order visible to scope
func (r *GormManufacturingOrderRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*manufacturing.ManufacturingOrder, error) {
	var m models.ManufacturingOrderModel
	if err := manufacturingOrderList.firstScoped(r.query(ctx), scope, id, &m); err != nil {
		return nil, translateError(err, "manufacturing order")
	}
	return m.ToDomain(), nil
}

// FindAll lists manufacturing orders visible to scope
func (r *GormManufacturingOrderRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]manufacturing.ManufacturingOrder, int64, error) {
	var rows []models.ManufacturingOrderModel
	build := func() *gorm.DB { return manufacturingOrderList.where(r.query(ctx), scope, filter) }
	total, err := manufacturingOrderList.findPage(build, filter, &rows, nil)
	if err != nil {
		return nil, 0, err
	}
	out := make([]manufacturing.ManufacturingOrder, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// Save creates or updates a manufacturing order
func (r *GormManufacturingOrderRepository) Save(ctx context.Context, mo *manufacturing.ManufacturingOrder) error {
	m := &models.ManufacturingOrderModel{}
	m.FromDomain(mo)
	if err := saveModel(r.db.WithContext(ctx), m, mo.IsNew(), "created_by"); err != nil {
		return translateNumberedError(err, "manufacturing order", mo.OrderNumber)
	}
	mo.ID = m.ID
	return nil
}

// Delete removes a manufacturing order and its work orders
func (r *GormManufacturingOrderRepository) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// the scope predicate may look at work orders, so check visibility before removing them
		var visible int64
		if err := manufacturingOrderList.where(tx.Model(&models.ManufacturingOrderModel{}), scope, shared.Filter{}).
			Where("manufacturing_orders.id = ?", id).
			Count(&visible).Error; err != nil {
			return err
		}
		if visible == 0 {
			return shared.NewDomainError("NOT_FOUND", "manufacturing order not found")
		}
		if err := tx.Where("manufacturing_order_id = ?", id).Delete(&models.WorkOrderModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ManufacturingOrderModel{}, "id = ?", id).Error
	})
}

var _ manufacturing.ManufacturingOrderRepository = (*GormManufacturingOrderRepository)(nil)

// GormWorkOrderRepository implements manufacturing.WorkOrderRepository using GORM
type GormWorkOrderRepository struct {
	db *gorm.DB
}

// NewGormWorkOrderRepository creates a new GormWorkOrderRepository
func NewGormWorkOrderRepository(db *gorm.DB) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{db: db}
}

func (r *GormWorkOrderRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.WorkOrderModel{}).
		Select("work_orders.*, work_centers.name AS work_center_name").
		Joins("LEFT JOIN work_centers ON work_centers.id = work_orders.work_center_id")
}

// FindByID finds a work order visible to scope
func (r *GormWorkOrderRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*manufacturing.WorkOrder, error) {
	var m models.WorkOrderModel
	if err := workOrderList.firstScoped(r.query(ctx), scope, id, &m); err != nil {
		return nil, translateError(err, "work order")
	}
	return m.ToDomain(), nil
}

// FindAll lists work orders visible to scope
func (r *GormWorkOrderRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]manufacturing.WorkOrder, int64, error) {
	var rows []models.WorkOrderModel
	build := func() *gorm.DB { return workOrderList.where(r.query(ctx), scope, filter) }
	total, err := workOrderList.findPage(build, filter, &rows, nil)
	if err != nil {
		return nil, 0, err
	}
	out := make([]manufacturing.WorkOrder, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// FindByManufacturingOrder lists every work order of a manufacturing order
func (r *GormWorkOrderRepository) FindByManufacturingOrder(ctx context.Context, moID int64) ([]manufacturing.WorkOrder, error) {
	var rows []models.WorkOrderModel
	err := r.query(ctx).
		Where("work_orders.manufacturing_order_id = ?", moID).
		Order("work_orders.id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]manufacturing.WorkOrder, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Save creates or updates a work order
func (r *GormWorkOrderRepository) Save(ctx context.Context, wo *manufacturing.WorkOrder) error {
	m := &models.WorkOrderModel{}
	m.FromDomain(wo)
	if err := saveModel(r.db.WithContext(ctx), m, wo.IsNew(), "manufacturing_order_id"); err != nil {
		return translateNumberedError(err, "work order", wo.WorkOrderNumber)
	}
	wo.ID = m.ID
	return nil
}

var _ manufacturing.WorkOrderRepository = (*GormWorkOrderRepository)(nil)
