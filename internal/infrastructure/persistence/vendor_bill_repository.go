package persistence

import (
	"context"

	"github.com/erp/bizhub/internal/domain/finance"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

var vendorBillList = listSpec{
	table:         "vendor_bills",
	resource:      identity.ResourceVendorBills,
	searchColumns: []string{"vendor_bills.bill_number", "contacts.name", "vendor_bills.notes"},
	filterColumns: map[string]string{
		"company_id":        "vendor_bills.company_id",
		"supplier_id":       "vendor_bills.supplier_id",
		"purchase_order_id": "vendor_bills.purchase_order_id",
		"status":            "vendor_bills.status",
	},
	sortFields:  VendorBillSortFields,
	defaultSort: "created_at",
	defaultDir:  "DESC",
}

// GormVendorBillRepository implements finance.VendorBillRepository using GORM
type GormVendorBillRepository struct {
	db *gorm.DB
}

// NewGormVendorBillRepository creates a new GormVendorBillRepository
func NewGormVendorBillRepository(db *gorm.DB) *GormVendorBillRepository {
	return &GormVendorBillRepository{db: db}
}

func (r *GormVendorBillRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.VendorBillModel{}).
		Select("vendor_bills.*, contacts.name AS supplier_name").
		Joins("LEFT JOIN contacts ON contacts.id = vendor_bills.supplier_id")
}

func preloadVendorBillLines(db *gorm.DB) *gorm.DB {
	return db.Preload("Lines", withLineProducts("vendor_bill_lines"))
}

// FindByID finds a bill with its lines
func (r *GormVendorBillRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*finance.VendorBill, error) {
	var m models.VendorBillModel
	if err := vendorBillList.firstScoped(preloadVendorBillLines(r.query(ctx)), scope, id, &m); err != nil {
		return nil, translateError(err, "vendor bill")
	}
	return m.ToDomain(), nil
}

// FindAll lists bills visible to scope
func (r *GormVendorBillRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]finance.VendorBill, int64, error) {
	var rows []models.VendorBillModel
	build := func() *gorm.DB { return vendorBillList.where(r.query(ctx), scope, filter) }
	total, err := vendorBillList.findPage(build, filter, &rows, preloadVendorBillLines)
	if err != nil {
		return nil, 0, err
	}
	out := make([]finance.VendorBill, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// Save writes the header. Lines are copied from the source document once, on insert.
func (r *GormVendorBillRepository) Save(ctx context.Context, bill *finance.VendorBill) error {
	m := models.VendorBillModelFromDomain(bill)
	isNew := bill.IsNew()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveModel(tx, m, isNew, "created_by"); err != nil {
			return err
		}
		if !isNew || len(m.Lines) == 0 {
			return nil
		}
		for i := range m.Lines {
			m.Lines[i].ID = 0
			m.Lines[i].VendorBillID = m.ID
		}
		return tx.Create(&m.Lines).Error
	})
	if err != nil {
		return translateNumberedError(err, "vendor bill", bill.BillNumber)
	}
	bill.ID = m.ID
	if isNew {
		for i := range m.Lines {
			bill.Lines[i].ID = m.Lines[i].ID
		}
	}
	return nil
}

// Delete removes a bill and its lines
func (r *GormVendorBillRepository) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := vendorBillList.deleteScoped(tx, scope, id, &models.VendorBillModel{}, "vendor bill"); err != nil {
			return err
		}
		return tx.Where("vendor_bill_id = ?", id).Delete(&models.VendorBillLineModel{}).Error
	})
}

var _ finance.VendorBillRepository = (*GormVendorBillRepository)(nil)
