package persistence

import (
	"context"

	"github.com/erp/bizhub/internal/domain/finance"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

var customerInvoiceList = listSpec{
	table:         "customer_invoices",
	resource:      identity.ResourceCustomerInvoices,
	searchColumns: []string{"customer_invoices.invoice_number", "contacts.name", "customer_invoices.notes"},
	filterColumns: map[string]string{
		"company_id":        "customer_invoices.company_id",
		"customer_id":       "customer_invoices.customer_id",
		"sales_order_id": "customer_invoices.sales_order_id",
		"status":            "customer_invoices.status",
	},
	sortFields:  CustomerInvoiceSortFields,
	defaultSort: "created_at",
	defaultDir:  "DESC",
}

// GormCustomerInvoiceRepository implements finance.CustomerInvoiceRepository using GORM
type GormCustomerInvoiceRepository struct {
	db *gorm.DB
}

// NewGormCustomerInvoiceRepository creates a new GormCustomerInvoiceRepository
func NewGormCustomerInvoiceRepository(db *gorm.DB) *GormCustomerInvoiceRepository {
	return &GormCustomerInvoiceRepository{db: db}
}

func (r *GormCustomerInvoiceRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.CustomerInvoiceModel{}).
		Select("customer_invoices.*, contacts.name AS customer_name").
		Joins("LEFT JOIN contacts ON contacts.id = customer_invoices.customer_id")
}

func preloadCustomerInvoiceLines(db *gorm.DB) *gorm.DB {
	return db.Preload("Lines", withLineProducts("customer_invoice_lines"))
}

// FindByID finds an invoice with its lines
func (r *GormCustomerInvoiceRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*finance.CustomerInvoice, error) {
	var m models.CustomerInvoiceModel
	if err := customerInvoiceList.firstScoped(preloadCustomerInvoiceLines(r.query(ctx)), scope, id, &m); err != nil {
		return nil, translateError(err, "customer invoice")
	}
	return m.ToDomain(), nil
}

// FindAll lists invoices visible to scope
func (r *GormCustomerInvoiceRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]finance.CustomerInvoice, int64, error) {
	var rows []models.CustomerInvoiceModel
	build := func() *gorm.DB { return customerInvoiceList.where(r.query(ctx), scope, filter) }
	total, err := customerInvoiceList.findPage(build, filter, &rows, preloadCustomerInvoiceLines)
	if err != nil {
		return nil, 0, err
	}
	out := make([]finance.CustomerInvoice, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// Save writes the header. Lines are copied from the source document once, on insert.
func (r *GormCustomerInvoiceRepository) Save(ctx context.Context, invoice *finance.CustomerInvoice) error {
	m := models.CustomerInvoiceModelFromDomain(invoice)
	isNew := invoice.IsNew()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveModel(tx, m, isNew, "created_by"); err != nil {
			return err
		}
		if !isNew || len(m.Lines) == 0 {
			return nil
		}
		for i := range m.Lines {
			m.Lines[i].ID = 0
			m.Lines[i].CustomerInvoiceID = m.ID
		}
		return tx.Create(&m.Lines).Error
	})
	if err != nil {
		return translateNumberedError(err, "customer invoice", invoice.InvoiceNumber)
	}
	invoice.ID = m.ID
	if isNew {
		for i := range m.Lines {
			invoice.Lines[i].ID = m.Lines[i].ID
		}
	}
	return nil
}

// Delete removes an invoice and its lines
func (r *GormCustomerInvoiceRepository) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := customerInvoiceList.deleteScoped(tx, scope, id, &models.CustomerInvoiceModel{}, "customer invoice"); err != nil {
			return err
		}
		return tx.Where("customer_invoice_id = ?", id).Delete(&models.CustomerInvoiceLineModel{}).Error
	})
}

var _ finance.CustomerInvoiceRepository = (*GormCustomerInvoiceRepository)(nil)
