package persistence

import (
	"context"

	"github.com/erp/bizhub/internal/domain/catalog"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

var taxList = listSpec{
	table:         "taxes",
	resource:      identity.ResourceTaxes,
	searchColumns: []string{"taxes.name"},
	filterColumns: map[string]string{
		"company_id": "taxes.company_id",
		"tax_type":   "taxes.tax_type",
		"is_active":  "taxes.is_active",
	},
	sortFields:  TaxSortFields,
	defaultSort: "name",
	defaultDir:  "ASC",
}

// GormTaxRepository implements catalog.TaxRepository using GORM
type GormTaxRepository struct {
	db *gorm.DB
}

// NewGormTaxRepository creates a new GormTaxRepository
func NewGormTaxRepository(db *gorm.DB) *GormTaxRepository {
	return &GormTaxRepository{db: db}
}

func (r *GormTaxRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.TaxModel{})
}

// FindByID finds a tax visible to scope
func (r *GormTaxRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*catalog.Tax, error) {
	var m models.TaxModel
	if err := taxList.firstScoped(r.query(ctx), scope, id, &m); err != nil {
		return nil, translateError(err, "tax")
	}
	return m.ToDomain(), nil
}

// FindAll lists taxes visible to scope
func (r *GormTaxRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]catalog.Tax, int64, error) {
	var rows []models.TaxModel
	build := func() *gorm.DB { return taxList.where(r.query(ctx), scope, filter) }
	total, err := taxList.findPage(build, filter, &rows, nil)
	if err != nil {
		return nil, 0, err
	}
	out := make([]catalog.Tax, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// Save creates or updates a tax
func (r *GormTaxRepository) Save(ctx context.Context, tax *catalog.Tax) error {
	m := &models.TaxModel{}
	m.FromDomain(tax)
	if err := saveModel(r.db.WithContext(ctx), m, tax.IsNew(), "created_by"); err != nil {
		return translateError(err, "tax")
	}
	tax.ID = m.ID
	return nil
}

// Delete removes a tax visible to scope
func (r *GormTaxRepository) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return taxList.deleteScoped(r.db.WithContext(ctx), scope, id, &models.TaxModel{}, "tax")
}

var _ catalog.TaxRepository = (*GormTaxRepository)(nil)
