package persistence

import (
	"context"
	"strings"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/partner"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

var companyList = listSpec{
	table:         "companies",
	resource:      identity.ResourceCompanies,
	searchColumns: []string{"companies.name", "companies.tax_id", "companies.email", "companies.city"},
	filterColumns: map[string]string{
		"city":    "companies.city",
		"state":   "companies.state",
		"country": "companies.country",
	},
	sortFields:  CompanySortFields,
	defaultSort: "name",
	defaultDir:  "ASC",
}

// GormCompanyRepository implements partner.CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

func (r *GormCompanyRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.CompanyModel{})
}

// FindByID finds a company visible to scope
func (r *GormCompanyRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*partner.Company, error) {
	var m models.CompanyModel
	if err := companyList.firstScoped(r.query(ctx), scope, id, &m); err != nil {
		return nil, translateError(err, "company")
	}
	return m.ToDomain(), nil
}

// FindAll lists companies visible to scope
func (r *GormCompanyRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]partner.Company, int64, error) {
	var rows []models.CompanyModel
	build := func() *gorm.DB { return companyList.where(r.query(ctx), scope, filter) }
	total, err := companyList.findPage(build, filter, &rows, nil)
	if err != nil {
		return nil, 0, err
	}
	out := make([]partner.Company, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// ExistsByTaxID checks whether another company already uses taxID
func (r *GormCompanyRepository) ExistsByTaxID(ctx context.Context, taxID string, excludeID int64) (bool, error) {
	var count int64
	q := r.query(ctx).Where("tax_id = ?", strings.TrimSpace(taxID))
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a company
func (r *GormCompanyRepository) Save(ctx context.Context, company *partner.Company) error {
	m := models.CompanyModelFromDomain(company)
	if err := saveModel(r.db.WithContext(ctx), m, company.IsNew(), "created_by"); err != nil {
		return translateError(err, "company")
	}
	company.ID = m.ID
	return nil
}

// Delete removes a company visible to scope
func (r *GormCompanyRepository) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return companyList.deleteScoped(r.db.WithContext(ctx), scope, id, &models.CompanyModel{}, "company")
}

var _ partner.CompanyRepository = (*GormCompanyRepository)(nil)
