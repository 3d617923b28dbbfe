package persistence

import (
	"context"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/partner"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

var contactList = listSpec{
	table:         "contacts",
	resource:      identity.ResourceContacts,
	searchColumns: []string{"contacts.name", "contacts.email", "contacts.phone", "contacts.tax_id"},
	filterColumns: map[string]string{
		"company_id":   "contacts.company_id",
		"contact_type": "contacts.contact_type",
		"is_active":    "contacts.is_active",
		"city":         "contacts.city",
	},
	sortFields:  ContactSortFields,
	defaultSort: "name",
	defaultDir:  "ASC",
}

// GormContactRepository implements partner.ContactRepository using GORM
type GormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository creates a new GormContactRepository
func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

func (r *GormContactRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.ContactModel{}).
		Select("contacts.*, companies.name AS company_name").
		Joins("LEFT JOIN companies ON companies.id = contacts.company_id")
}

// FindByID finds a contact visible to scope
func (r *GormContactRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*partner.Contact, error) {
	var m models.ContactModel
	if err := contactList.firstScoped(r.query(ctx), scope, id, &m); err != nil {
		return nil, translateError(err, "contact")
	}
	return m.ToDomain(), nil
}

// FindAll lists contacts visible to scope
func (r *GormContactRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]partner.Contact, int64, error) {
	var rows []models.ContactModel
	build := func() *gorm.DB { return contactList.where(r.query(ctx), scope, filter) }
	total, err := contactList.findPage(build, filter, &rows, nil)
	if err != nil {
		return nil, 0, err
	}
	out := make([]partner.Contact, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// Save creates or updates a contact
func (r *GormContactRepository) Save(ctx context.Context, contact *partner.Contact) error {
	m := models.ContactModelFromDomain(contact)
	if err := saveModel(r.db.WithContext(ctx), m, contact.IsNew(), "created_by"); err != nil {
		return translateError(err, "contact")
	}
	contact.ID = m.ID
	return nil
}

// Delete removes a contact visible to scope
func (r *GormContactRepository) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return contactList.deleteScoped(r.db.WithContext(ctx), scope, id, &models.ContactModel{}, "contact")
}

var _ partner.ContactRepository = (*GormContactRepository)(nil)
