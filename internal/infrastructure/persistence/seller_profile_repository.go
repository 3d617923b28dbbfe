package persistence

import (
	"context"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/partner"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

var sellerProfileList = listSpec{
	table:         "seller_profiles",
	resource:      identity.ResourceSellerProfiles,
	searchColumns: []string{"seller_profiles.business_name", "seller_profiles.gst_number"},
	filterColumns: map[string]string{
		"is_verified":   "seller_profiles.is_verified",
		"business_type": "seller_profiles.business_type",
	},
	sortFields:  SellerProfileSortFields,
	defaultSort: "created_at",
	defaultDir:  "DESC",
}

// GormSellerProfileRepository implements partner.SellerProfileRepository using GORM
type GormSellerProfileRepository struct {
	db *gorm.DB
}

// NewGormSellerProfileRepository creates a new GormSellerProfileRepository
func NewGormSellerProfileRepository(db *gorm.DB) *GormSellerProfileRepository {
	return &GormSellerProfileRepository{db: db}
}

func (r *GormSellerProfileRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.SellerProfileModel{})
}

// FindByID finds a seller profile visible to scope
func (r *GormSellerProfileRepository) FindByID(ctx context.Context, scope identity.Scope, id int64) (*partner.SellerProfile, error) {
	var m models.SellerProfileModel
	if err := sellerProfileList.firstScoped(r.query(ctx), scope, id, &m); err != nil {
		return nil, translateError(err, "seller profile")
	}
	return m.ToDomain(), nil
}

// FindByUserID finds the profile of a user
func (r *GormSellerProfileRepository) FindByUserID(ctx context.Context, userID int64) (*partner.SellerProfile, error) {
	var m models.SellerProfileModel
	if err := r.query(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		return nil, translateError(err, "seller profile")
	}
	return m.ToDomain(), nil
}

// FindAll lists seller profiles visible to scope
func (r *GormSellerProfileRepository) FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]partner.SellerProfile, int64, error) {
	var rows []models.SellerProfileModel
	build := func() *gorm.DB { return sellerProfileList.where(r.query(ctx), scope, filter) }
	total, err := sellerProfileList.findPage(build, filter, &rows, nil)
	if err != nil {
		return nil, 0, err
	}
	out := make([]partner.SellerProfile, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// Save creates or updates a seller profile
func (r *GormSellerProfileRepository) Save(ctx context.Context, profile *partner.SellerProfile) error {
	m := models.SellerProfileModelFromDomain(profile)
	if err := saveModel(r.db.WithContext(ctx), m, profile.IsNew(), "user_id"); err != nil {
		return translateError(err, "seller profile")
	}
	profile.ID = m.ID
	return nil
}

// Delete removes a seller profile visible to scope
func (r *GormSellerProfileRepository) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return sellerProfileList.deleteScoped(r.db.WithContext(ctx), scope, id, &models.SellerProfileModel{}, "seller profile")
}

var _ partner.SellerProfileRepository = (*GormSellerProfileRepository)(nil)
