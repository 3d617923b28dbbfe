package partner

import (
	"context"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
)

// CompanyRepository defines persistence operations for companies
type CompanyRepository interface {
	FindByID(ctx context.Context, scope identity.Scope, id int64) (*Company, error)
	FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]Company, int64, error)
	ExistsByTaxID(ctx context.Context, taxID string, excludeID int64) (bool, error)
	Save(ctx context.Context, company *Company) error
	Delete(ctx context.Context, scope identity.Scope, id int64) error
}

// ContactRepository defines persistence operations for contacts
type ContactRepository interface {
	FindByID(ctx context.Context, scope identity.Scope, id int64) (*Contact, error)
	FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]Contact, int64, error)
	Save(ctx context.Context, contact *Contact) error
	Delete(ctx context.Context, scope identity.Scope, id int64) error
}

// SellerProfileRepository defines persistence operations for seller profiles
type SellerProfileRepository interface {
	FindByID(ctx context.Context, scope identity.Scope, id int64) (*SellerProfile, error)
	FindByUserID(ctx context.Context, userID int64) (*SellerProfile, error)
	FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]SellerProfile, int64, error)
	Save(ctx context.Context, profile *SellerProfile) error
	Delete(ctx context.Context, scope identity.Scope, id int64) error
}
