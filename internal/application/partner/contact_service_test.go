package partner

import (
	"context"
	"testing"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/partner"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestContactService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("company must be visible", func(t *testing.T) {
		contacts, companies := new(MockContactRepository), new(MockCompanyRepository)
		svc := NewContactService(contacts, companies, zap.NewNop())
		companies.On("FindByID", ctx, ownerScope, int64(3)).Return(nil, shared.NewNotFoundError("company", 3))

		_, err := svc.Create(ctx, ownerScope, ContactRequest{CompanyID: 3, ContactType: "customer", Name: "Zed"})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		contacts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("stores contact with company name", func(t *testing.T) {
		contacts, companies := new(MockContactRepository), new(MockCompanyRepository)
		svc := NewContactService(contacts, companies, zap.NewNop())
		companies.On("FindByID", ctx, ownerScope, int64(3)).Return(&partner.Company{Name: "Acme"}, nil)
		contacts.On("Save", ctx, mock.AnythingOfType("*partner.Contact")).Return(nil)

		resp, err := svc.Create(ctx, ownerScope, ContactRequest{CompanyID: 3, ContactType: "both", Name: " Zed "})

		require.NoError(t, err)
		assert.Equal(t, "Zed", resp.Name)
		assert.Equal(t, "Acme", resp.CompanyName)
		assert.True(t, resp.IsActive)
		assert.Equal(t, "India", resp.Country)
	})

	t.Run("invalid contact type", func(t *testing.T) {
		contacts, companies := new(MockContactRepository), new(MockCompanyRepository)
		svc := NewContactService(contacts, companies, zap.NewNop())
		companies.On("FindByID", ctx, ownerScope, int64(3)).Return(&partner.Company{Name: "Acme"}, nil)

		_, err := svc.Create(ctx, ownerScope, ContactRequest{CompanyID: 3, ContactType: "vendor", Name: "Zed"})

		require.Error(t, err)
	})
}

func TestContactService_UpdateDeactivates(t *testing.T) {
	ctx := context.Background()
	contacts, companies := new(MockContactRepository), new(MockCompanyRepository)
	svc := NewContactService(contacts, companies, zap.NewNop())
	contact, err := partner.NewContact(7, partner.ContactDetails{CompanyID: 3, ContactType: partner.ContactTypeSupplier, Name: "Zed"})
	require.NoError(t, err)
	contact.ID = 11
	inactive := false

	contacts.On("FindByID", ctx, ownerScope, int64(11)).Return(contact, nil)
	contacts.On("Save", ctx, contact).Return(nil)

	resp, err := svc.Update(ctx, ownerScope, 11, ContactRequest{CompanyID: 3, ContactType: "supplier", Name: "Zed", IsActive: &inactive})

	require.NoError(t, err)
	assert.False(t, resp.IsActive)
	companies.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestSellerProfileService(t *testing.T) {
	ctx := context.Background()
	seller := identity.NewScope(21, identity.RoleContactUser)

	t.Run("one profile per user", func(t *testing.T) {
		repo := new(MockSellerProfileRepository)
		svc := NewSellerProfileService(repo, zap.NewNop())
		repo.On("FindByUserID", ctx, int64(21)).Return(&partner.SellerProfile{UserID: 21}, nil)

		_, err := svc.Create(ctx, seller, SellerProfileRequest{BusinessName: "Shop"})

		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("create uses default commission", func(t *testing.T) {
		repo := new(MockSellerProfileRepository)
		svc := NewSellerProfileService(repo, zap.NewNop())
		repo.On("FindByUserID", ctx, int64(21)).Return(nil, shared.NewNotFoundError("seller profile", 0))
		repo.On("Save", ctx, mock.AnythingOfType("*partner.SellerProfile")).Return(nil)

		resp, err := svc.Create(ctx, seller, SellerProfileRequest{BusinessName: "Shop", GSTNumber: "27abcde1234f1z5"})

		require.NoError(t, err)
		assert.Equal(t, int64(21), resp.UserID)
		assert.Equal(t, "10", resp.CommissionRate.String())
		assert.Equal(t, "27ABCDE1234F1Z5", resp.GSTNumber)
		assert.False(t, resp.IsVerified)
	})

	t.Run("verify is admin only", func(t *testing.T) {
		repo := new(MockSellerProfileRepository)
		svc := NewSellerProfileService(repo, zap.NewNop())

		_, err := svc.Verify(ctx, seller, 1)
		assert.ErrorIs(t, err, shared.ErrForbidden)

		admin := identity.NewScope(1, identity.RoleAdmin)
		profile := &partner.SellerProfile{UserID: 21}
		profile.ID = 1
		repo.On("FindByID", ctx, admin, int64(1)).Return(profile, nil)
		repo.On("Save", ctx, profile).Return(nil)

		resp, err := svc.Verify(ctx, admin, 1)
		require.NoError(t, err)
		assert.True(t, resp.IsVerified)
	})
}
