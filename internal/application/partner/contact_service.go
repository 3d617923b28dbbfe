package partner

import (
	"context"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/partner"
	"github.com/erp/bizhub/internal/domain/shared"
	"go.uber.org/zap"
)

// ContactService handles customer and supplier contacts
type ContactService struct {
	contactRepo partner.ContactRepository
	companyRepo partner.CompanyRepository
	logger      *zap.Logger
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo partner.ContactRepository, companyRepo partner.CompanyRepository, logger *zap.Logger) *ContactService {
	return &ContactService{contactRepo: contactRepo, companyRepo: companyRepo, logger: logger}
}

// List returns contacts visible to scope, filtered by company_id, contact_type or is_active
func (s *ContactService) List(ctx context.Context, scope identity.Scope, filter shared.Filter) (shared.Paginated[ContactResponse], error) {
	filter = filter.Normalize()
	contacts, total, err := s.contactRepo.FindAll(ctx, scope, filter)
	if err != nil {
		return shared.Paginated[ContactResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(contacts, ToContactResponse), total, filter.Page, filter.PageSize), nil
}

// GetByID returns one contact
func (s *ContactService) GetByID(ctx context.Context, scope identity.Scope, id int64) (*ContactResponse, error) {
	contact, err := s.contactRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	resp := ToContactResponse(contact)
	return &resp, nil
}

// Create adds a contact to a company the actor can see
func (s *ContactService) Create(ctx context.Context, scope identity.Scope, req ContactRequest) (*ContactResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, scope, req.CompanyID)
	if err != nil {
		return nil, err
	}
	contact, err := partner.NewContact(scope.UserID, req.details())
	if err != nil {
		return nil, err
	}
	if err := s.contactRepo.Save(ctx, contact); err != nil {
		return nil, err
	}
	contact.CompanyName = company.Name
	s.logger.Info("Contact created",
		zap.Int64("contact_id", contact.ID),
		zap.Int64("company_id", contact.CompanyID),
		zap.String("contact_type", string(contact.ContactType)),
	)
	resp := ToContactResponse(contact)
	return &resp, nil
}

// Update replaces a contact's details
func (s *ContactService) Update(ctx context.Context, scope identity.Scope, id int64, req ContactRequest) (*ContactResponse, error) {
	contact, err := s.contactRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if req.CompanyID != contact.CompanyID {
		company, err := s.companyRepo.FindByID(ctx, scope, req.CompanyID)
		if err != nil {
			return nil, err
		}
		contact.CompanyName = company.Name
	}
	if err := contact.Update(req.details()); err != nil {
		return nil, err
	}
	if err := s.contactRepo.Save(ctx, contact); err != nil {
		return nil, err
	}
	resp := ToContactResponse(contact)
	return &resp, nil
}

// Delete removes a contact
func (s *ContactService) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return s.contactRepo.Delete(ctx, scope, id)
}
