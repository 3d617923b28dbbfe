package catalog

import (
	"context"

	"github.com/erp/bizhub/internal/domain/catalog"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/partner"
	"github.com/erp/bizhub/internal/domain/shared"
)

// TaxService manages company taxes
type TaxService struct {
	taxRepo     catalog.TaxRepository
	companyRepo partner.CompanyRepository
}

// NewTaxService creates a new TaxService
func NewTaxService(taxRepo catalog.TaxRepository, companyRepo partner.CompanyRepository) *TaxService {
	return &TaxService{taxRepo: taxRepo, companyRepo: companyRepo}
}

// List returns taxes visible to scope
func (s *TaxService) List(ctx context.Context, scope identity.Scope, filter shared.Filter) (shared.Paginated[TaxResponse], error) {
	filter = filter.Normalize()
	taxes, total, err := s.taxRepo.FindAll(ctx, scope, filter)
	if err != nil {
		return shared.Paginated[TaxResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(taxes, ToTaxResponse), total, filter.Page, filter.PageSize), nil
}

// GetByID returns one tax
func (s *TaxService) GetByID(ctx context.Context, scope identity.Scope, id int64) (*TaxResponse, error) {
	tax, err := s.taxRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	resp := ToTaxResponse(tax)
	return &resp, nil
}

// Create defines a tax for a visible company
func (s *TaxService) Create(ctx context.Context, scope identity.Scope, req TaxRequest) (*TaxResponse, error) {
	if _, err := s.companyRepo.FindByID(ctx, scope, req.CompanyID); err != nil {
		return nil, err
	}
	tax, err := catalog.NewTax(scope.UserID, req.CompanyID, req.Name, req.Rate, catalog.TaxType(req.TaxType))
	if err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		tax.IsActive = *req.IsActive
	}
	if err := s.taxRepo.Save(ctx, tax); err != nil {
		return nil, err
	}
	resp := ToTaxResponse(tax)
	return &resp, nil
}

// Update replaces a tax definition
func (s *TaxService) Update(ctx context.Context, scope identity.Scope, id int64, req TaxRequest) (*TaxResponse, error) {
	tax, err := s.taxRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if req.CompanyID != tax.CompanyID {
		if _, err := s.companyRepo.FindByID(ctx, scope, req.CompanyID); err != nil {
			return nil, err
		}
	}
	if err := tax.Update(req.CompanyID, req.Name, req.Rate, catalog.TaxType(req.TaxType)); err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		tax.IsActive = *req.IsActive
	}
	if err := s.taxRepo.Save(ctx, tax); err != nil {
		return nil, err
	}
	resp := ToTaxResponse(tax)
	return &resp, nil
}

// Delete removes a tax
func (s *TaxService) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	return s.taxRepo.Delete(ctx, scope, id)
}
