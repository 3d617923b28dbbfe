package partner

import (
	"context"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/partner"
	"github.com/erp/bizhub/internal/domain/shared"
	"go.uber.org/zap"
)

// CompanyService handles company business operations
type CompanyService struct {
	companyRepo partner.CompanyRepository
	logger      *zap.Logger
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo partner.CompanyRepository, logger *zap.Logger) *CompanyService {
	return &CompanyService{companyRepo: companyRepo, logger: logger}
}

// List returns the companies visible to scope
func (s *CompanyService) List(ctx context.Context, scope identity.Scope, filter shared.Filter) (shared.Paginated[CompanyResponse], error) {
	filter = filter.Normalize()
	companies, total, err := s.companyRepo.FindAll(ctx, scope, filter)
	if err != nil {
		return shared.Paginated[CompanyResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(companies, ToCompanyResponse), total, filter.Page, filter.PageSize), nil
}

// GetByID returns one company
func (s *CompanyService) GetByID(ctx context.Context, scope identity.Scope, id int64) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	resp := ToCompanyResponse(company)
	return &resp, nil
}

// Create creates a company owned by the actor
func (s *CompanyService) Create(ctx context.Context, scope identity.Scope, req CompanyRequest) (*CompanyResponse, error) {
	if err := s.checkTaxID(ctx, req.TaxID, 0); err != nil {
		return nil, err
	}
	company, err := partner.NewCompany(scope.UserID, req.details())
	if err != nil {
		return nil, err
	}
	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}
	s.logger.Info("Company created", zap.Int64("company_id", company.ID), zap.Int64("user_id", scope.UserID))
	resp := ToCompanyResponse(company)
	return &resp, nil
}

// Update replaces the details of a visible company
func (s *CompanyService) Update(ctx context.Context, scope identity.Scope, id int64, req CompanyRequest) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkTaxID(ctx, req.TaxID, id); err != nil {
		return nil, err
	}
	if err := company.Update(req.details()); err != nil {
		return nil, err
	}
	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}
	resp := ToCompanyResponse(company)
	return &resp, nil
}

// Delete removes a visible company
func (s *CompanyService) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	if err := s.companyRepo.Delete(ctx, scope, id); err != nil {
		return err
	}
	s.logger.Info("Company deleted", zap.Int64("company_id", id), zap.Int64("user_id", scope.UserID))
	return nil
}

func (s *CompanyService) checkTaxID(ctx context.Context, taxID string, excludeID int64) error {
	exists, err := s.companyRepo.ExistsByTaxID(ctx, taxID, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewDomainError("ALREADY_EXISTS", "Company with this tax_id already exists")
	}
	return nil
}
