package catalog

import (
	"context"
	"errors"

	"github.com/erp/bizhub/internal/domain/catalog"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/partner"
	"github.com/erp/bizhub/internal/domain/shared"
	"go.uber.org/zap"
)

// ProductService handles product-related business operations.
// Stock quantity is never written here; it follows the stock ledger.
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	taxRepo      catalog.TaxRepository
	companyRepo  partner.CompanyRepository
	logger       *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	taxRepo catalog.TaxRepository,
	companyRepo partner.CompanyRepository,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		taxRepo:      taxRepo,
		companyRepo:  companyRepo,
		logger:       logger,
	}
}

// List returns products visible to scope
func (s *ProductService) List(ctx context.Context, scope identity.Scope, filter shared.Filter) (shared.Paginated[ProductResponse], error) {
	filter = filter.Normalize()
	products, total, err := s.productRepo.FindAll(ctx, scope, filter)
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(products, ToProductResponse), total, filter.Page, filter.PageSize), nil
}

// GetByID returns one product
func (s *ProductService) GetByID(ctx context.Context, scope identity.Scope, id int64) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Create creates a product with zero stock
func (s *ProductService) Create(ctx context.Context, scope identity.Scope, req ProductRequest) (*ProductResponse, error) {
	company, err := s.checkReferences(ctx, scope, req)
	if err != nil {
		return nil, err
	}
	if err := s.checkSKU(ctx, req.SKU, 0); err != nil {
		return nil, err
	}
	product, err := catalog.NewProduct(scope.UserID, req.details())
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	product.CompanyName = company.Name
	s.logger.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.String("sku", product.SKU),
		zap.Int64("company_id", product.CompanyID),
	)
	resp := ToProductResponse(product)
	return &resp, nil
}

// Update replaces the editable fields of a product
func (s *ProductService) Update(ctx context.Context, scope identity.Scope, id int64, req ProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	company, err := s.checkReferences(ctx, scope, req)
	if err != nil {
		return nil, err
	}
	if err := s.checkSKU(ctx, req.SKU, id); err != nil {
		return nil, err
	}
	if err := product.Update(req.details()); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	product.CompanyName = company.Name
	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	if err := s.productRepo.Delete(ctx, scope, id); err != nil {
		return err
	}
	s.logger.Info("Product deleted", zap.Int64("product_id", id), zap.Int64("user_id", scope.UserID))
	return nil
}

func (s *ProductService) checkSKU(ctx context.Context, sku string, excludeID int64) error {
	exists, err := s.productRepo.ExistsBySKU(ctx, sku, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewDomainError("ALREADY_EXISTS", "Product with this SKU already exists")
	}
	return nil
}

// checkReferences verifies that the company and tax are visible and the categories exist
func (s *ProductService) checkReferences(ctx context.Context, scope identity.Scope, req ProductRequest) (*partner.Company, error) {
	company, err := s.companyRepo.FindByID(ctx, scope, req.CompanyID)
	if err != nil {
		return nil, err
	}
	for _, categoryID := range []*int64{req.CategoryID, req.SubcategoryID} {
		if categoryID == nil {
			continue
		}
		if _, err := s.categoryRepo.FindByID(ctx, *categoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewValidationError("category %d not found", *categoryID)
			}
			return nil, err
		}
	}
	if req.TaxID != nil {
		if _, err := s.taxRepo.FindByID(ctx, scope, *req.TaxID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewValidationError("tax %d not found", *req.TaxID)
			}
			return nil, err
		}
	}
	return company, nil
}
