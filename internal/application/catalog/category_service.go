package catalog

import (
	"context"
	"errors"

	"github.com/erp/bizhub/internal/domain/catalog"
	"github.com/erp/bizhub/internal/domain/shared"
)

// CategoryService handles category-related business operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List returns a page of categories. filter may carry top_level=true.
func (s *CategoryService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[CategoryResponse], error) {
	filter = filter.Normalize()
	categories, total, err := s.categoryRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[CategoryResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(categories, ToCategoryResponse), total, filter.Page, filter.PageSize), nil
}

// GetByID returns one category
func (s *CategoryService) GetByID(ctx context.Context, id int64) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(category)
	return &resp, nil
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, req CategoryRequest) (*CategoryResponse, error) {
	if err := s.checkParent(ctx, req.ParentID); err != nil {
		return nil, err
	}
	category, err := catalog.NewCategory(req.Name, req.ParentID, req.Description)
	if err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(category)
	return &resp, nil
}

// Update replaces a category
func (s *CategoryService) Update(ctx context.Context, id int64, req CategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkParent(ctx, req.ParentID); err != nil {
		return nil, err
	}
	if err := category.Update(req.Name, req.ParentID, req.Description); err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(category)
	return &resp, nil
}

// Delete removes a category
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.categoryRepo.Delete(ctx, id)
}

func (s *CategoryService) checkParent(ctx context.Context, parentID *int64) error {
	if parentID == nil {
		return nil
	}
	if _, err := s.categoryRepo.FindByID(ctx, *parentID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewValidationError("parent category %d not found", *parentID)
		}
		return err
	}
	return nil
}
