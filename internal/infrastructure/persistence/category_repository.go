package persistence

import (
	"context"

	"github.com/erp/bizhub/internal/domain/catalog"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

var categoryList = listSpec{
	table:         "categories",
	resource:      identity.ResourceCategories,
	searchColumns: []string{"categories.name", "categories.description"},
	filterColumns: map[string]string{
		"parent_id": "categories.parent_id",
		"is_active": "categories.is_active",
	},
	sortFields:  CategorySortFields,
	defaultSort: "name",
	defaultDir:  "ASC",
}

// GormCategoryRepository implements catalog.CategoryRepository using GORM.
// Categories are shared reference data, so no scope is applied.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindByID finds a category by ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id int64) (*catalog.Category, error) {
	var m models.CategoryModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "category")
	}
	return m.ToDomain(), nil
}

// FindAll lists categories. A "top_level" filter restricts to root categories.
func (r *GormCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, int64, error) {
	var rows []models.CategoryModel
	build := func() *gorm.DB {
		q := categoryList.filtered(r.db.WithContext(ctx).Model(&models.CategoryModel{}), filter)
		if top, ok := filter.Filters["top_level"].(bool); ok && top {
			q = q.Where("categories.parent_id IS NULL")
		}
		return q
	}
	total, err := categoryList.findPage(build, filter, &rows, nil)
	if err != nil {
		return nil, 0, err
	}
	out := make([]catalog.Category, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// Save creates or updates a category
func (r *GormCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	m := &models.CategoryModel{}
	m.FromDomain(category)
	if err := saveModel(r.db.WithContext(ctx), m, category.IsNew()); err != nil {
		return translateError(err, "category")
	}
	category.ID = m.ID
	return nil
}

// Delete removes a category
func (r *GormCategoryRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error, "category")
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("NOT_FOUND", "category not found")
	}
	return nil
}

var _ catalog.CategoryRepository = (*GormCategoryRepository)(nil)
