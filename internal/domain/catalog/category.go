package catalog

import (
	"strings"

	"github.com/erp/bizhub/internal/domain/shared"
)

// Category groups products; a category with a parent is a subcategory
type Category struct {
	shared.BaseEntity
	Name        string
	ParentID    *int64
	Description string
	IsActive    bool
}

// NewCategory creates an active category
func NewCategory(name string, parentID *int64, description string) (*Category, error) {
	c := &Category{BaseEntity: shared.NewBaseEntity(), IsActive: true}
	if err := c.Update(name, parentID, description); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces name, parent and description
func (c *Category) Update(name string, parentID *int64, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("category name is required")
	}
	if parentID != nil && c.ID != 0 && *parentID == c.ID {
		return shared.NewValidationError("category cannot be its own parent")
	}
	c.Name = name
	c.ParentID = parentID
	c.Description = description
	c.Touch()
	return nil
}

// IsSubcategory reports whether the category has a parent
func (c *Category) IsSubcategory() bool {
	return c.ParentID != nil
}
