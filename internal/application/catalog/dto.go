package catalog

import (
	"time"

	"github.com/erp/bizhub/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Category DTOs
// =============================================================================

// CategoryRequest creates or replaces a category
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	ParentID    *int64 `json:"parent"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// CategoryResponse is the API view of a category
type CategoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	ParentID    *int64    `json:"parent"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToCategoryResponse converts a domain category
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		ParentID:    c.ParentID,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// =============================================================================
// Tax DTOs
// =============================================================================

// TaxRequest creates or replaces a tax
type TaxRequest struct {
	CompanyID int64           `json:"company" binding:"required,gt=0"`
	Name      string          `json:"name" binding:"required,min=1,max=100"`
	Rate      decimal.Decimal `json:"rate"`
	TaxType   string          `json:"tax_type" binding:"omitempty,oneof=percentage fixed"`
	IsActive  *bool           `json:"is_active"`
}

// TaxResponse is the API view of a tax
type TaxResponse struct {
	ID        int64           `json:"id"`
	CompanyID int64           `json:"company"`
	Name      string          `json:"name"`
	Rate      decimal.Decimal `json:"rate"`
	TaxType   string          `json:"tax_type"`
	IsActive  bool            `json:"is_active"`
	CreatedBy int64           `json:"created_by"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToTaxResponse converts a domain tax
func ToTaxResponse(t *catalog.Tax) TaxResponse {
	return TaxResponse{
		ID:        t.ID,
		CompanyID: t.CompanyID,
		Name:      t.Name,
		Rate:      t.Rate,
		TaxType:   string(t.TaxType),
		IsActive:  t.IsActive,
		CreatedBy: t.CreatedBy,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// =============================================================================
// Product DTOs
// =============================================================================

// ProductRequest creates or replaces a product. Stock is never set here.
type ProductRequest struct {
	CompanyID        int64            `json:"company" binding:"required,gt=0"`
	CategoryID       *int64           `json:"category"`
	SubcategoryID    *int64           `json:"subcategory"`
	TaxID            *int64           `json:"tax"`
	Name             string           `json:"name" binding:"required,min=1,max=200"`
	Description      string           `json:"description"`
	ProductType      string           `json:"product_type" binding:"omitempty,oneof=goods service"`
	SKU              string           `json:"sku" binding:"required,min=1,max=100"`
	UnitPrice        decimal.Decimal  `json:"unit_price"`
	CostPrice        *decimal.Decimal `json:"cost_price"`
	Manufacturer     string           `json:"manufacturer" binding:"max=200"`
	DeliveryTime     string           `json:"delivery_time" binding:"max=50"`
	IsFeatured       bool             `json:"is_featured"`
	MinOrderQuantity int              `json:"min_order_quantity" binding:"omitempty,gte=1"`
	IsActive         *bool            `json:"is_active"`
}

func (r ProductRequest) details() catalog.ProductDetails {
	return catalog.ProductDetails{
		CompanyID:        r.CompanyID,
		CategoryID:       r.CategoryID,
		SubcategoryID:    r.SubcategoryID,
		TaxID:            r.TaxID,
		Name:             r.Name,
		Description:      r.Description,
		ProductType:      catalog.ProductType(r.ProductType),
		SKU:              r.SKU,
		UnitPrice:        r.UnitPrice,
		CostPrice:        r.CostPrice,
		Manufacturer:     r.Manufacturer,
		DeliveryTime:     r.DeliveryTime,
		IsFeatured:       r.IsFeatured,
		MinOrderQuantity: r.MinOrderQuantity,
		IsActive:         r.IsActive,
	}
}

// ProductResponse is the API view of a product
type ProductResponse struct {
	ID               int64            `json:"id"`
	CompanyID        int64            `json:"company"`
	CompanyName      string           `json:"company_name"`
	CategoryID       *int64           `json:"category"`
	SubcategoryID    *int64           `json:"subcategory"`
	TaxID            *int64           `json:"tax"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	ProductType      string           `json:"product_type"`
	SKU              string           `json:"sku"`
	UnitPrice        decimal.Decimal  `json:"unit_price"`
	CostPrice        *decimal.Decimal `json:"cost_price"`
	Manufacturer     string           `json:"manufacturer"`
	DeliveryTime     string           `json:"delivery_time"`
	IsFeatured       bool             `json:"is_featured"`
	StockQuantity    decimal.Decimal  `json:"stock_quantity"`
	MinOrderQuantity int              `json:"min_order_quantity"`
	IsActive         bool             `json:"is_active"`
	CreatedBy        int64            `json:"created_by"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// ToProductResponse converts a domain product
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:               p.ID,
		CompanyID:        p.CompanyID,
		CompanyName:      p.CompanyName,
		CategoryID:       p.CategoryID,
		SubcategoryID:    p.SubcategoryID,
		TaxID:            p.TaxID,
		Name:             p.Name,
		Description:      p.Description,
		ProductType:      string(p.ProductType),
		SKU:              p.SKU,
		UnitPrice:        p.UnitPrice,
		CostPrice:        p.CostPrice,
		Manufacturer:     p.Manufacturer,
		DeliveryTime:     p.DeliveryTime,
		IsFeatured:       p.IsFeatured,
		StockQuantity:    p.StockQuantity,
		MinOrderQuantity: p.MinOrderQuantity,
		IsActive:         p.IsActive,
		CreatedBy:        p.CreatedBy,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// =============================================================================
// Product image DTOs
// =============================================================================

// ImageUploadRequest asks for a presigned upload slot
type ImageUploadRequest struct {
	ContentType string `json:"content_type" binding:"required"`
	IsPrimary   bool   `json:"is_primary"`
}

// ImageUploadResponse carries the presigned PUT url for the client
type ImageUploadResponse struct {
	ImageID    int64     `json:"image_id"`
	StorageKey string    `json:"storage_key"`
	UploadURL  string    `json:"upload_url"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// ImageResponse is a stored image with a short-lived download url
type ImageResponse struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product"`
	ContentType string    `json:"content_type"`
	IsPrimary   bool      `json:"is_primary"`
	URL         string    `json:"url"`
	URLExpires  time.Time `json:"url_expires_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func mapSlice[T, R any](items []T, fn func(*T) R) []R {
	out := make([]R, len(items))
	for i := range items {
		out[i] = fn(&items[i])
	}
	return out
}
