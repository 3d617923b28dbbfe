package catalog

import (
	"strings"

	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductType distinguishes physical goods from services
type ProductType string

const (
	ProductTypeGoods   ProductType = "goods"
	ProductTypeService ProductType = "service"
)

// IsValid checks if the product type is known
func (t ProductType) IsValid() bool {
	return t == ProductTypeGoods || t == ProductTypeService
}

// DefaultDeliveryTime is shown when a product has no delivery estimate
const DefaultDeliveryTime = "3-5 days"

// Product is a sellable item. SKU is unique across all companies.
// StockQuantity is a cache of the stock ledger and only changes through ApplyStockDelta.
type Product struct {
	shared.OwnedEntity
	CompanyID        int64
	CompanyName      string // read-only, resolved on load
	CategoryID       *int64
	SubcategoryID    *int64
	TaxID            *int64
	Name             string
	Description      string
	ProductType      ProductType
	SKU              string
	UnitPrice        decimal.Decimal
	CostPrice        *decimal.Decimal
	Manufacturer     string
	DeliveryTime     string
	IsFeatured       bool
	StockQuantity    decimal.Decimal
	MinOrderQuantity int
	IsActive         bool
}

// ProductDetails is the editable part of a product
type ProductDetails struct {
	CompanyID        int64
	CategoryID       *int64
	SubcategoryID    *int64
	TaxID            *int64
	Name             string
	Description      string
	ProductType      ProductType
	SKU              string
	UnitPrice        decimal.Decimal
	CostPrice        *decimal.Decimal
	Manufacturer     string
	DeliveryTime     string
	IsFeatured       bool
	MinOrderQuantity int
	IsActive         *bool
}

// NewProduct creates an active product with zero stock
func NewProduct(ownerID int64, d ProductDetails) (*Product, error) {
	p := &Product{
		OwnedEntity:   shared.NewOwnedEntity(ownerID),
		StockQuantity: decimal.Zero,
		IsActive:      true,
	}
	if err := p.Update(d); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces the editable fields
func (p *Product) Update(d ProductDetails) error {
	if d.CompanyID <= 0 {
		return shared.NewValidationError("company_id is required")
	}
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return shared.NewValidationError("product name is required")
	}
	sku := strings.TrimSpace(d.SKU)
	if sku == "" {
		return shared.NewValidationError("sku is required")
	}
	if d.ProductType == "" {
		d.ProductType = ProductTypeGoods
	}
	if !d.ProductType.IsValid() {
		return shared.NewValidationError("product_type must be goods or service")
	}
	if d.UnitPrice.IsNegative() {
		return shared.NewValidationError("unit_price cannot be negative")
	}
	if d.CostPrice != nil && d.CostPrice.IsNegative() {
		return shared.NewValidationError("cost_price cannot be negative")
	}
	if d.MinOrderQuantity <= 0 {
		d.MinOrderQuantity = 1
	}
	if strings.TrimSpace(d.DeliveryTime) == "" {
		d.DeliveryTime = DefaultDeliveryTime
	}

	p.CompanyID = d.CompanyID
	p.CategoryID = d.CategoryID
	p.SubcategoryID = d.SubcategoryID
	p.TaxID = d.TaxID
	p.Name = name
	p.Description = d.Description
	p.ProductType = d.ProductType
	p.SKU = sku
	p.UnitPrice = shared.RoundMoney(d.UnitPrice)
	p.CostPrice = d.CostPrice
	p.Manufacturer = d.Manufacturer
	p.DeliveryTime = d.DeliveryTime
	p.IsFeatured = d.IsFeatured
	p.MinOrderQuantity = d.MinOrderQuantity
	if d.IsActive != nil {
		p.IsActive = *d.IsActive
	}
	p.Touch()
	return nil
}

// ApplyStockDelta adjusts the cached stock counter by a signed movement quantity
func (p *Product) ApplyStockDelta(delta decimal.Decimal) {
	p.StockQuantity = p.StockQuantity.Add(delta)
	p.Touch()
}

// IsLowStock reports whether on-hand stock is under threshold
func (p *Product) IsLowStock(threshold decimal.Decimal) bool {
	return p.StockQuantity.LessThan(threshold)
}
