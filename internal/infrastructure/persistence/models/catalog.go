package models

import (
	"github.com/erp/bizhub/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CategoryModel is the persistence model for the Category domain entity
type CategoryModel struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null"`
	ParentID    *int64 `gorm:"index"`
	Description string `gorm:"type:text"`
	IsActive    bool   `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the persistence model to a domain Category entity
func (m *CategoryModel) ToDomain() *catalog.Category {
	return &catalog.Category{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		ParentID:    m.ParentID,
		Description: m.Description,
		IsActive:    m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Category entity
func (m *CategoryModel) FromDomain(c *catalog.Category) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.ParentID = c.ParentID
	m.Description = c.Description
	m.IsActive = c.IsActive
}

// TaxModel is the persistence model for the Tax domain entity
type TaxModel struct {
	OwnedModel
	CompanyID int64           `gorm:"not null;index"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Rate      decimal.Decimal `gorm:"type:decimal(10,4);not null"`
	TaxType   catalog.TaxType `gorm:"type:varchar(20);not null;default:'percentage'"`
	IsActive  bool            `gorm:"not null"`
}

// TableName returns the table name for GORM
func (TaxModel) TableName() string {
	return "taxes"
}

// ToDomain converts the persistence model to a domain Tax entity
func (m *TaxModel) ToDomain() *catalog.Tax {
	return &catalog.Tax{
		OwnedEntity: m.ToOwned(),
		CompanyID:   m.CompanyID,
		Name:        m.Name,
		Rate:        m.Rate,
		TaxType:     m.TaxType,
		IsActive:    m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Tax entity
func (m *TaxModel) FromDomain(t *catalog.Tax) {
	m.FromDomainOwnedEntity(t.OwnedEntity)
	m.CompanyID = t.CompanyID
	m.Name = t.Name
	m.Rate = t.Rate
	m.TaxType = t.TaxType
	m.IsActive = t.IsActive
}

// ProductModel is the persistence model for the Product domain entity
type ProductModel struct {
	OwnedModel
	CompanyID        int64               `gorm:"not null;index"`
	CompanyName      string              `gorm:"->;-:migration"`
	CategoryID       *int64              `gorm:"index"`
	SubcategoryID    *int64              `gorm:"index"`
	TaxID            *int64              `gorm:"index"`
	Name             string              `gorm:"type:varchar(200);not null"`
	Description      string              `gorm:"type:text"`
	ProductType      catalog.ProductType `gorm:"type:varchar(20);not null;default:'goods'"`
	SKU              string              `gorm:"column:sku;type:varchar(100);not null;uniqueIndex"`
	UnitPrice        decimal.Decimal     `gorm:"type:decimal(12,2);not null"`
	CostPrice        decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	Manufacturer     string              `gorm:"type:varchar(200)"`
	DeliveryTime     string              `gorm:"type:varchar(50);not null;default:'3-5 days'"`
	IsFeatured       bool                `gorm:"not null;default:false"`
	StockQuantity    decimal.Decimal     `gorm:"type:decimal(14,3);not null;default:0"`
	MinOrderQuantity int                 `gorm:"not null;default:1"`
	IsActive         bool                `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity
func (m *ProductModel) ToDomain() *catalog.Product {
	p := &catalog.Product{
		OwnedEntity:      m.ToOwned(),
		CompanyID:        m.CompanyID,
		CompanyName:      m.CompanyName,
		CategoryID:       m.CategoryID,
		SubcategoryID:    m.SubcategoryID,
		TaxID:            m.TaxID,
		Name:             m.Name,
		Description:      m.Description,
		ProductType:      m.ProductType,
		SKU:              m.SKU,
		UnitPrice:        m.UnitPrice,
		Manufacturer:     m.Manufacturer,
		DeliveryTime:     m.DeliveryTime,
		IsFeatured:       m.IsFeatured,
		StockQuantity:    m.StockQuantity,
		MinOrderQuantity: m.MinOrderQuantity,
		IsActive:         m.IsActive,
	}
	if m.CostPrice.Valid {
		cost := m.CostPrice.Decimal
		p.CostPrice = &cost
	}
	return p
}

// FromDomain populates the persistence model from a domain Product entity
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainOwnedEntity(p.OwnedEntity)
	m.CompanyID = p.CompanyID
	m.CategoryID = p.CategoryID
	m.SubcategoryID = p.SubcategoryID
	m.TaxID = p.TaxID
	m.Name = p.Name
	m.Description = p.Description
	m.ProductType = p.ProductType
	m.SKU = p.SKU
	m.UnitPrice = p.UnitPrice
	m.CostPrice = decimal.NullDecimal{}
	if p.CostPrice != nil {
		m.CostPrice = decimal.NewNullDecimal(*p.CostPrice)
	}
	m.Manufacturer = p.Manufacturer
	m.DeliveryTime = p.DeliveryTime
	m.IsFeatured = p.IsFeatured
	m.StockQuantity = p.StockQuantity
	m.MinOrderQuantity = p.MinOrderQuantity
	m.IsActive = p.IsActive
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}

// ProductImageModel is the persistence model for the ProductImage domain entity
type ProductImageModel struct {
	BaseModel
	ProductID   int64  `gorm:"not null;index"`
	StorageKey  string `gorm:"type:varchar(255);not null;uniqueIndex"`
	ContentType string `gorm:"type:varchar(50);not null"`
	IsPrimary   bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (ProductImageModel) TableName() string {
	return "product_images"
}

// ToDomain converts the persistence model to a domain ProductImage entity
func (m *ProductImageModel) ToDomain() *catalog.ProductImage {
	return &catalog.ProductImage{
		BaseEntity:  m.BaseModel.ToDomain(),
		ProductID:   m.ProductID,
		StorageKey:  m.StorageKey,
		ContentType: m.ContentType,
		IsPrimary:   m.IsPrimary,
	}
}

// FromDomain populates the persistence model from a domain ProductImage entity
func (m *ProductImageModel) FromDomain(i *catalog.ProductImage) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.ProductID = i.ProductID
	m.StorageKey = i.StorageKey
	m.ContentType = i.ContentType
	m.IsPrimary = i.IsPrimary
}
