package models

import (
	"github.com/erp/bizhub/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// CompanyModel is the persistence model for the Company domain entity
type CompanyModel struct {
	OwnedModel
	Name       string `gorm:"type:varchar(200);not null"`
	Address    string `gorm:"type:text"`
	City       string `gorm:"type:varchar(100)"`
	State      string `gorm:"type:varchar(100)"`
	Country    string `gorm:"type:varchar(100);not null;default:'India'"`
	PostalCode string `gorm:"type:varchar(10)"`
	Phone      string `gorm:"type:varchar(20)"`
	Email      string `gorm:"type:varchar(254)"`
	TaxID      string `gorm:"type:varchar(50);not null;uniqueIndex"`
	LogoKey    string `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the persistence model to a domain Company entity
func (m *CompanyModel) ToDomain() *partner.Company {
	return &partner.Company{
		OwnedEntity: m.ToOwned(),
		Name:        m.Name,
		Address: partner.Address{
			Street:     m.Address,
			City:       m.City,
			State:      m.State,
			Country:    m.Country,
			PostalCode: m.PostalCode,
		},
		Phone:   m.Phone,
		Email:   m.Email,
		TaxID:   m.TaxID,
		LogoKey: m.LogoKey,
	}
}

// FromDomain populates the persistence model from a domain Company entity
func (m *CompanyModel) FromDomain(c *partner.Company) {
	m.FromDomainOwnedEntity(c.OwnedEntity)
	m.Name = c.Name
	m.Address = c.Address.Street
	m.City = c.Address.City
	m.State = c.Address.State
	m.Country = c.Address.Country
	m.PostalCode = c.Address.PostalCode
	m.Phone = c.Phone
	m.Email = c.Email
	m.TaxID = c.TaxID
	m.LogoKey = c.LogoKey
}

// CompanyModelFromDomain creates a new persistence model from a domain Company entity
func CompanyModelFromDomain(c *partner.Company) *CompanyModel {
	m := &CompanyModel{}
	m.FromDomain(c)
	return m
}

// ContactModel is the persistence model for the Contact domain entity
type ContactModel struct {
	OwnedModel
	CompanyID   int64               `gorm:"not null;index"`
	CompanyName string              `gorm:"->;-:migration"`
	ContactType partner.ContactType `gorm:"type:varchar(20);not null;index"`
	Name        string              `gorm:"type:varchar(200);not null"`
	Email       string              `gorm:"type:varchar(254)"`
	Phone       string              `gorm:"type:varchar(20)"`
	Address     string              `gorm:"type:text"`
	City        string              `gorm:"type:varchar(100)"`
	State       string              `gorm:"type:varchar(100)"`
	Country     string              `gorm:"type:varchar(100);not null;default:'India'"`
	PostalCode  string              `gorm:"type:varchar(10)"`
	TaxID       string              `gorm:"type:varchar(50)"`
	Notes       string              `gorm:"type:text"`
	IsActive    bool                `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ContactModel) TableName() string {
	return "contacts"
}

// ToDomain converts the persistence model to a domain Contact entity
func (m *ContactModel) ToDomain() *partner.Contact {
	return &partner.Contact{
		OwnedEntity: m.ToOwned(),
		CompanyID:   m.CompanyID,
		CompanyName: m.CompanyName,
		ContactType: m.ContactType,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Address: partner.Address{
			Street:     m.Address,
			City:       m.City,
			State:      m.State,
			Country:    m.Country,
			PostalCode: m.PostalCode,
		},
		TaxID:    m.TaxID,
		Notes:    m.Notes,
		IsActive: m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Contact entity
func (m *ContactModel) FromDomain(c *partner.Contact) {
	m.FromDomainOwnedEntity(c.OwnedEntity)
	m.CompanyID = c.CompanyID
	m.ContactType = c.ContactType
	m.Name = c.Name
	m.Email = c.Email
	m.Phone = c.Phone
	m.Address = c.Address.Street
	m.City = c.Address.City
	m.State = c.Address.State
	m.Country = c.Address.Country
	m.PostalCode = c.Address.PostalCode
	m.TaxID = c.TaxID
	m.Notes = c.Notes
	m.IsActive = c.IsActive
}

// ContactModelFromDomain creates a new persistence model from a domain Contact entity
func ContactModelFromDomain(c *partner.Contact) *ContactModel {
	m := &ContactModel{}
	m.FromDomain(c)
	return m
}

// SellerProfileModel is the persistence model for the SellerProfile domain entity
type SellerProfileModel struct {
	BaseModel
	UserID         int64             `gorm:"not null;uniqueIndex"`
	BusinessName   string            `gorm:"type:varchar(200);not null"`
	BusinessType   string            `gorm:"type:varchar(100)"`
	GSTNumber      string            `gorm:"column:gst_number;type:varchar(15)"`
	PANNumber      string            `gorm:"column:pan_number;type:varchar(10)"`
	BankDetails    map[string]string `gorm:"type:text;serializer:json"`
	CommissionRate decimal.Decimal   `gorm:"type:decimal(5,2);not null;default:10"`
	IsVerified     bool              `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (SellerProfileModel) TableName() string {
	return "seller_profiles"
}

// ToDomain converts the persistence model to a domain SellerProfile entity
func (m *SellerProfileModel) ToDomain() *partner.SellerProfile {
	return &partner.SellerProfile{
		BaseEntity:     m.BaseModel.ToDomain(),
		UserID:         m.UserID,
		BusinessName:   m.BusinessName,
		BusinessType:   m.BusinessType,
		GSTNumber:      m.GSTNumber,
		PANNumber:      m.PANNumber,
		BankDetails:    m.BankDetails,
		CommissionRate: m.CommissionRate,
		IsVerified:     m.IsVerified,
	}
}

// FromDomain populates the persistence model from a domain SellerProfile entity
func (m *SellerProfileModel) FromDomain(p *partner.SellerProfile) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.UserID = p.UserID
	m.BusinessName = p.BusinessName
	m.BusinessType = p.BusinessType
	m.GSTNumber = p.GSTNumber
	m.PANNumber = p.PANNumber
	m.BankDetails = p.BankDetails
	m.CommissionRate = p.CommissionRate
	m.IsVerified = p.IsVerified
}

// SellerProfileModelFromDomain creates a new persistence model from a domain SellerProfile entity
func SellerProfileModelFromDomain(p *partner.SellerProfile) *SellerProfileModel {
	m := &SellerProfileModel{}
	m.FromDomain(p)
	return m
}
