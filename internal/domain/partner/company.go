package partner

import (
	"strings"

	"github.com/erp/bizhub/internal/domain/shared"
)

// DefaultCountry is used when an address omits the country
const DefaultCountry = "India"

// Address is a postal address shared by companies and contacts
type Address struct {
	Street     string
	City       string
	State      string
	Country    string
	PostalCode string
}

func (a Address) normalized() Address {
	a.Street = strings.TrimSpace(a.Street)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.TrimSpace(a.State)
	a.Country = strings.TrimSpace(a.Country)
	if a.Country == "" {
		a.Country = DefaultCountry
	}
	a.PostalCode = strings.TrimSpace(a.PostalCode)
	return a
}

// Company is the tenant root: products, contacts and documents belong to one
type Company struct {
	shared.OwnedEntity
	Name    string
	Address Address
	Phone   string
	Email   string
	TaxID   string
	LogoKey string
}

// CompanyDetails is the mutable part of a company
type CompanyDetails struct {
	Name    string
	Address Address
	Phone   string
	Email   string
	TaxID   string
}

// NewCompany creates a company owned by ownerID
func NewCompany(ownerID int64, d CompanyDetails) (*Company, error) {
	c := &Company{OwnedEntity: shared.NewOwnedEntity(ownerID)}
	if err := c.Update(d); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the company details
func (c *Company) Update(d CompanyDetails) error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return shared.NewValidationError("company name is required")
	}
	taxID := strings.TrimSpace(d.TaxID)
	if taxID == "" {
		return shared.NewValidationError("company tax_id is required")
	}
	c.Name = name
	c.TaxID = taxID
	c.Address = d.Address.normalized()
	c.Phone = strings.TrimSpace(d.Phone)
	c.Email = strings.ToLower(strings.TrimSpace(d.Email))
	c.Touch()
	return nil
}
