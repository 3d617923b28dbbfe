package partner

import (
	"strings"

	"github.com/erp/bizhub/internal/domain/shared"
)

// ContactType says whether a contact buys from us, sells to us, or both
type ContactType string

const (
	ContactTypeCustomer ContactType = "customer"
	ContactTypeSupplier ContactType = "supplier"
	ContactTypeBoth     ContactType = "both"
)

// IsValid checks if the contact type is known
func (t ContactType) IsValid() bool {
	switch t {
	case ContactTypeCustomer, ContactTypeSupplier, ContactTypeBoth:
		return true
	}
	return false
}

// IsCustomer reports whether the type allows selling to the contact
func (t ContactType) IsCustomer() bool {
	return t == ContactTypeCustomer || t == ContactTypeBoth
}

// IsSupplier reports whether the type allows buying from the contact
func (t ContactType) IsSupplier() bool {
	return t == ContactTypeSupplier || t == ContactTypeBoth
}

// Contact is a customer or supplier of a company
type Contact struct {
	shared.OwnedEntity
	CompanyID   int64
	CompanyName string // read-only, resolved on load
	ContactType ContactType
	Name        string
	Email       string
	Phone       string
	Address     Address
	TaxID       string
	Notes       string
	IsActive    bool
}

// ContactDetails is the mutable part of a contact
type ContactDetails struct {
	CompanyID   int64
	ContactType ContactType
	Name        string
	Email       string
	Phone       string
	Address     Address
	TaxID       string
	Notes       string
	IsActive    *bool
}

// NewContact creates an active contact
func NewContact(ownerID int64, d ContactDetails) (*Contact, error) {
	c := &Contact{OwnedEntity: shared.NewOwnedEntity(ownerID), IsActive: true}
	if err := c.Update(d); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the contact details
func (c *Contact) Update(d ContactDetails) error {
	if d.CompanyID <= 0 {
		return shared.NewValidationError("company_id is required")
	}
	if !d.ContactType.IsValid() {
		return shared.NewValidationError("contact_type must be customer, supplier or both")
	}
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return shared.NewValidationError("contact name is required")
	}
	c.CompanyID = d.CompanyID
	c.ContactType = d.ContactType
	c.Name = name
	c.Email = strings.ToLower(strings.TrimSpace(d.Email))
	c.Phone = strings.TrimSpace(d.Phone)
	c.Address = d.Address.normalized()
	c.TaxID = strings.TrimSpace(d.TaxID)
	c.Notes = d.Notes
	if d.IsActive != nil {
		c.IsActive = *d.IsActive
	}
	c.Touch()
	return nil
}

// RequireSupplier fails unless the contact can be bought from
func (c *Contact) RequireSupplier() error {
	if !c.ContactType.IsSupplier() {
		return shared.NewValidationError("contact %d is not a supplier", c.ID)
	}
	return nil
}

// RequireCustomer fails unless the contact can be sold to
func (c *Contact) RequireCustomer() error {
	if !c.ContactType.IsCustomer() {
		return shared.NewValidationError("contact %d is not a customer", c.ID)
	}
	return nil
}
