package partner

import (
	"time"

	"github.com/erp/bizhub/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// AddressFields is the flattened postal address used by company and contact requests
type AddressFields struct {
	Address    string `json:"address" binding:"max=500"`
	City       string `json:"city" binding:"max=100"`
	State      string `json:"state" binding:"max=100"`
	Country    string `json:"country" binding:"max=100"`
	PostalCode string `json:"postal_code" binding:"max=20"`
}

func (a AddressFields) toDomain() partner.Address {
	return partner.Address{
		Street:     a.Address,
		City:       a.City,
		State:      a.State,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}

func addressFieldsOf(a partner.Address) AddressFields {
	return AddressFields{
		Address:    a.Street,
		City:       a.City,
		State:      a.State,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}

// =============================================================================
// Company DTOs
// =============================================================================

// CompanyRequest creates or replaces a company
type CompanyRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Phone string `json:"phone" binding:"max=20"`
	Email string `json:"email" binding:"omitempty,email,max=254"`
	TaxID string `json:"tax_id" binding:"required,max=50"`
	AddressFields
}

func (r CompanyRequest) details() partner.CompanyDetails {
	return partner.CompanyDetails{
		Name:    r.Name,
		Address: r.AddressFields.toDomain(),
		Phone:   r.Phone,
		Email:   r.Email,
		TaxID:   r.TaxID,
	}
}

// CompanyResponse is the API view of a company
type CompanyResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	TaxID string `json:"tax_id"`
	AddressFields
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCompanyResponse converts a domain company
func ToCompanyResponse(c *partner.Company) CompanyResponse {
	return CompanyResponse{
		ID:            c.ID,
		Name:          c.Name,
		Phone:         c.Phone,
		Email:         c.Email,
		TaxID:         c.TaxID,
		AddressFields: addressFieldsOf(c.Address),
		CreatedBy:     c.CreatedBy,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// =============================================================================
// Contact DTOs
// =============================================================================

// ContactRequest creates or replaces a contact
type ContactRequest struct {
	CompanyID   int64  `json:"company" binding:"required,gt=0"`
	ContactType string `json:"contact_type" binding:"required,oneof=customer supplier both"`
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Email       string `json:"email" binding:"omitempty,email,max=254"`
	Phone       string `json:"phone" binding:"max=20"`
	TaxID       string `json:"tax_id" binding:"max=50"`
	Notes       string `json:"notes"`
	IsActive    *bool  `json:"is_active"`
	AddressFields
}

func (r ContactRequest) details() partner.ContactDetails {
	return partner.ContactDetails{
		CompanyID:   r.CompanyID,
		ContactType: partner.ContactType(r.ContactType),
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Address:     r.AddressFields.toDomain(),
		TaxID:       r.TaxID,
		Notes:       r.Notes,
		IsActive:    r.IsActive,
	}
}

// ContactResponse is the API view of a contact
type ContactResponse struct {
	ID          int64  `json:"id"`
	CompanyID   int64  `json:"company"`
	CompanyName string `json:"company_name"`
	ContactType string `json:"contact_type"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	TaxID       string `json:"tax_id"`
	Notes       string `json:"notes"`
	IsActive    bool   `json:"is_active"`
	AddressFields
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToContactResponse converts a domain contact
func ToContactResponse(c *partner.Contact) ContactResponse {
	return ContactResponse{
		ID:            c.ID,
		CompanyID:     c.CompanyID,
		CompanyName:   c.CompanyName,
		ContactType:   string(c.ContactType),
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		TaxID:         c.TaxID,
		Notes:         c.Notes,
		IsActive:      c.IsActive,
		AddressFields: addressFieldsOf(c.Address),
		CreatedBy:     c.CreatedBy,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// =============================================================================
// Seller profile DTOs
// =============================================================================

// SellerProfileRequest creates or replaces the caller's seller profile
type SellerProfileRequest struct {
	BusinessName string            `json:"business_name" binding:"required,min=1,max=200"`
	BusinessType string            `json:"business_type" binding:"max=100"`
	GSTNumber    string            `json:"gst_number" binding:"max=15"`
	PANNumber    string            `json:"pan_number" binding:"max=10"`
	BankDetails  map[string]string `json:"bank_details"`
}

func (r SellerProfileRequest) details() partner.SellerProfileDetails {
	return partner.SellerProfileDetails{
		BusinessName: r.BusinessName,
		BusinessType: r.BusinessType,
		GSTNumber:    r.GSTNumber,
		PANNumber:    r.PANNumber,
		BankDetails:  r.BankDetails,
	}
}

// SellerProfileResponse is the API view of a seller profile
type SellerProfileResponse struct {
	ID             int64             `json:"id"`
	UserID         int64             `json:"user"`
	BusinessName   string            `json:"business_name"`
	BusinessType   string            `json:"business_type"`
	GSTNumber      string            `json:"gst_number"`
	PANNumber      string            `json:"pan_number"`
	BankDetails    map[string]string `json:"bank_details"`
	CommissionRate decimal.Decimal   `json:"commission_rate"`
	IsVerified     bool              `json:"is_verified"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// ToSellerProfileResponse converts a domain seller profile
func ToSellerProfileResponse(p *partner.SellerProfile) SellerProfileResponse {
	return SellerProfileResponse{
		ID:             p.ID,
		UserID:         p.UserID,
		BusinessName:   p.BusinessName,
		BusinessType:   p.BusinessType,
		GSTNumber:      p.GSTNumber,
		PANNumber:      p.PANNumber,
		BankDetails:    p.BankDetails,
		CommissionRate: p.CommissionRate,
		IsVerified:     p.IsVerified,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func mapSlice[T, R any](items []T, fn func(*T) R) []R {
	out := make([]R, len(items))
	for i := range items {
		out[i] = fn(&items[i])
	}
	return out
}
