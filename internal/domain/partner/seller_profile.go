package partner

import (
	"strings"

	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultCommissionRate is the marketplace commission in percent
var DefaultCommissionRate = decimal.NewFromInt(10)

// SellerProfile holds the business details of a marketplace seller.
// A user has at most one profile.
type SellerProfile struct {
	shared.BaseEntity
	UserID         int64
	BusinessName   string
	BusinessType   string
	GSTNumber      string
	PANNumber      string
	BankDetails    map[string]string
	CommissionRate decimal.Decimal
	IsVerified     bool
}

// SellerProfileDetails is the seller-editable part of the profile
type SellerProfileDetails struct {
	BusinessName string
	BusinessType string
	GSTNumber    string
	PANNumber    string
	BankDetails  map[string]string
}

// NewSellerProfile creates an unverified profile with the default commission rate
func NewSellerProfile(userID int64, d SellerProfileDetails) (*SellerProfile, error) {
	p := &SellerProfile{
		BaseEntity:     shared.NewBaseEntity(),
		UserID:         userID,
		CommissionRate: DefaultCommissionRate,
	}
	if err := p.Update(d); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces the seller-editable details
func (p *SellerProfile) Update(d SellerProfileDetails) error {
	name := strings.TrimSpace(d.BusinessName)
	if name == "" {
		return shared.NewValidationError("business_name is required")
	}
	if len(d.GSTNumber) > 15 {
		return shared.NewValidationError("gst_number cannot exceed 15 characters")
	}
	if len(d.PANNumber) > 10 {
		return shared.NewValidationError("pan_number cannot exceed 10 characters")
	}
	p.BusinessName = name
	p.BusinessType = strings.TrimSpace(d.BusinessType)
	p.GSTNumber = strings.ToUpper(strings.TrimSpace(d.GSTNumber))
	p.PANNumber = strings.ToUpper(strings.TrimSpace(d.PANNumber))
	p.BankDetails = d.BankDetails
	if p.BankDetails == nil {
		p.BankDetails = map[string]string{}
	}
	p.Touch()
	return nil
}

// Verify marks the seller as verified
func (p *SellerProfile) Verify() {
	p.IsVerified = true
	p.Touch()
}
