package handler

import (
	partnerapp "github.com/erp/bizhub/internal/application/partner"
	"github.com/gin-gonic/gin"
)

// CompanyHandler serves /companies
type CompanyHandler = ResourceHandler[partnerapp.CompanyRequest, partnerapp.CompanyResponse]

// NewCompanyHandler creates a CompanyHandler
func NewCompanyHandler(service *partnerapp.CompanyService) *CompanyHandler {
	return NewResourceHandler[partnerapp.CompanyRequest, partnerapp.CompanyResponse](service)
}

// ContactHandler serves /contacts
type ContactHandler = ResourceHandler[partnerapp.ContactRequest, partnerapp.ContactResponse]

// NewContactHandler creates a ContactHandler
func NewContactHandler(service *partnerapp.ContactService) *ContactHandler {
	return NewResourceHandler[partnerapp.ContactRequest, partnerapp.ContactResponse](service)
}

// SellerProfileHandler serves /seller-profiles
type SellerProfileHandler struct {
	*ResourceHandler[partnerapp.SellerProfileRequest, partnerapp.SellerProfileResponse]
	service *partnerapp.SellerProfileService
}

// NewSellerProfileHandler creates a SellerProfileHandler
func NewSellerProfileHandler(service *partnerapp.SellerProfileService) *SellerProfileHandler {
	return &SellerProfileHandler{
		ResourceHandler: NewResourceHandler[partnerapp.SellerProfileRequest, partnerapp.SellerProfileResponse](service),
		service:         service,
	}
}

// Verify marks a seller profile as verified (admin only)
func (h *SellerProfileHandler) Verify(c *gin.Context) {
	byID(&h.BaseHandler, c, h.service.Verify)
}
