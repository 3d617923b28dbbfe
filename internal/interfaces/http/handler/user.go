package handler

import (
	identityapp "github.com/erp/bizhub/internal/application/identity"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	BaseHandler
	userService *identityapp.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *identityapp.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UserRequest is the admin create/update body
type UserRequest struct {
	Username     string `json:"username" binding:"omitempty,min=3,max=150"`
	Email        string `json:"email" binding:"omitempty,email"`
	Password     string `json:"password" binding:"omitempty,min=8,max=128"`
	Role         string `json:"role"`
	UserType     string `json:"user_type"`
	IsVerified   *bool  `json:"is_verified"`
	IsActive     *bool  `json:"is_active"`
	FirstName    string `json:"first_name" binding:"max=150"`
	LastName     string `json:"last_name" binding:"max=150"`
	Phone        string `json:"phone" binding:"max=20"`
	Address      string `json:"address"`
	City         string `json:"city" binding:"max=100"`
	State        string `json:"state" binding:"max=100"`
	PostalCode   string `json:"postal_code" binding:"max=20"`
	BusinessName string `json:"business_name" binding:"max=200"`
	BusinessType string `json:"business_type" binding:"max=100"`
}

func (r UserRequest) input() identityapp.UserInput {
	return identityapp.UserInput{
		Username:   r.Username,
		Email:      r.Email,
		Password:   r.Password,
		Role:       identity.Role(r.Role),
		UserType:   identity.UserType(r.UserType),
		IsVerified: r.IsVerified,
		IsActive:   r.IsActive,
		Profile: identity.Profile{
			FirstName:    r.FirstName,
			LastName:     r.LastName,
			Phone:        r.Phone,
			Address:      r.Address,
			City:         r.City,
			State:        r.State,
			PostalCode:   r.PostalCode,
			BusinessName: r.BusinessName,
			BusinessType: r.BusinessType,
		},
	}
}

// RolesInfo lists selectable roles and user types together with the caller's flags
func (h *UserHandler) RolesInfo(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	info, err := h.userService.RolesInfo(c.Request.Context(), scope.UserID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, info)
}

// ByRole lists the users holding :role
func (h *UserHandler) ByRole(c *gin.Context) {
	group, err := h.userService.ByRole(c.Request.Context(), identity.Role(c.Param("role")))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, group)
}

// ByType lists the users of user type :type
func (h *UserHandler) ByType(c *gin.Context) {
	group, err := h.userService.ByType(c.Request.Context(), identity.UserType(c.Param("type")))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, group)
}

// List lists users visible to the caller
func (h *UserHandler) List(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	page, err := h.userService.List(c.Request.Context(), scope, ParseFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// Get returns one user
func (h *UserHandler) Get(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	user, err := h.userService.Get(c.Request.Context(), scope, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// Create creates a user
func (h *UserHandler) Create(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	var req UserRequest
	if !h.bindJSON(c, &req) {
		return
	}
	user, err := h.userService.Create(c.Request.Context(), scope, req.input())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, user)
}

// Update updates a user
func (h *UserHandler) Update(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req UserRequest
	if !h.bindJSON(c, &req) {
		return
	}
	user, err := h.userService.Update(c.Request.Context(), scope, id, req.input())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// Delete deletes a user
func (h *UserHandler) Delete(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	if err := h.userService.Delete(c.Request.Context(), scope, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
