package handler

import (
	"time"

	identityapp "github.com/erp/bizhub/internal/application/identity"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/interfaces/http/dto"
	"github.com/erp/bizhub/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest is the self-registration body
type RegisterRequest struct {
	Username        string `json:"username" binding:"required,min=3,max=150"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8,max=128"`
	PasswordConfirm string `json:"password_confirm" binding:"required"`
	FirstName       string `json:"first_name" binding:"max=150"`
	LastName        string `json:"last_name" binding:"max=150"`
	Role            string `json:"role"`
	UserType        string `json:"user_type"`
}

// LoginRequest is the login body
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// LogoutRequest optionally carries the refresh token to revoke with the session
type LogoutRequest struct {
	Refresh string `json:"refresh"`
}

// UsernameAvailability is the check-username response
type UsernameAvailability struct {
	Username  string `json:"username"`
	Available bool   `json:"available"`
}

// Register godoc
// @Summary  Register a new account
// @Tags     auth
// @Router   /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Register(c.Request.Context(), identityapp.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Role:            identity.Role(req.Role),
		UserType:        identity.UserType(req.UserType),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// Login godoc
// @Summary  Exchange credentials for a token pair
// @Tags     auth
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), identityapp.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Refresh godoc
// @Summary  Rotate a refresh token
// @Tags     auth
// @Router   /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if !h.bindJSON(c, &req) {
		return
	}

	tokens, err := h.authService.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tokens)
}

// Logout revokes the current access token and, when given, the refresh token
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication credentials were not provided")
		return
	}

	var req LogoutRequest
	if !h.bindJSON(c, &req) {
		return
	}

	input := identityapp.LogoutInput{
		UserID:       claims.UserID,
		AccessJTI:    claims.ID,
		RefreshToken: req.Refresh,
	}
	input.AccessExpires = time.Now()
	if claims.ExpiresAt != nil {
		input.AccessExpires = claims.ExpiresAt.Time
	}

	if err := h.authService.Logout(c.Request.Context(), input); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.MessageResponse{Message: "Successfully logged out"})
}

// CheckUsername reports whether ?username= is still free
func (h *AuthHandler) CheckUsername(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		h.BadRequest(c, "username: This field is required")
		return
	}

	available, err := h.authService.UsernameAvailable(c.Request.Context(), username)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, UsernameAvailability{Username: username, Available: available})
}

// Me returns the authenticated user
func (h *AuthHandler) Me(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	info, err := h.authService.Me(c.Request.Context(), scope.UserID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, info)
}
