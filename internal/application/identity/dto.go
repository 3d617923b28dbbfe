package identity

import (
	"time"

	"github.com/erp/bizhub/internal/domain/identity"
)

// RegisterInput contains the input for self-registration
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	FirstName       string
	LastName        string
	Role            identity.Role
	UserType        identity.UserType
}

// LoginInput contains the input for user login
type LoginInput struct {
	Username string
	Password string
}

// Tokens is an issued access/refresh pair
type Tokens struct {
	AccessToken           string    `json:"access"`
	RefreshToken          string    `json:"refresh"`
	AccessTokenExpiresAt  time.Time `json:"access_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_expires_at"`
	TokenType             string    `json:"token_type"`
}

// AuthResult is returned by register and login
type AuthResult struct {
	User   UserInfo `json:"user"`
	Tokens Tokens   `json:"tokens"`
}

// LogoutInput identifies the tokens to revoke
type LogoutInput struct {
	UserID        int64
	AccessJTI     string
	AccessExpires time.Time
	RefreshToken  string
}

// UserInfo is the public view of a user
type UserInfo struct {
	ID              int64      `json:"id"`
	Username        string     `json:"username"`
	Email           string     `json:"email"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Role            string     `json:"role"`
	RoleDisplay     string     `json:"role_display"`
	UserType        string     `json:"user_type"`
	UserTypeDisplay string     `json:"user_type_display"`
	Phone           string     `json:"phone"`
	Address         string     `json:"address"`
	City            string     `json:"city"`
	State           string     `json:"state"`
	PostalCode      string     `json:"postal_code"`
	BusinessName    string     `json:"business_name"`
	BusinessType    string     `json:"business_type"`
	IsVerified      bool       `json:"is_verified"`
	IsActive        bool       `json:"is_active"`
	LastLoginAt     *time.Time `json:"last_login_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ToUserInfo converts a domain user
func ToUserInfo(u *identity.User) UserInfo {
	return UserInfo{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Role:            string(u.Role),
		RoleDisplay:     Label(string(u.Role)),
		UserType:        string(u.UserType),
		UserTypeDisplay: Label(string(u.UserType)),
		Phone:           u.Phone,
		Address:         u.Address,
		City:            u.City,
		State:           u.State,
		PostalCode:      u.PostalCode,
		BusinessName:    u.BusinessName,
		BusinessType:    u.BusinessType,
		IsVerified:      u.IsVerified,
		IsActive:        u.IsActive,
		LastLoginAt:     u.LastLoginAt,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// ToUserInfos converts a slice of users
func ToUserInfos(users []identity.User) []UserInfo {
	out := make([]UserInfo, len(users))
	for i := range users {
		out[i] = ToUserInfo(&users[i])
	}
	return out
}

// UserInput is the admin-editable part of a user
type UserInput struct {
	Username   string
	Email      string
	Password   string
	Role       identity.Role
	UserType   identity.UserType
	IsVerified *bool
	IsActive   *bool
	identity.Profile
}

// Choice is a value with its display label
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CurrentUserFlags describes the caller in the roles-info response
type CurrentUserFlags struct {
	Username     string `json:"username"`
	Role         string `json:"role"`
	UserType     string `json:"user_type"`
	IsAdmin      bool   `json:"is_admin"`
	IsBuyer      bool   `json:"is_buyer"`
	IsSeller     bool   `json:"is_seller"`
	IsAccountant bool   `json:"is_accountant"`
}

// RolesInfo lists the selectable roles and user types
type RolesInfo struct {
	Roles       []Choice         `json:"roles"`
	UserTypes   []Choice         `json:"user_types"`
	CurrentUser CurrentUserFlags `json:"current_user"`
}

// UsersByGroup is the response of the by-role and by-type lookups
type UsersByGroup struct {
	Role     string     `json:"role,omitempty"`
	UserType string     `json:"user_type,omitempty"`
	Count    int        `json:"count"`
	Users    []UserInfo `json:"users"`
}
