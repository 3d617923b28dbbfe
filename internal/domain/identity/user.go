package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/erp/bizhub/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_\-.@+]+$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	letterRegex   = regexp.MustCompile(`[a-zA-Z]`)
	numberRegex   = regexp.MustCompile(`[0-9]`)
)

// User is an account that can authenticate against the API
type User struct {
	shared.BaseEntity
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	UserType     UserType
	Phone        string
	Address      string
	City         string
	State        string
	PostalCode   string
	BusinessName string
	BusinessType string
	IsVerified   bool
	IsActive     bool
	LastLoginAt  *time.Time
}

// Profile carries the optional descriptive fields of a user
type Profile struct {
	FirstName    string
	LastName     string
	Phone        string
	Address      string
	City         string
	State        string
	PostalCode   string
	BusinessName string
	BusinessType string
}

// NewUser creates an active user with a hashed password
func NewUser(username, email, password string, role Role, userType UserType) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return nil, err
		}
	}
	if role == "" {
		role = RoleContactUser
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role: "+string(role))
	}
	if userType == "" {
		userType = UserTypeBuyer
	}
	if !userType.IsValid() {
		return nil, shared.NewDomainError("INVALID_USER_TYPE", "Unknown user type: "+string(userType))
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Username:     strings.TrimSpace(username),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hash,
		Role:         role,
		UserType:     userType,
		IsActive:     true,
	}, nil
}

// ApplyProfile overwrites the descriptive fields
func (u *User) ApplyProfile(p Profile) {
	u.FirstName = strings.TrimSpace(p.FirstName)
	u.LastName = strings.TrimSpace(p.LastName)
	u.Phone = p.Phone
	u.Address = p.Address
	u.City = p.City
	u.State = p.State
	u.PostalCode = p.PostalCode
	u.BusinessName = p.BusinessName
	u.BusinessType = p.BusinessType
	u.Touch()
}

// SetEmail validates and sets the email address
func (u *User) SetEmail(email string) error {
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}
	u.Email = strings.ToLower(strings.TrimSpace(email))
	u.Touch()
	return nil
}

// ChangeRole assigns a new role and user type
func (u *User) ChangeRole(role Role, userType UserType) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown role: "+string(role))
	}
	if !userType.IsValid() {
		return shared.NewDomainError("INVALID_USER_TYPE", "Unknown user type: "+string(userType))
	}
	u.Role = role
	u.UserType = userType
	u.Touch()
	return nil
}

// SetPassword replaces the password hash
func (u *User) SetPassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	u.PasswordHash = hash
	u.Touch()
	return nil
}

// VerifyPassword checks a plain password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// RecordLogin stamps the last successful login
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLoginAt = &now
}

// Deactivate blocks further logins
func (u *User) Deactivate() {
	u.IsActive = false
	u.Touch()
}

// IsAdmin reports whether the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsSeller reports whether the user sells on the marketplace
func (u *User) IsSeller() bool {
	return u.UserType == UserTypeSeller
}

// IsBuyer reports whether the user buys on the storefront
func (u *User) IsBuyer() bool {
	return u.UserType == UserTypeBuyer
}

// IsAccountant reports whether the user is an accountant
func (u *User) IsAccountant() bool {
	return u.UserType == UserTypeAccountant
}

// Scope returns the row visibility predicate for this user
func (u *User) Scope() Scope {
	return NewScope(u.ID, u.Role)
}

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if len(username) < 3 {
		return shared.NewDomainError("INVALID_USERNAME", "Username must be at least 3 characters")
	}
	if len(username) > 150 {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot exceed 150 characters")
	}
	if !usernameRegex.MatchString(username) {
		return shared.NewDomainError("INVALID_USERNAME", "Username can only contain letters, numbers and @.+-_")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}
	if !letterRegex.MatchString(password) || !numberRegex.MatchString(password) {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must contain at least one letter and one number")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 254 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 254 characters")
	}
	if !emailRegex.MatchString(strings.TrimSpace(email)) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
