package models

import (
	"time"

	"github.com/erp/bizhub/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity
type UserModel struct {
	BaseModel
	Username     string            `gorm:"type:varchar(150);not null;uniqueIndex"`
	Email        string            `gorm:"type:varchar(254);index"`
	PasswordHash string            `gorm:"type:varchar(255);not null"`
	FirstName    string            `gorm:"type:varchar(150)"`
	LastName     string            `gorm:"type:varchar(150)"`
	Role         identity.Role     `gorm:"type:varchar(30);not null;default:'contact_user';index"`
	UserType     identity.UserType `gorm:"type:varchar(20);not null;default:'buyer';index"`
	Phone        string            `gorm:"type:varchar(20)"`
	Address      string            `gorm:"type:text"`
	City         string            `gorm:"type:varchar(100)"`
	State        string            `gorm:"type:varchar(100)"`
	PostalCode   string            `gorm:"type:varchar(10)"`
	BusinessName string            `gorm:"type:varchar(200)"`
	BusinessType string            `gorm:"type:varchar(100)"`
	IsVerified   bool              `gorm:"not null;default:false"`
	IsActive     bool              `gorm:"not null"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Role:         m.Role,
		UserType:     m.UserType,
		Phone:        m.Phone,
		Address:      m.Address,
		City:         m.City,
		State:        m.State,
		PostalCode:   m.PostalCode,
		BusinessName: m.BusinessName,
		BusinessType: m.BusinessType,
		IsVerified:   m.IsVerified,
		IsActive:     m.IsActive,
		LastLoginAt:  m.LastLoginAt,
	}
}

// FromDomain populates the persistence model from a domain User entity
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Username = u.Username
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.FirstName = u.FirstName
	m.LastName = u.LastName
	m.Role = u.Role
	m.UserType = u.UserType
	m.Phone = u.Phone
	m.Address = u.Address
	m.City = u.City
	m.State = u.State
	m.PostalCode = u.PostalCode
	m.BusinessName = u.BusinessName
	m.BusinessType = u.BusinessType
	m.IsVerified = u.IsVerified
	m.IsActive = u.IsActive
	m.LastLoginAt = u.LastLoginAt
}

// UserModelFromDomain creates a new persistence model from a domain User entity
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
