package models

import (
	"github.com/erp/bizhub/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// StockMovementModel is the persistence model for the append-only stock ledger
type StockMovementModel struct {
	OwnedModel
	CompanyID     int64                   `gorm:"not null;index"`
	ProductID     int64                   `gorm:"not null;index"`
	ProductName   string                  `gorm:"->;-:migration"`
	MovementType  inventory.MovementType  `gorm:"type:varchar(20);not null;index"`
	Quantity      decimal.Decimal         `gorm:"type:decimal(14,3);not null"`
	ReferenceType inventory.ReferenceType `gorm:"type:varchar(20);not null;default:'manual'"`
	ReferenceID   *int64                  `gorm:"index"`
	Notes         string                  `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (StockMovementModel) TableName() string {
	return "stock_movements"
}

// ToDomain converts the persistence model to a domain StockMovement
func (m *StockMovementModel) ToDomain() *inventory.StockMovement {
	return &inventory.StockMovement{
		OwnedEntity:   m.ToOwned(),
		CompanyID:     m.CompanyID,
		ProductID:     m.ProductID,
		ProductName:   m.ProductName,
		MovementType:  m.MovementType,
		Quantity:      m.Quantity,
		ReferenceType: m.ReferenceType,
		ReferenceID:   m.ReferenceID,
		Notes:         m.Notes,
	}
}

// FromDomain populates the persistence model from a domain StockMovement
func (m *StockMovementModel) FromDomain(s *inventory.StockMovement) {
	m.FromDomainOwnedEntity(s.OwnedEntity)
	m.CompanyID = s.CompanyID
	m.ProductID = s.ProductID
	m.MovementType = s.MovementType
	m.Quantity = s.Quantity
	m.ReferenceType = s.ReferenceType
	m.ReferenceID = s.ReferenceID
	m.Notes = s.Notes
}
