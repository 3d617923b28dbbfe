package shared

import "time"

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() int64
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// BaseEntity provides common fields for all entities.
// IDs are assigned by the database on first save.
type BaseEntity struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() int64 {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (e *BaseEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// IsNew reports whether the entity has not been persisted yet
func (e *BaseEntity) IsNew() bool {
	return e.ID == 0
}

// Touch updates the modification timestamp
func (e *BaseEntity) Touch() {
	e.UpdatedAt = time.Now()
}

// NewBaseEntity creates a new unsaved base entity
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// OwnedEntity is an entity whose rows are scoped to the user that created them
type OwnedEntity struct {
	BaseEntity
	CreatedBy int64
}

// NewOwnedEntity creates a new unsaved entity owned by the given user
func NewOwnedEntity(ownerID int64) OwnedEntity {
	return OwnedEntity{
		BaseEntity: NewBaseEntity(),
		CreatedBy:  ownerID,
	}
}

// IsOwnedBy reports whether userID created this entity
func (e *OwnedEntity) IsOwnedBy(userID int64) bool {
	return e.CreatedBy == userID
}
