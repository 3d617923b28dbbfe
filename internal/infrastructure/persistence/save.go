package persistence

import (
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// saveModel inserts model when isNew, otherwise rewrites every writable column
// except created_at and omit. Associations are never written.
func saveModel(db *gorm.DB, model interface{}, isNew bool, omit ...string) error {
	if isNew {
		return db.Omit(clause.Associations).Create(model).Error
	}
	omit = append(omit, "created_at", clause.Associations)
	result := db.Model(model).Select("*").Omit(omit...).Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// firstScoped loads the row with id when scope can see it
func (s listSpec) firstScoped(q *gorm.DB, scope identity.Scope, id int64, dest interface{}) error {
	return s.where(q, scope, shared.Filter{}).
		Where(s.table+".id = ?", id).
		First(dest).Error
}

// deleteScoped removes the row with id when scope can see it
func (s listSpec) deleteScoped(db *gorm.DB, scope identity.Scope, id int64, model interface{}, what string) error {
	result := s.where(db, scope, shared.Filter{}).
		Where(s.table+".id = ?", id).
		Delete(model)
	if result.Error != nil {
		return translateError(result.Error, what)
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("NOT_FOUND", what+" not found")
	}
	return nil
}
