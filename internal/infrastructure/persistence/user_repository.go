package persistence

import (
	"context"
	"strings"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

var userList = listSpec{
	table:         "users",
	resource:      identity.ResourceUsers,
	searchColumns: []string{"users.username", "users.email", "users.first_name", "users.last_name", "users.business_name"},
	filterColumns: map[string]string{
		"role":        "users.role",
		"user_type":   "users.user_type",
		"is_active":   "users.is_active",
		"is_verified": "users.is_verified",
	},
	sortFields:  UserSortFields,
	defaultSort: "created_at",
	defaultDir:  "DESC",
}

// GormUserRepository implements identity.UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id int64) (*identity.User, error) {
	var m models.UserModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "user")
	}
	return m.ToDomain(), nil
}

// FindByUsername finds a user by exact username
func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	var m models.UserModel
	err := r.db.WithContext(ctx).
		Where("username = ?", strings.TrimSpace(username)).
		First(&m).Error
	if err != nil {
		return nil, translateError(err, "user")
	}
	return m.ToDomain(), nil
}

// ExistsByUsername checks whether a username is taken
func (r *GormUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("username = ?", strings.TrimSpace(username)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll lists users matching the filter
func (r *GormUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, int64, error) {
	var rows []models.UserModel
	build := func() *gorm.DB {
		return userList.filtered(r.db.WithContext(ctx).Model(&models.UserModel{}), filter)
	}
	total, err := userList.findPage(build, filter, &rows, nil)
	if err != nil {
		return nil, 0, err
	}
	users := make([]identity.User, len(rows))
	for i := range rows {
		users[i] = *rows[i].ToDomain()
	}
	return users, total, nil
}

// FindByRole lists active users with a role
func (r *GormUserRepository) FindByRole(ctx context.Context, role identity.Role) ([]identity.User, error) {
	return r.findActive(ctx, "role = ?", role)
}

// FindByUserType lists active users of a type
func (r *GormUserRepository) FindByUserType(ctx context.Context, userType identity.UserType) ([]identity.User, error) {
	return r.findActive(ctx, "user_type = ?", userType)
}

func (r *GormUserRepository) findActive(ctx context.Context, cond string, arg interface{}) ([]identity.User, error) {
	var rows []models.UserModel
	err := r.db.WithContext(ctx).
		Where(cond, arg).
		Where("is_active = ?", true).
		Order("username ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	users := make([]identity.User, len(rows))
	for i := range rows {
		users[i] = *rows[i].ToDomain()
	}
	return users, nil
}

// Save creates or updates a user
func (r *GormUserRepository) Save(ctx context.Context, user *identity.User) error {
	m := models.UserModelFromDomain(user)
	if err := saveModel(r.db.WithContext(ctx), m, user.IsNew()); err != nil {
		return translateError(err, "user")
	}
	user.ID = m.ID
	return nil
}

// Delete removes a user
func (r *GormUserRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.UserModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ identity.UserRepository = (*GormUserRepository)(nil)
