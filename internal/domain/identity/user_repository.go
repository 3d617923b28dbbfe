package identity

import (
	"context"

	"github.com/erp/bizhub/internal/domain/shared"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]User, int64, error)
	FindByRole(ctx context.Context, role Role) ([]User, error)
	FindByUserType(ctx context.Context, userType UserType) ([]User, error)
	Save(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) error
}
