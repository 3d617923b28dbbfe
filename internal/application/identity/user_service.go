package identity

import (
	"context"
	"strings"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Label renders a snake_case enum value for display, e.g. operator_worker -> Operator Worker
func Label(value string) string {
	return titleCaser.String(strings.ReplaceAll(value, "_", " "))
}

// UserService manages user accounts. Mutations are restricted to admins.
type UserService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

func requireAdmin(scope identity.Scope) error {
	if !scope.IsAdmin() {
		return shared.NewDomainError("FORBIDDEN", "Only admins can manage users")
	}
	return nil
}

// RolesInfo lists the roles and user types with display labels
func (s *UserService) RolesInfo(ctx context.Context, userID int64) (*RolesInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	info := &RolesInfo{
		Roles:     make([]Choice, 0, len(identity.AllRoles)),
		UserTypes: make([]Choice, 0, len(identity.AllUserTypes)),
		CurrentUser: CurrentUserFlags{
			Username:     user.Username,
			Role:         string(user.Role),
			UserType:     string(user.UserType),
			IsAdmin:      user.IsAdmin(),
			IsBuyer:      user.IsBuyer(),
			IsSeller:     user.IsSeller(),
			IsAccountant: user.IsAccountant(),
		},
	}
	for _, r := range identity.AllRoles {
		info.Roles = append(info.Roles, Choice{Value: string(r), Label: Label(string(r))})
	}
	for _, t := range identity.AllUserTypes {
		info.UserTypes = append(info.UserTypes, Choice{Value: string(t), Label: Label(string(t))})
	}
	return info, nil
}

// ByRole lists active users with a role
func (s *UserService) ByRole(ctx context.Context, role identity.Role) (*UsersByGroup, error) {
	if !role.IsValid() {
		return nil, shared.NewValidationError("unknown role %q", role)
	}
	users, err := s.userRepo.FindByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	return &UsersByGroup{Role: string(role), Count: len(users), Users: ToUserInfos(users)}, nil
}

// ByType lists active users of a user type
func (s *UserService) ByType(ctx context.Context, userType identity.UserType) (*UsersByGroup, error) {
	if !userType.IsValid() {
		return nil, shared.NewValidationError("unknown user type %q", userType)
	}
	users, err := s.userRepo.FindByUserType(ctx, userType)
	if err != nil {
		return nil, err
	}
	return &UsersByGroup{UserType: string(userType), Count: len(users), Users: ToUserInfos(users)}, nil
}

// List returns a page of users
func (s *UserService) List(ctx context.Context, scope identity.Scope, filter shared.Filter) (shared.Paginated[UserInfo], error) {
	if err := requireAdmin(scope); err != nil {
		return shared.Paginated[UserInfo]{}, err
	}
	filter = filter.Normalize()
	users, total, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[UserInfo]{}, err
	}
	return shared.NewPaginated(ToUserInfos(users), total, filter.Page, filter.PageSize), nil
}

// Get returns one user. Admins may read anyone, others only themselves.
func (s *UserService) Get(ctx context.Context, scope identity.Scope, id int64) (*UserInfo, error) {
	if !scope.IsAdmin() && scope.UserID != id {
		return nil, shared.NewNotFoundError("user", id)
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	info := ToUserInfo(user)
	return &info, nil
}

// Create adds a user with any role
func (s *UserService) Create(ctx context.Context, scope identity.Scope, input UserInput) (*UserInfo, error) {
	if err := requireAdmin(scope); err != nil {
		return nil, err
	}
	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A user with that username already exists")
	}
	user, err := identity.NewUser(input.Username, input.Email, input.Password, input.Role, input.UserType)
	if err != nil {
		return nil, err
	}
	user.ApplyProfile(input.Profile)
	applyFlags(user, input)
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("User created", zap.Int64("user_id", user.ID), zap.Int64("actor_id", scope.UserID))
	info := ToUserInfo(user)
	return &info, nil
}

// Update replaces a user's profile, role and flags. An empty password keeps the current one.
func (s *UserService) Update(ctx context.Context, scope identity.Scope, id int64, input UserInput) (*UserInfo, error) {
	if err := requireAdmin(scope); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := user.SetEmail(input.Email); err != nil {
		return nil, err
	}
	role, userType := input.Role, input.UserType
	if role == "" {
		role = user.Role
	}
	if userType == "" {
		userType = user.UserType
	}
	if err := user.ChangeRole(role, userType); err != nil {
		return nil, err
	}
	if input.Password != "" {
		if err := user.SetPassword(input.Password); err != nil {
			return nil, err
		}
	}
	user.ApplyProfile(input.Profile)
	applyFlags(user, input)
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	info := ToUserInfo(user)
	return &info, nil
}

// Delete removes a user. Admins cannot delete themselves.
func (s *UserService) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	if err := requireAdmin(scope); err != nil {
		return err
	}
	if id == scope.UserID {
		return shared.NewValidationError("you cannot delete your own account")
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("User deleted", zap.Int64("user_id", id), zap.Int64("actor_id", scope.UserID))
	return nil
}

func applyFlags(user *identity.User, input UserInput) {
	if input.IsVerified != nil {
		user.IsVerified = *input.IsVerified
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
}
