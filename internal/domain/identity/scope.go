package identity

// Scope is the per-request row predicate passed explicitly to repositories
type Scope struct {
	UserID int64
	Role   Role
	policy *Policy
}

// NewScope creates a scope evaluated against DefaultPolicy
func NewScope(userID int64, role Role) Scope {
	return Scope{UserID: userID, Role: role, policy: DefaultPolicy}
}

// WithPolicy returns a copy of the scope evaluated against p
func (s Scope) WithPolicy(p *Policy) Scope {
	s.policy = p
	return s
}

// SystemScope sees every row. It is used by operator commands, never by HTTP requests.
func SystemScope() Scope {
	return Scope{Role: RoleAdmin, policy: DefaultPolicy}
}

// VisibilityOf resolves the predicate for resource
func (s Scope) VisibilityOf(resource Resource) Visibility {
	p := s.policy
	if p == nil {
		p = DefaultPolicy
	}
	return p.VisibilityFor(s.Role, resource)
}

// IsAdmin reports whether the actor has the admin role
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// CanSee reports whether a row with the given owner is visible.
// Assigned visibility is resolved by the repository and is not decidable here.
func (s Scope) CanSee(resource Resource, ownerID int64) bool {
	switch s.VisibilityOf(resource) {
	case VisibilityAll:
		return true
	case VisibilityOwn:
		return ownerID == s.UserID
	default:
		return false
	}
}
