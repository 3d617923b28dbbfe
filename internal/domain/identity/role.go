package identity

// Role is the permission role assigned to a user
type Role string

const (
	RoleAdmin                Role = "admin"
	RoleManufacturingManager Role = "manufacturing_manager"
	RoleOperatorWorker       Role = "operator_worker"
	RoleInventoryManager     Role = "inventory_manager"
	RoleBusinessOwner        Role = "admin_business_owner"
	RoleInvoicingUser        Role = "invoicing_user"
	RoleContactUser          Role = "contact_user"
	RoleAccountant           Role = "accountant"
)

// AllRoles lists every role in display order
var AllRoles = []Role{
	RoleAdmin,
	RoleManufacturingManager,
	RoleOperatorWorker,
	RoleInventoryManager,
	RoleBusinessOwner,
	RoleInvoicingUser,
	RoleContactUser,
	RoleAccountant,
}

// IsValid checks if the role is known
func (r Role) IsValid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// String returns the string representation
func (r Role) String() string {
	return string(r)
}

// UserType classifies a user for the storefront
type UserType string

const (
	UserTypeBuyer      UserType = "buyer"
	UserTypeSeller     UserType = "seller"
	UserTypeAccountant UserType = "accountant"
)

// AllUserTypes lists every user type in display order
var AllUserTypes = []UserType{UserTypeBuyer, UserTypeSeller, UserTypeAccountant}

// IsValid checks if the user type is known
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeBuyer, UserTypeSeller, UserTypeAccountant:
		return true
	}
	return false
}

// String returns the string representation
func (t UserType) String() string {
	return string(t)
}
