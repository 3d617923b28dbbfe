package identity

// Resource names a scoped collection of rows
type Resource string

const (
	ResourceUsers               Resource = "users"
	ResourceCompanies           Resource = "companies"
	ResourceContacts            Resource = "contacts"
	ResourceCategories          Resource = "categories"
	ResourceTaxes               Resource = "taxes"
	ResourceProducts            Resource = "products"
	ResourcePurchaseOrders      Resource = "purchase_orders"
	ResourceSalesOrders         Resource = "sales_orders"
	ResourceVendorBills         Resource = "vendor_bills"
	ResourceCustomerInvoices    Resource = "customer_invoices"
	ResourceStockMovements      Resource = "stock_movements"
	ResourceCarts               Resource = "carts"
	ResourceOrders              Resource = "orders"
	ResourceSellerProfiles      Resource = "seller_profiles"
	ResourceSellerProducts      Resource = "seller_products"
	ResourceWorkCenters         Resource = "work_centers"
	ResourceManufacturingOrders Resource = "manufacturing_orders"
	ResourceWorkOrders          Resource = "work_orders"
)

// Visibility is the row predicate a role gets on a resource
type Visibility string

const (
	// VisibilityAll sees every row
	VisibilityAll Visibility = "all"
	// VisibilityOwn sees rows where created_by is the actor
	VisibilityOwn Visibility = "own"
	// VisibilityAssigned sees rows assigned to the actor through work orders
	VisibilityAssigned Visibility = "assigned"
	// VisibilityNone sees nothing
	VisibilityNone Visibility = "none"
)

// Policy maps role and resource to a visibility predicate.
// Lookups fall back to the role's default, then to VisibilityOwn.
type Policy struct {
	defaults map[Role]Visibility
	rules    map[Role]map[Resource]Visibility
}

// NewPolicy creates an empty policy where everything is VisibilityOwn
func NewPolicy() *Policy {
	return &Policy{
		defaults: make(map[Role]Visibility),
		rules:    make(map[Role]map[Resource]Visibility),
	}
}

// Default sets the fallback visibility for a role
func (p *Policy) Default(role Role, v Visibility) *Policy {
	p.defaults[role] = v
	return p
}

// Allow sets the visibility for a role on the given resources
func (p *Policy) Allow(role Role, v Visibility, resources ...Resource) *Policy {
	byResource, ok := p.rules[role]
	if !ok {
		byResource = make(map[Resource]Visibility)
		p.rules[role] = byResource
	}
	for _, r := range resources {
		byResource[r] = v
	}
	return p
}

// VisibilityFor resolves the predicate for role on resource
func (p *Policy) VisibilityFor(role Role, resource Resource) Visibility {
	if byResource, ok := p.rules[role]; ok {
		if v, ok := byResource[resource]; ok {
			return v
		}
	}
	if v, ok := p.defaults[role]; ok {
		return v
	}
	return VisibilityOwn
}

// DefaultPolicy is the role table applied by every repository
var DefaultPolicy = buildDefaultPolicy()

func buildDefaultPolicy() *Policy {
	p := NewPolicy().
		Default(RoleAdmin, VisibilityAll).
		Allow(RoleManufacturingManager, VisibilityAll,
			ResourceWorkCenters, ResourceManufacturingOrders, ResourceWorkOrders).
		Allow(RoleOperatorWorker, VisibilityAssigned,
			ResourceManufacturingOrders, ResourceWorkOrders).
		Allow(RoleOperatorWorker, VisibilityAll, ResourceWorkCenters).
		Allow(RoleInventoryManager, VisibilityAll, ResourceStockMovements).
		Allow(RoleBusinessOwner, VisibilityAll, ResourceStockMovements)

	// Everyone else may read the shop floor
	for _, role := range []Role{RoleInventoryManager, RoleBusinessOwner, RoleInvoicingUser, RoleContactUser, RoleAccountant} {
		p.Allow(role, VisibilityAll, ResourceWorkCenters, ResourceWorkOrders)
	}
	return p
}
