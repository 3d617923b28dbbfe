// Package bulk describes the models that can be deleted or updated many rows at a time.
package bulk

import (
	"context"
	"sort"
	"strings"

	"github.com/erp/bizhub/internal/domain/commerce"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/manufacturing"
	"github.com/erp/bizhub/internal/domain/partner"
	"github.com/erp/bizhub/internal/domain/shared"
)

// Target is a model addressable by its snake_case plural name
type Target struct {
	Name     string
	Resource identity.Resource
	// AdminOnly targets have no owner column and are mutable by admins only
	AdminOnly bool
	// ReadOnly targets reject every bulk mutation
	ReadOnly bool
	// Updatable maps each whitelisted column to the rule its values must pass
	Updatable map[string]Rule
}

// Columns binds column names to a rule
type Columns map[string]Rule

func target(name string, resource identity.Resource, columns Columns) Target {
	return Target{Name: name, Resource: resource, Updatable: columns}
}

func adminOnly(t Target) Target {
	t.AdminOnly = true
	return t
}

var targets = map[string]Target{}

func register(ts ...Target) {
	for _, t := range ts {
		targets[t.Name] = t
	}
}

func init() {
	register(
		adminOnly(target("users", identity.ResourceUsers, Columns{
			"is_active":   boolean,
			"is_verified": boolean,
			"role":        oneOf(identity.AllRoles...),
			"user_type":   oneOf(identity.AllUserTypes...),
		})),
		target("companies", identity.ResourceCompanies, Columns{
			"city":    text,
			"state":   text,
			"country": text,
			"phone":   text,
			"email":   text,
		}),
		target("contacts", identity.ResourceContacts, Columns{
			"contact_type": oneOf(partner.ContactTypeCustomer, partner.ContactTypeSupplier, partner.ContactTypeBoth),
			"is_active":    boolean,
			"city":         text,
			"state":        text,
			"country":      text,
		}),
		adminOnly(target("categories", identity.ResourceCategories, Columns{
			"is_active": boolean,
			"parent_id": reference,
		})),
		// the percentage ceiling depends on each row's tax type, which a bulk update cannot see
		target("taxes", identity.ResourceTaxes, Columns{
			"is_active": boolean,
			"rate":      atLeast(0),
		}),
		target("products", identity.ResourceProducts, Columns{
			"is_active":          boolean,
			"is_featured":        boolean,
			"category_id":        reference,
			"subcategory_id":     reference,
			"tax_id":             reference,
			"unit_price":         atLeast(0),
			"cost_price":         nullable(atLeast(0)),
			"delivery_time":      required,
			"min_order_quantity": integerAtLeast(1),
		}),
		target("seller_profiles", identity.ResourceSellerProfiles, Columns{
			"is_verified":     boolean,
			"commission_rate": between(0, 100),
		}),
		// selling price and approval carry derived fields, so listings are delete-only
		target("seller_products", identity.ResourceSellerProducts, nil),
		target("carts", identity.ResourceCarts, Columns{"quantity": integerAtLeast(1)}),
		target("orders", identity.ResourceOrders, Columns{
			"payment_status": oneOf(commerce.PaymentStatusPending, commerce.PaymentStatusPaid,
				commerce.PaymentStatusFailed, commerce.PaymentStatusRefunded),
			"shipping_address": required,
			"notes":            text,
		}),
		target("purchase_orders", identity.ResourcePurchaseOrders, Columns{"expected_delivery_date": date, "notes": text}),
		target("sales_orders", identity.ResourceSalesOrders, Columns{"expected_delivery_date": date, "notes": text}),
		target("vendor_bills", identity.ResourceVendorBills, Columns{"due_date": date, "notes": text}),
		target("customer_invoices", identity.ResourceCustomerInvoices, Columns{"due_date": date, "notes": text}),
		target("work_centers", identity.ResourceWorkCenters, Columns{
			"is_active":   boolean,
			"capacity":    integerAtLeast(1),
			"manager_id":  reference,
			"description": text,
		}),
		target("manufacturing_orders", identity.ResourceManufacturingOrders, Columns{
			"priority": oneOf(manufacturing.PriorityLow, manufacturing.PriorityMedium,
				manufacturing.PriorityHigh, manufacturing.PriorityUrgent),
			"due_date":       date,
			"work_center_id": reference,
		}),
		target("work_orders", identity.ResourceWorkOrders, Columns{
			"assigned_to":     reference,
			"estimated_hours": atLeast(0),
			"notes":           text,
		}),
		Target{Name: "stock_movements", Resource: identity.ResourceStockMovements, ReadOnly: true},
	)
}

// Lookup resolves a model name
func Lookup(name string) (Target, error) {
	t, ok := targets[name]
	if !ok {
		return Target{}, shared.NewValidationError("Invalid model name: %s", name)
	}
	return t, nil
}

// Names lists every registered model name in order
func Names() []string {
	names := make([]string, 0, len(targets))
	for n := range targets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// CheckMutable rejects read-only targets and admin-only targets for other roles
func (t Target) CheckMutable(scope identity.Scope) error {
	if t.ReadOnly {
		return shared.NewDomainError("VALIDATION_ERROR", strings.ReplaceAll(t.Name, "_", " ")+" cannot be bulk modified")
	}
	if t.AdminOnly && !scope.IsAdmin() {
		return shared.NewDomainError("FORBIDDEN", "Only admins can bulk modify "+t.Name)
	}
	return nil
}

// CheckUpdate validates the columns of an update against the whitelist and
// each value against its column rule
func (t Target) CheckUpdate(data map[string]interface{}) error {
	if len(data) == 0 {
		return shared.ErrNothingToApply
	}
	var rejected []string
	for col := range data {
		if _, ok := t.Updatable[col]; !ok {
			rejected = append(rejected, col)
		}
	}
	if len(rejected) > 0 {
		sort.Strings(rejected)
		return shared.NewValidationError("Fields not updatable on %s: %s", t.Name, strings.Join(rejected, ", "))
	}
	cols := make([]string, 0, len(data))
	for col := range data {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	for _, col := range cols {
		if rule := t.Updatable[col]; rule != nil {
			if err := rule(data[col]); err != nil {
				return shared.NewValidationError("Invalid %s on %s: %v", col, t.Name, err)
			}
		}
	}
	return nil
}

// Repository applies bulk mutations to the rows of a target visible to scope.
// Ids that do not exist or are not visible are skipped; the count is the affected rows.
type Repository interface {
	DeleteByIDs(ctx context.Context, scope identity.Scope, t Target, ids []int64) (int64, error)
	UpdateByIDs(ctx context.Context, scope identity.Scope, t Target, ids []int64, data map[string]interface{}) (int64, error)
}
