// Package datascope turns an identity.Scope into row predicates on GORM queries
// and, through Predicate, on hand-written SQL.
//
// Every repository call receives the scope explicitly and applies it here:
//   - all: no predicate
//   - own: rows whose owner column equals the actor
//   - assigned: rows reachable through a work order assigned to the actor
//   - none: no rows
//
// Usage:
//
//	filter := datascope.NewFilter(scope)
//	db = filter.Apply(db, identity.ResourceSalesOrders, "sales_orders")
package datascope

import (
	"github.com/erp/bizhub/internal/domain/identity"
	"gorm.io/gorm"
)

// ownerColumns names the column compared against the actor for own visibility.
// Resources not listed use created_by.
var ownerColumns = map[identity.Resource]string{
	identity.ResourceUsers:          "id",
	identity.ResourceCarts:          "user_id",
	identity.ResourceWorkOrders:     "assigned_to",
	identity.ResourceSellerProfiles: "user_id",
}

// Filter applies a scope to GORM queries
type Filter struct {
	scope identity.Scope
}

// NewFilter creates a Filter for the given scope
func NewFilter(scope identity.Scope) *Filter {
	return &Filter{scope: scope}
}

// OwnerColumn returns the owner column for resource
func OwnerColumn(resource identity.Resource) string {
	if col, ok := ownerColumns[resource]; ok {
		return col
	}
	return "created_by"
}

// Apply adds the visibility predicate for resource. table qualifies columns so the
// predicate stays unambiguous when the caller joins other tables.
func (f *Filter) Apply(db *gorm.DB, resource identity.Resource, table string) *gorm.DB {
	clause, args := Predicate(f.scope, resource, table)
	if clause == "" {
		return db
	}
	return db.Where(clause, args...)
}

// Predicate returns the visibility predicate for resource as SQL with '?'
// placeholders, for callers that build queries without GORM. An empty clause
// means every row is visible.
func Predicate(scope identity.Scope, resource identity.Resource, table string) (string, []any) {
	switch scope.VisibilityOf(resource) {
	case identity.VisibilityAll:
		return "", nil

	case identity.VisibilityOwn:
		if scope.UserID == 0 {
			return "1 = 0", nil
		}
		return table + "." + OwnerColumn(resource) + " = ?", []any{scope.UserID}

	case identity.VisibilityAssigned:
		if scope.UserID == 0 {
			return "1 = 0", nil
		}
		return assignedPredicate(scope, resource, table)

	default:
		return "1 = 0", nil
	}
}

func assignedPredicate(scope identity.Scope, resource identity.Resource, table string) (string, []any) {
	switch resource {
	case identity.ResourceWorkOrders:
		return table + ".assigned_to = ?", []any{scope.UserID}
	case identity.ResourceManufacturingOrders:
		return "EXISTS (SELECT 1 FROM work_orders awo WHERE awo.manufacturing_order_id = " +
			table + ".id AND awo.assigned_to = ?)", []any{scope.UserID}
	default:
		// assignment only exists on the shop floor; elsewhere it degrades to ownership
		return table + "." + OwnerColumn(resource) + " = ?", []any{scope.UserID}
	}
}

// ApplyToQuery returns Apply as a GORM scope function
func (f *Filter) ApplyToQuery(resource identity.Resource, table string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return f.Apply(db, resource, table)
	}
}

// CanAccessAll reports whether the scope sees every row of resource
func (f *Filter) CanAccessAll(resource identity.Resource) bool {
	return f.scope.VisibilityOf(resource) == identity.VisibilityAll
}

// UserID returns the actor of the scope
func (f *Filter) UserID() int64 {
	return f.scope.UserID
}
