package datascope

import (
	"testing"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type row struct {
	ID         int64 `gorm:"primaryKey"`
	CreatedBy  int64
	AssignedTo *int64
}

func dryRun(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func sqlFor(t *testing.T, scope identity.Scope, resource identity.Resource, table string) string {
	t.Helper()
	db := dryRun(t)
	var rows []row
	stmt := NewFilter(scope).Apply(db.Table(table), resource, table).Find(&rows).Statement
	return stmt.SQL.String()
}

func TestFilter_Apply(t *testing.T) {
	tests := []struct {
		name     string
		scope    identity.Scope
		resource identity.Resource
		table    string
		contains string
		absent   string
	}{
		{"admin sees all", identity.NewScope(1, identity.RoleAdmin), identity.ResourceSalesOrders, "sales_orders", "", "WHERE"},
		{"contact user sees own", identity.NewScope(7, identity.RoleContactUser), identity.ResourceSalesOrders, "sales_orders", "sales_orders.created_by = ?", ""},
		{"operator sees assigned work orders", identity.NewScope(7, identity.RoleOperatorWorker), identity.ResourceWorkOrders, "work_orders", "work_orders.assigned_to = ?", ""},
		{"operator sees orders with assigned work", identity.NewScope(7, identity.RoleOperatorWorker), identity.ResourceManufacturingOrders, "manufacturing_orders", "awo.manufacturing_order_id = manufacturing_orders.id", ""},
		{"carts are keyed by user", identity.NewScope(7, identity.RoleContactUser), identity.ResourceCarts, "cart_items", "cart_items.user_id = ?", ""},
		{"anonymous own scope matches nothing", identity.NewScope(0, identity.RoleContactUser), identity.ResourceProducts, "products", "1 = 0", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql := sqlFor(t, tt.scope, tt.resource, tt.table)
			if tt.contains != "" {
				assert.Contains(t, sql, tt.contains)
			}
			if tt.absent != "" {
				assert.NotContains(t, sql, tt.absent)
			}
		})
	}
}

func TestFilter_NoneVisibility(t *testing.T) {
	policy := identity.NewPolicy().Allow(identity.RoleAccountant, identity.VisibilityNone, identity.ResourceOrders)
	scope := identity.NewScope(3, identity.RoleAccountant).WithPolicy(policy)

	sql := sqlFor(t, scope, identity.ResourceOrders, "orders")
	assert.Contains(t, sql, "1 = 0")
	assert.False(t, NewFilter(scope).CanAccessAll(identity.ResourceOrders))
}

func TestOwnerColumn(t *testing.T) {
	assert.Equal(t, "created_by", OwnerColumn(identity.ResourceProducts))
	assert.Equal(t, "assigned_to", OwnerColumn(identity.ResourceWorkOrders))
	assert.Equal(t, "id", OwnerColumn(identity.ResourceUsers))
}

func TestPredicate(t *testing.T) {
	clause, args := Predicate(identity.NewScope(1, identity.RoleAdmin), identity.ResourceWorkOrders, "wo")
	assert.Empty(t, clause)
	assert.Empty(t, args)

	clause, args = Predicate(identity.NewScope(7, identity.RoleOperatorWorker), identity.ResourceWorkOrders, "wo")
	assert.Equal(t, "wo.assigned_to = ?", clause)
	assert.Equal(t, []any{int64(7)}, args)

	clause, args = Predicate(identity.NewScope(7, identity.RoleOperatorWorker), identity.ResourceManufacturingOrders, "mo")
	assert.Contains(t, clause, "awo.manufacturing_order_id = mo.id AND awo.assigned_to = ?")
	assert.Equal(t, []any{int64(7)}, args)

	clause, _ = Predicate(identity.NewScope(7, identity.RoleContactUser), identity.ResourceCarts, "ci")
	assert.Equal(t, "ci.user_id = ?", clause)
}
