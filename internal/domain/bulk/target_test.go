package bulk

import (
	"encoding/json"
	"testing"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tgt, err := Lookup("products")
	require.NoError(t, err)
	assert.Equal(t, identity.ResourceProducts, tgt.Resource)

	_, err = Lookup("chart_of_accounts")
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.NewDomainError("VALIDATION_ERROR", ""))
}

func TestTarget_CheckMutable(t *testing.T) {
	admin := identity.NewScope(1, identity.RoleAdmin)
	user := identity.NewScope(2, identity.RoleContactUser)

	movements, _ := Lookup("stock_movements")
	assert.Error(t, movements.CheckMutable(admin))

	categories, _ := Lookup("categories")
	assert.NoError(t, categories.CheckMutable(admin))
	err := categories.CheckMutable(user)
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrForbidden)

	products, _ := Lookup("products")
	assert.NoError(t, products.CheckMutable(user))
}

func TestTarget_CheckUpdate(t *testing.T) {
	products, _ := Lookup("products")

	assert.NoError(t, products.CheckUpdate(map[string]interface{}{"is_active": false}))
	assert.ErrorIs(t, products.CheckUpdate(nil), shared.ErrNothingToApply)

	err := products.CheckUpdate(map[string]interface{}{"stock_quantity": 5, "created_by": 1, "is_active": true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "created_by, stock_quantity")

	listings, _ := Lookup("seller_products")
	assert.Error(t, listings.CheckUpdate(map[string]interface{}{"selling_price": 10}))
}

func TestTarget_CheckUpdateValues(t *testing.T) {
	tests := []struct {
		name   string
		target string
		data   map[string]interface{}
		errMsg string
	}{
		{"negative capacity", "work_centers", map[string]interface{}{"capacity": float64(-5)}, "Invalid capacity on work_centers: must be at least 1"},
		{"fractional capacity", "work_centers", map[string]interface{}{"capacity": 2.5}, "must be a whole number"},
		{"capacity as text", "work_centers", map[string]interface{}{"capacity": "many"}, "must be a number"},
		{"unknown priority", "manufacturing_orders", map[string]interface{}{"priority": "whenever"}, "must be one of low, medium, high, urgent"},
		{"negative hours", "work_orders", map[string]interface{}{"estimated_hours": -1}, "Invalid estimated_hours on work_orders"},
		{"negative tax rate", "taxes", map[string]interface{}{"rate": "-0.5"}, "must be at least 0"},
		{"unknown payment status", "orders", map[string]interface{}{"payment_status": "maybe"}, "payment_status"},
		{"blank shipping address", "orders", map[string]interface{}{"shipping_address": "  "}, "must not be blank"},
		{"negative unit price", "products", map[string]interface{}{"unit_price": -3}, "unit_price"},
		{"null unit price", "products", map[string]interface{}{"unit_price": nil}, "must be a number"},
		{"zero order quantity", "products", map[string]interface{}{"min_order_quantity": 0}, "min_order_quantity"},
		{"boolean as text", "products", map[string]interface{}{"is_active": "yes"}, "must be true or false"},
		{"bad due date", "vendor_bills", map[string]interface{}{"due_date": "next week"}, "YYYY-MM-DD"},
		{"negative reference", "manufacturing_orders", map[string]interface{}{"work_center_id": -2}, "positive id"},
		{"unknown role", "users", map[string]interface{}{"role": "superuser"}, "must be one of admin"},
		{"commission over 100", "seller_profiles", map[string]interface{}{"commission_rate": 150}, "between 0 and 100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tgt, err := Lookup(tt.target)
			require.NoError(t, err)

			err = tgt.CheckUpdate(tt.data)

			require.Error(t, err)
			assert.ErrorIs(t, err, shared.NewDomainError("VALIDATION_ERROR", ""))
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestTarget_CheckUpdateAcceptsValidValues(t *testing.T) {
	valid := map[string]map[string]interface{}{
		"work_centers":         {"capacity": float64(4), "manager_id": nil, "is_active": true},
		"manufacturing_orders": {"priority": "urgent", "due_date": "2024-06-30T12:00:00Z", "work_center_id": json.Number("3")},
		"work_orders":          {"estimated_hours": "7.5", "assigned_to": int64(9)},
		"taxes":                {"rate": 18},
		"orders":               {"payment_status": "refunded", "notes": ""},
		"products":             {"unit_price": "0", "cost_price": nil, "min_order_quantity": 10},
		"purchase_orders":      {"expected_delivery_date": "2024-07-01"},
	}
	for name, data := range valid {
		tgt, err := Lookup(name)
		require.NoError(t, err)
		assert.NoError(t, tgt.CheckUpdate(data), name)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Contains(t, names, "stock_movements")
	assert.Contains(t, names, "work_orders")
	assert.IsIncreasing(t, names)
}
