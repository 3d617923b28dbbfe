package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string returns DESC", "", "DESC"},
		{"ASC uppercase returns ASC", "ASC", "ASC"},
		{"asc lowercase returns ASC", "asc", "ASC"},
		{"invalid value returns DESC", "INVALID", "DESC"},
		{"sql injection attempt returns DESC", "ASC; DROP TABLE users;--", "DESC"},
		{"whitespace around ASC returns ASC", "  asc  ", "ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateSortOrder(tt.input))
		})
	}
}

func TestValidateSortField(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string returns default", "", "created_at"},
		{"valid field returns field", "po_number", "po_number"},
		{"common field is allowed", "id", "id"},
		{"unknown field returns default", "supplier_name", "created_at"},
		{"sql injection attempt returns default", "id; DROP TABLE users;--", "created_at"},
		{"case sensitive", "PO_NUMBER", "created_at"},
		{"whitespace around valid field returns field", "  status  ", "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateSortField(tt.input, PurchaseOrderSortFields, "created_at"))
		})
	}
}

func TestSortFieldSets(t *testing.T) {
	assert.True(t, ProductSortFields["sku"])
	assert.True(t, WorkOrderSortFields["work_order_number"])
	assert.False(t, StockMovementSortFields["notes"])
	assert.True(t, OrderSortFields["created_at"])
}
