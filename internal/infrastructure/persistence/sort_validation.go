package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

func withCommon(fields ...string) map[string]bool {
	m := map[string]bool{
		"id":         true,
		"created_at": true,
		"updated_at": true,
	}
	for _, f := range fields {
		m[f] = true
	}
	return m
}

// Allowed sort fields per table
var (
	UserSortFields               = withCommon("username", "email", "role", "user_type", "last_login_at")
	CompanySortFields            = withCommon("name", "city", "country", "tax_id")
	ContactSortFields            = withCommon("name", "contact_type", "city", "company_id")
	SellerProfileSortFields      = withCommon("business_name", "commission_rate", "is_verified")
	CategorySortFields           = withCommon("name", "parent_id")
	TaxSortFields                = withCommon("name", "rate", "tax_type")
	ProductSortFields            = withCommon("name", "sku", "unit_price", "stock_quantity", "company_id", "is_featured")
	PurchaseOrderSortFields      = withCommon("po_number", "po_date", "expected_delivery_date", "status", "total_amount")
	SalesOrderSortFields         = withCommon("so_number", "so_date", "expected_delivery_date", "status", "total_amount")
	VendorBillSortFields         = withCommon("bill_number", "bill_date", "due_date", "status", "total_amount")
	CustomerInvoiceSortFields    = withCommon("invoice_number", "invoice_date", "due_date", "status", "total_amount")
	StockMovementSortFields      = withCommon("movement_type", "quantity", "product_id", "reference_type")
	OrderSortFields              = withCommon("order_number", "status", "payment_status", "total_amount")
	SellerProductSortFields      = withCommon("selling_price", "commission_amount", "is_approved")
	WorkCenterSortFields         = withCommon("name", "capacity")
	ManufacturingOrderSortFields = withCommon("order_number", "due_date", "priority", "status", "quantity")
	WorkOrderSortFields          = withCommon("work_order_number", "status", "start_date", "end_date", "estimated_hours")
)
