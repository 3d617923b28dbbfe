package reporting

import (
	"context"
	"time"

	"github.com/erp/bizhub/internal/domain/finance"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/inventory"
	"github.com/erp/bizhub/internal/domain/partner"
	"github.com/erp/bizhub/internal/domain/report"
	"github.com/shopspring/decimal"
)

// StockRows sums in and out movements per visible product
func (q *Queries) StockRows(ctx context.Context, scope identity.Scope, companyID *int64) ([]report.StockRow, error) {
	w := &where{}
	w.scoped(scope, identity.ResourceProducts, "p")
	w.company("p", companyID)

	query := `SELECT p.id AS product_id, p.name AS product_name, p.sku AS product_sku, p.unit_price,
		COALESCE(SUM(CASE WHEN sm.movement_type = ? THEN sm.quantity ELSE 0 END), 0) AS stock_in,
		COALESCE(SUM(CASE WHEN sm.movement_type = ? THEN sm.quantity ELSE 0 END), 0) AS stock_out,
		COALESCE(SUM(CASE WHEN sm.movement_type = ? THEN sm.quantity ELSE 0 END), 0)
			- COALESCE(SUM(CASE WHEN sm.movement_type = ? THEN sm.quantity ELSE 0 END), 0) AS available_stock,
		c.name AS company_name
		FROM products p
		JOIN companies c ON c.id = p.company_id
		LEFT JOIN stock_movements sm ON sm.product_id = p.id` + w.String() + `
		GROUP BY p.id, p.name, p.sku, p.unit_price, c.name
		ORDER BY p.name ASC`
	args := append([]any{inventory.MovementIn, inventory.MovementOut, inventory.MovementIn, inventory.MovementOut}, w.args...)

	rows := []report.StockRow{}
	if err := q.selectAll(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// InvoicedSales sums customer invoices dated within p
func (q *Queries) InvoicedSales(ctx context.Context, scope identity.Scope, companyID *int64, p report.Period) (decimal.Decimal, error) {
	w := &where{}
	w.scoped(scope, identity.ResourceCustomerInvoices, "i")
	w.company("i", companyID)
	w.add("i.invoice_date >= ? AND i.invoice_date < ?", p.Start, p.EndExclusive())
	var total decimal.Decimal
	err := q.get(ctx, &total, `SELECT COALESCE(SUM(i.total_amount), 0) FROM customer_invoices i`+w.String(), w.args...)
	return total, err
}

// BilledPurchases sums vendor bills dated within p
func (q *Queries) BilledPurchases(ctx context.Context, scope identity.Scope, companyID *int64, p report.Period) (decimal.Decimal, error) {
	w := &where{}
	w.scoped(scope, identity.ResourceVendorBills, "b")
	w.company("b", companyID)
	w.add("b.bill_date >= ? AND b.bill_date < ?", p.Start, p.EndExclusive())
	var total decimal.Decimal
	err := q.get(ctx, &total, `SELECT COALESCE(SUM(b.total_amount), 0) FROM vendor_bills b`+w.String(), w.args...)
	return total, err
}

// DashboardCounts counts the visible master data and documents
func (q *Queries) DashboardCounts(ctx context.Context, scope identity.Scope, companyID *int64) (report.DashboardCounts, error) {
	var out report.DashboardCounts
	customers := []partner.ContactType{partner.ContactTypeCustomer, partner.ContactTypeBoth}
	suppliers := []partner.ContactType{partner.ContactTypeSupplier, partner.ContactTypeBoth}

	// documents are narrowed by company, master data is not
	counts := []struct {
		dest      *int64
		table     string
		resource  identity.Resource
		byCompany bool
		extra     string
		extraArgs []any
	}{
		{&out.TotalCompanies, "companies", identity.ResourceCompanies, false, "", nil},
		{&out.TotalProducts, "products", identity.ResourceProducts, false, "", nil},
		{&out.TotalCustomers, "contacts", identity.ResourceContacts, false, "t.contact_type IN (?)", []any{customers}},
		{&out.TotalSuppliers, "contacts", identity.ResourceContacts, false, "t.contact_type IN (?)", []any{suppliers}},
		{&out.TotalPurchaseOrders, "purchase_orders", identity.ResourcePurchaseOrders, true, "", nil},
		{&out.TotalSalesOrders, "sales_orders", identity.ResourceSalesOrders, true, "", nil},
		{&out.TotalBills, "vendor_bills", identity.ResourceVendorBills, true, "", nil},
		{&out.TotalInvoices, "customer_invoices", identity.ResourceCustomerInvoices, true, "", nil},
	}
	for _, c := range counts {
		w := &where{}
		w.scoped(scope, c.resource, "t")
		if c.byCompany {
			w.company("t", companyID)
		}
		if c.extra != "" {
			w.add(c.extra, c.extraArgs...)
		}
		if err := q.getIn(ctx, c.dest, "SELECT COUNT(*) FROM "+c.table+" t"+w.String(), w.args...); err != nil {
			return report.DashboardCounts{}, err
		}
	}
	return out, nil
}

// PaidSince sums paid invoices and bills dated on or after since
func (q *Queries) PaidSince(ctx context.Context, scope identity.Scope, companyID *int64, since time.Time) (decimal.Decimal, decimal.Decimal, error) {
	sales := &where{}
	sales.scoped(scope, identity.ResourceCustomerInvoices, "i")
	sales.company("i", companyID)
	sales.add("i.invoice_date >= ? AND i.status = ?", since, finance.InvoiceStatusPaid)

	var salesTotal decimal.Decimal
	if err := q.get(ctx, &salesTotal, `SELECT COALESCE(SUM(i.total_amount), 0) FROM customer_invoices i`+sales.String(), sales.args...); err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	purchases := &where{}
	purchases.scoped(scope, identity.ResourceVendorBills, "b")
	purchases.company("b", companyID)
	purchases.add("b.bill_date >= ? AND b.status = ?", since, finance.BillStatusPaid)

	var purchaseTotal decimal.Decimal
	if err := q.get(ctx, &purchaseTotal, `SELECT COALESCE(SUM(b.total_amount), 0) FROM vendor_bills b`+purchases.String(), purchases.args...); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return salesTotal, purchaseTotal, nil
}
