package finance

import (
	"context"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
)

// VendorBillRepository defines persistence operations for vendor bills
type VendorBillRepository interface {
	FindByID(ctx context.Context, scope identity.Scope, id int64) (*VendorBill, error)
	FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]VendorBill, int64, error)
	// Save inserts or updates the header; lines are only written on insert
	Save(ctx context.Context, bill *VendorBill) error
	Delete(ctx context.Context, scope identity.Scope, id int64) error
}

// CustomerInvoiceRepository defines persistence operations for customer invoices
type CustomerInvoiceRepository interface {
	FindByID(ctx context.Context, scope identity.Scope, id int64) (*CustomerInvoice, error)
	FindAll(ctx context.Context, scope identity.Scope, filter shared.Filter) ([]CustomerInvoice, int64, error)
	Save(ctx context.Context, invoice *CustomerInvoice) error
	Delete(ctx context.Context, scope identity.Scope, id int64) error
}
