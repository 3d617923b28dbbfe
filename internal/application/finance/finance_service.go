package finance

import (
	"context"
	"time"

	"github.com/erp/bizhub/internal/domain/finance"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
	"go.uber.org/zap"
)

// FinanceService exposes vendor bills and customer invoices. Both are created
// only by order conversion; this service reads, moves status and deletes them.
type FinanceService struct {
	billRepo    finance.VendorBillRepository
	invoiceRepo finance.CustomerInvoiceRepository
	logger      *zap.Logger
	now         func() time.Time
}

// FinanceServiceOption is a functional option for configuring FinanceService
type FinanceServiceOption func(*FinanceService)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) FinanceServiceOption {
	return func(s *FinanceService) {
		s.logger = logger
	}
}

// WithClock overrides the clock used to flag past-due invoices
func WithClock(now func() time.Time) FinanceServiceOption {
	return func(s *FinanceService) {
		s.now = now
	}
}

// NewFinanceService creates a new FinanceService
func NewFinanceService(
	billRepo finance.VendorBillRepository,
	invoiceRepo finance.CustomerInvoiceRepository,
	opts ...FinanceServiceOption,
) *FinanceService {
	s := &FinanceService{
		billRepo:    billRepo,
		invoiceRepo: invoiceRepo,
		logger:      zap.NewNop(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ==================== Vendor bills ====================

// ListBills returns a page of vendor bills visible to the caller
func (s *FinanceService) ListBills(ctx context.Context, scope identity.Scope, filter shared.Filter) (shared.Paginated[VendorBillResponse], error) {
	filter = filter.Normalize()
	bills, total, err := s.billRepo.FindAll(ctx, scope, filter)
	if err != nil {
		return shared.Paginated[VendorBillResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(bills, ToVendorBillResponse), total, filter.Page, filter.PageSize), nil
}

// GetBill returns a vendor bill visible to the caller
func (s *FinanceService) GetBill(ctx context.Context, scope identity.Scope, id int64) (*VendorBillResponse, error) {
	bill, err := s.billRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	resp := ToVendorBillResponse(bill)
	return &resp, nil
}

// ChangeBillStatus applies a guarded status transition
func (s *FinanceService) ChangeBillStatus(ctx context.Context, scope identity.Scope, id int64, req StatusRequest) (*VendorBillResponse, error) {
	bill, err := s.billRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	from := bill.Status
	if err := bill.ChangeStatus(finance.BillStatus(req.Status)); err != nil {
		return nil, err
	}
	if err := s.billRepo.Save(ctx, bill); err != nil {
		return nil, err
	}
	s.logger.Info("Vendor bill status changed",
		zap.Int64("bill_id", bill.ID),
		zap.String("from", string(from)),
		zap.String("to", string(bill.Status)),
	)
	resp := ToVendorBillResponse(bill)
	return &resp, nil
}

// DeleteBill removes a vendor bill visible to the caller
func (s *FinanceService) DeleteBill(ctx context.Context, scope identity.Scope, id int64) error {
	if err := s.billRepo.Delete(ctx, scope, id); err != nil {
		return err
	}
	s.logger.Info("Vendor bill deleted", zap.Int64("bill_id", id))
	return nil
}

// ==================== Customer invoices ====================

// ListInvoices returns a page of customer invoices visible to the caller
func (s *FinanceService) ListInvoices(ctx context.Context, scope identity.Scope, filter shared.Filter) (shared.Paginated[CustomerInvoiceResponse], error) {
	filter = filter.Normalize()
	invoices, total, err := s.invoiceRepo.FindAll(ctx, scope, filter)
	if err != nil {
		return shared.Paginated[CustomerInvoiceResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(invoices, toCustomerInvoiceResponse(s.now())), total, filter.Page, filter.PageSize), nil
}

// GetInvoice returns a customer invoice visible to the caller
func (s *FinanceService) GetInvoice(ctx context.Context, scope identity.Scope, id int64) (*CustomerInvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	resp := toCustomerInvoiceResponse(s.now())(invoice)
	return &resp, nil
}

// ChangeInvoiceStatus applies a guarded status transition
func (s *FinanceService) ChangeInvoiceStatus(ctx context.Context, scope identity.Scope, id int64, req StatusRequest) (*CustomerInvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	from := invoice.Status
	if err := invoice.ChangeStatus(finance.InvoiceStatus(req.Status)); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}
	s.logger.Info("Customer invoice status changed",
		zap.Int64("invoice_id", invoice.ID),
		zap.String("from", string(from)),
		zap.String("to", string(invoice.Status)),
	)
	resp := toCustomerInvoiceResponse(s.now())(invoice)
	return &resp, nil
}

// DeleteInvoice removes a customer invoice visible to the caller
func (s *FinanceService) DeleteInvoice(ctx context.Context, scope identity.Scope, id int64) error {
	if err := s.invoiceRepo.Delete(ctx, scope, id); err != nil {
		return err
	}
	s.logger.Info("Customer invoice deleted", zap.Int64("invoice_id", id))
	return nil
}
