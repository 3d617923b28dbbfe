package trade

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/erp/bizhub/internal/application/common"
	"github.com/erp/bizhub/internal/domain/catalog"
	"github.com/erp/bizhub/internal/domain/finance"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/inventory"
	"github.com/erp/bizhub/internal/domain/partner"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var clerk = identity.NewScope(5, identity.RoleInventoryManager)

type tradeFixture struct {
	pos       *MockPurchaseOrderRepository
	sos       *MockSalesOrderRepository
	bills     *MockVendorBillRepository
	invoices  *MockCustomerInvoiceRepository
	movements *MockStockMovementRepository
	contacts  *MockContactRepository
	companies *MockCompanyRepository
	products  *MockProductRepository
	publisher *MockEventPublisher
	tx        *common.NoOpTransactionScope
	poSvc     *PurchaseOrderService
	soSvc     *SalesOrderService
}

func newTradeFixture() *tradeFixture {
	f := &tradeFixture{
		pos:       new(MockPurchaseOrderRepository),
		sos:       new(MockSalesOrderRepository),
		bills:     new(MockVendorBillRepository),
		invoices:  new(MockCustomerInvoiceRepository),
		movements: new(MockStockMovementRepository),
		contacts:  new(MockContactRepository),
		companies: new(MockCompanyRepository),
		products:  new(MockProductRepository),
		publisher: new(MockEventPublisher),
	}
	f.tx = common.NewNoOpTransactionScope(common.Repositories{
		PurchaseOrderRepo:   f.pos,
		SalesOrderRepo:      f.sos,
		VendorBillRepo:      f.bills,
		CustomerInvoiceRepo: f.invoices,
		StockMovementRepo:   f.movements,
	})
	seq := common.NewStaticSequencer()
	f.poSvc = NewPurchaseOrderService(f.tx, seq, f.pos, f.contacts, f.companies, f.products, zap.NewNop())
	f.poSvc.SetEventPublisher(f.publisher)
	f.soSvc = NewSalesOrderService(f.tx, seq, f.sos, f.contacts, f.companies, f.products, zap.NewNop())
	f.soSvc.SetEventPublisher(f.publisher)
	return f
}

func (f *tradeFixture) withParties(contactType partner.ContactType) {
	f.companies.On("FindByID", mock.Anything, clerk, int64(1)).Return(&partner.Company{Name: "Acme"}, nil)
	f.contacts.On("FindByID", mock.Anything, clerk, int64(8)).Return(&partner.Contact{Name: "Globex", ContactType: contactType}, nil)
	f.withProducts(1, 100, 101)
}

func (f *tradeFixture) withProducts(companyID int64, ids ...int64) {
	for _, id := range ids {
		p := &catalog.Product{CompanyID: companyID, Name: fmt.Sprintf("Product %d", id)}
		p.ID = id
		f.products.On("FindByID", mock.Anything, clerk, id).Return(p, nil)
	}
}

var (
	orderDate    = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	deliveryDate = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
)

func poRequest() PurchaseOrderRequest {
	return PurchaseOrderRequest{
		CompanyID:            1,
		SupplierID:           8,
		PODate:               common.NewDate(orderDate),
		ExpectedDeliveryDate: common.NewDate(deliveryDate),
		TaxAmount:            decimal.NewFromInt(18),
		Items: []LineRequest{
			{ProductID: 100, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("10.50")},
			{ProductID: 101, Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(4)},
		},
	}
}

func header(partnerID int64, number string) trade.OrderHeader {
	return trade.OrderHeader{
		CompanyID:            1,
		PartnerID:            partnerID,
		Number:               number,
		Date:                 orderDate,
		ExpectedDeliveryDate: deliveryDate,
		TaxAmount:            decimal.NewFromInt(5),
	}
}

func twoLines() []trade.LineInput {
	return []trade.LineInput{
		{ProductID: 100, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(25)},
		{ProductID: 101, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(7)},
	}
}

func confirmedPurchaseOrder(t *testing.T) *trade.PurchaseOrder {
	po, err := trade.NewPurchaseOrder(5, header(8, "PO-001-0007"), twoLines())
	require.NoError(t, err)
	po.ID = 11
	require.NoError(t, po.Confirm())
	return po
}

func confirmedSalesOrder(t *testing.T) *trade.SalesOrder {
	so, err := trade.NewSalesOrder(5, header(9, "SO-001-0003"), twoLines())
	require.NoError(t, err)
	so.ID = 21
	require.NoError(t, so.Confirm())
	return so
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}

func TestPurchaseOrderService_CreateNumbersSequentially(t *testing.T) {
	ctx := context.Background()
	f := newTradeFixture()
	f.withParties(partner.ContactTypeSupplier)
	f.pos.On("Save", mock.Anything, mock.AnythingOfType("*trade.PurchaseOrder")).Return(nil)

	first, err := f.poSvc.Create(ctx, clerk, poRequest())
	require.NoError(t, err)
	second, err := f.poSvc.Create(ctx, clerk, poRequest())
	require.NoError(t, err)

	assert.Equal(t, "PO-001-0001", first.PONumber)
	assert.Equal(t, "PO-001-0002", second.PONumber)
	assert.Equal(t, "Globex", first.SupplierName)
	assert.Equal(t, "33", first.Subtotal.String())
	assert.Equal(t, "51", first.TotalAmount.String())
	assert.Equal(t, "draft", first.Status)
	assert.Equal(t, 2, f.tx.Calls)
}

func TestPurchaseOrderService_CreateKeepsSuppliedNumber(t *testing.T) {
	ctx := context.Background()
	f := newTradeFixture()
	f.withParties(partner.ContactTypeBoth)
	f.pos.On("Save", mock.Anything, mock.AnythingOfType("*trade.PurchaseOrder")).Return(nil)

	req := poRequest()
	req.PONumber = "LEGACY-42"
	resp, err := f.poSvc.Create(ctx, clerk, req)
	require.NoError(t, err)
	assert.Equal(t, "LEGACY-42", resp.PONumber)

	next, err := f.poSvc.Create(ctx, clerk, poRequest())
	require.NoError(t, err)
	assert.Equal(t, "PO-001-0001", next.PONumber)
}

func TestPurchaseOrderService_CreateRejectsCustomerContact(t *testing.T) {
	f := newTradeFixture()
	f.withParties(partner.ContactTypeCustomer)

	_, err := f.poSvc.Create(context.Background(), clerk, poRequest())

	assertCode(t, err, "VALIDATION_ERROR")
	f.pos.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPurchaseOrderService_CreateFailureDoesNotConsumeNumber(t *testing.T) {
	ctx := context.Background()
	f := newTradeFixture()
	f.withParties(partner.ContactTypeSupplier)
	f.pos.On("Save", mock.Anything, mock.AnythingOfType("*trade.PurchaseOrder")).Return(errors.New("db down")).Once()
	f.pos.On("Save", mock.Anything, mock.AnythingOfType("*trade.PurchaseOrder")).Return(nil)

	_, err := f.poSvc.Create(ctx, clerk, poRequest())
	require.Error(t, err)

	resp, err := f.poSvc.Create(ctx, clerk, poRequest())
	require.NoError(t, err)
	assert.Equal(t, "PO-001-0001", resp.PONumber)
}

func TestPurchaseOrderService_UpdateRequiresDraft(t *testing.T) {
	f := newTradeFixture()
	po := confirmedPurchaseOrder(t)
	f.pos.On("FindByID", mock.Anything, clerk, int64(11)).Return(po, nil)

	_, err := f.poSvc.Update(context.Background(), clerk, 11, poRequest())

	assertCode(t, err, "INVALID_STATE")
	f.pos.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPurchaseOrderService_ConfirmAndCancel(t *testing.T) {
	ctx := context.Background()
	f := newTradeFixture()
	po, err := trade.NewPurchaseOrder(5, header(8, "PO-001-0001"), twoLines())
	require.NoError(t, err)
	f.pos.On("FindByID", ctx, clerk, int64(11)).Return(po, nil)
	f.pos.On("Save", ctx, po).Return(nil)

	resp, err := f.poSvc.Confirm(ctx, clerk, 11)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)

	resp, err = f.poSvc.Cancel(ctx, clerk, 11)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)

	_, err = f.poSvc.Confirm(ctx, clerk, 11)
	assertCode(t, err, "INVALID_STATE")
}

func TestPurchaseOrderService_ConvertToBill(t *testing.T) {
	t.Run("rejects orders that are not confirmed", func(t *testing.T) {
		f := newTradeFixture()
		po, err := trade.NewPurchaseOrder(5, header(8, "PO-001-0001"), twoLines())
		require.NoError(t, err)
		po.ID = 11
		f.pos.On("FindByID", mock.Anything, clerk, int64(11)).Return(po, nil)

		_, err = f.poSvc.ConvertToBill(context.Background(), clerk, 11)

		assertCode(t, err, "INVALID_STATE")
		assert.Zero(t, f.tx.Calls)
		f.bills.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		assert.Empty(t, f.movements.Appended)
	})

	t.Run("creates bill lines and inbound movements", func(t *testing.T) {
		f := newTradeFixture()
		po := confirmedPurchaseOrder(t)
		var saved *finance.VendorBill
		f.pos.On("FindByID", mock.Anything, clerk, int64(11)).Return(po, nil)
		f.pos.On("Save", mock.Anything, po).Return(nil)
		f.bills.On("Save", mock.Anything, mock.AnythingOfType("*finance.VendorBill")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*finance.VendorBill) }).
			Return(nil)
		f.movements.On("Append", mock.Anything, mock.AnythingOfType("*inventory.StockMovement")).Return(nil)
		f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(events []shared.DomainEvent) bool {
			return len(events) == 1 && events[0].EventType() == trade.EventTypePurchaseOrderConverted
		})).Return(nil)

		result, err := f.poSvc.ConvertToBill(context.Background(), clerk, 11)

		require.NoError(t, err)
		assert.Equal(t, "BILL-001-0001", result.Number)
		assert.Equal(t, int64(31), result.ID)
		assert.Equal(t, trade.PurchaseOrderStatusReceived, po.Status)
		assert.Equal(t, 1, f.tx.Calls)

		require.NotNil(t, saved)
		require.Len(t, saved.Lines, len(po.Items))
		for i, line := range saved.Lines {
			assert.True(t, po.Items[i].Quantity.Equal(line.Quantity))
			assert.True(t, po.Items[i].UnitPrice.Equal(line.UnitPrice))
			assert.True(t, po.Items[i].LineTotal.Equal(line.LineTotal))
		}
		assert.Equal(t, deliveryDate, saved.DueDate)
		assert.True(t, po.TotalAmount.Equal(saved.TotalAmount))

		require.Len(t, f.movements.Appended, 2)
		for i, m := range f.movements.Appended {
			assert.Equal(t, inventory.MovementIn, m.MovementType)
			assert.Equal(t, inventory.ReferencePurchaseOrder, m.ReferenceType)
			assert.Equal(t, po.Items[i].ProductID, m.ProductID)
			assert.Equal(t, int64(11), *m.ReferenceID)
			assert.Equal(t, "Stock in from PO-001-0007", m.Notes)
		}
		f.publisher.AssertExpectations(t)
	})

	t.Run("publish failure does not fail the conversion", func(t *testing.T) {
		f := newTradeFixture()
		po := confirmedPurchaseOrder(t)
		f.pos.On("FindByID", mock.Anything, clerk, int64(11)).Return(po, nil)
		f.pos.On("Save", mock.Anything, po).Return(nil)
		f.bills.On("Save", mock.Anything, mock.Anything).Return(nil)
		f.movements.On("Append", mock.Anything, mock.Anything).Return(nil)
		f.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker unavailable"))

		_, err := f.poSvc.ConvertToBill(context.Background(), clerk, 11)

		require.NoError(t, err)
	})

	t.Run("movement failure surfaces and no event is published", func(t *testing.T) {
		f := newTradeFixture()
		po := confirmedPurchaseOrder(t)
		f.pos.On("FindByID", mock.Anything, clerk, int64(11)).Return(po, nil)
		f.pos.On("Save", mock.Anything, po).Return(nil)
		f.bills.On("Save", mock.Anything, mock.Anything).Return(nil)
		f.movements.On("Append", mock.Anything, mock.Anything).Return(errors.New("constraint"))

		_, err := f.poSvc.ConvertToBill(context.Background(), clerk, 11)

		require.Error(t, err)
		f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}

func TestSalesOrderService_CreateNumbersPerCompany(t *testing.T) {
	ctx := context.Background()
	f := newTradeFixture()
	f.companies.On("FindByID", mock.Anything, clerk, mock.AnythingOfType("int64")).Return(&partner.Company{}, nil)
	f.contacts.On("FindByID", mock.Anything, clerk, int64(9)).Return(&partner.Contact{Name: "Initech", ContactType: partner.ContactTypeCustomer}, nil)
	f.sos.On("Save", mock.Anything, mock.AnythingOfType("*trade.SalesOrder")).Return(nil)
	f.withProducts(1, 100)
	f.withProducts(2, 200)

	req := SalesOrderRequest{
		CompanyID:            1,
		CustomerID:           9,
		SODate:               common.NewDate(orderDate),
		ExpectedDeliveryDate: common.NewDate(deliveryDate),
		Items:                []LineRequest{{ProductID: 100, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(3)}},
	}
	a, err := f.soSvc.Create(ctx, clerk, req)
	require.NoError(t, err)
	req.CompanyID = 2
	req.Items[0].ProductID = 200
	b, err := f.soSvc.Create(ctx, clerk, req)
	require.NoError(t, err)

	assert.Equal(t, "SO-001-0001", a.SONumber)
	assert.Equal(t, "SO-002-0001", b.SONumber)
	assert.Equal(t, "Initech", a.CustomerName)
}

func TestSalesOrderService_ConvertToInvoice(t *testing.T) {
	t.Run("rejects drafts", func(t *testing.T) {
		f := newTradeFixture()
		so, err := trade.NewSalesOrder(5, header(9, "SO-001-0003"), twoLines())
		require.NoError(t, err)
		f.sos.On("FindByID", mock.Anything, clerk, int64(21)).Return(so, nil)

		_, err = f.soSvc.ConvertToInvoice(context.Background(), clerk, 21)

		assertCode(t, err, "INVALID_STATE")
		f.invoices.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("creates invoice and outbound movements", func(t *testing.T) {
		f := newTradeFixture()
		so := confirmedSalesOrder(t)
		f.sos.On("FindByID", mock.Anything, clerk, int64(21)).Return(so, nil)
		f.sos.On("Save", mock.Anything, so).Return(nil)
		f.invoices.On("Save", mock.Anything, mock.MatchedBy(func(inv *finance.CustomerInvoice) bool {
			return len(inv.Lines) == 2 && *inv.SalesOrderID == 21 && inv.Status == finance.InvoiceStatusDraft
		})).Return(nil)
		f.movements.On("Append", mock.Anything, mock.AnythingOfType("*inventory.StockMovement")).Return(nil)
		f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		result, err := f.soSvc.ConvertToInvoice(context.Background(), clerk, 21)

		require.NoError(t, err)
		assert.Equal(t, "INV-001-0001", result.Number)
		assert.Equal(t, trade.SalesOrderStatusDelivered, so.Status)
		require.Len(t, f.movements.Appended, 2)
		for _, m := range f.movements.Appended {
			assert.Equal(t, inventory.MovementOut, m.MovementType)
			assert.Equal(t, inventory.ReferenceSalesOrder, m.ReferenceType)
			assert.Equal(t, "Stock out from SO-001-0003", m.Notes)
			assert.True(t, m.Delta().IsNegative())
		}
		f.invoices.AssertExpectations(t)
	})

	t.Run("converting twice fails", func(t *testing.T) {
		f := newTradeFixture()
		so := confirmedSalesOrder(t)
		f.sos.On("FindByID", mock.Anything, clerk, int64(21)).Return(so, nil)
		f.sos.On("Save", mock.Anything, so).Return(nil)
		f.invoices.On("Save", mock.Anything, mock.Anything).Return(nil)
		f.movements.On("Append", mock.Anything, mock.Anything).Return(nil)
		f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		_, err := f.soSvc.ConvertToInvoice(context.Background(), clerk, 21)
		require.NoError(t, err)
		_, err = f.soSvc.ConvertToInvoice(context.Background(), clerk, 21)
		assertCode(t, err, "INVALID_STATE")
		f.invoices.AssertNumberOfCalls(t, "Save", 1)
	})
}

func TestPurchaseOrderService_List(t *testing.T) {
	ctx := context.Background()
	f := newTradeFixture()
	po := confirmedPurchaseOrder(t)
	filter := shared.Filter{Page: 2, PageSize: 1}
	f.pos.On("FindAll", ctx, clerk, mock.AnythingOfType("shared.Filter")).Return([]trade.PurchaseOrder{*po}, int64(3), nil)

	page, err := f.poSvc.List(ctx, clerk, filter)

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "PO-001-0007", page.Items[0].PONumber)
	assert.Equal(t, int64(3), page.Total)
}

func TestPurchaseOrderService_RejectsOtherCompanyProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		f := newTradeFixture()
		f.companies.On("FindByID", mock.Anything, clerk, int64(1)).Return(&partner.Company{Name: "Acme"}, nil)
		f.contacts.On("FindByID", mock.Anything, clerk, int64(8)).Return(&partner.Contact{Name: "Globex", ContactType: partner.ContactTypeSupplier}, nil)
		f.withProducts(1, 100)
		f.withProducts(2, 101)

		_, err := f.poSvc.Create(ctx, clerk, poRequest())

		assertCode(t, err, "VALIDATION_ERROR")
		assert.Contains(t, err.Error(), "product 101 does not belong to company 1")
		f.pos.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("create with an invisible product", func(t *testing.T) {
		f := newTradeFixture()
		f.companies.On("FindByID", mock.Anything, clerk, int64(1)).Return(&partner.Company{Name: "Acme"}, nil)
		f.contacts.On("FindByID", mock.Anything, clerk, int64(8)).Return(&partner.Contact{Name: "Globex", ContactType: partner.ContactTypeSupplier}, nil)
		f.withProducts(1, 100)
		f.products.On("FindByID", mock.Anything, clerk, int64(101)).Return(nil, shared.NewNotFoundError("product", 101))

		_, err := f.poSvc.Create(ctx, clerk, poRequest())

		assertCode(t, err, "VALIDATION_ERROR")
		f.pos.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("update", func(t *testing.T) {
		f := newTradeFixture()
		f.companies.On("FindByID", mock.Anything, clerk, int64(1)).Return(&partner.Company{Name: "Acme"}, nil)
		f.contacts.On("FindByID", mock.Anything, clerk, int64(8)).Return(&partner.Contact{Name: "Globex", ContactType: partner.ContactTypeSupplier}, nil)
		f.withProducts(1, 100)
		f.withProducts(2, 101)
		po, err := trade.NewPurchaseOrder(5, header(8, "PO-001-0001"), []trade.LineInput{
			{ProductID: 100, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1)},
		})
		require.NoError(t, err)
		f.pos.On("FindByID", mock.Anything, clerk, int64(11)).Return(po, nil)

		_, err = f.poSvc.Update(ctx, clerk, 11, poRequest())

		assertCode(t, err, "VALIDATION_ERROR")
		f.pos.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestSalesOrderService_RejectsOtherCompanyProducts(t *testing.T) {
	ctx := context.Background()
	f := newTradeFixture()
	f.companies.On("FindByID", mock.Anything, clerk, int64(1)).Return(&partner.Company{}, nil)
	f.contacts.On("FindByID", mock.Anything, clerk, int64(9)).Return(&partner.Contact{Name: "Initech", ContactType: partner.ContactTypeCustomer}, nil)
	f.withProducts(1, 100)
	f.withProducts(2, 200)
	f.sos.On("Save", mock.Anything, mock.AnythingOfType("*trade.SalesOrder")).Return(nil)

	req := SalesOrderRequest{
		CompanyID:            1,
		CustomerID:           9,
		SODate:               common.NewDate(orderDate),
		ExpectedDeliveryDate: common.NewDate(deliveryDate),
		Items:                []LineRequest{{ProductID: 200, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(3)}},
	}
	_, err := f.soSvc.Create(ctx, clerk, req)
	assertCode(t, err, "VALIDATION_ERROR")
	f.sos.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)

	req.Items[0].ProductID = 100
	created, err := f.soSvc.Create(ctx, clerk, req)
	require.NoError(t, err)
	require.Len(t, created.Items, 1)

	so, err := trade.NewSalesOrder(5, header(9, created.SONumber), []trade.LineInput{
		{ProductID: 100, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(3)},
	})
	require.NoError(t, err)
	f.sos.On("FindByID", mock.Anything, clerk, int64(21)).Return(so, nil)

	req.Items[0].ProductID = 200
	_, err = f.soSvc.Update(ctx, clerk, 21, req)
	assertCode(t, err, "VALIDATION_ERROR")
	f.sos.AssertNumberOfCalls(t, "Save", 1)
}
