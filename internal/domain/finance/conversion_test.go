package finance

import (
	"testing"
	"time"

	"github.com/erp/bizhub/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirmedPO(t *testing.T) *trade.PurchaseOrder {
	t.Helper()
	day := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	po, err := trade.NewPurchaseOrder(3, trade.OrderHeader{
		CompanyID:            4,
		PartnerID:            9,
		Date:                 day,
		ExpectedDeliveryDate: day.AddDate(0, 1, 0),
		TaxAmount:            decimal.NewFromInt(5),
		Notes:                "urgent",
	}, []trade.LineInput{
		{ProductID: 1, Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(10)},
		{ProductID: 2, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("99.99")},
	})
	require.NoError(t, err)
	po.ID = 21
	po.PONumber = "PO-004-0001"
	require.NoError(t, po.Confirm())
	return po
}

func TestNewVendorBillFromPurchaseOrder(t *testing.T) {
	po := confirmedPO(t)

	bill, err := NewVendorBillFromPurchaseOrder(po, 8)
	require.NoError(t, err)

	assert.Equal(t, BillStatusDraft, bill.Status)
	assert.Equal(t, po.CompanyID, bill.CompanyID)
	assert.Equal(t, po.SupplierID, bill.SupplierID)
	require.NotNil(t, bill.PurchaseOrderID)
	assert.Equal(t, int64(21), *bill.PurchaseOrderID)
	assert.Equal(t, po.PODate, bill.BillDate)
	assert.Equal(t, po.ExpectedDeliveryDate, bill.DueDate)
	assert.True(t, bill.TotalAmount.Equal(po.TotalAmount))
	assert.Equal(t, "urgent", bill.Notes)
	assert.Equal(t, int64(8), bill.CreatedBy)

	require.Len(t, bill.Lines, len(po.Items))
	for i, line := range bill.Lines {
		assert.Equal(t, po.Items[i].ProductID, line.ProductID)
		assert.True(t, po.Items[i].Quantity.Equal(line.Quantity))
		assert.True(t, po.Items[i].UnitPrice.Equal(line.UnitPrice))
		assert.True(t, po.Items[i].LineTotal.Equal(line.LineTotal))
	}
}

func TestNewVendorBillFromPurchaseOrder_RequiresConfirmed(t *testing.T) {
	po := confirmedPO(t)
	require.NoError(t, po.MarkReceived())

	bill, err := NewVendorBillFromPurchaseOrder(po, 8)
	assert.Nil(t, bill)
	assert.ErrorContains(t, err, "confirmed")
}

func TestNewCustomerInvoiceFromSalesOrder(t *testing.T) {
	day := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	so, err := trade.NewSalesOrder(3, trade.OrderHeader{
		CompanyID: 4, PartnerID: 6, Date: day, ExpectedDeliveryDate: day,
	}, []trade.LineInput{{ProductID: 1, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(40)}})
	require.NoError(t, err)

	_, err = NewCustomerInvoiceFromSalesOrder(so, 3)
	assert.Error(t, err)

	require.NoError(t, so.Confirm())
	inv, err := NewCustomerInvoiceFromSalesOrder(so, 3)
	require.NoError(t, err)
	assert.Equal(t, InvoiceStatusDraft, inv.Status)
	assert.Equal(t, "80", inv.TotalAmount.String())
	assert.Len(t, inv.Lines, 1)
}

func TestInvoice_StatusFlow(t *testing.T) {
	inv := &CustomerInvoice{Status: InvoiceStatusDraft, DueDate: time.Now().Add(-time.Hour)}

	assert.Error(t, inv.ChangeStatus(InvoiceStatusPaid))
	assert.Error(t, inv.ChangeStatus("void"))
	require.NoError(t, inv.ChangeStatus(InvoiceStatusSent))
	assert.True(t, inv.IsPastDue(time.Now()))
	require.NoError(t, inv.ChangeStatus(InvoiceStatusOverdue))
	require.NoError(t, inv.ChangeStatus(InvoiceStatusPaid))
	assert.Error(t, inv.ChangeStatus(InvoiceStatusCancelled))
}

func TestBill_StatusFlow(t *testing.T) {
	bill := &VendorBill{Status: BillStatusDraft}
	require.NoError(t, bill.ChangeStatus(BillStatusConfirmed))
	require.NoError(t, bill.ChangeStatus(BillStatusPaid))
	assert.Error(t, bill.ChangeStatus(BillStatusCancelled))
}
