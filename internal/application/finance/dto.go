package finance

import (
	"time"

	"github.com/erp/bizhub/internal/application/common"
	"github.com/erp/bizhub/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// StatusRequest changes the status of a bill or invoice
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// LineResponse is a bill or invoice line
type LineResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

func toLineResponses(lines []finance.Line) []LineResponse {
	out := make([]LineResponse, len(lines))
	for i, l := range lines {
		out[i] = LineResponse{
			ID:          l.ID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			LineTotal:   l.LineTotal,
		}
	}
	return out
}

// VendorBillResponse is the API view of a vendor bill
type VendorBillResponse struct {
	ID              int64           `json:"id"`
	CompanyID       int64           `json:"company"`
	SupplierID      int64           `json:"supplier"`
	SupplierName    string          `json:"supplier_name"`
	PurchaseOrderID *int64          `json:"purchase_order"`
	BillNumber      string          `json:"bill_number"`
	BillDate        common.Date     `json:"bill_date"`
	DueDate         common.Date     `json:"due_date"`
	Status          string          `json:"status"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Notes           string          `json:"notes"`
	Items           []LineResponse  `json:"items"`
	CreatedBy       int64           `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToVendorBillResponse converts a domain vendor bill
func ToVendorBillResponse(b *finance.VendorBill) VendorBillResponse {
	return VendorBillResponse{
		ID:              b.ID,
		CompanyID:       b.CompanyID,
		SupplierID:      b.SupplierID,
		SupplierName:    b.SupplierName,
		PurchaseOrderID: b.PurchaseOrderID,
		BillNumber:      b.BillNumber,
		BillDate:        common.NewDate(b.BillDate),
		DueDate:         common.NewDate(b.DueDate),
		Status:          string(b.Status),
		Subtotal:        b.Subtotal,
		TaxAmount:       b.TaxAmount,
		TotalAmount:     b.TotalAmount,
		Notes:           b.Notes,
		Items:           toLineResponses(b.Lines),
		CreatedBy:       b.CreatedBy,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// CustomerInvoiceResponse is the API view of a customer invoice
type CustomerInvoiceResponse struct {
	ID            int64           `json:"id"`
	CompanyID     int64           `json:"company"`
	CustomerID    int64           `json:"customer"`
	CustomerName  string          `json:"customer_name"`
	SalesOrderID  *int64          `json:"sales_order"`
	InvoiceNumber string          `json:"invoice_number"`
	InvoiceDate   common.Date     `json:"invoice_date"`
	DueDate       common.Date     `json:"due_date"`
	Status        string          `json:"status"`
	PastDue       bool            `json:"past_due"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Notes         string          `json:"notes"`
	Items         []LineResponse  `json:"items"`
	CreatedBy     int64           `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func toCustomerInvoiceResponse(now time.Time) func(*finance.CustomerInvoice) CustomerInvoiceResponse {
	return func(i *finance.CustomerInvoice) CustomerInvoiceResponse {
		return CustomerInvoiceResponse{
			ID:            i.ID,
			CompanyID:     i.CompanyID,
			CustomerID:    i.CustomerID,
			CustomerName:  i.CustomerName,
			SalesOrderID:  i.SalesOrderID,
			InvoiceNumber: i.InvoiceNumber,
			InvoiceDate:   common.NewDate(i.InvoiceDate),
			DueDate:       common.NewDate(i.DueDate),
			Status:        string(i.Status),
			PastDue:       i.IsPastDue(now),
			Subtotal:      i.Subtotal,
			TaxAmount:     i.TaxAmount,
			TotalAmount:   i.TotalAmount,
			Notes:         i.Notes,
			Items:         toLineResponses(i.Lines),
			CreatedBy:     i.CreatedBy,
			CreatedAt:     i.CreatedAt,
			UpdatedAt:     i.UpdatedAt,
		}
	}
}

func mapSlice[T, R any](items []T, fn func(*T) R) []R {
	out := make([]R, len(items))
	for i := range items {
		out[i] = fn(&items[i])
	}
	return out
}
