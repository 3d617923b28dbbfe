package trade

import (
	"time"

	"github.com/erp/bizhub/internal/application/common"
	"github.com/erp/bizhub/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// LineRequest is one line item of an order request
type LineRequest struct {
	ProductID int64           `json:"product" binding:"required,gt=0"`
	Quantity  decimal.Decimal `json:"quantity" binding:"decimal_gt0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func lineInputs(lines []LineRequest) []trade.LineInput {
	if lines == nil {
		return nil
	}
	out := make([]trade.LineInput, len(lines))
	for i, l := range lines {
		out[i] = trade.LineInput{ProductID: l.ProductID, Quantity: l.Quantity, UnitPrice: l.UnitPrice}
	}
	return out
}

// LineResponse is the API view of a line item
type LineResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

func toLineResponses(items []trade.LineItem) []LineResponse {
	out := make([]LineResponse, len(items))
	for i, it := range items {
		out[i] = LineResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
		}
	}
	return out
}

// ==================== Purchase Order DTOs ====================

// PurchaseOrderRequest creates or replaces a purchase order. On update a nil
// items list keeps the current lines.
type PurchaseOrderRequest struct {
	CompanyID            int64           `json:"company" binding:"required,gt=0"`
	SupplierID           int64           `json:"supplier" binding:"required,gt=0"`
	PONumber             string          `json:"po_number" binding:"max=50"`
	PODate               common.Date     `json:"po_date"`
	ExpectedDeliveryDate common.Date     `json:"expected_delivery_date"`
	TaxAmount            decimal.Decimal `json:"tax_amount"`
	Notes                string          `json:"notes"`
	Items                []LineRequest   `json:"items" binding:"omitempty,dive"`
}

func (r PurchaseOrderRequest) header() trade.OrderHeader {
	return trade.OrderHeader{
		CompanyID:            r.CompanyID,
		PartnerID:            r.SupplierID,
		Number:               r.PONumber,
		Date:                 r.PODate.Time,
		ExpectedDeliveryDate: r.ExpectedDeliveryDate.Time,
		TaxAmount:            r.TaxAmount,
		Notes:                r.Notes,
	}
}

// PurchaseOrderResponse is the API view of a purchase order
type PurchaseOrderResponse struct {
	ID                   int64           `json:"id"`
	CompanyID            int64           `json:"company"`
	SupplierID           int64           `json:"supplier"`
	SupplierName         string          `json:"supplier_name"`
	PONumber             string          `json:"po_number"`
	PODate               common.Date     `json:"po_date"`
	ExpectedDeliveryDate common.Date     `json:"expected_delivery_date"`
	Status               string          `json:"status"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	TaxAmount            decimal.Decimal `json:"tax_amount"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	Notes                string          `json:"notes"`
	Items                []LineResponse  `json:"items"`
	CreatedBy            int64           `json:"created_by"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// ToPurchaseOrderResponse converts a domain purchase order
func ToPurchaseOrderResponse(o *trade.PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		ID:                   o.ID,
		CompanyID:            o.CompanyID,
		SupplierID:           o.SupplierID,
		SupplierName:         o.SupplierName,
		PONumber:             o.PONumber,
		PODate:               common.NewDate(o.PODate),
		ExpectedDeliveryDate: common.NewDate(o.ExpectedDeliveryDate),
		Status:               string(o.Status),
		Subtotal:             o.Subtotal,
		TaxAmount:            o.TaxAmount,
		TotalAmount:          o.TotalAmount,
		Notes:                o.Notes,
		Items:                toLineResponses(o.Items),
		CreatedBy:            o.CreatedBy,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}

// ==================== Sales Order DTOs ====================

// SalesOrderRequest creates or replaces a sales order
type SalesOrderRequest struct {
	CompanyID            int64           `json:"company" binding:"required,gt=0"`
	CustomerID           int64           `json:"customer" binding:"required,gt=0"`
	SONumber             string          `json:"so_number" binding:"max=50"`
	SODate               common.Date     `json:"so_date"`
	ExpectedDeliveryDate common.Date     `json:"expected_delivery_date"`
	TaxAmount            decimal.Decimal `json:"tax_amount"`
	Notes                string          `json:"notes"`
	Items                []LineRequest   `json:"items" binding:"omitempty,dive"`
}

func (r SalesOrderRequest) header() trade.OrderHeader {
	return trade.OrderHeader{
		CompanyID:            r.CompanyID,
		PartnerID:            r.CustomerID,
		Number:               r.SONumber,
		Date:                 r.SODate.Time,
		ExpectedDeliveryDate: r.ExpectedDeliveryDate.Time,
		TaxAmount:            r.TaxAmount,
		Notes:                r.Notes,
	}
}

// SalesOrderResponse is the API view of a sales order
type SalesOrderResponse struct {
	ID                   int64           `json:"id"`
	CompanyID            int64           `json:"company"`
	CustomerID           int64           `json:"customer"`
	CustomerName         string          `json:"customer_name"`
	SONumber             string          `json:"so_number"`
	SODate               common.Date     `json:"so_date"`
	ExpectedDeliveryDate common.Date     `json:"expected_delivery_date"`
	Status               string          `json:"status"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	TaxAmount            decimal.Decimal `json:"tax_amount"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	Notes                string          `json:"notes"`
	Items                []LineResponse  `json:"items"`
	CreatedBy            int64           `json:"created_by"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// ToSalesOrderResponse converts a domain sales order
func ToSalesOrderResponse(o *trade.SalesOrder) SalesOrderResponse {
	return SalesOrderResponse{
		ID:                   o.ID,
		CompanyID:            o.CompanyID,
		CustomerID:           o.CustomerID,
		CustomerName:         o.CustomerName,
		SONumber:             o.SONumber,
		SODate:               common.NewDate(o.SODate),
		ExpectedDeliveryDate: common.NewDate(o.ExpectedDeliveryDate),
		Status:               string(o.Status),
		Subtotal:             o.Subtotal,
		TaxAmount:            o.TaxAmount,
		TotalAmount:          o.TotalAmount,
		Notes:                o.Notes,
		Items:                toLineResponses(o.Items),
		CreatedBy:            o.CreatedBy,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}

func mapSlice[T, R any](items []T, fn func(*T) R) []R {
	out := make([]R, len(items))
	for i := range items {
		out[i] = fn(&items[i])
	}
	return out
}
