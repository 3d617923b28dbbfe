package shared

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// DocumentPrefix identifies the family of a numbered document
type DocumentPrefix string

const (
	PrefixPurchaseOrder      DocumentPrefix = "PO"
	PrefixSalesOrder         DocumentPrefix = "SO"
	PrefixVendorBill         DocumentPrefix = "BILL"
	PrefixCustomerInvoice    DocumentPrefix = "INV"
	PrefixOrder              DocumentPrefix = "ORD"
	PrefixManufacturingOrder DocumentPrefix = "MO"
	PrefixWorkOrder          DocumentPrefix = "WO"
)

// NumberingScheme describes how a document number is laid out.
// Company-scoped schemes render as PREFIX-CCC-SSSS, global ones as PREFIX-SSSSSS.
type NumberingScheme struct {
	Prefix        DocumentPrefix
	CompanyScoped bool
	Width         int
}

// Schemes for every numbered document
var (
	PurchaseOrderNumbering      = NumberingScheme{Prefix: PrefixPurchaseOrder, CompanyScoped: true, Width: 4}
	SalesOrderNumbering         = NumberingScheme{Prefix: PrefixSalesOrder, CompanyScoped: true, Width: 4}
	VendorBillNumbering         = NumberingScheme{Prefix: PrefixVendorBill, CompanyScoped: true, Width: 4}
	CustomerInvoiceNumbering    = NumberingScheme{Prefix: PrefixCustomerInvoice, CompanyScoped: true, Width: 4}
	OrderNumbering              = NumberingScheme{Prefix: PrefixOrder, Width: 6}
	ManufacturingOrderNumbering = NumberingScheme{Prefix: PrefixManufacturingOrder, Width: 6}
	WorkOrderNumbering          = NumberingScheme{Prefix: PrefixWorkOrder, Width: 6}
)

// ScopePrefix returns the part of the number shared by every document in the same sequence
func (s NumberingScheme) ScopePrefix(companyID int64) string {
	if s.CompanyScoped {
		return fmt.Sprintf("%s-%03d-", s.Prefix, companyID)
	}
	return string(s.Prefix) + "-"
}

// Format renders the number for the given sequence value
func (s NumberingScheme) Format(companyID int64, sequence int) string {
	return fmt.Sprintf("%s%0*d", s.ScopePrefix(companyID), s.Width, sequence)
}

// Next returns the number following last. An empty last starts the sequence at 1.
func (s NumberingScheme) Next(companyID int64, last string) (string, error) {
	if last == "" {
		return s.Format(companyID, 1), nil
	}
	seq, err := ParseSequence(last)
	if err != nil {
		return "", err
	}
	return s.Format(companyID, seq+1), nil
}

// LockKey returns the key used to serialize number generation for this sequence
func (s NumberingScheme) LockKey(companyID int64) string {
	if s.CompanyScoped {
		return fmt.Sprintf("docseq:%s:%d", s.Prefix, companyID)
	}
	return fmt.Sprintf("docseq:%s", s.Prefix)
}

// ParseSequence extracts the trailing integer after the last '-'
func ParseSequence(number string) (int, error) {
	idx := strings.LastIndex(number, "-")
	if idx < 0 || idx == len(number)-1 {
		return 0, NewValidationError("malformed document number %q", number)
	}
	seq, err := strconv.Atoi(number[idx+1:])
	if err != nil || seq < 0 {
		return 0, NewValidationError("malformed document number %q", number)
	}
	return seq, nil
}

// NumberSequencer hands out the next number of a sequence. fn runs while the
// sequence is held, so the number is taken once fn's writes commit.
type NumberSequencer interface {
	WithNext(ctx context.Context, scheme NumberingScheme, companyID int64, fn func(ctx context.Context, number string) error) error
}
