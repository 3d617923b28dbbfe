package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() ProductDetails {
	return ProductDetails{
		CompanyID: 1,
		Name:      "Steel Bolt",
		SKU:       "BOLT-01",
		UnitPrice: decimal.RequireFromString("12.345"),
	}
}

func TestNewProduct(t *testing.T) {
	p, err := NewProduct(3, validDetails())
	require.NoError(t, err)

	assert.Equal(t, ProductTypeGoods, p.ProductType)
	assert.Equal(t, DefaultDeliveryTime, p.DeliveryTime)
	assert.Equal(t, 1, p.MinOrderQuantity)
	assert.True(t, p.UnitPrice.Equal(decimal.RequireFromString("12.35")))
	assert.True(t, p.StockQuantity.IsZero())
	assert.True(t, p.IsActive)
}

func TestNewProduct_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ProductDetails)
		msg    string
	}{
		{"missing sku", func(d *ProductDetails) { d.SKU = " " }, "sku"},
		{"missing name", func(d *ProductDetails) { d.Name = "" }, "name"},
		{"negative price", func(d *ProductDetails) { d.UnitPrice = decimal.NewFromInt(-1) }, "unit_price"},
		{"bad type", func(d *ProductDetails) { d.ProductType = "digital" }, "product_type"},
		{"missing company", func(d *ProductDetails) { d.CompanyID = 0 }, "company_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDetails()
			tt.mutate(&d)
			_, err := NewProduct(3, d)
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestProduct_ApplyStockDelta(t *testing.T) {
	p, err := NewProduct(3, validDetails())
	require.NoError(t, err)

	p.ApplyStockDelta(decimal.NewFromInt(15))
	p.ApplyStockDelta(decimal.NewFromInt(-7))

	assert.True(t, p.StockQuantity.Equal(decimal.NewFromInt(8)))
	assert.True(t, p.IsLowStock(decimal.NewFromInt(10)))
	assert.False(t, p.IsLowStock(decimal.NewFromInt(8)))
}

func TestTax_AmountFor(t *testing.T) {
	gst, err := NewTax(1, 1, "GST", decimal.NewFromInt(18), TaxTypePercentage)
	require.NoError(t, err)
	assert.Equal(t, "18", gst.AmountFor(decimal.NewFromInt(100)).String())

	flat, err := NewTax(1, 1, "Cess", decimal.RequireFromString("2.5"), TaxTypeFixed)
	require.NoError(t, err)
	assert.Equal(t, "2.5", flat.AmountFor(decimal.NewFromInt(1000)).String())

	_, err = NewTax(1, 1, "Bad", decimal.NewFromInt(101), TaxTypePercentage)
	assert.Error(t, err)
}

func TestNewProductImage(t *testing.T) {
	img, err := NewProductImage(42, "image/PNG", true)
	require.NoError(t, err)
	assert.Contains(t, img.StorageKey, "products/42/")
	assert.Contains(t, img.StorageKey, ".png")

	_, err = NewProductImage(42, "application/pdf", false)
	assert.Error(t, err)
}
