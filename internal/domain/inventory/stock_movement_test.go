package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStockMovement_Validation(t *testing.T) {
	base := MovementInput{CompanyID: 1, ProductID: 2, MovementType: MovementIn, Quantity: decimal.NewFromInt(5)}

	m, err := NewStockMovement(9, base)
	require.NoError(t, err)
	assert.Equal(t, ReferenceManual, m.ReferenceType)

	neg := base
	neg.Quantity = decimal.NewFromInt(-5)
	_, err = NewStockMovement(9, neg)
	assert.ErrorContains(t, err, "positive")

	adj := base
	adj.MovementType = MovementAdjustment
	adj.Quantity = decimal.NewFromInt(-3)
	m, err = NewStockMovement(9, adj)
	require.NoError(t, err)
	assert.Equal(t, "-3", m.Delta().String())

	adj.Quantity = decimal.Zero
	_, err = NewStockMovement(9, adj)
	assert.Error(t, err)

	bad := base
	bad.MovementType = "transfer"
	_, err = NewStockMovement(9, bad)
	assert.Error(t, err)
}

func TestNewDocumentMovement(t *testing.T) {
	m, err := NewDocumentMovement(1, 4, 7, MovementIn, decimal.NewFromInt(3), ReferencePurchaseOrder, 12, "PO-004-0001")
	require.NoError(t, err)
	assert.Equal(t, "Stock in from PO-004-0001", m.Notes)
	require.NotNil(t, m.ReferenceID)
	assert.Equal(t, int64(12), *m.ReferenceID)

	m, err = NewDocumentMovement(1, 4, 7, MovementOut, decimal.NewFromInt(3), ReferenceSalesOrder, 13, "SO-004-0002")
	require.NoError(t, err)
	assert.Equal(t, "Stock out from SO-004-0002", m.Notes)
	assert.Equal(t, "-3", m.Delta().String())
}

func TestSummarize(t *testing.T) {
	mk := func(pid int64, mt MovementType, q int64) StockMovement {
		return StockMovement{ProductID: pid, MovementType: mt, Quantity: decimal.NewFromInt(q)}
	}
	out := Summarize([]StockMovement{
		mk(1, MovementIn, 10),
		mk(2, MovementIn, 4),
		mk(1, MovementOut, 3),
		mk(1, MovementAdjustment, -2),
	})

	require.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].ProductID)
	assert.Equal(t, "10", out[0].TotalIn.String())
	assert.Equal(t, "3", out[0].TotalOut.String())
	assert.Equal(t, "-2", out[0].TotalAdjustment.String())
	assert.Equal(t, "5", out[0].OnHand.String())
	assert.Equal(t, "4", out[1].OnHand.String())
}
