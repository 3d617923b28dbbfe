package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/domain/trade"
	"github.com/erp/bizhub/internal/infrastructure/lock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestSequencer(db *gorm.DB) *Sequencer {
	return NewSequencer(db, lock.NewLocalLocker(), time.Second, 200*time.Millisecond)
}

func savePurchaseOrder(t *testing.T, db *gorm.DB, seq *Sequencer, companyID, supplierID, productID int64) *trade.PurchaseOrder {
	t.Helper()
	po, err := trade.NewPurchaseOrder(1, trade.OrderHeader{
		CompanyID:            companyID,
		PartnerID:            supplierID,
		Date:                 day,
		ExpectedDeliveryDate: day.AddDate(0, 0, 7),
	}, []trade.LineInput{{ProductID: productID, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(10)}})
	require.NoError(t, err)

	repo := NewGormPurchaseOrderRepository(db)
	err = seq.WithNext(context.Background(), shared.PurchaseOrderNumbering, companyID, func(ctx context.Context, number string) error {
		po.AssignNumber(number)
		return repo.Save(ctx, po)
	})
	require.NoError(t, err)
	return po
}

func TestSequencer_CompanyScopedNumbers(t *testing.T) {
	db := setupTestDB(t)
	seq := newTestSequencer(db)
	c1 := seedCompany(t, db, 1, "acme")
	c2 := seedCompany(t, db, 1, "globex")
	s1 := seedContact(t, db, 1, c1.ID, "supplier")
	s2 := seedContact(t, db, 1, c2.ID, "supplier")
	p := seedProduct(t, db, 1, c1.ID, "SKU-1", "10")

	first := savePurchaseOrder(t, db, seq, c1.ID, s1.ID, p.ID)
	second := savePurchaseOrder(t, db, seq, c1.ID, s1.ID, p.ID)
	other := savePurchaseOrder(t, db, seq, c2.ID, s2.ID, p.ID)

	assert.Equal(t, shared.PurchaseOrderNumbering.Format(c1.ID, 1), first.PONumber)
	assert.Equal(t, shared.PurchaseOrderNumbering.Format(c1.ID, 2), second.PONumber)
	assert.Equal(t, shared.PurchaseOrderNumbering.Format(c2.ID, 1), other.PONumber)
	assert.Regexp(t, `^PO-\d{3}-\d{4}$`, first.PONumber)
}

func TestSequencer_Last(t *testing.T) {
	db := setupTestDB(t)
	seq := newTestSequencer(db)
	ctx := context.Background()

	last, err := seq.Last(ctx, shared.OrderNumbering, 0)
	require.NoError(t, err)
	assert.Empty(t, last)

	for _, n := range []string{"ORD-000009", "ORD-000010", "ORD-LEGACY", "ORD-1000000", "ORD-9999999X"} {
		require.NoError(t, db.Exec(
			"INSERT INTO orders (created_at, updated_at, created_by, order_number, status, subtotal, tax_amount, delivery_charge, total_amount, shipping_address, payment_method, payment_status) VALUES (?, ?, 1, ?, 'pending', 0, 0, 0, 0, 'x', 'cash_on_delivery', 'pending')",
			day, day, n).Error)
	}

	last, err = seq.Last(ctx, shared.OrderNumbering, 0)
	require.NoError(t, err)
	// longer numbers sort after shorter ones once the width overflows
	assert.Equal(t, "ORD-1000000", last)

	next, err := shared.OrderNumbering.Next(0, last)
	require.NoError(t, err)
	assert.Equal(t, "ORD-1000001", next)
}

func TestSequencer_FailedWriteDoesNotConsumeNumber(t *testing.T) {
	db := setupTestDB(t)
	seq := newTestSequencer(db)
	c := seedCompany(t, db, 1, "acme")
	s := seedContact(t, db, 1, c.ID, "supplier")
	p := seedProduct(t, db, 1, c.ID, "SKU-1", "10")

	boom := errors.New("boom")
	err := seq.WithNext(context.Background(), shared.PurchaseOrderNumbering, c.ID, func(ctx context.Context, number string) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)

	po := savePurchaseOrder(t, db, seq, c.ID, s.ID, p.ID)
	assert.Equal(t, shared.PurchaseOrderNumbering.Format(c.ID, 1), po.PONumber)
}

func TestSequencer_BusyLockIsConflict(t *testing.T) {
	db := setupTestDB(t)
	locker := lock.NewLocalLocker()
	seq := NewSequencer(db, locker, time.Second, 20*time.Millisecond)
	scheme := shared.ManufacturingOrderNumbering

	held, err := locker.Obtain(context.Background(), scheme.LockKey(0), time.Second, 0)
	require.NoError(t, err)
	defer held.Release(context.Background())

	err = seq.WithNext(context.Background(), scheme, 0, func(ctx context.Context, number string) error {
		t.Fatal("fn must not run without the lock")
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrConflict)
	assert.Contains(t, err.Error(), "MO numbering is busy")
}

func TestSequencer_UnknownPrefix(t *testing.T) {
	db := setupTestDB(t)
	seq := newTestSequencer(db)

	_, err := seq.Last(context.Background(), shared.NumberingScheme{Prefix: "XX", Width: 4}, 0)
	assert.Error(t, err)
}
