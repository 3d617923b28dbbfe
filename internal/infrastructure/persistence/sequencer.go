package persistence

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/infrastructure/lock"
	"gorm.io/gorm"
)

// sequenceBatch is how many candidate numbers are scanned per query when
// looking for the highest well-formed number
const sequenceBatch = 50

type numberColumn struct {
	table  string
	column string
}

var numberColumns = map[shared.DocumentPrefix]numberColumn{
	shared.PrefixPurchaseOrder:      {"purchase_orders", "po_number"},
	shared.PrefixSalesOrder:         {"sales_orders", "so_number"},
	shared.PrefixVendorBill:         {"vendor_bills", "bill_number"},
	shared.PrefixCustomerInvoice:    {"customer_invoices", "invoice_number"},
	shared.PrefixOrder:              {"orders", "order_number"},
	shared.PrefixManufacturingOrder: {"manufacturing_orders", "order_number"},
	shared.PrefixWorkOrder:          {"work_orders", "work_order_number"},
}

// Sequencer generates document numbers by reading the current maximum.
// Generation for one sequence is serialized by a named lock held until the
// caller's transaction has committed.
type Sequencer struct {
	db     *gorm.DB
	locker lock.Locker
	ttl    time.Duration
	wait   time.Duration
}

// NewSequencer creates a Sequencer. ttl bounds a crashed holder; wait bounds how
// long a request queues behind other writers of the same sequence.
func NewSequencer(db *gorm.DB, locker lock.Locker, ttl, wait time.Duration) *Sequencer {
	return &Sequencer{db: db, locker: locker, ttl: ttl, wait: wait}
}

// WithNext holds the sequence, computes the next number and runs fn with it
func (s *Sequencer) WithNext(ctx context.Context, scheme shared.NumberingScheme, companyID int64, fn func(ctx context.Context, number string) error) error {
	err := lock.WithLock(ctx, s.locker, scheme.LockKey(companyID), s.ttl, s.wait, func(ctx context.Context) error {
		last, err := s.Last(ctx, scheme, companyID)
		if err != nil {
			return err
		}
		next, err := scheme.Next(companyID, last)
		if err != nil {
			return err
		}
		return fn(ctx, next)
	})
	if errors.Is(err, lock.ErrNotObtained) {
		return shared.NewDomainError("CONFLICT",
			fmt.Sprintf("%s numbering is busy, retry the request", scheme.Prefix))
	}
	return err
}

// Last returns the highest committed number of the sequence, or "" if none exists.
// Numbers whose suffix is not an integer are skipped.
func (s *Sequencer) Last(ctx context.Context, scheme shared.NumberingScheme, companyID int64) (string, error) {
	target, ok := numberColumns[scheme.Prefix]
	if !ok {
		return "", fmt.Errorf("sequencer: no table registered for prefix %s", scheme.Prefix)
	}
	prefix := scheme.ScopePrefix(companyID)
	col := target.column

	for offset := 0; ; offset += sequenceBatch {
		var numbers []string
		err := s.db.WithContext(ctx).
			Table(target.table).
			Where(col+" LIKE ?", prefix+"%").
			Order("LENGTH(" + col + ") DESC").
			Order(col + " DESC").
			Offset(offset).
			Limit(sequenceBatch).
			Pluck(col, &numbers).Error
		if err != nil {
			return "", fmt.Errorf("sequencer: read last %s: %w", scheme.Prefix, err)
		}
		for _, n := range numbers {
			if wellFormed(n, prefix) {
				return n, nil
			}
		}
		if len(numbers) < sequenceBatch {
			return "", nil
		}
	}
}

func wellFormed(number, prefix string) bool {
	suffix := strings.TrimPrefix(number, prefix)
	if suffix == number || suffix == "" || strings.Contains(suffix, "-") {
		return false
	}
	_, err := strconv.Atoi(suffix)
	return err == nil
}

var _ shared.NumberSequencer = (*Sequencer)(nil)
