package common

import (
	"context"

	"github.com/erp/bizhub/internal/domain/shared"
)

// WithNumber runs fn with current when the caller supplied a number, otherwise
// with the next number of scheme while the sequence is held
func WithNumber(ctx context.Context, seq shared.NumberSequencer, scheme shared.NumberingScheme,
	companyID int64, current string, fn func(ctx context.Context, number string) error) error {
	if current != "" {
		return fn(ctx, current)
	}
	return seq.WithNext(ctx, scheme, companyID, fn)
}

// StaticSequencer formats numbers from an in-memory counter. It is meant for tests
// and single-process tools.
type StaticSequencer struct {
	last map[string]int
}

// NewStaticSequencer creates an empty StaticSequencer
func NewStaticSequencer() *StaticSequencer {
	return &StaticSequencer{last: make(map[string]int)}
}

// WithNext increments the counter for the sequence and runs fn. The counter is
// only advanced when fn succeeds.
func (s *StaticSequencer) WithNext(ctx context.Context, scheme shared.NumberingScheme, companyID int64, fn func(ctx context.Context, number string) error) error {
	key := scheme.LockKey(companyID)
	next := s.last[key] + 1
	if err := fn(ctx, scheme.Format(companyID, next)); err != nil {
		return err
	}
	s.last[key] = next
	return nil
}

var _ shared.NumberSequencer = (*StaticSequencer)(nil)
