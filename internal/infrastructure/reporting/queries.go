// Package reporting runs the read-only aggregate queries behind the report endpoints.
// Queries are written with '?' placeholders and rebound for the connected driver.
package reporting

import (
	"context"
	"fmt"
	"strings"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/report"
	"github.com/erp/bizhub/internal/infrastructure/persistence/datascope"
	"github.com/jmoiron/sqlx"
)

// Queries implements the report readers over a shared sqlx pool
type Queries struct {
	db *sqlx.DB
}

var (
	_ report.ERPReader        = (*Queries)(nil)
	_ report.StorefrontReader = (*Queries)(nil)
	_ report.ProductionReader = (*Queries)(nil)
)

// NewQueries creates report queries over db
func NewQueries(db *sqlx.DB) *Queries {
	return &Queries{db: db}
}

// where accumulates AND-ed predicates and their arguments
type where struct {
	parts []string
	args  []any
}

func (w *where) add(pred string, args ...any) {
	w.parts = append(w.parts, pred)
	w.args = append(w.args, args...)
}

// scoped restricts alias to rows the scope may see on resource, using the
// same predicate the repositories apply
func (w *where) scoped(scope identity.Scope, resource identity.Resource, alias string) {
	if clause, args := datascope.Predicate(scope, resource, alias); clause != "" {
		w.add(clause, args...)
	}
}

func (w *where) company(alias string, companyID *int64) {
	if companyID != nil {
		w.add(alias+".company_id = ?", *companyID)
	}
}

func (w *where) String() string {
	if len(w.parts) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.parts, " AND ")
}

func (q *Queries) get(ctx context.Context, dest any, query string, args ...any) error {
	if err := q.db.GetContext(ctx, dest, q.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("report query: %w", err)
	}
	return nil
}

func (q *Queries) selectAll(ctx context.Context, dest any, query string, args ...any) error {
	if err := q.db.SelectContext(ctx, dest, q.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("report query: %w", err)
	}
	return nil
}

// selectIn is selectAll for queries with IN (?) slice arguments
func (q *Queries) selectIn(ctx context.Context, dest any, query string, args ...any) error {
	expanded, flat, err := sqlx.In(query, args...)
	if err != nil {
		return fmt.Errorf("report query: %w", err)
	}
	return q.selectAll(ctx, dest, expanded, flat...)
}

// getIn is get for queries with IN (?) slice arguments
func (q *Queries) getIn(ctx context.Context, dest any, query string, args ...any) error {
	expanded, flat, err := sqlx.In(query, args...)
	if err != nil {
		return fmt.Errorf("report query: %w", err)
	}
	return q.get(ctx, dest, expanded, flat...)
}
