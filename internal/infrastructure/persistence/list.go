package persistence

import (
	"strings"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/infrastructure/persistence/datascope"
	"gorm.io/gorm"
)

// listSpec describes how a table is searched, filtered and sorted by list endpoints
type listSpec struct {
	table    string
	resource identity.Resource
	// searchColumns are matched case-insensitively against filter.Search
	searchColumns []string
	// filterColumns maps a filter key to the column it constrains
	filterColumns map[string]string
	sortFields    map[string]bool
	defaultSort   string
	defaultDir    string
}

// where builds the filtered, scoped query without ordering or paging
func (s listSpec) where(db *gorm.DB, scope identity.Scope, filter shared.Filter) *gorm.DB {
	q := datascope.NewFilter(scope).Apply(db, s.resource, s.table)
	return s.filtered(q, filter)
}

// filtered applies search and column filters only
func (s listSpec) filtered(q *gorm.DB, filter shared.Filter) *gorm.DB {
	if term := strings.TrimSpace(filter.Search); term != "" && len(s.searchColumns) > 0 {
		like := "%" + strings.ToLower(term) + "%"
		clauses := make([]string, len(s.searchColumns))
		args := make([]interface{}, len(s.searchColumns))
		for i, col := range s.searchColumns {
			clauses[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = like
		}
		q = q.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
	for key, value := range filter.Filters {
		col, ok := s.filterColumns[key]
		if !ok || value == nil {
			continue
		}
		q = q.Where(col+" = ?", value)
	}
	return q
}

// page orders and paginates a query built by where
func (s listSpec) page(q *gorm.DB, filter shared.Filter) *gorm.DB {
	filter = filter.Normalize()
	field := ValidateSortField(filter.OrderBy, s.sortFields, s.defaultSort)
	dir := s.defaultDir
	if filter.OrderBy != "" {
		dir = ValidateSortOrder(filter.OrderDir)
	}
	if dir == "" {
		dir = "DESC"
	}
	return q.Order(s.table + "." + field + " " + dir).
		Order(s.table + ".id " + dir).
		Offset(filter.Offset()).
		Limit(filter.PageSize)
}

// findPage counts the rows matched by build and loads the requested page into dest.
// build is called once per statement so the count and the page query never share state.
// load adds preloads to the page query and may be nil.
func (s listSpec) findPage(build func() *gorm.DB, filter shared.Filter, dest interface{}, load func(*gorm.DB) *gorm.DB) (int64, error) {
	var total int64
	if err := build().Count(&total).Error; err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	q := s.page(build(), filter)
	if load != nil {
		q = load(q)
	}
	if err := q.Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}
