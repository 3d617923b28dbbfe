package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sheet is a tabular rendering of a report, used for spreadsheet export
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// Exportable is implemented by every report that can be rendered as a workbook
type Exportable interface {
	Title() string
	Sheets() []Sheet
}

// Period is an inclusive date range
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DefaultPeriod returns the 30 days ending today
func DefaultPeriod(now time.Time) Period {
	end := truncateDay(now)
	return Period{Start: end.AddDate(0, 0, -30), End: end}
}

// Resolve fills a missing bound relative to the other one, falling back to DefaultPeriod
func Resolve(start, end *time.Time, now time.Time) Period {
	p := DefaultPeriod(now)
	if end != nil {
		p.End = truncateDay(*end)
	}
	if start != nil {
		p.Start = truncateDay(*start)
	} else {
		p.Start = p.End.AddDate(0, 0, -30)
	}
	return p
}

// EndExclusive is the first instant after the period
func (p Period) EndExclusive() time.Time {
	return p.End.AddDate(0, 0, 1)
}

// String renders the period as "YYYY-MM-DD to YYYY-MM-DD"
func (p Period) String() string {
	return p.Start.Format("2006-01-02") + " to " + p.End.Format("2006-01-02")
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// MonthStart returns the first instant of t's month
func MonthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// MonthWindows returns n calendar months ending with the month of now, oldest first
func MonthWindows(now time.Time, n int) []Period {
	cur := MonthStart(now)
	out := make([]Period, n)
	for i := 0; i < n; i++ {
		start := cur.AddDate(0, -(n - 1 - i), 0)
		out[i] = Period{Start: start, End: start.AddDate(0, 1, -1)}
	}
	return out
}

// Margin returns profit / sales × 100 rounded to 2 places, 0 when there are no sales
func Margin(profit, sales decimal.Decimal) decimal.Decimal {
	if !sales.IsPositive() {
		return decimal.Zero
	}
	return profit.Div(sales).Mul(decimal.NewFromInt(100)).Round(2)
}

// Rate returns part / total × 100 rounded to 2 places
func Rate(part, total int64) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(part).Div(decimal.NewFromInt(total)).Mul(decimal.NewFromInt(100)).Round(2)
}
