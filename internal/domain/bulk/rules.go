package bulk

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Rule checks one value of a bulk update before it reaches the column
type Rule func(v interface{}) error

var (
	errNotBoolean = errors.New("must be true or false")
	errNotText    = errors.New("must be a string")
	errBlank      = errors.New("must not be blank")
	errNotNumber  = errors.New("must be a number")
	errNotInteger = errors.New("must be a whole number")
	errNotDate    = errors.New("must be a date in YYYY-MM-DD form")
	errNotID      = errors.New("must be a positive id or null")
)

func boolean(v interface{}) error {
	if _, ok := v.(bool); !ok {
		return errNotBoolean
	}
	return nil
}

func text(v interface{}) error {
	if _, ok := v.(string); !ok {
		return errNotText
	}
	return nil
}

func required(v interface{}) error {
	s, ok := v.(string)
	if !ok {
		return errNotText
	}
	if strings.TrimSpace(s) == "" {
		return errBlank
	}
	return nil
}

func date(v interface{}) error {
	s, ok := v.(string)
	if !ok {
		return errNotDate
	}
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return nil
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return nil
	}
	return errNotDate
}

// reference accepts null to clear a nullable foreign key
func reference(v interface{}) error {
	if v == nil {
		return nil
	}
	d, err := number(v)
	if err != nil || !d.IsInteger() || !d.IsPositive() {
		return errNotID
	}
	return nil
}

func oneOf[T ~string](values ...T) Rule {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return func(v interface{}) error {
		s, ok := v.(string)
		if ok {
			for _, n := range names {
				if s == n {
					return nil
				}
			}
		}
		return fmt.Errorf("must be one of %s", strings.Join(names, ", "))
	}
}

func atLeast(min int64) Rule {
	floor := decimal.NewFromInt(min)
	return func(v interface{}) error {
		d, err := number(v)
		if err != nil {
			return err
		}
		if d.LessThan(floor) {
			return fmt.Errorf("must be at least %d", min)
		}
		return nil
	}
}

func integerAtLeast(min int64) Rule {
	check := atLeast(min)
	return func(v interface{}) error {
		if err := check(v); err != nil {
			return err
		}
		if d, _ := number(v); !d.IsInteger() {
			return errNotInteger
		}
		return nil
	}
}

func between(min, max int64) Rule {
	floor, ceiling := decimal.NewFromInt(min), decimal.NewFromInt(max)
	return func(v interface{}) error {
		d, err := number(v)
		if err != nil {
			return err
		}
		if d.LessThan(floor) || d.GreaterThan(ceiling) {
			return fmt.Errorf("must be between %d and %d", min, max)
		}
		return nil
	}
}

func nullable(r Rule) Rule {
	return func(v interface{}) error {
		if v == nil {
			return nil
		}
		return r(v)
	}
}

// number reads the shapes a JSON body or a caller can hand in for a numeric column
func number(v interface{}) (decimal.Decimal, error) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), nil
	case float32:
		return decimal.NewFromFloat32(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int32:
		return decimal.NewFromInt32(n), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case json.Number:
		return parseNumber(n.String())
	case string:
		return parseNumber(n)
	case decimal.Decimal:
		return n, nil
	default:
		return decimal.Zero, errNotNumber
	}
}

func parseNumber(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, errNotNumber
	}
	return d, nil
}
