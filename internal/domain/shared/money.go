package shared

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of decimal places kept for currency amounts
const MoneyPlaces = 2

// RoundMoney rounds an amount half away from zero to currency precision
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// SumMoney adds amounts and rounds the result
func SumMoney(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return RoundMoney(total)
}
