package domain

import "github.com/shopspring/decimal"

// DefaultCurrency is the only currency wallets are held in.
const DefaultCurrency = "INR"

// MoneyScale is the number of decimal places amounts are rounded to.
const MoneyScale int32 = 2

// HasMoneyScale reports whether d is representable in whole paisa.
// Trailing zeros are fine, "1.500" passes and "0.005" does not.
func HasMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyScale))
}
