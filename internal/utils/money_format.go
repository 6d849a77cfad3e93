package utils

import (
	"github.com/shopspring/decimal"
)

// moneyPrecision is the number of decimal places used for all monetary amounts.
const moneyPrecision = 2

// FormatAmount formats a monetary amount with two decimal places
// Example: amount 12.3456 returns "12.35"
func FormatAmount(amount decimal.Decimal) string {
	return amount.Round(moneyPrecision).StringFixed(moneyPrecision)
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when a caller needs non-monetary precision
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
