package utils

import (
	"github.com/shopspring/decimal"
)

// moneyPrecision is the display precision for all monetary amounts. The ledger
// stores two decimal places; receipts and reports render the same.
const moneyPrecision = 2

// FormatMoney formats an amount with the standard money precision.
// Example: 12.3456 returns "12.35".
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(moneyPrecision)
}
