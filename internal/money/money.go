package money

import "github.com/shopspring/decimal"

// Format renders an amount the way the storefront displays currency:
// dollar sign, two decimals.
func Format(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
