package view

import "github.com/shopspring/decimal"

// MoneyFromCents converts minor units to a display string.
// E.g., 1000 EUR -> "€10.00"
func MoneyFromCents(cents int64, currency string) string {
	return currencySymbol(currency) + decimal.New(cents, -2).StringFixed(2)
}

func currencySymbol(code string) string {
	switch code {
	case "EUR":
		return "€"
	case "USD":
		return "$"
	case "GBP":
		return "£"
	case "JPY":
		return "¥"
	case "TRY":
		return "₺"
	default:
		return code + " "
	}
}
