package funding

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyPrefix is prepended to every formatted amount.
const CurrencyPrefix = "NT$ "

// Grouping only; amounts are whole New Taiwan dollars so the locale never
// has to render decimals.
var groupingPrinter = message.NewPrinter(language.English)

// FormatNumber groups digits in threes with commas: 1234567 -> "1,234,567".
func FormatNumber(n int64) string {
	return groupingPrinter.Sprintf("%d", n)
}

// FormatCurrency formats a non-negative whole amount, 1234567 -> "NT$ 1,234,567".
func FormatCurrency(amount int64) string {
	return CurrencyPrefix + FormatNumber(amount)
}
