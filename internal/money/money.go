// internal/money/money.go
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol prefixes every formatted amount. The API is single-currency.
const CurrencySymbol = "$"

var printer = message.NewPrinter(language.English)

var hundred = decimal.NewFromInt(100)

// Currency renders d as "$1,234,567.89".
func Currency(d decimal.Decimal) string {
	return printer.Sprintf("%s%.2f", CurrencySymbol, d.Round(2).InexactFloat64())
}

// Percent renders a fractional rate (0.165) as "16.50%".
func Percent(rate decimal.Decimal) string {
	return printer.Sprintf("%.2f%%", rate.Mul(hundred).Round(2).InexactFloat64())
}

// Date is the layout used for payment dates.
const Date = "2006-01-02"
