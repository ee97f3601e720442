// Package money formats integer amounts in the smallest currency unit.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Unit is the currency label printed after amounts
const Unit = "won"

var printer = message.NewPrinter(language.English)

// Format renders an amount with thousands separators, e.g. 12000 -> "12,000"
func Format(amount int64) string {
	return printer.Sprintf("%d", amount)
}

// Discount renders a deduction with a leading minus sign, e.g. 1000 -> "-1,000".
// Zero renders as "-0" so receipt columns stay aligned.
func Discount(amount int64) string {
	return "-" + Format(amount)
}

// WithUnit renders an amount followed by the currency label
func WithUnit(amount int64) string {
	return Format(amount) + " " + Unit
}
