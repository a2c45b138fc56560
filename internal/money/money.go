// Package money formats donation amounts for display. Amounts are plain
// float64 values; formatting is the only place locale enters the system.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"donatecart/internal/domain"
)

// Formatter renders amounts with a leading currency symbol, exactly two
// fraction digits, and locale-appropriate digit grouping.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter builds a Formatter for the given BCP 47 locale. Unparseable
// locales fall back to en-US.
func NewFormatter(locale, symbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	if symbol == "" {
		symbol = "$"
	}
	return &Formatter{printer: message.NewPrinter(tag), symbol: symbol}
}

// Format renders v as a currency string. Non-finite or negative values
// render as the zero amount rather than erroring.
func (f *Formatter) Format(v float64) string {
	v = domain.NormalizePrice(v)
	return f.printer.Sprintf("%s%v", f.symbol,
		number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
