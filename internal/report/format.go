package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"cng-analyzer/internal/model"
)

// Currency markers. On-screen output uses the naira sign; documents use the
// ISO code because the PDF core fonts cannot draw ₦.
const (
	CurrencySymbol = "₦"
	CurrencyCode   = "NGN"
)

// NoPaybackText is shown wherever a payback period would otherwise be printed.
const NoPaybackText = "No Payback (No Savings)"

//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// Money formats v as a two-decimal fixed-point string, e.g. "70050.00".
// Rounding applies to the exact binary value, ties to even, so 1.005 gives
// "1.00" and 0.125 gives "0.12".
func Money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Currency formats v with the naira sign, e.g. "₦14.95".
func Currency(v float64) string {
	return CurrencySymbol + Money(v)
}

// GroupedCurrency formats v with the naira sign and thousand separators,
// e.g. "₦70,050.00".
func GroupedCurrency(v float64) string {
	d, err := decimal.NewFromString(Money(v))
	if err != nil {
		return CurrencySymbol + Money(v)
	}
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	_, frac, _ := strings.Cut(d.StringFixed(2), ".")
	return sign + CurrencySymbol + printer.Sprintf("%d", d.IntPart()) + "." + frac
}

// Months formats a finite payback period to one decimal place.
func Months(m float64) string {
	return fmt.Sprintf("%.1f months", m)
}

// PaybackText renders a payback period, or NoPaybackText.
func PaybackText(p model.Payback) string {
	m, ok := p.Months()
	if !ok {
		return NoPaybackText
	}
	return Months(m)
}
