// Package core provides the presentation-derivation layer of the dashboard.
//
// This file contains the currency formatting used by every widget: symbol
// lookup per currency code, the whole-units rule for large magnitudes and
// explicit sign handling.
package core

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultSymbol is used for currency codes that have no entry in currencySymbols.
const DefaultSymbol = "$"

const (
	// PrecisionAuto drops fractional digits from wholeUnitsFrom upwards and
	// keeps two below.
	PrecisionAuto Precision = iota
	// PrecisionWhole always renders zero fractional digits.
	PrecisionWhole
	// PrecisionCents always renders two fractional digits.
	PrecisionCents
)

const (
	// SignAuto prefixes negative amounts with "-".
	SignAuto SignDisplay = iota
	// SignNever renders the absolute value.
	SignNever
	// SignAlways prefixes "+" or "-"; zero stays unsigned.
	SignAlways
)

type (
	Precision   int
	SignDisplay int

	// FormatOptions tunes FormatCurrency. The zero value applies the
	// magnitude rule and shows a minus sign for negative amounts.
	FormatOptions struct {
		Precision Precision
		Sign      SignDisplay
	}
)

var (
	wholeUnitsFrom = decimal.NewFromInt(1000)
	// maxMinorUnits is the largest minor-unit count go-money can format.
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
)

var currencySymbols = map[string]string{
	"USD": "$",
	"GBP": "£",
	"EUR": "€",
	"JPY": "¥",
	"CNY": "¥",
	"HKD": "HK$",
}

// Symbol returns the display symbol for a currency code, falling back to
// DefaultSymbol for unknown codes.
func Symbol(code string) string {
	if s, ok := currencySymbols[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return s
	}
	return DefaultSymbol
}

// FormatCurrency converts a fixture amount to a display string.
//
// Magnitudes of 1000 and above render without fractional digits, smaller
// ones with two. Grouping uses "," and the decimal point is ".".
//
// Examples:
//
//	FormatCurrency(1234567, "USD", FormatOptions{}) -> "$1,234,567"
//	FormatCurrency(0.58, "USD", FormatOptions{})    -> "$0.58"
//	FormatCurrency(9.5, "GBP", FormatOptions{})     -> "£9.50"
//	FormatCurrency(-550, "USD", FormatOptions{Sign: SignNever}) -> "$550.00"
func FormatCurrency(amount float64, code string, opts FormatOptions) string {
	return formatDecimal(decimal.NewFromFloat(amount), code, opts)
}

func formatDecimal(amount decimal.Decimal, code string, opts FormatOptions) string {
	digits := opts.Precision.digits(amount)
	rounded := amount.Round(digits)

	s := formatMagnitude(rounded.Abs(), digits, Symbol(code))
	return applySign(s, rounded, opts.Sign)
}

// formatMagnitude groups a non-negative amount. Amounts past the int64
// range of go-money are grouped from their decimal string instead.
func formatMagnitude(abs decimal.Decimal, digits int32, symbol string) string {
	minor := abs.Shift(digits)
	if minor.LessThanOrEqual(maxMinorUnits) {
		formatter := money.NewFormatter(int(digits), ".", ",", symbol, "$1")
		return formatter.Format(minor.IntPart())
	}

	whole, frac, _ := strings.Cut(abs.StringFixed(digits), ".")
	var b strings.Builder
	b.WriteString(symbol)
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

func applySign(s string, rounded decimal.Decimal, sign SignDisplay) string {
	switch sign {
	case SignNever:
		return s
	case SignAlways:
		switch {
		case rounded.IsPositive():
			return "+" + s
		case rounded.IsNegative():
			return "-" + s
		}
		return s
	default:
		if rounded.IsNegative() {
			return "-" + s
		}
		return s
	}
}

func (p Precision) digits(amount decimal.Decimal) int32 {
	switch p {
	case PrecisionWhole:
		return 0
	case PrecisionCents:
		return 2
	default:
		if amount.Abs().GreaterThanOrEqual(wholeUnitsFrom) {
			return 0
		}
		return 2
	}
}

// FormatCompact renders axis labels in thousands, e.g. 4000 -> "$4k".
func FormatCompact(amount float64, code string) string {
	k := decimal.NewFromFloat(amount).Div(wholeUnitsFrom).Round(0)
	return applySign(Symbol(code)+k.Abs().String()+"k", k, SignAuto)
}
