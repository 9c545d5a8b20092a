package core

import (
	"github.com/shopspring/decimal"
)

// DefaultPercentDigits is the fraction digit count used by FormatPercentDefault.
const DefaultPercentDigits = 2

const (
	// PolarityFromSign derives direction from the numeric value.
	PolarityFromSign Polarity = iota
	PolarityUp
	PolarityDown
)

// Polarity is the direction of a Delta.
type Polarity int

// SignedDelta builds a delta whose direction follows its sign.
func SignedDelta(v float64) Delta {
	return Delta{Value: v}
}

// FlaggedDelta builds a delta with an explicit direction flag, as used by
// stat cards and community ideas where the flag is authored separately.
func FlaggedDelta(v float64, positive bool) Delta {
	p := PolarityDown
	if positive {
		p = PolarityUp
	}
	return Delta{Value: v, Polarity: p}
}

// Positive reports the direction used for display. An explicit flag wins
// over the numeric sign.
func (d Delta) Positive() bool {
	switch d.Polarity {
	case PolarityUp:
		return true
	case PolarityDown:
		return false
	default:
		return d.Value >= 0
	}
}

// Magnitude renders the absolute value with the given fraction digits and
// no sign, e.g. "3.20".
func (d Delta) Magnitude(digits int) string {
	return decimal.NewFromFloat(d.Value).Abs().StringFixed(clampDigits(digits))
}

// Format renders "+3.20%" or "-0.42%" with the sign taken from Positive.
func (d Delta) Format(digits int) string {
	sign := "-"
	if d.Positive() {
		sign = "+"
	}
	return sign + d.Magnitude(digits) + "%"
}

// Tone is positive for upward deltas and negative otherwise.
func (d Delta) Tone() Tone {
	if d.Positive() {
		return TonePositive
	}
	return ToneNegative
}

// FormatPercent renders value in fixed point followed by "%". The sign
// comes from the literal value: 3.2 -> "3.20%", -0.42 -> "-0.42%".
// Negative digit counts are treated as zero.
func FormatPercent(value float64, digits int) string {
	return decimal.NewFromFloat(value).StringFixed(clampDigits(digits)) + "%"
}

// FormatPercentDefault is FormatPercent with two fraction digits.
func FormatPercentDefault(value float64) string {
	return FormatPercent(value, DefaultPercentDigits)
}

// FormatRate renders an exchange rate with three fraction digits.
func FormatRate(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(3)
}

func clampDigits(digits int) int32 {
	if digits < 0 {
		return 0
	}
	return int32(digits)
}
