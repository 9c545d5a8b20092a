package core

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	TonePositive Tone = "positive"
	ToneNeutral  Tone = "neutral"
	ToneCaution  Tone = "caution"
	ToneNegative Tone = "negative"
)

const (
	DomainRecommendation Domain = "recommendation-action"
	DomainRiskImpact     Domain = "risk-impact"
	DomainTransaction    Domain = "transaction-type"
	DomainUrgency        Domain = "urgency"
)

type (
	// Tone is the semantic color tag handed to the styling layer.
	Tone string

	// Domain selects which category table ColorForCategory consults.
	Domain string

	Money struct {
		Amount   decimal.Decimal
		Currency string
	}

	// Delta is a relative change. Value keeps the raw signed number while
	// Polarity optionally carries an explicit direction flag; the two may
	// disagree and callers pick which one drives the display.
	Delta struct {
		Value    float64
		Polarity Polarity
	}
)

var (
	ErrRiskOutOfRange = errors.New("risk score out of range")
	ErrUnknownDomain  = errors.New("unknown category domain")
)

// NewMoney builds a Money from a fixture float.
func NewMoney(amount float64, currency string) Money {
	return Money{Amount: decimal.NewFromFloat(amount), Currency: currency}
}

func (m Money) IsNegative() bool { return m.Amount.IsNegative() }
func (m Money) IsPositive() bool { return m.Amount.IsPositive() }
func (m Money) IsZero() bool     { return m.Amount.IsZero() }

// Abs returns the amount without its sign.
func (m Money) Abs() Money { return Money{Amount: m.Amount.Abs(), Currency: m.Currency} }

// Format renders the amount with the given options.
func (m Money) Format(opts FormatOptions) string {
	return formatDecimal(m.Amount, m.Currency, opts)
}

// String renders the amount with default options.
func (m Money) String() string {
	return m.Format(FormatOptions{})
}

// Class returns the CSS hook for a tone, e.g. "tone-positive".
func (t Tone) Class() string {
	if t == "" {
		t = ToneNeutral
	}
	return "tone-" + string(t)
}

func (t Tone) String() string { return string(t) }

// Valid reports whether d names one of the known category domains.
func (d Domain) Valid() bool {
	_, ok := categoryTones[d]
	return ok
}
