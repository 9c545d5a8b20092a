package core

import (
	"fmt"
	"strings"
)

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
)

const (
	MinRiskScore = 0
	MaxRiskScore = 100
)

// RiskLevel is the three-way bucket of a 0-100 risk score.
type RiskLevel int

// riskThresholds is the only place score cutoffs live. A score below
// upper maps to level; anything past the last entry is RiskHigh.
var riskThresholds = []struct {
	upper int
	level RiskLevel
}{
	{30, RiskLow},
	{60, RiskMedium},
}

var riskLabels = map[RiskLevel]string{
	RiskLow:    "Low",
	RiskMedium: "Medium",
	RiskHigh:   "High",
}

// ClassifyRisk buckets a score: below 30 is Low, below 60 Medium, else High.
// Scores outside [0,100] are rejected at load time by ValidateRiskScore, so
// this function stays total and never errors.
func ClassifyRisk(score int) RiskLevel {
	for _, t := range riskThresholds {
		if score < t.upper {
			return t.level
		}
	}
	return RiskHigh
}

// ValidateRiskScore checks the [0,100] precondition.
func ValidateRiskScore(score int) error {
	if score < MinRiskScore || score > MaxRiskScore {
		return fmt.Errorf("%w: %d not in [%d,%d]", ErrRiskOutOfRange, score, MinRiskScore, MaxRiskScore)
	}
	return nil
}

// ParseRiskLevel parses "Low", "Medium" or "High" case-insensitively.
func ParseRiskLevel(label string) (RiskLevel, bool) {
	for level, l := range riskLabels {
		if strings.EqualFold(strings.TrimSpace(label), l) {
			return level, true
		}
	}
	return RiskLow, false
}

func (l RiskLevel) String() string {
	if s, ok := riskLabels[l]; ok {
		return s
	}
	return "Unknown"
}

// Tone maps the level through the risk-impact category table so text and
// color never disagree.
func (l RiskLevel) Tone() Tone {
	return ColorForCategory(l.String(), DomainRiskImpact)
}
