package core

import (
	"errors"
	"testing"
)

func TestClassifyRisk(t *testing.T) {
	cases := []struct {
		score int
		want  RiskLevel
		label string
		tone  Tone
	}{
		{0, RiskLow, "Low", TonePositive},
		{29, RiskLow, "Low", TonePositive},
		{30, RiskMedium, "Medium", ToneCaution},
		{59, RiskMedium, "Medium", ToneCaution},
		{60, RiskHigh, "High", ToneNegative},
		{100, RiskHigh, "High", ToneNegative},
	}
	for _, tc := range cases {
		got := ClassifyRisk(tc.score)
		if got != tc.want {
			t.Errorf("ClassifyRisk(%d) = %v, want %v", tc.score, got, tc.want)
		}
		if got.String() != tc.label {
			t.Errorf("ClassifyRisk(%d).String() = %q, want %q", tc.score, got.String(), tc.label)
		}
		if got.Tone() != tc.tone {
			t.Errorf("ClassifyRisk(%d).Tone() = %q, want %q", tc.score, got.Tone(), tc.tone)
		}
		if again := ClassifyRisk(tc.score); again != got {
			t.Errorf("ClassifyRisk(%d) not stable: %v then %v", tc.score, got, again)
		}
	}
}

func TestValidateRiskScore(t *testing.T) {
	for _, s := range []int{0, 42, 100} {
		if err := ValidateRiskScore(s); err != nil {
			t.Errorf("ValidateRiskScore(%d) = %v", s, err)
		}
	}
	for _, s := range []int{-1, 101} {
		if err := ValidateRiskScore(s); !errors.Is(err, ErrRiskOutOfRange) {
			t.Errorf("ValidateRiskScore(%d) = %v, want ErrRiskOutOfRange", s, err)
		}
	}
}

func TestParseRiskLevel(t *testing.T) {
	cases := []struct {
		in   string
		want RiskLevel
		ok   bool
	}{
		{"Low", RiskLow, true},
		{"medium", RiskMedium, true},
		{" HIGH ", RiskHigh, true},
		{"Severe", RiskLow, false},
		{"", RiskLow, false},
	}
	for _, tc := range cases {
		got, ok := ParseRiskLevel(tc.in)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("ParseRiskLevel(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
