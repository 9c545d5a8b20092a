package core

import (
	"errors"
	"slices"
	"testing"
)

func TestColorForCategory(t *testing.T) {
	cases := []struct {
		category string
		domain   Domain
		want     Tone
	}{
		{"Buy", DomainRecommendation, TonePositive},
		{"Increase Position", DomainRecommendation, TonePositive},
		{"Consider Entry", DomainRecommendation, TonePositive},
		{"Hold", DomainRecommendation, ToneNeutral},
		{"Sell", DomainRecommendation, ToneNegative},
		{"Decrease Position", DomainRecommendation, ToneNegative},
		{"Speculate", DomainRecommendation, ToneNeutral},
		{"Low", DomainRiskImpact, TonePositive},
		{"Medium", DomainRiskImpact, ToneCaution},
		{"High", DomainRiskImpact, ToneNegative},
		{"deposit", DomainTransaction, TonePositive},
		{"withdrawal", DomainTransaction, ToneNegative},
		{"investment", DomainTransaction, ToneNeutral},
		{"dividend", DomainTransaction, TonePositive},
		{"fee", DomainTransaction, ToneCaution},
		{"transfer", DomainTransaction, ToneNeutral},
		{"critical", DomainUrgency, ToneNegative},
		{"low", DomainUrgency, ToneNeutral},
		{"Buy", Domain("unknown"), ToneNeutral},
	}
	for _, tc := range cases {
		if got := ColorForCategory(tc.category, tc.domain); got != tc.want {
			t.Errorf("ColorForCategory(%q, %q) = %q, want %q", tc.category, tc.domain, got, tc.want)
		}
	}
}

func TestToneClass(t *testing.T) {
	if got := TonePositive.Class(); got != "tone-positive" {
		t.Errorf("Class() = %q", got)
	}
	if got := Tone("").Class(); got != "tone-neutral" {
		t.Errorf("empty Class() = %q", got)
	}
}

func TestParseDomain(t *testing.T) {
	d, err := ParseDomain(" Risk-Impact ")
	if err != nil || d != DomainRiskImpact {
		t.Fatalf("ParseDomain = (%q, %v)", d, err)
	}
	if _, err := ParseDomain("colour"); !errors.Is(err, ErrUnknownDomain) {
		t.Fatalf("expected ErrUnknownDomain, got %v", err)
	}
}

func TestGoalProgressTone(t *testing.T) {
	cases := []struct {
		progress int
		onTrack  bool
		want     Tone
	}{
		{90, false, ToneCaution},
		{10, true, ToneNegative},
		{35, true, ToneCaution},
		{65, true, ToneNeutral},
		{75, true, TonePositive},
	}
	for _, tc := range cases {
		if got := GoalProgressTone(tc.progress, tc.onTrack); got != tc.want {
			t.Errorf("GoalProgressTone(%d, %v) = %q, want %q", tc.progress, tc.onTrack, got, tc.want)
		}
	}
}

func TestInitials(t *testing.T) {
	cases := map[string]string{
		"Morgan Wilson":   "MW",
		"alex jameson":    "AJ",
		"  Riley  Parker": "RP",
		"Cher":            "C",
		"":                "",
	}
	for in, want := range cases {
		if got := Initials(in); got != want {
			t.Errorf("Initials(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAvatarTone(t *testing.T) {
	for _, name := range []string{"Sam Taylor", "Jamie Rodriguez", "Casey Williams", ""} {
		got := AvatarTone(name)
		if !slices.Contains(avatarTones, got) {
			t.Errorf("AvatarTone(%q) = %q, not in palette", name, got)
		}
		if again := AvatarTone(name); again != got {
			t.Errorf("AvatarTone(%q) not stable", name)
		}
	}
	// "AB" sums to 131, 131 % 8 == 3.
	if got := AvatarTone("AB"); got != "yellow" {
		t.Errorf("AvatarTone(AB) = %q, want yellow", got)
	}
}
