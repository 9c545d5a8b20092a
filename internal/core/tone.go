package core

import (
	"fmt"
	"strings"
	"unicode"
)

// categoryTones holds one lookup table per domain. Keys are lowercase.
var categoryTones = map[Domain]map[string]Tone{
	DomainRecommendation: {
		"buy":               TonePositive,
		"increase position": TonePositive,
		"consider entry":    TonePositive,
		"hold":              ToneNeutral,
		"sell":              ToneNegative,
		"decrease position": ToneNegative,
	},
	DomainRiskImpact: {
		"low":    TonePositive,
		"medium": ToneCaution,
		"high":   ToneNegative,
	},
	DomainTransaction: {
		"deposit":    TonePositive,
		"withdrawal": ToneNegative,
		"investment": ToneNeutral,
		"dividend":   TonePositive,
		"fee":        ToneCaution,
	},
	DomainUrgency: {
		"low":      ToneNeutral,
		"medium":   ToneCaution,
		"high":     ToneNegative,
		"critical": ToneNegative,
	},
}

// avatarTones is the community avatar palette, indexed by rune sum.
var avatarTones = []string{"blue", "green", "purple", "yellow", "red", "indigo", "pink", "teal"}

// ColorForCategory maps a categorical label to a tone within a domain.
// Unknown labels and unknown domains fall back to ToneNeutral.
func ColorForCategory(category string, domain Domain) Tone {
	table, ok := categoryTones[domain]
	if !ok {
		return ToneNeutral
	}
	if t, ok := table[strings.ToLower(strings.TrimSpace(category))]; ok {
		return t
	}
	return ToneNeutral
}

// ParseDomain accepts the domain names used in query strings.
func ParseDomain(s string) (Domain, error) {
	d := Domain(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDomain, s)
	}
	return d, nil
}

// GoalProgressTone colors a goal progress bar. Goals off track are always
// caution regardless of progress.
func GoalProgressTone(progress int, onTrack bool) Tone {
	switch {
	case !onTrack:
		return ToneCaution
	case progress < 25:
		return ToneNegative
	case progress < 50:
		return ToneCaution
	case progress < 75:
		return ToneNeutral
	default:
		return TonePositive
	}
}

// Initials returns the uppercased first letter of each word in name.
func Initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		r := []rune(w)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// AvatarTone picks a stable palette color for a name.
func AvatarTone(name string) string {
	sum := 0
	for _, r := range name {
		sum += int(r)
	}
	return avatarTones[sum%len(avatarTones)]
}
