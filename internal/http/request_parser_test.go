package http

import (
	"net/url"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trims", input: "  dark \n", want: "dark"},
		{name: "drops control characters", input: "da\x00r\x07k", want: "dark"},
		{name: "caps ascii", input: strings.Repeat("a", 70), want: strings.Repeat("a", maxInputLength)},
		{name: "caps on rune boundary", input: strings.Repeat("€", 70), want: strings.Repeat("€", maxInputLength)},
		{name: "mixed widths", input: "a" + strings.Repeat("£", 64), want: "a" + strings.Repeat("£", 63)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeInput(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeInput(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("sanitizeInput(%q) returned invalid UTF-8", tt.input)
			}
		})
	}
}

func TestParseCurrencyQuery(t *testing.T) {
	q := parseCurrencyQuery(url.Values{
		"amount":    {" 10000000000000000000 "},
		"precision": {"CENTS"},
	}, "GBP")

	if q.Amount != "10000000000000000000" {
		t.Errorf("Amount = %q", q.Amount)
	}
	if q.Currency != "GBP" {
		t.Errorf("Currency = %q, want fallback GBP", q.Currency)
	}
	if q.Precision != "cents" {
		t.Errorf("Precision = %q", q.Precision)
	}
}
