package http

import (
	"net/http"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"fundsmart/internal/middleware/security"
	"fundsmart/internal/theme"
)

// maxInputLength caps free-form request values.
const maxInputLength = 64

// ToggleTheme is the form value that flips the current theme.
const ToggleTheme = "toggle"

// currencyQuery is the bound query of the currency formatting endpoint.
type currencyQuery struct {
	Amount    string `query:"amount" validate:"required,max=64,numeric"`
	Currency  string `query:"currency" default:"USD" validate:"len=3,alpha"`
	Precision string `query:"precision" default:"auto" validate:"oneof=auto whole cents"`
	Sign      string `query:"sign" default:"auto" validate:"oneof=auto never always"`
}

// parseCurrencyQuery reads the query parameters. An absent currency falls
// back to fallbackCurrency before defaults apply.
func parseCurrencyQuery(query url.Values, fallbackCurrency string) currencyQuery {
	q := currencyQuery{
		Amount:    strings.TrimSpace(query.Get("amount")),
		Currency:  strings.ToUpper(sanitizeInput(query.Get("currency"))),
		Precision: strings.ToLower(sanitizeInput(query.Get("precision"))),
		Sign:      strings.ToLower(sanitizeInput(query.Get("sign"))),
	}
	if q.Currency == "" {
		q.Currency = fallbackCurrency
	}
	return q
}

// themeChoice is the parsed body of POST /theme.
type themeChoice struct {
	Toggle bool
	Theme  theme.Theme
}

// parseThemeForm accepts theme=light|dark|toggle. Any failure comes back
// as a ready error response.
func parseThemeForm(r *http.Request) (themeChoice, *HTMXResponseBuilder) {
	if err := r.ParseForm(); err != nil {
		return themeChoice{}, BadRequestError("Malformed request")
	}
	value := strings.ToLower(sanitizeInput(r.PostForm.Get("theme")))
	if value == ToggleTheme {
		return themeChoice{Toggle: true}, nil
	}
	t, err := theme.Parse(value)
	if err != nil {
		return themeChoice{}, BadRequestError("Theme must be light, dark or toggle")
	}
	return themeChoice{Theme: t}, nil
}

// queryFlag reports whether a boolean query switch such as ?all=1 is on.
func queryFlag(query url.Values, key string) bool {
	switch strings.ToLower(strings.TrimSpace(query.Get(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// systemPrefersDark reads the color scheme client hint.
func systemPrefersDark(r *http.Request) bool {
	return theme.PrefersDark(r.Header.Get(security.HeaderColorScheme))
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// redirectTarget sends non-HTMX form posts back to the page they came from.
// Only same-site paths are honored.
func redirectTarget(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || !strings.HasPrefix(ref.Path, "/") || strings.HasPrefix(ref.Path, "//") {
		return "/"
	}
	if ref.Host != "" && ref.Host != r.Host {
		return "/"
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}

// sanitizeInput trims, drops control characters and caps the length in runes.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	if utf8.RuneCountInString(s) > maxInputLength {
		s = string([]rune(s)[:maxInputLength])
	}
	return s
}
