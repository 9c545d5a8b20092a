package http

import (
	"net/http"
	"strconv"

	"fundsmart/internal/core"
	"fundsmart/internal/routes"
)

var (
	precisions = map[string]core.Precision{
		"auto":  core.PrecisionAuto,
		"whole": core.PrecisionWhole,
		"cents": core.PrecisionCents,
	}
	signs = map[string]core.SignDisplay{
		"auto":   core.SignAuto,
		"never":  core.SignNever,
		"always": core.SignAlways,
	}
)

type currencyResponse struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type riskResponse struct {
	Score int       `json:"score"`
	Level string    `json:"level"`
	Tone  core.Tone `json:"tone"`
}

func (s *Server) handleFormatCurrency(w http.ResponseWriter, r *http.Request) {
	q := parseCurrencyQuery(r.URL.Query(), s.currency)
	if apiErr := bindAndValidate(&q); apiErr != nil {
		writeAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	amount, err := strconv.ParseFloat(q.Amount, 64)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, &APIError{
			Code:    "ERR_NUMERIC",
			Message: "amount must be a number",
		})
		return
	}

	value := core.FormatCurrency(amount, q.Currency, core.FormatOptions{
		Precision: precisions[q.Precision],
		Sign:      signs[q.Sign],
	})
	writeJSON(w, http.StatusOK, currencyResponse{Value: value, Currency: q.Currency})
}

// handleRisk classifies a score. Non-integers and scores outside [0,100]
// are rejected.
func (s *Server) handleRisk(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("score")
	score, err := strconv.Atoi(raw)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, &APIError{
			Code:    "ERR_NOT_INTEGER",
			Message: "score must be an integer",
		})
		return
	}
	if err := core.ValidateRiskScore(score); err != nil {
		writeAPIError(w, http.StatusBadRequest, &APIError{
			Code:    "ERR_OUT_OF_RANGE",
			Message: err.Error(),
		})
		return
	}

	level := core.ClassifyRisk(score)
	writeJSON(w, http.StatusOK, riskResponse{Score: score, Level: level.String(), Tone: level.Tone()})
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.resolver.Resolve(r.PathValue("segment")))
}

func (s *Server) handleRouteList(w http.ResponseWriter, r *http.Request) {
	segments := s.resolver.Segments()
	out := make([]routes.Descriptor, 0, len(segments))
	for _, segment := range segments {
		out = append(out, s.resolver.Resolve(segment))
	}
	writeJSON(w, http.StatusOK, map[string][]routes.Descriptor{"routes": out})
}
