package fixtures

import "time"

const (
	KindCurrency = "currency"
	KindPercent  = "percent"

	DefaultRevealStepMS  = 100
	DefaultPercentDigits = 2
)

type (
	// Dataset is the whole fixture file. It is immutable once Load returns.
	Dataset struct {
		Currency          string            `yaml:"currency" default:"USD" validate:"required,len=3"`
		Display           Display           `yaml:"display"`
		StatCards         []StatCard        `yaml:"stat_cards" validate:"required,dive"`
		Performance       []Point           `yaml:"performance" validate:"dive"`
		Allocation        []Share           `yaml:"allocation" validate:"dive"`
		Markets           []Quote           `yaml:"markets" validate:"dive"`
		Transactions      []Transaction     `yaml:"transactions" validate:"dive"`
		AllocationHistory AllocationHistory `yaml:"allocation_history"`
		Risk              Risk              `yaml:"risk"`
		Recommendations   []Recommendation  `yaml:"recommendations" validate:"dive"`
		Goals             []Goal            `yaml:"goals" validate:"dive"`
		Discussions       []Post            `yaml:"discussions" validate:"dive"`
		Ideas             []Post            `yaml:"ideas" validate:"dive"`
		Global            Global            `yaml:"global"`
		Features          []Feature         `yaml:"features" validate:"dive"`
	}

	// Display tunes the page. RevealStepMS is a pointer so an explicit 0
	// disables the stagger.
	Display struct {
		VisibleTransactions int  `yaml:"visible_transactions" default:"3" validate:"gte=1"`
		RevealStepMS        *int `yaml:"reveal_step_ms" default:"100" validate:"omitempty,gte=0,lte=1000"`
	}

	StatCard struct {
		Title       string  `yaml:"title" validate:"required"`
		Kind        string  `yaml:"kind" default:"currency" validate:"oneof=currency percent"`
		Amount      float64 `yaml:"amount" validate:"finite"`
		Precision   string  `yaml:"precision" default:"auto" validate:"oneof=auto whole cents"`
		Digits      *int    `yaml:"digits" default:"2" validate:"omitempty,gte=0,lte=6"`
		Icon        string  `yaml:"icon"`
		Delta       *Change `yaml:"delta"`
		Description string  `yaml:"description"`
	}

	// Change is an authored delta with its own direction flag.
	Change struct {
		Value    float64 `yaml:"value" validate:"finite"`
		Positive bool    `yaml:"positive"`
		Period   string  `yaml:"period"`
	}

	Point struct {
		Date  time.Time `yaml:"date" validate:"required"`
		Value float64   `yaml:"value" validate:"finite"`
	}

	Share struct {
		Name  string  `yaml:"name" validate:"required"`
		Value float64 `yaml:"value" validate:"finite,gte=0,lte=100"`
	}

	Quote struct {
		Name   string  `yaml:"name" validate:"required"`
		Ticker string  `yaml:"ticker" validate:"required"`
		Price  float64 `yaml:"price" validate:"finite,gte=0"`
		Change float64 `yaml:"change" validate:"finite"`
		Volume string  `yaml:"volume"`
	}

	Transaction struct {
		ID          string    `yaml:"id" validate:"required"`
		Type        string    `yaml:"type" validate:"required"`
		Title       string    `yaml:"title" validate:"required"`
		Description string    `yaml:"description"`
		Amount      float64   `yaml:"amount" validate:"finite"`
		Date        time.Time `yaml:"date" validate:"required"`
		Status      string    `yaml:"status" default:"completed"`
	}

	AllocationHistory struct {
		Classes []string         `yaml:"classes"`
		Months  []AllocationSlot `yaml:"months" validate:"dive"`
	}

	AllocationSlot struct {
		Name   string    `yaml:"name" validate:"required"`
		Values []float64 `yaml:"values" validate:"dive,finite"`
	}

	Risk struct {
		History []RiskPoint  `yaml:"history" validate:"dive"`
		Factors []RiskFactor `yaml:"factors" validate:"dive"`
	}

	RiskPoint struct {
		Name  string `yaml:"name" validate:"required"`
		Score int    `yaml:"score" validate:"riskscore"`
	}

	RiskFactor struct {
		Name        string `yaml:"name" validate:"required"`
		Score       int    `yaml:"score" validate:"riskscore"`
		Impact      string `yaml:"impact"`
		Description string `yaml:"description"`
	}

	Recommendation struct {
		Asset           string  `yaml:"asset" validate:"required"`
		Type            string  `yaml:"type"`
		Action          string  `yaml:"action" validate:"required"`
		Reason          string  `yaml:"reason"`
		Confidence      int     `yaml:"confidence" validate:"gte=0,lte=100"`
		PotentialReturn float64 `yaml:"potential_return" validate:"finite"`
		Risk            string  `yaml:"risk" default:"Medium" validate:"oneof=Low Medium High"`
	}

	Goal struct {
		Name                string    `yaml:"name" validate:"required"`
		Target              float64   `yaml:"target" validate:"finite,gt=0"`
		Current             float64   `yaml:"current" validate:"finite,gte=0"`
		Deadline            time.Time `yaml:"deadline" validate:"required"`
		MonthlyContribution float64   `yaml:"monthly_contribution" validate:"finite,gte=0"`
		Progress            int       `yaml:"progress" validate:"gte=0,lte=100"`
		OnTrack             bool      `yaml:"on_track"`
		EstimatedCompletion time.Time `yaml:"estimated_completion"`
	}

	Author struct {
		Name  string `yaml:"name" validate:"required"`
		Badge string `yaml:"badge"`
	}

	Post struct {
		Author      Author   `yaml:"author"`
		Title       string   `yaml:"title" validate:"required"`
		Content     string   `yaml:"content"`
		Posted      string   `yaml:"posted"`
		Likes       int      `yaml:"likes" validate:"gte=0"`
		Comments    int      `yaml:"comments" validate:"gte=0"`
		Shares      int      `yaml:"shares" validate:"gte=0"`
		Performance *Change  `yaml:"performance"`
		Tags        []string `yaml:"tags"`
	}

	Global struct {
		Stocks []IndexQuote `yaml:"stocks" validate:"dive"`
		Crypto []CoinQuote  `yaml:"crypto" validate:"dive"`
		Forex  []Rate       `yaml:"forex" validate:"dive"`
	}

	IndexQuote struct {
		Name     string  `yaml:"name" validate:"required"`
		Region   string  `yaml:"region"`
		Price    float64 `yaml:"price" validate:"finite,gte=0"`
		Change   float64 `yaml:"change" validate:"finite"`
		Volume   string  `yaml:"volume"`
		Currency string  `yaml:"currency" default:"USD"`
	}

	CoinQuote struct {
		Name     string  `yaml:"name" validate:"required"`
		Symbol   string  `yaml:"symbol" validate:"required"`
		Price    float64 `yaml:"price" validate:"finite,gte=0"`
		Change   float64 `yaml:"change" validate:"finite"`
		Volume   string  `yaml:"volume"`
		Currency string  `yaml:"currency" default:"USD"`
	}

	Rate struct {
		Name   string  `yaml:"name" validate:"required"`
		From   string  `yaml:"from" validate:"required,len=3"`
		To     string  `yaml:"to" validate:"required,len=3"`
		Rate   float64 `yaml:"rate" validate:"finite,gt=0"`
		Change float64 `yaml:"change" validate:"finite"`
	}

	Feature struct {
		Title       string `yaml:"title" validate:"required"`
		Description string `yaml:"description"`
		Icon        string `yaml:"icon"`
	}
)

// CurrentRisk is the latest score in the risk history, or 0 when empty.
func (r Risk) CurrentRisk() int {
	if len(r.History) == 0 {
		return 0
	}
	return r.History[len(r.History)-1].Score
}

// RevealStep is the delay between consecutive widget reveals.
func (d Display) RevealStep() time.Duration {
	ms := DefaultRevealStepMS
	if d.RevealStepMS != nil {
		ms = *d.RevealStepMS
	}
	return time.Duration(ms) * time.Millisecond
}

// FractionDigits is the number of fraction digits for percent cards.
func (c StatCard) FractionDigits() int {
	if c.Digits == nil {
		return DefaultPercentDigits
	}
	return *c.Digits
}
