package widgets

import (
	"fundsmart/internal/core"
	"fundsmart/internal/routes"
)

type (
	// Page is everything the page shell needs for one request.
	Page struct {
		Segment     string
		Title       string
		Content     routes.Content
		Placeholder bool
		Cards       []Card
	}

	// Card is one rendered widget. Data holds the widget-specific view
	// model; templates switch on Kind.
	Card struct {
		Kind        routes.Widget
		RevealDelay int
		Data        any
	}

	DeltaView struct {
		Text string
		Up   bool
		Tone core.Tone
	}

	StatCardView struct {
		Title       string
		Value       string
		Icon        string
		Delta       *DeltaView
		Description string
	}

	PerformanceView struct {
		Start  string
		End    string
		Change DeltaView
		Points []BarView
	}

	BarView struct {
		Label  string
		Value  string
		Height int
	}

	AllocationView struct {
		Slices []SliceView
	}

	SliceView struct {
		Name    string
		Percent string
		Color   string
	}

	MarketRow struct {
		Name   string
		Ticker string
		Price  string
		Change DeltaView
		Volume string
	}

	TransactionsView struct {
		Rows    []TransactionRow
		Hidden  int
		ShowAll bool
	}

	TransactionRow struct {
		ID          string
		Title       string
		Description string
		Amount      string
		Tone        core.Tone
		Icon        string
		When        string
		Status      string
	}

	AllocationHistoryView struct {
		Classes []string
		Months  []MonthView
		Axis    []string
	}

	MonthView struct {
		Name   string
		Values []string
		Total  string
	}

	RiskView struct {
		Current int
		Level   string
		Tone    core.Tone
		History []RiskBar
		Factors []RiskFactorView
	}

	RiskBar struct {
		Name  string
		Score int
		Level string
		Tone  core.Tone
	}

	RiskFactorView struct {
		Name        string
		Score       int
		Level       string
		Tone        core.Tone
		Description string
	}

	RecommendationsView struct {
		Variant string
		Items   []RecommendationView
	}

	RecommendationView struct {
		Asset      string
		Type       string
		Action     string
		ActionTone core.Tone
		Reason     string
		Confidence int
		Return     string
		Risk       string
		RiskTone   core.Tone
	}

	GoalView struct {
		Name       string
		Current    string
		Target     string
		Progress   int
		Tone       core.Tone
		OnTrack    bool
		Deadline   string
		TimeLeft   string
		Monthly    string
		Completion string
	}

	CommunityView struct {
		Discussions []PostView
		Ideas       []PostView
	}

	PostView struct {
		Author      string
		Initials    string
		AvatarColor string
		Badge       string
		Title       string
		Content     string
		Posted      string
		Likes       int
		Comments    int
		Shares      int
		Performance *DeltaView
		Period      string
		Tags        []string
	}

	GlobalView struct {
		Stocks []GlobalRow
		Crypto []GlobalRow
		Forex  []GlobalRow
	}

	GlobalRow struct {
		Name   string
		Detail string
		Price  string
		Change DeltaView
		Volume string
	}

	PlaceholderView struct {
		Segment string
		Message string
	}

	SidebarView struct {
		Variant   string
		Collapsed bool
		Groups    []routes.NavGroup
	}
)

func deltaView(d core.Delta, digits int) DeltaView {
	return DeltaView{Text: d.Format(digits), Up: d.Positive(), Tone: d.Tone()}
}
