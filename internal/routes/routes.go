// Package routes maps the trailing segment of a dashboard path to the
// content descriptor the page shell renders.
package routes

import (
	"slices"
	"strings"
)

// DefaultSegment is used when a path carries no trailing segment.
const DefaultSegment = "dashboard"

// DefaultTitle is the header title for segments without a title entry.
const DefaultTitle = "Dashboard"

const (
	ContentOverview        Content = "overview"
	ContentTransactions    Content = "transactions"
	ContentAnalytics       Content = "analytics"
	ContentWallets         Content = "wallets"
	ContentRecommendations Content = "ai-recommendations"
	ContentRiskAnalysis    Content = "risk-analysis"
	ContentGoals           Content = "goals"
	ContentCommunity       Content = "community"
	ContentGlobal          Content = "global"
	ContentPlaceholder     Content = "placeholder"
)

const (
	WidgetStatCards          Widget = "stat-cards"
	WidgetPerformance        Widget = "performance"
	WidgetPortfolioSummary   Widget = "portfolio-summary"
	WidgetMarketOverview     Widget = "market-overview"
	WidgetRecentTransactions Widget = "recent-transactions"
	WidgetAssetAllocation    Widget = "asset-allocation"
	WidgetRecommendations    Widget = "recommendations"
	WidgetRiskAnalysis       Widget = "risk-analysis"
	WidgetGoals              Widget = "goals"
	WidgetCommunity          Widget = "community"
	WidgetGlobalMarkets      Widget = "global-markets"
	WidgetPlaceholder        Widget = "placeholder"
)

type (
	// Content identifies which widget set a page renders.
	Content string

	// Widget names a single dashboard card.
	Widget string

	// Descriptor is the resolved content for one segment. Descriptors are
	// values; Resolve hands out copies so callers cannot alter the registry.
	Descriptor struct {
		Segment     string   `json:"segment"`
		Content     Content  `json:"content"`
		Title       string   `json:"title"`
		Widgets     []Widget `json:"widgets"`
		Placeholder bool     `json:"placeholder"`
		Message     string   `json:"message,omitempty"`
	}

	// Registry is the static segment to descriptor table.
	Registry map[string]Descriptor

	Resolver struct {
		registry Registry
	}
)

var overviewWidgets = []Widget{
	WidgetStatCards,
	WidgetPerformance,
	WidgetPortfolioSummary,
	WidgetMarketOverview,
	WidgetRecentTransactions,
	WidgetAssetAllocation,
}

var titles = map[string]string{
	"dashboard":          "Overview",
	"investments":        "Investments",
	"transactions":       "Transactions",
	"analytics":          "Analytics",
	"wallets":            "Wallets",
	"settings":           "Settings",
	"profile":            "Profile",
	"ai-recommendations": "AI Recommendations",
	"risk-analysis":      "Risk Analysis",
	"goals":              "Financial Goals",
	"community":          "Community",
	"global":             "Global Markets",
}

// DefaultRegistry returns the dashboard's built-in routes. Settings and
// profile have titles and navigation entries but no content yet, so they
// resolve to the placeholder.
func DefaultRegistry() Registry {
	return Registry{
		"dashboard":          {Content: ContentOverview, Widgets: overviewWidgets},
		"investments":        {Content: ContentOverview, Widgets: overviewWidgets},
		"transactions":       {Content: ContentTransactions, Widgets: []Widget{WidgetRecentTransactions, WidgetMarketOverview}},
		"analytics":          {Content: ContentAnalytics, Widgets: []Widget{WidgetPerformance, WidgetAssetAllocation, WidgetRiskAnalysis}},
		"wallets":            {Content: ContentWallets, Widgets: []Widget{WidgetStatCards, WidgetPortfolioSummary}},
		"ai-recommendations": {Content: ContentRecommendations, Widgets: []Widget{WidgetRecommendations}},
		"risk-analysis":      {Content: ContentRiskAnalysis, Widgets: []Widget{WidgetRiskAnalysis}},
		"goals":              {Content: ContentGoals, Widgets: []Widget{WidgetGoals}},
		"community":          {Content: ContentCommunity, Widgets: []Widget{WidgetCommunity}},
		"global":             {Content: ContentGlobal, Widgets: []Widget{WidgetGlobalMarkets}},
	}
}

// NewResolver copies reg and fills in segment and title on every entry.
func NewResolver(reg Registry) *Resolver {
	r := &Resolver{registry: make(Registry, len(reg))}
	for segment, d := range reg {
		d.Segment = segment
		if d.Title == "" {
			d.Title = Title(segment)
		}
		d.Widgets = slices.Clone(d.Widgets)
		r.registry[segment] = d
	}
	return r
}

// Resolve returns the descriptor registered for segment, or a placeholder
// descriptor carrying segment when nothing matches. An empty segment is
// treated as DefaultSegment.
func (r *Resolver) Resolve(segment string) Descriptor {
	if segment == "" {
		segment = DefaultSegment
	}
	d, ok := r.registry[segment]
	if !ok {
		return Placeholder(segment)
	}
	d.Widgets = slices.Clone(d.Widgets)
	return d
}

// Known reports whether segment has a registered descriptor.
func (r *Resolver) Known(segment string) bool {
	_, ok := r.registry[segment]
	return ok
}

// Segments lists registered segments in lexical order.
func (r *Resolver) Segments() []string {
	out := make([]string, 0, len(r.registry))
	for s := range r.registry {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// Placeholder builds the "coming soon" descriptor for segment.
func Placeholder(segment string) Descriptor {
	return Descriptor{
		Segment:     segment,
		Content:     ContentPlaceholder,
		Title:       Title(segment),
		Widgets:     []Widget{WidgetPlaceholder},
		Placeholder: true,
		Message:     "Content coming soon for " + segment,
	}
}

// Title returns the header title for segment.
func Title(segment string) string {
	if t, ok := titles[segment]; ok {
		return t
	}
	return DefaultTitle
}

// SegmentFromPath returns the last non-empty component of path, or
// DefaultSegment when there is none.
func SegmentFromPath(path string) string {
	parts := strings.Split(path, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if p := strings.TrimSpace(parts[i]); p != "" {
			return p
		}
	}
	return DefaultSegment
}
