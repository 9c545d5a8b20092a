// Package widgets turns fixture records into per-widget view models for the
// resolved route. Every value is formatted through the core package at
// render time; nothing is precomputed in the dataset.
package widgets

import (
	"time"

	"fundsmart/internal/core"
	"fundsmart/internal/fixtures"
	"fundsmart/internal/reveal"
	"fundsmart/internal/routes"
)

// Request carries per-request display switches.
type Request struct {
	ShowAllTransactions bool
}

type Builder struct {
	data     *fixtures.Dataset
	currency string
	recs     RecommendationsPresenter
	sidebar  SidebarPresenter
	stagger  reveal.Stagger
}

type Option func(*Builder)

func WithRecommendations(p RecommendationsPresenter) Option {
	return func(b *Builder) { b.recs = p }
}

func WithSidebar(p SidebarPresenter) Option {
	return func(b *Builder) { b.sidebar = p }
}

// WithCurrency overrides the dataset currency for amounts that carry none.
func WithCurrency(code string) Option {
	return func(b *Builder) {
		if code != "" {
			b.currency = code
		}
	}
}

func NewBuilder(data *fixtures.Dataset, opts ...Option) *Builder {
	step := data.Display.RevealStep()
	b := &Builder{
		data:     data,
		currency: data.Currency,
		recs:     CardsPresenter{},
		sidebar:  ExpandedSidebar{},
		stagger:  reveal.Stagger{Step: step, Max: 10 * step},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build renders the widget set of d against now.
func (b *Builder) Build(d routes.Descriptor, now time.Time, req Request) Page {
	p := Page{
		Segment:     d.Segment,
		Title:       d.Title,
		Content:     d.Content,
		Placeholder: d.Placeholder,
		Cards:       make([]Card, 0, len(d.Widgets)),
	}
	for i, w := range d.Widgets {
		p.Cards = append(p.Cards, Card{
			Kind:        w,
			RevealDelay: b.stagger.Millis(i),
			Data:        b.card(w, d, now, req),
		})
	}
	return p
}

// Sidebar renders the navigation for currentPath.
func (b *Builder) Sidebar(currentPath string) SidebarView {
	return b.sidebar.Present(routes.Navigation(currentPath))
}

// Features returns the landing page feature list.
func (b *Builder) Features() []fixtures.Feature {
	return b.data.Features
}

func (b *Builder) card(w routes.Widget, d routes.Descriptor, now time.Time, req Request) any {
	switch w {
	case routes.WidgetStatCards:
		return b.statCards()
	case routes.WidgetPerformance:
		return b.performance()
	case routes.WidgetPortfolioSummary:
		return b.allocation()
	case routes.WidgetMarketOverview:
		return b.markets()
	case routes.WidgetRecentTransactions:
		return b.transactions(now, req.ShowAllTransactions)
	case routes.WidgetAssetAllocation:
		return b.allocationHistory()
	case routes.WidgetRiskAnalysis:
		return b.risk()
	case routes.WidgetRecommendations:
		return b.recommendations()
	case routes.WidgetGoals:
		return b.goals(now)
	case routes.WidgetCommunity:
		return b.community()
	case routes.WidgetGlobalMarkets:
		return b.global()
	default:
		msg := d.Message
		if msg == "" {
			msg = "Content coming soon for " + d.Segment
		}
		return PlaceholderView{Segment: d.Segment, Message: msg}
	}
}

func (b *Builder) money(amount float64, opts core.FormatOptions) string {
	return core.FormatCurrency(amount, b.currency, opts)
}

func precisionOf(name string) core.Precision {
	switch name {
	case "whole":
		return core.PrecisionWhole
	case "cents":
		return core.PrecisionCents
	default:
		return core.PrecisionAuto
	}
}
