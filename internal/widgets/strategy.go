package widgets

// This file holds the variant view strategies. Each variant of a widget is
// a strategy chosen once at startup from configuration.

import (
	"cmp"
	"fmt"
	"slices"

	"fundsmart/internal/routes"
)

const (
	VariantCards     = "cards"
	VariantCompact   = "compact"
	VariantExpanded  = "expanded"
	VariantCollapsed = "collapsed"
)

// RecommendationsPresenter arranges recommendation items for display.
type RecommendationsPresenter interface {
	Present(items []RecommendationView) RecommendationsView
}

// CardsPresenter shows every recommendation with its reasoning.
type CardsPresenter struct{}

func (CardsPresenter) Present(items []RecommendationView) RecommendationsView {
	return RecommendationsView{Variant: VariantCards, Items: items}
}

// CompactPresenter shows the Limit most confident recommendations without
// their reasoning.
type CompactPresenter struct {
	Limit int
}

func (p CompactPresenter) Present(items []RecommendationView) RecommendationsView {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b RecommendationView) int {
		return cmp.Compare(b.Confidence, a.Confidence)
	})
	if p.Limit > 0 && len(out) > p.Limit {
		out = out[:p.Limit]
	}
	for i := range out {
		out[i].Reason = ""
	}
	return RecommendationsView{Variant: VariantCompact, Items: out}
}

// SidebarPresenter decides how navigation groups are shown.
type SidebarPresenter interface {
	Present(groups []routes.NavGroup) SidebarView
}

type ExpandedSidebar struct{}

func (ExpandedSidebar) Present(groups []routes.NavGroup) SidebarView {
	return SidebarView{Variant: VariantExpanded, Groups: groups}
}

// CollapsedSidebar keeps icons only; group labels are dropped.
type CollapsedSidebar struct{}

func (CollapsedSidebar) Present(groups []routes.NavGroup) SidebarView {
	out := make([]routes.NavGroup, len(groups))
	for i, g := range groups {
		out[i] = routes.NavGroup{Items: g.Items}
	}
	return SidebarView{Variant: VariantCollapsed, Collapsed: true, Groups: out}
}

var recommendationPresenters = map[string]RecommendationsPresenter{
	VariantCards:   CardsPresenter{},
	VariantCompact: CompactPresenter{Limit: 3},
}

var sidebarPresenters = map[string]SidebarPresenter{
	VariantExpanded:  ExpandedSidebar{},
	VariantCollapsed: CollapsedSidebar{},
}

// GetRecommendationsPresenter returns the presenter for a variant name.
func GetRecommendationsPresenter(variant string) (RecommendationsPresenter, error) {
	p, ok := recommendationPresenters[variant]
	if !ok {
		return nil, fmt.Errorf("unknown recommendations view: %s", variant)
	}
	return p, nil
}

// GetSidebarPresenter returns the presenter for a variant name.
func GetSidebarPresenter(variant string) (SidebarPresenter, error) {
	p, ok := sidebarPresenters[variant]
	if !ok {
		return nil, fmt.Errorf("unknown sidebar view: %s", variant)
	}
	return p, nil
}
