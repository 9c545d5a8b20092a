package widgets

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"fundsmart/internal/cache"
	"fundsmart/internal/core"
	"fundsmart/internal/fixtures"
	"fundsmart/internal/routes"
)

var testNow = time.Date(2023, 11, 21, 16, 0, 0, 0, time.UTC)

func newTestBuilder(t *testing.T, opts ...Option) *Builder {
	t.Helper()
	data, err := fixtures.Default()
	if err != nil {
		t.Fatalf("load fixtures: %v", err)
	}
	return NewBuilder(data, opts...)
}

func cardData[T any](t *testing.T, p Page, kind routes.Widget) T {
	t.Helper()
	for _, c := range p.Cards {
		if c.Kind == kind {
			v, ok := c.Data.(T)
			if !ok {
				t.Fatalf("card %s has data %T", kind, c.Data)
			}
			return v
		}
	}
	t.Fatalf("page has no %s card", kind)
	var zero T
	return zero
}

func resolve(segment string) routes.Descriptor {
	return routes.NewResolver(routes.DefaultRegistry()).Resolve(segment)
}

func TestBuildOverview(t *testing.T) {
	b := newTestBuilder(t)
	p := b.Build(resolve("dashboard"), testNow, Request{})

	if p.Title != "Overview" || len(p.Cards) != 6 {
		t.Fatalf("unexpected page %q with %d cards", p.Title, len(p.Cards))
	}
	for i, c := range p.Cards {
		if c.RevealDelay != i*100 {
			t.Errorf("card %d reveal delay = %d", i, c.RevealDelay)
		}
	}

	stats := cardData[[]StatCardView](t, p, routes.WidgetStatCards)
	if stats[0].Value != "$128,432.28" || stats[0].Delta == nil || stats[0].Delta.Text != "+3.2%" {
		t.Errorf("total assets card = %+v", stats[0])
	}
	if stats[2].Value != "12.4%" {
		t.Errorf("annual return value = %q", stats[2].Value)
	}
	if stats[3].Value != "$345.92" || stats[3].Delta != nil {
		t.Errorf("next dividend card = %+v", stats[3])
	}

	markets := cardData[[]MarketRow](t, p, routes.WidgetMarketOverview)
	if markets[0].Price != "$456.78" || markets[1].Price != "$38,456" {
		t.Errorf("market prices = %q, %q", markets[0].Price, markets[1].Price)
	}
	if markets[2].Change.Text != "-0.32%" || markets[2].Change.Tone != core.ToneNegative {
		t.Errorf("gold change = %+v", markets[2].Change)
	}

	alloc := cardData[AllocationView](t, p, routes.WidgetPortfolioSummary)
	if alloc.Slices[0].Percent != "37%" || alloc.Slices[0].Name != "Stocks" {
		t.Errorf("allocation slice = %+v", alloc.Slices[0])
	}

	perf := cardData[PerformanceView](t, p, routes.WidgetPerformance)
	if perf.Start != "$10,000.00" || perf.End != "$11,230.85" || perf.Change.Text != "+12.31%" {
		t.Errorf("performance = %s -> %s (%s)", perf.Start, perf.End, perf.Change.Text)
	}
	if perf.Points[0].Height != 20 || perf.Points[len(perf.Points)-1].Height != 100 {
		t.Errorf("bar heights = %d..%d", perf.Points[0].Height, perf.Points[len(perf.Points)-1].Height)
	}
	if perf.Points[0].Label != "Aug 25" {
		t.Errorf("first label = %q", perf.Points[0].Label)
	}

	hist := cardData[AllocationHistoryView](t, p, routes.WidgetAssetAllocation)
	if hist.Months[0].Values[0] != "$4,000" || hist.Months[0].Total != "$8,600" {
		t.Errorf("january = %+v", hist.Months[0])
	}
	if diff := cmp.Diff([]string{"$0k", "$1k", "$3k", "$4k", "$5k"}, hist.Axis); diff != "" {
		t.Errorf("axis mismatch:\n%s", diff)
	}
}

func TestBuildTransactions(t *testing.T) {
	b := newTestBuilder(t)

	p := b.Build(resolve("dashboard"), testNow, Request{})
	tx := cardData[TransactionsView](t, p, routes.WidgetRecentTransactions)
	if len(tx.Rows) != 3 || tx.Hidden != 2 || tx.ShowAll {
		t.Fatalf("rows=%d hidden=%d showAll=%v", len(tx.Rows), tx.Hidden, tx.ShowAll)
	}
	want := []TransactionRow{
		{ID: "tx1", Title: "Deposit", Description: "Deposit from Bank Account", Amount: "+$2,000.00", Tone: core.TonePositive, Icon: "arrow-down-left", When: "Today", Status: "completed"},
		{ID: "tx2", Title: "Withdrawal", Description: "Transfer to External Wallet", Amount: "-$550.00", Tone: core.ToneNegative, Icon: "arrow-up-right", When: "Yesterday", Status: "completed"},
		{ID: "tx3", Title: "Stock Purchase", Description: "AAPL - 5 shares", Amount: "-$975.50", Tone: core.ToneNeutral, Icon: "shopping-cart", When: "3 days ago", Status: "completed"},
	}
	if diff := cmp.Diff(want, tx.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}

	p = b.Build(resolve("dashboard"), testNow, Request{ShowAllTransactions: true})
	tx = cardData[TransactionsView](t, p, routes.WidgetRecentTransactions)
	if len(tx.Rows) != 5 || tx.Hidden != 0 {
		t.Fatalf("show all: rows=%d hidden=%d", len(tx.Rows), tx.Hidden)
	}
	if tx.Rows[3].When != "6 days ago" || tx.Rows[4].When != "Nov 1" {
		t.Errorf("dates = %q, %q", tx.Rows[3].When, tx.Rows[4].When)
	}
	if tx.Rows[4].Amount != "-$12.99" || tx.Rows[4].Tone != core.ToneCaution {
		t.Errorf("fee row = %+v", tx.Rows[4])
	}
}

func TestBuildRiskAnalysis(t *testing.T) {
	p := newTestBuilder(t).Build(resolve("risk-analysis"), testNow, Request{})
	r := cardData[RiskView](t, p, routes.WidgetRiskAnalysis)

	if r.Current != 28 || r.Level != "Low" || r.Tone != core.TonePositive {
		t.Errorf("current risk = %d %s %s", r.Current, r.Level, r.Tone)
	}
	if len(r.History) != 8 || r.History[3].Level != "Medium" {
		t.Errorf("history = %+v", r.History)
	}
	if r.Factors[1].Level != "High" || r.Factors[1].Tone != core.ToneNegative {
		t.Errorf("asset concentration = %+v", r.Factors[1])
	}
	if r.Factors[2].Level != "Medium" {
		t.Errorf("economic indicators = %+v", r.Factors[2])
	}
}

func TestBuildRecommendations(t *testing.T) {
	p := newTestBuilder(t).Build(resolve("ai-recommendations"), testNow, Request{})
	v := cardData[RecommendationsView](t, p, routes.WidgetRecommendations)

	if v.Variant != VariantCards || len(v.Items) != 4 {
		t.Fatalf("variant=%s items=%d", v.Variant, len(v.Items))
	}
	if v.Items[0].Return != "+18.5%" || v.Items[0].ActionTone != core.TonePositive {
		t.Errorf("first item = %+v", v.Items[0])
	}
	if v.Items[1].ActionTone != core.ToneNeutral || v.Items[1].RiskTone != core.TonePositive {
		t.Errorf("hold item = %+v", v.Items[1])
	}
	if v.Items[3].RiskTone != core.ToneNegative {
		t.Errorf("btc risk tone = %s", v.Items[3].RiskTone)
	}
}

func TestBuildRecommendationsCompact(t *testing.T) {
	b := newTestBuilder(t, WithRecommendations(CompactPresenter{Limit: 3}))
	p := b.Build(resolve("ai-recommendations"), testNow, Request{})
	v := cardData[RecommendationsView](t, p, routes.WidgetRecommendations)

	if v.Variant != VariantCompact || len(v.Items) != 3 {
		t.Fatalf("variant=%s items=%d", v.Variant, len(v.Items))
	}
	var assets []string
	for _, it := range v.Items {
		assets = append(assets, it.Asset)
		if it.Reason != "" {
			t.Errorf("compact item %s kept its reason", it.Asset)
		}
	}
	want := []string{"NVDA (NVIDIA)", "AMZN (Amazon)", "VGIT (Vanguard IT Bond ETF)"}
	if diff := cmp.Diff(want, assets); diff != "" {
		t.Errorf("order mismatch:\n%s", diff)
	}
}

func TestBuildGoals(t *testing.T) {
	p := newTestBuilder(t).Build(resolve("goals"), testNow, Request{})
	goals := cardData[[]GoalView](t, p, routes.WidgetGoals)

	want := GoalView{
		Name:       "Retirement Fund",
		Current:    "$175,000",
		Target:     "$500,000",
		Progress:   35,
		Tone:       core.ToneCaution,
		OnTrack:    true,
		Deadline:   "Jan 1, 2045",
		TimeLeft:   "21y 1m left",
		Monthly:    "$800",
		Completion: "May 12, 2044",
	}
	if diff := cmp.Diff(want, goals[0]); diff != "" {
		t.Errorf("retirement goal mismatch (-want +got):\n%s", diff)
	}
	if goals[1].TimeLeft != "1y 6m left" || goals[1].Tone != core.ToneNeutral {
		t.Errorf("home goal = %+v", goals[1])
	}
	if goals[2].Tone != core.ToneCaution {
		t.Errorf("off-track goal tone = %s", goals[2].Tone)
	}

	later := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	p = newTestBuilder(t).Build(resolve("goals"), later, Request{})
	goals = cardData[[]GoalView](t, p, routes.WidgetGoals)
	if goals[1].TimeLeft != "Due today" {
		t.Errorf("past deadline = %q", goals[1].TimeLeft)
	}
}

func TestBuildCommunity(t *testing.T) {
	p := newTestBuilder(t).Build(resolve("community"), testNow, Request{})
	c := cardData[CommunityView](t, p, routes.WidgetCommunity)

	if c.Discussions[0].Initials != "MW" || c.Discussions[0].AvatarColor != core.AvatarTone("Morgan Wilson") {
		t.Errorf("discussion author = %+v", c.Discussions[0])
	}
	if c.Discussions[0].Performance != nil {
		t.Errorf("discussion should carry no performance")
	}
	idea := c.Ideas[2]
	if idea.Performance == nil || idea.Performance.Text != "-3.2%" || idea.Performance.Tone != core.ToneNegative || idea.Period != "1 month" {
		t.Errorf("idea performance = %+v %q", idea.Performance, idea.Period)
	}
}

func TestBuildGlobal(t *testing.T) {
	p := newTestBuilder(t).Build(resolve("global"), testNow, Request{})
	g := cardData[GlobalView](t, p, routes.WidgetGlobalMarkets)

	if g.Stocks[1].Price != "£8,245.12" || g.Stocks[5].Price != "HK$18,652.23" {
		t.Errorf("stock prices = %q, %q", g.Stocks[1].Price, g.Stocks[5].Price)
	}
	if g.Crypto[3].Price != "$0.58" || g.Crypto[3].Change.Text != "-2.34%" {
		t.Errorf("cardano = %+v", g.Crypto[3])
	}
	if g.Forex[1].Price != "149.760" || g.Forex[1].Detail != "USD → JPY" {
		t.Errorf("usd/jpy = %+v", g.Forex[1])
	}
}

func TestBuildPlaceholder(t *testing.T) {
	p := newTestBuilder(t).Build(resolve("unregistered-segment"), testNow, Request{})
	if !p.Placeholder || len(p.Cards) != 1 {
		t.Fatalf("unexpected page %+v", p)
	}
	v := cardData[PlaceholderView](t, p, routes.WidgetPlaceholder)
	if v.Message != "Content coming soon for unregistered-segment" {
		t.Errorf("message = %q", v.Message)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	b := newTestBuilder(t)
	d := resolve("dashboard")
	if diff := cmp.Diff(b.Build(d, testNow, Request{}), b.Build(d, testNow, Request{})); diff != "" {
		t.Fatalf("Build not deterministic:\n%s", diff)
	}
}

func TestSidebar(t *testing.T) {
	v := newTestBuilder(t).Sidebar("/dashboard/goals")
	if v.Collapsed || v.Variant != VariantExpanded || v.Groups[2].Label != "Settings" {
		t.Errorf("expanded sidebar = %+v", v)
	}

	v = newTestBuilder(t, WithSidebar(CollapsedSidebar{})).Sidebar("/dashboard")
	if !v.Collapsed || v.Groups[2].Label != "" || !v.Groups[0].Items[0].Active {
		t.Errorf("collapsed sidebar = %+v", v)
	}
}

func TestPresenterLookup(t *testing.T) {
	if _, err := GetRecommendationsPresenter("compact"); err != nil {
		t.Errorf("compact: %v", err)
	}
	if _, err := GetRecommendationsPresenter("carousel"); err == nil {
		t.Error("expected error for unknown variant")
	}
	if _, err := GetSidebarPresenter("collapsed"); err != nil {
		t.Errorf("collapsed: %v", err)
	}
	if _, err := GetSidebarPresenter("floating"); err == nil {
		t.Error("expected error for unknown sidebar variant")
	}
}

type countingBuilder struct {
	calls int
}

func (c *countingBuilder) Build(d routes.Descriptor, _ time.Time, _ Request) Page {
	c.calls++
	return Page{Segment: d.Segment}
}

func TestCachedBuilder(t *testing.T) {
	next := &countingBuilder{}
	b := NewCachedBuilder(next, cache.NewLRUCache[Page](10, time.Hour))
	d := resolve("goals")

	b.Build(d, testNow, Request{})
	b.Build(d, testNow.Add(30*time.Second), Request{})
	if next.calls != 1 {
		t.Fatalf("calls within a minute = %d, want 1", next.calls)
	}

	b.Build(d, testNow, Request{ShowAllTransactions: true})
	b.Build(d, testNow.Add(time.Minute), Request{})
	b.Build(resolve("community"), testNow, Request{})
	if next.calls != 4 {
		t.Fatalf("calls = %d, want 4", next.calls)
	}
}
