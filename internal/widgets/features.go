package widgets

import (
	"time"

	"fundsmart/internal/core"
	"fundsmart/internal/fixtures"
)

func (b *Builder) risk() RiskView {
	r := b.data.Risk
	current := core.ClassifyRisk(r.CurrentRisk())
	v := RiskView{
		Current: r.CurrentRisk(),
		Level:   current.String(),
		Tone:    current.Tone(),
		History: make([]RiskBar, 0, len(r.History)),
		Factors: make([]RiskFactorView, 0, len(r.Factors)),
	}
	for _, p := range r.History {
		level := core.ClassifyRisk(p.Score)
		v.History = append(v.History, RiskBar{Name: p.Name, Score: p.Score, Level: level.String(), Tone: level.Tone()})
	}
	for _, f := range r.Factors {
		level := core.ClassifyRisk(f.Score)
		v.Factors = append(v.Factors, RiskFactorView{
			Name:        f.Name,
			Score:       f.Score,
			Level:       level.String(),
			Tone:        level.Tone(),
			Description: f.Description,
		})
	}
	return v
}

func (b *Builder) recommendations() RecommendationsView {
	items := make([]RecommendationView, 0, len(b.data.Recommendations))
	for _, r := range b.data.Recommendations {
		items = append(items, RecommendationView{
			Asset:      r.Asset,
			Type:       r.Type,
			Action:     r.Action,
			ActionTone: core.ColorForCategory(r.Action, core.DomainRecommendation),
			Reason:     r.Reason,
			Confidence: r.Confidence,
			Return:     core.SignedDelta(r.PotentialReturn).Format(1),
			Risk:       r.Risk,
			RiskTone:   core.ColorForCategory(r.Risk, core.DomainRiskImpact),
		})
	}
	return b.recs.Present(items)
}

func (b *Builder) goals(now time.Time) []GoalView {
	whole := core.FormatOptions{Precision: core.PrecisionWhole}
	out := make([]GoalView, 0, len(b.data.Goals))
	for _, g := range b.data.Goals {
		v := GoalView{
			Name:     g.Name,
			Current:  b.money(g.Current, whole),
			Target:   b.money(g.Target, whole),
			Progress: g.Progress,
			Tone:     core.GoalProgressTone(g.Progress, g.OnTrack),
			OnTrack:  g.OnTrack,
			Deadline: core.FormatLongDate(g.Deadline),
			TimeLeft: core.TimeUntil(g.Deadline, now),
			Monthly:  b.money(g.MonthlyContribution, whole),
		}
		if !g.EstimatedCompletion.IsZero() {
			v.Completion = core.FormatLongDate(g.EstimatedCompletion)
		}
		out = append(out, v)
	}
	return out
}

func (b *Builder) community() CommunityView {
	return CommunityView{
		Discussions: posts(b.data.Discussions),
		Ideas:       posts(b.data.Ideas),
	}
}

func posts(in []fixtures.Post) []PostView {
	out := make([]PostView, 0, len(in))
	for _, p := range in {
		v := PostView{
			Author:      p.Author.Name,
			Initials:    core.Initials(p.Author.Name),
			AvatarColor: core.AvatarTone(p.Author.Name),
			Badge:       p.Author.Badge,
			Title:       p.Title,
			Content:     p.Content,
			Posted:      p.Posted,
			Likes:       p.Likes,
			Comments:    p.Comments,
			Shares:      p.Shares,
			Tags:        p.Tags,
		}
		if p.Performance != nil {
			dv := deltaView(core.FlaggedDelta(p.Performance.Value, p.Performance.Positive), 1)
			v.Performance = &dv
			v.Period = p.Performance.Period
		}
		out = append(out, v)
	}
	return out
}

func (b *Builder) global() GlobalView {
	g := b.data.Global
	cents := core.FormatOptions{Precision: core.PrecisionCents}
	v := GlobalView{
		Stocks: make([]GlobalRow, 0, len(g.Stocks)),
		Crypto: make([]GlobalRow, 0, len(g.Crypto)),
		Forex:  make([]GlobalRow, 0, len(g.Forex)),
	}
	for _, s := range g.Stocks {
		v.Stocks = append(v.Stocks, GlobalRow{
			Name:   s.Name,
			Detail: s.Region,
			Price:  core.FormatCurrency(s.Price, s.Currency, cents),
			Change: deltaView(core.SignedDelta(s.Change), 2),
			Volume: s.Volume,
		})
	}
	for _, c := range g.Crypto {
		v.Crypto = append(v.Crypto, GlobalRow{
			Name:   c.Name,
			Detail: c.Symbol,
			Price:  core.FormatCurrency(c.Price, c.Currency, cents),
			Change: deltaView(core.SignedDelta(c.Change), 2),
			Volume: c.Volume,
		})
	}
	for _, r := range g.Forex {
		v.Forex = append(v.Forex, GlobalRow{
			Name:   r.Name,
			Detail: r.From + " → " + r.To,
			Price:  core.FormatRate(r.Rate),
			Change: deltaView(core.SignedDelta(r.Change), 2),
		})
	}
	return v
}
