package widgets

import (
	"time"

	"fundsmart/internal/core"
	"fundsmart/internal/fixtures"
)

var sliceColors = []string{"blue", "green", "yellow", "purple", "red"}

var transactionIcons = map[string]string{
	"deposit":    "arrow-down-left",
	"withdrawal": "arrow-up-right",
	"investment": "shopping-cart",
	"dividend":   "gift",
	"fee":        "badge-dollar",
}

const defaultTransactionIcon = "wallet"

func (b *Builder) statCards() []StatCardView {
	out := make([]StatCardView, 0, len(b.data.StatCards))
	for _, c := range b.data.StatCards {
		v := StatCardView{Title: c.Title, Icon: c.Icon, Description: c.Description}
		if c.Kind == fixtures.KindPercent {
			v.Value = core.FormatPercent(c.Amount, c.FractionDigits())
		} else {
			v.Value = b.money(c.Amount, core.FormatOptions{Precision: precisionOf(c.Precision)})
		}
		if c.Delta != nil {
			dv := deltaView(core.FlaggedDelta(c.Delta.Value, c.Delta.Positive), 1)
			v.Delta = &dv
		}
		out = append(out, v)
	}
	return out
}

func (b *Builder) performance() PerformanceView {
	pts := b.data.Performance
	if len(pts) == 0 {
		return PerformanceView{}
	}
	first, last := pts[0].Value, pts[len(pts)-1].Value
	lo, hi := first, first
	for _, p := range pts {
		lo = min(lo, p.Value)
		hi = max(hi, p.Value)
	}

	v := PerformanceView{
		Start:  b.money(first, core.FormatOptions{Precision: core.PrecisionCents}),
		End:    b.money(last, core.FormatOptions{Precision: core.PrecisionCents}),
		Points: make([]BarView, 0, len(pts)),
	}
	if first != 0 {
		v.Change = deltaView(core.SignedDelta((last-first)/first*100), 2)
	}
	for _, p := range pts {
		height := 100
		if hi > lo {
			height = 20 + int(80*(p.Value-lo)/(hi-lo))
		}
		v.Points = append(v.Points, BarView{
			Label:  core.FormatShortDate(p.Date),
			Value:  b.money(p.Value, core.FormatOptions{Precision: core.PrecisionCents}),
			Height: height,
		})
	}
	return v
}

func (b *Builder) allocation() AllocationView {
	out := AllocationView{Slices: make([]SliceView, 0, len(b.data.Allocation))}
	for i, s := range b.data.Allocation {
		out.Slices = append(out.Slices, SliceView{
			Name:    s.Name,
			Percent: core.FormatPercent(s.Value, 0),
			Color:   sliceColors[i%len(sliceColors)],
		})
	}
	return out
}

func (b *Builder) markets() []MarketRow {
	out := make([]MarketRow, 0, len(b.data.Markets))
	for _, q := range b.data.Markets {
		out = append(out, MarketRow{
			Name:   q.Name,
			Ticker: q.Ticker,
			Price:  b.money(q.Price, core.FormatOptions{}),
			Change: deltaView(core.SignedDelta(q.Change), 2),
			Volume: q.Volume,
		})
	}
	return out
}

func (b *Builder) transactions(now time.Time, showAll bool) TransactionsView {
	all := b.data.Transactions
	visible := len(all)
	if !showAll && b.data.Display.VisibleTransactions < visible {
		visible = b.data.Display.VisibleTransactions
	}

	v := TransactionsView{
		Rows:    make([]TransactionRow, 0, visible),
		Hidden:  len(all) - visible,
		ShowAll: showAll,
	}
	for _, tx := range all[:visible] {
		icon, ok := transactionIcons[tx.Type]
		if !ok {
			icon = defaultTransactionIcon
		}
		v.Rows = append(v.Rows, TransactionRow{
			ID:          tx.ID,
			Title:       tx.Title,
			Description: tx.Description,
			Amount:      b.money(tx.Amount, core.FormatOptions{Precision: core.PrecisionCents, Sign: core.SignAlways}),
			Tone:        core.ColorForCategory(tx.Type, core.DomainTransaction),
			Icon:        icon,
			When:        core.RelativeDate(tx.Date, now),
			Status:      tx.Status,
		})
	}
	return v
}

func (b *Builder) allocationHistory() AllocationHistoryView {
	h := b.data.AllocationHistory
	v := AllocationHistoryView{Classes: h.Classes, Months: make([]MonthView, 0, len(h.Months))}

	var peak float64
	for _, m := range h.Months {
		mv := MonthView{Name: m.Name, Values: make([]string, 0, len(m.Values))}
		var total float64
		for _, x := range m.Values {
			mv.Values = append(mv.Values, b.money(x, core.FormatOptions{Precision: core.PrecisionWhole}))
			total += x
			peak = max(peak, x)
		}
		mv.Total = b.money(total, core.FormatOptions{Precision: core.PrecisionWhole})
		v.Months = append(v.Months, mv)
	}

	const ticks = 4
	for i := 0; i <= ticks; i++ {
		v.Axis = append(v.Axis, core.FormatCompact(peak*float64(i)/ticks, b.currency))
	}
	return v
}
