package core

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/domain"
)

// ComputeDepth collapses the snapshot into per-price totals on each side and
// derives best bid, best ask, spread and mid price. Accumulation is keyed by
// exact price, not range buckets. Spread and MidPrice are defined only when
// both sides have at least one level; the HasBid/HasAsk flags make the
// missing-quote case explicit instead of passing zero off as a real spread.
// A crossed book yields a negative spread, reported as-is.
func (m *Matcher) ComputeDepth(snapshot *domain.OrderbookSnapshot) (domain.DepthView, error) {
	if err := snapshot.Validate(); err != nil {
		return domain.DepthView{}, err
	}

	buyDepth := aggregateLevels(snapshot.Bids)
	sellDepth := aggregateLevels(snapshot.Asks)

	sort.Slice(buyDepth, func(i, j int) bool {
		return buyDepth[i].Price.GreaterThan(buyDepth[j].Price)
	})
	sort.Slice(sellDepth, func(i, j int) bool {
		return sellDepth[i].Price.LessThan(sellDepth[j].Price)
	})

	view := domain.DepthView{
		BuyDepth:  buyDepth,
		SellDepth: sellDepth,
		HasBid:    len(buyDepth) > 0,
		HasAsk:    len(sellDepth) > 0,
	}
	if view.HasBid {
		view.BestBid = buyDepth[0].Price
	}
	if view.HasAsk {
		view.BestAsk = sellDepth[0].Price
	}
	if view.HasBid && view.HasAsk {
		view.Spread = view.BestAsk.Sub(view.BestBid)
		view.MidPrice = view.BestBid.Add(view.BestAsk).Mul(half)
	}
	return view, nil
}

func aggregateLevels(orders []domain.Order) []domain.DepthLevel {
	totals := make(map[string]decimal.Decimal, len(orders))
	prices := make(map[string]decimal.Decimal, len(orders))
	for _, o := range orders {
		key := o.Price.String()
		totals[key] = totals[key].Add(o.Amount)
		prices[key] = o.Price
	}
	levels := make([]domain.DepthLevel, 0, len(totals))
	for key, total := range totals {
		levels = append(levels, domain.DepthLevel{Price: prices[key], Amount: total})
	}
	return levels
}
