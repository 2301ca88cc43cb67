package core

import (
	"sort"

	"github.com/google/uuid"

	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/domain"
)

// sortBids orders a working copy of the bid side: price descending, then the
// tie-break policy. The input snapshot is never touched.
func (m *Matcher) sortBids(bids []domain.Order) []domain.Order {
	out := make([]domain.Order, len(bids))
	copy(out, bids)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Price.Equal(out[j].Price) {
			return out[i].Price.GreaterThan(out[j].Price)
		}
		return m.tieBreak(out[i], out[j])
	})
	return out
}

// sortAsks orders a working copy of the ask side: price ascending, then the
// tie-break policy.
func (m *Matcher) sortAsks(asks []domain.Order) []domain.Order {
	out := make([]domain.Order, len(asks))
	copy(out, asks)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Price.Equal(out[j].Price) {
			return out[i].Price.LessThan(out[j].Price)
		}
		return m.tieBreak(out[i], out[j])
	})
	return out
}

func newMatchID() string {
	return uuid.NewString()
}
