package core

import (
	"github.com/shopspring/decimal"

	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/domain"
)

// FindMatches enumerates every crossing bid/ask pair in the snapshot and
// reports the quantity and mid price each pair would trade at.
//
// This is a discovery report, not an execution plan: the walk runs on a
// non-consuming ledger, so a single large ask can appear in many reported
// matches, each claiming its full resting amount. Callers that need a
// liquidity-respecting allocation use ExecuteMarketOrder instead.
//
// Asks are sorted ascending, so the inner scan stops at the first ask the
// bid cannot cross; no later ask can cross either. All-pairs enumeration is
// O(n*m), acceptable for the book sizes this engine sees.
func (m *Matcher) FindMatches(snapshot *domain.OrderbookSnapshot) ([]domain.Match, error) {
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}

	bids := m.sortBids(snapshot.Bids)
	asks := m.sortAsks(snapshot.Asks)
	book := newLedger(false)

	var matches []domain.Match
	for bi := range bids {
		buy := &bids[bi]
		for ai := range asks {
			sell := &asks[ai]
			if !CanCross(buy, sell) {
				break
			}
			qty := decimal.Min(book.available(buy), book.available(sell))
			if qty.Sign() <= 0 {
				continue
			}
			matches = append(matches, domain.Match{
				ID:          m.newID(),
				Symbol:      snapshot.Symbol,
				BuyOrderID:  buy.ID,
				SellOrderID: sell.ID,
				Amount:      qty,
				Price:       MatchPrice(buy, sell),
				Timestamp:   m.now(),
			})
			book.take(buy, qty)
			book.take(sell, qty)
		}
	}
	return matches, nil
}
