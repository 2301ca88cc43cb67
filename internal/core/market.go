package core

import (
	"github.com/shopspring/decimal"

	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/domain"
)

// ExecuteMarketOrder simulates a market order for amount base units
// consuming the opposing side of the snapshot in price priority. Each
// resting order contributes at most its own amount once; the walk stops when
// the request is filled or the side is exhausted.
//
// The synthetic incoming order is priced at each resting order it meets, so
// every match executes at that resting order's own price. An empty opposing
// side is not an error: the result carries the full requested amount as
// Remaining and the caller decides what to do with it.
func (m *Matcher) ExecuteMarketOrder(snapshot *domain.OrderbookSnapshot, amount decimal.Decimal, side domain.Side) (domain.MarketOrderResult, error) {
	if err := snapshot.Validate(); err != nil {
		return domain.MarketOrderResult{}, err
	}
	if side != domain.Buy && side != domain.Sell {
		return domain.MarketOrderResult{}, &domain.InvalidOrderError{Field: "side", Reason: "must be BUY or SELL"}
	}
	if amount.Sign() <= 0 {
		return domain.MarketOrderResult{}, &domain.InvalidOrderError{Field: "amount", Reason: "must be > 0"}
	}

	var resting []domain.Order
	if side == domain.Buy {
		resting = m.sortAsks(snapshot.Asks)
	} else {
		resting = m.sortBids(snapshot.Bids)
	}

	incomingID := m.newID()
	book := newLedger(true)
	remaining := amount

	var matches []domain.Match
	for i := range resting {
		if remaining.Sign() <= 0 {
			break
		}
		other := &resting[i]
		take := decimal.Min(remaining, book.available(other))
		if take.Sign() <= 0 {
			continue
		}

		// incoming order priced at the resting order's own price, so the
		// mean collapses to that price
		incoming := domain.Order{
			ID:     incomingID,
			Symbol: snapshot.Symbol,
			Side:   side,
			Price:  other.Price,
			Amount: take,
		}
		buy, sell := &incoming, other
		if side == domain.Sell {
			buy, sell = other, &incoming
		}

		matches = append(matches, domain.Match{
			ID:          m.newID(),
			Symbol:      snapshot.Symbol,
			BuyOrderID:  buy.ID,
			SellOrderID: sell.ID,
			Amount:      take,
			Price:       MatchPrice(buy, sell),
			Timestamp:   m.now(),
		})
		book.take(other, take)
		remaining = remaining.Sub(take)
	}

	return domain.MarketOrderResult{Matches: matches, Remaining: remaining}, nil
}
