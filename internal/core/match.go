package core

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/domain"
)

// half is exact in decimal, unlike dividing by two which rounds at the
// configured division precision. Prices carry up to 18 fractional digits and
// must round-trip into settlement unchanged.
var half = decimal.New(5, -1)

// CanCross reports whether a buy and a sell order are economically
// compatible: the bid is at or above the ask. There is no tick or fee
// adjustment at this layer.
func CanCross(buy, sell *domain.Order) bool {
	return buy.Price.GreaterThanOrEqual(sell.Price)
}

// MatchAmount is the quantity the two orders would trade: the smaller of the
// two resting amounts. Callers must not build a Match from a non-positive
// result.
func MatchAmount(buy, sell *domain.Order) decimal.Decimal {
	return decimal.Min(buy.Amount, sell.Amount)
}

// MatchPrice is the arithmetic mean of the two order prices, independent of
// the matched quantity.
func MatchPrice(buy, sell *domain.Order) decimal.Decimal {
	return buy.Price.Add(sell.Price).Mul(half)
}

// TieBreak orders two orders that rest at the same price. It is threaded
// through every sort so the secondary priority rule is an explicit,
// swappable policy rather than incidental slice order.
type TieBreak func(a, b domain.Order) bool

// FIFO is the conventional exchange rule: older orders first.
func FIFO(a, b domain.Order) bool {
	return a.CreatedAt.Before(b.CreatedAt)
}

// Matcher evaluates an order book snapshot. It holds no book state; every
// method is a pure function of the snapshot it is given, so a single Matcher
// may be shared by concurrent callers.
type Matcher struct {
	tieBreak TieBreak
	now      func() time.Time
	newID    func() string
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithTieBreak replaces the FIFO same-price rule.
func WithTieBreak(tb TieBreak) MatcherOption {
	return func(m *Matcher) {
		m.tieBreak = tb
	}
}

// WithClock replaces the wall clock used to stamp matches.
func WithClock(now func() time.Time) MatcherOption {
	return func(m *Matcher) {
		m.now = now
	}
}

// WithIDGenerator replaces the match ID source.
func WithIDGenerator(gen func() string) MatcherOption {
	return func(m *Matcher) {
		m.newID = gen
	}
}

// NewMatcher builds a Matcher with FIFO tie-break and wall-clock timestamps.
func NewMatcher(opts ...MatcherOption) *Matcher {
	m := &Matcher{
		tieBreak: FIFO,
		now:      time.Now,
		newID:    newMatchID,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ledger tracks how much of each resting order is still available during one
// computation. A consuming ledger decrements as matches are allocated; a
// non-consuming one always reports the full resting amount, which makes the
// batch matcher's output an explicit what-if discovery report.
type ledger struct {
	consume   bool
	remaining map[string]decimal.Decimal
}

func newLedger(consume bool) *ledger {
	l := &ledger{consume: consume}
	if consume {
		l.remaining = make(map[string]decimal.Decimal)
	}
	return l
}

func (l *ledger) available(o *domain.Order) decimal.Decimal {
	if !l.consume {
		return o.Amount
	}
	if left, ok := l.remaining[o.ID]; ok {
		return left
	}
	return o.Amount
}

func (l *ledger) take(o *domain.Order, qty decimal.Decimal) {
	if !l.consume {
		return
	}
	l.remaining[o.ID] = l.available(o).Sub(qty)
}
