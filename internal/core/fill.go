package core

import (
	"github.com/shopspring/decimal"

	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// CheckImmediateFill reports whether a proposed limit order would fill right
// now against the opposing side of the snapshot, and at what effective price.
//
// The fill price is the volume-weighted average over the liquidity the
// proposal would actually consume, walked in price priority and trimmed to
// FillAmount. Slippage is signed relative to the proposed price: positive
// means worse than proposed, negative better. When no opposing order is
// price-compatible the result has CanFill and Priced both false.
func (m *Matcher) CheckImmediateFill(snapshot *domain.OrderbookSnapshot, price, amount decimal.Decimal, side domain.Side) (domain.FillCheck, error) {
	if err := snapshot.Validate(); err != nil {
		return domain.FillCheck{}, err
	}
	if side != domain.Buy && side != domain.Sell {
		return domain.FillCheck{}, &domain.InvalidOrderError{Field: "side", Reason: "must be BUY or SELL"}
	}
	if price.Sign() <= 0 {
		return domain.FillCheck{}, &domain.InvalidOrderError{Field: "price", Reason: "must be > 0"}
	}
	if amount.Sign() <= 0 {
		return domain.FillCheck{}, &domain.InvalidOrderError{Field: "amount", Reason: "must be > 0"}
	}

	// opposing orders the proposal could trade with, best price first
	var compatible []domain.Order
	if side == domain.Buy {
		for _, o := range m.sortAsks(snapshot.Asks) {
			if o.Price.LessThanOrEqual(price) {
				compatible = append(compatible, o)
			}
		}
	} else {
		for _, o := range m.sortBids(snapshot.Bids) {
			if o.Price.GreaterThanOrEqual(price) {
				compatible = append(compatible, o)
			}
		}
	}
	if len(compatible) == 0 {
		return domain.FillCheck{CanFill: false}, nil
	}

	totalAvailable := decimal.Zero
	for _, o := range compatible {
		totalAvailable = totalAvailable.Add(o.Amount)
	}
	fillAmount := decimal.Min(totalAvailable, amount)

	// weighted average over exactly the liquidity that would be consumed
	left := fillAmount
	notional := decimal.Zero
	for _, o := range compatible {
		if left.Sign() <= 0 {
			break
		}
		take := decimal.Min(left, o.Amount)
		notional = notional.Add(o.Price.Mul(take))
		left = left.Sub(take)
	}
	fillPrice := notional.Div(fillAmount)

	slippage := fillPrice.Sub(price).Div(price).Mul(hundred)
	if side == domain.Sell {
		slippage = price.Sub(fillPrice).Div(price).Mul(hundred)
	}

	return domain.FillCheck{
		CanFill:    totalAvailable.GreaterThanOrEqual(amount),
		FillAmount: fillAmount,
		FillPrice:  fillPrice,
		Slippage:   slippage,
		Priced:     true,
	}, nil
}
