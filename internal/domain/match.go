package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Match pairs a buy and a sell order with an agreed quantity and price.
// It is a computed report; applying it to balances belongs to the
// settlement layer.
type Match struct {
	ID          string          `json:"id"`
	Symbol      string          `json:"symbol"`
	BuyOrderID  string          `json:"buy_order_id"`
	SellOrderID string          `json:"sell_order_id"`
	Amount      decimal.Decimal `json:"amount"`
	Price       decimal.Decimal `json:"price"`
	Timestamp   time.Time       `json:"timestamp"`
}

// MarketOrderResult reports a simulated walk over the opposing side of the
// book. A result with no matches and Remaining equal to the requested amount
// means "no liquidity", not an error.
type MarketOrderResult struct {
	Matches   []Match         `json:"matches"`
	Remaining decimal.Decimal `json:"remaining"`
}

// FillCheck reports whether a proposed limit order would fill against the
// current book. Priced is false when no opposing order was price-compatible;
// FillPrice and Slippage carry values only when it is true.
type FillCheck struct {
	CanFill    bool            `json:"can_fill"`
	FillAmount decimal.Decimal `json:"fill_amount"`
	FillPrice  decimal.Decimal `json:"fill_price"`
	Slippage   decimal.Decimal `json:"slippage_percent"`
	Priced     bool            `json:"priced"`
}
