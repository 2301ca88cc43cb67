package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// Order mirrors domain.Order on the wire. Decimals serialize as strings.
type Order struct {
	ID        string          `json:"id"`
	Trader    string          `json:"trader"`
	Symbol    string          `json:"symbol"`
	Side      Side            `json:"side"`
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

type Match struct {
	ID          string          `json:"id"`
	BuyOrderID  string          `json:"buy_order_id"`
	SellOrderID string          `json:"sell_order_id"`
	Amount      decimal.Decimal `json:"amount"`
	Price       decimal.Decimal `json:"price"`
	Timestamp   time.Time       `json:"timestamp"`
}

type DepthLevel struct {
	Price  decimal.Decimal `json:"price"`
	Amount decimal.Decimal `json:"amount"`
}

type GetOrderbookResponse struct {
	Symbol    string    `json:"symbol"`
	Bids      []Order   `json:"bids"`
	Asks      []Order   `json:"asks"`
	Timestamp time.Time `json:"timestamp"`
}

type GetDepthResponse struct {
	Symbol    string           `json:"symbol"`
	BuyDepth  []DepthLevel     `json:"buy_depth"`
	SellDepth []DepthLevel     `json:"sell_depth"`
	BestBid   *decimal.Decimal `json:"best_bid,omitempty"`
	BestAsk   *decimal.Decimal `json:"best_ask,omitempty"`
	Spread    *decimal.Decimal `json:"spread,omitempty"`
	MidPrice  *decimal.Decimal `json:"mid_price,omitempty"`
}

type GetMatchesResponse struct {
	Symbol  string  `json:"symbol"`
	Matches []Match `json:"matches"`
}

type SimulateOrderRequest struct {
	Symbol string          `json:"symbol" binding:"required"`
	Side   Side            `json:"side" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

type SimulateOrderResponse struct {
	Matches   []Match         `json:"matches"`
	Remaining decimal.Decimal `json:"remaining"`
}

type CheckFillRequest struct {
	Symbol string          `json:"symbol" binding:"required"`
	Side   Side            `json:"side" binding:"required"`
	Price  decimal.Decimal `json:"price" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

type CheckFillResponse struct {
	CanFill    bool             `json:"can_fill"`
	FillAmount decimal.Decimal  `json:"fill_amount"`
	FillPrice  *decimal.Decimal `json:"fill_price,omitempty"`
	Slippage   *decimal.Decimal `json:"slippage_percent,omitempty"`
}

type SnapshotRequest struct {
	Symbol string `json:"symbol" binding:"required"`
}

type SnapshotResponse struct {
	SnapshotID string `json:"snapshot_id"`
}

type RestoreRequest struct {
	SnapshotID string `json:"snapshot_id" binding:"required"`
}

type RestoreResponse struct {
	Symbol string `json:"symbol"`
	Ok     bool   `json:"ok"`
}
