package domain

import "github.com/shopspring/decimal"

// DepthLevel is the summed resting amount at one price on one side.
type DepthLevel struct {
	Price  decimal.Decimal `json:"price"`
	Amount decimal.Decimal `json:"amount"`
}

// DepthView aggregates a snapshot into price levels. Spread and MidPrice are
// defined only when both HasBid and HasAsk are true; otherwise they are left
// at zero and the flags tell the caller the quote is unknown. A crossed book
// (best bid above best ask) is reported as-is with a negative spread.
type DepthView struct {
	BuyDepth  []DepthLevel    `json:"buy_depth"`
	SellDepth []DepthLevel    `json:"sell_depth"`
	BestBid   decimal.Decimal `json:"best_bid"`
	BestAsk   decimal.Decimal `json:"best_ask"`
	Spread    decimal.Decimal `json:"spread"`
	MidPrice  decimal.Decimal `json:"mid_price"`
	HasBid    bool            `json:"has_bid"`
	HasAsk    bool            `json:"has_ask"`
}
