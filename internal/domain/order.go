package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// Order is an immutable view of a resting order on one side of a pair.
// The engine only ever reads it; derived results carry copies of its values.
type Order struct {
	ID        string          `json:"id"`
	Trader    string          `json:"trader"`
	Symbol    string          `json:"symbol"`
	Side      Side            `json:"side"`
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// Validate checks side, price and amount. A non-positive amount is rejected
// rather than clamped so a malformed snapshot surfaces instead of vanishing
// into empty results.
func (o *Order) Validate() error {
	switch o.Side {
	case Buy, Sell:
	default:
		return &InvalidOrderError{OrderID: o.ID, Field: "side", Reason: "must be BUY or SELL"}
	}
	if o.Price.Sign() <= 0 {
		return &InvalidOrderError{OrderID: o.ID, Field: "price", Reason: "must be > 0"}
	}
	if o.Amount.Sign() <= 0 {
		return &InvalidOrderError{OrderID: o.ID, Field: "amount", Reason: "must be > 0"}
	}
	return nil
}

// Opposite returns the other side of the book.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}
