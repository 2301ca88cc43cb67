package domain

import "time"

// OrderbookSnapshot is a point-in-time view of one trading pair. Neither side
// is required to arrive sorted; every computation that needs an ordering
// sorts its own working copy.
type OrderbookSnapshot struct {
	Symbol    string    `json:"symbol"`
	Bids      []Order   `json:"bids"`
	Asks      []Order   `json:"asks"`
	Timestamp time.Time `json:"timestamp"`
}

// DeepCopy returns a snapshot whose order slices do not alias the receiver.
func (s *OrderbookSnapshot) DeepCopy() *OrderbookSnapshot {
	cp := &OrderbookSnapshot{
		Symbol:    s.Symbol,
		Timestamp: s.Timestamp,
	}
	if s.Bids != nil {
		cp.Bids = make([]Order, len(s.Bids))
		copy(cp.Bids, s.Bids)
	}
	if s.Asks != nil {
		cp.Asks = make([]Order, len(s.Asks))
		copy(cp.Asks, s.Asks)
	}
	return cp
}

// Validate checks every order and that each one sits in the list matching
// its side.
func (s *OrderbookSnapshot) Validate() error {
	for i := range s.Bids {
		if err := s.Bids[i].Validate(); err != nil {
			return err
		}
		if s.Bids[i].Side != Buy {
			return &InvalidOrderError{OrderID: s.Bids[i].ID, Field: "side", Reason: "sell order in bid list"}
		}
	}
	for i := range s.Asks {
		if err := s.Asks[i].Validate(); err != nil {
			return err
		}
		if s.Asks[i].Side != Sell {
			return &InvalidOrderError{OrderID: s.Asks[i].ID, Field: "side", Reason: "buy order in ask list"}
		}
	}
	return nil
}
