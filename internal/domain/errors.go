package domain

import "fmt"

// InvalidOrderError names the order and field that made an input snapshot or
// proposal unusable.
type InvalidOrderError struct {
	OrderID string
	Field   string
	Reason  string
}

func (e *InvalidOrderError) Error() string {
	if e.OrderID == "" {
		return fmt.Sprintf("invalid order: %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid order %s: %s %s", e.OrderID, e.Field, e.Reason)
}
