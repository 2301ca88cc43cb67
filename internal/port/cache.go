package port

import (
	"context"

	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/domain"
)

// Cache is a read-through snapshot cache in front of the repository. A nil
// snapshot with a nil error is a miss.
type Cache interface {
	SetOrderbook(ctx context.Context, symbol string, ob *domain.OrderbookSnapshot) error
	GetOrderbook(ctx context.Context, symbol string) (*domain.OrderbookSnapshot, error)
	Invalidate(ctx context.Context, symbol string) error
}
