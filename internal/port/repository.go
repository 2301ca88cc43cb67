package port

import (
	"context"

	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/domain"
)

// Repository is the settlement-layer query and persistence surface the
// engine consumes. FetchOrderBook must return both sides with exact decimal
// price/amount; fixed-point unscaling happens before values reach this
// interface.
type Repository interface {
	FetchOrderBook(ctx context.Context, symbol string) (*domain.OrderbookSnapshot, error)
	SaveMatches(ctx context.Context, symbol string, matches []domain.Match) error
	SaveSnapshot(ctx context.Context, snapshotID, symbol string, ob *domain.OrderbookSnapshot) error
	LoadSnapshot(ctx context.Context, snapshotID string) (*domain.OrderbookSnapshot, error)
}
