package port

import (
	"context"

	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/domain"
)

// MatchPublisher hands discovered matches to downstream consumers, e.g. the
// transaction-building layer.
type MatchPublisher interface {
	PublishMatches(ctx context.Context, symbol string, matches []domain.Match) error
	Close() error
}
