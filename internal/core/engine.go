package core

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/domain"
	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/port"
)

// Engine composes the pure matching operations with the settlement-layer
// collaborators. It keeps no book state of its own: every call fetches a
// fresh snapshot and evaluates it, so concurrent callers need no
// coordination. Repository, cache and publisher are all optional; what is
// missing is skipped.
type Engine struct {
	repo    port.Repository
	cache   port.Cache
	pub     port.MatchPublisher
	matcher *Matcher
	log     *zap.Logger
}

func NewEngine(repo port.Repository, cache port.Cache, pub port.MatchPublisher, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		repo:    repo,
		cache:   cache,
		pub:     pub,
		matcher: NewMatcher(),
		log:     log,
	}
}

// Matcher exposes the underlying pure matcher, mainly for callers that want
// to evaluate a snapshot they already hold.
func (e *Engine) Matcher() *Matcher {
	return e.matcher
}

// GetOrderbook returns the current snapshot for a symbol, cache first. A
// symbol with no resting orders yields an empty snapshot, not an error.
func (e *Engine) GetOrderbook(ctx context.Context, symbol string) (*domain.OrderbookSnapshot, error) {
	return e.loadSnapshot(ctx, symbol)
}

// Depth aggregates the current book into price levels.
func (e *Engine) Depth(ctx context.Context, symbol string) (domain.DepthView, error) {
	snap, err := e.loadSnapshot(ctx, symbol)
	if err != nil {
		return domain.DepthView{}, err
	}
	return e.matcher.ComputeDepth(snap)
}

// Matches runs the batch matcher over the current book. Discovered matches
// are persisted and published when those collaborators are configured;
// failures there are logged and do not disturb the returned report.
func (e *Engine) Matches(ctx context.Context, symbol string) ([]domain.Match, error) {
	snap, err := e.loadSnapshot(ctx, symbol)
	if err != nil {
		return nil, err
	}
	matches, err := e.matcher.FindMatches(snap)
	if err != nil {
		return nil, err
	}
	if len(matches) > 0 {
		if e.repo != nil {
			if err := e.repo.SaveMatches(ctx, symbol, matches); err != nil {
				e.log.Warn("persisting matches failed", zap.String("symbol", symbol), zap.Error(err))
			}
		}
		if e.pub != nil {
			if err := e.pub.PublishMatches(ctx, symbol, matches); err != nil {
				e.log.Warn("publishing matches failed", zap.String("symbol", symbol), zap.Error(err))
			}
		}
	}
	return matches, nil
}

// SimulateMarketOrder walks the opposing side of the current book with a
// market order of the given size.
func (e *Engine) SimulateMarketOrder(ctx context.Context, symbol string, amount decimal.Decimal, side domain.Side) (domain.MarketOrderResult, error) {
	snap, err := e.loadSnapshot(ctx, symbol)
	if err != nil {
		return domain.MarketOrderResult{}, err
	}
	return e.matcher.ExecuteMarketOrder(snap, amount, side)
}

// CheckImmediateFill evaluates a proposed limit order against the current
// book.
func (e *Engine) CheckImmediateFill(ctx context.Context, symbol string, price, amount decimal.Decimal, side domain.Side) (domain.FillCheck, error) {
	snap, err := e.loadSnapshot(ctx, symbol)
	if err != nil {
		return domain.FillCheck{}, err
	}
	return e.matcher.CheckImmediateFill(snap, price, amount, side)
}

// SnapshotOrderbook persists the current book under a fresh id so later
// analysis can replay against a fixed snapshot.
func (e *Engine) SnapshotOrderbook(ctx context.Context, symbol string) (string, error) {
	snap, err := e.loadSnapshot(ctx, symbol)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	if e.repo == nil {
		return "", errRepoRequired
	}
	if err := e.repo.SaveSnapshot(ctx, id, symbol, snap); err != nil {
		return "", err
	}
	return id, nil
}

// RestoreOrderbook loads a persisted snapshot and primes the cache with it.
func (e *Engine) RestoreOrderbook(ctx context.Context, snapshotID string) (*domain.OrderbookSnapshot, error) {
	if e.repo == nil {
		return nil, errRepoRequired
	}
	snap, err := e.repo.LoadSnapshot(ctx, snapshotID)
	if err != nil {
		return nil, err
	}
	if e.cache != nil {
		if err := e.cache.SetOrderbook(ctx, snap.Symbol, snap.DeepCopy()); err != nil {
			e.log.Warn("priming cache from snapshot failed", zap.String("symbol", snap.Symbol), zap.Error(err))
		}
	}
	return snap, nil
}

// loadSnapshot resolves a symbol to a consistent snapshot: cache, then
// repository, then an empty book when neither is wired. Repository hits
// refresh the cache.
func (e *Engine) loadSnapshot(ctx context.Context, symbol string) (*domain.OrderbookSnapshot, error) {
	if e.cache != nil {
		if ob, err := e.cache.GetOrderbook(ctx, symbol); err == nil && ob != nil {
			return ob, nil
		}
	}
	if e.repo != nil {
		ob, err := e.repo.FetchOrderBook(ctx, symbol)
		if err != nil {
			return nil, err
		}
		if e.cache != nil {
			if cerr := e.cache.SetOrderbook(ctx, symbol, ob.DeepCopy()); cerr != nil {
				e.log.Warn("caching snapshot failed", zap.String("symbol", symbol), zap.Error(cerr))
			}
		}
		return ob, nil
	}
	return &domain.OrderbookSnapshot{
		Symbol:    symbol,
		Bids:      []domain.Order{},
		Asks:      []domain.Order{},
		Timestamp: time.Now(),
	}, nil
}
