package stream

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/core"
	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/domain"
)

// DepthUpdate is one broadcast tick: a freshly computed depth view for one
// symbol.
type DepthUpdate struct {
	Symbol string           `json:"symbol"`
	Depth  domain.DepthView `json:"depth"`
}

// Poller periodically pulls a brand-new snapshot for each symbol through the
// engine, computes its depth view and broadcasts it. Engine state is never
// patched incrementally; every tick stands alone.
type Poller struct {
	eng      *core.Engine
	hub      *Hub[DepthUpdate]
	symbols  []string
	interval time.Duration
	log      *zap.Logger
}

func NewPoller(eng *core.Engine, hub *Hub[DepthUpdate], symbols []string, interval time.Duration, log *zap.Logger) *Poller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Poller{
		eng:      eng,
		hub:      hub,
		symbols:  symbols,
		interval: interval,
		log:      log,
	}
}

// Run blocks until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	for _, symbol := range p.symbols {
		view, err := p.eng.Depth(ctx, symbol)
		if err != nil {
			p.log.Warn("depth poll failed", zap.String("symbol", symbol), zap.Error(err))
			continue
		}
		p.hub.Broadcast(DepthUpdate{Symbol: symbol, Depth: view})
	}
}
