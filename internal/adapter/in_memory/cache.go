package in_memory

import (
	"context"
	"sync"

	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/domain"
	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/port"
)

var _ port.Cache = (*Cache)(nil)

// Cache is a map-backed port.Cache for tests and local runs.
type Cache struct {
	mu    sync.Mutex
	store map[string]*domain.OrderbookSnapshot
}

func NewCache() *Cache {
	return &Cache{store: make(map[string]*domain.OrderbookSnapshot)}
}

func (c *Cache) SetOrderbook(ctx context.Context, symbol string, ob *domain.OrderbookSnapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[symbol] = ob.DeepCopy()
	return nil
}

func (c *Cache) GetOrderbook(ctx context.Context, symbol string) (*domain.OrderbookSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ob, ok := c.store[symbol]
	if !ok {
		return nil, nil
	}
	return ob.DeepCopy(), nil
}

func (c *Cache) Invalidate(ctx context.Context, symbol string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, symbol)
	return nil
}
