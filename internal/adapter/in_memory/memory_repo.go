package in_memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/domain"
	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/port"
)

var _ port.Repository = (*MemoryRepo)(nil)

// MemoryRepo is a map-backed Repository used by tests and local runs. Books
// are seeded directly with SeedOrder or SetOrderBook.
type MemoryRepo struct {
	mu        sync.Mutex
	books     map[string]*domain.OrderbookSnapshot
	matches   map[string][]domain.Match
	snapshots map[string]*domain.OrderbookSnapshot
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		books:     make(map[string]*domain.OrderbookSnapshot),
		matches:   make(map[string][]domain.Match),
		snapshots: make(map[string]*domain.OrderbookSnapshot),
	}
}

// SeedOrder places a resting order into the symbol's book.
func (r *MemoryRepo) SeedOrder(o domain.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	book := r.getOrCreate(o.Symbol)
	if o.Side == domain.Buy {
		book.Bids = append(book.Bids, o)
	} else {
		book.Asks = append(book.Asks, o)
	}
}

// SetOrderBook replaces the whole book for a symbol.
func (r *MemoryRepo) SetOrderBook(ob *domain.OrderbookSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.books[ob.Symbol] = ob.DeepCopy()
}

func (r *MemoryRepo) FetchOrderBook(ctx context.Context, symbol string) (*domain.OrderbookSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getOrCreate(symbol).DeepCopy(), nil
}

func (r *MemoryRepo) SaveMatches(ctx context.Context, symbol string, matches []domain.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches[symbol] = append(r.matches[symbol], matches...)
	return nil
}

// SavedMatches returns everything persisted for a symbol.
func (r *MemoryRepo) SavedMatches(symbol string) []domain.Match {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Match(nil), r.matches[symbol]...)
}

func (r *MemoryRepo) SaveSnapshot(ctx context.Context, snapshotID, symbol string, ob *domain.OrderbookSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[snapshotID] = ob.DeepCopy()
	return nil
}

func (r *MemoryRepo) LoadSnapshot(ctx context.Context, snapshotID string) (*domain.OrderbookSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ob, ok := r.snapshots[snapshotID]
	if !ok {
		return nil, fmt.Errorf("snapshot %s not found", snapshotID)
	}
	return ob.DeepCopy(), nil
}

func (r *MemoryRepo) getOrCreate(symbol string) *domain.OrderbookSnapshot {
	book, ok := r.books[symbol]
	if !ok {
		book = &domain.OrderbookSnapshot{
			Symbol:    symbol,
			Bids:      []domain.Order{},
			Asks:      []domain.Order{},
			Timestamp: time.Now(),
		}
		r.books[symbol] = book
	}
	return book
}
