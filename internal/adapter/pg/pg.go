package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/domain"
	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/port"
)

var _ port.Repository = (*Repo)(nil)

// Repo reads the settlement layer's open orders into snapshots and persists
// match reports and book snapshots. It never mutates orders; the engine is
// read-only with respect to the book.
type Repo struct {
	pool *pgxpool.Pool
}

// NewRepo connects a pool. Call Close when finished.
func NewRepo(ctx context.Context, dsn string) (*Repo, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pg: create pool: %w", err)
	}
	return &Repo{pool: pool}, nil
}

// NewRepoFromPool wraps an existing pool, e.g. one shared with migrations.
func NewRepoFromPool(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

// FetchOrderBook loads all open orders for a symbol into a snapshot, FIFO by
// created_at inside each side.
func (r *Repo) FetchOrderBook(ctx context.Context, symbol string) (*domain.OrderbookSnapshot, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, trader, symbol, side, price, amount, created_at
FROM orders
WHERE symbol = $1 AND amount > 0
ORDER BY created_at ASC
`, symbol)
	if err != nil {
		return nil, fmt.Errorf("pg: fetch order book: %w", err)
	}
	defer rows.Close()

	snap := &domain.OrderbookSnapshot{
		Symbol:    symbol,
		Bids:      []domain.Order{},
		Asks:      []domain.Order{},
		Timestamp: time.Now(),
	}
	for rows.Next() {
		var o domain.Order
		var side string
		if err := rows.Scan(&o.ID, &o.Trader, &o.Symbol, &side, &o.Price, &o.Amount, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("pg: scan order: %w", err)
		}
		o.Side = domain.Side(side)
		if o.Side == domain.Buy {
			snap.Bids = append(snap.Bids, o)
		} else {
			snap.Asks = append(snap.Asks, o)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pg: fetch order book: %w", err)
	}
	return snap, nil
}

// SaveMatches inserts a match report atomically: either the whole batch
// lands or none of it does.
func (r *Repo) SaveMatches(ctx context.Context, symbol string, matches []domain.Match) error {
	if len(matches) == 0 {
		return nil
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("pg: begin: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	for _, m := range matches {
		_, err := tx.Exec(ctx, `
INSERT INTO matches(id, symbol, buy_order_id, sell_order_id, amount, price, matched_at)
VALUES($1,$2,$3,$4,$5,$6,$7)
ON CONFLICT (id) DO NOTHING
`, m.ID, symbol, m.BuyOrderID, m.SellOrderID, m.Amount, m.Price, m.Timestamp)
		if err != nil {
			return fmt.Errorf("pg: insert match %s: %w", m.ID, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("pg: commit matches: %w", err)
	}
	return nil
}

// SaveSnapshot persists a book snapshot as JSONB.
func (r *Repo) SaveSnapshot(ctx context.Context, snapshotID, symbol string, ob *domain.OrderbookSnapshot) error {
	if ob == nil {
		return errors.New("pg: nil snapshot")
	}
	b, err := json.Marshal(ob)
	if err != nil {
		return fmt.Errorf("pg: encode snapshot: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO orderbook_snapshots(id, symbol, snapshot_json, created_at)
VALUES($1,$2,$3,NOW())
ON CONFLICT (id) DO UPDATE SET snapshot_json = EXCLUDED.snapshot_json, created_at = NOW()
`, snapshotID, symbol, string(b))
	if err != nil {
		return fmt.Errorf("pg: save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot loads a snapshot by id.
func (r *Repo) LoadSnapshot(ctx context.Context, snapshotID string) (*domain.OrderbookSnapshot, error) {
	var data string
	err := r.pool.QueryRow(ctx, `SELECT snapshot_json FROM orderbook_snapshots WHERE id = $1`, snapshotID).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("pg: snapshot %s not found", snapshotID)
	}
	if err != nil {
		return nil, fmt.Errorf("pg: load snapshot: %w", err)
	}
	var ob domain.OrderbookSnapshot
	if err := json.Unmarshal([]byte(data), &ob); err != nil {
		return nil, fmt.Errorf("pg: decode snapshot: %w", err)
	}
	return &ob, nil
}

// ListSymbols returns the distinct symbols with resting orders, used by the
// depth poller to decide what to stream.
func (r *Repo) ListSymbols(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT symbol FROM orders WHERE amount > 0`)
	if err != nil {
		return nil, fmt.Errorf("pg: list symbols: %w", err)
	}
	defer rows.Close()
	var res []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("pg: scan symbol: %w", err)
		}
		res = append(res, s)
	}
	return res, rows.Err()
}
