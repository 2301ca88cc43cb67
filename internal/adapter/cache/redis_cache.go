package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/domain"
	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/port"
)

var _ port.Cache = (*RedisCache)(nil)

// RedisCache keeps recent snapshots JSON-encoded with a TTL so repeated
// depth/match queries don't hit the settlement store on every call.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(addr, password string, db int, ttl time.Duration) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisCache{client: rdb, ttl: ttl}
}

func key(symbol string) string { return "ob:" + symbol }

func (c *RedisCache) SetOrderbook(ctx context.Context, symbol string, ob *domain.OrderbookSnapshot) error {
	b, err := json.Marshal(ob)
	if err != nil {
		return fmt.Errorf("redis: encode snapshot: %w", err)
	}
	return c.client.Set(ctx, key(symbol), b, c.ttl).Err()
}

// GetOrderbook returns (nil, nil) on a miss.
func (c *RedisCache) GetOrderbook(ctx context.Context, symbol string) (*domain.OrderbookSnapshot, error) {
	b, err := c.client.Get(ctx, key(symbol)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ob domain.OrderbookSnapshot
	if err := json.Unmarshal(b, &ob); err != nil {
		return nil, fmt.Errorf("redis: decode snapshot: %w", err)
	}
	return &ob, nil
}

func (c *RedisCache) Invalidate(ctx context.Context, symbol string) error {
	return c.client.Del(ctx, key(symbol)).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
