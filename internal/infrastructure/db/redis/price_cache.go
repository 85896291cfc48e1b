package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gemstack/inventory-system/internal/core/domain"
)

const (
	priceCacheKey = "metal_prices:latest"
	priceCacheTTL = time.Minute
)

// PriceCache caches the latest metal price record in Redis. Entries expire
// after priceCacheTTL and are invalidated eagerly when a new quote is
// recorded, so staleness is bounded by the TTL even across processes.
type PriceCache struct {
	client *redis.Client
}

// NewPriceCache creates a PriceCache wrapping the given Redis client.
func NewPriceCache(client *redis.Client) *PriceCache {
	return &PriceCache{client: client}
}

// Get returns the cached quote, or ok=false on a miss.
func (p *PriceCache) Get(ctx context.Context) (*domain.MetalPrice, bool, error) {
	raw, err := p.client.Get(ctx, priceCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("price cache get: %w", err)
	}

	var price domain.MetalPrice
	if err := json.Unmarshal(raw, &price); err != nil {
		// A corrupt entry is treated as a miss; the next Set overwrites it.
		return nil, false, nil
	}
	return &price, true, nil
}

// Set stores the quote with the cache TTL.
func (p *PriceCache) Set(ctx context.Context, price *domain.MetalPrice) error {
	raw, err := json.Marshal(price)
	if err != nil {
		return fmt.Errorf("price cache marshal: %w", err)
	}
	if err := p.client.Set(ctx, priceCacheKey, raw, priceCacheTTL).Err(); err != nil {
		return fmt.Errorf("price cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached quote.
func (p *PriceCache) Invalidate(ctx context.Context) error {
	if err := p.client.Del(ctx, priceCacheKey).Err(); err != nil {
		return fmt.Errorf("price cache invalidate: %w", err)
	}
	return nil
}
