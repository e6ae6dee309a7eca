// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"chime_backend/internal/feature/tokens/domain/entity"
	"chime_backend/internal/feature/tokens/usecase"
)

// コンパイル時にインターフェイスを満たしていることを確認
var _ usecase.MarketRepository = (*CachingMarketRepository)(nil)

// CachingMarketRepository decorates a MarketRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Only the coin listing is cached:
// it is large, changes rarely, and is fetched on every symbol lookup.
type CachingMarketRepository struct {
	inner     usecase.MarketRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingMarketRepository decorates a MarketRepository with Redis caching.
// If ttl is 0, it defaults to 10 minutes. If namespace is empty, it uses "coins".
func NewCachingMarketRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MarketRepository, namespace string) *CachingMarketRepository {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if namespace == "" {
		namespace = "coins"
	}
	return &CachingMarketRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListCoins retrieves the coin listing, checking cache first then falling
// back to the external provider.
func (c *CachingMarketRepository) ListCoins(ctx context.Context) ([]entity.Coin, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListCoins(ctx)
	}

	key := c.namespace + ":list"

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Coin
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the provider
	out, err := c.inner.ListCoins(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// GetCoinByID は価格が頻繁に動くためキャッシュせず、そのまま委譲します。
func (c *CachingMarketRepository) GetCoinByID(ctx context.Context, id string) (*entity.CoinInfo, error) {
	return c.inner.GetCoinByID(ctx, id)
}

// GetOHLC はそのまま委譲します。
func (c *CachingMarketRepository) GetOHLC(ctx context.Context, id, vsCurrency, days string) ([]entity.OHLCPoint, error) {
	return c.inner.GetOHLC(ctx, id, vsCurrency, days)
}

// GetTrending はそのまま委譲します。
func (c *CachingMarketRepository) GetTrending(ctx context.Context) ([]entity.TrendingCoin, error) {
	return c.inner.GetTrending(ctx)
}
