package ratefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/instant_transfer/internal/core/ports"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// NewRedisClient creates a redis client for rate caching.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// CachedProvider wraps a RateFeedProvider with a redis read-through cache.
// Rates are stored as strings to preserve exact decimal values. The cache is
// best effort: any redis failure falls through to the underlying feed.
type CachedProvider struct {
	next   ports.RateFeedProvider
	client *redis.Client
	ttl    time.Duration
}

// NewCachedProvider decorates next with a redis cache holding entries for ttl.
func NewCachedProvider(next ports.RateFeedProvider, client *redis.Client, ttl time.Duration) *CachedProvider {
	return &CachedProvider{next: next, client: client, ttl: ttl}
}

// Ensure implementation matches interface
var _ ports.RateFeedProvider = (*CachedProvider)(nil)

func ratesKey(base string) string {
	return fmt.Sprintf("rates:%s", strings.ToUpper(base))
}

// FetchRates returns the cached rate table for base, refreshing from the
// underlying feed on a miss.
func (c *CachedProvider) FetchRates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	key := ratesKey(base)

	if val, err := c.client.Get(ctx, key).Result(); err == nil {
		if rates, err := decodeRates(val); err == nil {
			return rates, nil
		}
		// Malformed entry, drop it and refetch.
		_ = c.client.Del(ctx, key).Err()
	}

	rates, err := c.next.FetchRates(ctx, base)
	if err != nil {
		return nil, err
	}

	if data, err := encodeRates(rates); err == nil {
		_ = c.client.Set(ctx, key, data, c.ttl).Err()
	}
	return rates, nil
}

// FetchRate looks up a single pair through the cached table.
func (c *CachedProvider) FetchRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	rates, err := c.FetchRates(ctx, from)
	if err != nil {
		return decimal.Zero, err
	}
	rate, ok := rates[strings.ToUpper(to)]
	if !ok {
		// Stale cached table or genuinely unknown code; ask the feed directly.
		rate, err = c.next.FetchRate(ctx, from, to)
		if err != nil {
			return decimal.Zero, err
		}
		// The feed knows the pair after all; drop the stale table.
		_ = c.client.Del(ctx, ratesKey(from)).Err()
	}
	return rate, nil
}

func encodeRates(rates map[string]decimal.Decimal) (string, error) {
	strRates := make(map[string]string, len(rates))
	for code, rate := range rates {
		strRates[code] = rate.String()
	}
	data, err := json.Marshal(strRates)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeRates(val string) (map[string]decimal.Decimal, error) {
	var strRates map[string]string
	if err := json.Unmarshal([]byte(val), &strRates); err != nil {
		return nil, err
	}
	rates := make(map[string]decimal.Decimal, len(strRates))
	for code, s := range strRates {
		rate, err := decimal.NewFromString(s)
		if err != nil {
			return nil, err
		}
		rates[code] = rate
	}
	return rates, nil
}
