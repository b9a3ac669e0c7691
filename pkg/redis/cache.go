package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores rendered responses keyed by catalog version
// ⭐ SSOT: 캐시 헬퍼는 여기서만
type Cache struct {
	client *Client
	prefix string
}

// NewCache creates a new cache helper
func NewCache(client *Client, prefix string) *Cache {
	return &Cache{
		client: client,
		prefix: prefix,
	}
}

// Enabled reports whether lookups reach Redis
func (c *Cache) Enabled() bool {
	return c != nil && c.client.Enabled()
}

func (c *Cache) fullKey(key string) string {
	return fmt.Sprintf("%s:cache:%s", c.prefix, key)
}

// Get returns the cached bytes and whether they were found
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if !c.client.Enabled() {
		return nil, false, nil
	}

	data, err := c.client.Redis().Get(ctx, c.fullKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get failed: %w", err)
	}
	return data, true, nil
}

// Set stores a value in cache with TTL
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if !c.client.Enabled() {
		return nil
	}
	return c.client.Redis().Set(ctx, c.fullKey(key), value, ttl).Err()
}

// Delete removes a cached value
func (c *Cache) Delete(ctx context.Context, key string) error {
	if !c.client.Enabled() {
		return nil
	}
	return c.client.Redis().Del(ctx, c.fullKey(key)).Err()
}

// GetOrSet returns the cached value or calls fn and stores its result.
// The bool reports a cache hit. A failing Redis never fails the call.
func (c *Cache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fn func() ([]byte, error)) ([]byte, bool, error) {
	if data, found, err := c.Get(ctx, key); err == nil && found {
		return data, true, nil
	}

	value, err := fn()
	if err != nil {
		return nil, false, err
	}

	_ = c.Set(ctx, key, value, ttl)
	return value, false, nil
}

// Predefined TTLs
const (
	TTLShort  = 1 * time.Minute  // 자주 바뀌는 응답
	TTLMedium = 5 * time.Minute  // 기본 응답 캐시
	TTLLong   = 1 * time.Hour    // 카탈로그 목록
)

// RecommendationKey keys a rendered recommendation
func RecommendationKey(version, tolerance, format string) string {
	return fmt.Sprintf("recommendation:%s:%s:%s", version, tolerance, format)
}

// AnalysisKey keys a rendered asset analysis
func AnalysisKey(version, symbol, format string) string {
	return fmt.Sprintf("analysis:%s:%s:%s", version, strings.ToUpper(symbol), format)
}

// MarketKey keys a market-wide report such as the summary or sustainability list
func MarketKey(version, report, format string) string {
	return fmt.Sprintf("market:%s:%s:%s", version, report, format)
}
