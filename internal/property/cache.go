package property

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores serialized property records.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}

// RedisCache is a Cache backed by a Redis server.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{client: rdb, ttl: ttl}
}

// Ping checks connectivity.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, value string) error {
	return r.client.Set(ctx, key, value, r.ttl).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}

type mapEntry struct {
	value     string
	expiresAt time.Time
}

// MapCache is an in-process Cache with a fixed TTL. A zero TTL never expires.
type MapCache struct {
	mu    sync.RWMutex
	store map[string]mapEntry
	ttl   time.Duration
	now   func() time.Time
}

func NewMapCache(ttl time.Duration) *MapCache {
	return &MapCache{
		store: make(map[string]mapEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (c *MapCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.store[key]
	if !ok || c.expired(entry) {
		return "", false
	}
	return entry.value, true
}

func (c *MapCache) Set(_ context.Context, key string, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := mapEntry{value: value}
	if c.ttl > 0 {
		entry.expiresAt = c.now().Add(c.ttl)
	}
	c.store[key] = entry
	return nil
}

// Prune drops expired entries and reports how many were removed.
func (c *MapCache) Prune() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for key, entry := range c.store {
		if c.expired(entry) {
			delete(c.store, key)
			n++
		}
	}
	return n
}

// RunPruner prunes every interval until ctx is done.
func (c *MapCache) RunPruner(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Prune()
		}
	}
}

func (c *MapCache) expired(e mapEntry) bool {
	return !e.expiresAt.IsZero() && c.now().After(e.expiresAt)
}
