package property

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
)

const cacheKeyPrefix = "property:"

// CachedRepository is a read-through cache in front of another Repository.
// Cache failures are logged and never fail a lookup.
type CachedRepository struct {
	next  Repository
	cache Cache
	log   zerolog.Logger
}

func NewCachedRepository(next Repository, cache Cache, log zerolog.Logger) *CachedRepository {
	return &CachedRepository{next: next, cache: cache, log: log}
}

func CacheKey(id string) string { return cacheKeyPrefix + id }

func (r *CachedRepository) Get(ctx context.Context, id string) (Property, error) {
	key := CacheKey(id)
	if raw, ok := r.cache.Get(ctx, key); ok {
		var p Property
		if err := json.Unmarshal([]byte(raw), &p); err == nil {
			return p, nil
		}
		r.log.Warn().Str("key", key).Msg("discarding undecodable cached property")
	}

	p, err := r.next.Get(ctx, id)
	if err != nil {
		return Property{}, err
	}

	raw, err := json.Marshal(p)
	if err == nil {
		err = r.cache.Set(ctx, key, string(raw))
	}
	if err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("property cache write failed")
	}
	return p, nil
}
