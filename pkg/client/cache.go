package client

import (
	"context"
	"encoding/json"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/redis/go-redis/v9"
)

const DefaultAssignmentTTL = 30 * time.Second

// CachedCribRegistry decorates a registry client with a short lived redis
// cache, keeping crib visibility lookups off the hot path of every query.
// Cache failures fall through to the wrapped client; empty grant sets are
// never cached so that a newly assigned nurse is not locked out for a TTL.
type CachedCribRegistry struct {
	inner CribRegistryClient
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedCribRegistry(inner CribRegistryClient, rdb *redis.Client, ttl time.Duration) *CachedCribRegistry {
	if ttl <= 0 {
		ttl = DefaultAssignmentTTL
	}

	return &CachedCribRegistry{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
	}
}

func (c *CachedCribRegistry) AuthorizedCribs(ctx context.Context, callerID string) ([]string, error) {
	log := logging.GetFromContext(ctx)
	key := "cribs:" + callerID

	cached, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		var cribs []string
		if err := json.Unmarshal([]byte(cached), &cribs); err == nil {
			return cribs, nil
		}
		log.Warn("discarding unreadable cache entry", "key", key)
	} else if err != redis.Nil {
		log.Warn("crib assignment cache read failed", "err", err.Error())
	}

	cribs, err := c.inner.AuthorizedCribs(ctx, callerID)
	if err != nil {
		return nil, err
	}

	if len(cribs) > 0 {
		if b, err := json.Marshal(cribs); err == nil {
			if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
				log.Warn("crib assignment cache write failed", "err", err.Error())
			}
		}
	}

	return cribs, nil
}
