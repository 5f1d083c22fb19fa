package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/account-service/internal/domain"
)

const keyPrefix = "account-service:profile:"

// RedisProfileCache stores public profiles in Redis. Profiles are immutable,
// so entries only expire by TTL.
type RedisProfileCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisProfileCache builds a cache on client.
func NewRedisProfileCache(client redis.Cmdable, ttl time.Duration) *RedisProfileCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisProfileCache{client: client, ttl: ttl}
}

// Get returns the cached profile. A miss is reported as (nil, nil).
func (c *RedisProfileCache) Get(ctx context.Context, userID int64) (*domain.Profile, error) {
	raw, err := c.client.Get(ctx, key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var p domain.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Set stores profile under its id.
func (c *RedisProfileCache) Set(ctx context.Context, profile domain.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(profile.ID), raw, c.ttl).Err()
}

func key(userID int64) string {
	return keyPrefix + strconv.FormatInt(userID, 10)
}
