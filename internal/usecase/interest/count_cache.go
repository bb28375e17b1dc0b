package interest

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// CountCache holds per-user pending-interest counts between poller runs.
type CountCache interface {
	Get(ctx context.Context, uid string) (int, bool, error)
	Set(ctx context.Context, uid string, n int, ttl time.Duration) error
}

const countPrefix = "interest:pending:"

type redisCountCache struct {
	client *redis.Client
}

func NewRedisCountCache(client *redis.Client) CountCache {
	return &redisCountCache{client: client}
}

func (c *redisCountCache) Get(ctx context.Context, uid string) (int, bool, error) {
	n, err := c.client.Get(ctx, countPrefix+uid).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return n, true, nil
}

func (c *redisCountCache) Set(ctx context.Context, uid string, n int, ttl time.Duration) error {
	return c.client.Set(ctx, countPrefix+uid, n, ttl).Err()
}
