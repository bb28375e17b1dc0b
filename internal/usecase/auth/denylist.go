package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist holds revoked tokens until they would have expired anyway.
type TokenDenylist interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
	Contains(ctx context.Context, token string) (bool, error)
}

const denylistPrefix = "auth:denylist:"

type redisDenylist struct {
	client *redis.Client
}

func NewRedisDenylist(client *redis.Client) TokenDenylist {
	return &redisDenylist{client: client}
}

func (d *redisDenylist) Add(ctx context.Context, token string, ttl time.Duration) error {
	return d.client.Set(ctx, denylistPrefix+token, 1, ttl).Err()
}

func (d *redisDenylist) Contains(ctx context.Context, token string) (bool, error) {
	n, err := d.client.Exists(ctx, denylistPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
