// internal/storage/redis/redis.go
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "loan-catalog:"

// ScheduleCache stores serialized schedules in Redis with a fixed TTL.
type ScheduleCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewScheduleCache(client *goredis.Client, ttl time.Duration) *ScheduleCache {
	return &ScheduleCache{client: client, ttl: ttl}
}

// NewClient builds a client and checks the server answers.
func NewClient(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}

func (c *ScheduleCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %q: %w", key, err)
	}
	return val, true, nil
}

func (c *ScheduleCache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.client.Set(ctx, keyPrefix+key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}
