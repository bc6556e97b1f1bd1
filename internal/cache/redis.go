package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/ylyas2004/react-backend/internal/domain/venues"
)

const keyPrefix = "venue:"

// RedisCache stores venue documents as JSON strings with a TTL.
type RedisCache struct {
	rdb *goredis.Client
	ttl time.Duration
}

// NewRedisClient dials addr and checks it with a PING.
func NewRedisClient(addr string) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

func NewRedisCache(rdb *goredis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, id uuid.UUID) (*venues.Venue, error) {
	raw, err := c.rdb.Get(ctx, venueKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var v venues.Venue
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *RedisCache) Set(ctx context.Context, v *venues.Venue) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, venueKey(v.ID), raw, c.ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, id uuid.UUID) error {
	return c.rdb.Del(ctx, venueKey(id)).Err()
}

func venueKey(id uuid.UUID) string {
	return keyPrefix + id.String()
}
