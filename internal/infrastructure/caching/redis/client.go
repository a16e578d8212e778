package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	zlog "github.com/rs/zerolog/log"

	"github.com/internsnow/campus-match/internal/metrics"
)

const DefaultKeyPrefix = "campus-match:"

// Client caches listings as JSON under a key prefix so several deployments
// can share one Redis database.
type Client struct {
	rdb    *redis.Client
	prefix string
}

// New connects and pings within two seconds. An empty prefix means DefaultKeyPrefix.
func New(url, prefix string) (*Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	if prefix = strings.TrimSpace(prefix); prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Client{rdb: rdb, prefix: prefix}, nil
}

func (c *Client) Close() error { return c.rdb.Close() }

// Ping doubles as the readiness check.
func (c *Client) Ping(ctx context.Context) error { return c.rdb.Ping(ctx).Err() }

func (c *Client) key(k string) string { return c.prefix + k }

// Get decodes the cached value into dest. A value that no longer decodes is
// dropped and reported as a miss so the caller reloads from the database.
func (c *Client) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RecordCacheLookup(key, false)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(val, dest); err != nil {
		zlog.Warn().Err(err).Str("key", key).Msg("dropping undecodable cache entry")
		if delErr := c.rdb.Del(ctx, c.key(key)).Err(); delErr != nil {
			zlog.Warn().Err(delErr).Str("key", key).Msg("cache delete failed")
		}
		metrics.RecordCacheLookup(key, false)
		return false, nil
	}
	metrics.RecordCacheLookup(key, true)
	return true, nil
}

func (c *Client) Set(ctx context.Context, key string, val any, ttl time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key(key), b, ttl).Err()
}

func (c *Client) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.key(k)
	}
	return c.rdb.Del(ctx, full...).Err()
}
