package tokencache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces token keys in a shared Redis database.
const DefaultKeyPrefix = "cdiscount:token:"

// RedisCache stores tokens in Redis so that several hosts can share one
// token per client id. Each entry is a JSON value under <prefix><clientID>
// whose TTL matches the token lifetime.
type RedisCache struct {
	client  redis.UniversalClient
	prefix  string
	nowFunc func() time.Time
	logger  *slog.Logger
}

var _ Store = (*RedisCache)(nil)

// RedisOption configures a RedisCache.
type RedisOption func(*RedisCache)

// WithRedisNowFunc overrides the time function for testing.
func WithRedisNowFunc(f func() time.Time) RedisOption {
	return func(c *RedisCache) {
		c.nowFunc = f
	}
}

// WithRedisLogger sets the logger used to report Redis failures, which
// lookups treat as misses.
func WithRedisLogger(l *slog.Logger) RedisOption {
	return func(c *RedisCache) {
		c.logger = l
	}
}

// NewRedisCache wraps an existing client. An empty prefix selects
// DefaultKeyPrefix.
func NewRedisCache(client redis.UniversalClient, prefix string, opts ...RedisOption) *RedisCache {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	c := &RedisCache{
		client:  client,
		prefix:  prefix,
		nowFunc: time.Now,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// NewRedisCacheFromURL connects to the server described by a redis:// URL
// and checks it is reachable.
func NewRedisCacheFromURL(ctx context.Context, rawURL, prefix string, opts ...RedisOption) (*RedisCache, error) {
	redisOpts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := redis.NewClient(redisOpts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return NewRedisCache(client, prefix, opts...), nil
}

// Close releases the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Path returns the key prefix.
func (c *RedisCache) Path() string {
	return "redis:" + c.prefix
}

func (c *RedisCache) key(clientID string) string {
	return c.prefix + clientID
}

// Get returns the entry for clientID.
func (c *RedisCache) Get(ctx context.Context, clientID string) (*Entry, bool) {
	data, err := c.client.Get(ctx, c.key(clientID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Debug("reading token from redis", "key", c.key(clientID), "error", err)
		}
		return nil, false
	}
	return decodeEntry(data)
}

// ValidToken returns the cached token unless it expires within buffer.
func (c *RedisCache) ValidToken(ctx context.Context, clientID string, buffer time.Duration) (string, bool) {
	e, ok := c.Get(ctx, clientID)
	if !ok {
		return "", false
	}
	if e.Expired(c.nowFunc(), buffer) {
		if err := c.Delete(ctx, clientID); err != nil {
			c.logger.Debug("removing stale token from redis", "key", c.key(clientID), "error", err)
		}
		return "", false
	}
	return e.AccessToken, true
}

// HasValidToken reports whether ValidToken would return a token.
func (c *RedisCache) HasValidToken(ctx context.Context, clientID string, buffer time.Duration) bool {
	_, ok := c.ValidToken(ctx, clientID, buffer)
	return ok
}

// ExpiresAt returns the absolute expiry of the cached token.
func (c *RedisCache) ExpiresAt(ctx context.Context, clientID string) (time.Time, bool) {
	e, ok := c.Get(ctx, clientID)
	if !ok {
		return time.Time{}, false
	}
	return e.ExpiresAtTime(), true
}

// RemainingLifetime returns the time left before the cached token expires.
func (c *RedisCache) RemainingLifetime(ctx context.Context, clientID string) (time.Duration, bool) {
	e, ok := c.Get(ctx, clientID)
	if !ok {
		return 0, false
	}
	return time.Duration(e.ExpiresAt-c.nowFunc().Unix()) * time.Second, true
}

// Save stores the token with a TTL equal to expiresIn. A token that is
// already expired is not stored and replaces any existing entry.
func (c *RedisCache) Save(ctx context.Context, clientID, token string, expiresIn time.Duration) error {
	// A zero expiration means no TTL to redis.
	if expiresIn < time.Millisecond {
		return c.Delete(ctx, clientID)
	}

	data, err := json.Marshal(newEntry(token, expiresIn, c.nowFunc()))
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}

	if err := c.client.Set(ctx, c.key(clientID), data, expiresIn).Err(); err != nil {
		return fmt.Errorf("writing token to redis: %w", err)
	}
	return nil
}

// Delete removes the entry for clientID.
func (c *RedisCache) Delete(ctx context.Context, clientID string) error {
	if err := c.client.Del(ctx, c.key(clientID)).Err(); err != nil {
		return fmt.Errorf("deleting token from redis: %w", err)
	}
	return nil
}

// Clear removes every key under the prefix.
func (c *RedisCache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scanning token keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("deleting token keys: %w", err)
	}
	return nil
}
