package tokencache

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newTestRedisCache(t *testing.T, clock *fakeClock) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := NewRedisCacheFromURL(
		context.Background(),
		"redis://"+mr.Addr()+"/0",
		"",
		WithRedisNowFunc(clock.Now),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestNewRedisCacheFromURL_Errors(t *testing.T) {
	t.Parallel()

	_, err := NewRedisCacheFromURL(context.Background(), "not a url", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing redis url")
}

func TestRedisCache_SaveAndValidToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newFakeClock(baseTime)
	c, mr := newTestRedisCache(t, clock)

	require.NoError(t, c.Save(ctx, "client", "tok", 3600*time.Second))

	assert.Equal(t, "redis:"+DefaultKeyPrefix, c.Path())
	assert.Equal(t, time.Hour, mr.TTL(DefaultKeyPrefix+"client"))

	raw, err := mr.Get(DefaultKeyPrefix + "client")
	require.NoError(t, err)
	assert.Equal(t, "tok", gjson.Get(raw, "access_token").String())
	assert.Equal(t, baseTime.Unix()+3600, gjson.Get(raw, "expires_at").Int())

	clock.Advance(3539 * time.Second)
	tok, ok := c.ValidToken(ctx, "client", DefaultBuffer)
	require.True(t, ok)
	assert.Equal(t, "tok", tok)

	clock.Advance(time.Second)
	assert.False(t, c.HasValidToken(ctx, "client", DefaultBuffer))
	assert.False(t, mr.Exists(DefaultKeyPrefix+"client"))
}

func TestRedisCache_SaveExpiredTokenIsNotStored(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		expiresIn time.Duration
	}{
		{name: "zero", expiresIn: 0},
		{name: "negative", expiresIn: -time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			c, mr := newTestRedisCache(t, newFakeClock(baseTime))

			require.NoError(t, c.Save(ctx, "client", "old", time.Hour))
			require.NoError(t, c.Save(ctx, "client", "stale", tt.expiresIn))

			assert.False(t, mr.Exists(DefaultKeyPrefix+"client"))
			_, ok := c.Get(ctx, "client")
			assert.False(t, ok)
		})
	}
}

func TestRedisCache_ExpiryAccessors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newFakeClock(baseTime)
	c, _ := newTestRedisCache(t, clock)

	_, ok := c.ExpiresAt(ctx, "client")
	assert.False(t, ok)

	require.NoError(t, c.Save(ctx, "client", "tok", 100*time.Second))

	at, ok := c.ExpiresAt(ctx, "client")
	require.True(t, ok)
	assert.Equal(t, baseTime.Unix()+100, at.Unix())

	clock.Advance(30 * time.Second)
	left, ok := c.RemainingLifetime(ctx, "client")
	require.True(t, ok)
	assert.Equal(t, 70*time.Second, left)
}

func TestRedisCache_DeleteAndClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newFakeClock(baseTime)
	c, mr := newTestRedisCache(t, clock)

	require.NoError(t, c.Delete(ctx, "absent"))

	require.NoError(t, c.Save(ctx, "a", "tok-a", time.Hour))
	require.NoError(t, c.Save(ctx, "b", "tok-b", time.Hour))
	require.NoError(t, mr.Set("unrelated", "value"))

	require.NoError(t, c.Delete(ctx, "a"))
	_, ok := c.Get(ctx, "a")
	assert.False(t, ok)

	require.NoError(t, c.Clear(ctx))
	_, ok = c.Get(ctx, "b")
	assert.False(t, ok)
	assert.True(t, mr.Exists("unrelated"))

	// Clearing an empty prefix succeeds.
	require.NoError(t, c.Clear(ctx))
}

func TestRedisCache_MalformedValue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newFakeClock(baseTime)
	c, mr := newTestRedisCache(t, clock)

	require.NoError(t, mr.Set(DefaultKeyPrefix+"client", "not-json"))

	_, ok := c.Get(ctx, "client")
	assert.False(t, ok)
}

func TestRedisCache_CustomPrefixAndClient(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c := NewRedisCache(client, "tenant:")
	require.NoError(t, c.Save(ctx, "client", "tok", time.Hour))

	assert.True(t, mr.Exists("tenant:client"))
	assert.Equal(t, "redis:tenant:", c.Path())
}

func TestRedisCache_ServerDownIsMiss(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newFakeClock(baseTime)
	c, mr := newTestRedisCache(t, clock)
	require.NoError(t, c.Save(ctx, "client", "tok", time.Hour))

	mr.Close()

	_, ok := c.ValidToken(ctx, "client", DefaultBuffer)
	assert.False(t, ok)
	assert.Error(t, c.Save(ctx, "client", "tok", time.Hour))
}
