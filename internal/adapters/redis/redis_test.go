package redisadapter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis answers the handful of commands the adapters issue; anything
// else panics on the nil embedded Cmdable.
type fakeRedis struct {
	redis.Cmdable
	values    map[string]string
	ttls      map[string]time.Duration
	published map[string][]string
	err       error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}, published: map[string][]string{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx, "get", key)
	switch v, ok := f.values[key]; {
	case f.err != nil:
		cmd.SetErr(f.err)
	case !ok:
		cmd.SetErr(redis.Nil)
	default:
		cmd.SetVal(v)
	}
	return cmd
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx, "set", key, value)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	f.values[key] = value.(string)
	f.ttls[key] = expiration
	cmd.SetVal("OK")
	return cmd
}

func (f *fakeRedis) Publish(ctx context.Context, channel string, message any) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx, "publish", channel, message)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	f.published[channel] = append(f.published[channel], string(message.([]byte)))
	cmd.SetVal(1)
	return cmd
}

func TestCacheMissIsNotAnError(t *testing.T) {
	c := NewCache(newFakeRedis())
	text, found, err := c.Get(context.Background(), "abc")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, text)
}

func TestCacheRoundTrip(t *testing.T) {
	rdb := newFakeRedis()
	c := NewCache(rdb)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "abc", "Austin is cheaper.", time.Hour))
	assert.Equal(t, time.Hour, rdb.ttls["nestquest:narrative:abc"])

	text, found, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Austin is cheaper.", text)

	require.NoError(t, c.Set(ctx, "forever", "x", -time.Second))
	assert.Zero(t, rdb.ttls["nestquest:narrative:forever"])
}

func TestCacheErrors(t *testing.T) {
	rdb := newFakeRedis()
	rdb.err = errors.New("connection refused")
	c := NewCache(rdb)

	_, found, err := c.Get(context.Background(), "abc")
	assert.ErrorContains(t, err, "redis get")
	assert.False(t, found)
	assert.ErrorContains(t, c.Set(context.Background(), "abc", "x", 0), "redis set")
}

func TestPublisher(t *testing.T) {
	rdb := newFakeRedis()
	p := NewPublisher(rdb)

	payload := map[string]any{"type": "narrative.ready", "revision": 2}
	require.NoError(t, p.Publish(context.Background(), "narrative.ready", payload))
	require.Len(t, rdb.published["narrative.ready"], 1)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(rdb.published["narrative.ready"][0]), &got))
	assert.Equal(t, "narrative.ready", got["type"])
	assert.Equal(t, 2.0, got["revision"])

	assert.Error(t, p.Publish(context.Background(), "x", func() {}))

	rdb.err = errors.New("closed")
	assert.ErrorContains(t, p.Publish(context.Background(), "x", payload), "publish x")
}

func TestNewClientRejectsBadURL(t *testing.T) {
	_, err := NewClient(context.Background(), "not-a-redis-url")
	assert.ErrorContains(t, err, "redis.ParseURL")
}
