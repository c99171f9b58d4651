package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regexfa/internal/cache"
)

func TestKey(t *testing.T) {
	k := cache.Key("ab", "dfa", "dot")
	assert.Len(t, k, 32)
	assert.Equal(t, k, cache.Key("ab", "dfa", "dot"))
	assert.NotEqual(t, k, cache.Key("ab", "nfa", "dot"))
	assert.NotEqual(t, cache.Key("ab", "c"), cache.Key("a", "bc"))
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := cache.NewMemory(0)

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, cache.ErrMiss)

	val := []byte("digraph dfa {}")
	require.NoError(t, m.Set(ctx, "k", val))
	val[0] = 'X'

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "digraph dfa {}", string(got))
	assert.Equal(t, 1, m.Len())
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	m := cache.NewMemory(20 * time.Millisecond)
	require.NoError(t, m.Set(ctx, "k", []byte("v")))

	_, err := m.Get(ctx, "k")
	require.NoError(t, err)

	time.Sleep(40 * time.Millisecond)
	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, cache.ErrMiss)
	assert.Equal(t, 0, m.Len())
}

func TestRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	r := cache.NewRedisFromClient(client, cache.WithPrefix("test:"), cache.WithTTL(time.Minute))
	ctx := context.Background()

	require.NoError(t, r.Ping(ctx))

	_, err = r.Get(ctx, "k")
	assert.ErrorIs(t, err, cache.ErrMiss)

	require.NoError(t, r.Set(ctx, "k", []byte("graph LR")))
	assert.True(t, mr.Exists("test:k"))
	assert.Equal(t, time.Minute, mr.TTL("test:k"))

	got, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "graph LR", string(got))

	mr.FastForward(2 * time.Minute)
	_, err = r.Get(ctx, "k")
	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestRedisUnavailable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	r := cache.NewRedis(addr)
	defer r.Close()
	_, err = r.Get(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, cache.ErrMiss)
}

var (
	_ cache.Cache = (*cache.Memory)(nil)
	_ cache.Cache = (*cache.Redis)(nil)
)
