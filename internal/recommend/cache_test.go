package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestPopularCache_HitAfterMiss(t *testing.T) {
	mr, client := newTestRedis(t)
	next := &stubRecommender{ids: []int64{5, 3, 8}}
	c := NewPopularCache(next, client, 30*time.Minute)
	ctx := context.Background()

	first, err := c.Popular(ctx, 3)
	require.NoError(t, err)
	second, err := c.Popular(ctx, 3)
	require.NoError(t, err)

	assert.Equal(t, []int64{5, 3, 8}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, next.populars)
	assert.True(t, mr.Exists("popular_items:3"))
	assert.Equal(t, 30*time.Minute, mr.TTL("popular_items:3"))
}

func TestPopularCache_KeyedByTopN(t *testing.T) {
	_, client := newTestRedis(t)
	next := &stubRecommender{ids: []int64{1}}
	c := NewPopularCache(next, client, time.Minute)

	_, _ = c.Popular(context.Background(), 3)
	_, _ = c.Popular(context.Background(), 4)
	assert.Equal(t, 2, next.populars)
}

func TestPopularCache_DoesNotCacheEmptyOrErrors(t *testing.T) {
	mr, client := newTestRedis(t)
	next := &stubRecommender{ids: []int64{}}
	c := NewPopularCache(next, client, time.Minute)

	ids, err := c.Popular(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.False(t, mr.Exists("popular_items:5"))

	next.err = errors.New("down")
	_, err = c.Popular(context.Background(), 5)
	assert.Error(t, err)
	assert.False(t, mr.Exists("popular_items:5"))
}

func TestPopularCache_RedisDownFallsThrough(t *testing.T) {
	mr, client := newTestRedis(t)
	mr.Close()
	next := &stubRecommender{ids: []int64{2}}
	c := NewPopularCache(next, client, time.Minute)

	ids, err := c.Popular(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids)
}

func TestPopularCache_RecommendBypassesCache(t *testing.T) {
	mr, client := newTestRedis(t)
	next := &stubRecommender{ids: []int64{4}}
	c := NewPopularCache(next, client, time.Minute)

	_, _ = c.Recommend(context.Background(), 1, MethodCF, 5)
	_, _ = c.Recommend(context.Background(), 1, MethodCF, 5)
	assert.Equal(t, 2, next.recommends)
	assert.Empty(t, mr.Keys())
}

func TestPopularCache_Invalidate(t *testing.T) {
	mr, client := newTestRedis(t)
	c := NewPopularCache(&stubRecommender{ids: []int64{1}}, client, time.Minute)
	ctx := context.Background()
	_, _ = c.Popular(ctx, 1)
	_, _ = c.Popular(ctx, 2)
	require.NoError(t, mr.Set("other", "x"))

	require.NoError(t, c.Invalidate(ctx))
	assert.Equal(t, []string{"other"}, mr.Keys())
}
