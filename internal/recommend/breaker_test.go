package recommend

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	next := &stubRecommender{err: errors.New("process crashed")}
	b := NewBreaker(next, BreakerConfig{FailureThreshold: 3, Timeout: time.Minute})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := b.Recommend(ctx, 1, MethodCF, 5)
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen.String(), b.State())

	_, err := b.Recommend(ctx, 1, MethodCF, 5)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, next.recommends)
}

func TestBreaker_PopularIndependent(t *testing.T) {
	next := &stubRecommender{err: errors.New("down")}
	b := NewBreaker(next, BreakerConfig{FailureThreshold: 1, Timeout: time.Minute})
	ctx := context.Background()

	_, _ = b.Recommend(ctx, 1, MethodCF, 5)
	next.err = nil
	next.ids = []int64{7}

	ids, err := b.Popular(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, ids)
}

func TestBreaker_HalfOpenRecovers(t *testing.T) {
	next := &stubRecommender{err: errors.New("down")}
	b := NewBreaker(next, BreakerConfig{FailureThreshold: 1, Timeout: 20 * time.Millisecond})
	ctx := context.Background()

	_, _ = b.Recommend(ctx, 1, MethodCF, 5)
	assert.Equal(t, gobreaker.StateOpen.String(), b.State())

	time.Sleep(40 * time.Millisecond)
	next.err = nil
	next.ids = []int64{1, 2}
	ids, err := b.Recommend(ctx, 1, MethodCF, 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)
	assert.Equal(t, gobreaker.StateClosed.String(), b.State())
}

func TestBreaker_CallerCancelNotCounted(t *testing.T) {
	next := &stubRecommender{err: fmt.Errorf("%w: %w", ErrRecommenderFailed, context.Canceled)}
	b := NewBreaker(next, BreakerConfig{FailureThreshold: 2, Timeout: time.Minute})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := b.Recommend(ctx, 1, MethodCF, 5)
		require.ErrorIs(t, err, context.Canceled)
	}
	assert.Equal(t, gobreaker.StateClosed.String(), b.State())
	assert.Equal(t, 5, next.recommends)
}
