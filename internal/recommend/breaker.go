package recommend

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/d60-Lab/food-share-server/pkg/logger"
)

// BreakerConfig 熔断参数
type BreakerConfig struct {
	FailureThreshold uint32
	Timeout          time.Duration
}

// Breaker 外部推荐连续失败后短路，避免每个请求都去等待一个坏掉的进程。
// 推荐与热门各用一个熔断器，推荐熔断时仍可走热门兜底。
type Breaker struct {
	next      Recommender
	recommend *gobreaker.CircuitBreaker[[]int64]
	popular   *gobreaker.CircuitBreaker[[]int64]
}

func NewBreaker(next Recommender, cfg BreakerConfig) *Breaker {
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Breaker{
		next:      next,
		recommend: newCircuitBreaker("recommend", cfg),
		popular:   newCircuitBreaker("popular", cfg),
	}
}

func newCircuitBreaker(name string, cfg BreakerConfig) *gobreaker.CircuitBreaker[[]int64] {
	return gobreaker.NewCircuitBreaker[[]int64](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		// 请求方放弃等待不代表推荐进程坏了
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("recommender breaker state changed",
				zap.String("breaker", name), zap.String("from", from.String()), zap.String("to", to.String()))
		},
	})
}

func (b *Breaker) Recommend(ctx context.Context, userID int64, method string, topN int) ([]int64, error) {
	return b.recommend.Execute(func() ([]int64, error) {
		return b.next.Recommend(ctx, userID, method, topN)
	})
}

func (b *Breaker) Popular(ctx context.Context, topN int) ([]int64, error) {
	return b.popular.Execute(func() ([]int64, error) {
		return b.next.Popular(ctx, topN)
	})
}

// State 返回推荐熔断器状态，用于健康检查
func (b *Breaker) State() string { return b.recommend.State().String() }
