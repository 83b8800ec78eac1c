package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/food-share-server/pkg/logger"
)

// PopularCache 在 Redis 中缓存热门列表；个性化推荐不缓存
type PopularCache struct {
	next  Recommender
	cache *redis.Client
	ttl   time.Duration
}

func NewPopularCache(next Recommender, cache *redis.Client, ttl time.Duration) *PopularCache {
	return &PopularCache{next: next, cache: cache, ttl: ttl}
}

func popularKey(topN int) string { return fmt.Sprintf("popular_items:%d", topN) }

func (c *PopularCache) Recommend(ctx context.Context, userID int64, method string, topN int) ([]int64, error) {
	return c.next.Recommend(ctx, userID, method, topN)
}

func (c *PopularCache) Popular(ctx context.Context, topN int) ([]int64, error) {
	key := popularKey(topN)
	if data, err := c.cache.Get(ctx, key).Bytes(); err == nil {
		var ids []int64
		if uErr := json.Unmarshal(data, &ids); uErr == nil {
			return ids, nil
		}
	} else if err != redis.Nil {
		logger.Warn("popular cache read failed", zap.String("key", key), zap.Error(err))
	}

	ids, err := c.next.Popular(ctx, topN)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return ids, nil
	}
	if payload, err := json.Marshal(ids); err == nil {
		if err := c.cache.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			logger.Warn("popular cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return ids, nil
}

// Invalidate 删除所有热门缓存
func (c *PopularCache) Invalidate(ctx context.Context) error {
	iter := c.cache.Scan(ctx, 0, "popular_items:*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.cache.Del(ctx, keys...).Err()
}
