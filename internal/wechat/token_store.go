package wechat

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore 缓存 access_token，多实例部署时用 Redis 共享
type TokenStore interface {
	Get(ctx context.Context) (string, bool)
	Set(ctx context.Context, token string, ttl time.Duration) error
	// Delete 微信提示 token 失效时清掉缓存
	Delete(ctx context.Context) error
}

type memoryTokenStore struct {
	mu       sync.RWMutex
	token    string
	expireAt time.Time
}

func NewMemoryTokenStore() TokenStore { return &memoryTokenStore{} }

func (s *memoryTokenStore) Get(context.Context) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" || time.Now().After(s.expireAt) {
		return "", false
	}
	return s.token, true
}

func (s *memoryTokenStore) Set(_ context.Context, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.expireAt = time.Now().Add(ttl)
	return nil
}

func (s *memoryTokenStore) Delete(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

const accessTokenKey = "wechat:access_token"

type redisTokenStore struct {
	rdb *redis.Client
}

func NewRedisTokenStore(rdb *redis.Client) TokenStore { return &redisTokenStore{rdb: rdb} }

func (s *redisTokenStore) Get(ctx context.Context) (string, bool) {
	tok, err := s.rdb.Get(ctx, accessTokenKey).Result()
	if err != nil || tok == "" {
		return "", false
	}
	return tok, true
}

func (s *redisTokenStore) Set(ctx context.Context, token string, ttl time.Duration) error {
	return s.rdb.Set(ctx, accessTokenKey, token, ttl).Err()
}

func (s *redisTokenStore) Delete(ctx context.Context) error {
	return s.rdb.Del(ctx, accessTokenKey).Err()
}
