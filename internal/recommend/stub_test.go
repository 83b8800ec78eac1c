package recommend

import (
	"context"
	"sync"
)

// stubRecommender 记录调用次数，返回预设结果
type stubRecommender struct {
	mu         sync.Mutex
	ids        []int64
	err        error
	recommends int
	populars   int
}

func (s *stubRecommender) Recommend(context.Context, int64, string, int) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recommends++
	return s.ids, s.err
}

func (s *stubRecommender) Popular(context.Context, int) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.populars++
	return s.ids, s.err
}
