package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/testutil"
)

type stubRecommender struct {
	mu         sync.Mutex
	ids        []int64
	err        error
	popular    []int64
	popularErr error
	methods    []string
	topNs      []int
}

func (s *stubRecommender) Recommend(_ context.Context, _ int64, method string, topN int) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.methods = append(s.methods, method)
	s.topNs = append(s.topNs, topN)
	return s.ids, s.err
}

func (s *stubRecommender) Popular(_ context.Context, topN int) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topNs = append(s.topNs, topN)
	return s.popular, s.popularErr
}

func loadTweet(t *testing.T, db *gorm.DB, id int64) *model.Tweet {
	t.Helper()
	var tw model.Tweet
	require.NoError(t, db.First(&tw, id).Error)
	return &tw
}

// seedCatalog 两个一级类目各带一个二级类目，每个二级类目下 n 条推文
func seedCatalog(t *testing.T, db *gorm.DB, n int) (pidA, cidA, pidB, cidB int64) {
	t.Helper()
	pidA = testutil.SeedType(t, db, "面食", 0)
	cidA = testutil.SeedType(t, db, "拉面", pidA)
	pidB = testutil.SeedType(t, db, "烘焙", 0)
	cidB = testutil.SeedType(t, db, "蛋糕", pidB)
	for i := 0; i < n; i++ {
		testutil.SeedTweet(t, db, fmt.Sprintf("拉面 %d", i), pidA, cidA)
		testutil.SeedTweet(t, db, fmt.Sprintf("蛋糕 %d", i), pidB, cidB)
	}
	return
}

func fmtID(id int64) string { return fmt.Sprint(id) }
