// Package recommend 提供可替换的推荐引擎：外部进程适配器与进程内实现。
package recommend

import (
	"context"
	"errors"
)

// 推荐方法
const (
	MethodCollaborative = "collaborative"
	MethodCF            = "cf"
	MethodContent       = "content"
	MethodCB            = "cb"
	MethodHybrid        = "hybrid"
	MethodPopular       = "popular"
)

var ErrRecommenderFailed = errors.New("recommender failed")

// Recommender 返回按推荐顺序排列的推文 id
type Recommender interface {
	Recommend(ctx context.Context, userID int64, method string, topN int) ([]int64, error)
	Popular(ctx context.Context, topN int) ([]int64, error)
}

// NormalizeMethod 非法方法一律按 hybrid 处理
func NormalizeMethod(method string) string {
	switch method {
	case MethodCollaborative, MethodCF, MethodContent, MethodCB, MethodHybrid, MethodPopular:
		return method
	}
	return MethodHybrid
}
