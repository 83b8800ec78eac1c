package service

import (
	"context"
	"slices"
	"sort"

	"go.uber.org/zap"

	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/recommend"
	"github.com/d60-Lab/food-share-server/internal/repository"
	"github.com/d60-Lab/food-share-server/pkg/logger"
)

// RecommendationService 个性化推荐。推荐引擎失败时回退到热门，热门失败时返回空列表，不向调用方报错
type RecommendationService interface {
	GetRecommendations(ctx context.Context, userID int64, method string, topN int) []int64
	GetPopularItems(ctx context.Context, topN int) []int64
	GetBatchRecommendations(ctx context.Context, userIDs []int64, method string, topN int) map[int64][]int64

	// RecommendTweets 推荐结果转为推文，保持推荐顺序
	RecommendTweets(ctx context.Context, userID int64, topN int) ([]*model.Tweet, error)
	// PopularTweets 热门推文，按点赞数倒序
	PopularTweets(ctx context.Context, topN int) ([]*model.Tweet, error)
}

type recommendationService struct {
	engine        recommend.Recommender
	tweetRepo     repository.TweetRepository
	defaultMethod string
	defaultTopN   int
}

func NewRecommendationService(engine recommend.Recommender, tweetRepo repository.TweetRepository, defaultMethod string, defaultTopN int) RecommendationService {
	if defaultTopN <= 0 {
		defaultTopN = 20
	}
	return &recommendationService{
		engine:        engine,
		tweetRepo:     tweetRepo,
		defaultMethod: recommend.NormalizeMethod(defaultMethod),
		defaultTopN:   defaultTopN,
	}
}

func (s *recommendationService) topN(n int) int {
	if n <= 0 {
		return s.defaultTopN
	}
	return n
}

func (s *recommendationService) GetRecommendations(ctx context.Context, userID int64, method string, topN int) []int64 {
	if method == "" {
		method = s.defaultMethod
	}
	method = recommend.NormalizeMethod(method)
	topN = s.topN(topN)

	ids, err := s.engine.Recommend(ctx, userID, method, topN)
	if err != nil {
		logger.Warn("recommend failed, fallback to popular",
			zap.Int64("user_id", userID), zap.String("method", method), zap.Error(err))
		return s.GetPopularItems(ctx, topN)
	}
	return ids
}

func (s *recommendationService) GetPopularItems(ctx context.Context, topN int) []int64 {
	ids, err := s.engine.Popular(ctx, s.topN(topN))
	if err != nil {
		logger.Error("popular items failed", zap.Error(err))
		return []int64{}
	}
	return ids
}

// GetBatchRecommendations 逐个用户串行推荐；整批中断（ctx 结束）时所有用户都拿热门列表，各自一份拷贝
func (s *recommendationService) GetBatchRecommendations(ctx context.Context, userIDs []int64, method string, topN int) map[int64][]int64 {
	res := make(map[int64][]int64, len(userIDs))
	for _, uid := range userIDs {
		if err := ctx.Err(); err != nil {
			logger.Warn("batch recommend aborted, fallback to popular",
				zap.Int("users", len(userIDs)), zap.Error(err))
			popular := s.GetPopularItems(context.WithoutCancel(ctx), topN)
			for _, id := range userIDs {
				res[id] = slices.Clone(popular)
			}
			return res
		}
		res[uid] = s.GetRecommendations(ctx, uid, method, topN)
	}
	return res
}

func (s *recommendationService) RecommendTweets(ctx context.Context, userID int64, topN int) ([]*model.Tweet, error) {
	ids := s.GetRecommendations(ctx, userID, "", topN)
	return s.tweetsInOrder(ctx, ids)
}

func (s *recommendationService) PopularTweets(ctx context.Context, topN int) ([]*model.Tweet, error) {
	tweets, err := s.tweetRepo.ListByIDs(ctx, s.GetPopularItems(ctx, topN))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(tweets, func(i, j int) bool { return tweets[i].LikeNum > tweets[j].LikeNum })
	return tweets, nil
}

func (s *recommendationService) tweetsInOrder(ctx context.Context, ids []int64) ([]*model.Tweet, error) {
	tweets, err := s.tweetRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return orderByIDs(tweets, ids), nil
}

// orderByIDs 按 ids 顺序排列，已删除的推文被跳过
func orderByIDs(tweets []*model.Tweet, ids []int64) []*model.Tweet {
	byID := make(map[int64]*model.Tweet, len(tweets))
	for _, t := range tweets {
		byID[t.ID] = t
	}
	out := make([]*model.Tweet, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			out = append(out, t)
			delete(byID, id)
		}
	}
	return out
}
