package service

import (
	"context"
	"math/rand/v2"
	"strings"

	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/repository"
)

const (
	randTweetSize = 10
	maxLikedTypes = 5
)

// RandTweetService 首页随机推文：关键词 > 用户喜好 > 纯随机，结果补齐并截断为 10 条
type RandTweetService interface {
	Recommend(ctx context.Context, userID *int64, keyword string) ([]*model.Tweet, error)
}

type randTweetService struct {
	content repository.ContentStore
}

func NewRandTweetService(content repository.ContentStore) RandTweetService {
	return &randTweetService{content: content}
}

func (s *randTweetService) Recommend(ctx context.Context, userID *int64, keyword string) ([]*model.Tweet, error) {
	var (
		res []*model.Tweet
		err error
	)
	switch keyword = strings.TrimSpace(keyword); {
	case keyword != "":
		typeIDs, err := s.content.TypeIDsByKeyword(ctx, keyword)
		if err != nil {
			return nil, err
		}
		// 关键词没有命中任何类目时直接返回空，不再走其他分支
		if len(typeIDs) == 0 {
			return []*model.Tweet{}, nil
		}
		if res, err = s.content.TweetsByTypeIDs(ctx, typeIDs); err != nil {
			return nil, err
		}
		rand.Shuffle(len(res), func(i, j int) { res[i], res[j] = res[j], res[i] })
	case userID != nil:
		typeIDs, err := s.content.LikedTypeIDs(ctx, *userID)
		if err != nil {
			return nil, err
		}
		if res, err = s.content.TweetsByTypeIDs(ctx, pickRandom(typeIDs, maxLikedTypes)); err != nil {
			return nil, err
		}
	default:
		if res, err = s.content.RandomTweets(ctx, randTweetSize, nil); err != nil {
			return nil, err
		}
	}

	if res, err = s.backfill(ctx, res); err != nil {
		return nil, err
	}
	if len(res) > randTweetSize {
		res = res[:randTweetSize]
	}
	return res, nil
}

// backfill 不足 10 条时用随机推文补齐，库里没有更多推文时停止
func (s *randTweetService) backfill(ctx context.Context, res []*model.Tweet) ([]*model.Tweet, error) {
	seen := make(map[int64]struct{}, len(res))
	ids := make([]int64, 0, len(res))
	for _, t := range res {
		if _, ok := seen[t.ID]; !ok {
			seen[t.ID] = struct{}{}
			ids = append(ids, t.ID)
		}
	}
	for len(res) < randTweetSize {
		batch, err := s.content.RandomTweets(ctx, randTweetSize-len(res), ids)
		if err != nil {
			return nil, err
		}
		added := 0
		for _, t := range batch {
			if _, ok := seen[t.ID]; ok {
				continue
			}
			seen[t.ID] = struct{}{}
			ids = append(ids, t.ID)
			res = append(res, t)
			added++
		}
		if added == 0 {
			break
		}
	}
	return res, nil
}

// pickRandom 均匀随机选出至多 n 个元素
func pickRandom(ids []int64, n int) []int64 {
	if len(ids) <= n {
		return ids
	}
	out := make([]int64, len(ids))
	copy(out, ids)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out[:n]
}
