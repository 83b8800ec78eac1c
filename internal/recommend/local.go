package recommend

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/repository"
)

// popularityScore 与外部热门脚本的权重一致：点赞 3、收藏 2、浏览 1
const popularityScore = "(like_num * 3 + collect_num * 2 + browse_num)"

// LocalRecommender 进程内推荐：基于共同点赞的协同过滤与基于类目的内容过滤
type LocalRecommender struct {
	db      *gorm.DB
	content repository.ContentStore
}

func NewLocalRecommender(db *gorm.DB, content repository.ContentStore) *LocalRecommender {
	return &LocalRecommender{db: db, content: content}
}

func (l *LocalRecommender) Popular(ctx context.Context, topN int) ([]int64, error) {
	var ids []int64
	err := l.db.WithContext(ctx).Model(&model.Tweet{}).
		Order(popularityScore + " DESC").Order("id DESC").
		Limit(topN).
		Pluck("id", &ids).Error
	return ids, err
}

func (l *LocalRecommender) Recommend(ctx context.Context, userID int64, method string, topN int) ([]int64, error) {
	switch NormalizeMethod(method) {
	case MethodPopular:
		return l.Popular(ctx, topN)
	case MethodCollaborative, MethodCF:
		return l.collaborative(ctx, userID, topN)
	case MethodContent, MethodCB:
		return l.contentBased(ctx, userID, topN)
	}
	return l.hybrid(ctx, userID, topN)
}

// collaborative 与当前用户点赞过同一推文的用户，他们点赞而当前用户未互动过的推文，按共同用户数排序
func (l *LocalRecommender) collaborative(ctx context.Context, userID int64, topN int) ([]int64, error) {
	db := l.db.WithContext(ctx)
	mine := db.Model(&model.TweetRecord{}).Select("tweets_id").
		Where("client_user_id = ? AND type = ?", userID, model.RecordLike)
	neighbours := db.Model(&model.TweetRecord{}).Select("client_user_id").
		Where("type = ? AND client_user_id <> ? AND tweets_id IN (?)", model.RecordLike, userID, mine)
	seen := db.Model(&model.TweetRecord{}).Select("tweets_id").
		Where("client_user_id = ? AND type IN ?", userID, []string{model.RecordLike, model.RecordCollect})

	type row struct {
		TweetsID int64
		Score    int64
	}
	var rows []row
	err := db.Model(&model.TweetRecord{}).
		Select("tweets_id, COUNT(DISTINCT client_user_id) AS score").
		Where("type = ? AND client_user_id IN (?) AND tweets_id NOT IN (?)", model.RecordLike, neighbours, seen).
		Group("tweets_id").
		Order("score DESC").Order("tweets_id DESC").
		Limit(topN).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(rows))
	for i, r := range rows {
		ids[i] = r.TweetsID
	}
	return ids, nil
}

// contentBased 与用户点赞推文同类目、且用户未互动过的推文，按热度排序
func (l *LocalRecommender) contentBased(ctx context.Context, userID int64, topN int) ([]int64, error) {
	typeIDs, err := l.content.LikedTypeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(typeIDs) == 0 {
		return []int64{}, nil
	}
	candidates, err := l.content.TweetsByTypeIDs(ctx, typeIDs)
	if err != nil {
		return nil, err
	}

	var seen []int64
	if err := l.db.WithContext(ctx).Model(&model.TweetRecord{}).
		Where("client_user_id = ? AND type IN ?", userID, []string{model.RecordLike, model.RecordCollect}).
		Pluck("tweets_id", &seen).Error; err != nil {
		return nil, err
	}
	skip := make(map[int64]struct{}, len(seen))
	for _, id := range seen {
		skip[id] = struct{}{}
	}

	ranked := make([]*model.Tweet, 0, len(candidates))
	for _, t := range candidates {
		if _, ok := skip[t.ID]; !ok {
			ranked = append(ranked, t)
		}
	}
	sortByPopularity(ranked)

	ids := make([]int64, 0, topN)
	for _, t := range ranked {
		if len(ids) == topN {
			break
		}
		ids = append(ids, t.ID)
	}
	return ids, nil
}

// hybrid 协同过滤优先，内容过滤补充，仍不足时用热门补齐
func (l *LocalRecommender) hybrid(ctx context.Context, userID int64, topN int) ([]int64, error) {
	cf, err := l.collaborative(ctx, userID, topN)
	if err != nil {
		return nil, err
	}
	cb, err := l.contentBased(ctx, userID, topN)
	if err != nil {
		return nil, err
	}
	merged := mergeUnique(topN, cf, cb)
	if len(merged) < topN {
		popular, err := l.Popular(ctx, topN)
		if err != nil {
			return nil, err
		}
		merged = mergeUnique(topN, merged, popular)
	}
	return merged, nil
}

func mergeUnique(limit int, lists ...[]int64) []int64 {
	seen := make(map[int64]struct{})
	out := make([]int64, 0, limit)
	for _, list := range lists {
		for _, id := range list {
			if len(out) == limit {
				return out
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

func sortByPopularity(ts []*model.Tweet) {
	score := func(t *model.Tweet) int64 { return t.LikeNum*3 + t.CollectNum*2 + t.BrowseNum }
	sort.SliceStable(ts, func(i, j int) bool { return score(ts[i]) > score(ts[j]) })
}
