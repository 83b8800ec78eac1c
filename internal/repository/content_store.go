package repository

import (
	"context"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/d60-Lab/food-share-server/internal/model"
)

// ContentStore 推荐查询所需的内容读取接口
type ContentStore interface {
	// LikedTypeIDs 用户点赞过的推文的一级与二级类目 id（已拆分、去重）
	LikedTypeIDs(ctx context.Context, userID int64) ([]int64, error)
	TypeIDsByKeyword(ctx context.Context, keyword string) ([]int64, error)
	// TweetsByTypeIDs 一级类目或任一二级类目属于 typeIDs 的推文
	TweetsByTypeIDs(ctx context.Context, typeIDs []int64) ([]*model.Tweet, error)
	// RandomTweets 随机取 n 条推文，跳过 exclude 中的 id
	RandomTweets(ctx context.Context, n int, exclude []int64) ([]*model.Tweet, error)
}

type contentStore struct{ db *gorm.DB }

func NewContentStore(db *gorm.DB) ContentStore { return &contentStore{db: db} }

func (s *contentStore) LikedTypeIDs(ctx context.Context, userID int64) ([]int64, error) {
	type row struct {
		Pid  int64
		Cids string
	}
	var rows []row
	err := s.db.WithContext(ctx).
		Table("tweets_records AS r").
		Select("t.tweets_type_pid AS pid, t.tweets_type_cid AS cids").
		Joins("JOIN tweets t ON t.id = r.tweets_id").
		Where("r.client_user_id = ? AND r.type = ?", userID, model.RecordLike).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{})
	ids := make([]int64, 0)
	add := func(id int64) {
		if id <= 0 {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, r := range rows {
		add(r.Pid)
		for _, id := range SplitTypeIDs(r.Cids) {
			add(id)
		}
	}
	return ids, nil
}

func (s *contentStore) TypeIDsByKeyword(ctx context.Context, keyword string) ([]int64, error) {
	var ids []int64
	err := s.db.WithContext(ctx).Model(&model.TweetType{}).
		Where("name LIKE ?", "%"+keyword+"%").
		Pluck("id", &ids).Error
	return ids, err
}

func (s *contentStore) TweetsByTypeIDs(ctx context.Context, typeIDs []int64) ([]*model.Tweet, error) {
	if len(typeIDs) == 0 {
		return []*model.Tweet{}, nil
	}
	cond := s.db.Where("tweets_type_pid IN ?", typeIDs)
	for _, id := range typeIDs {
		cond = cond.Or(childTypeMatch, csvPattern(id))
	}
	var res []*model.Tweet
	err := s.db.WithContext(ctx).Where(cond).Find(&res).Error
	return res, err
}

func (s *contentStore) RandomTweets(ctx context.Context, n int, exclude []int64) ([]*model.Tweet, error) {
	if n <= 0 {
		return []*model.Tweet{}, nil
	}
	tx := s.db.WithContext(ctx)
	if len(exclude) > 0 {
		tx = tx.Where("id NOT IN ?", exclude)
	}
	var res []*model.Tweet
	err := tx.Order("RANDOM()").Limit(n).Find(&res).Error
	return res, err
}

// SplitTypeIDs 解析逗号分隔的类目 id，忽略空白与非数字项
func SplitTypeIDs(csv string) []int64 {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
