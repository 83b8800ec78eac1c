package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/d60-Lab/food-share-server/internal/model"
)

// 推文排序方式
const (
	OrderHot = "hot"
	OrderNew = "new"
)

// TweetQuery 推文分页条件
type TweetQuery struct {
	Offset  int
	Limit   int
	TypePID *int64
	OrderBy string
}

type TweetRepository interface {
	Create(ctx context.Context, t *model.Tweet) error
	Update(ctx context.Context, t *model.Tweet) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Tweet, error)
	List(ctx context.Context, q TweetQuery) ([]*model.Tweet, int64, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*model.Tweet, error)
	// CountUsingType 统计以 typeID 为一级类目或包含该二级类目的推文数
	CountUsingType(ctx context.Context, typeID int64) (int64, error)
}

type tweetRepository struct{ db *gorm.DB }

func NewTweetRepository(db *gorm.DB) TweetRepository { return &tweetRepository{db: db} }

func (r *tweetRepository) Create(ctx context.Context, t *model.Tweet) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// Update 不覆盖计数字段，计数只由互动写入
func (r *tweetRepository) Update(ctx context.Context, t *model.Tweet) error {
	res := r.db.WithContext(ctx).Model(t).
		Select("tweets_type_pid", "tweets_type_cid", "tweets_title", "tweets_user",
			"tweets_describe", "tweets_img", "tweets_content", "update_user", "update_time").
		Updates(t)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *tweetRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Tweet{}, id).Error
}

func (r *tweetRepository) GetByID(ctx context.Context, id int64) (*model.Tweet, error) {
	var t model.Tweet
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, translate(err, "id", fmt.Sprint(id))
	}
	return &t, nil
}

func (r *tweetRepository) List(ctx context.Context, q TweetQuery) ([]*model.Tweet, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Tweet{})
	if q.TypePID != nil {
		tx = tx.Where("tweets_type_pid = ?", *q.TypePID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch q.OrderBy {
	case OrderHot:
		tx = tx.Order("like_num DESC").Order("id DESC")
	case OrderNew:
		tx = tx.Order("create_time DESC").Order("id DESC")
	default:
		tx = tx.Order("id DESC")
	}

	var res []*model.Tweet
	err := tx.Offset(q.Offset).Limit(q.Limit).Find(&res).Error
	return res, total, err
}

func (r *tweetRepository) ListByIDs(ctx context.Context, ids []int64) ([]*model.Tweet, error) {
	if len(ids) == 0 {
		return []*model.Tweet{}, nil
	}
	var res []*model.Tweet
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (r *tweetRepository) CountUsingType(ctx context.Context, typeID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Tweet{}).
		Where("tweets_type_pid = ?", typeID).
		Or(childTypeMatch, csvPattern(typeID)).
		Count(&cnt).Error
	return cnt, err
}

// childTypeMatch 在逗号分隔的二级类目中精确匹配一个 id（postgres 与 sqlite 通用）
const childTypeMatch = "(',' || tweets_type_cid || ',') LIKE ?"

func csvPattern(id int64) string { return fmt.Sprintf("%%,%d,%%", id) }
