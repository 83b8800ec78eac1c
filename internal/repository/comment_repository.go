package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/food-share-server/internal/model"
)

type CommentRepository interface {
	Create(ctx context.Context, c *model.TweetComment) error
	ListByTweet(ctx context.Context, tweetID int64) ([]*model.TweetComment, error)
}

type commentRepository struct{ db *gorm.DB }

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) Create(ctx context.Context, c *model.TweetComment) error {
	return r.db.WithContext(ctx).Omit("User").Create(c).Error
}

func (r *commentRepository) ListByTweet(ctx context.Context, tweetID int64) ([]*model.TweetComment, error) {
	var res []*model.TweetComment
	err := r.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "nick_name", "avatar")
		}).
		Where("tweets_id = ?", tweetID).
		Order("create_time DESC").Order("id DESC").
		Find(&res).Error
	return res, err
}
