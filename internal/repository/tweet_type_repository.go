package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/d60-Lab/food-share-server/internal/model"
)

type TweetTypeRepository interface {
	List(ctx context.Context) ([]*model.TweetType, error)
	Save(ctx context.Context, t *model.TweetType) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.TweetType, error)
}

type tweetTypeRepository struct{ db *gorm.DB }

func NewTweetTypeRepository(db *gorm.DB) TweetTypeRepository { return &tweetTypeRepository{db: db} }

func (r *tweetTypeRepository) List(ctx context.Context) ([]*model.TweetType, error) {
	var res []*model.TweetType
	err := r.db.WithContext(ctx).Order("id").Find(&res).Error
	return res, err
}

func (r *tweetTypeRepository) Save(ctx context.Context, t *model.TweetType) error {
	return translate(r.db.WithContext(ctx).Save(t).Error, "name", t.Name)
}

func (r *tweetTypeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.TweetType{}, id).Error
}

func (r *tweetTypeRepository) GetByID(ctx context.Context, id int64) (*model.TweetType, error) {
	var t model.TweetType
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, translate(err, "id", fmt.Sprint(id))
	}
	return &t, nil
}
