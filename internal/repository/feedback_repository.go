package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/food-share-server/internal/model"
)

type FeedbackRepository interface {
	// Replace 删除同一 (user, tweet) 的旧反馈后写入新反馈
	Replace(ctx context.Context, fb *model.RecommendationFeedback) error
}

type feedbackRepository struct{ db *gorm.DB }

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository { return &feedbackRepository{db: db} }

func (r *feedbackRepository) Replace(ctx context.Context, fb *model.RecommendationFeedback) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_user_id = ? AND tweets_id = ?", fb.ClientUserID, fb.TweetsID).
			Delete(&model.RecommendationFeedback{}).Error; err != nil {
			return err
		}
		return tx.Create(fb).Error
	})
}

