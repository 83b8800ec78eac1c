package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/repository"
	"github.com/d60-Lab/food-share-server/pkg/logger"
)

// FeedbackService 推荐反馈。同一 (user, tweet) 只保留最后一次反馈
type FeedbackService interface {
	// SaveFeedback 参数缺失或反馈值无法识别时静默忽略
	SaveFeedback(ctx context.Context, userID, tweetID int64, feedback string) error
}

type feedbackService struct {
	repo repository.FeedbackRepository
}

func NewFeedbackService(repo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{repo: repo}
}

func (s *feedbackService) SaveFeedback(ctx context.Context, userID, tweetID int64, feedback string) error {
	feedback = strings.ToLower(strings.TrimSpace(feedback))
	if userID <= 0 || tweetID <= 0 {
		return nil
	}

	var reward int
	switch feedback {
	case model.FeedbackLike:
		reward = 1
	case model.FeedbackDislike:
		reward = -1
	default:
		logger.Debug("ignore feedback", zap.String("feedback", feedback))
		return nil
	}

	return s.repo.Replace(ctx, &model.RecommendationFeedback{
		ClientUserID: userID,
		TweetsID:     tweetID,
		Feedback:     feedback,
		Reward:       reward,
	})
}
