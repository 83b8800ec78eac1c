package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/repository"
	"github.com/d60-Lab/food-share-server/internal/testutil"
)

func feedbackOf(t *testing.T, db *gorm.DB, userID int64) []*model.RecommendationFeedback {
	t.Helper()
	var rows []*model.RecommendationFeedback
	require.NoError(t, db.Where("client_user_id = ?", userID).Order("id").Find(&rows).Error)
	return rows
}

func TestSaveFeedback(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewFeedbackRepository(db)
	svc := NewFeedbackService(repo)
	ctx := context.Background()

	require.NoError(t, svc.SaveFeedback(ctx, 1, 10, "LIKE"))
	rows := feedbackOf(t, db, 1)
	require.Len(t, rows, 1)
	assert.Equal(t, model.FeedbackLike, rows[0].Feedback)
	assert.Equal(t, 1, rows[0].Reward)

	// 第二次反馈覆盖第一次
	require.NoError(t, svc.SaveFeedback(ctx, 1, 10, "Dislike"))
	rows = feedbackOf(t, db, 1)
	require.Len(t, rows, 1)
	assert.Equal(t, model.FeedbackDislike, rows[0].Feedback)
	assert.Equal(t, -1, rows[0].Reward)
}

func TestSaveFeedback_CaseInsensitive(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewFeedbackRepository(db)
	svc := NewFeedbackService(repo)
	ctx := context.Background()

	require.NoError(t, svc.SaveFeedback(ctx, 1, 10, "LIKE"))
	require.NoError(t, svc.SaveFeedback(ctx, 2, 10, "like"))
	a := feedbackOf(t, db, 1)
	b := feedbackOf(t, db, 2)
	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, a[0].Feedback, b[0].Feedback)
	assert.Equal(t, a[0].Reward, b[0].Reward)
}

func TestSaveFeedback_IgnoresInvalid(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewFeedbackRepository(db)
	svc := NewFeedbackService(repo)
	ctx := context.Background()

	for _, tc := range []struct {
		user, tweet int64
		feedback    string
	}{
		{1, 10, "maybe"},
		{1, 10, "  "},
		{0, 10, "like"},
		{1, 0, "like"},
	} {
		assert.NoError(t, svc.SaveFeedback(ctx, tc.user, tc.tweet, tc.feedback))
	}
	var cnt int64
	require.NoError(t, db.Model(&model.RecommendationFeedback{}).Count(&cnt).Error)
	assert.Zero(t, cnt)
}
