package model

import "time"

const (
	FeedbackLike    = "like"
	FeedbackDislike = "dislike"
)

// RecommendationFeedback 推荐反馈（右滑喜欢 / 左滑不喜欢），同一 (user, tweet) 只保留最新一条
type RecommendationFeedback struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ClientUserID int64     `json:"clientUserId" gorm:"not null;index:idx_feedback_user_tweet"`
	TweetsID     int64     `json:"tweetsId" gorm:"not null;index:idx_feedback_user_tweet"`
	Feedback     string    `json:"feedback" gorm:"type:varchar(16);not null"`
	Reward       int       `json:"reward" gorm:"not null"`
	CreateTime   time.Time `json:"createTime" gorm:"autoCreateTime"`
}

func (RecommendationFeedback) TableName() string { return "recommendation_feedback" }
