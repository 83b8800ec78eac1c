package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/pkg/logger"
	"github.com/d60-Lab/food-share-server/pkg/response"
)

type randRequest struct {
	ClientUserID      *int64 `json:"clientUserId"`
	SearchTypeKeyword string `json:"searchTypeKeyword" binding:"max=64"`
}

type topNRequest struct {
	TopN int `json:"topN" binding:"gte=0,lte=100"`
}

type feedbackRequest struct {
	TweetsID int64  `json:"tweetsId"`
	Feedback string `json:"feedback"`
}

// RandTweets 首页随机推文，查询失败时返回空列表
// @Summary 随机推文
// @Tags 推荐
// @Accept json
// @Produce json
// @Param request body randRequest false "用户与关键词"
// @Success 200 {object} response.Response{data=[]model.Tweet}
// @Router /client/tweets/rand [post]
func (h *Handler) RandTweets(c *gin.Context) {
	var req randRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.BindError(c, err)
		return
	}
	tweets, err := h.svc.RandTweets.Recommend(c.Request.Context(), req.ClientUserID, req.SearchTypeKeyword)
	if err != nil {
		logger.Error("rand tweets failed", zap.Error(err))
		tweets = []*model.Tweet{}
	}
	response.Success(c, tweets)
}

// Recommendations 当前用户的个性化推荐，保持推荐顺序
// @Summary 个性化推荐
// @Tags 推荐
// @Accept json
// @Produce json
// @Security ClientAuth
// @Param request body topNRequest false "数量"
// @Success 200 {object} response.Response{data=[]model.Tweet}
// @Router /client/tweets/recommendations [post]
func (h *Handler) Recommendations(c *gin.Context) {
	var req topNRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.BindError(c, err)
		return
	}
	tweets, err := h.svc.Recommendation.RecommendTweets(c.Request.Context(), currentUser(c), req.TopN)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, tweets)
}

// RecommendationFeedback 推荐反馈，无效反馈静默忽略
// @Summary 推荐反馈
// @Tags 推荐
// @Accept json
// @Security ClientAuth
// @Param request body feedbackRequest true "反馈"
// @Success 200 {object} response.Response
// @Router /client/tweets/recommendations/feedback [post]
func (h *Handler) RecommendationFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := h.svc.Feedback.SaveFeedback(c.Request.Context(), currentUser(c), req.TweetsID, req.Feedback); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}

// PopularTweets 热门推文，按点赞数倒序
// @Summary 热门推文
// @Tags 推荐
// @Accept json
// @Produce json
// @Param request body topNRequest false "数量"
// @Success 200 {object} response.Response{data=[]model.Tweet}
// @Router /client/tweets/popular [post]
func (h *Handler) PopularTweets(c *gin.Context) {
	var req topNRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.BindError(c, err)
		return
	}
	tweets, err := h.svc.Recommendation.PopularTweets(c.Request.Context(), req.TopN)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, tweets)
}
